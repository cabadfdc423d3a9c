package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f24tech/edumate/internal/app/models"
	"github.com/f24tech/edumate/internal/app/models/dto"
)

type fakeClassService struct {
	classes []*models.Class
	err     error
	deleted []int64
}

func (f *fakeClassService) CreateClass(_ context.Context, class *models.Class) error {
	if f.err != nil {
		return f.err
	}
	class.ID = 1
	return nil
}

func (f *fakeClassService) UpdateClass(_ context.Context, _ *models.Class) error { return f.err }

func (f *fakeClassService) DeleteClass(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func (f *fakeClassService) ListClasses(_ context.Context) ([]*models.Class, error) {
	return f.classes, f.err
}

func classRouter(svc *fakeClassService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewClassController(svc)
	router.POST("/api/v1/classes", controller.CreateClass)
	router.PUT("/api/v1/classes/:id", controller.UpdateClass)
	router.DELETE("/api/v1/classes/:id", controller.DeleteClass)
	router.GET("/api/v1/classes", controller.ListClasses)
	return router
}

func TestCreateClassEndpoint(t *testing.T) {
	router := classRouter(&fakeClassService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/classes", strings.NewReader(`{"name":"Grade 5"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusCreated, recorder.Code)
	var body dto.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Class created successfully", body.Message)
}

// A non-numeric path id is reported as a storage failure, not a
// validation failure.
func TestDeleteClassMalformedID(t *testing.T) {
	svc := &fakeClassService{}
	router := classRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/classes/abc", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Empty(t, svc.deleted)
}

func TestUpdateClassUnknownIDStillSucceeds(t *testing.T) {
	router := classRouter(&fakeClassService{})

	req := httptest.NewRequest(http.MethodPut, "/api/v1/classes/9999", strings.NewReader(`{"name":"Ghost"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestListClassesEndpoint(t *testing.T) {
	router := classRouter(&fakeClassService{classes: []*models.Class{{ID: 1, Name: "Grade 5"}}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/classes", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	var body dto.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.True(t, body.Success)
}
