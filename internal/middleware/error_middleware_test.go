package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f24tech/edumate/internal/app/models/dto"
	"github.com/f24tech/edumate/internal/pkg/apperrors"
)

func recordedError(t *testing.T, err error) (int, dto.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	HandleAPIError(c, err)

	var body dto.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, body
}

func TestHandleAPIErrorValidation(t *testing.T) {
	code, body := recordedError(t, fmt.Errorf("%w: class name is required", apperrors.ErrValidationFailed))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Contains(t, body.Error.Message, "class name is required")
}

func TestHandleAPIErrorInvalidCredentials(t *testing.T) {
	code, body := recordedError(t, apperrors.ErrInvalidCredentials)

	assert.Equal(t, http.StatusUnauthorized, code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "Invalid credentials", body.Error.Message)
}

func TestHandleAPIErrorDuplicate(t *testing.T) {
	code, _ := recordedError(t, fmt.Errorf("%w: attendance already recorded", apperrors.ErrDuplicateRecord))

	assert.Equal(t, http.StatusConflict, code)
}

// Storage failures never leak the underlying database error to the client.
func TestHandleAPIErrorStorageStaysGeneric(t *testing.T) {
	code, body := recordedError(t, fmt.Errorf("%w: creating class: %v", apperrors.ErrStorageFailed, errors.New("pq: relation does not exist")))

	assert.Equal(t, http.StatusInternalServerError, code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "Internal server error", body.Error.Message)
}

func TestHandleAPIErrorUnknownErrorIsInternal(t *testing.T) {
	code, _ := recordedError(t, errors.New("something unexpected"))

	assert.Equal(t, http.StatusInternalServerError, code)
}
