package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/f24tech/edumate/internal/app/models"
	"github.com/f24tech/edumate/internal/app/models/dto"
	"github.com/f24tech/edumate/internal/app/services"
	"github.com/f24tech/edumate/internal/middleware"
	"github.com/f24tech/edumate/internal/pkg/apperrors"
)

// ClassController handles class record operations
type ClassController struct {
	classService services.ClassService
}

// NewClassController creates a new ClassController
func NewClassController(classService services.ClassService) *ClassController {
	return &ClassController{
		classService: classService,
	}
}

// parseID reads a numeric identifier from the request path. Identifiers
// are not type-checked beyond what the storage layer enforces, so a
// malformed id surfaces as a storage failure rather than a distinct
// validation error.
func parseID(ctx *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed identifier: %v", apperrors.ErrStorageFailed, err)
	}
	return id, nil
}

// CreateClass creates a class
// @Summary Create a class
// @Tags classes
// @Accept json
// @Produce json
// @Param request body dto.ClassRequest true "Class fields"
// @Success 201 {object} dto.APIResponse{data=models.Class} "Class created successfully"
// @Failure 400 {object} dto.APIResponse "Class name is required"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /classes [post]
func (c *ClassController) CreateClass(ctx *gin.Context) {
	var req dto.ClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid class data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	class := models.Class{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := c.classService.CreateClass(ctx, &class); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Class created successfully", class))
}

// UpdateClass replaces a class
// @Summary Update a class
// @Description Full replacement; every field is resupplied. An id that matches no row still reports success.
// @Tags classes
// @Accept json
// @Produce json
// @Param id path int true "Class ID"
// @Param request body dto.ClassRequest true "Class fields"
// @Success 200 {object} dto.APIResponse{data=models.Class} "Class updated successfully"
// @Failure 400 {object} dto.APIResponse "Class ID and name are required"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /classes/{id} [put]
func (c *ClassController) UpdateClass(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.ClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid class data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	class := models.Class{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := c.classService.UpdateClass(ctx, &class); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Class updated successfully", class))
}

// DeleteClass deletes a class and everything it owns
// @Summary Delete a class
// @Description Students, assignments, notes and attendance referencing the class are removed by cascade.
// @Tags classes
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} dto.APIResponse "Class deleted successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /classes/{id} [delete]
func (c *ClassController) DeleteClass(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.classService.DeleteClass(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Class deleted successfully", nil))
}

// ListClasses lists all classes
// @Summary List classes
// @Description Returns all classes ordered by name ascending.
// @Tags classes
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Class}
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /classes [get]
func (c *ClassController) ListClasses(ctx *gin.Context) {
	classes, err := c.classService.ListClasses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", classes))
}
