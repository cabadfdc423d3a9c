package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/f24tech/edumate/internal/app/models"
	"github.com/f24tech/edumate/internal/app/models/dto"
	"github.com/f24tech/edumate/internal/app/services"
	"github.com/f24tech/edumate/internal/middleware"
	"github.com/f24tech/edumate/internal/pkg/apperrors"
	"github.com/f24tech/edumate/internal/pkg/helpers"
)

// AssignmentController handles assignment record operations
type AssignmentController struct {
	assignmentService services.AssignmentService
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService services.AssignmentService) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
	}
}

func assignmentFromRequest(req *dto.AssignmentRequest) (*models.Assignment, error) {
	dueDate, err := helpers.ParseDate(req.DueDate)
	if err != nil {
		// A malformed date fails the same way it would inside the store.
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorageFailed, err)
	}

	return &models.Assignment{
		Title:       req.Title,
		Description: req.Description,
		ClassID:     req.ClassID,
		DueDate:     dueDate,
	}, nil
}

// CreateAssignment creates an assignment
// @Summary Create an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param request body dto.AssignmentRequest true "Assignment fields"
// @Success 201 {object} dto.APIResponse{data=models.Assignment} "Assignment created successfully"
// @Failure 400 {object} dto.APIResponse "Assignment title and class are required"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /assignments [post]
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	var req dto.AssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid assignment data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	assignment, err := assignmentFromRequest(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.assignmentService.CreateAssignment(ctx, assignment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Assignment created successfully", assignment))
}

// UpdateAssignment replaces an assignment
// @Summary Update an assignment
// @Description Full replacement; every field is resupplied. An id that matches no row still reports success.
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path int true "Assignment ID"
// @Param request body dto.AssignmentRequest true "Assignment fields"
// @Success 200 {object} dto.APIResponse{data=models.Assignment} "Assignment updated successfully"
// @Failure 400 {object} dto.APIResponse "Assignment ID, title, and class are required"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /assignments/{id} [put]
func (c *AssignmentController) UpdateAssignment(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.AssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid assignment data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	assignment, err := assignmentFromRequest(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	assignment.ID = id

	if err := c.assignmentService.UpdateAssignment(ctx, assignment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Assignment updated successfully", assignment))
}

// DeleteAssignment deletes an assignment
// @Summary Delete an assignment
// @Tags assignments
// @Produce json
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse "Assignment deleted successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /assignments/{id} [delete]
func (c *AssignmentController) DeleteAssignment(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.assignmentService.DeleteAssignment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Assignment deleted successfully", nil))
}

// ListAssignments lists assignments
// @Summary List assignments
// @Description Returns assignments ordered by due date descending, each carrying its class name. An optional class_id filter narrows the result.
// @Tags assignments
// @Produce json
// @Param class_id query int false "Filter by class"
// @Success 200 {object} dto.APIResponse{data=[]models.Assignment}
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /assignments [get]
func (c *AssignmentController) ListAssignments(ctx *gin.Context) {
	classID, err := parseOptionalID(ctx, "class_id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	assignments, err := c.assignmentService.ListAssignments(ctx, classID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", assignments))
}
