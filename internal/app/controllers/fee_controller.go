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

// FeeController handles fee record operations
type FeeController struct {
	feeService services.FeeService
}

// NewFeeController creates a new FeeController
func NewFeeController(feeService services.FeeService) *FeeController {
	return &FeeController{
		feeService: feeService,
	}
}

func feeFromRequest(req *dto.FeeRequest) (*models.Fee, error) {
	dueDate, err := helpers.ParseDate(req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorageFailed, err)
	}
	paidDate, err := helpers.ParseDate(req.PaidDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorageFailed, err)
	}

	return &models.Fee{
		StudentID: req.StudentID,
		Amount:    req.Amount,
		FeeType:   req.FeeType,
		Status:    models.FeeStatus(req.Status),
		DueDate:   dueDate,
		PaidDate:  paidDate,
	}, nil
}

// CreateFee creates a fee record
// @Summary Create a fee record
// @Description Status defaults to pending when blank. Paid date is caller-supplied, never derived from status.
// @Tags fees
// @Accept json
// @Produce json
// @Param request body dto.FeeRequest true "Fee fields"
// @Success 201 {object} dto.APIResponse{data=models.Fee} "Fee record created successfully"
// @Failure 400 {object} dto.APIResponse "Student, amount, and fee type are required"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /fees [post]
func (c *FeeController) CreateFee(ctx *gin.Context) {
	var req dto.FeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid fee data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	fee, err := feeFromRequest(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.feeService.CreateFee(ctx, fee); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Fee record created successfully", fee))
}

// UpdateFee replaces a fee record
// @Summary Update a fee record
// @Description Full replacement; every field is resupplied. Any status may be set from any other. An id that matches no row still reports success.
// @Tags fees
// @Accept json
// @Produce json
// @Param id path int true "Fee ID"
// @Param request body dto.FeeRequest true "Fee fields"
// @Success 200 {object} dto.APIResponse{data=models.Fee} "Fee record updated successfully"
// @Failure 400 {object} dto.APIResponse "Fee ID, student, amount, and fee type are required"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /fees/{id} [put]
func (c *FeeController) UpdateFee(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.FeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid fee data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	fee, err := feeFromRequest(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	fee.ID = id

	if err := c.feeService.UpdateFee(ctx, fee); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Fee record updated successfully", fee))
}

// DeleteFee deletes a fee record
// @Summary Delete a fee record
// @Tags fees
// @Produce json
// @Param id path int true "Fee ID"
// @Success 200 {object} dto.APIResponse "Fee record deleted successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /fees/{id} [delete]
func (c *FeeController) DeleteFee(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.feeService.DeleteFee(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Fee record deleted successfully", nil))
}

// ListFees lists fee records
// @Summary List fee records
// @Description Returns fees ordered by due date descending, each carrying student and class names. An optional status filter narrows the result; "all" or empty returns everything.
// @Tags fees
// @Produce json
// @Param status query string false "Filter by status" Enums(pending, paid, overdue, all)
// @Success 200 {object} dto.APIResponse{data=[]models.Fee}
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /fees [get]
func (c *FeeController) ListFees(ctx *gin.Context) {
	status := models.FeeStatus(ctx.Query("status"))

	fees, err := c.feeService.ListFees(ctx, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", fees))
}
