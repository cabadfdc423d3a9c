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

// AttendanceController handles attendance record operations
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

func attendanceFromRequest(req *dto.AttendanceRequest) (*models.Attendance, error) {
	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorageFailed, err)
	}

	attendance := &models.Attendance{
		StudentID: req.StudentID,
		ClassID:   req.ClassID,
		Status:    models.AttendanceStatus(req.Status),
	}
	if date != nil {
		attendance.Date = *date
	}
	return attendance, nil
}

// CreateAttendance creates an attendance record
// @Summary Create an attendance record
// @Description At most one record exists per student, class and date; a duplicate is rejected, never merged.
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.AttendanceRequest true "Attendance fields"
// @Success 201 {object} dto.APIResponse{data=models.Attendance} "Attendance recorded successfully"
// @Failure 400 {object} dto.APIResponse "Student, class, date, and status are required"
// @Failure 409 {object} dto.APIResponse "Attendance already recorded"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /attendance [post]
func (c *AttendanceController) CreateAttendance(ctx *gin.Context) {
	var req dto.AttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid attendance data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	attendance, err := attendanceFromRequest(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.attendanceService.CreateAttendance(ctx, attendance); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Attendance recorded successfully", attendance))
}

// UpdateAttendance replaces an attendance record
// @Summary Update an attendance record
// @Description Full replacement; every field is resupplied. An id that matches no row still reports success.
// @Tags attendance
// @Accept json
// @Produce json
// @Param id path int true "Attendance ID"
// @Param request body dto.AttendanceRequest true "Attendance fields"
// @Success 200 {object} dto.APIResponse{data=models.Attendance} "Attendance updated successfully"
// @Failure 400 {object} dto.APIResponse "Student, class, date, and status are required"
// @Failure 409 {object} dto.APIResponse "Attendance already recorded"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /attendance/{id} [put]
func (c *AttendanceController) UpdateAttendance(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.AttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid attendance data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	attendance, err := attendanceFromRequest(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	attendance.ID = id

	if err := c.attendanceService.UpdateAttendance(ctx, attendance); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Attendance updated successfully", attendance))
}

// DeleteAttendance deletes an attendance record
// @Summary Delete an attendance record
// @Tags attendance
// @Produce json
// @Param id path int true "Attendance ID"
// @Success 200 {object} dto.APIResponse "Attendance deleted successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /attendance/{id} [delete]
func (c *AttendanceController) DeleteAttendance(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.attendanceService.DeleteAttendance(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Attendance deleted successfully", nil))
}

// ListAttendance lists attendance records
// @Summary List attendance records
// @Description Returns attendance ordered by date descending, each carrying student and class names. Optional class_id and date filters narrow the result.
// @Tags attendance
// @Produce json
// @Param class_id query int false "Filter by class"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]models.Attendance}
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /attendance [get]
func (c *AttendanceController) ListAttendance(ctx *gin.Context) {
	classID, err := parseOptionalID(ctx, "class_id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	date, err := helpers.ParseDate(ctx.Query("date"))
	if err != nil {
		middleware.HandleAPIError(ctx, fmt.Errorf("%w: %v", apperrors.ErrStorageFailed, err))
		return
	}

	records, err := c.attendanceService.ListAttendance(ctx, classID, date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", records))
}
