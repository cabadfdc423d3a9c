package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/f24tech/edumate/internal/app/models"
	"github.com/f24tech/edumate/internal/app/models/dto"
	"github.com/f24tech/edumate/internal/app/services"
	"github.com/f24tech/edumate/internal/middleware"
)

// NoteController handles class note operations
type NoteController struct {
	noteService services.NoteService
}

// NewNoteController creates a new NoteController
func NewNoteController(noteService services.NoteService) *NoteController {
	return &NoteController{
		noteService: noteService,
	}
}

// CreateNote creates a note
// @Summary Create a class note
// @Tags notes
// @Accept json
// @Produce json
// @Param request body dto.NoteRequest true "Note fields"
// @Success 201 {object} dto.APIResponse{data=models.Note} "Note created successfully"
// @Failure 400 {object} dto.APIResponse "Note title and class are required"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /notes [post]
func (c *NoteController) CreateNote(ctx *gin.Context) {
	var req dto.NoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid note data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	note := models.Note{
		Title:   req.Title,
		Content: req.Content,
		ClassID: req.ClassID,
	}

	if err := c.noteService.CreateNote(ctx, &note); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Note created successfully", note))
}

// UpdateNote replaces a note
// @Summary Update a class note
// @Description Full replacement; every field is resupplied. An id that matches no row still reports success.
// @Tags notes
// @Accept json
// @Produce json
// @Param id path int true "Note ID"
// @Param request body dto.NoteRequest true "Note fields"
// @Success 200 {object} dto.APIResponse{data=models.Note} "Note updated successfully"
// @Failure 400 {object} dto.APIResponse "Note ID, title, and class are required"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /notes/{id} [put]
func (c *NoteController) UpdateNote(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.NoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid note data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	note := models.Note{
		ID:      id,
		Title:   req.Title,
		Content: req.Content,
		ClassID: req.ClassID,
	}

	if err := c.noteService.UpdateNote(ctx, &note); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Note updated successfully", note))
}

// DeleteNote deletes a note
// @Summary Delete a class note
// @Tags notes
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} dto.APIResponse "Note deleted successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /notes/{id} [delete]
func (c *NoteController) DeleteNote(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.noteService.DeleteNote(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Note deleted successfully", nil))
}

// ListNotes lists notes
// @Summary List class notes
// @Description Returns notes newest first, each carrying its class name. An optional class_id filter narrows the result.
// @Tags notes
// @Produce json
// @Param class_id query int false "Filter by class"
// @Success 200 {object} dto.APIResponse{data=[]models.Note}
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /notes [get]
func (c *NoteController) ListNotes(ctx *gin.Context) {
	classID, err := parseOptionalID(ctx, "class_id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	notes, err := c.noteService.ListNotes(ctx, classID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", notes))
}
