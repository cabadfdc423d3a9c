package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/f24tech/edumate/internal/app/models"
	"github.com/f24tech/edumate/internal/pkg/apperrors"
)

// NoteStore is the persistence contract the note service depends on.
type NoteStore interface {
	Create(ctx context.Context, note *models.Note) error
	Update(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context, classID int64) ([]*models.Note, error)
}

// NoteService defines the interface for class note operations
type NoteService interface {
	CreateNote(ctx context.Context, note *models.Note) error
	UpdateNote(ctx context.Context, note *models.Note) error
	DeleteNote(ctx context.Context, id int64) error
	ListNotes(ctx context.Context, classID int64) ([]*models.Note, error)
}

type noteServiceImpl struct {
	store NoteStore
}

// NewNoteService creates a new note service instance
func NewNoteService(store NoteStore) NoteService {
	return &noteServiceImpl{
		store: store,
	}
}

func validateNote(note *models.Note) error {
	if note == nil {
		return fmt.Errorf("%w: note is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(note.Title) == "" {
		return fmt.Errorf("%w: note title is required", apperrors.ErrValidationFailed)
	}
	if note.ClassID <= 0 {
		return fmt.Errorf("%w: class id is required", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateNote validates and inserts a new note.
func (s *noteServiceImpl) CreateNote(ctx context.Context, note *models.Note) error {
	if err := validateNote(note); err != nil {
		return err
	}

	if err := s.store.Create(ctx, note); err != nil {
		return fmt.Errorf("%w: creating note: %v", apperrors.ErrStorageFailed, err)
	}
	return nil
}

// UpdateNote performs a full-replacement update. Zero matched rows is
// still reported as success.
func (s *noteServiceImpl) UpdateNote(ctx context.Context, note *models.Note) error {
	if err := validateNote(note); err != nil {
		return err
	}
	if note.ID <= 0 {
		return fmt.Errorf("%w: note id is required", apperrors.ErrValidationFailed)
	}

	if err := s.store.Update(ctx, note); err != nil {
		return fmt.Errorf("%w: updating note: %v", apperrors.ErrStorageFailed, err)
	}
	return nil
}

// DeleteNote removes a note.
func (s *noteServiceImpl) DeleteNote(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: note id is required", apperrors.ErrValidationFailed)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: deleting note: %v", apperrors.ErrStorageFailed, err)
	}
	return nil
}

// ListNotes returns notes newest first, optionally narrowed to a class.
func (s *noteServiceImpl) ListNotes(ctx context.Context, classID int64) ([]*models.Note, error) {
	notes, err := s.store.GetAll(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("%w: listing notes: %v", apperrors.ErrStorageFailed, err)
	}
	return notes, nil
}
