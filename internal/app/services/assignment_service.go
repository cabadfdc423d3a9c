package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/f24tech/edumate/internal/app/models"
	"github.com/f24tech/edumate/internal/pkg/apperrors"
)

// AssignmentStore is the persistence contract the assignment service
// depends on.
type AssignmentStore interface {
	Create(ctx context.Context, assignment *models.Assignment) error
	Update(ctx context.Context, assignment *models.Assignment) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context, classID int64) ([]*models.Assignment, error)
}

// AssignmentService defines the interface for assignment operations
type AssignmentService interface {
	CreateAssignment(ctx context.Context, assignment *models.Assignment) error
	UpdateAssignment(ctx context.Context, assignment *models.Assignment) error
	DeleteAssignment(ctx context.Context, id int64) error
	ListAssignments(ctx context.Context, classID int64) ([]*models.Assignment, error)
}

type assignmentServiceImpl struct {
	store AssignmentStore
}

// NewAssignmentService creates a new assignment service instance
func NewAssignmentService(store AssignmentStore) AssignmentService {
	return &assignmentServiceImpl{
		store: store,
	}
}

func validateAssignment(assignment *models.Assignment) error {
	if assignment == nil {
		return fmt.Errorf("%w: assignment is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(assignment.Title) == "" {
		return fmt.Errorf("%w: assignment title is required", apperrors.ErrValidationFailed)
	}
	if assignment.ClassID <= 0 {
		return fmt.Errorf("%w: class id is required", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateAssignment validates and inserts a new assignment.
func (s *assignmentServiceImpl) CreateAssignment(ctx context.Context, assignment *models.Assignment) error {
	if err := validateAssignment(assignment); err != nil {
		return err
	}

	if err := s.store.Create(ctx, assignment); err != nil {
		return fmt.Errorf("%w: creating assignment: %v", apperrors.ErrStorageFailed, err)
	}
	return nil
}

// UpdateAssignment performs a full-replacement update. Zero matched rows is
// still reported as success.
func (s *assignmentServiceImpl) UpdateAssignment(ctx context.Context, assignment *models.Assignment) error {
	if err := validateAssignment(assignment); err != nil {
		return err
	}
	if assignment.ID <= 0 {
		return fmt.Errorf("%w: assignment id is required", apperrors.ErrValidationFailed)
	}

	if err := s.store.Update(ctx, assignment); err != nil {
		return fmt.Errorf("%w: updating assignment: %v", apperrors.ErrStorageFailed, err)
	}
	return nil
}

// DeleteAssignment removes an assignment.
func (s *assignmentServiceImpl) DeleteAssignment(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: assignment id is required", apperrors.ErrValidationFailed)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: deleting assignment: %v", apperrors.ErrStorageFailed, err)
	}
	return nil
}

// ListAssignments returns assignments with the most recent due date first,
// optionally narrowed to a class.
func (s *assignmentServiceImpl) ListAssignments(ctx context.Context, classID int64) ([]*models.Assignment, error) {
	assignments, err := s.store.GetAll(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("%w: listing assignments: %v", apperrors.ErrStorageFailed, err)
	}
	return assignments, nil
}
