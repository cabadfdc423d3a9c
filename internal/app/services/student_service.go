package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/f24tech/edumate/internal/app/models"
	"github.com/f24tech/edumate/internal/pkg/apperrors"
)

// StudentStore is the persistence contract the student service depends on.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context, classID int64) ([]*models.Student, error)
}

// StudentService defines the interface for student operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) error
	UpdateStudent(ctx context.Context, student *models.Student) error
	DeleteStudent(ctx context.Context, id int64) error
	ListStudents(ctx context.Context, classID int64) ([]*models.Student, error)
}

type studentServiceImpl struct {
	store StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(store StudentStore) StudentService {
	return &studentServiceImpl{
		store: store,
	}
}

// validateStudent checks the required fields: a student needs a name and a
// class. Email, phone, roll number and address are optional; empty and
// absent are the same thing.
func validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(student.Name) == "" {
		return fmt.Errorf("%w: student name is required", apperrors.ErrValidationFailed)
	}
	if student.ClassID <= 0 {
		return fmt.Errorf("%w: class id is required", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateStudent validates and inserts a new student. Whether the class
// exists is decided by the FK constraint at insert time.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) error {
	if err := validateStudent(student); err != nil {
		return err
	}

	if err := s.store.Create(ctx, student); err != nil {
		return fmt.Errorf("%w: creating student: %v", apperrors.ErrStorageFailed, err)
	}
	return nil
}

// UpdateStudent performs a full-replacement update. Zero matched rows is
// still reported as success.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, student *models.Student) error {
	if err := validateStudent(student); err != nil {
		return err
	}
	if student.ID <= 0 {
		return fmt.Errorf("%w: student id is required", apperrors.ErrValidationFailed)
	}

	if err := s.store.Update(ctx, student); err != nil {
		return fmt.Errorf("%w: updating student: %v", apperrors.ErrStorageFailed, err)
	}
	return nil
}

// DeleteStudent removes a student and, by cascade, its fees and attendance.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: student id is required", apperrors.ErrValidationFailed)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: deleting student: %v", apperrors.ErrStorageFailed, err)
	}
	return nil
}

// ListStudents returns students ordered by name, optionally narrowed to a
// class. A filter matching zero rows yields an empty list, not an error.
func (s *studentServiceImpl) ListStudents(ctx context.Context, classID int64) ([]*models.Student, error) {
	students, err := s.store.GetAll(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("%w: listing students: %v", apperrors.ErrStorageFailed, err)
	}
	return students, nil
}
