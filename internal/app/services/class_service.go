package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/f24tech/edumate/internal/app/models"
	"github.com/f24tech/edumate/internal/pkg/apperrors"
)

// ClassStore is the persistence contract the class service depends on.
type ClassStore interface {
	Create(ctx context.Context, class *models.Class) error
	Update(ctx context.Context, class *models.Class) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]*models.Class, error)
}

// ClassService defines the interface for class operations
type ClassService interface {
	CreateClass(ctx context.Context, class *models.Class) error
	UpdateClass(ctx context.Context, class *models.Class) error
	DeleteClass(ctx context.Context, id int64) error
	ListClasses(ctx context.Context) ([]*models.Class, error)
}

type classServiceImpl struct {
	store ClassStore
}

// NewClassService creates a new class service instance
func NewClassService(store ClassStore) ClassService {
	return &classServiceImpl{
		store: store,
	}
}

// validateClass checks the required fields named by the relational
// contract: a class needs a name, nothing more.
func validateClass(class *models.Class) error {
	if class == nil {
		return fmt.Errorf("%w: class is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(class.Name) == "" {
		return fmt.Errorf("%w: class name is required", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateClass validates and inserts a new class.
func (s *classServiceImpl) CreateClass(ctx context.Context, class *models.Class) error {
	if err := validateClass(class); err != nil {
		return err
	}

	if err := s.store.Create(ctx, class); err != nil {
		return fmt.Errorf("%w: creating class: %v", apperrors.ErrStorageFailed, err)
	}
	return nil
}

// UpdateClass performs a full-replacement update. An update naming a
// non-existent id reports success when the statement executes cleanly,
// even though zero rows changed.
func (s *classServiceImpl) UpdateClass(ctx context.Context, class *models.Class) error {
	if err := validateClass(class); err != nil {
		return err
	}
	if class.ID <= 0 {
		return fmt.Errorf("%w: class id is required", apperrors.ErrValidationFailed)
	}

	if err := s.store.Update(ctx, class); err != nil {
		return fmt.Errorf("%w: updating class: %v", apperrors.ErrStorageFailed, err)
	}
	return nil
}

// DeleteClass removes a class and, by cascade, everything it owns.
func (s *classServiceImpl) DeleteClass(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: class id is required", apperrors.ErrValidationFailed)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: deleting class: %v", apperrors.ErrStorageFailed, err)
	}
	return nil
}

// ListClasses returns all classes ordered by name.
func (s *classServiceImpl) ListClasses(ctx context.Context) ([]*models.Class, error) {
	classes, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing classes: %v", apperrors.ErrStorageFailed, err)
	}
	return classes, nil
}
