package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/f24tech/edumate/internal/app/models"
	"github.com/f24tech/edumate/internal/pkg/apperrors"
)

// FeeStore is the persistence contract the fee service depends on.
type FeeStore interface {
	Create(ctx context.Context, fee *models.Fee) error
	Update(ctx context.Context, fee *models.Fee) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context, status models.FeeStatus) ([]*models.Fee, error)
}

// FeeService defines the interface for fee record operations
type FeeService interface {
	CreateFee(ctx context.Context, fee *models.Fee) error
	UpdateFee(ctx context.Context, fee *models.Fee) error
	DeleteFee(ctx context.Context, id int64) error
	ListFees(ctx context.Context, status models.FeeStatus) ([]*models.Fee, error)
}

type feeServiceImpl struct {
	store FeeStore
}

// NewFeeService creates a new fee service instance
func NewFeeService(store FeeStore) FeeService {
	return &feeServiceImpl{
		store: store,
	}
}

// validateFee checks the required fields: student, amount, fee type. The
// status value itself is constrained by the store, not here, and no
// transition graph is enforced; paid_date is caller-supplied and never
// derived from status.
func validateFee(fee *models.Fee) error {
	if fee == nil {
		return fmt.Errorf("%w: fee is nil", apperrors.ErrValidationFailed)
	}
	if fee.StudentID <= 0 {
		return fmt.Errorf("%w: student id is required", apperrors.ErrValidationFailed)
	}
	if fee.Amount <= 0 {
		return fmt.Errorf("%w: amount is required", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(fee.FeeType) == "" {
		return fmt.Errorf("%w: fee type is required", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateFee validates and inserts a new fee record. A blank status
// defaults to pending.
func (s *feeServiceImpl) CreateFee(ctx context.Context, fee *models.Fee) error {
	if err := validateFee(fee); err != nil {
		return err
	}
	if fee.Status == "" {
		fee.Status = models.FeeStatusPending
	}

	if err := s.store.Create(ctx, fee); err != nil {
		return fmt.Errorf("%w: creating fee: %v", apperrors.ErrStorageFailed, err)
	}
	return nil
}

// UpdateFee performs a full-replacement update. Any status may be set from
// any other, including straight to paid. Zero matched rows is still
// reported as success.
func (s *feeServiceImpl) UpdateFee(ctx context.Context, fee *models.Fee) error {
	if err := validateFee(fee); err != nil {
		return err
	}
	if fee.ID <= 0 {
		return fmt.Errorf("%w: fee id is required", apperrors.ErrValidationFailed)
	}
	if fee.Status == "" {
		fee.Status = models.FeeStatusPending
	}

	if err := s.store.Update(ctx, fee); err != nil {
		return fmt.Errorf("%w: updating fee: %v", apperrors.ErrStorageFailed, err)
	}
	return nil
}

// DeleteFee removes a fee record.
func (s *feeServiceImpl) DeleteFee(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: fee id is required", apperrors.ErrValidationFailed)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: deleting fee: %v", apperrors.ErrStorageFailed, err)
	}
	return nil
}

// ListFees returns fees with the most recent due date first. An empty
// status or "all" returns everything.
func (s *feeServiceImpl) ListFees(ctx context.Context, status models.FeeStatus) ([]*models.Fee, error) {
	if status == "all" {
		status = ""
	}

	fees, err := s.store.GetAll(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("%w: listing fees: %v", apperrors.ErrStorageFailed, err)
	}
	return fees, nil
}
