package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f24tech/edumate/internal/app/models"
	"github.com/f24tech/edumate/internal/pkg/apperrors"
)

type fakeFeeStore struct {
	created      []*models.Fee
	updated      []*models.Fee
	listedStatus models.FeeStatus
	fees         []*models.Fee
	err          error
}

func (f *fakeFeeStore) Create(_ context.Context, fee *models.Fee) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, fee)
	return nil
}

func (f *fakeFeeStore) Update(_ context.Context, fee *models.Fee) error {
	if f.err != nil {
		return f.err
	}
	f.updated = append(f.updated, fee)
	return nil
}

func (f *fakeFeeStore) Delete(_ context.Context, _ int64) error { return f.err }

func (f *fakeFeeStore) GetAll(_ context.Context, status models.FeeStatus) ([]*models.Fee, error) {
	f.listedStatus = status
	if f.err != nil {
		return nil, f.err
	}
	return f.fees, nil
}

func TestCreateFeeDefaultsStatusToPending(t *testing.T) {
	store := &fakeFeeStore{}
	svc := NewFeeService(store)

	fee := &models.Fee{StudentID: 1, Amount: 500, FeeType: "Tuition"}
	require.NoError(t, svc.CreateFee(context.Background(), fee))
	assert.Equal(t, models.FeeStatusPending, fee.Status)
}

func TestCreateFeeKeepsExplicitStatus(t *testing.T) {
	store := &fakeFeeStore{}
	svc := NewFeeService(store)

	paidDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	fee := &models.Fee{StudentID: 1, Amount: 500, FeeType: "Tuition", Status: models.FeeStatusPaid, PaidDate: &paidDate}
	require.NoError(t, svc.CreateFee(context.Background(), fee))
	assert.Equal(t, models.FeeStatusPaid, fee.Status)
	assert.Equal(t, &paidDate, fee.PaidDate)
}

func TestCreateFeeValidation(t *testing.T) {
	store := &fakeFeeStore{}
	svc := NewFeeService(store)

	cases := map[string]*models.Fee{
		"missing student": {Amount: 500, FeeType: "Tuition"},
		"zero amount":     {StudentID: 1, FeeType: "Tuition"},
		"negative amount": {StudentID: 1, Amount: -10, FeeType: "Tuition"},
		"missing type":    {StudentID: 1, Amount: 500},
	}

	for name, fee := range cases {
		t.Run(name, func(t *testing.T) {
			err := svc.CreateFee(context.Background(), fee)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
	assert.Empty(t, store.created)
}

// Status may move from any value to any other. Going straight to paid
// without passing through pending is allowed.
func TestUpdateFeeAllowsAnyStatusTransition(t *testing.T) {
	store := &fakeFeeStore{}
	svc := NewFeeService(store)

	fee := &models.Fee{ID: 7, StudentID: 1, Amount: 500, FeeType: "Tuition", Status: models.FeeStatusPaid}
	require.NoError(t, svc.UpdateFee(context.Background(), fee))

	fee.Status = models.FeeStatusOverdue
	require.NoError(t, svc.UpdateFee(context.Background(), fee))
	assert.Len(t, store.updated, 2)
}

func TestUpdateFeeBlankStatusDefaultsToPending(t *testing.T) {
	store := &fakeFeeStore{}
	svc := NewFeeService(store)

	fee := &models.Fee{ID: 7, StudentID: 1, Amount: 500, FeeType: "Tuition"}
	require.NoError(t, svc.UpdateFee(context.Background(), fee))
	assert.Equal(t, models.FeeStatusPending, fee.Status)
}

func TestListFeesStatusFilter(t *testing.T) {
	store := &fakeFeeStore{fees: []*models.Fee{{ID: 1, StudentName: "Amir", ClassName: "Grade 5"}}}
	svc := NewFeeService(store)

	_, err := svc.ListFees(context.Background(), models.FeeStatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.FeeStatusPending, store.listedStatus)

	// "all" means no filter at the store.
	_, err = svc.ListFees(context.Background(), "all")
	require.NoError(t, err)
	assert.Equal(t, models.FeeStatus(""), store.listedStatus)
}
