package services

import (
	"context"
	"fmt"
	"time"

	"github.com/f24tech/edumate/internal/app/migrations"
	"github.com/f24tech/edumate/internal/app/models"
	"github.com/f24tech/edumate/internal/pkg/apperrors"
	"github.com/f24tech/edumate/internal/pkg/dberrors"
)

// AttendanceStore is the persistence contract the attendance service
// depends on.
type AttendanceStore interface {
	Create(ctx context.Context, attendance *models.Attendance) error
	Update(ctx context.Context, attendance *models.Attendance) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context, classID int64, date *time.Time) ([]*models.Attendance, error)
}

// AttendanceService defines the interface for attendance operations
type AttendanceService interface {
	CreateAttendance(ctx context.Context, attendance *models.Attendance) error
	UpdateAttendance(ctx context.Context, attendance *models.Attendance) error
	DeleteAttendance(ctx context.Context, id int64) error
	ListAttendance(ctx context.Context, classID int64, date *time.Time) ([]*models.Attendance, error)
}

type attendanceServiceImpl struct {
	store AttendanceStore
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(store AttendanceStore) AttendanceService {
	return &attendanceServiceImpl{
		store: store,
	}
}

func validateAttendance(attendance *models.Attendance) error {
	if attendance == nil {
		return fmt.Errorf("%w: attendance is nil", apperrors.ErrValidationFailed)
	}
	if attendance.StudentID <= 0 {
		return fmt.Errorf("%w: student id is required", apperrors.ErrValidationFailed)
	}
	if attendance.ClassID <= 0 {
		return fmt.Errorf("%w: class id is required", apperrors.ErrValidationFailed)
	}
	if attendance.Date.IsZero() {
		return fmt.Errorf("%w: date is required", apperrors.ErrValidationFailed)
	}
	if attendance.Status == "" {
		return fmt.Errorf("%w: status is required", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateAttendance validates and inserts a new attendance record. A second
// record for the same (student, class, date) triple fails; it is never
// merged.
func (s *attendanceServiceImpl) CreateAttendance(ctx context.Context, attendance *models.Attendance) error {
	if err := validateAttendance(attendance); err != nil {
		return err
	}

	if err := s.store.Create(ctx, attendance); err != nil {
		if dberrors.IsUniqueViolation(err, migrations.AttendanceUniqueConstraint) {
			return fmt.Errorf("%w: attendance already recorded for this student, class and date", apperrors.ErrDuplicateRecord)
		}
		return fmt.Errorf("%w: creating attendance: %v", apperrors.ErrStorageFailed, err)
	}
	return nil
}

// UpdateAttendance performs a full-replacement update. Moving a record
// onto an already-taken triple fails the same way a duplicate create does.
// Zero matched rows is still reported as success.
func (s *attendanceServiceImpl) UpdateAttendance(ctx context.Context, attendance *models.Attendance) error {
	if err := validateAttendance(attendance); err != nil {
		return err
	}
	if attendance.ID <= 0 {
		return fmt.Errorf("%w: attendance id is required", apperrors.ErrValidationFailed)
	}

	if err := s.store.Update(ctx, attendance); err != nil {
		if dberrors.IsUniqueViolation(err, migrations.AttendanceUniqueConstraint) {
			return fmt.Errorf("%w: attendance already recorded for this student, class and date", apperrors.ErrDuplicateRecord)
		}
		return fmt.Errorf("%w: updating attendance: %v", apperrors.ErrStorageFailed, err)
	}
	return nil
}

// DeleteAttendance removes an attendance record.
func (s *attendanceServiceImpl) DeleteAttendance(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: attendance id is required", apperrors.ErrValidationFailed)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: deleting attendance: %v", apperrors.ErrStorageFailed, err)
	}
	return nil
}

// ListAttendance returns attendance records most recent first, optionally
// narrowed by class and date.
func (s *attendanceServiceImpl) ListAttendance(ctx context.Context, classID int64, date *time.Time) ([]*models.Attendance, error) {
	records, err := s.store.GetAll(ctx, classID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: listing attendance: %v", apperrors.ErrStorageFailed, err)
	}
	return records, nil
}
