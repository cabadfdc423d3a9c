package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func TestIsUniqueViolation(t *testing.T) {
	err := uniqueViolation("attendance_student_class_date_key")

	assert.True(t, IsUniqueViolation(err, "attendance_student_class_date_key"))
	assert.False(t, IsUniqueViolation(err, "teachers_username_key"))
	assert.False(t, IsUniqueViolation(errors.New("plain error"), "attendance_student_class_date_key"))
	assert.False(t, IsUniqueViolation(nil, "attendance_student_class_date_key"))
}

func TestIsUniqueViolationWrapped(t *testing.T) {
	err := fmt.Errorf("insert failed: %w", uniqueViolation("teachers_username_key"))

	assert.True(t, IsUniqueViolation(err, "teachers_username_key"))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsForeignKeyViolation(uniqueViolation("any")))
	assert.False(t, IsForeignKeyViolation(errors.New("plain error")))
}
