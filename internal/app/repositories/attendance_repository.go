package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/f24tech/edumate/internal/app/models"
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

// Create inserts a new attendance record. A second record for the same
// (student, class, date) triple fails on the unique constraint; it is
// never merged or overwritten.
func (r *AttendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	query := `
		INSERT INTO attendance (student_id, class_id, date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	return r.db.QueryRow(ctx, query,
		attendance.StudentID,
		attendance.ClassID,
		attendance.Date,
		attendance.Status,
	).Scan(&attendance.ID, &attendance.CreatedAt)
}

// Update replaces every caller-supplied field of an attendance record.
// Zero matched rows still reports success.
func (r *AttendanceRepository) Update(ctx context.Context, attendance *models.Attendance) error {
	query := `
		UPDATE attendance
		SET student_id = $1, class_id = $2, date = $3, status = $4
		WHERE id = $5
	`

	_, err := r.db.Exec(ctx, query,
		attendance.StudentID,
		attendance.ClassID,
		attendance.Date,
		attendance.Status,
		attendance.ID,
	)
	return err
}

// Delete removes an attendance record.
func (r *AttendanceRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	return err
}

// GetAll retrieves attendance joined with student and class names, most
// recent date first. Non-zero classID and non-nil date each narrow the
// result.
func (r *AttendanceRepository) GetAll(ctx context.Context, classID int64, date *time.Time) ([]*models.Attendance, error) {
	query := `
		SELECT a.id, a.student_id, a.class_id, a.date, a.status,
		       a.created_at, COALESCE(s.name, '') AS student_name, COALESCE(c.name, '') AS class_name
		FROM attendance a
		LEFT JOIN students s ON a.student_id = s.id
		LEFT JOIN classes c ON a.class_id = c.id
	`

	var args []interface{}
	var conditions []string
	if classID > 0 {
		args = append(args, classID)
		conditions = append(conditions, fmt.Sprintf("a.class_id = $%d", len(args)))
	}
	if date != nil {
		args = append(args, *date)
		conditions = append(conditions, fmt.Sprintf("a.date = $%d", len(args)))
	}
	for i, cond := range conditions {
		if i == 0 {
			query += ` WHERE ` + cond
		} else {
			query += ` AND ` + cond
		}
	}
	query += ` ORDER BY a.date DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		var attendance models.Attendance
		if err := rows.Scan(
			&attendance.ID,
			&attendance.StudentID,
			&attendance.ClassID,
			&attendance.Date,
			&attendance.Status,
			&attendance.CreatedAt,
			&attendance.StudentName,
			&attendance.ClassName,
		); err != nil {
			return nil, err
		}
		records = append(records, &attendance)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
