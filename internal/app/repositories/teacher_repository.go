package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/f24tech/edumate/internal/app/models"
)

// TeacherRepository handles database operations for teacher credentials
type TeacherRepository struct {
	db *pgxpool.Pool
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
	}
}

// GetByUsername retrieves a teacher credential by username. Returns
// pgx.ErrNoRows when no such teacher exists; the caller decides how much
// of that to reveal.
func (r *TeacherRepository) GetByUsername(ctx context.Context, username string) (*models.Teacher, error) {
	query := `
		SELECT id, username, password, created_at
		FROM teachers
		WHERE username = $1
	`

	var teacher models.Teacher
	err := r.db.QueryRow(ctx, query, username).Scan(
		&teacher.ID,
		&teacher.Username,
		&teacher.Password,
		&teacher.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &teacher, nil
}

// Count returns the number of stored teacher credentials.
func (r *TeacherRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM teachers`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting teachers: %w", err)
	}
	return count, nil
}
