package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/f24tech/edumate/internal/app/models"
)

// AssignmentRepository handles database operations for assignments
type AssignmentRepository struct {
	db *pgxpool.Pool
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{
		db: db,
	}
}

// Create inserts a new assignment.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	query := `
		INSERT INTO assignments (title, description, class_id, due_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	return r.db.QueryRow(ctx, query,
		assignment.Title,
		assignment.Description,
		assignment.ClassID,
		assignment.DueDate,
	).Scan(&assignment.ID, &assignment.CreatedAt)
}

// Update replaces every caller-supplied field of an assignment. Zero
// matched rows still reports success.
func (r *AssignmentRepository) Update(ctx context.Context, assignment *models.Assignment) error {
	query := `
		UPDATE assignments
		SET title = $1, description = $2, class_id = $3, due_date = $4
		WHERE id = $5
	`

	_, err := r.db.Exec(ctx, query,
		assignment.Title,
		assignment.Description,
		assignment.ClassID,
		assignment.DueDate,
		assignment.ID,
	)
	return err
}

// Delete removes an assignment.
func (r *AssignmentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	return err
}

// GetAll retrieves assignments joined with their class name, most recent
// due date first and dateless assignments last. A non-zero classID narrows
// the result to one class.
func (r *AssignmentRepository) GetAll(ctx context.Context, classID int64) ([]*models.Assignment, error) {
	query := `
		SELECT a.id, a.title, a.description, a.class_id, a.due_date,
		       a.created_at, COALESCE(c.name, '') AS class_name
		FROM assignments a
		LEFT JOIN classes c ON a.class_id = c.id
	`

	var args []interface{}
	if classID > 0 {
		query += ` WHERE a.class_id = $1`
		args = append(args, classID)
	}
	query += ` ORDER BY a.due_date DESC NULLS LAST`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*models.Assignment
	for rows.Next() {
		var assignment models.Assignment
		if err := rows.Scan(
			&assignment.ID,
			&assignment.Title,
			&assignment.Description,
			&assignment.ClassID,
			&assignment.DueDate,
			&assignment.CreatedAt,
			&assignment.ClassName,
		); err != nil {
			return nil, err
		}
		assignments = append(assignments, &assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
