package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/f24tech/edumate/internal/app/models"
)

// ClassRepository handles database operations for classes
type ClassRepository struct {
	db *pgxpool.Pool
}

// NewClassRepository creates a new class repository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{
		db: db,
	}
}

// Create inserts a new class and fills in its server-assigned fields.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	query := `
		INSERT INTO classes (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	return r.db.QueryRow(ctx, query, class.Name, class.Description).
		Scan(&class.ID, &class.CreatedAt)
}

// Update replaces every caller-supplied field of a class. A statement that
// matches zero rows still reports success; only statement failure is an
// error.
func (r *ClassRepository) Update(ctx context.Context, class *models.Class) error {
	query := `
		UPDATE classes
		SET name = $1, description = $2
		WHERE id = $3
	`

	_, err := r.db.Exec(ctx, query, class.Name, class.Description, class.ID)
	return err
}

// Delete removes a class. Students, assignments, notes and attendance
// referencing it go with it via the FK cascades.
func (r *ClassRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM classes WHERE id = $1`, id)
	return err
}

// GetAll retrieves all classes ordered by name.
func (r *ClassRepository) GetAll(ctx context.Context) ([]*models.Class, error) {
	query := `
		SELECT id, name, description, created_at
		FROM classes
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		var class models.Class
		if err := rows.Scan(
			&class.ID,
			&class.Name,
			&class.Description,
			&class.CreatedAt,
		); err != nil {
			return nil, err
		}
		classes = append(classes, &class)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return classes, nil
}
