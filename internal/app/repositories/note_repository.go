package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/f24tech/edumate/internal/app/models"
)

// NoteRepository handles database operations for class notes
type NoteRepository struct {
	db *pgxpool.Pool
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{
		db: db,
	}
}

// Create inserts a new note.
func (r *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	query := `
		INSERT INTO notes (title, content, class_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	return r.db.QueryRow(ctx, query,
		note.Title,
		note.Content,
		note.ClassID,
	).Scan(&note.ID, &note.CreatedAt)
}

// Update replaces every caller-supplied field of a note. Zero matched rows
// still reports success.
func (r *NoteRepository) Update(ctx context.Context, note *models.Note) error {
	query := `
		UPDATE notes
		SET title = $1, content = $2, class_id = $3
		WHERE id = $4
	`

	_, err := r.db.Exec(ctx, query, note.Title, note.Content, note.ClassID, note.ID)
	return err
}

// Delete removes a note.
func (r *NoteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	return err
}

// GetAll retrieves notes joined with their class name, newest first. A
// non-zero classID narrows the result to one class.
func (r *NoteRepository) GetAll(ctx context.Context, classID int64) ([]*models.Note, error) {
	query := `
		SELECT n.id, n.title, n.content, n.class_id,
		       n.created_at, COALESCE(c.name, '') AS class_name
		FROM notes n
		LEFT JOIN classes c ON n.class_id = c.id
	`

	var args []interface{}
	if classID > 0 {
		query += ` WHERE n.class_id = $1`
		args = append(args, classID)
	}
	query += ` ORDER BY n.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []*models.Note
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(
			&note.ID,
			&note.Title,
			&note.Content,
			&note.ClassID,
			&note.CreatedAt,
			&note.ClassName,
		); err != nil {
			return nil, err
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notes, nil
}
