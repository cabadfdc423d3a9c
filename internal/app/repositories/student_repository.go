package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/f24tech/edumate/internal/app/models"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create inserts a new student. The class FK is enforced at insert time;
// there is no prior existence check.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, email, phone, class_id, roll_number, address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	return r.db.QueryRow(ctx, query,
		student.Name,
		student.Email,
		student.Phone,
		student.ClassID,
		student.RollNumber,
		student.Address,
	).Scan(&student.ID, &student.CreatedAt)
}

// Update replaces every caller-supplied field of a student. Zero matched
// rows still reports success.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, email = $2, phone = $3, class_id = $4, roll_number = $5, address = $6
		WHERE id = $7
	`

	_, err := r.db.Exec(ctx, query,
		student.Name,
		student.Email,
		student.Phone,
		student.ClassID,
		student.RollNumber,
		student.Address,
		student.ID,
	)
	return err
}

// Delete removes a student; fees and attendance cascade with it.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	return err
}

// GetAll retrieves students joined with their class name, ordered by
// student name. A non-zero classID narrows the result to one class.
func (r *StudentRepository) GetAll(ctx context.Context, classID int64) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.name, s.email, s.phone, s.class_id, s.roll_number, s.address,
		       s.created_at, COALESCE(c.name, '') AS class_name
		FROM students s
		LEFT JOIN classes c ON s.class_id = c.id
	`

	var args []interface{}
	if classID > 0 {
		query += ` WHERE s.class_id = $1`
		args = append(args, classID)
	}
	query += ` ORDER BY s.name ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Email,
			&student.Phone,
			&student.ClassID,
			&student.RollNumber,
			&student.Address,
			&student.CreatedAt,
			&student.ClassName,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}
