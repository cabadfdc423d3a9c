package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/f24tech/edumate/internal/app/models"
)

// FeeRepository handles database operations for fee records
type FeeRepository struct {
	db *pgxpool.Pool
}

// NewFeeRepository creates a new fee repository
func NewFeeRepository(db *pgxpool.Pool) *FeeRepository {
	return &FeeRepository{
		db: db,
	}
}

// Create inserts a new fee record. The student FK is enforced at insert
// time; there is no prior existence check.
func (r *FeeRepository) Create(ctx context.Context, fee *models.Fee) error {
	query := `
		INSERT INTO fees (student_id, amount, fee_type, status, due_date, paid_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	return r.db.QueryRow(ctx, query,
		fee.StudentID,
		fee.Amount,
		fee.FeeType,
		fee.Status,
		fee.DueDate,
		fee.PaidDate,
	).Scan(&fee.ID, &fee.CreatedAt)
}

// Update replaces every caller-supplied field of a fee record, including
// status and paid_date; the store derives neither from the other. Zero
// matched rows still reports success.
func (r *FeeRepository) Update(ctx context.Context, fee *models.Fee) error {
	query := `
		UPDATE fees
		SET student_id = $1, amount = $2, fee_type = $3, status = $4, due_date = $5, paid_date = $6
		WHERE id = $7
	`

	_, err := r.db.Exec(ctx, query,
		fee.StudentID,
		fee.Amount,
		fee.FeeType,
		fee.Status,
		fee.DueDate,
		fee.PaidDate,
		fee.ID,
	)
	return err
}

// Delete removes a fee record.
func (r *FeeRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM fees WHERE id = $1`, id)
	return err
}

// GetAll retrieves fees joined with student and class names, most recent
// due date first and dateless fees last. A non-empty status narrows the
// result to that status.
func (r *FeeRepository) GetAll(ctx context.Context, status models.FeeStatus) ([]*models.Fee, error) {
	query := `
		SELECT f.id, f.student_id, f.amount, f.fee_type, f.status, f.due_date, f.paid_date,
		       f.created_at, COALESCE(s.name, '') AS student_name, COALESCE(c.name, '') AS class_name
		FROM fees f
		LEFT JOIN students s ON f.student_id = s.id
		LEFT JOIN classes c ON s.class_id = c.id
	`

	var args []interface{}
	if status != "" {
		query += ` WHERE f.status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY f.due_date DESC NULLS LAST`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []*models.Fee
	for rows.Next() {
		var fee models.Fee
		if err := rows.Scan(
			&fee.ID,
			&fee.StudentID,
			&fee.Amount,
			&fee.FeeType,
			&fee.Status,
			&fee.DueDate,
			&fee.PaidDate,
			&fee.CreatedAt,
			&fee.StudentName,
			&fee.ClassName,
		); err != nil {
			return nil, err
		}
		fees = append(fees, &fee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fees, nil
}
