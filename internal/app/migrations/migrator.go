package migrations

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/f24tech/edumate/internal/db"
)

// Migrator manages the records schema. All table creation is guarded by
// IF NOT EXISTS, so EnsureSchema may run any number of times, including
// concurrently on first boot, without erroring or duplicating anything.
// Nothing else in the service mutates the schema.
type Migrator struct {
	db *db.PostgresDB
}

// NewMigrator creates a new migrator
func NewMigrator(database *db.PostgresDB) *Migrator {
	return &Migrator{
		db: database,
	}
}

// schemaStatements defines the seven tables in dependency order. Cascade
// deletion lives entirely in the ON DELETE CASCADE clauses; no application
// code cleans up child rows.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS teachers (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(50) NOT NULL,
		password VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT teachers_username_key UNIQUE (username)
	)`,

	`CREATE TABLE IF NOT EXISTS classes (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS students (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(100) NOT NULL DEFAULT '',
		phone VARCHAR(20) NOT NULL DEFAULT '',
		class_id BIGINT NOT NULL REFERENCES classes(id) ON DELETE CASCADE,
		roll_number VARCHAR(20) NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS assignments (
		id BIGSERIAL PRIMARY KEY,
		title VARCHAR(200) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		class_id BIGINT NOT NULL REFERENCES classes(id) ON DELETE CASCADE,
		due_date DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS notes (
		id BIGSERIAL PRIMARY KEY,
		title VARCHAR(200) NOT NULL,
		content TEXT NOT NULL DEFAULT '',
		class_id BIGINT NOT NULL REFERENCES classes(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS fees (
		id BIGSERIAL PRIMARY KEY,
		student_id BIGINT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		amount NUMERIC(10,2) NOT NULL,
		fee_type VARCHAR(100) NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'paid', 'overdue')),
		due_date DATE,
		paid_date DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS attendance (
		id BIGSERIAL PRIMARY KEY,
		student_id BIGINT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		class_id BIGINT NOT NULL REFERENCES classes(id) ON DELETE CASCADE,
		date DATE NOT NULL,
		status TEXT NOT NULL
			CHECK (status IN ('present', 'absent', 'late')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT attendance_student_class_date_key UNIQUE (student_id, class_id, date)
	)`,
}

// AttendanceUniqueConstraint is the constraint hit when a second attendance
// record is created for the same (student, class, date) triple.
const AttendanceUniqueConstraint = "attendance_student_class_date_key"

// TeacherUsernameConstraint guards teacher username uniqueness; the seeder
// relies on it instead of a read-then-write existence check.
const TeacherUsernameConstraint = "teachers_username_key"

// EnsureSchema creates all tables and constraints that do not yet exist.
// The statements run in one transaction, so a partially created schema is
// never left behind.
func (m *Migrator) EnsureSchema(ctx context.Context) error {
	return m.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for _, stmt := range schemaStatements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("failed to apply schema statement: %w", err)
			}
		}
		return nil
	})
}
