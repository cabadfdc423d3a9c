package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/f24tech/edumate/internal/pkg/auth"
)

const (
	defaultTeacherUsername = "teacher"
	defaultTeacherPassword = "1234"
)

// EnsureDefaultTeacher inserts the default teacher credential if none
// exists. The insert is guarded by the username uniqueness constraint
// rather than a prior existence check, so concurrent first runs cannot
// both insert; a duplicate is treated as success.
func EnsureDefaultTeacher(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	hashed, err := auth.HashPassword(defaultTeacherPassword)
	if err != nil {
		return err
	}

	tag, err := dbPool.Exec(ctx, `
		INSERT INTO teachers (username, password)
		VALUES ($1, $2)
		ON CONFLICT (username) DO NOTHING`,
		defaultTeacherUsername, hashed)
	if err != nil {
		return err
	}

	if tag.RowsAffected() > 0 {
		lgr.Info().Str("username", defaultTeacherUsername).Msg("Default teacher credential created")
	}

	return nil
}
