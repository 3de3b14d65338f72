package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrInvalidConfig     = errors.New("invalid postgres configuration")
	ErrConnectionFailed  = errors.New("failed to connect to postgres")
	ErrHealthcheckFailed = errors.New("postgres healthcheck failed")
	ErrMigrationFailed   = errors.New("failed to apply migrations")
	ErrMigrationsMissing = errors.New("migrations directory not found")
)

// IsNotFound reports whether err is pgx.ErrNoRows, for uniform
// "not found" handling across stores.
func IsNotFound(err error) bool {
	return err != nil && errors.Is(err, pgx.ErrNoRows)
}

// IsUniqueViolation detects unique constraint violations (SQLSTATE 23505),
// e.g. a duplicate member email.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// IsExclusionViolation detects exclusion constraint violations
// (SQLSTATE 23P01). The memberships table uses a gist exclusion
// constraint to reject overlapping date ranges per member.
func IsExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}

// IsForeignKeyViolation detects referential integrity violations
// (SQLSTATE 23503).
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
