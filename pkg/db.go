package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// postgres error code of a unique_violation
const pgUniqueViolation = "23505"

// IsUniqueViolationError reports whether err, or an error it wraps, is a
// postgres unique constraint violation.
func IsUniqueViolationError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
