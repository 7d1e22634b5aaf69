package pgsql

import (
	"errors"
	"strings"

	"github.com/ecodeed/academy_backend/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// mapUniqueViolation turns a Postgres unique-violation into the matching
// domain conflict error based on the violated constraint. The storage
// layer is the single point where uniqueness races are decided, so this
// is the only place a concurrent duplicate registration can lose.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return nil
	}
	name := pgErr.ConstraintName
	switch {
	case strings.Contains(name, "email"):
		return apperrors.ErrDuplicateEmail
	case strings.Contains(name, "google_id"),
		strings.Contains(name, "facebook_id"),
		strings.Contains(name, "twitter_id"):
		return apperrors.ErrDuplicateProviderID
	default:
		return apperrors.ErrDuplicate
	}
}
