package utils

import (
	"Crenza-Backend/domain"
	"errors"
	"fmt"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes worth calling out in logs.
const (
	PgErrUniqueViolation     = "23505"
	PgErrForeignKeyViolation = "23503"
	PgErrConnectionFailure   = "08006"
)

// PersistenceError wraps a store failure so callers can match it with
// errors.Is(err, domain.ErrPersistence). Postgres errors keep their SQLSTATE.
func PersistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrPersistence) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%w: %s: %s (SQLSTATE %s): %w", domain.ErrPersistence, op, pgErrorKind(pgErr.Code), pgErr.Code, err)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrPersistence, op, err)
}

func pgErrorKind(code string) string {
	switch code {
	case PgErrUniqueViolation:
		return "unique violation"
	case PgErrForeignKeyViolation:
		return "foreign key violation"
	case PgErrConnectionFailure:
		return "connection failure"
	default:
		return "database error"
	}
}
