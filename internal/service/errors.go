package service

import (
	"errors"

	"github.com/lib/pq"
)

// Error taxonomy surfaced to handlers. All of these are client-correctable
// and are never retried; anything else is a server-side failure.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
)

const pqUniqueViolation = "23505"

// isUniqueViolation reports whether the database rejected a write on a
// unique index. Used as a backstop behind the service-level duplicate
// checks, which race with concurrent writers.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}
