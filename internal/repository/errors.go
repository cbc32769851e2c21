// Package repository implements the Postgres persistence layer. Row
// lookups report a missing row with sql.ErrNoRows so callers can use
// errors.Is against the driver sentinel; the values below cover the
// remaining failure scenarios that higher layers need to tell apart.
package repository

import (
	"errors"

	"github.com/lib/pq"
)

// ErrConflict is returned when a write cannot proceed because of
// dependent state, such as deleting a room that reservations still
// reference. Handlers translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// ErrDuplicate is returned when an insert violates a uniqueness
// constraint, such as re-registering an email or reusing a room type.
var ErrDuplicate = errors.New("duplicate")

// mapPQError converts Postgres constraint violations onto the package
// sentinels and passes every other error through.
func mapPQError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			return ErrDuplicate
		case "23503": // foreign_key_violation
			return ErrConflict
		}
	}
	return err
}
