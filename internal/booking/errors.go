// Package booking implements the reservation lifecycle engine: it
// decides whether a room is free for a requested date range,
// atomically reserves it, computes the charge and owns the
// confirm/cancel state machine.
package booking

import "errors"

// Business-rule sentinels. Handlers translate these into stable HTTP
// responses; anything else that escapes the service is a persistence
// failure and maps to a 500 with no partial state persisted.
var (
	// ErrInvalidInput is returned when a required guest field is
	// missing or a numeric field is non-positive.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDateRangeInvalid is returned when check-out is not strictly
	// after check-in.
	ErrDateRangeInvalid = errors.New("check-out date must be after check-in date")

	// ErrRoomNotFound is returned when the room does not exist or its
	// type does not match the requested one.
	ErrRoomNotFound = errors.New("room not found")

	// ErrReservationNotFound is returned when no reservation exists
	// for the given id.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrCapacityExceeded is returned when the guest count is above
	// the room's capacity.
	ErrCapacityExceeded = errors.New("guest count exceeds room capacity")

	// ErrRoomUnavailable is returned when an existing non-cancelled
	// reservation overlaps the requested range.
	ErrRoomUnavailable = errors.New("room not available for selected dates")

	// ErrAlreadyCancelled signals an idempotent repeat cancellation.
	// The reservation stays cancelled; callers may treat this as
	// non-fatal.
	ErrAlreadyCancelled = errors.New("reservation already cancelled")
)
