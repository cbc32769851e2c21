package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/costariann/gye-nyame-hotel/internal/model"
)

// ListFilter narrows ListReservations. Zero values mean "no filter".
type ListFilter struct {
	RoomID uuid.UUID // uuid.Nil matches every room
	Status string    // "" matches every reservation status
}

// Tx is the unit of work handed to the function passed to Store.InTx.
// Every method runs inside the same database transaction, so the
// overlap count and the subsequent insert observe a consistent view of
// the room's reservation set.
//
// Row-lookup methods report a missing row with sql.ErrNoRows, matching
// the underlying driver; the service maps that onto its sentinels.
type Tx interface {
	// RoomForUpdate loads a room and locks its row for the remainder
	// of the transaction. The lock serialises concurrent bookings of
	// the same room, which is what makes the availability check and
	// the insert a single atomic unit.
	RoomForUpdate(ctx context.Context, roomID uuid.UUID) (*model.Room, error)

	// CountOverlapping counts non-cancelled reservations on the room
	// whose [check_in, check_out) range overlaps the given one under
	// half-open semantics. exclude removes one reservation from
	// consideration (uuid.Nil excludes nothing).
	CountOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, exclude uuid.UUID) (int, error)

	// ActiveDiscount returns the discount applying to the room at the
	// given date, or (nil, nil) when none qualifies. When several
	// windows match, the one with the latest start date wins.
	ActiveDiscount(ctx context.Context, roomID uuid.UUID, at time.Time) (*model.Discount, error)

	// InsertReservation persists a fully populated reservation row.
	InsertReservation(ctx context.Context, res *model.Reservation) error

	// ReservationForUpdate loads a reservation and locks its row.
	ReservationForUpdate(ctx context.Context, id uuid.UUID) (*model.Reservation, error)

	// MarkCancelled sets reservation_status to cancelled. The row is
	// kept for the audit trail and payment_status is untouched.
	MarkCancelled(ctx context.Context, id uuid.UUID) error
}

// Store is the persistence boundary of the booking engine. The
// postgres implementation lives in internal/repository; tests use an
// in-memory fake with the same locking semantics.
type Store interface {
	// InTx runs fn inside a transaction, committing when fn returns
	// nil and rolling back otherwise. No partial state survives a
	// failed fn.
	InTx(ctx context.Context, fn func(Tx) error) error

	// GetReservation returns a reservation joined with its room's
	// display attributes, or sql.ErrNoRows.
	GetReservation(ctx context.Context, id uuid.UUID) (*model.ReservationDetail, error)

	// ListReservations returns reservations matching the filter,
	// newest check-in first.
	ListReservations(ctx context.Context, f ListFilter) ([]model.ReservationDetail, error)

	// ListOpenRooms returns rooms with status available and capacity
	// of at least minCapacity, ordered by room number.
	ListOpenRooms(ctx context.Context, minCapacity int) ([]model.Room, error)

	// CountOverlapping is the read-only variant used by searches and
	// advisory availability checks. Booking decisions always use the
	// Tx variant instead.
	CountOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, exclude uuid.UUID) (int, error)

	// ActiveDiscount is the read-only variant of Tx.ActiveDiscount.
	ActiveDiscount(ctx context.Context, roomID uuid.UUID, at time.Time) (*model.Discount, error)
}
