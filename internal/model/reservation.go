package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reservation statuses. A reservation is confirmed the moment its
// insert commits; "cancelled" is terminal and has no outgoing
// transitions.
const (
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Payment statuses carried on the reservation itself. Only the
// payment correlator mutates these.
const (
	PaymentPending   = "pending"
	PaymentConfirmed = "confirmed"
	PaymentFailed    = "failed"
)

// Reservation records a guest's booking of a room for a half-open
// date range [CheckIn, CheckOut). Check-out day is exclusive, so a
// stay ending on day D does not conflict with one starting on day D.
//
// Fields:
//  ID                – primary key (UUID).
//  RoomID            – room being reserved.
//  GuestName         – full name of the booking guest.
//  GuestEmail        – contact email (optional in the original system).
//  GuestPhone        – contact phone.
//  CheckIn           – arrival date (inclusive).
//  CheckOut          – departure date (exclusive), strictly after CheckIn.
//  GuestCount        – number of guests, never above room capacity.
//  TotalAmount       – derived charge, immutable after creation.
//  PaymentStatus     – pending | confirmed | failed.
//  ReservationStatus – confirmed | cancelled.
//  CreatedAt         – creation timestamp (UTC).
type Reservation struct {
	ID                uuid.UUID       `json:"reservation_id"`     // reservations.reservation_id
	RoomID            uuid.UUID       `json:"room_id"`            // reservations.room_id
	GuestName         string          `json:"guest_name"`         // reservations.guest_name
	GuestEmail        string          `json:"guest_email"`        // reservations.guest_email
	GuestPhone        string          `json:"guest_phone"`        // reservations.guest_phone
	CheckIn           time.Time       `json:"check_in_date"`      // reservations.check_in_date
	CheckOut          time.Time       `json:"check_out_date"`     // reservations.check_out_date
	GuestCount        int             `json:"guest_count"`        // reservations.guest_count
	TotalAmount       decimal.Decimal `json:"total_amount"`       // reservations.total_amount
	PaymentStatus     string          `json:"payment_status"`     // reservations.payment_status
	ReservationStatus string          `json:"reservation_status"` // reservations.reservation_status
	CreatedAt         time.Time       `json:"created_at"`         // reservations.created_at
}

// ReservationDetail joins a reservation with the display attributes of
// its room. Returned by read endpoints; the booking engine itself only
// works with Reservation.
type ReservationDetail struct {
	Reservation
	RoomNumber string `json:"room_number"`
	RoomType   string `json:"room_type"`
	Amenities  string `json:"amenities,omitempty"`
}
