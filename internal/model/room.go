package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Room statuses. A room marked unavailable is excluded from search
// results but keeps its existing reservations.
const (
	RoomAvailable   = "available"
	RoomUnavailable = "unavailable"
)

// Room describes a single bookable hotel room. Rooms are provisioned
// by administrators and referenced by reservations; a room is never
// deleted while reservations point at it.
//
// Fields:
//  ID            – primary key (UUID).
//  RoomNumber    – door number shown to guests.
//  RoomType      – type label ("Standard Double", "Deluxe Suite", ...).
//  Capacity      – maximum guest count, always > 0.
//  PricePerNight – nightly rate with 2-decimal precision.
//  Amenities     – opaque free-form amenity text.
//  Status        – "available" or "unavailable".
type Room struct {
	ID            uuid.UUID       `json:"room_id"`         // rooms.room_id
	RoomNumber    string          `json:"room_number"`     // rooms.room_number
	RoomType      string          `json:"room_type"`       // rooms.room_type
	Capacity      int             `json:"capacity"`        // rooms.capacity
	PricePerNight decimal.Decimal `json:"price_per_night"` // rooms.price_per_night
	Amenities     string          `json:"amenities"`       // rooms.amenities
	Status        string          `json:"status"`          // rooms.status
}

// BookedRange is a reserved date window on a room, exposed on public
// room listings so clients can grey out taken nights.
type BookedRange struct {
	CheckIn  string `json:"check_in_date"`
	CheckOut string `json:"check_out_date"`
}
