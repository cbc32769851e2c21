// Package queue defines message payloads exchanged over the message
// broker.
package queue

// ReservationConfirmedEvent is published after a reservation commits.
// It carries enough for downstream consumers to build an audit trail
// without querying the primary database.
type ReservationConfirmedEvent struct {
	ReservationID string `json:"reservation_id"`
	RoomID        string `json:"room_id"`
	RoomNumber    string `json:"room_number"`
	RoomType      string `json:"room_type"`
	GuestName     string `json:"guest_name"`
	CheckIn       string `json:"check_in_date"`
	CheckOut      string `json:"check_out_date"`
	GuestCount    int    `json:"guest_count"`
	TotalAmount   string `json:"total_amount"`
	ConfirmedAt   string `json:"confirmed_at"`
}
