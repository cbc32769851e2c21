package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment row statuses. The external gateway is the source of truth;
// VerifyPayment overwrites Status with whatever the gateway reports.
const (
	PaymentRowPending   = "pending"
	PaymentRowCompleted = "completed"
	PaymentRowFailed    = "failed"
)

// Payment correlates a reservation with an external payment session.
// TransactionRef holds the gateway's opaque reference; it is set when
// the session is opened and used to reconcile verification results.
type Payment struct {
	ID             uuid.UUID       `json:"payment_id"`     // payments.payment_id
	ReservationID  uuid.UUID       `json:"reservation_id"` // payments.reservation_id
	Amount         decimal.Decimal `json:"amount"`         // payments.amount
	Method         string          `json:"payment_method"` // payments.payment_method
	Status         string          `json:"payment_status"` // payments.payment_status
	TransactionRef string          `json:"transaction_id"` // payments.transaction_id
	CreatedAt      time.Time       `json:"created_at"`     // payments.created_at
}

// PaymentDetail is a payment joined with its reservation and room for
// the admin report.
type PaymentDetail struct {
	Payment
	GuestName  string    `json:"guest_name"`
	RoomID     uuid.UUID `json:"room_id"`
	RoomNumber string    `json:"room_number"`
	RoomType   string    `json:"room_type"`
}
