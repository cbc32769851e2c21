package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Discount types: "percentage" subtracts value% of the base amount,
// "fixed" subtracts the value itself (never below zero).
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Discount is a promotional adjustment on a room, valid only inside
// its [StartDate, EndDate] window and while Active is true. Created by
// administrators; read-only to the booking engine.
type Discount struct {
	ID        uuid.UUID       `json:"discount_id"`    // discount.discount_id
	RoomID    uuid.UUID       `json:"room_id"`        // discount.room_id
	Type      string          `json:"discount_type"`  // discount.discount_type
	Value     decimal.Decimal `json:"discount_value"` // discount.discount_value
	PromoCode string          `json:"promo_code"`     // discount.promo_code
	StartDate time.Time       `json:"start_date"`     // discount.start_date
	EndDate   time.Time       `json:"end_date"`       // discount.end_date
	Active    bool            `json:"status"`         // discount.status
}
