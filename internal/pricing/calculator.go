// Package pricing computes reservation charges from a stay's date
// range, the room's nightly rate and an optional promotional discount.
// All arithmetic is done on decimals; floats never touch money.
package pricing

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/costariann/gye-nyame-hotel/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Nights returns the number of billable nights in the half-open range
// [checkIn, checkOut). Partial days round up, so any checkOut after
// checkIn yields at least one night.
func Nights(checkIn, checkOut time.Time) int {
	hours := checkOut.Sub(checkIn).Hours()
	return int(math.Ceil(hours / 24))
}

// ComputeCharge returns the night count and total amount for a stay.
// Base amount is nights × rate. A percentage discount subtracts
// value% of the base; a fixed discount subtracts the value itself,
// clamped so the total never goes below zero. The result is rounded
// to 2 decimal places.
//
// Callers must have validated checkOut > checkIn; the discount may be
// nil when no promotion applies.
func ComputeCharge(checkIn, checkOut time.Time, nightlyRate decimal.Decimal, d *model.Discount) (int, decimal.Decimal) {
	nights := Nights(checkIn, checkOut)
	total := nightlyRate.Mul(decimal.NewFromInt(int64(nights)))

	if d != nil {
		switch d.Type {
		case model.DiscountPercentage:
			total = total.Sub(total.Mul(d.Value).Div(hundred))
		case model.DiscountFixed:
			total = total.Sub(d.Value)
		}
	}
	if total.IsNegative() {
		total = decimal.Zero
	}
	return nights, total.Round(2)
}
