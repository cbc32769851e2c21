package pricing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/costariann/gye-nyame-hotel/internal/model"
	"github.com/costariann/gye-nyame-hotel/internal/pricing"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"single night", date(2026, 3, 10), date(2026, 3, 11), 1},
		{"two nights", date(2026, 3, 10), date(2026, 3, 12), 2},
		{"week", date(2026, 3, 1), date(2026, 3, 8), 7},
		{"partial day rounds up", date(2026, 3, 10), date(2026, 3, 11).Add(6 * time.Hour), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestComputeCharge_NoDiscount(t *testing.T) {
	rate := decimal.NewFromInt(100)

	nights, total := pricing.ComputeCharge(date(2026, 3, 10), date(2026, 3, 12), rate, nil)

	assert.Equal(t, 2, nights)
	assert.Equal(t, "200", total.String())
}

func TestComputeCharge_PercentageDiscount(t *testing.T) {
	rate := decimal.NewFromInt(100)
	d := &model.Discount{
		Type:  model.DiscountPercentage,
		Value: decimal.NewFromInt(10),
	}

	nights, total := pricing.ComputeCharge(date(2026, 3, 10), date(2026, 3, 12), rate, d)

	assert.Equal(t, 2, nights)
	assert.Equal(t, "180", total.String())
}

func TestComputeCharge_FixedDiscount(t *testing.T) {
	rate := decimal.RequireFromString("150.50")
	d := &model.Discount{
		Type:  model.DiscountFixed,
		Value: decimal.NewFromInt(50),
	}

	nights, total := pricing.ComputeCharge(date(2026, 3, 10), date(2026, 3, 13), rate, d)

	assert.Equal(t, 3, nights)
	assert.Equal(t, "401.5", total.String())
}

func TestComputeCharge_FixedDiscountClampsAtZero(t *testing.T) {
	rate := decimal.NewFromInt(40)
	d := &model.Discount{
		Type:  model.DiscountFixed,
		Value: decimal.NewFromInt(500),
	}

	_, total := pricing.ComputeCharge(date(2026, 3, 10), date(2026, 3, 11), rate, d)

	assert.True(t, total.IsZero(), "total should clamp at zero, got %s", total)
}

func TestComputeCharge_RoundsToTwoDecimals(t *testing.T) {
	rate := decimal.RequireFromString("99.99")
	d := &model.Discount{
		Type:  model.DiscountPercentage,
		Value: decimal.RequireFromString("33.33"),
	}

	_, total := pricing.ComputeCharge(date(2026, 3, 10), date(2026, 3, 11), rate, d)

	// 99.99 - 99.99*0.3333 = 66.663...
	assert.Equal(t, "66.66", total.StringFixed(2))
}
