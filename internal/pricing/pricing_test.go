package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestRentalDays(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected int
	}{
		{"Two full days", "2026-03-01", "2026-03-03", 2},
		{"Single day", "2026-03-01", "2026-03-02", 1},
		{"Same day charges one day", "2026-03-01", "2026-03-01", 1},
		{"Reversed range uses absolute difference", "2026-03-03", "2026-03-01", 2},
		{"Week", "2026-03-01", "2026-03-08", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RentalDays(date(tt.start), date(tt.end)))
		})
	}

	t.Run("Partial day rounds up", func(t *testing.T) {
		start := date("2026-03-01")
		end := start.Add(36 * time.Hour)
		assert.Equal(t, 2, RentalDays(start, end))
	})
}

func TestLineSubtotal(t *testing.T) {
	// 100 cents/day x 2 units x 2 days = 400 cents.
	assert.Equal(t, int64(400), LineSubtotal(100, 2, 2))
	assert.Equal(t, int64(0), LineSubtotal(100, 0, 2))
}

func TestTax(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		expected int64
	}{
		{"Even amount", 400, 40},
		{"Rounds half up", 5, 1},         // 0.5 -> 1
		{"Rounds down below half", 4, 0}, // 0.4 -> 0
		{"Zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tax(tt.subtotal))
		})
	}
}

func TestDeliveryCharge(t *testing.T) {
	t.Run("Home delivery on non-empty cart", func(t *testing.T) {
		assert.Equal(t, DeliveryChargeCents, DeliveryCharge(DeliveryMethodHomeDelivery, 400))
	})

	t.Run("Pickup is free", func(t *testing.T) {
		assert.Equal(t, int64(0), DeliveryCharge(DeliveryMethodPickup, 400))
	})

	t.Run("Empty cart never charged", func(t *testing.T) {
		assert.Equal(t, int64(0), DeliveryCharge(DeliveryMethodHomeDelivery, 0))
	})
}

func TestPayable(t *testing.T) {
	t.Run("Sums components minus discount", func(t *testing.T) {
		assert.Equal(t, int64(5390), Payable(400, 40, 5000, 50))
	})

	t.Run("Floors at zero", func(t *testing.T) {
		// Fixed coupon larger than the order total.
		assert.Equal(t, int64(0), Payable(30, 3, 0, 5000))
	})
}

func TestLookupCoupon(t *testing.T) {
	t.Run("Known code", func(t *testing.T) {
		c, err := LookupCoupon("SAVE10")
		assert.NoError(t, err)
		assert.Equal(t, CouponTypePercentage, c.Type)
		assert.Equal(t, int64(10), c.Discount)
	})

	t.Run("Case insensitive with whitespace", func(t *testing.T) {
		c, err := LookupCoupon("  flat50 ")
		assert.NoError(t, err)
		assert.Equal(t, "FLAT50", c.Code)
	})

	t.Run("Unknown code", func(t *testing.T) {
		_, err := LookupCoupon("NOPE")
		assert.ErrorIs(t, err, ErrCouponNotFound)
	})
}

func TestCouponDiscountFor(t *testing.T) {
	t.Run("Percentage coupon", func(t *testing.T) {
		c, _ := LookupCoupon("SAVE10")
		assert.Equal(t, int64(40), c.DiscountFor(400))
	})

	t.Run("Twenty percent coupon", func(t *testing.T) {
		c, _ := LookupCoupon("RENT20")
		assert.Equal(t, int64(80), c.DiscountFor(400))
	})

	t.Run("Fixed coupon", func(t *testing.T) {
		c, _ := LookupCoupon("FLAT100")
		assert.Equal(t, int64(10000), c.DiscountFor(50000))
	})

	t.Run("Fixed coupon capped at subtotal", func(t *testing.T) {
		c, _ := LookupCoupon("FLAT50")
		assert.Equal(t, int64(30), c.DiscountFor(30))
	})
}
