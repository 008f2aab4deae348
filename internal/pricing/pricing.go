package pricing

import (
	"errors"
	"strings"
	"time"
)

// All monetary amounts are integer cents.
const (
	// TaxRatePercent is the flat tax rate applied to cart subtotals.
	TaxRatePercent = 10

	// DeliveryChargeCents is the flat home delivery charge.
	DeliveryChargeCents int64 = 5000

	DeliveryMethodHomeDelivery = "home_delivery"
	DeliveryMethodPickup       = "pickup"
)

var ErrCouponNotFound = errors.New("coupon code not found")

// RentalDays returns the chargeable rental duration in days between two
// dates: the absolute difference rounded up to whole days, never less than 1.
// A same-day rental is charged as one day.
func RentalDays(start, end time.Time) int {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}

	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

// LineSubtotal computes the charge for one cart line:
// unit price × quantity × rental days.
func LineSubtotal(unitPriceCents int64, quantity, days int) int64 {
	return unitPriceCents * int64(quantity) * int64(days)
}

// Tax computes the flat-rate tax on a subtotal, rounding half up.
func Tax(subtotalCents int64) int64 {
	return percentOf(subtotalCents, TaxRatePercent)
}

// DeliveryCharge returns the delivery fee for the given method. The charge
// applies only to home delivery on a non-empty cart.
func DeliveryCharge(method string, subtotalCents int64) int64 {
	if method == DeliveryMethodHomeDelivery && subtotalCents > 0 {
		return DeliveryChargeCents
	}
	return 0
}

// Payable returns the final amount due, floored at zero.
func Payable(subtotalCents, taxCents, deliveryCents, discountCents int64) int64 {
	total := subtotalCents + taxCents + deliveryCents - discountCents
	if total < 0 {
		return 0
	}
	return total
}

func percentOf(amountCents int64, pct int64) int64 {
	return (amountCents*pct + 50) / 100
}

// CouponType distinguishes percentage coupons from fixed-amount coupons.
type CouponType string

const (
	CouponTypePercentage CouponType = "percentage"
	CouponTypeFixed      CouponType = "fixed"
)

// Coupon is a discount code from the static allow-list. Discount holds a
// percentage for percentage coupons and an amount in cents for fixed ones.
type Coupon struct {
	Code     string
	Type     CouponType
	Discount int64
}

// coupons is the fixed allow-list; codes match case-insensitively.
var coupons = map[string]Coupon{
	"SAVE10":  {Code: "SAVE10", Type: CouponTypePercentage, Discount: 10},
	"RENT20":  {Code: "RENT20", Type: CouponTypePercentage, Discount: 20},
	"FLAT50":  {Code: "FLAT50", Type: CouponTypeFixed, Discount: 5000},
	"FLAT100": {Code: "FLAT100", Type: CouponTypeFixed, Discount: 10000},
}

// LookupCoupon resolves a code against the allow-list.
func LookupCoupon(code string) (Coupon, error) {
	c, ok := coupons[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Coupon{}, ErrCouponNotFound
	}
	return c, nil
}

// DiscountFor computes the discount a coupon yields on a subtotal. A fixed
// coupon never discounts more than the subtotal itself.
func (c Coupon) DiscountFor(subtotalCents int64) int64 {
	switch c.Type {
	case CouponTypePercentage:
		return percentOf(subtotalCents, c.Discount)
	case CouponTypeFixed:
		if c.Discount > subtotalCents {
			return subtotalCents
		}
		return c.Discount
	default:
		return 0
	}
}
