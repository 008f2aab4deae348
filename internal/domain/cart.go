package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/pricing"
)

var (
	ErrMissingRentalDates = errors.New("rental start and end dates are required")
	ErrInvalidRentalRange = errors.New("rental end date must not precede start date")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrCartItemNotFound   = errors.New("cart item not found")
)

const cartDateLayout = "2006-01-02"

// CartItem is one product/quantity/date-range line in a cart. Its ID is
// derived from the product and date range, so adding the same product for
// the same range merges into a single line.
type CartItem struct {
	ID             string    `json:"id"`
	ProductID      int64     `json:"product_id"`
	ProductName    string    `json:"product_name"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Quantity       int       `json:"quantity"`
	RentalStart    time.Time `json:"rental_start"`
	RentalEnd      time.Time `json:"rental_end"`
}

// DurationDays returns the chargeable rental duration of the line.
func (i *CartItem) DurationDays() int {
	return pricing.RentalDays(i.RentalStart, i.RentalEnd)
}

// SubtotalCents returns unit price × quantity × duration for the line.
func (i *CartItem) SubtotalCents() int64 {
	return pricing.LineSubtotal(i.UnitPriceCents, i.Quantity, i.DurationDays())
}

// Cart holds a user's line items plus an optionally applied coupon code.
// Totals are never stored; Summary recomputes them from the lines on every
// call, so a reloaded cart always converges to the same breakdown.
type Cart struct {
	UserID     int64      `json:"user_id"`
	Items      []CartItem `json:"items"`
	CouponCode string     `json:"coupon_code,omitempty"`
	UpdatedOn  time.Time  `json:"updated_on"`
}

// CartSummary is the derived price breakdown of a cart.
type CartSummary struct {
	SubtotalCents int64 `json:"subtotal_cents"`
	TaxCents      int64 `json:"tax_cents"`
	TotalCents    int64 `json:"total_cents"`
	DeliveryCents int64 `json:"delivery_cents"`
	DiscountCents int64 `json:"discount_cents"`
	PayableCents  int64 `json:"payable_cents"`
	ItemCount     int   `json:"item_count"`
}

func NewCart(userID int64) *Cart {
	return &Cart{UserID: userID}
}

func cartItemID(productID int64, start, end time.Time) string {
	return fmt.Sprintf("%d:%s:%s", productID, start.Format(cartDateLayout), end.Format(cartDateLayout))
}

// AddItem adds a product to the cart for a rental date range. Adding the
// same product for the same range increments the existing line's quantity.
func (c *Cart) AddItem(product *Product, quantity int, start, end time.Time) (*CartItem, error) {
	if start.IsZero() || end.IsZero() {
		return nil, ErrMissingRentalDates
	}
	if end.Before(start) {
		return nil, ErrInvalidRentalRange
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	id := cartItemID(product.ID, start, end)
	for idx := range c.Items {
		if c.Items[idx].ID == id {
			c.Items[idx].Quantity += quantity
			c.touch()
			return &c.Items[idx], nil
		}
	}

	c.Items = append(c.Items, CartItem{
		ID:             id,
		ProductID:      product.ID,
		ProductName:    product.Name,
		UnitPriceCents: product.UnitPriceCents(),
		Quantity:       quantity,
		RentalStart:    start,
		RentalEnd:      end,
	})
	c.touch()
	return &c.Items[len(c.Items)-1], nil
}

// UpdateQuantity sets a line's quantity. A quantity of zero or less removes
// the line entirely.
func (c *Cart) UpdateQuantity(itemID string, quantity int) error {
	for idx := range c.Items {
		if c.Items[idx].ID != itemID {
			continue
		}
		if quantity <= 0 {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
		} else {
			c.Items[idx].Quantity = quantity
		}
		c.touch()
		return nil
	}
	return ErrCartItemNotFound
}

// RemoveItem deletes a line by id.
func (c *Cart) RemoveItem(itemID string) error {
	return c.UpdateQuantity(itemID, 0)
}

// Clear drops all lines and any applied coupon.
func (c *Cart) Clear() {
	c.Items = nil
	c.CouponCode = ""
	c.touch()
}

// ApplyCoupon validates a code against the allow-list and records it.
func (c *Cart) ApplyCoupon(code string) (pricing.Coupon, error) {
	coupon, err := pricing.LookupCoupon(code)
	if err != nil {
		return pricing.Coupon{}, err
	}
	c.CouponCode = coupon.Code
	c.touch()
	return coupon, nil
}

// RemoveCoupon drops any applied coupon.
func (c *Cart) RemoveCoupon() {
	c.CouponCode = ""
	c.touch()
}

// Summary recomputes the full price breakdown from the line items.
func (c *Cart) Summary(deliveryMethod string) CartSummary {
	var s CartSummary
	for idx := range c.Items {
		s.SubtotalCents += c.Items[idx].SubtotalCents()
		s.ItemCount += c.Items[idx].Quantity
	}
	s.TaxCents = pricing.Tax(s.SubtotalCents)
	s.TotalCents = s.SubtotalCents + s.TaxCents
	s.DeliveryCents = pricing.DeliveryCharge(deliveryMethod, s.SubtotalCents)
	if c.CouponCode != "" {
		if coupon, err := pricing.LookupCoupon(c.CouponCode); err == nil {
			s.DiscountCents = coupon.DiscountFor(s.SubtotalCents)
		}
	}
	s.PayableCents = pricing.Payable(s.SubtotalCents, s.TaxCents, s.DeliveryCents, s.DiscountCents)
	return s
}

func (c *Cart) touch() {
	c.UpdatedOn = time.Now().UTC()
}
