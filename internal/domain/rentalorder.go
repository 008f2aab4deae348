package domain

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/pricing"
)

type WorkflowStage string

const (
	StageQuotation     WorkflowStage = "quotation"
	StageQuotationSent WorkflowStage = "quotation_sent"
	StageRentalOrder   WorkflowStage = "rental_order"
	StageCancelled     WorkflowStage = "cancelled"
)

var (
	ErrInvalidStage      = errors.New("operation not allowed in current workflow stage")
	ErrPricingLocked     = errors.New("pricing is locked once the order is confirmed")
	ErrLastOrderLine     = errors.New("a rental order must keep at least one line")
	ErrOrderLineNotFound = errors.New("order line not found")
	ErrUnknownPriceList  = errors.New("unknown price list")
	ErrNoOrderLines      = errors.New("a rental order needs at least one line")
)

// priceLists maps a price-list key to the multiplier applied to every
// line's unit price.
var priceLists = map[string]float64{
	"standard": 1.0,
	"premium":  1.5,
	"bulk":     0.8,
}

// OrderLine is one product line inside a vendor rental order. Subtotal and
// tax are derived and recomputed on every mutation.
type OrderLine struct {
	ProductID      int64  `json:"product_id"`
	ProductName    string `json:"product_name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	TaxCents       int64  `json:"tax_cents"`
	SubtotalCents  int64  `json:"subtotal_cents"`
}

// RentalOrder is a vendor-side quotation that progresses
// quotation → quotation_sent → rental_order, with cancellation terminal
// from any stage. Once confirmed, unit prices and the line set are frozen.
type RentalOrder struct {
	ID                string        `json:"id"`
	VendorID          int64         `json:"vendor_id"`
	CustomerName      string        `json:"customer_name"`
	CustomerEmail     string        `json:"customer_email"`
	Stage             WorkflowStage `json:"stage"`
	Lines             []OrderLine   `json:"lines"`
	UntaxedTotalCents int64         `json:"untaxed_total_cents"`
	TaxCents          int64         `json:"tax_cents"`
	TotalCents        int64         `json:"total_cents"`
	CreatedOn         time.Time     `json:"created_on"`
	UpdatedOn         time.Time     `json:"updated_on"`
}

// NewRentalOrderID builds an order identifier from a fixed prefix, the
// current unix timestamp and four random digits.
func NewRentalOrderID() string {
	return fmt.Sprintf("RO%d%04d", time.Now().Unix(), rand.Intn(10000))
}

// NewRentalOrder creates a quotation-stage order with the given lines.
func NewRentalOrder(vendorID int64, customerName, customerEmail string, lines []OrderLine) (*RentalOrder, error) {
	if len(lines) == 0 {
		return nil, ErrNoOrderLines
	}
	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	now := time.Now().UTC()
	ro := &RentalOrder{
		ID:            NewRentalOrderID(),
		VendorID:      vendorID,
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Stage:         StageQuotation,
		Lines:         lines,
		CreatedOn:     now,
		UpdatedOn:     now,
	}
	ro.recompute()
	return ro, nil
}

// PricingLocked reports whether price-affecting mutations are frozen.
func (r *RentalOrder) PricingLocked() bool {
	return r.Stage == StageRentalOrder
}

// Send moves a quotation to the quotation-sent stage.
func (r *RentalOrder) Send() error {
	if r.Stage != StageQuotation {
		return fmt.Errorf("%w: cannot send from %s", ErrInvalidStage, r.Stage)
	}
	r.Stage = StageQuotationSent
	r.touch()
	return nil
}

// Confirm moves a sent quotation to the rental-order stage, freezing
// pricing from then on.
func (r *RentalOrder) Confirm() error {
	if r.Stage != StageQuotationSent {
		return fmt.Errorf("%w: cannot confirm from %s", ErrInvalidStage, r.Stage)
	}
	r.Stage = StageRentalOrder
	r.touch()
	return nil
}

// Cancel moves the order to the terminal cancelled stage. Any non-terminal
// stage may be cancelled.
func (r *RentalOrder) Cancel() error {
	if r.Stage == StageCancelled {
		return fmt.Errorf("%w: order already cancelled", ErrInvalidStage)
	}
	r.Stage = StageCancelled
	r.touch()
	return nil
}

// AddLine appends a line. Rejected once the order is confirmed.
func (r *RentalOrder) AddLine(line OrderLine) error {
	if err := r.mutableCheck(); err != nil {
		return err
	}
	if line.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	r.Lines = append(r.Lines, line)
	r.recompute()
	r.touch()
	return nil
}

// RemoveLine deletes the line at index. The last remaining line can never
// be removed.
func (r *RentalOrder) RemoveLine(index int) error {
	if err := r.mutableCheck(); err != nil {
		return err
	}
	if index < 0 || index >= len(r.Lines) {
		return ErrOrderLineNotFound
	}
	if len(r.Lines) == 1 {
		return ErrLastOrderLine
	}
	r.Lines = append(r.Lines[:index], r.Lines[index+1:]...)
	r.recompute()
	r.touch()
	return nil
}

// UpdateLineQuantity changes a line's quantity and recomputes totals.
func (r *RentalOrder) UpdateLineQuantity(index, quantity int) error {
	if err := r.mutableCheck(); err != nil {
		return err
	}
	if index < 0 || index >= len(r.Lines) {
		return ErrOrderLineNotFound
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	r.Lines[index].Quantity = quantity
	r.recompute()
	r.touch()
	return nil
}

// UpdatePrices multiplies every line's unit price by the multiplier of the
// given price list and recomputes totals. Rejected once confirmed.
func (r *RentalOrder) UpdatePrices(priceListKey string) error {
	if r.Stage == StageCancelled {
		return fmt.Errorf("%w: order is cancelled", ErrInvalidStage)
	}
	if r.PricingLocked() {
		return ErrPricingLocked
	}
	multiplier, ok := priceLists[priceListKey]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPriceList, priceListKey)
	}
	for idx := range r.Lines {
		r.Lines[idx].UnitPriceCents = int64(math.Round(float64(r.Lines[idx].UnitPriceCents) * multiplier))
	}
	r.recompute()
	r.touch()
	return nil
}

func (r *RentalOrder) mutableCheck() error {
	if r.Stage == StageCancelled {
		return fmt.Errorf("%w: order is cancelled", ErrInvalidStage)
	}
	if r.PricingLocked() {
		return ErrPricingLocked
	}
	return nil
}

// recompute refreshes all derived amounts from the line set.
func (r *RentalOrder) recompute() {
	var untaxed, tax int64
	for idx := range r.Lines {
		line := &r.Lines[idx]
		line.SubtotalCents = line.UnitPriceCents * int64(line.Quantity)
		line.TaxCents = pricing.Tax(line.SubtotalCents)
		untaxed += line.SubtotalCents
		tax += line.TaxCents
	}
	r.UntaxedTotalCents = untaxed
	r.TaxCents = tax
	r.TotalCents = untaxed + tax
}

func (r *RentalOrder) touch() {
	r.UpdatedOn = time.Now().UTC()
}
