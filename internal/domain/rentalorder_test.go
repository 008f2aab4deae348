package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRentalOrder(t *testing.T) *RentalOrder {
	t.Helper()
	ro, err := NewRentalOrder(1, "Acme Corp", "acme@example.com", []OrderLine{
		{ProductID: 10, ProductName: "Camera", Quantity: 2, UnitPriceCents: 1000},
		{ProductID: 11, ProductName: "Tripod", Quantity: 1, UnitPriceCents: 500},
	})
	require.NoError(t, err)
	return ro
}

func TestNewRentalOrder(t *testing.T) {
	t.Run("Starts in quotation stage with computed totals", func(t *testing.T) {
		ro := newTestRentalOrder(t)
		assert.Equal(t, StageQuotation, ro.Stage)
		assert.True(t, strings.HasPrefix(ro.ID, "RO"))
		// 2x1000 + 1x500 = 2500 untaxed, 10% tax per line.
		assert.Equal(t, int64(2500), ro.UntaxedTotalCents)
		assert.Equal(t, int64(250), ro.TaxCents)
		assert.Equal(t, int64(2750), ro.TotalCents)
	})

	t.Run("Rejects empty line set", func(t *testing.T) {
		_, err := NewRentalOrder(1, "Acme", "a@b.c", nil)
		assert.ErrorIs(t, err, ErrNoOrderLines)
	})

	t.Run("Rejects non-positive quantity", func(t *testing.T) {
		_, err := NewRentalOrder(1, "Acme", "a@b.c", []OrderLine{{ProductID: 1, Quantity: 0, UnitPriceCents: 100}})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestRentalOrderStageTransitions(t *testing.T) {
	t.Run("Full happy path", func(t *testing.T) {
		ro := newTestRentalOrder(t)
		require.NoError(t, ro.Send())
		assert.Equal(t, StageQuotationSent, ro.Stage)
		require.NoError(t, ro.Confirm())
		assert.Equal(t, StageRentalOrder, ro.Stage)
		assert.True(t, ro.PricingLocked())
	})

	t.Run("Cannot confirm an unsent quotation", func(t *testing.T) {
		ro := newTestRentalOrder(t)
		assert.ErrorIs(t, ro.Confirm(), ErrInvalidStage)
	})

	t.Run("Cannot send twice", func(t *testing.T) {
		ro := newTestRentalOrder(t)
		require.NoError(t, ro.Send())
		assert.ErrorIs(t, ro.Send(), ErrInvalidStage)
	})

	t.Run("Cancel is allowed from any non-terminal stage", func(t *testing.T) {
		for _, setup := range []func(*RentalOrder){
			func(*RentalOrder) {},
			func(ro *RentalOrder) { _ = ro.Send() },
			func(ro *RentalOrder) { _ = ro.Send(); _ = ro.Confirm() },
		} {
			ro := newTestRentalOrder(t)
			setup(ro)
			assert.NoError(t, ro.Cancel())
			assert.Equal(t, StageCancelled, ro.Stage)
		}
	})

	t.Run("Cancel is terminal", func(t *testing.T) {
		ro := newTestRentalOrder(t)
		require.NoError(t, ro.Cancel())
		assert.ErrorIs(t, ro.Cancel(), ErrInvalidStage)
		assert.ErrorIs(t, ro.Send(), ErrInvalidStage)
	})
}

func TestRentalOrderLines(t *testing.T) {
	t.Run("AddLine recomputes totals", func(t *testing.T) {
		ro := newTestRentalOrder(t)
		require.NoError(t, ro.AddLine(OrderLine{ProductID: 12, Quantity: 3, UnitPriceCents: 200}))
		assert.Len(t, ro.Lines, 3)
		assert.Equal(t, int64(3100), ro.UntaxedTotalCents)
	})

	t.Run("RemoveLine keeps at least one line", func(t *testing.T) {
		ro := newTestRentalOrder(t)
		require.NoError(t, ro.RemoveLine(1))
		assert.ErrorIs(t, ro.RemoveLine(0), ErrLastOrderLine)
		assert.Len(t, ro.Lines, 1)
	})

	t.Run("RemoveLine rejects bad index", func(t *testing.T) {
		ro := newTestRentalOrder(t)
		assert.ErrorIs(t, ro.RemoveLine(5), ErrOrderLineNotFound)
		assert.ErrorIs(t, ro.RemoveLine(-1), ErrOrderLineNotFound)
	})

	t.Run("UpdateLineQuantity recomputes totals", func(t *testing.T) {
		ro := newTestRentalOrder(t)
		require.NoError(t, ro.UpdateLineQuantity(0, 5))
		assert.Equal(t, int64(5500), ro.UntaxedTotalCents)
	})

	t.Run("UpdateLineQuantity rejects zero", func(t *testing.T) {
		ro := newTestRentalOrder(t)
		assert.ErrorIs(t, ro.UpdateLineQuantity(0, 0), ErrInvalidQuantity)
	})

	t.Run("Line mutations frozen after confirmation", func(t *testing.T) {
		ro := newTestRentalOrder(t)
		require.NoError(t, ro.Send())
		require.NoError(t, ro.Confirm())
		assert.ErrorIs(t, ro.AddLine(OrderLine{ProductID: 13, Quantity: 1, UnitPriceCents: 100}), ErrPricingLocked)
		assert.ErrorIs(t, ro.RemoveLine(0), ErrPricingLocked)
		assert.ErrorIs(t, ro.UpdateLineQuantity(0, 3), ErrPricingLocked)
	})
}

func TestRentalOrderUpdatePrices(t *testing.T) {
	t.Run("Premium multiplier", func(t *testing.T) {
		ro := newTestRentalOrder(t)
		require.NoError(t, ro.UpdatePrices("premium"))
		assert.Equal(t, int64(1500), ro.Lines[0].UnitPriceCents)
		assert.Equal(t, int64(750), ro.Lines[1].UnitPriceCents)
		assert.Equal(t, int64(3750), ro.UntaxedTotalCents)
	})

	t.Run("Bulk multiplier rounds to nearest cent", func(t *testing.T) {
		ro, err := NewRentalOrder(1, "Acme", "a@b.c", []OrderLine{
			{ProductID: 10, Quantity: 1, UnitPriceCents: 999},
		})
		require.NoError(t, err)
		require.NoError(t, ro.UpdatePrices("bulk"))
		// 999 * 0.8 = 799.2, rounds to 799.
		assert.Equal(t, int64(799), ro.Lines[0].UnitPriceCents)
	})

	t.Run("Unknown price list", func(t *testing.T) {
		ro := newTestRentalOrder(t)
		assert.ErrorIs(t, ro.UpdatePrices("wholesale"), ErrUnknownPriceList)
	})

	t.Run("Allowed while quotation is sent", func(t *testing.T) {
		ro := newTestRentalOrder(t)
		require.NoError(t, ro.Send())
		assert.NoError(t, ro.UpdatePrices("standard"))
	})

	t.Run("Rejected once confirmed", func(t *testing.T) {
		ro := newTestRentalOrder(t)
		require.NoError(t, ro.Send())
		require.NoError(t, ro.Confirm())
		assert.ErrorIs(t, ro.UpdatePrices("premium"), ErrPricingLocked)
	})

	t.Run("Rejected when cancelled", func(t *testing.T) {
		ro := newTestRentalOrder(t)
		require.NoError(t, ro.Cancel())
		assert.ErrorIs(t, ro.UpdatePrices("premium"), ErrInvalidStage)
	})
}
