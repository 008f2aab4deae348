package domain

import "time"

type PricingType string

const (
	PricingTypeDaily   PricingType = "daily"
	PricingTypeWeekly  PricingType = "weekly"
	PricingTypeMonthly PricingType = "monthly"
)

// PricingRule is one pricing option attached to a product. Only active
// rules participate in price resolution.
type PricingRule struct {
	PricingType    PricingType `json:"pricing_type"`
	BasePriceCents int64       `json:"base_price_cents"`
	IsActive       bool        `json:"is_active"`
}

type Inventory struct {
	Available int `json:"available"`
}

type Product struct {
	ID                    int64         `json:"id"`
	VendorID              int64         `json:"vendor_id"`
	Name                  string        `json:"name"`
	Description           string        `json:"description"`
	PricingRules          []PricingRule `json:"pricing_rules"`
	Inventory             Inventory     `json:"inventory"`
	ReplacementValueCents int64         `json:"replacement_value_cents"`
	CreatedOn             time.Time     `json:"created_on"`
}

// UnitPriceCents resolves the per-day price of a product: the first active
// daily rule, falling back to the first active rule of any type.
func (p *Product) UnitPriceCents() int64 {
	var fallback int64
	haveFallback := false
	for _, r := range p.PricingRules {
		if !r.IsActive {
			continue
		}
		if r.PricingType == PricingTypeDaily {
			return r.BasePriceCents
		}
		if !haveFallback {
			fallback = r.BasePriceCents
			haveFallback = true
		}
	}
	return fallback
}
