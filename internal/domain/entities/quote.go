package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// SurfaceInput is one measured surface of the job.
//
// Measurement must be non-negative; a zero measurement is valid and yields a
// zero-value line item.
type SurfaceInput struct {
	Type        SurfaceType     `json:"type"`
	Category    SurfaceCategory `json:"category"`
	Measurement decimal.Decimal `json:"measurement"`
	Unit        MeasurementUnit `json:"unit"`
}

// ProductSelection picks a catalog product and sheen for the job. The sheen
// must be a member of the product's declared sheen set. Overrides, when set,
// replace the catalog price/coverage for this quote only.
type ProductSelection struct {
	ProductID        string           `json:"product_id"`
	Sheen            string           `json:"sheen"`
	PriceOverride    *decimal.Decimal `json:"price_override,omitempty"`
	CoverageOverride *decimal.Decimal `json:"coverage_override,omitempty"`
}

// LaborInput carries the direct labor figures used by the hourly and
// production based schemes.
type LaborInput struct {
	Hours    decimal.Decimal `json:"hours"`
	Category string          `json:"category,omitempty"`
	// MaterialCost is the pass-through material figure for
	// hourly_time_materials jobs.
	MaterialCost decimal.Decimal `json:"material_cost"`
}

// LineItem is one priced row of a quote breakdown.
type LineItem struct {
	Description  string          `json:"description"`
	Quantity     decimal.Decimal `json:"quantity"`
	MaterialCost decimal.Decimal `json:"material_cost"`
	LaborCost    decimal.Decimal `json:"labor_cost"`
}

// QuoteResult is the fully itemized output of one pricing computation.
//
// Domain notes:
//   - All monetary fields are fixed-point decimals; the HTTP contract
//     renders them with exactly two fraction digits.
//   - RateTableVersion records the configuration snapshot the quote was
//     priced against, making recomputation auditable.
//   - Tier is empty for non-tiered quotes.
type QuoteResult struct {
	ID               string          `json:"id"`
	TenantID         string          `json:"tenant_id"`
	SchemeID         string          `json:"scheme_id"`
	Tier             GBBTier         `json:"tier,omitempty"`
	RateTableVersion int64           `json:"rate_table_version"`
	LineItems        []LineItem      `json:"line_items"`
	MaterialSubtotal decimal.Decimal `json:"material_subtotal"`
	LaborSubtotal    decimal.Decimal `json:"labor_subtotal"`
	MarkupAmount     decimal.Decimal `json:"markup_amount"`
	OverheadAmount   decimal.Decimal `json:"overhead_amount"`
	ProfitAmount     decimal.Decimal `json:"profit_amount"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	DepositAmount    decimal.Decimal `json:"deposit_amount"`
	Total            decimal.Decimal `json:"total"`
	CreatedAt        time.Time       `json:"created_at"`
}

// TieredQuote groups the parallel Good/Better/Best results of a tiered
// computation. Tiers disabled in configuration are nil.
type TieredQuote struct {
	Good   *QuoteResult `json:"good,omitempty"`
	Better *QuoteResult `json:"better,omitempty"`
	Best   *QuoteResult `json:"best,omitempty"`
}

// QuoteRecord is the persisted outcome of one quote computation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (tenant_id-index): tenant_id
//
// Exactly one of Result or Tiered is set: Result for plain and single-tier
// computations, Tiered when the scheme computed all enabled tiers.
type QuoteRecord struct {
	ID               string       `json:"id"`
	TenantID         string       `json:"tenant_id"`
	SchemeID         string       `json:"scheme_id"`
	RateTableVersion int64        `json:"rate_table_version"`
	RequestedTier    GBBTier      `json:"requested_tier,omitempty"`
	Result           *QuoteResult `json:"result,omitempty"`
	Tiered           *TieredQuote `json:"tiered,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
}

// ByTier returns the result for a tier, nil when the tier was not computed.
func (q TieredQuote) ByTier(t GBBTier) *QuoteResult {
	switch t {
	case TierGood:
		return q.Good
	case TierBetter:
		return q.Better
	case TierBest:
		return q.Best
	}
	return nil
}
