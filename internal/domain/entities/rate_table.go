package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// SurfaceType classifies what is being painted. New values may appear as
// contractors configure production rates for them; the engine treats the set
// as open and resolves rates by lookup.
type SurfaceType string

const (
	SurfaceWall    SurfaceType = "wall"
	SurfaceCeiling SurfaceType = "ceiling"
	SurfaceTrim    SurfaceType = "trim"
	SurfaceDoor    SurfaceType = "door"
	SurfaceCabinet SurfaceType = "cabinet"
	SurfaceSiding  SurfaceType = "siding"
)

// SurfaceCategory splits work into interior and exterior rate buckets.
type SurfaceCategory string

const (
	CategoryInterior SurfaceCategory = "interior"
	CategoryExterior SurfaceCategory = "exterior"
)

func ValidSurfaceCategory(c SurfaceCategory) bool {
	return c == CategoryInterior || c == CategoryExterior
}

// MeasurementUnit is how a surface measurement is expressed.
type MeasurementUnit string

const (
	UnitSquareFeet MeasurementUnit = "sqft"
	UnitLinearFeet MeasurementUnit = "linear_ft"
	UnitCount      MeasurementUnit = "count"
)

// TaxBasis selects which running subtotal the tax rate applies to.
//
// The source behavior was ambiguous here, so the basis is an explicit,
// tested configuration choice on the rate table rather than a hardcoded
// assumption.
type TaxBasis string

const (
	TaxBasisPreMarkup  TaxBasis = "pre_markup"
	TaxBasisPostMarkup TaxBasis = "post_markup"
	TaxBasisPostProfit TaxBasis = "post_profit"
)

func ValidTaxBasis(b TaxBasis) bool {
	return b == TaxBasisPreMarkup || b == TaxBasisPostMarkup || b == TaxBasisPostProfit
}

// LaborCategory is a named labor rate, e.g. "brush_roll" at 1.25 per sqft or
// "journeyman" at 65.00 per hour.
type LaborCategory struct {
	Rate            decimal.Decimal `json:"rate"`
	MeasurementUnit MeasurementUnit `json:"measurement_unit"`
}

// MaterialDefaults supplies material assumptions used when a product or
// selection does not override them.
type MaterialDefaults struct {
	CoverageSqFtPerGallon decimal.Decimal `json:"coverage_sqft_per_gallon"`
	Coats                 int             `json:"coats"`
	WasteFactor           decimal.Decimal `json:"waste_factor"`
	ApplicationMethod     string          `json:"application_method"`
}

// RateTable is the tenant-scoped pricing configuration snapshot consumed by
// the engine.
//
// Domain notes:
//   - A single quote computation uses exactly one versioned snapshot; edits
//     made while a quote is computing never leak into it.
//   - All percentage fields are expressed in [0,100].
//   - The engine refuses to run without a rate table; it never substitutes
//     zeros for missing configuration.
type RateTable struct {
	TenantID             string                          `json:"tenant_id"`
	Version              int64                           `json:"version"`
	LaborCategories      map[string]LaborCategory        `json:"labor_categories"`
	DefaultLaborCategory string                          `json:"default_labor_category"`
	ProductionRates      map[SurfaceType]decimal.Decimal `json:"production_rates"`
	FlatUnitPrices       map[string]decimal.Decimal      `json:"flat_unit_prices"`
	TurnkeyRates         map[SurfaceCategory]decimal.Decimal `json:"turnkey_rates"`
	CrewSizeDefault      int                             `json:"crew_size_default"`
	MarkupPercent        decimal.Decimal                 `json:"markup_percent"`
	OverheadPercent      decimal.Decimal                 `json:"overhead_percent"`
	NetProfitPercent     decimal.Decimal                 `json:"net_profit_percent"`
	TaxRatePercent       decimal.Decimal                 `json:"tax_rate_percent"`
	DepositPercent       decimal.Decimal                 `json:"deposit_percent"`
	TaxBasis             TaxBasis                        `json:"tax_basis"`
	TierMultiplier       decimal.Decimal                 `json:"tier_multiplier"`
	MaterialDefaults     MaterialDefaults                `json:"material_defaults"`
	UpdatedAt            time.Time                       `json:"updated_at"`
}

// MaterialDefaultsOverride is the sparse tier-level counterpart of
// MaterialDefaults. Nil fields inherit the base value.
type MaterialDefaultsOverride struct {
	CoverageSqFtPerGallon *decimal.Decimal `json:"coverage_sqft_per_gallon,omitempty"`
	Coats                 *int             `json:"coats,omitempty"`
	WasteFactor           *decimal.Decimal `json:"waste_factor,omitempty"`
	ApplicationMethod     *string          `json:"application_method,omitempty"`
}

// TierOverride is a sparse, field-by-field override of RateTable for a single
// Good/Better/Best tier. Map entries replace by key; absent keys inherit.
type TierOverride struct {
	Enabled              bool                                `json:"enabled"`
	LaborCategories      map[string]LaborCategory            `json:"labor_categories,omitempty"`
	DefaultLaborCategory *string                             `json:"default_labor_category,omitempty"`
	ProductionRates      map[SurfaceType]decimal.Decimal     `json:"production_rates,omitempty"`
	FlatUnitPrices       map[string]decimal.Decimal          `json:"flat_unit_prices,omitempty"`
	TurnkeyRates         map[SurfaceCategory]decimal.Decimal `json:"turnkey_rates,omitempty"`
	CrewSizeDefault      *int                                `json:"crew_size_default,omitempty"`
	MarkupPercent        *decimal.Decimal                    `json:"markup_percent,omitempty"`
	OverheadPercent      *decimal.Decimal                    `json:"overhead_percent,omitempty"`
	NetProfitPercent     *decimal.Decimal                    `json:"net_profit_percent,omitempty"`
	TaxRatePercent       *decimal.Decimal                    `json:"tax_rate_percent,omitempty"`
	DepositPercent       *decimal.Decimal                    `json:"deposit_percent,omitempty"`
	TaxBasis             *TaxBasis                           `json:"tax_basis,omitempty"`
	TierMultiplier       *decimal.Decimal                    `json:"tier_multiplier,omitempty"`
	MaterialDefaults     *MaterialDefaultsOverride           `json:"material_defaults,omitempty"`
}

// GBBTierConfig holds the per-scheme tier overrides. A tier with Enabled
// false (or absent entirely) is skipped when computing tiered quotes.
type GBBTierConfig struct {
	SchemeID  string                   `json:"scheme_id"`
	Tiers     map[GBBTier]TierOverride `json:"tiers"`
	UpdatedAt time.Time                `json:"updated_at"`
}
