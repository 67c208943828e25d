package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// SheenPricing is the price and coverage for one sheen of a product.
type SheenPricing struct {
	PricePerGallon        decimal.Decimal `json:"price_per_gallon"`
	CoverageSqFtPerGallon decimal.Decimal `json:"coverage_sqft_per_gallon"`
}

// Product is a catalog entry. Sheens declares the full allowed sheen set for
// the product; a selection naming any other sheen is rejected up front.
type Product struct {
	ID        string                  `json:"id"`
	BrandID   string                  `json:"brand_id"`
	Name      string                  `json:"name"`
	Sheens    map[string]SheenPricing `json:"sheens"`
	UpdatedAt time.Time               `json:"updated_at"`
}
