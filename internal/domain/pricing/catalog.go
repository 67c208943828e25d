package pricing

import (
	"brushworks/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// MaterialRate is the resolved price and coverage for one product/sheen
// selection.
type MaterialRate struct {
	PricePerGallon        decimal.Decimal
	CoverageSqFtPerGallon decimal.Decimal
}

// Catalog is a read-only product snapshot for one quote computation.
type Catalog struct {
	products map[string]entities.Product
}

func NewCatalog(products []entities.Product) Catalog {
	byID := make(map[string]entities.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return Catalog{products: byID}
}

// Resolve looks up the price per gallon and coverage rate for a selection,
// honoring per-quote price/coverage overrides. Pure lookup, no side effects.
func (c Catalog) Resolve(sel entities.ProductSelection) (MaterialRate, error) {
	product, ok := c.products[sel.ProductID]
	if !ok {
		return MaterialRate{}, &UnknownProductError{ProductID: sel.ProductID}
	}
	sheen, ok := product.Sheens[sel.Sheen]
	if !ok {
		return MaterialRate{}, &InvalidSheenError{ProductID: sel.ProductID, Sheen: sel.Sheen}
	}

	rate := MaterialRate{
		PricePerGallon:        sheen.PricePerGallon,
		CoverageSqFtPerGallon: sheen.CoverageSqFtPerGallon,
	}
	if sel.PriceOverride != nil {
		rate.PricePerGallon = *sel.PriceOverride
	}
	if sel.CoverageOverride != nil {
		rate.CoverageSqFtPerGallon = *sel.CoverageOverride
	}
	return rate, nil
}
