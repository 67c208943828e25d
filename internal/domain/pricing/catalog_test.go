package pricing

import (
	"errors"
	"testing"

	"brushworks/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestCatalog_Resolve(t *testing.T) {
	catalog := NewCatalog([]entities.Product{
		{
			ID:      "prod-1",
			BrandID: "brand-1",
			Name:    "ProClassic",
			Sheens: map[string]entities.SheenPricing{
				"eggshell": {
					PricePerGallon:        decimal.RequireFromString("54.99"),
					CoverageSqFtPerGallon: decimal.NewFromInt(350),
				},
			},
		},
	})

	t.Run("success", func(t *testing.T) {
		rate, err := catalog.Resolve(entities.ProductSelection{ProductID: "prod-1", Sheen: "eggshell"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rate.PricePerGallon.Equal(decimal.RequireFromString("54.99")) {
			t.Fatalf("unexpected price: %s", rate.PricePerGallon)
		}
		if !rate.CoverageSqFtPerGallon.Equal(decimal.NewFromInt(350)) {
			t.Fatalf("unexpected coverage: %s", rate.CoverageSqFtPerGallon)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := catalog.Resolve(entities.ProductSelection{ProductID: "ghost", Sheen: "eggshell"})
		var up *UnknownProductError
		if !errors.As(err, &up) {
			t.Fatalf("expected *UnknownProductError, got %v", err)
		}
		if up.ProductID != "ghost" {
			t.Fatalf("unexpected product id %q", up.ProductID)
		}
	})

	t.Run("sheen outside declared set", func(t *testing.T) {
		_, err := catalog.Resolve(entities.ProductSelection{ProductID: "prod-1", Sheen: "gloss"})
		var is *InvalidSheenError
		if !errors.As(err, &is) {
			t.Fatalf("expected *InvalidSheenError, got %v", err)
		}
		if is.Sheen != "gloss" || is.ProductID != "prod-1" {
			t.Fatalf("unexpected error detail: %+v", is)
		}
	})

	t.Run("overrides win over catalog values", func(t *testing.T) {
		price := decimal.NewFromInt(40)
		coverage := decimal.NewFromInt(300)
		rate, err := catalog.Resolve(entities.ProductSelection{
			ProductID:        "prod-1",
			Sheen:            "eggshell",
			PriceOverride:    &price,
			CoverageOverride: &coverage,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rate.PricePerGallon.Equal(price) || !rate.CoverageSqFtPerGallon.Equal(coverage) {
			t.Fatalf("overrides not applied: %+v", rate)
		}
	})
}
