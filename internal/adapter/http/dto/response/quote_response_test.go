package response

import (
	"testing"
	"time"

	"brushworks/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func sampleResult() entities.QuoteResult {
	return entities.QuoteResult{
		SchemeID:         "scheme-1",
		TenantID:         "tenant-1",
		Tier:             entities.TierBetter,
		RateTableVersion: 3,
		LineItems: []entities.LineItem{
			{
				Description:  "Labor: walls",
				Quantity:     decimal.NewFromInt(400),
				MaterialCost: decimal.Zero,
				LaborCost:    decimal.RequireFromString("500.5"),
			},
		},
		MaterialSubtotal: decimal.RequireFromString("120.4"),
		LaborSubtotal:    decimal.RequireFromString("500.5"),
		MarkupAmount:     decimal.RequireFromString("62.09"),
		OverheadAmount:   decimal.RequireFromString("68.3"),
		ProfitAmount:     decimal.RequireFromString("75.13"),
		TaxAmount:        decimal.RequireFromString("66.12"),
		DepositAmount:    decimal.RequireFromString("223.14"),
		Total:            decimal.RequireFromString("892.54"),
	}
}

func TestFromQuoteResult(t *testing.T) {
	got := FromQuoteResult(sampleResult())

	if got.Tier != "better" {
		t.Fatalf("expected tier better, got %q", got.Tier)
	}
	if got.RateTableVersion != 3 {
		t.Fatalf("expected version 3, got %d", got.RateTableVersion)
	}
	if len(got.LineItems) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(got.LineItems))
	}
	if got.LineItems[0].LaborCost != "500.50" {
		t.Fatalf("expected two fraction digits, got %q", got.LineItems[0].LaborCost)
	}
	if got.MaterialSubtotal != "120.40" || got.OverheadAmount != "68.30" {
		t.Fatalf("amounts not rendered at two places: %+v", got)
	}
	if got.Total != "892.54" {
		t.Fatalf("expected total 892.54, got %q", got.Total)
	}
}

func TestFromQuoteRecord(t *testing.T) {
	now := time.Now().UTC()

	t.Run("single result", func(t *testing.T) {
		res := sampleResult()
		got := FromQuoteRecord(entities.QuoteRecord{
			ID:               "quote-1",
			TenantID:         "tenant-1",
			SchemeID:         "scheme-1",
			RateTableVersion: 3,
			RequestedTier:    entities.TierBetter,
			Result:           &res,
			CreatedAt:        now,
		})
		if got.QuoteID != "quote-1" || got.RequestedTier != "better" {
			t.Fatalf("record header not translated: %+v", got)
		}
		if got.Result == nil || got.Tiered != nil {
			t.Fatalf("expected single result, got %+v", got)
		}
	})

	t.Run("tiered result", func(t *testing.T) {
		good := sampleResult()
		good.Tier = entities.TierGood
		best := sampleResult()
		best.Tier = entities.TierBest
		got := FromQuoteRecord(entities.QuoteRecord{
			ID:       "quote-2",
			TenantID: "tenant-1",
			SchemeID: "scheme-1",
			Tiered:   &entities.TieredQuote{Good: &good, Best: &best},
		})
		if got.Tiered == nil || got.Result != nil {
			t.Fatalf("expected tiered result, got %+v", got)
		}
		if got.Tiered.Good == nil || got.Tiered.Best == nil || got.Tiered.Better != nil {
			t.Fatalf("tier slots wrong: %+v", got.Tiered)
		}
	})
}
