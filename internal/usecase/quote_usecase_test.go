package usecase

import (
	"context"
	"errors"
	"testing"

	"brushworks/internal/domain/entities"
	"brushworks/internal/domain/pricing"
	mock_interfaces "brushworks/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type quoteMocks struct {
	scheme  *mock_interfaces.MockIPricingSchemeRepository
	rates   *mock_interfaces.MockIRateTableRepository
	catalog *mock_interfaces.MockIProductCatalogRepository
	quotes  *mock_interfaces.MockIQuoteRepository
}

func newQuoteUseCaseWithMocks(t *testing.T) (*QuoteUseCase, quoteMocks, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := quoteMocks{
		scheme:  mock_interfaces.NewMockIPricingSchemeRepository(ctrl),
		rates:   mock_interfaces.NewMockIRateTableRepository(ctrl),
		catalog: mock_interfaces.NewMockIProductCatalogRepository(ctrl),
		quotes:  mock_interfaces.NewMockIQuoteRepository(ctrl),
	}
	return NewQuoteUseCase(m.scheme, m.rates, m.catalog, m.quotes), m, ctrl
}

func testRateTable() entities.RateTable {
	return entities.RateTable{
		TenantID: "tenant-1",
		Version:  3,
		LaborCategories: map[string]entities.LaborCategory{
			"journeyman": {Rate: decimal.NewFromInt(65), MeasurementUnit: entities.UnitCount},
		},
		DefaultLaborCategory: "journeyman",
		CrewSizeDefault:      2,
		MarkupPercent:        decimal.NewFromInt(10),
		TaxBasis:             entities.TaxBasisPostProfit,
		MaterialDefaults: entities.MaterialDefaults{
			CoverageSqFtPerGallon: decimal.NewFromInt(350),
			Coats:                 2,
			WasteFactor:           decimal.RequireFromString("1.1"),
		},
	}
}

func hourlyScheme() entities.PricingScheme {
	return entities.PricingScheme{
		ID:       "scheme-1",
		TenantID: "tenant-1",
		Name:     "Hourly T&M",
		Type:     entities.SchemeHourlyTimeMaterials,
	}
}

func hourlyCommand() ComputeQuoteCommand {
	return ComputeQuoteCommand{
		TenantID: "tenant-1",
		SchemeID: "scheme-1",
		Labor: entities.LaborInput{
			Hours:        decimal.NewFromInt(8),
			MaterialCost: decimal.NewFromInt(150),
		},
	}
}

func TestQuoteUseCase_ComputeQuote(t *testing.T) {
	t.Run("invalid tenant id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil)
		_, err := uc.ComputeQuote(context.Background(), ComputeQuoteCommand{TenantID: "   "})
		if !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
	})

	t.Run("invalid tier", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil)
		_, err := uc.ComputeQuote(context.Background(), ComputeQuoteCommand{TenantID: "tenant-1", Tier: "platinum"})
		if !errors.Is(err, ErrInvalidTier) {
			t.Fatalf("expected ErrInvalidTier, got %v", err)
		}
	})

	t.Run("scheme not found", func(t *testing.T) {
		uc, m, ctrl := newQuoteUseCaseWithMocks(t)
		defer ctrl.Finish()

		m.scheme.EXPECT().GetByID(gomock.Any(), "scheme-1").Return(entities.PricingScheme{}, nil)

		_, err := uc.ComputeQuote(context.Background(), hourlyCommand())
		if !errors.Is(err, ErrSchemeNotFound) {
			t.Fatalf("expected ErrSchemeNotFound, got %v", err)
		}
	})

	t.Run("no default scheme", func(t *testing.T) {
		uc, m, ctrl := newQuoteUseCaseWithMocks(t)
		defer ctrl.Finish()

		m.scheme.EXPECT().GetDefaultByTenantID(gomock.Any(), "tenant-1").Return(entities.PricingScheme{}, nil)

		cmd := hourlyCommand()
		cmd.SchemeID = ""
		_, err := uc.ComputeQuote(context.Background(), cmd)
		if !errors.Is(err, ErrNoDefaultScheme) {
			t.Fatalf("expected ErrNoDefaultScheme, got %v", err)
		}
	})

	t.Run("no rate table", func(t *testing.T) {
		uc, m, ctrl := newQuoteUseCaseWithMocks(t)
		defer ctrl.Finish()

		m.scheme.EXPECT().GetByID(gomock.Any(), "scheme-1").Return(hourlyScheme(), nil)
		m.rates.EXPECT().GetByTenantID(gomock.Any(), "tenant-1").Return(entities.RateTable{}, nil)

		_, err := uc.ComputeQuote(context.Background(), hourlyCommand())
		if !errors.Is(err, ErrNoRateTable) {
			t.Fatalf("expected ErrNoRateTable, got %v", err)
		}
	})

	t.Run("rate table repo error", func(t *testing.T) {
		uc, m, ctrl := newQuoteUseCaseWithMocks(t)
		defer ctrl.Finish()

		m.scheme.EXPECT().GetByID(gomock.Any(), "scheme-1").Return(hourlyScheme(), nil)
		m.rates.EXPECT().GetByTenantID(gomock.Any(), "tenant-1").Return(entities.RateTable{}, errors.New("db"))

		_, err := uc.ComputeQuote(context.Background(), hourlyCommand())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("engine error is not persisted", func(t *testing.T) {
		uc, m, ctrl := newQuoteUseCaseWithMocks(t)
		defer ctrl.Finish()

		rates := testRateTable()
		rates.DefaultLaborCategory = "ghost"

		m.scheme.EXPECT().GetByID(gomock.Any(), "scheme-1").Return(hourlyScheme(), nil)
		m.rates.EXPECT().GetByTenantID(gomock.Any(), "tenant-1").Return(rates, nil)

		cmd := hourlyCommand()
		cmd.Labor.Category = ""
		_, err := uc.ComputeQuote(context.Background(), cmd)
		var ce *pricing.ConfigurationError
		if !errors.As(err, &ce) {
			t.Fatalf("expected *pricing.ConfigurationError, got %v", err)
		}
	})

	t.Run("tier requested on untiered scheme", func(t *testing.T) {
		uc, m, ctrl := newQuoteUseCaseWithMocks(t)
		defer ctrl.Finish()

		m.scheme.EXPECT().GetByID(gomock.Any(), "scheme-1").Return(hourlyScheme(), nil)
		m.rates.EXPECT().GetByTenantID(gomock.Any(), "tenant-1").Return(testRateTable(), nil)

		cmd := hourlyCommand()
		cmd.Tier = entities.TierBetter
		_, err := uc.ComputeQuote(context.Background(), cmd)
		if !errors.Is(err, ErrTierNotEnabled) {
			t.Fatalf("expected ErrTierNotEnabled, got %v", err)
		}
	})

	t.Run("success plain compute", func(t *testing.T) {
		uc, m, ctrl := newQuoteUseCaseWithMocks(t)
		defer ctrl.Finish()

		m.scheme.EXPECT().GetByID(gomock.Any(), "scheme-1").Return(hourlyScheme(), nil)
		m.rates.EXPECT().GetByTenantID(gomock.Any(), "tenant-1").Return(testRateTable(), nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteRecord{})).DoAndReturn(
			func(_ context.Context, r entities.QuoteRecord) (entities.QuoteRecord, error) {
				if r.ID == "" || r.TenantID != "tenant-1" || r.SchemeID != "scheme-1" {
					t.Fatalf("unexpected record: %+v", r)
				}
				if r.RateTableVersion != 3 {
					t.Fatalf("expected rate table version fingerprint, got %d", r.RateTableVersion)
				}
				if r.Result == nil || r.Tiered != nil {
					t.Fatalf("expected a single result, got %+v", r)
				}
				// 8 hours at 65 plus 150 pass-through material.
				if got := r.Result.LaborSubtotal.StringFixed(2); got != "520.00" {
					t.Fatalf("labor subtotal = %s", got)
				}
				if got := r.Result.MaterialSubtotal.StringFixed(2); got != "150.00" {
					t.Fatalf("material subtotal = %s", got)
				}
				if r.CreatedAt.IsZero() {
					t.Fatalf("expected created_at timestamp")
				}
				return r, nil
			},
		)

		record, err := uc.ComputeQuote(context.Background(), hourlyCommand())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record.ID == "" {
			t.Fatalf("expected generated quote id")
		}
	})

	t.Run("tiered scheme computes all enabled tiers", func(t *testing.T) {
		uc, m, ctrl := newQuoteUseCaseWithMocks(t)
		defer ctrl.Finish()

		scheme := hourlyScheme()
		scheme.TierPricingEnabled = true
		better := decimal.NewFromInt(20)
		cfg := entities.GBBTierConfig{
			SchemeID: scheme.ID,
			Tiers: map[entities.GBBTier]entities.TierOverride{
				entities.TierGood:   {Enabled: true},
				entities.TierBetter: {Enabled: true, MarkupPercent: &better},
			},
		}

		m.scheme.EXPECT().GetByID(gomock.Any(), "scheme-1").Return(scheme, nil)
		m.rates.EXPECT().GetByTenantID(gomock.Any(), "tenant-1").Return(testRateTable(), nil)
		m.scheme.EXPECT().GetTierConfig(gomock.Any(), "scheme-1").Return(cfg, nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteRecord{})).DoAndReturn(
			func(_ context.Context, r entities.QuoteRecord) (entities.QuoteRecord, error) {
				if r.Tiered == nil || r.Result != nil {
					t.Fatalf("expected tiered result, got %+v", r)
				}
				if r.Tiered.Good == nil || r.Tiered.Better == nil || r.Tiered.Best != nil {
					t.Fatalf("expected good and better tiers only, got %+v", r.Tiered)
				}
				return r, nil
			},
		)

		if _, err := uc.ComputeQuote(context.Background(), hourlyCommand()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("explicit tier computes only that tier", func(t *testing.T) {
		uc, m, ctrl := newQuoteUseCaseWithMocks(t)
		defer ctrl.Finish()

		scheme := hourlyScheme()
		scheme.TierPricingEnabled = true
		cfg := entities.GBBTierConfig{
			SchemeID: scheme.ID,
			Tiers: map[entities.GBBTier]entities.TierOverride{
				entities.TierBest: {Enabled: true},
			},
		}

		m.scheme.EXPECT().GetByID(gomock.Any(), "scheme-1").Return(scheme, nil)
		m.rates.EXPECT().GetByTenantID(gomock.Any(), "tenant-1").Return(testRateTable(), nil)
		m.scheme.EXPECT().GetTierConfig(gomock.Any(), "scheme-1").Return(cfg, nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteRecord{})).DoAndReturn(
			func(_ context.Context, r entities.QuoteRecord) (entities.QuoteRecord, error) {
				if r.Result == nil || r.Result.Tier != entities.TierBest {
					t.Fatalf("expected best tier result, got %+v", r)
				}
				return r, nil
			},
		)

		cmd := hourlyCommand()
		cmd.Tier = entities.TierBest
		if _, err := uc.ComputeQuote(context.Background(), cmd); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("explicit tier not enabled", func(t *testing.T) {
		uc, m, ctrl := newQuoteUseCaseWithMocks(t)
		defer ctrl.Finish()

		scheme := hourlyScheme()
		scheme.TierPricingEnabled = true
		cfg := entities.GBBTierConfig{SchemeID: scheme.ID, Tiers: map[entities.GBBTier]entities.TierOverride{}}

		m.scheme.EXPECT().GetByID(gomock.Any(), "scheme-1").Return(scheme, nil)
		m.rates.EXPECT().GetByTenantID(gomock.Any(), "tenant-1").Return(testRateTable(), nil)
		m.scheme.EXPECT().GetTierConfig(gomock.Any(), "scheme-1").Return(cfg, nil)

		cmd := hourlyCommand()
		cmd.Tier = entities.TierGood
		_, err := uc.ComputeQuote(context.Background(), cmd)
		if !errors.Is(err, ErrTierNotEnabled) {
			t.Fatalf("expected ErrTierNotEnabled, got %v", err)
		}
	})

	t.Run("products are loaded once per distinct id", func(t *testing.T) {
		uc, m, ctrl := newQuoteUseCaseWithMocks(t)
		defer ctrl.Finish()

		scheme := hourlyScheme()
		scheme.Type = entities.SchemeSqftLaborPaint

		products := []entities.Product{
			{
				ID: "prod-1",
				Sheens: map[string]entities.SheenPricing{
					"eggshell": {PricePerGallon: decimal.NewFromInt(55), CoverageSqFtPerGallon: decimal.NewFromInt(350)},
				},
			},
		}

		m.scheme.EXPECT().GetByID(gomock.Any(), "scheme-1").Return(scheme, nil)
		m.rates.EXPECT().GetByTenantID(gomock.Any(), "tenant-1").Return(testRateTable(), nil)
		m.catalog.EXPECT().GetProductsByIDs(gomock.Any(), []string{"prod-1"}).Return(products, nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.QuoteRecord) (entities.QuoteRecord, error) { return r, nil },
		)

		cmd := hourlyCommand()
		cmd.Surfaces = []entities.SurfaceInput{{
			Type:        entities.SurfaceWall,
			Category:    entities.CategoryInterior,
			Measurement: decimal.NewFromInt(400),
			Unit:        entities.UnitSquareFeet,
		}}
		cmd.Products = []entities.ProductSelection{
			{ProductID: "prod-1", Sheen: "eggshell"},
			{ProductID: "prod-1", Sheen: "eggshell"},
		}
		if _, err := uc.ComputeQuote(context.Background(), cmd); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m, ctrl := newQuoteUseCaseWithMocks(t)
		defer ctrl.Finish()
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.QuoteRecord{}, nil)

		_, err := uc.GetByID(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m, ctrl := newQuoteUseCaseWithMocks(t)
		defer ctrl.Finish()
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.QuoteRecord{ID: "q-1"}, nil)

		record, err := uc.GetByID(context.Background(), " q-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record.ID != "q-1" {
			t.Fatalf("unexpected record: %+v", record)
		}
	})
}

func TestQuoteUseCase_ListByTenantID(t *testing.T) {
	t.Run("invalid tenant", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil)
		_, err := uc.ListByTenantID(context.Background(), "")
		if !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m, ctrl := newQuoteUseCaseWithMocks(t)
		defer ctrl.Finish()
		m.quotes.EXPECT().ListByTenantID(gomock.Any(), "tenant-1").Return([]entities.QuoteRecord{{ID: "q-1"}, {ID: "q-2"}}, nil)

		records, err := uc.ListByTenantID(context.Background(), " tenant-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
	})
}
