package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"brushworks/internal/domain/entities"
	"brushworks/internal/domain/pricing"
	"brushworks/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidTenantID = errors.New("invalid tenant_id")
	ErrInvalidQuoteID  = errors.New("invalid quote id")
	ErrInvalidTier     = errors.New("invalid gbb tier")
	ErrSchemeNotFound  = errors.New("pricing scheme not found")
	ErrNoDefaultScheme = errors.New("tenant has no default pricing scheme")
	ErrNoRateTable     = errors.New("tenant has no configured rate table")
	ErrTierNotEnabled  = errors.New("requested tier is not enabled for this scheme")
	ErrQuoteNotFound   = errors.New("quote not found")
)

// ComputeQuoteCommand is the resolved computation request handed to the use
// case. SchemeID empty means "use the tenant's default scheme"; Tier empty
// on a tiered scheme means "compute every enabled tier".
type ComputeQuoteCommand struct {
	TenantID string
	SchemeID string
	Surfaces []entities.SurfaceInput
	Products []entities.ProductSelection
	Labor    entities.LaborInput
	Tier     entities.GBBTier
}

// IQuoteUseCase exposes quote computation and retrieval.
//
// Computation is all-or-nothing: any validation, configuration or formula
// error aborts with no partial monetary result persisted or returned.

type IQuoteUseCase interface {
	ComputeQuote(ctx context.Context, cmd ComputeQuoteCommand) (entities.QuoteRecord, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRecord, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.QuoteRecord, error)
}

type QuoteUseCase struct {
	engine      *pricing.Engine
	schemeRepo  interfaces.IPricingSchemeRepository
	rateRepo    interfaces.IRateTableRepository
	catalogRepo interfaces.IProductCatalogRepository
	quoteRepo   interfaces.IQuoteRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	schemeRepo interfaces.IPricingSchemeRepository,
	rateRepo interfaces.IRateTableRepository,
	catalogRepo interfaces.IProductCatalogRepository,
	quoteRepo interfaces.IQuoteRepository,
) *QuoteUseCase {
	return &QuoteUseCase{
		engine:      pricing.NewEngine(),
		schemeRepo:  schemeRepo,
		rateRepo:    rateRepo,
		catalogRepo: catalogRepo,
		quoteRepo:   quoteRepo,
	}
}

func (u *QuoteUseCase) ComputeQuote(ctx context.Context, cmd ComputeQuoteCommand) (entities.QuoteRecord, error) {
	cmd.TenantID = strings.TrimSpace(cmd.TenantID)
	cmd.SchemeID = strings.TrimSpace(cmd.SchemeID)
	if cmd.TenantID == "" {
		return entities.QuoteRecord{}, ErrInvalidTenantID
	}
	if cmd.Tier != "" && !entities.ValidTier(cmd.Tier) {
		return entities.QuoteRecord{}, ErrInvalidTier
	}

	scheme, err := u.resolveScheme(ctx, cmd)
	if err != nil {
		return entities.QuoteRecord{}, err
	}

	rates, err := u.rateRepo.GetByTenantID(ctx, cmd.TenantID)
	if err != nil {
		return entities.QuoteRecord{}, err
	}
	if rates.TenantID == "" {
		// The engine must not silently substitute zeros for a missing table.
		return entities.QuoteRecord{}, ErrNoRateTable
	}

	catalog, err := u.loadCatalog(ctx, cmd.Products)
	if err != nil {
		return entities.QuoteRecord{}, err
	}

	input := pricing.QuoteInput{
		Surfaces: cmd.Surfaces,
		Products: cmd.Products,
		Labor:    cmd.Labor,
	}

	record := entities.QuoteRecord{
		ID:               uuid.NewString(),
		TenantID:         cmd.TenantID,
		SchemeID:         scheme.ID,
		RateTableVersion: rates.Version,
		RequestedTier:    cmd.Tier,
		CreatedAt:        time.Now().UTC(),
	}

	switch {
	case scheme.TierPricingEnabled && cmd.Tier == "":
		tierCfg, err := u.schemeRepo.GetTierConfig(ctx, scheme.ID)
		if err != nil {
			return entities.QuoteRecord{}, err
		}
		tiered, err := u.engine.ComputeTieredQuote(scheme, rates, tierCfg, catalog, input)
		if err != nil {
			return entities.QuoteRecord{}, err
		}
		record.Tiered = &tiered

	case scheme.TierPricingEnabled:
		tierCfg, err := u.schemeRepo.GetTierConfig(ctx, scheme.ID)
		if err != nil {
			return entities.QuoteRecord{}, err
		}
		override, ok := tierCfg.Tiers[cmd.Tier]
		if !ok || !override.Enabled {
			return entities.QuoteRecord{}, ErrTierNotEnabled
		}
		input.Tier = cmd.Tier
		result, err := u.engine.ComputeQuote(scheme, pricing.MergeTier(rates, override), catalog, input)
		if err != nil {
			return entities.QuoteRecord{}, err
		}
		record.Result = &result

	case cmd.Tier != "":
		return entities.QuoteRecord{}, ErrTierNotEnabled

	default:
		result, err := u.engine.ComputeQuote(scheme, rates, catalog, input)
		if err != nil {
			return entities.QuoteRecord{}, err
		}
		record.Result = &result
	}

	created, err := u.quoteRepo.Create(ctx, record)
	if err != nil {
		log.Printf("[quote][usecase] persist failed quote_id=%s tenant_id=%s err=%v", record.ID, cmd.TenantID, err)
		return entities.QuoteRecord{}, err
	}
	log.Printf("[quote][usecase] computed quote_id=%s tenant_id=%s scheme_id=%s rate_table_version=%d", created.ID, created.TenantID, created.SchemeID, created.RateTableVersion)
	return created, nil
}

func (u *QuoteUseCase) resolveScheme(ctx context.Context, cmd ComputeQuoteCommand) (entities.PricingScheme, error) {
	if cmd.SchemeID != "" {
		scheme, err := u.schemeRepo.GetByID(ctx, cmd.SchemeID)
		if err != nil {
			return entities.PricingScheme{}, err
		}
		if scheme.ID == "" {
			return entities.PricingScheme{}, ErrSchemeNotFound
		}
		return scheme, nil
	}

	scheme, err := u.schemeRepo.GetDefaultByTenantID(ctx, cmd.TenantID)
	if err != nil {
		return entities.PricingScheme{}, err
	}
	if scheme.ID == "" {
		return entities.PricingScheme{}, ErrNoDefaultScheme
	}
	return scheme, nil
}

// loadCatalog fetches each distinct selected product once and wraps the
// batch in the immutable snapshot the engine resolves against.
func (u *QuoteUseCase) loadCatalog(ctx context.Context, selections []entities.ProductSelection) (pricing.Catalog, error) {
	if len(selections) == 0 {
		return pricing.NewCatalog(nil), nil
	}
	seen := map[string]struct{}{}
	ids := make([]string, 0, len(selections))
	for _, sel := range selections {
		if _, ok := seen[sel.ProductID]; ok {
			continue
		}
		seen[sel.ProductID] = struct{}{}
		ids = append(ids, sel.ProductID)
	}
	products, err := u.catalogRepo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return pricing.Catalog{}, err
	}
	return pricing.NewCatalog(products), nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.QuoteRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRecord{}, ErrInvalidQuoteID
	}

	record, err := u.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteRecord{}, err
	}
	if record.ID == "" {
		return entities.QuoteRecord{}, ErrQuoteNotFound
	}
	return record, nil
}

func (u *QuoteUseCase) ListByTenantID(ctx context.Context, tenantID string) ([]entities.QuoteRecord, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	return u.quoteRepo.ListByTenantID(ctx, tenantID)
}
