package request

import (
	"errors"
	"strings"

	"brushworks/internal/domain/entities"
	"brushworks/internal/usecase"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingTenantID = errors.New("missing tenant_id")
	ErrInvalidGBBTier  = errors.New("invalid gbb_tier")
)

type SurfaceRequest struct {
	Type        string  `json:"type" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Measurement float64 `json:"measurement"`
	Unit        string  `json:"unit" binding:"required"`
}

type ProductSelectionRequest struct {
	ProductID        string   `json:"product_id" binding:"required"`
	Sheen            string   `json:"sheen" binding:"required"`
	PriceOverride    *float64 `json:"price_override,omitempty"`
	CoverageOverride *float64 `json:"coverage_override,omitempty"`
}

type LaborRequest struct {
	Hours        float64 `json:"hours"`
	Category     string  `json:"category"`
	MaterialCost float64 `json:"material_cost"`
}

// QuoteComputeRequest is the compute-quote payload.
//
// pricing_scheme_id empty means "price with the tenant's default scheme";
// gbb_tier null on a tiered scheme means "compute every enabled tier".
type QuoteComputeRequest struct {
	TenantID        string                    `json:"tenant_id" binding:"required"`
	PricingSchemeID string                    `json:"pricing_scheme_id"`
	Surfaces        []SurfaceRequest          `json:"surfaces"`
	Products        []ProductSelectionRequest `json:"products"`
	Labor           *LaborRequest             `json:"labor"`
	GBBTier         *string                   `json:"gbb_tier"`
}

// ToCommand translates the payload into the domain command expected by the
// quote use case. Field-level validation beyond shape (negative
// measurements, sheen membership, rate ranges) belongs to the engine, which
// localizes errors to the offending field.
func (r QuoteComputeRequest) ToCommand() (usecase.ComputeQuoteCommand, error) {
	tenantID := strings.TrimSpace(r.TenantID)
	if tenantID == "" {
		return usecase.ComputeQuoteCommand{}, ErrMissingTenantID
	}

	cmd := usecase.ComputeQuoteCommand{
		TenantID: tenantID,
		SchemeID: strings.TrimSpace(r.PricingSchemeID),
	}

	if r.GBBTier != nil {
		tier := entities.GBBTier(strings.ToLower(strings.TrimSpace(*r.GBBTier)))
		if !entities.ValidTier(tier) {
			return usecase.ComputeQuoteCommand{}, ErrInvalidGBBTier
		}
		cmd.Tier = tier
	}

	for _, s := range r.Surfaces {
		cmd.Surfaces = append(cmd.Surfaces, entities.SurfaceInput{
			Type:        entities.SurfaceType(strings.TrimSpace(s.Type)),
			Category:    entities.SurfaceCategory(strings.TrimSpace(s.Category)),
			Measurement: decimal.NewFromFloat(s.Measurement),
			Unit:        entities.MeasurementUnit(strings.TrimSpace(s.Unit)),
		})
	}

	for _, p := range r.Products {
		sel := entities.ProductSelection{
			ProductID: strings.TrimSpace(p.ProductID),
			Sheen:     strings.TrimSpace(p.Sheen),
		}
		if p.PriceOverride != nil {
			v := decimal.NewFromFloat(*p.PriceOverride)
			sel.PriceOverride = &v
		}
		if p.CoverageOverride != nil {
			v := decimal.NewFromFloat(*p.CoverageOverride)
			sel.CoverageOverride = &v
		}
		cmd.Products = append(cmd.Products, sel)
	}

	if r.Labor != nil {
		cmd.Labor = entities.LaborInput{
			Hours:        decimal.NewFromFloat(r.Labor.Hours),
			Category:     strings.TrimSpace(r.Labor.Category),
			MaterialCost: decimal.NewFromFloat(r.Labor.MaterialCost),
		}
	}

	return cmd, nil
}
