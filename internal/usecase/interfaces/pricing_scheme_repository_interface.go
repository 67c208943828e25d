package interfaces

import (
	"context"

	"brushworks/internal/domain/entities"
)

// IPricingSchemeRepository abstracts persistence of pricing schemes and
// their Good/Better/Best tier configuration.
//
// Schemes are authored by the admin surface; the engine only reads them:
//   - resolve an explicit scheme by id
//   - resolve a tenant's single default scheme
//   - load the tier overrides for a tiered scheme
type IPricingSchemeRepository interface {
	GetByID(ctx context.Context, id string) (entities.PricingScheme, error)
	GetDefaultByTenantID(ctx context.Context, tenantID string) (entities.PricingScheme, error)
	GetTierConfig(ctx context.Context, schemeID string) (entities.GBBTierConfig, error)
}
