package entities

import "time"

// SchemeType enumerates the closed set of supported pricing methodologies.
//
// Each type maps to exactly one computation strategy in the pricing engine;
// an unrecognized value is a configuration problem, never a silent default.
type SchemeType string

const (
	SchemeSqftTurnkey         SchemeType = "sqft_turnkey"
	SchemeSqftLaborPaint      SchemeType = "sqft_labor_paint"
	SchemeHourlyTimeMaterials SchemeType = "hourly_time_materials"
	SchemeUnitPricing         SchemeType = "unit_pricing"
	SchemeRoomFlatRate        SchemeType = "room_flat_rate"
	SchemeProductionBased     SchemeType = "production_based"
)

// ValidSchemeType reports whether t is a member of the closed scheme set.
func ValidSchemeType(t SchemeType) bool {
	switch t {
	case SchemeSqftTurnkey, SchemeSqftLaborPaint, SchemeHourlyTimeMaterials,
		SchemeUnitPricing, SchemeRoomFlatRate, SchemeProductionBased:
		return true
	}
	return false
}

// GBBTier identifies one of the three parallel Good/Better/Best pricing tiers.
type GBBTier string

const (
	TierGood   GBBTier = "good"
	TierBetter GBBTier = "better"
	TierBest   GBBTier = "best"
)

// AllTiers is the fixed evaluation order for tiered quotes.
var AllTiers = []GBBTier{TierGood, TierBetter, TierBest}

func ValidTier(t GBBTier) bool {
	return t == TierGood || t == TierBetter || t == TierBest
}

// PricingScheme is a contractor-authored pricing configuration.
//
// Domain notes:
//   - Schemes are created/edited by the admin surface; the pricing engine
//     only ever reads them.
//   - Exactly one scheme per tenant carries IsDefault.
//   - IsProtected editing is gated by an external PIN check; the engine
//     treats the flag as informational.
//   - Formula, when non-empty, overrides the strategy's line total with the
//     result of evaluating the formula against the strategy's variable set.
type PricingScheme struct {
	ID                 string     `json:"id"`
	TenantID           string     `json:"tenant_id"`
	Name               string     `json:"name"`
	Type               SchemeType `json:"type"`
	Formula            string     `json:"formula,omitempty"`
	IsDefault          bool       `json:"is_default"`
	IsProtected        bool       `json:"is_protected"`
	TierPricingEnabled bool       `json:"tier_pricing_enabled"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
