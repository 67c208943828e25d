package pricing

import (
	"brushworks/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// MergeTier deep-merges a sparse Good/Better/Best tier override onto the base
// rate table and returns the merged copy. Precedence is explicit and
// field-by-field: a set override field wins, an unset field inherits the base
// value, and map overrides replace entries key-by-key without dropping base
// keys. The base table is never mutated.
func MergeTier(base entities.RateTable, ov entities.TierOverride) entities.RateTable {
	merged := base

	merged.LaborCategories = mergeMap(base.LaborCategories, ov.LaborCategories)
	merged.ProductionRates = mergeMap(base.ProductionRates, ov.ProductionRates)
	merged.FlatUnitPrices = mergeMap(base.FlatUnitPrices, ov.FlatUnitPrices)
	merged.TurnkeyRates = mergeMap(base.TurnkeyRates, ov.TurnkeyRates)

	if ov.DefaultLaborCategory != nil {
		merged.DefaultLaborCategory = *ov.DefaultLaborCategory
	}
	if ov.CrewSizeDefault != nil {
		merged.CrewSizeDefault = *ov.CrewSizeDefault
	}
	if ov.MarkupPercent != nil {
		merged.MarkupPercent = *ov.MarkupPercent
	}
	if ov.OverheadPercent != nil {
		merged.OverheadPercent = *ov.OverheadPercent
	}
	if ov.NetProfitPercent != nil {
		merged.NetProfitPercent = *ov.NetProfitPercent
	}
	if ov.TaxRatePercent != nil {
		merged.TaxRatePercent = *ov.TaxRatePercent
	}
	if ov.DepositPercent != nil {
		merged.DepositPercent = *ov.DepositPercent
	}
	if ov.TaxBasis != nil {
		merged.TaxBasis = *ov.TaxBasis
	}
	if ov.TierMultiplier != nil {
		merged.TierMultiplier = *ov.TierMultiplier
	}

	if ov.MaterialDefaults != nil {
		merged.MaterialDefaults = mergeMaterialDefaults(base.MaterialDefaults, *ov.MaterialDefaults)
	}

	return merged
}

func mergeMaterialDefaults(base entities.MaterialDefaults, ov entities.MaterialDefaultsOverride) entities.MaterialDefaults {
	merged := base
	if ov.CoverageSqFtPerGallon != nil {
		merged.CoverageSqFtPerGallon = *ov.CoverageSqFtPerGallon
	}
	if ov.Coats != nil {
		merged.Coats = *ov.Coats
	}
	if ov.WasteFactor != nil {
		merged.WasteFactor = *ov.WasteFactor
	}
	if ov.ApplicationMethod != nil {
		merged.ApplicationMethod = *ov.ApplicationMethod
	}
	return merged
}

// mergeMap copies base and applies override entries on top. A nil override
// returns a copy of base so callers can never alias the snapshot's maps.
func mergeMap[K comparable, V any](base, override map[K]V) map[K]V {
	if base == nil && override == nil {
		return nil
	}
	merged := make(map[K]V, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

// tierRank binds the tier variable for formula authors: good=1, better=2,
// best=3, untiered=0.
func tierRank(t entities.GBBTier) decimal.Decimal {
	switch t {
	case entities.TierGood:
		return decimal.NewFromInt(1)
	case entities.TierBetter:
		return decimal.NewFromInt(2)
	case entities.TierBest:
		return decimal.NewFromInt(3)
	}
	return decimal.Zero
}
