// Package pricing is the quote pricing engine: it turns measured surfaces,
// catalog product selections and a tenant's configured rate tables into a
// priced, itemized quote.
//
// Computation is a pure function of its immutable snapshot inputs. No shared
// state is touched, so any number of quotes (including the three tiers of a
// Good/Better/Best quote) may run fully in parallel without locking, and
// identical inputs always produce identical output.
package pricing

import (
	"fmt"

	"brushworks/internal/domain/entities"
	"brushworks/internal/domain/pricing/formula"

	"github.com/shopspring/decimal"
)

// Engine computes quotes. It is stateless and safe for concurrent use.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// QuoteInput is one quote computation request, already resolved to domain
// entities. Tier is set only when pricing a single Good/Better/Best tier.
type QuoteInput struct {
	Surfaces []entities.SurfaceInput
	Products []entities.ProductSelection
	Labor    entities.LaborInput
	Tier     entities.GBBTier
}

// ComputeQuote prices one quote against one rate table snapshot.
//
// Validation runs before any computation and the whole call is
// all-or-nothing: any error aborts with no partial monetary result, so a
// caller can never mistake an incomplete breakdown for a valid price.
func (e *Engine) ComputeQuote(
	scheme entities.PricingScheme,
	rates entities.RateTable,
	catalog Catalog,
	input QuoteInput,
) (entities.QuoteResult, error) {
	if err := validateInput(scheme, rates, catalog, input); err != nil {
		return entities.QuoteResult{}, err
	}

	strat, err := strategyFor(scheme.Type)
	if err != nil {
		return entities.QuoteResult{}, err
	}

	res, err := strat.compute(strategyInput{
		scheme:   scheme,
		rates:    rates,
		catalog:  catalog,
		surfaces: input.Surfaces,
		products: input.Products,
		labor:    input.Labor,
		tier:     input.Tier,
	})
	if err != nil {
		return entities.QuoteResult{}, err
	}

	if scheme.Formula != "" {
		res, err = applyFormula(scheme, res)
		if err != nil {
			return entities.QuoteResult{}, err
		}
	}

	quote, err := aggregate(res, rates)
	if err != nil {
		return entities.QuoteResult{}, err
	}
	quote.SchemeID = scheme.ID
	quote.TenantID = scheme.TenantID
	quote.Tier = input.Tier
	return quote, nil
}

// ComputeTieredQuote runs the scheme once per enabled Good/Better/Best tier,
// each against the base rate table with that tier's sparse override merged
// on. Tiers are fully isolated: an override on one tier can never influence
// another tier's result.
func (e *Engine) ComputeTieredQuote(
	scheme entities.PricingScheme,
	rates entities.RateTable,
	tierCfg entities.GBBTierConfig,
	catalog Catalog,
	input QuoteInput,
) (entities.TieredQuote, error) {
	var out entities.TieredQuote
	computed := 0

	for _, tier := range entities.AllTiers {
		override, ok := tierCfg.Tiers[tier]
		if !ok || !override.Enabled {
			continue
		}
		merged := MergeTier(rates, override)
		tierInput := input
		tierInput.Tier = tier

		result, err := e.ComputeQuote(scheme, merged, catalog, tierInput)
		if err != nil {
			return entities.TieredQuote{}, err
		}
		computed++
		switch tier {
		case entities.TierGood:
			out.Good = &result
		case entities.TierBetter:
			out.Better = &result
		case entities.TierBest:
			out.Best = &result
		}
	}

	if computed == 0 {
		return entities.TieredQuote{}, &ConfigurationError{Reason: fmt.Sprintf("tier pricing enabled for scheme %s but no tier is enabled", scheme.ID)}
	}
	return out, nil
}

// applyFormula evaluates the scheme's custom formula over the strategy's
// bound variables; the formula value becomes the scheme's line total. The
// strategy breakdown stays available to the author through the variable
// catalog (materialCost, laborCost, ...).
func applyFormula(scheme entities.PricingScheme, res strategyResult) (strategyResult, error) {
	parsed, err := formula.Parse(scheme.Formula)
	if err != nil {
		return strategyResult{}, &FormulaError{SchemeID: scheme.ID, Formula: scheme.Formula, Err: err}
	}
	value, err := parsed.Eval(res.variables)
	if err != nil {
		return strategyResult{}, &FormulaError{SchemeID: scheme.ID, Formula: scheme.Formula, Err: err}
	}
	if value.Sign() < 0 {
		return strategyResult{}, &ComputationError{Reason: fmt.Sprintf("formula for scheme %s produced negative total %s", scheme.ID, value)}
	}

	replaced := res
	replaced.lineItems = []entities.LineItem{
		{
			Description: fmt.Sprintf("%s (custom formula)", scheme.Name),
			Quantity:    decimal.NewFromInt(1),
			LaborCost:   value,
		},
	}
	replaced.materialSubtotal = decimal.Zero
	replaced.laborSubtotal = value
	return replaced, nil
}

func validateInput(scheme entities.PricingScheme, rates entities.RateTable, catalog Catalog, input QuoteInput) error {
	if !entities.ValidSchemeType(scheme.Type) {
		return &ConfigurationError{Reason: fmt.Sprintf("unknown scheme type %q", scheme.Type)}
	}
	if err := validatePercentages(rates); err != nil {
		return err
	}

	for i, s := range input.Surfaces {
		if s.Measurement.Sign() < 0 {
			return &ValidationError{
				Field:  fmt.Sprintf("surfaces[%d].measurement", i),
				Reason: "measurement must be non-negative",
			}
		}
		if !entities.ValidSurfaceCategory(s.Category) {
			return &ValidationError{
				Field:  fmt.Sprintf("surfaces[%d].category", i),
				Reason: fmt.Sprintf("unknown surface category %q", s.Category),
			}
		}
		switch s.Unit {
		case entities.UnitSquareFeet, entities.UnitLinearFeet, entities.UnitCount:
		default:
			return &ValidationError{
				Field:  fmt.Sprintf("surfaces[%d].unit", i),
				Reason: fmt.Sprintf("unknown measurement unit %q", s.Unit),
			}
		}
	}

	if input.Labor.Hours.Sign() < 0 {
		return &ValidationError{Field: "labor.hours", Reason: "labor hours must be non-negative"}
	}
	if input.Labor.MaterialCost.Sign() < 0 {
		return &ValidationError{Field: "labor.material_cost", Reason: "material cost must be non-negative"}
	}

	// Sheen membership is checked up front so a bad selection aborts before
	// any money is computed.
	for i, sel := range input.Products {
		if _, err := catalog.Resolve(sel); err != nil {
			return &ValidationError{
				Field:  fmt.Sprintf("products[%d]", i),
				Reason: err.Error(),
			}
		}
	}
	return nil
}

// validatePercentages enforces the rate table invariant that every
// percentage sits in [0,100]. It runs per computation so a tier override can
// never push a merged table out of range unnoticed.
func validatePercentages(rates entities.RateTable) error {
	checks := []struct {
		name  string
		value decimal.Decimal
	}{
		{"markup_percent", rates.MarkupPercent},
		{"overhead_percent", rates.OverheadPercent},
		{"net_profit_percent", rates.NetProfitPercent},
		{"tax_rate_percent", rates.TaxRatePercent},
		{"deposit_percent", rates.DepositPercent},
	}
	for _, c := range checks {
		if c.value.Sign() < 0 || c.value.GreaterThan(oneHundred) {
			return &ConfigurationError{Reason: fmt.Sprintf("%s must be between 0 and 100, got %s", c.name, c.value)}
		}
	}
	if rates.TaxBasis != "" && !entities.ValidTaxBasis(rates.TaxBasis) {
		return &ConfigurationError{Reason: fmt.Sprintf("unknown tax basis %q", rates.TaxBasis)}
	}
	return nil
}
