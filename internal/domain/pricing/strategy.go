package pricing

import (
	"fmt"

	"brushworks/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Variable names in the documented formula catalog. These are the engine's
// contract with formula authors and must stay stable.
const (
	VarSqft         = "sqft"
	VarBaseRate     = "baseRate"
	VarMaterialCost = "materialCost"
	VarLaborCost    = "laborCost"
	VarLaborHours   = "laborHours"
	VarHourlyRate   = "hourlyRate"
	VarTier         = "tier"
	VarMultiplier   = "multiplier"
	VarGallons      = "gallons"
	VarUnitCount    = "unitCount"
)

// strategyInput bundles everything a computation strategy may consult. All
// members are immutable snapshots for the duration of the call.
type strategyInput struct {
	scheme   entities.PricingScheme
	rates    entities.RateTable
	catalog  Catalog
	surfaces []entities.SurfaceInput
	products []entities.ProductSelection
	labor    entities.LaborInput
	tier     entities.GBBTier
}

// strategyResult is the raw per-scheme output consumed by the aggregator.
// variables is the bound set handed to a custom formula when one is set.
type strategyResult struct {
	lineItems        []entities.LineItem
	materialSubtotal decimal.Decimal
	laborSubtotal    decimal.Decimal
	variables        map[string]decimal.Decimal
}

// strategy is one pricing methodology. The set is closed: adding a scheme
// type means adding exactly one implementation here and registering it.
type strategy interface {
	schemeType() entities.SchemeType
	requiredVariables() []string
	compute(in strategyInput) (strategyResult, error)
}

var strategies = map[entities.SchemeType]strategy{
	entities.SchemeSqftTurnkey:         turnkeyStrategy{},
	entities.SchemeSqftLaborPaint:      laborPaintStrategy{},
	entities.SchemeHourlyTimeMaterials: hourlyStrategy{},
	entities.SchemeUnitPricing:         flatUnitStrategy{typ: entities.SchemeUnitPricing, noun: "unit"},
	entities.SchemeRoomFlatRate:        flatUnitStrategy{typ: entities.SchemeRoomFlatRate, noun: "room"},
	entities.SchemeProductionBased:     productionStrategy{},
}

func strategyFor(t entities.SchemeType) (strategy, error) {
	s, ok := strategies[t]
	if !ok {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("unknown scheme type %q", t)}
	}
	return s, nil
}

// baseVariables seeds the variable map every strategy shares. The tier
// multiplier defaults to 1 when unconfigured so formulas multiplying by it
// are a no-op on untiered tables.
func baseVariables(in strategyInput) map[string]decimal.Decimal {
	multiplier := in.rates.TierMultiplier
	if multiplier.IsZero() {
		multiplier = decimal.NewFromInt(1)
	}
	return map[string]decimal.Decimal{
		VarSqft:         decimal.Zero,
		VarBaseRate:     decimal.Zero,
		VarMaterialCost: decimal.Zero,
		VarLaborCost:    decimal.Zero,
		VarLaborHours:   decimal.Zero,
		VarHourlyRate:   decimal.Zero,
		VarTier:         tierRank(in.tier),
		VarMultiplier:   multiplier,
		VarGallons:      decimal.Zero,
		VarUnitCount:    decimal.Zero,
	}
}

// resolveLaborCategory picks the labor category for the quote: the explicit
// request category when given, otherwise the rate table default. A missing
// category is a setup problem, never a silent zero rate.
func resolveLaborCategory(in strategyInput) (string, entities.LaborCategory, error) {
	name := in.labor.Category
	if name == "" {
		name = in.rates.DefaultLaborCategory
	}
	if name == "" {
		return "", entities.LaborCategory{}, &ConfigurationError{Reason: "no labor category selected and no default configured"}
	}
	cat, ok := in.rates.LaborCategories[name]
	if !ok {
		return "", entities.LaborCategory{}, &ConfigurationError{Reason: fmt.Sprintf("labor category %q not configured", name)}
	}
	return name, cat, nil
}

// totalSquareFeet sums area-measured surfaces.
func totalSquareFeet(surfaces []entities.SurfaceInput) decimal.Decimal {
	total := decimal.Zero
	for _, s := range surfaces {
		if s.Unit == entities.UnitSquareFeet {
			total = total.Add(s.Measurement)
		}
	}
	return total
}

// gallonsNeeded rounds raw gallon demand up to the next whole gallon:
// material cannot be purchased fractionally.
func gallonsNeeded(area, coverage decimal.Decimal, coats int, wasteFactor decimal.Decimal) (decimal.Decimal, error) {
	if coverage.Sign() <= 0 {
		return decimal.Zero, &ConfigurationError{Reason: "coverage rate must be positive"}
	}
	if area.IsZero() {
		return decimal.Zero, nil
	}
	coatCount := decimal.NewFromInt(int64(coats))
	if coatCount.Sign() <= 0 {
		coatCount = decimal.NewFromInt(1)
	}
	waste := wasteFactor
	if waste.Sign() <= 0 {
		waste = decimal.NewFromInt(1)
	}
	raw := area.Mul(coatCount).Mul(waste).Div(coverage)
	return raw.Ceil(), nil
}

// materialLines prices every product selection over the measured area. Each
// selection is treated as a full-coverage product (e.g. primer plus topcoat),
// so each is priced over the whole area.
func materialLines(in strategyInput, area decimal.Decimal) ([]entities.LineItem, decimal.Decimal, decimal.Decimal, error) {
	defaults := in.rates.MaterialDefaults
	var lines []entities.LineItem
	materialTotal := decimal.Zero
	gallonsTotal := decimal.Zero

	for _, sel := range in.products {
		rate, err := in.catalog.Resolve(sel)
		if err != nil {
			return nil, decimal.Zero, decimal.Zero, err
		}
		coverage := rate.CoverageSqFtPerGallon
		if coverage.IsZero() {
			coverage = defaults.CoverageSqFtPerGallon
		}
		gallons, err := gallonsNeeded(area, coverage, defaults.Coats, defaults.WasteFactor)
		if err != nil {
			return nil, decimal.Zero, decimal.Zero, err
		}
		cost := gallons.Mul(rate.PricePerGallon)
		lines = append(lines, entities.LineItem{
			Description:  fmt.Sprintf("Material: product %s (%s)", sel.ProductID, sel.Sheen),
			Quantity:     gallons,
			MaterialCost: cost,
			LaborCost:    decimal.Zero,
		})
		materialTotal = materialTotal.Add(cost)
		gallonsTotal = gallonsTotal.Add(gallons)
	}
	return lines, materialTotal, gallonsTotal, nil
}

// turnkeyStrategy prices area at an all-inclusive per-square-foot rate; there
// is no separate material line.
type turnkeyStrategy struct{}

func (turnkeyStrategy) schemeType() entities.SchemeType { return entities.SchemeSqftTurnkey }

func (turnkeyStrategy) requiredVariables() []string {
	return []string{VarSqft, VarBaseRate, VarLaborCost, VarTier, VarMultiplier}
}

func (turnkeyStrategy) compute(in strategyInput) (strategyResult, error) {
	vars := baseVariables(in)
	var lines []entities.LineItem
	total := decimal.Zero
	area := decimal.Zero
	firstRate := decimal.Zero

	for _, s := range in.surfaces {
		rate, ok := in.rates.TurnkeyRates[s.Category]
		if !ok {
			return strategyResult{}, &ConfigurationError{Reason: fmt.Sprintf("no turnkey rate configured for %s surfaces", s.Category)}
		}
		if firstRate.IsZero() {
			firstRate = rate
		}
		cost := s.Measurement.Mul(rate)
		lines = append(lines, entities.LineItem{
			Description: fmt.Sprintf("Turnkey %s (%s)", s.Type, s.Category),
			Quantity:    s.Measurement,
			LaborCost:   cost,
		})
		total = total.Add(cost)
		area = area.Add(s.Measurement)
	}

	vars[VarSqft] = area
	vars[VarBaseRate] = firstRate
	vars[VarLaborCost] = total
	return strategyResult{
		lineItems:        lines,
		materialSubtotal: decimal.Zero,
		laborSubtotal:    total,
		variables:        vars,
	}, nil
}

// laborPaintStrategy prices labor per square foot and material per gallon
// from the resolved catalog price and coverage.
type laborPaintStrategy struct{}

func (laborPaintStrategy) schemeType() entities.SchemeType { return entities.SchemeSqftLaborPaint }

func (laborPaintStrategy) requiredVariables() []string {
	return []string{VarSqft, VarBaseRate, VarMaterialCost, VarLaborCost, VarGallons, VarTier, VarMultiplier}
}

func (laborPaintStrategy) compute(in strategyInput) (strategyResult, error) {
	if len(in.products) == 0 {
		return strategyResult{}, &ValidationError{Field: "products", Reason: "sqft_labor_paint requires at least one product selection"}
	}
	catName, cat, err := resolveLaborCategory(in)
	if err != nil {
		return strategyResult{}, err
	}

	vars := baseVariables(in)
	var lines []entities.LineItem
	laborTotal := decimal.Zero
	area := totalSquareFeet(in.surfaces)

	for _, s := range in.surfaces {
		if s.Unit != entities.UnitSquareFeet {
			continue
		}
		cost := s.Measurement.Mul(cat.Rate)
		lines = append(lines, entities.LineItem{
			Description: fmt.Sprintf("Labor: %s %s (%s)", catName, s.Type, s.Category),
			Quantity:    s.Measurement,
			LaborCost:   cost,
		})
		laborTotal = laborTotal.Add(cost)
	}

	materialItems, materialTotal, gallons, err := materialLines(in, area)
	if err != nil {
		return strategyResult{}, err
	}
	lines = append(lines, materialItems...)

	vars[VarSqft] = area
	vars[VarBaseRate] = cat.Rate
	vars[VarMaterialCost] = materialTotal
	vars[VarLaborCost] = laborTotal
	vars[VarGallons] = gallons
	return strategyResult{
		lineItems:        lines,
		materialSubtotal: materialTotal,
		laborSubtotal:    laborTotal,
		variables:        vars,
	}, nil
}

// hourlyStrategy is straight time and materials: hours times the hourly rate
// with the material figure passed through untouched.
type hourlyStrategy struct{}

func (hourlyStrategy) schemeType() entities.SchemeType { return entities.SchemeHourlyTimeMaterials }

func (hourlyStrategy) requiredVariables() []string {
	return []string{VarLaborHours, VarHourlyRate, VarMaterialCost, VarLaborCost, VarTier, VarMultiplier}
}

func (hourlyStrategy) compute(in strategyInput) (strategyResult, error) {
	catName, cat, err := resolveLaborCategory(in)
	if err != nil {
		return strategyResult{}, err
	}

	laborCost := in.labor.Hours.Mul(cat.Rate)
	materialCost := in.labor.MaterialCost

	lines := []entities.LineItem{
		{
			Description: fmt.Sprintf("Labor: %s (%s hours)", catName, in.labor.Hours),
			Quantity:    in.labor.Hours,
			LaborCost:   laborCost,
		},
	}
	if materialCost.Sign() > 0 {
		lines = append(lines, entities.LineItem{
			Description:  "Materials (pass-through)",
			Quantity:     decimal.NewFromInt(1),
			MaterialCost: materialCost,
		})
	}

	vars := baseVariables(in)
	vars[VarLaborHours] = in.labor.Hours
	vars[VarHourlyRate] = cat.Rate
	vars[VarMaterialCost] = materialCost
	vars[VarLaborCost] = laborCost
	return strategyResult{
		lineItems:        lines,
		materialSubtotal: materialCost,
		laborSubtotal:    laborCost,
		variables:        vars,
	}, nil
}

// flatUnitStrategy prices counted units (doors, rooms, windows) at the
// configured flat price per unit type. Serves both unit_pricing and
// room_flat_rate.
type flatUnitStrategy struct {
	typ  entities.SchemeType
	noun string
}

func (s flatUnitStrategy) schemeType() entities.SchemeType { return s.typ }

func (flatUnitStrategy) requiredVariables() []string {
	return []string{VarUnitCount, VarLaborCost, VarTier, VarMultiplier}
}

func (s flatUnitStrategy) compute(in strategyInput) (strategyResult, error) {
	vars := baseVariables(in)
	var lines []entities.LineItem
	total := decimal.Zero
	count := decimal.Zero

	for _, surface := range in.surfaces {
		if surface.Unit != entities.UnitCount {
			continue
		}
		price, ok := in.rates.FlatUnitPrices[string(surface.Type)]
		if !ok {
			return strategyResult{}, &ConfigurationError{Reason: fmt.Sprintf("no flat %s price configured for %q", s.noun, surface.Type)}
		}
		cost := surface.Measurement.Mul(price)
		lines = append(lines, entities.LineItem{
			Description: fmt.Sprintf("Flat rate: %s x %s", surface.Measurement, surface.Type),
			Quantity:    surface.Measurement,
			LaborCost:   cost,
		})
		total = total.Add(cost)
		count = count.Add(surface.Measurement)
	}

	vars[VarUnitCount] = count
	vars[VarLaborCost] = total
	return strategyResult{
		lineItems:        lines,
		materialSubtotal: decimal.Zero,
		laborSubtotal:    total,
		variables:        vars,
	}, nil
}

// productionStrategy derives hours from per-surface production rates and crew
// size, then bills them at the resolved labor rate. Product selections, when
// present, add material lines on top.
type productionStrategy struct{}

func (productionStrategy) schemeType() entities.SchemeType { return entities.SchemeProductionBased }

func (productionStrategy) requiredVariables() []string {
	return []string{VarSqft, VarLaborHours, VarHourlyRate, VarLaborCost, VarMaterialCost, VarTier, VarMultiplier}
}

func (productionStrategy) compute(in strategyInput) (strategyResult, error) {
	catName, cat, err := resolveLaborCategory(in)
	if err != nil {
		return strategyResult{}, err
	}
	crewSize := in.rates.CrewSizeDefault
	if crewSize < 1 {
		return strategyResult{}, &ConfigurationError{Reason: "crew size must be at least 1"}
	}
	crew := decimal.NewFromInt(int64(crewSize))

	vars := baseVariables(in)
	var lines []entities.LineItem
	hoursTotal := decimal.Zero
	laborTotal := decimal.Zero

	for _, s := range in.surfaces {
		prodRate, ok := in.rates.ProductionRates[s.Type]
		if !ok {
			return strategyResult{}, &ConfigurationError{Reason: fmt.Sprintf("no production rate configured for %q", s.Type)}
		}
		if prodRate.Sign() <= 0 {
			return strategyResult{}, &ConfigurationError{Reason: fmt.Sprintf("production rate for %q must be positive", s.Type)}
		}
		hours := s.Measurement.DivRound(prodRate.Mul(crew), int32(decimal.DivisionPrecision))
		cost := hours.Mul(cat.Rate)
		lines = append(lines, entities.LineItem{
			Description: fmt.Sprintf("Production: %s (%s), crew of %d @ %s", s.Type, s.Category, crewSize, catName),
			Quantity:    s.Measurement,
			LaborCost:   cost,
		})
		hoursTotal = hoursTotal.Add(hours)
		laborTotal = laborTotal.Add(cost)
	}

	materialItems, materialTotal, gallons, err := materialLines(in, totalSquareFeet(in.surfaces))
	if err != nil {
		return strategyResult{}, err
	}
	lines = append(lines, materialItems...)

	vars[VarSqft] = totalSquareFeet(in.surfaces)
	vars[VarLaborHours] = hoursTotal
	vars[VarHourlyRate] = cat.Rate
	vars[VarLaborCost] = laborTotal
	vars[VarMaterialCost] = materialTotal
	vars[VarGallons] = gallons
	return strategyResult{
		lineItems:        lines,
		materialSubtotal: materialTotal,
		laborSubtotal:    laborTotal,
		variables:        vars,
	}, nil
}
