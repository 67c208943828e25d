package pricing

import (
	"fmt"

	"brushworks/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// aggregate applies the fixed order of quote stages to a strategy result:
//
//	materialSubtotal, laborSubtotal
//	markup   on (material + labor)
//	overhead on (material + labor + markup)
//	profit   on the running subtotal
//	tax      on the configured basis
//	deposit  on the total
//
// Rounding to two decimal places happens once after each additive stage,
// never on intermediate per-unit rates, so rounding error cannot compound
// across many small line items.
func aggregate(res strategyResult, rates entities.RateTable) (entities.QuoteResult, error) {
	material := res.materialSubtotal.Round(2)
	labor := res.laborSubtotal.Round(2)
	if material.Sign() < 0 {
		return entities.QuoteResult{}, &ComputationError{Reason: fmt.Sprintf("negative material subtotal %s", material)}
	}
	if labor.Sign() < 0 {
		return entities.QuoteResult{}, &ComputationError{Reason: fmt.Sprintf("negative labor subtotal %s", labor)}
	}

	base := material.Add(labor)
	markup := base.Mul(rates.MarkupPercent).Div(oneHundred).Round(2)
	overhead := base.Add(markup).Mul(rates.OverheadPercent).Div(oneHundred).Round(2)
	running := base.Add(markup).Add(overhead)
	profit := running.Mul(rates.NetProfitPercent).Div(oneHundred).Round(2)
	running = running.Add(profit)

	taxBase, err := taxBaseFor(rates.TaxBasis, base, markup, running)
	if err != nil {
		return entities.QuoteResult{}, err
	}
	tax := taxBase.Mul(rates.TaxRatePercent).Div(oneHundred).Round(2)

	total := running.Add(tax)
	deposit := total.Mul(rates.DepositPercent).Div(oneHundred).Round(2)

	if total.Sign() < 0 {
		return entities.QuoteResult{}, &ComputationError{Reason: fmt.Sprintf("negative total %s", total)}
	}

	return entities.QuoteResult{
		RateTableVersion: rates.Version,
		LineItems:        res.lineItems,
		MaterialSubtotal: material,
		LaborSubtotal:    labor,
		MarkupAmount:     markup,
		OverheadAmount:   overhead,
		ProfitAmount:     profit,
		TaxAmount:        tax,
		DepositAmount:    deposit,
		Total:            total,
	}, nil
}

// taxBaseFor resolves the configured tax basis. The empty value defaults to
// post_profit (tax applied to the full running subtotal); the choice is
// deliberately explicit configuration, not an inferred behavior.
func taxBaseFor(basis entities.TaxBasis, base, markup, running decimal.Decimal) (decimal.Decimal, error) {
	switch basis {
	case entities.TaxBasisPreMarkup:
		return base, nil
	case entities.TaxBasisPostMarkup:
		return base.Add(markup), nil
	case entities.TaxBasisPostProfit, "":
		return running, nil
	default:
		return decimal.Zero, &ConfigurationError{Reason: fmt.Sprintf("unknown tax basis %q", basis)}
	}
}
