package pricing

import "fmt"

// ValidationError reports bad quote input (missing field, negative
// measurement, sheen outside the product's allowed set). It is raised before
// any computation begins.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// ConfigurationError reports a tenant setup problem (unknown scheme type,
// missing labor category or rate) as distinct from bad caller input.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// FormulaError wraps a formula evaluation failure with the offending scheme
// and formula text so the problem can be localized for the formula author.
type FormulaError struct {
	SchemeID string
	Formula  string
	Err      error
}

func (e *FormulaError) Error() string {
	return fmt.Sprintf("formula error in scheme %s (%q): %v", e.SchemeID, e.Formula, e.Err)
}

func (e *FormulaError) Unwrap() error {
	return e.Err
}

// ComputationError reports an internal invariant violation, e.g. a negative
// computed cost. It is bug-class: results are never clamped to hide it.
type ComputationError struct {
	Reason string
}

func (e *ComputationError) Error() string {
	return "computation error: " + e.Reason
}

// UnknownProductError reports a product selection naming a product that is
// not in the catalog snapshot.
type UnknownProductError struct {
	ProductID string
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("unknown product %q", e.ProductID)
}

// InvalidSheenError reports a sheen outside the product's declared sheen set.
type InvalidSheenError struct {
	ProductID string
	Sheen     string
}

func (e *InvalidSheenError) Error() string {
	return fmt.Sprintf("sheen %q is not available for product %q", e.Sheen, e.ProductID)
}
