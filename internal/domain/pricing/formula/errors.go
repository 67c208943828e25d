package formula

import "fmt"

// SyntaxError reports a formula that is not well-formed. Pos is a zero-based
// byte offset into the source text.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("formula syntax error at offset %d: %s", e.Pos, e.Msg)
}

// UnknownVariableError reports a reference to a name outside the bound
// variable catalog. Unknown names never default to zero.
type UnknownVariableError struct {
	Name string
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("unknown variable %q", e.Name)
}

// UnknownFunctionError reports a call to a function outside the supported
// set (min, max, round).
type UnknownFunctionError struct {
	Name string
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown function %q", e.Name)
}

// ArityError reports a supported function called with the wrong number of
// arguments.
type ArityError struct {
	Name string
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("function %q called with %d argument(s)", e.Name, e.Got)
}

// DivisionByZeroError reports a division whose divisor evaluated to zero.
type DivisionByZeroError struct {
	Pos int
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero at offset %d", e.Pos)
}
