package formula

import "github.com/shopspring/decimal"

// Eval computes the formula over the bound variable map. Every variable the
// formula references must be present; lookups never fall back to zero.
//
// Returned errors are *UnknownVariableError, *UnknownFunctionError,
// *ArityError or *DivisionByZeroError.
func (f *Formula) Eval(vars map[string]decimal.Decimal) (decimal.Decimal, error) {
	return f.root.eval(vars)
}

func (n *literalNode) eval(map[string]decimal.Decimal) (decimal.Decimal, error) {
	return n.value, nil
}

func (n *literalNode) collectVars(map[string]struct{}) {}

func (n *variableNode) eval(vars map[string]decimal.Decimal) (decimal.Decimal, error) {
	value, ok := vars[n.name]
	if !ok {
		return decimal.Zero, &UnknownVariableError{Name: n.name}
	}
	return value, nil
}

func (n *variableNode) collectVars(seen map[string]struct{}) {
	seen[n.name] = struct{}{}
}

func (n *unaryNode) eval(vars map[string]decimal.Decimal) (decimal.Decimal, error) {
	value, err := n.operand.eval(vars)
	if err != nil {
		return decimal.Zero, err
	}
	return value.Neg(), nil
}

func (n *unaryNode) collectVars(seen map[string]struct{}) {
	n.operand.collectVars(seen)
}

func (n *binaryNode) eval(vars map[string]decimal.Decimal) (decimal.Decimal, error) {
	left, err := n.left.eval(vars)
	if err != nil {
		return decimal.Zero, err
	}
	right, err := n.right.eval(vars)
	if err != nil {
		return decimal.Zero, err
	}
	switch n.op {
	case tokPlus:
		return left.Add(right), nil
	case tokMinus:
		return left.Sub(right), nil
	case tokStar:
		return left.Mul(right), nil
	default: // tokSlash
		if right.IsZero() {
			return decimal.Zero, &DivisionByZeroError{Pos: n.pos}
		}
		return left.DivRound(right, int32(decimal.DivisionPrecision)), nil
	}
}

func (n *binaryNode) collectVars(seen map[string]struct{}) {
	n.left.collectVars(seen)
	n.right.collectVars(seen)
}

func (n *callNode) eval(vars map[string]decimal.Decimal) (decimal.Decimal, error) {
	args := make([]decimal.Decimal, len(n.args))
	for i, argNode := range n.args {
		value, err := argNode.eval(vars)
		if err != nil {
			return decimal.Zero, err
		}
		args[i] = value
	}

	switch n.fn {
	case "min":
		if len(args) < 1 {
			return decimal.Zero, &ArityError{Name: n.fn, Got: len(args)}
		}
		result := args[0]
		for _, v := range args[1:] {
			if v.LessThan(result) {
				result = v
			}
		}
		return result, nil

	case "max":
		if len(args) < 1 {
			return decimal.Zero, &ArityError{Name: n.fn, Got: len(args)}
		}
		result := args[0]
		for _, v := range args[1:] {
			if v.GreaterThan(result) {
				result = v
			}
		}
		return result, nil

	case "round":
		switch len(args) {
		case 1:
			return args[0].Round(0), nil
		case 2:
			places := args[1].IntPart()
			if places < 0 || places > 8 || !args[1].Equal(decimal.NewFromInt(places)) {
				return decimal.Zero, &ArityError{Name: n.fn, Got: len(args)}
			}
			return args[0].Round(int32(places)), nil
		default:
			return decimal.Zero, &ArityError{Name: n.fn, Got: len(args)}
		}

	default:
		return decimal.Zero, &UnknownFunctionError{Name: n.fn}
	}
}

func (n *callNode) collectVars(seen map[string]struct{}) {
	for _, arg := range n.args {
		arg.collectVars(seen)
	}
}
