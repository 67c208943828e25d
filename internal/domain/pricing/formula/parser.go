// Package formula implements the bounded arithmetic expression language for
// contractor-authored pricing formulas.
//
// The grammar is deliberately small: decimal literals, named variables,
// + - * /, unary minus, parentheses and the functions min, max and round.
// There are no loops, no recursion and no external calls, so evaluation cost
// is linear in the formula length. Formulas are parsed to a tagged AST once
// and rejected before execution when malformed; they are never handed to a
// general-purpose interpreter.
package formula

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// MaxSourceLength bounds accepted formula text.
	MaxSourceLength = 1024
	// maxDepth bounds expression nesting so parsing and evaluation stay
	// stack-safe on hostile input.
	maxDepth = 32
	// maxArgs bounds function argument lists.
	maxArgs = 8
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokComma
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// node is a tagged AST node. The closed set of implementations is literal,
// variable, unary, binary and call.
type node interface {
	eval(vars map[string]decimal.Decimal) (decimal.Decimal, error)
	collectVars(seen map[string]struct{})
}

type literalNode struct {
	value decimal.Decimal
}

type variableNode struct {
	name string
}

type unaryNode struct {
	operand node
}

type binaryNode struct {
	op    tokenKind
	pos   int
	left  node
	right node
}

type callNode struct {
	fn   string
	pos  int
	args []node
}

// Formula is a parsed, immutable expression ready for repeated evaluation.
type Formula struct {
	src  string
	root node
}

// Parse validates and compiles src. A non-nil error is always a *SyntaxError.
func Parse(src string) (*Formula, error) {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" {
		return nil, &SyntaxError{Pos: 0, Msg: "empty formula"}
	}
	if len(src) > MaxSourceLength {
		return nil, &SyntaxError{Pos: MaxSourceLength, Msg: "formula exceeds maximum length"}
	}

	toks, err := lex(src)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: toks}
	root, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, &SyntaxError{Pos: tok.pos, Msg: "unexpected trailing input"}
	}
	return &Formula{src: src, root: root}, nil
}

// String returns the original source text.
func (f *Formula) String() string {
	return f.src
}

// Variables lists every variable name the formula references, sorted.
func (f *Formula) Variables() []string {
	seen := map[string]struct{}{}
	f.root.collectVars(seen)
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '+':
			toks = append(toks, token{tokPlus, "+", i})
			i++
		case c == '-':
			toks = append(toks, token{tokMinus, "-", i})
			i++
		case c == '*':
			toks = append(toks, token{tokStar, "*", i})
			i++
		case c == '/':
			toks = append(toks, token{tokSlash, "/", i})
			i++
		case c == '(':
			toks = append(toks, token{tokLParen, "(", i})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, ")", i})
			i++
		case c == ',':
			toks = append(toks, token{tokComma, ",", i})
			i++
		case c >= '0' && c <= '9':
			start := i
			sawDot := false
			for i < len(src) && (isDigit(src[i]) || (src[i] == '.' && !sawDot)) {
				if src[i] == '.' {
					sawDot = true
				}
				i++
			}
			text := src[start:i]
			if strings.HasSuffix(text, ".") {
				return nil, &SyntaxError{Pos: start, Msg: "malformed number " + text}
			}
			toks = append(toks, token{tokNumber, text, start})
		case isIdentStart(c):
			start := i
			for i < len(src) && isIdentPart(src[i]) {
				i++
			}
			toks = append(toks, token{tokIdent, src[start:i], start})
		default:
			return nil, &SyntaxError{Pos: i, Msg: "unexpected character " + string(c)}
		}
	}
	toks = append(toks, token{tokEOF, "", len(src)})
	return toks, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

type parser struct {
	tokens []token
	next   int
}

func (p *parser) peek() token {
	return p.tokens[p.next]
}

func (p *parser) advance() token {
	tok := p.tokens[p.next]
	if tok.kind != tokEOF {
		p.next++
	}
	return tok
}

// parseExpr handles + and - at the lowest precedence level.
func (p *parser) parseExpr(depth int) (node, error) {
	if depth > maxDepth {
		return nil, &SyntaxError{Pos: p.peek().pos, Msg: "formula nested too deeply"}
	}
	left, err := p.parseTerm(depth + 1)
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokPlus && tok.kind != tokMinus {
			return left, nil
		}
		p.advance()
		right, err := p.parseTerm(depth + 1)
		if err != nil {
			return nil, err
		}
		left = &binaryNode{op: tok.kind, pos: tok.pos, left: left, right: right}
	}
}

// parseTerm handles * and /.
func (p *parser) parseTerm(depth int) (node, error) {
	if depth > maxDepth {
		return nil, &SyntaxError{Pos: p.peek().pos, Msg: "formula nested too deeply"}
	}
	left, err := p.parseFactor(depth + 1)
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokStar && tok.kind != tokSlash {
			return left, nil
		}
		p.advance()
		right, err := p.parseFactor(depth + 1)
		if err != nil {
			return nil, err
		}
		left = &binaryNode{op: tok.kind, pos: tok.pos, left: left, right: right}
	}
}

// parseFactor handles unary minus and primaries.
func (p *parser) parseFactor(depth int) (node, error) {
	if depth > maxDepth {
		return nil, &SyntaxError{Pos: p.peek().pos, Msg: "formula nested too deeply"}
	}
	if p.peek().kind == tokMinus {
		p.advance()
		operand, err := p.parseFactor(depth + 1)
		if err != nil {
			return nil, err
		}
		return &unaryNode{operand: operand}, nil
	}
	return p.parsePrimary(depth + 1)
}

func (p *parser) parsePrimary(depth int) (node, error) {
	tok := p.advance()
	switch tok.kind {
	case tokNumber:
		value, err := decimal.NewFromString(tok.text)
		if err != nil {
			return nil, &SyntaxError{Pos: tok.pos, Msg: "malformed number " + tok.text}
		}
		return &literalNode{value: value}, nil

	case tokIdent:
		if p.peek().kind != tokLParen {
			return &variableNode{name: tok.text}, nil
		}
		p.advance() // consume '('
		var args []node
		if p.peek().kind != tokRParen {
			for {
				if len(args) >= maxArgs {
					return nil, &SyntaxError{Pos: p.peek().pos, Msg: "too many function arguments"}
				}
				arg, err := p.parseExpr(depth + 1)
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if p.peek().kind != tokComma {
					break
				}
				p.advance()
			}
		}
		if closing := p.advance(); closing.kind != tokRParen {
			return nil, &SyntaxError{Pos: closing.pos, Msg: "expected closing parenthesis"}
		}
		return &callNode{fn: tok.text, pos: tok.pos, args: args}, nil

	case tokLParen:
		inner, err := p.parseExpr(depth + 1)
		if err != nil {
			return nil, err
		}
		if closing := p.advance(); closing.kind != tokRParen {
			return nil, &SyntaxError{Pos: closing.pos, Msg: "expected closing parenthesis"}
		}
		return inner, nil

	case tokEOF:
		return nil, &SyntaxError{Pos: tok.pos, Msg: "unexpected end of formula"}

	default:
		return nil, &SyntaxError{Pos: tok.pos, Msg: "unexpected token " + tok.text}
	}
}
