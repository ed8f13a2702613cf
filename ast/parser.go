package ast

import (
	"fmt"

	"github.com/akashmaji946/scm-mix/prim"
	"github.com/akashmaji946/scm-mix/reader"
	"github.com/akashmaji946/scm-mix/value"
)

// ParseError reports a malformed syntactic form. It shares the RuntimeError channel
// with evaluation failures: the drivers in package repl report it
// exactly as they report an eval.RuntimeError.
type ParseError struct {
	Msg string
	Pos reader.Pos
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[%d:%d] %s", e.Pos.Line, e.Pos.Col, e.Msg)
}

func errAt(form reader.Syntax, format string, args ...interface{}) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Pos: form.Position()}
}

// Parser turns reader.Syntax into Expr. It holds a read-only reference
// to the environment as it stands at parse time, used only to detect
// shadowing of reserved/primitive names;
// REPL/file drivers must refresh Env after every top-level define
// extends the global chain (see package repl).
type Parser struct {
	Env *value.Env
}

// New creates a Parser observing env for shadow checks.
func New(env *value.Env) *Parser {
	return &Parser{Env: env}
}

// Parse transforms one syntax tree into an expression tree.
func (p *Parser) Parse(form reader.Syntax) (Expr, error) {
	switch n := form.(type) {
	case *reader.Integer:
		return &Fixnum{Val: n.Val}, nil
	case *reader.Rational:
		return &RationalLit{Num: n.Num, Den: n.Den}, nil
	case *reader.String:
		return &StringLit{Val: n.Val}, nil
	case *reader.Boolean:
		if n.Val {
			return &True{}, nil
		}
		return &False{}, nil
	case *reader.Symbol:
		return p.parseSymbolAtom(n)
	case *reader.List:
		return p.parseList(n)
	default:
		return nil, errAt(form, "unrecognized syntax node")
	}
}

// parseSymbolAtom handles a bare symbol in operand/atom position: a
// reference to a variable. Shadowing rules do not apply to atoms, only
// to list heads — only a list head can name a reserved form or
// primitive to begin with.
func (p *Parser) parseSymbolAtom(n *reader.Symbol) (Expr, error) {
	return &Var{Name: n.Name}, nil
}

func (p *Parser) parseList(n *reader.List) (Expr, error) {
	// Rule 1: empty list -> Quote(empty-list-syntax).
	if len(n.Elems) == 0 {
		return &Quote{Syntax: n}, nil
	}

	head := n.Elems[0]
	tail := n.Elems[1:]

	sym, isSymbol := head.(*reader.Symbol)
	if !isSymbol {
		// Rule 2: head is not a symbol.
		ratorExpr, err := p.Parse(head)
		if err != nil {
			return nil, err
		}
		randExprs, err := p.parseAll(tail)
		if err != nil {
			return nil, err
		}
		return &Apply{Rator: ratorExpr, Rands: randExprs}, nil
	}

	op := sym.Name

	// Rule 3a: a current binding shadows reserved/primitive names.
	if _, bound := value.Find(op, p.Env); bound {
		randExprs, err := p.parseAll(tail)
		if err != nil {
			return nil, err
		}
		return &Apply{Rator: &Var{Name: op}, Rands: randExprs}, nil
	}

	// Rule 3b: reserved forms.
	if build, ok := reservedForms[op]; ok {
		return build(p, n, tail)
	}

	// Rule 3c: primitive operators.
	if entry, ok := prim.Lookup(op); ok {
		return p.buildPrimitive(n, entry, tail)
	}

	// Rule 3d: free application.
	randExprs, err := p.parseAll(tail)
	if err != nil {
		return nil, err
	}
	return &Apply{Rator: &Var{Name: op}, Rands: randExprs}, nil
}

func (p *Parser) parseAll(forms []reader.Syntax) ([]Expr, error) {
	exprs := make([]Expr, 0, len(forms))
	for _, f := range forms {
		e, err := p.Parse(f)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

// symbolName extracts a plain identifier from a syntax node, failing
// the parse if it is anything else (used where a reserved form
// requires a symbol, e.g. define/set!'s target).
func symbolName(form reader.Syntax) (string, bool) {
	sym, ok := form.(*reader.Symbol)
	if !ok {
		return "", false
	}
	return sym.Name, true
}
