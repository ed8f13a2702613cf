package ast

import (
	"github.com/akashmaji946/scm-mix/prim"
	"github.com/akashmaji946/scm-mix/reader"
)

// buildPrimitive constructs the expression-tree variant for a
// primitive-operator name, enforcing the parser's exact-arity check
// for fixed-arity variants; variadic
// variants accept any operand count here and defer their own
// minimum/identity rules to evaluation.
func (p *Parser) buildPrimitive(whole *reader.List, entry prim.Entry, tail []reader.Syntax) (Expr, error) {
	if entry.Arity.Fixed && len(tail) != entry.Arity.N {
		return nil, errAt(whole, "%s requires exactly %d operand(s), got %d", entry.Name, entry.Arity.N, len(tail))
	}

	switch entry.Name {
	case "exit":
		return &ExitLit{}, nil

	case "car":
		x, err := p.Parse(tail[0])
		if err != nil {
			return nil, err
		}
		return &Car{X: x}, nil
	case "cdr":
		x, err := p.Parse(tail[0])
		if err != nil {
			return nil, err
		}
		return &Cdr{X: x}, nil
	case "not":
		x, err := p.Parse(tail[0])
		if err != nil {
			return nil, err
		}
		return &Not{X: x}, nil
	case "boolean?":
		x, err := p.Parse(tail[0])
		if err != nil {
			return nil, err
		}
		return &IsBoolean{X: x}, nil
	case "fixnum?":
		x, err := p.Parse(tail[0])
		if err != nil {
			return nil, err
		}
		return &IsFixnum{X: x}, nil
	case "null?":
		x, err := p.Parse(tail[0])
		if err != nil {
			return nil, err
		}
		return &IsNull{X: x}, nil
	case "pair?":
		x, err := p.Parse(tail[0])
		if err != nil {
			return nil, err
		}
		return &IsPair{X: x}, nil
	case "procedure?":
		x, err := p.Parse(tail[0])
		if err != nil {
			return nil, err
		}
		return &IsProcedure{X: x}, nil
	case "symbol?":
		x, err := p.Parse(tail[0])
		if err != nil {
			return nil, err
		}
		return &IsSymbol{X: x}, nil
	case "string?":
		x, err := p.Parse(tail[0])
		if err != nil {
			return nil, err
		}
		return &IsString{X: x}, nil
	case "list?":
		x, err := p.Parse(tail[0])
		if err != nil {
			return nil, err
		}
		return &IsList{X: x}, nil
	case "display":
		x, err := p.Parse(tail[0])
		if err != nil {
			return nil, err
		}
		return &Display{X: x}, nil

	case "modulo":
		a, b, err := p.parsePair(tail)
		if err != nil {
			return nil, err
		}
		return &Modulo{A: a, B: b}, nil
	case "expt":
		a, b, err := p.parsePair(tail)
		if err != nil {
			return nil, err
		}
		return &Expt{A: a, B: b}, nil
	case "cons":
		a, b, err := p.parsePair(tail)
		if err != nil {
			return nil, err
		}
		return &Cons{A: a, B: b}, nil
	case "eq?":
		a, b, err := p.parsePair(tail)
		if err != nil {
			return nil, err
		}
		return &IsEq{A: a, B: b}, nil
	case "set-car!":
		a, b, err := p.parsePair(tail)
		if err != nil {
			return nil, err
		}
		return &SetCar{A: a, B: b}, nil
	case "set-cdr!":
		a, b, err := p.parsePair(tail)
		if err != nil {
			return nil, err
		}
		return &SetCdr{A: a, B: b}, nil

	case "+":
		xs, err := p.parseAll(tail)
		if err != nil {
			return nil, err
		}
		return &Plus{Xs: xs}, nil
	case "-":
		xs, err := p.parseAll(tail)
		if err != nil {
			return nil, err
		}
		return &Minus{Xs: xs}, nil
	case "*":
		xs, err := p.parseAll(tail)
		if err != nil {
			return nil, err
		}
		return &Mul{Xs: xs}, nil
	case "/":
		xs, err := p.parseAll(tail)
		if err != nil {
			return nil, err
		}
		return &Div{Xs: xs}, nil
	case "<":
		xs, err := p.parseAll(tail)
		if err != nil {
			return nil, err
		}
		return &Less{Xs: xs}, nil
	case "<=":
		xs, err := p.parseAll(tail)
		if err != nil {
			return nil, err
		}
		return &LessEq{Xs: xs}, nil
	case "=":
		xs, err := p.parseAll(tail)
		if err != nil {
			return nil, err
		}
		return &Equal{Xs: xs}, nil
	case ">=":
		xs, err := p.parseAll(tail)
		if err != nil {
			return nil, err
		}
		return &GreaterEq{Xs: xs}, nil
	case ">":
		xs, err := p.parseAll(tail)
		if err != nil {
			return nil, err
		}
		return &Greater{Xs: xs}, nil
	case "list":
		xs, err := p.parseAll(tail)
		if err != nil {
			return nil, err
		}
		return &ListCtor{Xs: xs}, nil
	case "void":
		xs, err := p.parseAll(tail)
		if err != nil {
			return nil, err
		}
		return &MakeVoid{Xs: xs}, nil

	default:
		return nil, errAt(whole, "unknown primitive %q", entry.Name)
	}
}

func (p *Parser) parsePair(tail []reader.Syntax) (Expr, Expr, error) {
	a, err := p.Parse(tail[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := p.Parse(tail[1])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
