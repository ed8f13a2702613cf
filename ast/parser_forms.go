package ast

import "github.com/akashmaji946/scm-mix/reader"
import "github.com/akashmaji946/scm-mix/value"

// formBuilder constructs a reserved-form Expr from its whole List
// syntax node and its tail (operands after the head symbol).
type formBuilder func(p *Parser, whole *reader.List, tail []reader.Syntax) (Expr, error)

// reservedForms is the set of reserved special forms recognized in
// head position before any primitive or user binding is considered.
// It is filled in init because the builders reach it again through
// Parse, which a package-level initializer cannot refer to.
var reservedForms map[string]formBuilder

func init() {
	reservedForms = map[string]formBuilder{
		"if":      buildIf,
		"begin":   buildBegin,
		"quote":   buildQuote,
		"define":  buildDefine,
		"set!":    buildSet,
		"lambda":  buildLambda,
		"let":     buildLet,
		"letrec":  buildLetrec,
		"cond":    buildCond,
		"and":     buildAnd,
		"or":      buildOr,
	}
}

func buildIf(p *Parser, whole *reader.List, tail []reader.Syntax) (Expr, error) {
	if len(tail) != 3 {
		return nil, errAt(whole, "if requires exactly 3 operands (test then else), got %d", len(tail))
	}
	cond, err := p.Parse(tail[0])
	if err != nil {
		return nil, err
	}
	then, err := p.Parse(tail[1])
	if err != nil {
		return nil, err
	}
	els, err := p.Parse(tail[2])
	if err != nil {
		return nil, err
	}
	return &If{Cond: cond, Then: then, Else: els}, nil
}

func buildBegin(p *Parser, whole *reader.List, tail []reader.Syntax) (Expr, error) {
	exprs, err := p.parseAll(tail)
	if err != nil {
		return nil, err
	}
	return &Begin{Exprs: exprs}, nil
}

func buildQuote(p *Parser, whole *reader.List, tail []reader.Syntax) (Expr, error) {
	if len(tail) != 1 {
		return nil, errAt(whole, "quote requires exactly 1 operand, got %d", len(tail))
	}
	return &Quote{Syntax: tail[0]}, nil
}

func buildAnd(p *Parser, whole *reader.List, tail []reader.Syntax) (Expr, error) {
	exprs, err := p.parseAll(tail)
	if err != nil {
		return nil, err
	}
	return &And{Exprs: exprs}, nil
}

func buildOr(p *Parser, whole *reader.List, tail []reader.Syntax) (Expr, error) {
	exprs, err := p.parseAll(tail)
	if err != nil {
		return nil, err
	}
	return &Or{Exprs: exprs}, nil
}

// buildDefine handles both shapes of define: (define name expr) and
// the function-sugar (define (name p1 ... pN) body...), which desugars
// to (define name (lambda (p1 ... pN) body...)).
func buildDefine(p *Parser, whole *reader.List, tail []reader.Syntax) (Expr, error) {
	if len(tail) < 2 {
		return nil, errAt(whole, "define requires a name/target and at least one expression")
	}

	if name, ok := symbolName(tail[0]); ok {
		if len(tail) != 2 {
			return nil, errAt(whole, "define requires exactly one value expression, got %d", len(tail)-1)
		}
		expr, err := p.Parse(tail[1])
		if err != nil {
			return nil, err
		}
		return &Define{Name: name, Expr: expr}, nil
	}

	sig, ok := tail[0].(*reader.List)
	if !ok || len(sig.Elems) == 0 {
		return nil, errAt(whole, "define target must be a symbol or a (name params...) signature")
	}
	name, ok := symbolName(sig.Elems[0])
	if !ok {
		return nil, errAt(sig, "function name in define signature must be a symbol")
	}
	lambdaExpr, err := p.buildLambdaFrom(whole, sig.Elems[1:], tail[1:])
	if err != nil {
		return nil, err
	}
	return &Define{Name: name, Expr: lambdaExpr}, nil
}

func buildSet(p *Parser, whole *reader.List, tail []reader.Syntax) (Expr, error) {
	if len(tail) != 2 {
		return nil, errAt(whole, "set! requires exactly a target symbol and a value expression")
	}
	name, ok := symbolName(tail[0])
	if !ok {
		return nil, errAt(whole, "set! target must be a symbol")
	}
	expr, err := p.Parse(tail[1])
	if err != nil {
		return nil, err
	}
	return &Set{Name: name, Expr: expr}, nil
}

func buildLambda(p *Parser, whole *reader.List, tail []reader.Syntax) (Expr, error) {
	if len(tail) < 1 {
		return nil, errAt(whole, "lambda requires a parameter list")
	}
	paramList, ok := tail[0].(*reader.List)
	if !ok {
		return nil, errAt(whole, "lambda parameter list must be a list of symbols")
	}
	return p.buildLambdaFrom(whole, paramList.Elems, tail[1:])
}

// buildLambdaFrom builds a Lambda from a raw parameter-symbol list and
// a body operand list, shared by the lambda form and define's
// function-sugar desugaring. A trailing "..." parameter marks the
// procedure variadic.
func (p *Parser) buildLambdaFrom(whole *reader.List, paramSyntax []reader.Syntax, bodySyntax []reader.Syntax) (Expr, error) {
	if len(bodySyntax) < 1 {
		return nil, errAt(whole, "lambda requires at least one body expression")
	}

	params := make([]string, 0, len(paramSyntax))
	variadic := false
	for i, ps := range paramSyntax {
		name, ok := symbolName(ps)
		if !ok {
			return nil, errAt(whole, "lambda parameters must be symbols")
		}
		if name == "..." {
			if i != len(paramSyntax)-1 || len(params) == 0 {
				return nil, errAt(whole, "'...' must directly follow the last fixed parameter")
			}
			variadic = true
			continue
		}
		params = append(params, name)
	}

	bodyEnv := p.Env
	for _, name := range params {
		bodyEnv = value.Extend(name, value.TheVoid, bodyEnv)
	}
	bodyParser := &Parser{Env: bodyEnv}

	body, err := bodyParser.parseBodySequence(bodySyntax)
	if err != nil {
		return nil, err
	}
	return &Lambda{Params: params, Variadic: variadic, Body: body}, nil
}

// parseBodySequence parses a sequence of body operands into a single
// Expr: the operand itself if there is exactly one, otherwise a Begin
// of all of them.
func (p *Parser) parseBodySequence(forms []reader.Syntax) (Expr, error) {
	if len(forms) == 1 {
		return p.Parse(forms[0])
	}
	exprs, err := p.parseAll(forms)
	if err != nil {
		return nil, err
	}
	return &Begin{Exprs: exprs}, nil
}

func buildLet(p *Parser, whole *reader.List, tail []reader.Syntax) (Expr, error) {
	if len(tail) < 2 {
		return nil, errAt(whole, "let requires a binding list and a body")
	}
	bindingSyntax, ok := tail[0].(*reader.List)
	if !ok {
		return nil, errAt(whole, "let bindings must be a list")
	}

	bindings := make([]Binding, 0, len(bindingSyntax.Elems))
	names := make([]string, 0, len(bindingSyntax.Elems))
	for _, bs := range bindingSyntax.Elems {
		name, expr, err := parseBindingPair(p, bs)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, Binding{Name: name, Expr: expr})
		names = append(names, name)
	}

	bodyEnv := p.Env
	for _, name := range names {
		bodyEnv = value.Extend(name, value.TheVoid, bodyEnv)
	}
	bodyParser := &Parser{Env: bodyEnv}
	body, err := bodyParser.parseBodySequence(tail[1:])
	if err != nil {
		return nil, err
	}
	return &Let{Bindings: bindings, Body: body}, nil
}

func buildLetrec(p *Parser, whole *reader.List, tail []reader.Syntax) (Expr, error) {
	if len(tail) < 2 {
		return nil, errAt(whole, "letrec requires a binding list and a body")
	}
	bindingSyntax, ok := tail[0].(*reader.List)
	if !ok {
		return nil, errAt(whole, "letrec bindings must be a list")
	}

	names := make([]string, 0, len(bindingSyntax.Elems))
	for _, bs := range bindingSyntax.Elems {
		pair, ok := bs.(*reader.List)
		if !ok || len(pair.Elems) != 2 {
			return nil, errAt(whole, "letrec binding must be a (name expr) pair")
		}
		name, ok := symbolName(pair.Elems[0])
		if !ok {
			return nil, errAt(whole, "letrec binding name must be a symbol")
		}
		names = append(names, name)
	}

	// letrec bindings recursively see every name in the group, both
	// while parsing each right-hand side and while parsing the body.
	recEnv := p.Env
	for _, name := range names {
		recEnv = value.Extend(name, value.TheVoid, recEnv)
	}
	recParser := &Parser{Env: recEnv}

	bindings := make([]Binding, 0, len(bindingSyntax.Elems))
	for i, bs := range bindingSyntax.Elems {
		pair := bs.(*reader.List)
		expr, err := recParser.Parse(pair.Elems[1])
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, Binding{Name: names[i], Expr: expr})
	}

	body, err := recParser.parseBodySequence(tail[1:])
	if err != nil {
		return nil, err
	}
	return &Letrec{Bindings: bindings, Body: body}, nil
}

func parseBindingPair(p *Parser, form reader.Syntax) (string, Expr, error) {
	pair, ok := form.(*reader.List)
	if !ok || len(pair.Elems) != 2 {
		return "", nil, errAt(form, "binding must be a (name expr) pair")
	}
	name, ok := symbolName(pair.Elems[0])
	if !ok {
		return "", nil, errAt(form, "binding name must be a symbol")
	}
	expr, err := p.Parse(pair.Elems[1])
	if err != nil {
		return "", nil, err
	}
	return name, expr, nil
}

func buildCond(p *Parser, whole *reader.List, tail []reader.Syntax) (Expr, error) {
	clauses := make([]CondClause, 0, len(tail))
	seenElse := false
	for i, cs := range tail {
		clauseList, ok := cs.(*reader.List)
		if !ok || len(clauseList.Elems) == 0 {
			return nil, errAt(whole, "cond clause must be a non-empty list")
		}
		if seenElse {
			return nil, errAt(whole, "'else' clause must be the last cond clause")
		}

		isElse := false
		if sym, ok := clauseList.Elems[0].(*reader.Symbol); ok && sym.Name == "else" {
			isElse = true
			seenElse = true
			if i != len(tail)-1 {
				return nil, errAt(whole, "'else' clause must be the last cond clause")
			}
		}

		var test Expr
		if !isElse {
			var err error
			test, err = p.Parse(clauseList.Elems[0])
			if err != nil {
				return nil, err
			}
		}
		body, err := p.parseAll(clauseList.Elems[1:])
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, CondClause{Test: test, Else: isElse, Body: body})
	}
	return &Cond{Clauses: clauses}, nil
}
