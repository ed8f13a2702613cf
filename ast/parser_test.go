package ast

import (
	"testing"

	"github.com/akashmaji946/scm-mix/reader"
	"github.com/akashmaji946/scm-mix/value"
	"github.com/stretchr/testify/assert"
)

func mustRead(t *testing.T, src string) reader.Syntax {
	t.Helper()
	r := reader.NewFromString(src)
	form, err := r.Next()
	if err != nil {
		t.Fatalf("reader error on %q: %v", src, err)
	}
	return form
}

func parseSrc(t *testing.T, env *value.Env, src string) (Expr, error) {
	t.Helper()
	form := mustRead(t, src)
	return New(env).Parse(form)
}

func TestParse_Literals(t *testing.T) {
	e, err := parseSrc(t, nil, "42")
	assert.NoError(t, err)
	assert.Equal(t, &Fixnum{Val: 42}, e)

	e, err = parseSrc(t, nil, "1/2")
	assert.NoError(t, err)
	assert.Equal(t, &RationalLit{Num: 1, Den: 2}, e)

	e, err = parseSrc(t, nil, `"hi"`)
	assert.NoError(t, err)
	assert.Equal(t, &StringLit{Val: "hi"}, e)

	e, err = parseSrc(t, nil, "#t")
	assert.NoError(t, err)
	assert.Equal(t, &True{}, e)

	e, err = parseSrc(t, nil, "#f")
	assert.NoError(t, err)
	assert.Equal(t, &False{}, e)
}

func TestParse_EmptyListIsQuote(t *testing.T) {
	e, err := parseSrc(t, nil, "()")
	assert.NoError(t, err)
	q, ok := e.(*Quote)
	assert.True(t, ok)
	lst, ok := q.Syntax.(*reader.List)
	assert.True(t, ok)
	assert.Empty(t, lst.Elems)
}

func TestParse_VariableReference(t *testing.T) {
	e, err := parseSrc(t, nil, "foo")
	assert.NoError(t, err)
	assert.Equal(t, &Var{Name: "foo"}, e)
}

func TestParse_NonSymbolHeadIsApply(t *testing.T) {
	e, err := parseSrc(t, nil, "((lambda (x) x) 1)")
	assert.NoError(t, err)
	apply, ok := e.(*Apply)
	assert.True(t, ok)
	_, ok = apply.Rator.(*Lambda)
	assert.True(t, ok)
	assert.Len(t, apply.Rands, 1)
}

func TestParse_ShadowedPrimitiveBecomesApply(t *testing.T) {
	env := value.Extend("+", value.TheVoid, nil)
	e, err := parseSrc(t, env, "(+ 1 2)")
	assert.NoError(t, err)
	apply, ok := e.(*Apply)
	assert.True(t, ok)
	assert.Equal(t, &Var{Name: "+"}, apply.Rator)
	assert.Len(t, apply.Rands, 2)
}

func TestParse_ShadowedReservedFormBecomesApply(t *testing.T) {
	env := value.Extend("if", value.TheVoid, nil)
	e, err := parseSrc(t, env, "(if 1 2 3)")
	assert.NoError(t, err)
	apply, ok := e.(*Apply)
	assert.True(t, ok)
	assert.Equal(t, &Var{Name: "if"}, apply.Rator)
	assert.Len(t, apply.Rands, 3)
}

func TestParse_FreeApplicationFallback(t *testing.T) {
	e, err := parseSrc(t, nil, "(my-fn 1 2)")
	assert.NoError(t, err)
	apply, ok := e.(*Apply)
	assert.True(t, ok)
	assert.Equal(t, &Var{Name: "my-fn"}, apply.Rator)
	assert.Len(t, apply.Rands, 2)
}

func TestParse_If(t *testing.T) {
	e, err := parseSrc(t, nil, "(if #t 1 2)")
	assert.NoError(t, err)
	ifExpr, ok := e.(*If)
	assert.True(t, ok)
	assert.Equal(t, &True{}, ifExpr.Cond)
	assert.Equal(t, &Fixnum{Val: 1}, ifExpr.Then)
	assert.Equal(t, &Fixnum{Val: 2}, ifExpr.Else)

	_, err = parseSrc(t, nil, "(if #t 1)")
	assert.Error(t, err)
}

func TestParse_BeginAndAndOr(t *testing.T) {
	e, err := parseSrc(t, nil, "(begin 1 2 3)")
	assert.NoError(t, err)
	begin, ok := e.(*Begin)
	assert.True(t, ok)
	assert.Len(t, begin.Exprs, 3)

	e, err = parseSrc(t, nil, "(and 1 2)")
	assert.NoError(t, err)
	_, ok = e.(*And)
	assert.True(t, ok)

	e, err = parseSrc(t, nil, "(or 1 2)")
	assert.NoError(t, err)
	_, ok = e.(*Or)
	assert.True(t, ok)
}

func TestParse_Quote(t *testing.T) {
	e, err := parseSrc(t, nil, "(quote (1 2 3))")
	assert.NoError(t, err)
	q, ok := e.(*Quote)
	assert.True(t, ok)
	lst, ok := q.Syntax.(*reader.List)
	assert.True(t, ok)
	assert.Len(t, lst.Elems, 3)

	_, err = parseSrc(t, nil, "(quote 1 2)")
	assert.Error(t, err)
}

func TestParse_QuoteAbbreviation(t *testing.T) {
	e, err := parseSrc(t, nil, "'x")
	assert.NoError(t, err)
	q, ok := e.(*Quote)
	assert.True(t, ok)
	sym, ok := q.Syntax.(*reader.Symbol)
	assert.True(t, ok)
	assert.Equal(t, "x", sym.Name)
}

func TestParse_DefineSimple(t *testing.T) {
	e, err := parseSrc(t, nil, "(define x 42)")
	assert.NoError(t, err)
	def, ok := e.(*Define)
	assert.True(t, ok)
	assert.Equal(t, "x", def.Name)
	assert.Equal(t, &Fixnum{Val: 42}, def.Expr)
}

func TestParse_DefineFunctionSugar(t *testing.T) {
	e, err := parseSrc(t, nil, "(define (square x) (* x x))")
	assert.NoError(t, err)
	def, ok := e.(*Define)
	assert.True(t, ok)
	assert.Equal(t, "square", def.Name)
	lam, ok := def.Expr.(*Lambda)
	assert.True(t, ok)
	assert.Equal(t, []string{"x"}, lam.Params)
	assert.False(t, lam.Variadic)
	_, ok = lam.Body.(*Mul)
	assert.True(t, ok)
}

func TestParse_Set(t *testing.T) {
	e, err := parseSrc(t, nil, "(set! x 10)")
	assert.NoError(t, err)
	set, ok := e.(*Set)
	assert.True(t, ok)
	assert.Equal(t, "x", set.Name)

	_, err = parseSrc(t, nil, "(set! 1 10)")
	assert.Error(t, err)
}

func TestParse_LambdaFixed(t *testing.T) {
	e, err := parseSrc(t, nil, "(lambda (a b) (+ a b))")
	assert.NoError(t, err)
	lam, ok := e.(*Lambda)
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, lam.Params)
	assert.False(t, lam.Variadic)
}

func TestParse_LambdaVariadic(t *testing.T) {
	e, err := parseSrc(t, nil, "(lambda (a b ...) a)")
	assert.NoError(t, err)
	lam, ok := e.(*Lambda)
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, lam.Params)
	assert.True(t, lam.Variadic)

	_, err = parseSrc(t, nil, "(lambda (...) a)")
	assert.Error(t, err, "'...' with no preceding fixed parameter must error")
}

func TestParse_LambdaMultiBodyIsBegin(t *testing.T) {
	e, err := parseSrc(t, nil, "(lambda (a) 1 2 3)")
	assert.NoError(t, err)
	lam, ok := e.(*Lambda)
	assert.True(t, ok)
	_, ok = lam.Body.(*Begin)
	assert.True(t, ok)
}

func TestParse_LambdaBodyShadowsPrimitive(t *testing.T) {
	e, err := parseSrc(t, nil, "(lambda (car) (car 1 2))")
	assert.NoError(t, err)
	lam, ok := e.(*Lambda)
	assert.True(t, ok)
	apply, ok := lam.Body.(*Apply)
	assert.True(t, ok, "car should be an Apply once shadowed by a parameter, not a Car primitive node")
	assert.Equal(t, &Var{Name: "car"}, apply.Rator)
}

func TestParse_Let(t *testing.T) {
	e, err := parseSrc(t, nil, "(let ((x 1) (y 2)) (+ x y))")
	assert.NoError(t, err)
	let, ok := e.(*Let)
	assert.True(t, ok)
	assert.Len(t, let.Bindings, 2)
	assert.Equal(t, "x", let.Bindings[0].Name)
	assert.Equal(t, &Fixnum{Val: 1}, let.Bindings[0].Expr)
	_, ok = let.Body.(*Plus)
	assert.True(t, ok)
}

func TestParse_LetBindingRHSUsesOuterEnv(t *testing.T) {
	// x is unbound outside, so a let-bound x used as an RHS of a
	// sibling binding must still be recognized as a free variable,
	// not accidentally shadowed by the binding being introduced.
	e, err := parseSrc(t, nil, "(let ((x 1) (y x)) y)")
	assert.NoError(t, err)
	let, ok := e.(*Let)
	assert.True(t, ok)
	assert.Equal(t, &Var{Name: "x"}, let.Bindings[1].Expr)
}

func TestParse_LetrecMutualRecursion(t *testing.T) {
	src := `(letrec ((even? (lambda (n) (if (= n 0) #t (odd? (- n 1)))))
	                  (odd? (lambda (n) (if (= n 0) #f (even? (- n 1))))))
	          (even? 10))`
	e, err := parseSrc(t, nil, src)
	assert.NoError(t, err)
	letrec, ok := e.(*Letrec)
	assert.True(t, ok)
	assert.Len(t, letrec.Bindings, 2)

	evenLam := letrec.Bindings[0].Expr.(*Lambda)
	ifExpr := evenLam.Body.(*If)
	apply, ok := ifExpr.Else.(*Apply)
	assert.True(t, ok)
	assert.Equal(t, &Var{Name: "odd?"}, apply.Rator, "odd? must resolve as a bound variable, not a free application guess alone")
}

func TestParse_CondWithElse(t *testing.T) {
	e, err := parseSrc(t, nil, "(cond ((= 1 2) 0) (else 1))")
	assert.NoError(t, err)
	cond, ok := e.(*Cond)
	assert.True(t, ok)
	assert.Len(t, cond.Clauses, 2)
	assert.False(t, cond.Clauses[0].Else)
	assert.True(t, cond.Clauses[1].Else)
	assert.Nil(t, cond.Clauses[1].Test)
}

func TestParse_CondElseMustBeLast(t *testing.T) {
	_, err := parseSrc(t, nil, "(cond (else 1) ((= 1 2) 0))")
	assert.Error(t, err)
}

func TestParse_CondElseAtMostOnce(t *testing.T) {
	_, err := parseSrc(t, nil, "(cond (else 1) (else 2))")
	assert.Error(t, err)
}

func TestParse_UnaryPrimitives(t *testing.T) {
	cases := map[string]func(Expr) bool{
		"(car x)":        func(e Expr) bool { _, ok := e.(*Car); return ok },
		"(cdr x)":        func(e Expr) bool { _, ok := e.(*Cdr); return ok },
		"(not x)":        func(e Expr) bool { _, ok := e.(*Not); return ok },
		"(boolean? x)":   func(e Expr) bool { _, ok := e.(*IsBoolean); return ok },
		"(fixnum? x)":    func(e Expr) bool { _, ok := e.(*IsFixnum); return ok },
		"(null? x)":      func(e Expr) bool { _, ok := e.(*IsNull); return ok },
		"(pair? x)":      func(e Expr) bool { _, ok := e.(*IsPair); return ok },
		"(procedure? x)": func(e Expr) bool { _, ok := e.(*IsProcedure); return ok },
		"(symbol? x)":    func(e Expr) bool { _, ok := e.(*IsSymbol); return ok },
		"(string? x)":    func(e Expr) bool { _, ok := e.(*IsString); return ok },
		"(list? x)":      func(e Expr) bool { _, ok := e.(*IsList); return ok },
		"(display x)":    func(e Expr) bool { _, ok := e.(*Display); return ok },
	}
	for src, check := range cases {
		e, err := parseSrc(t, nil, src)
		assert.NoError(t, err, src)
		assert.True(t, check(e), "%s produced wrong node type %T", src, e)
	}
}

func TestParse_UnaryPrimitiveArityError(t *testing.T) {
	_, err := parseSrc(t, nil, "(car x y)")
	assert.Error(t, err)
	_, err = parseSrc(t, nil, "(car)")
	assert.Error(t, err)
}

func TestParse_BinaryPrimitives(t *testing.T) {
	cases := map[string]func(Expr) bool{
		"(modulo a b)":  func(e Expr) bool { _, ok := e.(*Modulo); return ok },
		"(expt a b)":    func(e Expr) bool { _, ok := e.(*Expt); return ok },
		"(cons a b)":    func(e Expr) bool { _, ok := e.(*Cons); return ok },
		"(eq? a b)":     func(e Expr) bool { _, ok := e.(*IsEq); return ok },
		"(set-car! a b)": func(e Expr) bool { _, ok := e.(*SetCar); return ok },
		"(set-cdr! a b)": func(e Expr) bool { _, ok := e.(*SetCdr); return ok },
	}
	for src, check := range cases {
		e, err := parseSrc(t, nil, src)
		assert.NoError(t, err, src)
		assert.True(t, check(e), "%s produced wrong node type %T", src, e)
	}
}

func TestParse_BinaryPrimitiveArityError(t *testing.T) {
	_, err := parseSrc(t, nil, "(cons a)")
	assert.Error(t, err)
	_, err = parseSrc(t, nil, "(cons a b c)")
	assert.Error(t, err)
}

func TestParse_VariadicPrimitivesAcceptAnyCount(t *testing.T) {
	for _, src := range []string{"(+)", "(+ 1)", "(+ 1 2 3 4)", "(list)", "(void)"} {
		_, err := parseSrc(t, nil, src)
		assert.NoError(t, err, src)
	}
}

func TestParse_Exit(t *testing.T) {
	e, err := parseSrc(t, nil, "(exit)")
	assert.NoError(t, err)
	assert.Equal(t, &ExitLit{}, e)

	_, err = parseSrc(t, nil, "(exit 1)")
	assert.Error(t, err)
}
