package eval_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/akashmaji946/scm-mix/ast"
	"github.com/akashmaji946/scm-mix/eval"
	"github.com/akashmaji946/scm-mix/reader"
	"github.com/akashmaji946/scm-mix/value"
	"github.com/stretchr/testify/assert"
)

// interp drives the reader -> parser -> evaluator pipeline over src,
// threading the environment (and the parser's shadow-detection view of
// it) across top-level forms the way a REPL or file runner must.
// It returns the last form's value, any error, and whatever `display`
// wrote along the way.
func interp(src string) (value.Value, error, string) {
	var out bytes.Buffer
	ev := eval.NewEvaluator()
	ev.Out = &out

	env := value.Empty()
	p := ast.New(env)
	r := reader.NewFromString(src)

	var result value.Value = value.TheVoid
	for {
		form, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err, out.String()
		}
		expr, err := p.Parse(form)
		if err != nil {
			return nil, err, out.String()
		}
		v, newEnv, _, err := ev.Eval(expr, env)
		if err != nil {
			return nil, err, out.String()
		}
		env = newEnv
		p.Env = env
		result = v
	}
	return result, nil, out.String()
}

func mustInterp(t *testing.T, src string) value.Value {
	t.Helper()
	v, err, _ := interp(src)
	if err != nil {
		t.Fatalf("interp(%q) failed: %v", src, err)
	}
	return v
}

func TestEval_Arithmetic(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"(+ 1 2 3)", "6"},
		{"(- 10 1 2)", "7"},
		{"(- 5)", "-5"},
		{"(* 2 3 4)", "24"},
		{"(/ 1 2)", "1/2"},
		{"(+ 1/2 1/3)", "5/6"},
		{"(* 6 1/2)", "3"},
		{"(/ 10 2)", "5"},
		{"(modulo 7 3)", "1"},
		{"(modulo -7 3)", "2"},
		{"(expt 2 10)", "1024"},
		{"(expt 3 0)", "1"},
		{"(expt -2 3)", "-8"},
	}
	for _, tt := range tests {
		v := mustInterp(t, tt.src)
		assert.Equal(t, tt.want, v.String(), tt.src)
	}
}

func TestEval_ExptRejectsRationalBase(t *testing.T) {
	_, err, _ := interp("(expt 1/2 3)")
	assert.Error(t, err)
}

func TestEval_ExptRejectsZeroToTheZero(t *testing.T) {
	_, err, _ := interp("(expt 0 0)")
	assert.Error(t, err)
}

func TestEval_ExptRejectsNegativeExponent(t *testing.T) {
	_, err, _ := interp("(expt 2 -1)")
	assert.Error(t, err)
}

func TestEval_ExptDetectsOverflow(t *testing.T) {
	_, err, _ := interp("(expt 2 1000)")
	assert.Error(t, err)
}

func TestEval_Comparisons(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"(< 1 2 3)", "#t"},
		{"(< 1 3 2)", "#f"},
		{"(<= 1 1 2)", "#t"},
		{"(= 1/2 2/4)", "#t"},
		{"(>= 3 3 2)", "#t"},
		{"(> 3 2 1)", "#t"},
	}
	for _, tt := range tests {
		v := mustInterp(t, tt.src)
		assert.Equal(t, tt.want, v.String(), tt.src)
	}
}

func TestEval_IfAndCond(t *testing.T) {
	assert.Equal(t, "1", mustInterp(t, "(if #t 1 2)").String())
	assert.Equal(t, "2", mustInterp(t, "(if #f 1 2)").String())
	assert.Equal(t, "yes", mustInterp(t, `(cond ((= 1 2) "no") (else "yes"))`).(*value.String).Val)
	assert.Equal(t, "2", mustInterp(t, "(cond ((= 1 1) 2) (else 3))").String())
}

func TestEval_AndOr(t *testing.T) {
	assert.Equal(t, "#f", mustInterp(t, "(and 1 2 #f 3)").String())
	assert.Equal(t, "3", mustInterp(t, "(and 1 2 3)").String())
	assert.Equal(t, "1", mustInterp(t, "(or 1 2)").String())
	assert.Equal(t, "#f", mustInterp(t, "(or #f #f)").String())
}

func TestEval_DefineAndRecursion(t *testing.T) {
	src := `(define (factorial n)
	           (if (= n 0) 1 (* n (factorial (- n 1)))))
	         (factorial 5)`
	v := mustInterp(t, src)
	assert.Equal(t, "120", v.String())
}

func TestEval_LetrecMutualRecursion(t *testing.T) {
	src := `(letrec ((even? (lambda (n) (if (= n 0) #t (odd? (- n 1)))))
	                  (odd? (lambda (n) (if (= n 0) #f (even? (- n 1))))))
	          (even? 10))`
	v := mustInterp(t, src)
	assert.Equal(t, "#t", v.String())
}

func TestEval_Let(t *testing.T) {
	v := mustInterp(t, "(let ((x 1) (y 2)) (+ x y))")
	assert.Equal(t, "3", v.String())
}

func TestEval_LambdaDotAsParamIsNotARestMarker(t *testing.T) {
	// "." is an ordinary symbol at the reader level, not a parameter
	// marker; the variadic marker is the literal "..." token, so
	// (a . rest) names three ordinary fixed parameters (a, ".", rest),
	// not a rest parameter — calling with four arguments is an arity
	// error.
	src := `(define (my-list a . rest) (cons a rest))
	         (my-list 1 2 3 4)`
	_, err, _ := interp(src)
	assert.Error(t, err)
}

func TestEval_LambdaVariadicEllipsis(t *testing.T) {
	v := mustInterp(t, "((lambda (a rest ...) rest) 1 2 3)")
	elems, ok := value.ListToSlice(v)
	assert.True(t, ok)
	assert.Len(t, elems, 2)
	assert.Equal(t, "2", elems[0].String())
	assert.Equal(t, "3", elems[1].String())
}

func TestEval_ClosuresShareMutableEnvironment(t *testing.T) {
	src := `(define (make-counter)
	           (let ((n 0))
	             (cons (lambda () (set! n (+ n 1)) n)
	                   (lambda () n))))
	         (define pair (make-counter))
	         (define inc (car pair))
	         (define peek (cdr pair))
	         (inc)
	         (inc)
	         (peek)`
	v := mustInterp(t, src)
	assert.Equal(t, "2", v.String())
}

func TestEval_SetCarMutatesPair(t *testing.T) {
	src := `(define p (cons 1 2))
	         (set-car! p 99)
	         (car p)`
	v := mustInterp(t, src)
	assert.Equal(t, "99", v.String())
}

func TestEval_ShadowingPrimitiveWithDefine(t *testing.T) {
	src := `(define + (lambda (a b) (cons a b)))
	         (+ 1 2)`
	v := mustInterp(t, src)
	assert.Equal(t, "(1 . 2)", v.String())
}

func TestEval_CarOfEmptyListErrors(t *testing.T) {
	_, err, _ := interp("(car '())")
	assert.Error(t, err)
}

func TestEval_UnboundVariableErrors(t *testing.T) {
	_, err, _ := interp("no-such-name")
	assert.Error(t, err)
}

func TestEval_Display(t *testing.T) {
	_, err, out := interp(`(display "hello")`)
	assert.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestEval_QuoteDottedPair(t *testing.T) {
	v := mustInterp(t, "'(1 . 2)")
	assert.Equal(t, "(1 . 2)", v.String())
}

func TestEval_QuoteProperList(t *testing.T) {
	v := mustInterp(t, "'(1 2 3)")
	assert.Equal(t, "(1 2 3)", v.String())
}

func TestEval_QuoteDotNotSecondToLastErrors(t *testing.T) {
	_, err, _ := interp("'(a . b c)")
	assert.Error(t, err)
}

func TestEval_QuoteDoubleDotErrors(t *testing.T) {
	_, err, _ := interp("'(a . b . c)")
	assert.Error(t, err)
}

func TestEval_CondEmptyBodyClauseReturnsTestValue(t *testing.T) {
	v := mustInterp(t, "(cond (42))")
	assert.Equal(t, "42", v.String())
}

func TestEval_PrimitiveAsValue(t *testing.T) {
	src := `(define add +)
	         (add 1 2 3)`
	v := mustInterp(t, src)
	assert.Equal(t, "6", v.String())
}

func TestEval_Exit(t *testing.T) {
	v := mustInterp(t, "(exit)")
	assert.Equal(t, value.TheTerminate, v)
}
