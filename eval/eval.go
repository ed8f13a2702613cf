// Package eval walks an ast.Expr tree against a value.Env chain and
// produces a value.Value. Because value.Env frames are single-binding
// and append-only (package value's Extend
// never mutates), evaluating one expression can introduce bindings a
// later sibling needs to see — a top-level `define` is the main
// example. Eval therefore returns the (possibly extended) environment
// alongside the value, and sequencing forms (Begin, body sequences,
// the REPL's top-level loop) thread it from one step to the next.
package eval

import (
	"io"
	"os"

	"github.com/akashmaji946/scm-mix/ast"
	"github.com/akashmaji946/scm-mix/value"
)

// Evaluator holds the state shared across one program's evaluation: at
// the moment, only the writer `display` writes to. A TCP server
// (package repl) constructs one Evaluator per connection so concurrent
// clients never interleave output.
type Evaluator struct {
	Out io.Writer
}

// NewEvaluator creates an Evaluator writing to os.Stdout.
func NewEvaluator() *Evaluator {
	return &Evaluator{Out: os.Stdout}
}

// Tail classifies how a top-level result was produced, so a REPL can
// decide whether to print it: a bare (void) call, a display call (which
// already wrote its own output), or anything else. Only begin/if/cond
// forward the classification of their taken tail; every other form
// resets to TailOther.
type Tail int

const (
	TailOther Tail = iota
	TailVoidCall
	TailDisplayCall
)

// Eval dispatches on the concrete Expr variant.
func (ev *Evaluator) Eval(expr ast.Expr, env *value.Env) (value.Value, *value.Env, Tail, error) {
	switch e := expr.(type) {
	case *ast.Fixnum:
		return &value.Integer{Val: e.Val}, env, TailOther, nil
	case *ast.RationalLit:
		v, err := makeNumber("rational literal", e.Num, e.Den)
		return v, env, TailOther, err
	case *ast.StringLit:
		return &value.String{Val: e.Val}, env, TailOther, nil
	case *ast.True:
		return &value.Boolean{Val: true}, env, TailOther, nil
	case *ast.False:
		return &value.Boolean{Val: false}, env, TailOther, nil
	case *ast.VoidLit:
		return value.TheVoid, env, TailOther, nil
	case *ast.ExitLit:
		return value.TheTerminate, env, TailOther, nil
	case *ast.Var:
		v, newEnv, err := ev.evalVar(e, env)
		return v, newEnv, TailOther, err
	case *ast.Quote:
		v, err := syntaxToValue(e.Syntax)
		return v, env, TailOther, err

	case *ast.If:
		return ev.evalIf(e, env)
	case *ast.Cond:
		return ev.evalCond(e, env)
	case *ast.Begin:
		return ev.evalBegin(e, env)
	case *ast.And:
		v, newEnv, err := ev.evalAnd(e, env)
		return v, newEnv, TailOther, err
	case *ast.Or:
		v, newEnv, err := ev.evalOr(e, env)
		return v, newEnv, TailOther, err

	case *ast.Lambda:
		v, newEnv, err := ev.evalLambda(e, env)
		return v, newEnv, TailOther, err
	case *ast.Apply:
		v, newEnv, err := ev.evalApply(e, env)
		return v, newEnv, TailOther, err
	case *ast.Define:
		v, newEnv, err := ev.evalDefine(e, env)
		return v, newEnv, TailOther, err
	case *ast.Set:
		v, newEnv, err := ev.evalSet(e, env)
		return v, newEnv, TailOther, err
	case *ast.Let:
		v, newEnv, err := ev.evalLet(e, env)
		return v, newEnv, TailOther, err
	case *ast.Letrec:
		v, newEnv, err := ev.evalLetrec(e, env)
		return v, newEnv, TailOther, err

	case *ast.Car:
		v, newEnv, err := ev.evalUnaryPrim(e.X, env, "car")
		return v, newEnv, TailOther, err
	case *ast.Cdr:
		v, newEnv, err := ev.evalUnaryPrim(e.X, env, "cdr")
		return v, newEnv, TailOther, err
	case *ast.Not:
		v, newEnv, err := ev.evalUnaryPrim(e.X, env, "not")
		return v, newEnv, TailOther, err
	case *ast.IsBoolean:
		v, newEnv, err := ev.evalUnaryPrim(e.X, env, "boolean?")
		return v, newEnv, TailOther, err
	case *ast.IsFixnum:
		v, newEnv, err := ev.evalUnaryPrim(e.X, env, "fixnum?")
		return v, newEnv, TailOther, err
	case *ast.IsNull:
		v, newEnv, err := ev.evalUnaryPrim(e.X, env, "null?")
		return v, newEnv, TailOther, err
	case *ast.IsPair:
		v, newEnv, err := ev.evalUnaryPrim(e.X, env, "pair?")
		return v, newEnv, TailOther, err
	case *ast.IsProcedure:
		v, newEnv, err := ev.evalUnaryPrim(e.X, env, "procedure?")
		return v, newEnv, TailOther, err
	case *ast.IsSymbol:
		v, newEnv, err := ev.evalUnaryPrim(e.X, env, "symbol?")
		return v, newEnv, TailOther, err
	case *ast.IsString:
		v, newEnv, err := ev.evalUnaryPrim(e.X, env, "string?")
		return v, newEnv, TailOther, err
	case *ast.IsList:
		v, newEnv, err := ev.evalUnaryPrim(e.X, env, "list?")
		return v, newEnv, TailOther, err
	case *ast.Display:
		v, newEnv, err := ev.evalUnaryPrim(e.X, env, "display")
		return v, newEnv, TailDisplayCall, err

	case *ast.Modulo:
		v, newEnv, err := ev.evalBinaryPrim(e.A, e.B, env, "modulo")
		return v, newEnv, TailOther, err
	case *ast.Expt:
		v, newEnv, err := ev.evalBinaryPrim(e.A, e.B, env, "expt")
		return v, newEnv, TailOther, err
	case *ast.Cons:
		v, newEnv, err := ev.evalBinaryPrim(e.A, e.B, env, "cons")
		return v, newEnv, TailOther, err
	case *ast.IsEq:
		v, newEnv, err := ev.evalBinaryPrim(e.A, e.B, env, "eq?")
		return v, newEnv, TailOther, err
	case *ast.SetCar:
		v, newEnv, err := ev.evalBinaryPrim(e.A, e.B, env, "set-car!")
		return v, newEnv, TailOther, err
	case *ast.SetCdr:
		v, newEnv, err := ev.evalBinaryPrim(e.A, e.B, env, "set-cdr!")
		return v, newEnv, TailOther, err

	case *ast.Plus:
		v, newEnv, err := ev.evalVariadicPrim(e.Xs, env, "+")
		return v, newEnv, TailOther, err
	case *ast.Minus:
		v, newEnv, err := ev.evalVariadicPrim(e.Xs, env, "-")
		return v, newEnv, TailOther, err
	case *ast.Mul:
		v, newEnv, err := ev.evalVariadicPrim(e.Xs, env, "*")
		return v, newEnv, TailOther, err
	case *ast.Div:
		v, newEnv, err := ev.evalVariadicPrim(e.Xs, env, "/")
		return v, newEnv, TailOther, err
	case *ast.Less:
		v, newEnv, err := ev.evalVariadicPrim(e.Xs, env, "<")
		return v, newEnv, TailOther, err
	case *ast.LessEq:
		v, newEnv, err := ev.evalVariadicPrim(e.Xs, env, "<=")
		return v, newEnv, TailOther, err
	case *ast.Equal:
		v, newEnv, err := ev.evalVariadicPrim(e.Xs, env, "=")
		return v, newEnv, TailOther, err
	case *ast.GreaterEq:
		v, newEnv, err := ev.evalVariadicPrim(e.Xs, env, ">=")
		return v, newEnv, TailOther, err
	case *ast.Greater:
		v, newEnv, err := ev.evalVariadicPrim(e.Xs, env, ">")
		return v, newEnv, TailOther, err
	case *ast.ListCtor:
		v, newEnv, err := ev.evalVariadicPrim(e.Xs, env, "list")
		return v, newEnv, TailOther, err
	case *ast.MakeVoid:
		v, newEnv, err := ev.evalVariadicPrim(e.Xs, env, "void")
		return v, newEnv, TailVoidCall, err

	default:
		return nil, env, TailOther, newErr("internal error: unhandled expression type %T", expr)
	}
}

func makeNumber(context string, num, den int64) (value.Value, error) {
	v, err := value.MakeNumber(num, den)
	if err != nil {
		return nil, newErr("%s: division by zero", context)
	}
	return v, nil
}
