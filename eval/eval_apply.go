package eval

import (
	"github.com/akashmaji946/scm-mix/ast"
	"github.com/akashmaji946/scm-mix/prim"
	"github.com/akashmaji946/scm-mix/value"
)

// evalVar resolves a bare identifier. A name unbound in env but present
// in the primitive table is synthesized into a first-class Builtin on
// the spot, so primitives can be passed around as ordinary procedure
// values (e.g. assigned by a let) even though the parser otherwise
// turns primitive call sites directly into dedicated Expr variants.
func (ev *Evaluator) evalVar(e *ast.Var, env *value.Env) (value.Value, *value.Env, error) {
	if v, ok := value.Find(e.Name, env); ok {
		return v, env, nil
	}
	if entry, ok := prim.Lookup(e.Name); ok {
		return ev.makePrimitiveBuiltin(entry), env, nil
	}
	return nil, env, newErr("unbound variable %q", e.Name)
}

func (ev *Evaluator) evalLambda(e *ast.Lambda, env *value.Env) (value.Value, *value.Env, error) {
	return &value.Procedure{Params: e.Params, Variadic: e.Variadic, Body: e.Body, Env: env}, env, nil
}

func (ev *Evaluator) evalApply(e *ast.Apply, env *value.Env) (value.Value, *value.Env, error) {
	ratorVal, _, _, err := ev.Eval(e.Rator, env)
	if err != nil {
		return nil, env, err
	}
	args := make([]value.Value, len(e.Rands))
	for i, r := range e.Rands {
		v, _, _, err := ev.Eval(r, env)
		if err != nil {
			return nil, env, err
		}
		args[i] = v
	}
	result, err := ev.applyProcedure(ratorVal, args)
	return result, env, err
}

func (ev *Evaluator) applyProcedure(proc value.Value, args []value.Value) (value.Value, error) {
	switch p := proc.(type) {
	case *value.Builtin:
		return p.Invoke(args)
	case *value.Procedure:
		callEnv, err := bindParams(p, args)
		if err != nil {
			return nil, err
		}
		body, ok := p.Body.(ast.Expr)
		if !ok {
			return nil, newErr("internal error: procedure body is not an expression")
		}
		val, _, _, err := ev.Eval(body, callEnv)
		return val, err
	default:
		return nil, newErr("cannot apply non-procedure value %s", proc.String())
	}
}

func bindParams(p *value.Procedure, args []value.Value) (*value.Env, error) {
	if p.Variadic {
		fixedCount := len(p.Params) - 1
		if len(args) < fixedCount {
			return nil, newErr("procedure %s expects at least %d argument(s), got %d", procLabel(p), fixedCount, len(args))
		}
		callEnv := p.Env
		for i := 0; i < fixedCount; i++ {
			callEnv = value.Extend(p.Params[i], args[i], callEnv)
		}
		rest := value.SliceToList(args[fixedCount:])
		callEnv = value.Extend(p.Params[fixedCount], rest, callEnv)
		return callEnv, nil
	}
	if len(args) != len(p.Params) {
		return nil, newErr("procedure %s expects %d argument(s), got %d", procLabel(p), len(p.Params), len(args))
	}
	callEnv := p.Env
	for i, name := range p.Params {
		callEnv = value.Extend(name, args[i], callEnv)
	}
	return callEnv, nil
}

func procLabel(p *value.Procedure) string {
	if p.Name != "" {
		return p.Name
	}
	return "#<procedure>"
}

func (ev *Evaluator) makePrimitiveBuiltin(entry prim.Entry) *value.Builtin {
	return &value.Builtin{
		Name: entry.Name,
		Invoke: func(args []value.Value) (value.Value, error) {
			if entry.Arity.Fixed && len(args) != entry.Arity.N {
				return nil, newErr("%s: expected %d argument(s), got %d", entry.Name, entry.Arity.N, len(args))
			}
			return ev.callPrimitiveByName(entry.Name, args)
		},
	}
}

// callPrimitiveByName is the single dispatch point for primitive
// semantics, shared by the dedicated Expr variants the parser builds
// for a direct call (evalUnaryPrim etc.) and by the Builtin wrapper
// evalVar synthesizes when a primitive is referenced in value position.
func (ev *Evaluator) callPrimitiveByName(name string, args []value.Value) (value.Value, error) {
	switch name {
	case "car":
		return primCar(args[0])
	case "cdr":
		return primCdr(args[0])
	case "not":
		return primNot(args[0]), nil
	case "boolean?":
		return primIsBoolean(args[0]), nil
	case "fixnum?":
		return primIsFixnum(args[0]), nil
	case "null?":
		return primIsNull(args[0]), nil
	case "pair?":
		return primIsPair(args[0]), nil
	case "procedure?":
		return primIsProcedure(args[0]), nil
	case "symbol?":
		return primIsSymbol(args[0]), nil
	case "string?":
		return primIsString(args[0]), nil
	case "list?":
		return primIsList(args[0]), nil
	case "display":
		return primDisplay(ev.Out, args[0])
	case "modulo":
		return primModulo(args[0], args[1])
	case "expt":
		return primExpt(args[0], args[1])
	case "cons":
		return primCons(args[0], args[1])
	case "eq?":
		return primIsEq(args[0], args[1]), nil
	case "set-car!":
		return primSetCar(args[0], args[1])
	case "set-cdr!":
		return primSetCdr(args[0], args[1])
	case "+":
		return primPlus(args)
	case "-":
		return primMinus(args)
	case "*":
		return primMul(args)
	case "/":
		return primDiv(args)
	case "<":
		return primLess(args)
	case "<=":
		return primLessEq(args)
	case "=":
		return primNumEq(args)
	case ">=":
		return primGreaterEq(args)
	case ">":
		return primGreater(args)
	case "list":
		return value.SliceToList(args), nil
	case "void":
		return value.TheVoid, nil
	default:
		return nil, newErr("unknown primitive %q", name)
	}
}

func (ev *Evaluator) evalUnaryPrim(x ast.Expr, env *value.Env, name string) (value.Value, *value.Env, error) {
	v, _, _, err := ev.Eval(x, env)
	if err != nil {
		return nil, env, err
	}
	result, err := ev.callPrimitiveByName(name, []value.Value{v})
	return result, env, err
}

func (ev *Evaluator) evalBinaryPrim(a, b ast.Expr, env *value.Env, name string) (value.Value, *value.Env, error) {
	av, _, _, err := ev.Eval(a, env)
	if err != nil {
		return nil, env, err
	}
	bv, _, _, err := ev.Eval(b, env)
	if err != nil {
		return nil, env, err
	}
	result, err := ev.callPrimitiveByName(name, []value.Value{av, bv})
	return result, env, err
}

func (ev *Evaluator) evalVariadicPrim(xs []ast.Expr, env *value.Env, name string) (value.Value, *value.Env, error) {
	args := make([]value.Value, len(xs))
	for i, x := range xs {
		v, _, _, err := ev.Eval(x, env)
		if err != nil {
			return nil, env, err
		}
		args[i] = v
	}
	result, err := ev.callPrimitiveByName(name, args)
	return result, env, err
}
