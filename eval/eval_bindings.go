package eval

import (
	"github.com/akashmaji946/scm-mix/ast"
	"github.com/akashmaji946/scm-mix/value"
)

// evalDefine extends env with a placeholder before evaluating the
// right-hand side, then back-patches it, so a self-recursive function
// defined with (define (f ...) ... (f ...) ...) can resolve its own
// name inside the closure it captures.
func (ev *Evaluator) evalDefine(e *ast.Define, env *value.Env) (value.Value, *value.Env, error) {
	tempEnv := value.Extend(e.Name, value.TheVoid, env)
	v, _, _, err := ev.Eval(e.Expr, tempEnv)
	if err != nil {
		return nil, env, err
	}
	if proc, ok := v.(*value.Procedure); ok && proc.Name == "" {
		proc.Name = e.Name
	}
	value.Modify(e.Name, v, tempEnv)
	return value.TheVoid, tempEnv, nil
}

func (ev *Evaluator) evalSet(e *ast.Set, env *value.Env) (value.Value, *value.Env, error) {
	v, _, _, err := ev.Eval(e.Expr, env)
	if err != nil {
		return nil, env, err
	}
	if _, ok := value.Find(e.Name, env); !ok {
		return nil, env, newErr("set!: unbound variable %q", e.Name)
	}
	value.Modify(e.Name, v, env)
	return value.TheVoid, env, nil
}

// evalLet evaluates every binding's right-hand side in the enclosing
// environment (so bindings cannot see each other) and evaluates the
// body in a frame chain extended with all of them. The let's own
// bindings do not leak into the caller's environment.
func (ev *Evaluator) evalLet(e *ast.Let, env *value.Env) (value.Value, *value.Env, error) {
	bodyEnv := env
	for _, b := range e.Bindings {
		v, _, _, err := ev.Eval(b.Expr, env)
		if err != nil {
			return nil, env, err
		}
		bodyEnv = value.Extend(b.Name, v, bodyEnv)
	}
	val, _, _, err := ev.Eval(e.Body, bodyEnv)
	return val, env, err
}

// evalLetrec extends the environment with every bound name before
// evaluating any right-hand side, so mutually recursive closures
// (even?/odd?) capture an environment where both names already exist;
// each slot is back-patched once its value is known.
func (ev *Evaluator) evalLetrec(e *ast.Letrec, env *value.Env) (value.Value, *value.Env, error) {
	recEnv := env
	for _, b := range e.Bindings {
		recEnv = value.Extend(b.Name, value.TheVoid, recEnv)
	}
	for _, b := range e.Bindings {
		v, _, _, err := ev.Eval(b.Expr, recEnv)
		if err != nil {
			return nil, env, err
		}
		if proc, ok := v.(*value.Procedure); ok && proc.Name == "" {
			proc.Name = b.Name
		}
		value.Modify(b.Name, v, recEnv)
	}
	val, _, _, err := ev.Eval(e.Body, recEnv)
	return val, env, err
}
