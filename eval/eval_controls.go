package eval

import (
	"github.com/akashmaji946/scm-mix/ast"
	"github.com/akashmaji946/scm-mix/value"
)

func (ev *Evaluator) evalIf(e *ast.If, env *value.Env) (value.Value, *value.Env, Tail, error) {
	cond, _, _, err := ev.Eval(e.Cond, env)
	if err != nil {
		return nil, env, TailOther, err
	}
	if value.IsTruthy(cond) {
		return ev.Eval(e.Then, env)
	}
	return ev.Eval(e.Else, env)
}

// evalCond evaluates each clause's test in turn; the first truthy test
// takes that clause. A taken clause with a body evaluates the body as a
// sequence; a taken clause with only a test (no body) returns the
// test's own value.
func (ev *Evaluator) evalCond(e *ast.Cond, env *value.Env) (value.Value, *value.Env, Tail, error) {
	for _, clause := range e.Clauses {
		if clause.Else {
			return ev.evalBodySequence(clause.Body, env)
		}
		test, _, testTail, err := ev.Eval(clause.Test, env)
		if err != nil {
			return nil, env, TailOther, err
		}
		if value.IsTruthy(test) {
			if len(clause.Body) == 0 {
				return test, env, testTail, nil
			}
			return ev.evalBodySequence(clause.Body, env)
		}
	}
	return value.TheVoid, env, TailOther, nil
}

// evalBodySequence evaluates a sequence of expressions left to right,
// threading the environment forward so an internal define in an
// earlier form is visible to a later one in the same sequence. The
// final expression's tail classification is forwarded to the caller.
func (ev *Evaluator) evalBodySequence(body []ast.Expr, env *value.Env) (value.Value, *value.Env, Tail, error) {
	if len(body) == 0 {
		return value.TheVoid, env, TailOther, nil
	}
	var result value.Value = value.TheVoid
	curEnv := env
	tail := TailOther
	var err error
	for _, b := range body {
		result, curEnv, tail, err = ev.Eval(b, curEnv)
		if err != nil {
			return nil, env, TailOther, err
		}
	}
	return result, curEnv, tail, nil
}

func (ev *Evaluator) evalBegin(e *ast.Begin, env *value.Env) (value.Value, *value.Env, Tail, error) {
	return ev.evalBodySequence(e.Exprs, env)
}

// evalAnd implements short-circuit and: the first falsy value stops
// evaluation and is returned; an empty and is truthy.
func (ev *Evaluator) evalAnd(e *ast.And, env *value.Env) (value.Value, *value.Env, error) {
	var result value.Value = &value.Boolean{Val: true}
	curEnv := env
	for _, x := range e.Exprs {
		v, nextEnv, _, err := ev.Eval(x, curEnv)
		if err != nil {
			return nil, env, err
		}
		curEnv = nextEnv
		result = v
		if !value.IsTruthy(v) {
			return result, curEnv, nil
		}
	}
	return result, curEnv, nil
}

// evalOr implements short-circuit or: the first truthy value stops
// evaluation and is returned; an empty or is falsy.
func (ev *Evaluator) evalOr(e *ast.Or, env *value.Env) (value.Value, *value.Env, error) {
	var result value.Value = &value.Boolean{Val: false}
	curEnv := env
	for _, x := range e.Exprs {
		v, nextEnv, _, err := ev.Eval(x, curEnv)
		if err != nil {
			return nil, env, err
		}
		curEnv = nextEnv
		result = v
		if value.IsTruthy(v) {
			return result, curEnv, nil
		}
	}
	return result, curEnv, nil
}
