package eval

import "github.com/akashmaji946/scm-mix/value"

// These operate entirely in num/den cross-multiplied form, deferring to
// value.MakeNumber to normalize and collapse the result.

func primPlus(args []value.Value) (value.Value, error) {
	numAcc, denAcc := int64(0), int64(1)
	for _, a := range args {
		n, d, ok := value.AsRatio(a)
		if !ok {
			return nil, newErr("+: expected a number, got %s", a.String())
		}
		numAcc, denAcc = numAcc*d+n*denAcc, denAcc*d
	}
	return makeNumber("+", numAcc, denAcc)
}

func primMinus(args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return nil, newErr("-: requires at least 1 argument")
	}
	n0, d0, ok := value.AsRatio(args[0])
	if !ok {
		return nil, newErr("-: expected a number, got %s", args[0].String())
	}
	if len(args) == 1 {
		return makeNumber("-", -n0, d0)
	}
	numAcc, denAcc := n0, d0
	for _, a := range args[1:] {
		n, d, ok := value.AsRatio(a)
		if !ok {
			return nil, newErr("-: expected a number, got %s", a.String())
		}
		numAcc, denAcc = numAcc*d-n*denAcc, denAcc*d
	}
	return makeNumber("-", numAcc, denAcc)
}

func primMul(args []value.Value) (value.Value, error) {
	numAcc, denAcc := int64(1), int64(1)
	for _, a := range args {
		n, d, ok := value.AsRatio(a)
		if !ok {
			return nil, newErr("*: expected a number, got %s", a.String())
		}
		numAcc, denAcc = numAcc*n, denAcc*d
	}
	return makeNumber("*", numAcc, denAcc)
}

func primDiv(args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return nil, newErr("/: requires at least 1 argument")
	}
	n0, d0, ok := value.AsRatio(args[0])
	if !ok {
		return nil, newErr("/: expected a number, got %s", args[0].String())
	}
	if len(args) == 1 {
		if n0 == 0 {
			return nil, newErr("/: division by zero")
		}
		return makeNumber("/", d0, n0)
	}
	numAcc, denAcc := n0, d0
	for _, a := range args[1:] {
		n, d, ok := value.AsRatio(a)
		if !ok {
			return nil, newErr("/: expected a number, got %s", a.String())
		}
		if n == 0 {
			return nil, newErr("/: division by zero")
		}
		numAcc, denAcc = numAcc*d, denAcc*n
	}
	return makeNumber("/", numAcc, denAcc)
}

func primModulo(a, b value.Value) (value.Value, error) {
	ai, ok := a.(*value.Integer)
	if !ok {
		return nil, newErr("modulo: expected an integer, got %s", a.String())
	}
	bi, ok := b.(*value.Integer)
	if !ok {
		return nil, newErr("modulo: expected an integer, got %s", b.String())
	}
	if bi.Val == 0 {
		return nil, newErr("modulo: division by zero")
	}
	m := ai.Val % bi.Val
	if m != 0 && (m < 0) != (bi.Val < 0) {
		m += bi.Val
	}
	return &value.Integer{Val: m}, nil
}

// primExpt requires two integers, rejects a negative exponent and the
// 0^0 case, and detects overflow of the int64 accumulator via
// exponentiation by squaring.
func primExpt(a, b value.Value) (value.Value, error) {
	ai, ok := a.(*value.Integer)
	if !ok {
		return nil, newErr("expt: expected two integers, got %s", a.String())
	}
	bi, ok := b.(*value.Integer)
	if !ok || bi.Val < 0 {
		return nil, newErr("expt: exponent must be a non-negative integer")
	}
	if ai.Val == 0 && bi.Val == 0 {
		return nil, newErr("expt: 0^0 is undefined")
	}
	result, err := intPow(ai.Val, bi.Val)
	if err != nil {
		return nil, err
	}
	return &value.Integer{Val: result}, nil
}

// intPow computes base^exp by squaring, checking for int64 overflow
// before every multiply.
func intPow(base, exp int64) (int64, error) {
	result := int64(1)
	b := base
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			v, ok := safeMul(result, b)
			if !ok {
				return 0, newErr("expt: overflow")
			}
			result = v
		}
		if e>>1 > 0 {
			v, ok := safeMul(b, b)
			if !ok {
				return 0, newErr("expt: overflow")
			}
			b = v
		}
	}
	return result, nil
}

// safeMul multiplies two int64s, reporting ok=false if the product
// overflows.
func safeMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	r := a * b
	if r/b != a {
		return 0, false
	}
	return r, true
}

// compareChain checks ok(left, right) pairwise between cross-multiplied
// ratio numerators of adjacent arguments; since value.MakeNumber always
// keeps denominators positive, cross-multiplication preserves order.
func compareChain(args []value.Value, name string, ok func(a, b int64) bool) (value.Value, error) {
	for i := 0; i+1 < len(args); i++ {
		n1, d1, good1 := value.AsRatio(args[i])
		n2, d2, good2 := value.AsRatio(args[i+1])
		if !good1 || !good2 {
			return nil, newErr("%s: expected numbers", name)
		}
		if !ok(n1*d2, n2*d1) {
			return &value.Boolean{Val: false}, nil
		}
	}
	return &value.Boolean{Val: true}, nil
}

func primLess(args []value.Value) (value.Value, error) {
	return compareChain(args, "<", func(a, b int64) bool { return a < b })
}
func primLessEq(args []value.Value) (value.Value, error) {
	return compareChain(args, "<=", func(a, b int64) bool { return a <= b })
}
func primNumEq(args []value.Value) (value.Value, error) {
	return compareChain(args, "=", func(a, b int64) bool { return a == b })
}
func primGreaterEq(args []value.Value) (value.Value, error) {
	return compareChain(args, ">=", func(a, b int64) bool { return a >= b })
}
func primGreater(args []value.Value) (value.Value, error) {
	return compareChain(args, ">", func(a, b int64) bool { return a > b })
}
