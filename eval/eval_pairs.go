package eval

import "github.com/akashmaji946/scm-mix/value"

func primCons(a, b value.Value) (value.Value, error) {
	return &value.Pair{Car: a, Cdr: b}, nil
}

func primCar(v value.Value) (value.Value, error) {
	p, ok := v.(*value.Pair)
	if !ok {
		return nil, newErr("car: expected a pair, got %s", v.String())
	}
	return p.Car, nil
}

func primCdr(v value.Value) (value.Value, error) {
	p, ok := v.(*value.Pair)
	if !ok {
		return nil, newErr("cdr: expected a pair, got %s", v.String())
	}
	return p.Cdr, nil
}

func primSetCar(pv, newCar value.Value) (value.Value, error) {
	p, ok := pv.(*value.Pair)
	if !ok {
		return nil, newErr("set-car!: expected a pair, got %s", pv.String())
	}
	p.Car = newCar
	return value.TheVoid, nil
}

func primSetCdr(pv, newCdr value.Value) (value.Value, error) {
	p, ok := pv.(*value.Pair)
	if !ok {
		return nil, newErr("set-cdr!: expected a pair, got %s", pv.String())
	}
	p.Cdr = newCdr
	return value.TheVoid, nil
}

func primIsEq(a, b value.Value) value.Value {
	return &value.Boolean{Val: valuesAreEq(a, b)}
}

// valuesAreEq compares atoms by content and everything else (pairs,
// strings, procedures) by identity, matching eq?'s usual shallow
// comparison.
func valuesAreEq(a, b value.Value) bool {
	switch av := a.(type) {
	case *value.Integer:
		bv, ok := b.(*value.Integer)
		return ok && av.Val == bv.Val
	case *value.Rational:
		bv, ok := b.(*value.Rational)
		return ok && av.Num == bv.Num && av.Den == bv.Den
	case *value.Boolean:
		bv, ok := b.(*value.Boolean)
		return ok && av.Val == bv.Val
	case *value.Symbol:
		bv, ok := b.(*value.Symbol)
		return ok && av.Name == bv.Name
	case *value.Null:
		_, ok := b.(*value.Null)
		return ok
	case *value.Void:
		_, ok := b.(*value.Void)
		return ok
	default:
		return a == b
	}
}
