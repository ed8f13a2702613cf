package eval

import "github.com/akashmaji946/scm-mix/value"

func primNot(v value.Value) value.Value {
	return &value.Boolean{Val: !value.IsTruthy(v)}
}

func primIsBoolean(v value.Value) value.Value {
	_, ok := v.(*value.Boolean)
	return &value.Boolean{Val: ok}
}

func primIsFixnum(v value.Value) value.Value {
	_, ok := v.(*value.Integer)
	return &value.Boolean{Val: ok}
}

func primIsNull(v value.Value) value.Value {
	_, ok := v.(*value.Null)
	return &value.Boolean{Val: ok}
}

func primIsPair(v value.Value) value.Value {
	_, ok := v.(*value.Pair)
	return &value.Boolean{Val: ok}
}

func primIsProcedure(v value.Value) value.Value {
	return &value.Boolean{Val: value.IsProcedure(v)}
}

func primIsSymbol(v value.Value) value.Value {
	_, ok := v.(*value.Symbol)
	return &value.Boolean{Val: ok}
}

func primIsString(v value.Value) value.Value {
	_, ok := v.(*value.String)
	return &value.Boolean{Val: ok}
}

func primIsList(v value.Value) value.Value {
	return &value.Boolean{Val: value.IsProperList(v)}
}
