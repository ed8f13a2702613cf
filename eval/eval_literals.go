package eval

import (
	"github.com/akashmaji946/scm-mix/reader"
	"github.com/akashmaji946/scm-mix/value"
)

// syntaxToValue converts a quoted syntax tree into the datum it
// denotes. A list form splices a bare `.` symbol into a dotted tail,
// the one place the dotted-pair convention matters — the reader itself
// treats `.` as an ordinary symbol.
func syntaxToValue(s reader.Syntax) (value.Value, error) {
	switch n := s.(type) {
	case *reader.Integer:
		return &value.Integer{Val: n.Val}, nil
	case *reader.Rational:
		v, err := value.MakeNumber(n.Num, n.Den)
		if err != nil {
			return nil, newErr("quote: division by zero in rational literal")
		}
		return v, nil
	case *reader.String:
		return &value.String{Val: n.Val}, nil
	case *reader.Boolean:
		return &value.Boolean{Val: n.Val}, nil
	case *reader.Symbol:
		return &value.Symbol{Name: n.Name}, nil
	case *reader.List:
		return syntaxListToValue(n.Elems)
	default:
		return value.TheVoid, nil
	}
}

// syntaxListToValue builds a proper list, or a dotted pair when exactly
// one `.` symbol appears as the second-to-last element. Any other
// placement — a second `.`, or one that isn't second-to-last — is a
// malformed quoted list.
func syntaxListToValue(elems []reader.Syntax) (value.Value, error) {
	dotIdx := -1
	for i, e := range elems {
		sym, ok := e.(*reader.Symbol)
		if !ok || sym.Name != "." {
			continue
		}
		if dotIdx != -1 {
			return nil, newErr("malformed quoted list: more than one \".\" in dotted pair")
		}
		dotIdx = i
	}

	if dotIdx == -1 {
		vals := make([]value.Value, len(elems))
		for i, e := range elems {
			v, err := syntaxToValue(e)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return value.SliceToList(vals), nil
	}

	if dotIdx != len(elems)-2 {
		return nil, newErr("malformed quoted list: \".\" must be second-to-last")
	}

	tail, err := syntaxToValue(elems[dotIdx+1])
	if err != nil {
		return nil, err
	}

	head := elems[:dotIdx]
	result := tail
	for i := len(head) - 1; i >= 0; i-- {
		v, err := syntaxToValue(head[i])
		if err != nil {
			return nil, err
		}
		result = &value.Pair{Car: v, Cdr: result}
	}
	return result, nil
}
