package value

// Pair is a mutable cons cell. Both slots are mutable to support
// set-car!/set-cdr!, and may be mutated into cyclic structures.
type Pair struct {
	Car Value
	Cdr Value
}

func (p *Pair) Kind() Kind { return PairKind }

func (p *Pair) String() string { return renderPair(p, false) }

func (p *Pair) Display() string { return renderPair(p, true) }

// renderPair prints "(e1 e2 ... eN)" for a proper list or
// "(e1 e2 ... eN . tail)" for an improper tail. display selects
// whether nested String elements print quoted (String()) or raw
// (Display()), matching whichever form the caller asked of the pair.
func renderPair(p *Pair, display bool) string {
	render := func(v Value) string {
		if display {
			return v.Display()
		}
		return v.String()
	}
	out := "("
	first := true
	var cur Value = p
	for {
		pr, ok := cur.(*Pair)
		if !ok {
			break
		}
		if !first {
			out += " "
		}
		first = false
		out += render(pr.Car)
		cur = pr.Cdr
	}
	if _, isNull := cur.(*Null); !isNull {
		out += " . " + render(cur)
	}
	out += ")"
	return out
}

// IsProperList reports whether v is a proper, non-cyclic list,
// detecting cycles with Floyd's fast/slow pointer walk so `list?` does
// not hang on a self-referential pair chain.
func IsProperList(v Value) bool {
	slow, fast := v, v
	for {
		fp, ok := fast.(*Pair)
		if !ok {
			_, isNull := fast.(*Null)
			return isNull
		}
		fast = fp.Cdr
		fp2, ok := fast.(*Pair)
		if !ok {
			_, isNull := fast.(*Null)
			return isNull
		}
		fast = fp2.Cdr
		sp := slow.(*Pair)
		slow = sp.Cdr
		if slow == fast {
			return false
		}
	}
}

// ListToSlice walks a proper list into a Go slice. ok is false if the
// structure is not a proper, non-cyclic list.
func ListToSlice(v Value) (elems []Value, ok bool) {
	if !IsProperList(v) {
		return nil, false
	}
	for {
		switch cur := v.(type) {
		case *Null:
			return elems, true
		case *Pair:
			elems = append(elems, cur.Car)
			v = cur.Cdr
		default:
			return nil, false
		}
	}
}

// SliceToList right-folds a Go slice of values into a proper list
// terminated by Null.
func SliceToList(elems []Value) Value {
	var list Value = TheNull
	for i := len(elems) - 1; i >= 0; i-- {
		list = &Pair{Car: elems[i], Cdr: list}
	}
	return list
}
