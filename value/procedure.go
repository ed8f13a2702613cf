package value

// Procedure is a first-class closure: a parameter list, a body, and
// the environment captured at the point the lambda was evaluated.
// Body is opaque here (an ast.Expr) to avoid an import cycle between
// value and ast; eval's applyProcedure type-asserts it back to ast.Expr before
// evaluating it.
type Procedure struct {
	Params   []string
	Variadic bool // true: Params[len-1] collects trailing args into a list
	Body     interface{}
	Env      *Env
	// Name is set when the closure was bound by `define` or a
	// function-sugar definition, purely for a friendlier #<procedure:name>
	// textual form; it has no effect on evaluation.
	Name string
}

func (p *Procedure) Kind() Kind { return ProcedureKind }

func (p *Procedure) String() string {
	if p.Name != "" {
		return "#<procedure:" + p.Name + ">"
	}
	return "#<procedure>"
}

func (p *Procedure) Display() string { return p.String() }

// Builtin is the first-class procedure value synthesized when a
// primitive name is referenced in value position. Invoke carries the
// actual primitive semantics; Apply dispatches to it the same way it
// dispatches to a Procedure.
type Builtin struct {
	Name   string
	Invoke func(args []Value) (Value, error)
}

func (b *Builtin) Kind() Kind      { return ProcedureKind }
func (b *Builtin) String() string  { return "#<procedure:" + b.Name + ">" }
func (b *Builtin) Display() string { return b.String() }

// IsProcedure reports whether v can be applied: a closure or a
// synthesized builtin.
func IsProcedure(v Value) bool {
	switch v.(type) {
	case *Procedure, *Builtin:
		return true
	default:
		return false
	}
}
