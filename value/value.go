package value

import "fmt"

// Value is implemented by every runtime value the evaluator can produce.
// String renders the value's canonical textual form;
// Display renders the form `display` writes, which differs from String
// only for String values (unquoted contents).
type Value interface {
	Kind() Kind
	String() string
	Display() string
}

// Integer is an exact 64-bit signed integer.
type Integer struct {
	Val int64
}

func (i *Integer) Kind() Kind      { return IntegerKind }
func (i *Integer) String() string  { return fmt.Sprintf("%d", i.Val) }
func (i *Integer) Display() string { return i.String() }

// Boolean is #t or #f.
type Boolean struct {
	Val bool
}

func (b *Boolean) Kind() Kind { return BooleanKind }
func (b *Boolean) String() string {
	if b.Val {
		return "#t"
	}
	return "#f"
}
func (b *Boolean) Display() string { return b.String() }

// Symbol is an interned-by-value identifier used as a quoted datum.
type Symbol struct {
	Name string
}

func (s *Symbol) Kind() Kind      { return SymbolKind }
func (s *Symbol) String() string  { return s.Name }
func (s *Symbol) Display() string { return s.Name }

// String is a text value. String() quotes it (as a read-back literal);
// Display() prints the raw, unquoted contents.
type String struct {
	Val string
}

func (s *String) Kind() Kind      { return StringKind }
func (s *String) String() string  { return fmt.Sprintf("%q", s.Val) }
func (s *String) Display() string { return s.Val }

// Null is the unique empty-list value.
type Null struct{}

func (n *Null) Kind() Kind      { return NullKind }
func (n *Null) String() string  { return "()" }
func (n *Null) Display() string { return "()" }

// TheNull is the single shared empty-list instance; Null carries no
// state, so every producer may hand out this one value.
var TheNull = &Null{}

// Void is the distinguished "no useful result" value.
type Void struct{}

func (v *Void) Kind() Kind      { return VoidKind }
func (v *Void) String() string  { return "#<void>" }
func (v *Void) Display() string { return "#<void>" }

// TheVoid is the single shared void instance.
var TheVoid = &Void{}

// Terminate signals the REPL to end its loop. It is never a regular
// value: the evaluator produces it only from ExitLit / the `exit`
// primitive, and only the REPL inspects it.
type Terminate struct{}

func (t *Terminate) Kind() Kind      { return TerminateKind }
func (t *Terminate) String() string  { return "#<terminate>" }
func (t *Terminate) Display() string { return t.String() }

// TheTerminate is the single shared terminate instance.
var TheTerminate = &Terminate{}

// IsTruthy implements the language's truthiness rule: every value is
// truthy except Boolean(false).
func IsTruthy(v Value) bool {
	b, ok := v.(*Boolean)
	return !ok || b.Val
}
