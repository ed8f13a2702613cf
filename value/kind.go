// Package value defines the runtime tagged value universe of the
// interpreter and the lexically nested environment chain that binds
// names to values.
package value

// Kind identifies the runtime type of a Value for type predicates,
// dispatch, and error messages.
type Kind string

const (
	IntegerKind   Kind = "integer"
	RationalKind  Kind = "rational"
	BooleanKind   Kind = "boolean"
	SymbolKind    Kind = "symbol"
	StringKind    Kind = "string"
	NullKind      Kind = "null"
	PairKind      Kind = "pair"
	ProcedureKind Kind = "procedure"
	VoidKind      Kind = "void"
	TerminateKind Kind = "terminate"
)
