// Package ast defines the expression-tree variants produced by parsing
// a reader.Syntax tree, and the Parser that builds them. Variants are
// modeled as ordinary Go types behind one marker interface and
// dispatched with type switches in package eval, not as a class
// hierarchy with downcasts.
package ast

import "github.com/akashmaji946/scm-mix/reader"

// Expr is implemented by every expression-tree node.
type Expr interface {
	exprNode()
}

// --- literals ---

type Fixnum struct{ Val int64 }
type RationalLit struct{ Num, Den int64 }
type StringLit struct{ Val string }
type True struct{}
type False struct{}
type VoidLit struct{}
type ExitLit struct{}

// Var is a variable reference.
type Var struct{ Name string }

// Quote carries a raw syntax tree, converted to a value lazily at
// evaluation time.
type Quote struct{ Syntax reader.Syntax }

// --- control forms ---

type If struct {
	Cond, Then, Else Expr
}

// CondClause is one (test body...) clause; Else is true for the
// literal `else` clause.
type CondClause struct {
	Test Expr // nil when Else is true
	Else bool
	Body []Expr
}

type Cond struct{ Clauses []CondClause }

type Begin struct{ Exprs []Expr }

type And struct{ Exprs []Expr }
type Or struct{ Exprs []Expr }

// --- binding & closure forms ---

type Lambda struct {
	Params   []string
	Variadic bool
	Body     Expr
}

type Apply struct {
	Rator Expr
	Rands []Expr
}

type Define struct {
	Name string
	Expr Expr
}

type Set struct {
	Name string
	Expr Expr
}

type Binding struct {
	Name string
	Expr Expr
}

type Let struct {
	Bindings []Binding
	Body     Expr
}

type Letrec struct {
	Bindings []Binding
	Body     Expr
}

// --- primitive operators: unary ---

type Car struct{ X Expr }
type Cdr struct{ X Expr }
type Not struct{ X Expr }
type IsBoolean struct{ X Expr }
type IsFixnum struct{ X Expr }
type IsNull struct{ X Expr }
type IsPair struct{ X Expr }
type IsProcedure struct{ X Expr }
type IsSymbol struct{ X Expr }
type IsString struct{ X Expr }
type IsList struct{ X Expr }
type Display struct{ X Expr }

// --- primitive operators: binary ---

type Modulo struct{ A, B Expr }
type Expt struct{ A, B Expr }
type Cons struct{ A, B Expr }
type IsEq struct{ A, B Expr }
type SetCar struct{ A, B Expr }
type SetCdr struct{ A, B Expr }

// --- primitive operators: variadic ---

type Plus struct{ Xs []Expr }
type Minus struct{ Xs []Expr }
type Mul struct{ Xs []Expr }
type Div struct{ Xs []Expr }
type Less struct{ Xs []Expr }
type LessEq struct{ Xs []Expr }
type Equal struct{ Xs []Expr }
type GreaterEq struct{ Xs []Expr }
type Greater struct{ Xs []Expr }
type ListCtor struct{ Xs []Expr }
type MakeVoid struct{ Xs []Expr }

func (*Fixnum) exprNode()      {}
func (*RationalLit) exprNode() {}
func (*StringLit) exprNode()   {}
func (*True) exprNode()        {}
func (*False) exprNode()       {}
func (*VoidLit) exprNode()     {}
func (*ExitLit) exprNode()     {}
func (*Var) exprNode()         {}
func (*Quote) exprNode()       {}
func (*If) exprNode()          {}
func (*Cond) exprNode()        {}
func (*Begin) exprNode()       {}
func (*And) exprNode()         {}
func (*Or) exprNode()          {}
func (*Lambda) exprNode()      {}
func (*Apply) exprNode()       {}
func (*Define) exprNode()      {}
func (*Set) exprNode()         {}
func (*Let) exprNode()         {}
func (*Letrec) exprNode()      {}

func (*Car) exprNode()         {}
func (*Cdr) exprNode()         {}
func (*Not) exprNode()         {}
func (*IsBoolean) exprNode()   {}
func (*IsFixnum) exprNode()    {}
func (*IsNull) exprNode()      {}
func (*IsPair) exprNode()      {}
func (*IsProcedure) exprNode() {}
func (*IsSymbol) exprNode()    {}
func (*IsString) exprNode()    {}
func (*IsList) exprNode()      {}
func (*Display) exprNode()     {}

func (*Modulo) exprNode() {}
func (*Expt) exprNode()   {}
func (*Cons) exprNode()   {}
func (*IsEq) exprNode()   {}
func (*SetCar) exprNode() {}
func (*SetCdr) exprNode() {}

func (*Plus) exprNode()      {}
func (*Minus) exprNode()     {}
func (*Mul) exprNode()       {}
func (*Div) exprNode()       {}
func (*Less) exprNode()      {}
func (*LessEq) exprNode()    {}
func (*Equal) exprNode()     {}
func (*GreaterEq) exprNode() {}
func (*Greater) exprNode()   {}
func (*ListCtor) exprNode()  {}
func (*MakeVoid) exprNode()  {}
