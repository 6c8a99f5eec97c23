package schwift

import "encoding/gob"

// A Statement is a single executable statement along with the location of
// its source text. The location is used only for diagnostics.
type Statement struct {
	Kind StatementKind
	// Label names the source the statement was parsed from, usually a file
	// name.
	Label string
	// Line is the 1-based line on which the statement begins.
	Line int
	// Start and End are the byte offsets of the statement in its source.
	Start, End int
}

// StatementKind is the executable part of a statement. The concrete types
// are the *...Stmt types in this file.
type StatementKind interface {
	stmt()
}

// An Expression is an immutable expression tree. Evaluating an expression
// never modifies it.
type Expression interface {
	expr()
}

// AssignStmt is `name squanch expr`.
type AssignStmt struct {
	Name string
	Expr Expression
}

// DeleteStmt is `squanch name`.
type DeleteStmt struct {
	Name string
}

// PrintStmt is `show me what you got expr`, or `show me what you got! expr`
// when NoNewline is set.
type PrintStmt struct {
	Expr      Expression
	NoNewline bool
}

// ListNewStmt is `name on a cob`.
type ListNewStmt struct {
	Name string
}

// AppendStmt is `name assimilate expr`.
type AppendStmt struct {
	Name string
	Expr Expression
}

// ListAssignStmt is `name[index] squanch expr`.
type ListAssignStmt struct {
	Name  string
	Index Expression
	Expr  Expression
}

// ListDeleteStmt is `squanch name[index]`.
type ListDeleteStmt struct {
	Name  string
	Index Expression
}

// IfStmt is a conditional. Else is nil when there is no else block.
type IfStmt struct {
	Cond Expression
	Then []Statement
	Else []Statement
}

// WhileStmt is `while cond :< body >:`.
type WhileStmt struct {
	Cond Expression
	Body []Statement
}

// InputStmt is `portal gun name`.
type InputStmt struct {
	Name string
}

// CatchStmt is `normal plan :< try >: plan for failure :< catch >:`.
type CatchStmt struct {
	Try   []Statement
	Catch []Statement
}

// FuncStmt defines a function.
type FuncStmt struct {
	Name   string
	Params []string
	Body   []Statement
}

// ReturnStmt is `return expr`.
type ReturnStmt struct {
	Expr Expression
}

// CallStmt is a function call whose result is discarded.
type CallStmt struct {
	Name string
	Args []Expression
}

// MicroverseStmt loads native functions from the microverse at Path. Funcs
// holds one CallStmt per function to bind.
type MicroverseStmt struct {
	Path  string
	Funcs []Statement
}

func (*AssignStmt) stmt()     {}
func (*DeleteStmt) stmt()     {}
func (*PrintStmt) stmt()      {}
func (*ListNewStmt) stmt()    {}
func (*AppendStmt) stmt()     {}
func (*ListAssignStmt) stmt() {}
func (*ListDeleteStmt) stmt() {}
func (*IfStmt) stmt()         {}
func (*WhileStmt) stmt()      {}
func (*InputStmt) stmt()      {}
func (*CatchStmt) stmt()      {}
func (*FuncStmt) stmt()       {}
func (*ReturnStmt) stmt()     {}
func (*CallStmt) stmt()       {}
func (*MicroverseStmt) stmt() {}

// VarExpr is a variable reference.
type VarExpr struct {
	Name string
}

// OpExpr is a parenthesised binary operation.
type OpExpr struct {
	Left  Expression
	Op    Operator
	Right Expression
}

// LiteralExpr is a literal int, float, string, or bool.
type LiteralExpr struct {
	Value Value
}

// IndexExpr is `name[index]`.
type IndexExpr struct {
	Name  string
	Index Expression
}

// LenExpr is `name squanch` in expression position, the length of a string
// or list.
type LenExpr struct {
	Name string
}

// NotExpr is `!expr`.
type NotExpr struct {
	Expr Expression
}

// EvalExpr is `{expr}`. Expr must evaluate to a string holding an expression.
type EvalExpr struct {
	Expr Expression
}

// CallExpr is a function call.
type CallExpr struct {
	Name string
	Args []Expression
}

func (*VarExpr) expr()     {}
func (*OpExpr) expr()      {}
func (*LiteralExpr) expr() {}
func (*IndexExpr) expr()   {}
func (*LenExpr) expr()     {}
func (*NotExpr) expr()     {}
func (*EvalExpr) expr()    {}
func (*CallExpr) expr()    {}

func init() {
	// Register every concrete node so compiled programs can be decoded.
	for _, v := range []interface{}{
		&AssignStmt{}, &DeleteStmt{}, &PrintStmt{}, &ListNewStmt{},
		&AppendStmt{}, &ListAssignStmt{}, &ListDeleteStmt{}, &IfStmt{},
		&WhileStmt{}, &InputStmt{}, &CatchStmt{}, &FuncStmt{},
		&ReturnStmt{}, &CallStmt{}, &MicroverseStmt{},
		&VarExpr{}, &OpExpr{}, &LiteralExpr{}, &IndexExpr{}, &LenExpr{},
		&NotExpr{}, &EvalExpr{}, &CallExpr{},
		Int(0), Float(0), Bool(false), Str(""),
	} {
		gob.Register(v)
	}
}
