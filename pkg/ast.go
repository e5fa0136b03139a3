package tlox

// Expr is any expression node. Each concrete type also reports the CodeSpan it
// was parsed from. The grammar's alternatives are expressed here as a small
// closed set of structs implementing the marker interface, matched over with
// a type switch in the parser and evaluator, rather than a double-dispatch
// visitor.
type Expr interface {
	Span() CodeSpan
	exprNode()
}

// LiteralKind distinguishes the alternatives of a LiteralExpr.
type LiteralKind int

const (
	LiteralNumber LiteralKind = iota
	LiteralString
	LiteralTrue
	LiteralFalse
	LiteralNil
)

// LiteralExpr is a constant value appearing directly in the source.
type LiteralExpr struct {
	Kind LiteralKind
	Str  string
	Num  float64
	span CodeSpan
}

func (e *LiteralExpr) Span() CodeSpan { return e.span }
func (*LiteralExpr) exprNode()        {}

// UnaryOp is the operator of a UnaryExpr.
type UnaryOp int

const (
	UnaryMinus UnaryOp = iota
	UnaryNot
)

// UnaryExpr applies a prefix operator to a single operand.
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
	span    CodeSpan
}

func (e *UnaryExpr) Span() CodeSpan { return e.span }
func (*UnaryExpr) exprNode()        {}

// BinaryOp is the operator of a BinaryExpr: arithmetic, relational, equality,
// and the two short-circuiting logical operators.
type BinaryOp int

const (
	BinaryAdd BinaryOp = iota
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryLess
	BinaryLessEqual
	BinaryGreater
	BinaryGreaterEqual
	BinaryEqual
	BinaryNotEqual
	BinaryAnd
	BinaryOr
)

// BinaryExpr combines two operands with a binary operator. Op == BinaryAnd or
// BinaryOr marks a short-circuiting logical expression: the evaluator must not
// evaluate Right before deciding whether Left alone determines the result.
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
	span  CodeSpan
}

func (e *BinaryExpr) Span() CodeSpan { return e.span }
func (*BinaryExpr) exprNode()        {}

// IdentifierExpr reads a variable's current binding.
type IdentifierExpr struct {
	Name string
	span CodeSpan
}

func (e *IdentifierExpr) Span() CodeSpan { return e.span }
func (*IdentifierExpr) exprNode()        {}

// AssignmentExpr assigns Value to a name already bound in some enclosing scope.
type AssignmentExpr struct {
	Name  string
	Value Expr
	span  CodeSpan
}

func (e *AssignmentExpr) Span() CodeSpan { return e.span }
func (*AssignmentExpr) exprNode()        {}

// CallExpr invokes Callee with Args. Its span runs from the callee's start to
// the closing parenthesis.
type CallExpr struct {
	Callee Expr
	Args   []Expr
	span   CodeSpan
}

func (e *CallExpr) Span() CodeSpan { return e.span }
func (*CallExpr) exprNode()        {}

// GetExpr reads a property off an object. Reserved for member access: the
// parser never currently produces one, but the evaluator and error types
// (GetOnNonObjectError, UndefinedPropertyError) already account for it.
type GetExpr struct {
	Object   Expr
	Property string
	span     CodeSpan
}

func (e *GetExpr) Span() CodeSpan { return e.span }
func (*GetExpr) exprNode()        {}

// Stmt is any statement node.
type Stmt interface {
	stmtNode()
}

// PrintStmt evaluates Expr and writes its rendered form to the output sink.
type PrintStmt struct {
	Expr Expr
	Span CodeSpan
}

func (*PrintStmt) stmtNode() {}

// ExprStmt evaluates Expr and discards the result.
type ExprStmt struct {
	Expr Expr
}

func (*ExprStmt) stmtNode() {}

// VarDeclStmt introduces a new binding in the current scope. Init is never nil:
// the parser defaults it to a Nil literal when '=' is absent.
type VarDeclStmt struct {
	Name string
	Init Expr
}

func (*VarDeclStmt) stmtNode() {}

// BlockStmt pushes a new scope, runs Stmts, and pops the scope on exit — on
// every exit path, including error propagation.
type BlockStmt struct {
	Stmts []Stmt
}

func (*BlockStmt) stmtNode() {}

// IfStmt runs Then when Cond is truthy, else Else if present (Else may be nil).
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

func (*IfStmt) stmtNode() {}

// WhileStmt repeats Body while Cond evaluates truthy.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

func (*WhileStmt) stmtNode() {}

// ForStmt is a dedicated node carrying the optional pieces of a C-style for
// loop. The parser does not desugar it into a WhileStmt; the evaluator supplies
// the loop semantics directly. Init, Cond and Step may each be nil.
type ForStmt struct {
	Init Stmt
	Cond Expr
	Step Expr
	Body Stmt
}

func (*ForStmt) stmtNode() {}

// FunDeclStmt binds Name to a Function value in the current scope.
type FunDeclStmt struct {
	Name string
	Fn   *Function
}

func (*FunDeclStmt) stmtNode() {}

// ReturnStmt evaluates Expr (a Nil literal if the source omitted a value) and
// unwinds to the nearest enclosing call.
type ReturnStmt struct {
	Expr Expr
	Span CodeSpan
}

func (*ReturnStmt) stmtNode() {}

// ClassDeclStmt binds Name to a Class value. Method bodies are preserved;
// dispatch is not implemented.
type ClassDeclStmt struct {
	Name    string
	Methods []*Function
}

func (*ClassDeclStmt) stmtNode() {}
