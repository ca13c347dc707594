//go:generate true

package ast

import "github.com/SamChou19815/samlang-sub001/internal/types"

// Expr is the expression grammar: literal, local id, class id, field
// access, method access (checker-only), unary, call, binary, if-else,
// match, lambda, block. Every variant embeds Common for {loc, comment
// ref, type slot}.
//
//sumtype:decl
type Expr interface {
	Node
	isExpr()
	InferredType() types.Type
	SetInferredType(types.Type)
	CommentRef() CommentRef
}

// Common is the shared record every expression node embeds: {loc,
// comment ref, type slot}. The type slot is nil on the untyped AST and
// filled by the checker on the typed AST.
type Common struct {
	Loc     Location
	Comment CommentRef
	Type    types.Type
}

func (c *Common) Span() Location                { return c.Loc }
func (c *Common) InferredType() types.Type       { return c.Type }
func (c *Common) SetInferredType(t types.Type)   { c.Type = t }
func (c *Common) CommentRef() CommentRef         { return c.Comment }

func (*LiteralExpr) isExpr()      {}
func (*LocalIdExpr) isExpr()      {}
func (*ClassIdExpr) isExpr()      {}
func (*FieldAccessExpr) isExpr()  {}
func (*MethodAccessExpr) isExpr() {}
func (*UnaryExpr) isExpr()        {}
func (*CallExpr) isExpr()         {}
func (*BinaryExpr) isExpr()       {}
func (*IfElseExpr) isExpr()       {}
func (*MatchExpr) isExpr()        {}
func (*LambdaExpr) isExpr()       {}
func (*BlockExpr) isExpr()        {}

// LiteralKind enumerates the literal value shapes.
type LiteralKind int

const (
	LitBool LiteralKind = iota
	LitInt
	LitString
)

// LiteralExpr is a bool/int/string constant.
type LiteralExpr struct {
	Common
	Kind     LiteralKind
	BoolVal  bool
	IntVal   int64
	StrVal   string
}

// LocalIdExpr is a reference to a local binder resolved by SSA.
type LocalIdExpr struct {
	Common
	Name Id
}

// ClassIdExpr is a reference to a class or interface by name, used
// either to access a static function or as a "class object" value.
type ClassIdExpr struct {
	Common
	ModuleQualifier *Id // non-nil for an explicit Module.Class reference
	Name            Id
}

// FieldAccessExpr accesses a struct field on an object.
type FieldAccessExpr struct {
	Common
	Object Expr
	Field  Id
}

// MethodAccessExpr accesses a method on an object, optionally with
// explicit type arguments. The parser never produces this node: only
// the checker does, after disambiguating a field access into a method
// access.
type MethodAccessExpr struct {
	Common
	Object              Expr
	Method              Id
	ExplicitTypeArgs    []TypeAnnotation
}

// UnaryOp is one of logical-not or arithmetic negation.
type UnaryOp int

const (
	Not UnaryOp = iota
	Neg
)

// UnaryExpr applies a fixed-signature unary operator.
type UnaryExpr struct {
	Common
	Op      UnaryOp
	Operand Expr
}

// CallExpr applies a callee to arguments, with optional explicit type
// arguments.
type CallExpr struct {
	Common
	Callee       Expr
	TypeArgs     []TypeAnnotation
	Arguments    []Expr
}

// BinaryOp enumerates the binary operators the checker dispatches on.
type BinaryOp int

const (
	Mul BinaryOp = iota
	Div
	Mod
	Add
	Sub
	Lt
	Le
	Gt
	Ge
	Eq
	Ne
	And
	Or
	Concat
)

// BinaryExpr applies a binary operator.
type BinaryExpr struct {
	Common
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// IfElseExpr is a two-armed conditional expression.
type IfElseExpr struct {
	Common
	Condition Expr
	Then      Expr
	Else      Expr
}

// MatchArm is one arm of a match expression: a pattern and a body.
type MatchArm struct {
	Loc     Location
	Pattern Pat
	Body    Expr
}

// MatchExpr matches an expression against an ordered list of arms.
type MatchExpr struct {
	Common
	Matched Expr
	Arms    []MatchArm
}

// LambdaParam is a lambda parameter with an optional annotation.
type LambdaParam struct {
	Loc        Location
	Name       Id
	Annotation TypeAnnotation // nil when unannotated
}

// LambdaExpr is a first-class function literal.
type LambdaExpr struct {
	Common
	Parameters []LambdaParam
	Body       Expr
}

// BlockExpr is a sequence of statements followed by an optional final
// expression; with no final expression the block's type is Unit.
type BlockExpr struct {
	Common
	Statements []Stmt
	Final      Expr // nil when the block has no trailing expression
}
