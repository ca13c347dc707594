package ast

// Stmt is a statement inside a block. The only statement shape in the
// grammar is the declaration statement; expression statements are
// represented as a declaration statement binding the wildcard pattern.
type Stmt interface {
	Node
	isStmt()
}

func (*DeclarationStmt) isStmt() {}

// DeclarationStmt is `let pattern [: annot] = expr;`.
type DeclarationStmt struct {
	Loc        Location
	Pattern    Pat
	Annotation TypeAnnotation // nil when no annotation was given
	Expr       Expr
}

func (d *DeclarationStmt) Span() Location { return d.Loc }
