package ssa

import "github.com/SamChou19815/samlang-sub001/internal/ast"

func (a *analyzer) walkToplevel(tl ast.Toplevel) {
	a.push()
	defer a.pop()

	// Class scopes expose function/method names to each other and to
	// method bodies.
	for _, m := range tl.ToplevelMembers() {
		a.define(m.Name)
	}
	for _, m := range tl.ToplevelMembers() {
		a.walkMember(m)
	}
}

func (a *analyzer) walkMember(m *ast.MemberDeclaration) {
	if m.Body == nil {
		return // interface member signature: no body to walk
	}
	a.push()
	defer a.pop()
	if m.IsMethod {
		a.define(ast.Id{Loc: m.Loc, Name: a.thisID})
	}
	for _, p := range m.Parameters {
		a.define(p.Name)
	}
	a.walkExpr(m.Body)
}

func (a *analyzer) walkExpr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.LiteralExpr:
		// no names
	case *ast.LocalIdExpr:
		a.use(n.Name)
	case *ast.ClassIdExpr:
		// Class references are resolved by the signature builder,
		// not by SSA.
	case *ast.FieldAccessExpr:
		a.walkExpr(n.Object)
	case *ast.MethodAccessExpr:
		a.walkExpr(n.Object)
	case *ast.UnaryExpr:
		a.walkExpr(n.Operand)
	case *ast.CallExpr:
		a.walkExpr(n.Callee)
		for _, arg := range n.Arguments {
			a.walkExpr(arg)
		}
	case *ast.BinaryExpr:
		a.walkExpr(n.Left)
		a.walkExpr(n.Right)
	case *ast.IfElseExpr:
		a.walkExpr(n.Condition)
		a.walkExpr(n.Then)
		a.walkExpr(n.Else)
	case *ast.MatchExpr:
		a.walkExpr(n.Matched)
		for _, arm := range n.Arms {
			a.push()
			a.walkPattern(arm.Pattern)
			a.walkExpr(arm.Body)
			a.pop()
		}
	case *ast.LambdaExpr:
		a.pushLambda(n.Loc)
		for _, p := range n.Parameters {
			a.define(p.Name)
		}
		a.walkExpr(n.Body)
		a.pop()
	case *ast.BlockExpr:
		a.push()
		for _, s := range n.Statements {
			a.walkStmt(s)
		}
		if n.Final != nil {
			a.walkExpr(n.Final)
		}
		a.pop()
	}
}

func (a *analyzer) walkStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.DeclarationStmt:
		a.walkExpr(n.Expr)
		a.walkPattern(n.Pattern)
	}
}

// walkPattern defines the bindings a pattern introduces into the
// current frame. For or-patterns, every alternative's bindings are
// unioned in; well-formedness (identical names/types across
// alternatives) is the pattern checker's job, not SSA's.
func (a *analyzer) walkPattern(p ast.Pat) {
	switch n := p.(type) {
	case *ast.WildcardPat:
		// no binding
	case *ast.IdentPat:
		a.define(n.Name)
	case *ast.VariantPat:
		for _, sub := range n.SubPatterns {
			a.walkPattern(sub)
		}
	case *ast.TuplePat:
		for _, sub := range n.Elements {
			a.walkPattern(sub)
		}
	case *ast.ObjectPat:
		for _, f := range n.Fields {
			if f.Alias != nil {
				a.define(*f.Alias)
			} else {
				a.define(f.Field)
			}
		}
	case *ast.OrPat:
		// Alternatives are mutually exclusive, so the same name bound
		// by two different alternatives is not a collision (binding
		// *consistency* across alternatives is the pattern checker's
		// job); a name bound twice *within* one alternative still is.
		target := a.scope
		for _, alt := range n.Alternatives {
			a.push()
			a.walkPattern(alt)
			for name, loc := range a.scope.binders {
				target.binders[name] = loc
			}
			a.pop()
		}
	}
}
