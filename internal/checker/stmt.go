package checker

import (
	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

// checkStmt checks a `let pattern [: annot] = expr;` declaration
// statement. A present annotation is validated strictly and used as the hint;
// after checking expr, an assignability check runs against it. The
// pattern then binds using expr's own (not the annotation's) type.
func (c *Checker) checkStmt(s ast.Stmt) {
	decl, ok := s.(*ast.DeclarationStmt)
	if !ok {
		return
	}

	var hint *types.Type
	var annotType types.Type
	if decl.Annotation != nil {
		annotType = c.R.ResolveTypeAnnotation(decl.Annotation, c.Sink)
		c.Ctx.ValidateTypeInstantiationStrictly(annotType, decl.Annotation.Span())
		hint = &annotType
	}

	typed := c.check(decl.Expr, hint)
	decl.Expr = typed
	exprType := typed.InferredType()

	if decl.Annotation != nil && !c.Ctx.Assignable(exprType, annotType) {
		c.Sink.Report(diagnostics.Diagnostic{
			Kind: diagnostics.KindIncompatibleType, Location: typed.Span(),
			Expected: annotType.String(), Actual: exprType.String(),
		})
	}

	c.bindPatternType(decl.Pattern, exprType)
}
