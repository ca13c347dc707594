package checker

import (
	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

// checkLambda checks a lambda literal: parameter types come from
// annotations, else the hint's positional types, else an
// under-constrained Any; in synthesis mode with any under-constrained
// parameter the body is skipped in favor of a placeholder shape, since
// a polymorphic outer call may still need to re-check this lambda with
// a sharper hint once more is known.
func (c *Checker) checkLambda(n *ast.LambdaExpr, hint *types.Type) ast.Expr {
	var hintFn *types.FnType
	if hint != nil {
		hintFn, _ = (*hint).(*types.FnType)
	}

	paramTypes := make([]types.Type, len(n.Parameters))
	anyUnderconstrained := false
	for i, p := range n.Parameters {
		switch {
		case p.Annotation != nil:
			paramTypes[i] = c.R.ResolveTypeAnnotation(p.Annotation, c.Sink)
		case hintFn != nil && i < len(hintFn.ArgumentTypes):
			paramTypes[i] = hintFn.ArgumentTypes[i]
		default:
			paramTypes[i] = &types.AnyType{Reason: types.NewReason(p.Loc), Underconstrained: true}
			anyUnderconstrained = true
		}
		c.Ctx.Write(p.Name.Loc, paramTypes[i])
	}

	var bodyType types.Type
	if c.Ctx.InSynthesisMode() && anyUnderconstrained {
		bodyType = c.Ctx.MkPlaceholderType(n.Loc)
	} else {
		var bodyHint *types.Type
		if hintFn != nil {
			bodyHint = &hintFn.ReturnType
		}
		bodyTyped := c.check(n.Body, bodyHint)
		n.Body = bodyTyped
		bodyType = bodyTyped.InferredType()
	}

	n.SetInferredType(&types.FnType{Reason: types.NewReason(n.Loc), ArgumentTypes: paramTypes, ReturnType: bodyType})
	return n
}
