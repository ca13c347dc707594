package checker

import (
	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

// checkCall implements phased call-argument inference: synthesize the
// callee without a hint, then run the three inference phases over the
// now-concrete Fn shape.
func (c *Checker) checkCall(e *ast.CallExpr, hint *types.Type) ast.Expr {
	calleeTyped, pending := c.checkCallee(e.Callee, e.TypeArgs)
	e.Callee = calleeTyped

	fn, ok := calleeTyped.InferredType().(*types.FnType)
	if !ok {
		if _, calleeIsAny := calleeTyped.InferredType().(*types.AnyType); !calleeIsAny {
			c.Sink.Report(diagnostics.Diagnostic{
				Kind: diagnostics.KindIncompatibleTypeKind, Location: calleeTyped.Span(),
				ExpectedKind: "function", ActualKind: calleeTyped.InferredType().String(),
			})
		}
		e.SetInferredType(&types.AnyType{Reason: types.NewReason(e.Loc), Underconstrained: true})
		return e
	}
	if len(fn.ArgumentTypes) != len(e.Arguments) {
		c.Sink.Report(diagnostics.Diagnostic{
			Kind: diagnostics.KindArityMismatch, Location: e.Loc,
			ArityOf: diagnostics.ArityArguments,
			ExpectedCount: len(fn.ArgumentTypes), ActualCount: len(e.Arguments),
		})
		for i, a := range e.Arguments {
			e.Arguments[i] = c.check(a, nil)
		}
		e.SetInferredType(&types.AnyType{Reason: types.NewReason(e.Loc), Underconstrained: true})
		return e
	}

	argTypes := make([]types.Type, len(e.Arguments))
	deferred := make([]bool, len(e.Arguments))

	// Phase 1: synthesis. Atomic/fully-annotated arguments are checked
	// immediately; the rest are synthesized in synthesis mode and
	// marked for re-checking once more context is available.
	for i, a := range e.Arguments {
		if isEligibleForEarlySynthesis(a) {
			typed := c.check(a, nil)
			e.Arguments[i] = typed
			argTypes[i] = typed.InferredType()
			continue
		}
		deferred[i] = true
		c.Ctx.RunInSynthesisMode(func() {
			typed := c.check(a, nil)
			e.Arguments[i] = typed
			argTypes[i] = typed.InferredType()
		})
	}

	// Phase 2: best-effort. Solve against what's known so far and
	// re-check each deferred argument with a sharper, per-position hint.
	if hasAny(deferred) {
		constraints := buildArgConstraints(fn.ArgumentTypes, argTypes)
		if hint != nil {
			constraints = append(constraints, types.TypeConstraint{Concrete: *hint, Template: fn.ReturnType})
		}
		sigma, _ := types.Solve(constraints, pending)
		for i, a := range e.Arguments {
			if !deferred[i] {
				continue
			}
			paramType := types.Subst(fn.ArgumentTypes[i], sigma)
			positionHint := types.ContextualMeet(&argTypes[i], paramType)
			typed := c.check(a, &positionHint)
			e.Arguments[i] = typed
			argTypes[i] = typed.InferredType()
		}
	}

	// Phase 3: final. Re-solve over the now fully-typed arguments,
	// fill anything still unresolved with under-constrained Any, and
	// validate bounds/assignability.
	constraints := buildArgConstraints(fn.ArgumentTypes, argTypes)
	if hint != nil {
		constraints = append(constraints, types.TypeConstraint{Concrete: *hint, Template: fn.ReturnType})
	}
	sigma, incompatible := types.Solve(constraints, pending)
	for _, ic := range incompatible {
		c.Sink.Report(diagnostics.Diagnostic{
			Kind: diagnostics.KindIncompatibleType, Location: e.Loc,
			Expected: ic.First.String(), Actual: ic.Second.String(),
		})
	}
	sigma = types.FillUnsolved(sigma, pending, types.NewReason(e.Loc))

	for _, p := range pending {
		if p.Bound == nil {
			continue
		}
		solved, ok := sigma[p.Name]
		if !ok {
			continue
		}
		bound := types.Subst(p.Bound, sigma)
		if !c.Ctx.IsSubtype(solved, bound) {
			c.Sink.Report(diagnostics.Diagnostic{
				Kind: diagnostics.KindIncompatibleSubtype, Location: e.Loc,
				ExpectedBound: bound.String(), Actual: solved.String(),
			})
		}
	}

	finalFn := types.SubstFn(fn, sigma)
	for i, a := range e.Arguments {
		if !c.Ctx.Assignable(argTypes[i], finalFn.ArgumentTypes[i]) {
			c.Sink.Report(diagnostics.Diagnostic{
				Kind: diagnostics.KindIncompatibleType, Location: a.Span(),
				Expected: finalFn.ArgumentTypes[i].String(), Actual: argTypes[i].String(),
			})
		}
	}

	e.SetInferredType(finalFn.ReturnType.WithReason(types.NewReason(e.Loc)))
	return e
}

// checkCallee checks a call's callee with no hint, returning the
// still-unsolved type parameters of a disambiguated method/static
// function access for this call's own phased inference to solve.
func (c *Checker) checkCallee(callee ast.Expr, typeArgs []ast.TypeAnnotation) (ast.Expr, []types.TypeParameterSignature) {
	if fa, ok := callee.(*ast.FieldAccessExpr); ok {
		node, _, pending := c.checkFieldOrMethodAccess(fa, nil, true, typeArgs)
		return node, pending
	}
	typed := c.check(callee, nil)
	return typed, nil
}

func hasAny(bs []bool) bool {
	for _, b := range bs {
		if b {
			return true
		}
	}
	return false
}
