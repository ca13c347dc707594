package checker

import (
	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/intern"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

func boolType(loc ast.Location) types.Type {
	return &types.PrimType{Reason: types.NewReason(loc), Kind: types.Bool}
}

func intType(loc ast.Location) types.Type {
	return &types.PrimType{Reason: types.NewReason(loc), Kind: types.Int}
}

func stringType(loc ast.Location) types.Type {
	return &types.NominalType{Reason: types.NewReason(loc), Module: intern.RootModule, Name: "String"}
}

func unitType(loc ast.Location) types.Type {
	return &types.PrimType{Reason: types.NewReason(loc), Kind: types.Unit}
}

// buildSigma pairs declared type parameters positionally with concrete
// arguments, used both for a class's own generics (instantiated by a
// nominal type's TypeArguments) and, in the pattern binder, for an
// enum's generics.
func buildSigma(params []types.TypeParameterSignature, args []types.Type) types.Substitution {
	sigma := make(types.Substitution, len(params))
	for i, p := range params {
		if i < len(args) {
			sigma[p.Name] = args[i]
		}
	}
	return sigma
}

func buildArgConstraints(paramTypes, argTypes []types.Type) []types.TypeConstraint {
	n := len(paramTypes)
	if len(argTypes) < n {
		n = len(argTypes)
	}
	cs := make([]types.TypeConstraint, n)
	for i := 0; i < n; i++ {
		cs[i] = types.TypeConstraint{Concrete: argTypes[i], Template: paramTypes[i]}
	}
	return cs
}

// fillAnyForAll substitutes every one of tps with an under-constrained
// Any, used when a method's own type parameters can't be solved (arity
// mismatch on explicit type arguments, or no hint available at all).
func fillAnyForAll(fn *types.FnType, tps []types.TypeParameterSignature, loc ast.Location) *types.FnType {
	sigma := make(types.Substitution, len(tps))
	for _, p := range tps {
		sigma[p.Name] = &types.AnyType{Reason: types.NewReason(loc), Underconstrained: true}
	}
	return types.SubstFn(fn, sigma)
}

// upperBoundNominal resolves t to the nominal type used to look up its
// members: itself if t is already Nominal, or its declared bound if t
// is a Generic type parameter in scope.
func (c *Checker) upperBoundNominal(t types.Type) (*types.NominalType, bool) {
	switch v := t.(type) {
	case *types.NominalType:
		return v, true
	case *types.GenericType:
		for _, p := range c.Ctx.TypeParams {
			if p.Name == v.Name && p.Bound != nil {
				return p.Bound, true
			}
		}
		return nil, false
	default:
		return nil, false
	}
}

// fieldAccessible reports whether a field declared IsPublic in the
// class (module, className) may be read from the member currently
// being checked: private fields are only accessible from inside their
// own defining class.
func (c *Checker) fieldAccessible(module intern.ModuleID, className string, isPublic bool) bool {
	return isPublic || (c.Ctx.CurrentClass == className && c.Ctx.Module == module)
}

// isEligibleForEarlySynthesis implements the "check without hint"
// eligibility predicate used to pick which call arguments are checked
// in phase one versus deferred to later phases.
func isEligibleForEarlySynthesis(e ast.Expr) bool {
	switch n := e.(type) {
	case *ast.LiteralExpr, *ast.LocalIdExpr, *ast.ClassIdExpr,
		*ast.FieldAccessExpr, *ast.MethodAccessExpr, *ast.UnaryExpr, *ast.BinaryExpr:
		return true
	case *ast.IfElseExpr:
		return isEligibleForEarlySynthesis(n.Condition) &&
			isEligibleForEarlySynthesis(n.Then) &&
			isEligibleForEarlySynthesis(n.Else)
	case *ast.MatchExpr:
		for _, arm := range n.Arms {
			if !isEligibleForEarlySynthesis(arm.Body) {
				return false
			}
		}
		return true
	case *ast.LambdaExpr:
		for _, p := range n.Parameters {
			if p.Annotation == nil {
				return false
			}
		}
		return isEligibleForEarlySynthesis(n.Body)
	case *ast.BlockExpr:
		if n.Final == nil {
			return true
		}
		return isEligibleForEarlySynthesis(n.Final)
	default:
		return false // Calls are never eligible: they may depend on outer inference.
	}
}
