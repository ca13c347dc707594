package checker

import (
	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/signature"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

// checkFieldOrMethodAccess checks a FieldAccessExpr produced by the
// parser and disambiguates it: if the name resolves to a method (or,
// for a class-statics object, a static function), the node is
// replaced by a MethodAccessExpr; otherwise it resolves as a struct
// field access.
//
// calleeMode is set when this access is the callee of a CallExpr: a
// method with unsolved type parameters and no explicit type arguments
// is then left with its type parameters as Generic sentinels
// (returned via pending) for the call's own phased inference to solve,
// rather than being reported as under-constrained here.
func (c *Checker) checkFieldOrMethodAccess(
	fa *ast.FieldAccessExpr,
	hint *types.Type,
	calleeMode bool,
	explicitTypeArgs []ast.TypeAnnotation,
) (ast.Expr, types.Type, []types.TypeParameterSignature) {
	objTyped := c.check(fa.Object, nil)
	fa.Object = objTyped
	objType := objTyped.InferredType()
	fieldName := c.Interner.Name(fa.Field.Name)

	nominal, ok := c.upperBoundNominal(objType)
	if !ok {
		c.reportUnresolvedMember(fa.Loc, fieldName)
		any := &types.AnyType{Reason: types.NewReason(fa.Loc)}
		fa.SetInferredType(any)
		return fa, any, nil
	}
	entry := c.Ctx.LookupEntry(nominal.Module, nominal.Name)
	if entry == nil {
		c.reportUnresolvedMember(fa.Loc, fieldName)
		any := &types.AnyType{Reason: types.NewReason(fa.Loc)}
		fa.SetInferredType(any)
		return fa, any, nil
	}

	var memberSig *signature.MemberSig
	if nominal.IsClassStatics {
		memberSig = entry.Functions[fieldName]
	} else {
		memberSig = entry.Methods[fieldName]
	}
	if memberSig != nil {
		fn, pending := c.instantiateMember(entry, nominal, memberSig, fa.Loc, hint, calleeMode, explicitTypeArgs)
		node := &ast.MethodAccessExpr{
			Common:           ast.Common{Loc: fa.Loc, Comment: fa.Comment, Type: fn},
			Object:           objTyped,
			Method:           fa.Field,
			ExplicitTypeArgs: explicitTypeArgs,
		}
		return node, fn, pending
	}

	if !nominal.IsClassStatics && entry.TypeDef != nil {
		for _, f := range entry.TypeDef.Fields {
			if f.Name != fieldName {
				continue
			}
			if !c.fieldAccessible(nominal.Module, nominal.Name, f.IsPublic) {
				c.reportUnresolvedMember(fa.Loc, fieldName)
				any := &types.AnyType{Reason: types.NewReason(fa.Loc)}
				fa.SetInferredType(any)
				return fa, any, nil
			}
			sigma := buildSigma(entry.TypeParameters, nominal.TypeArguments)
			ft := types.Subst(f.Type, sigma).WithReason(types.NewReason(fa.Loc))
			fa.SetInferredType(ft)
			return fa, ft, nil
		}
	}

	c.reportUnresolvedMember(fa.Loc, fieldName)
	any := &types.AnyType{Reason: types.NewReason(fa.Loc)}
	fa.SetInferredType(any)
	return fa, any, nil
}

func (c *Checker) reportUnresolvedMember(loc ast.Location, name string) {
	c.Sink.Report(diagnostics.Diagnostic{Kind: diagnostics.KindCannotResolveMember, Location: loc, Name: name})
}

// instantiateMember substitutes a resolved method/function signature
// at an access site: the class's own type parameters are always
// substituted from nominal's concrete arguments; the member's own type
// parameters are solved from explicit type arguments, left for the
// enclosing call (calleeMode), solved from hint, or reported
// insufficient, in that order.
func (c *Checker) instantiateMember(
	entry *signature.Entry,
	nominal *types.NominalType,
	memberSig *signature.MemberSig,
	loc ast.Location,
	hint *types.Type,
	calleeMode bool,
	explicitTypeArgs []ast.TypeAnnotation,
) (*types.FnType, []types.TypeParameterSignature) {
	classSigma := buildSigma(entry.TypeParameters, nominal.TypeArguments)
	fn := types.SubstFn(memberSig.Fn, classSigma)

	switch {
	case len(explicitTypeArgs) > 0:
		if len(explicitTypeArgs) != len(memberSig.TypeParameters) {
			c.Sink.Report(diagnostics.Diagnostic{
				Kind: diagnostics.KindArityMismatch, Location: loc,
				ArityOf: diagnostics.ArityTypeArguments,
				ExpectedCount: len(memberSig.TypeParameters), ActualCount: len(explicitTypeArgs),
			})
			return fillAnyForAll(fn, memberSig.TypeParameters, loc), nil
		}
		sigma := make(types.Substitution, len(memberSig.TypeParameters))
		for i, p := range memberSig.TypeParameters {
			sigma[p.Name] = c.R.ResolveTypeAnnotation(explicitTypeArgs[i], c.Sink)
		}
		return types.SubstFn(fn, sigma), nil

	case len(memberSig.TypeParameters) == 0:
		return fn, nil

	case calleeMode:
		return fn, memberSig.TypeParameters

	case hint != nil:
		hintFn, ok := (*hint).(*types.FnType)
		if ok && len(hintFn.ArgumentTypes) == len(fn.ArgumentTypes) {
			constraints := buildArgConstraints(fn.ArgumentTypes, hintFn.ArgumentTypes)
			constraints = append(constraints, types.TypeConstraint{Concrete: hintFn.ReturnType, Template: fn.ReturnType})
			sigma, _ := types.Solve(constraints, memberSig.TypeParameters)
			sigma = types.FillUnsolved(sigma, memberSig.TypeParameters, types.NewReason(loc))
			return types.SubstFn(fn, sigma), nil
		}
		c.Sink.Report(diagnostics.Diagnostic{Kind: diagnostics.KindInsufficientTypeInference, Location: loc})
		return fillAnyForAll(fn, memberSig.TypeParameters, loc), nil

	default:
		c.Sink.Report(diagnostics.Diagnostic{Kind: diagnostics.KindInsufficientTypeInference, Location: loc})
		return fillAnyForAll(fn, memberSig.TypeParameters, loc), nil
	}
}
