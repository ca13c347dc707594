package checker

import (
	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/signature"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

// checkMatch checks a match expression: the matched expression is
// synthesized with no hint, each arm's pattern binds variant-data
// types into the local environment, and every arm body is checked
// against the outer hint and must agree with the first arm's type.
// Exhaustiveness/reachability delegate to the pattern checker.
func (c *Checker) checkMatch(n *ast.MatchExpr, hint *types.Type) ast.Expr {
	matchedTyped := c.check(n.Matched, nil)
	n.Matched = matchedTyped

	var scrutineeEntry *signature.Entry
	bindType := matchedTyped.InferredType()
	if nominal, ok := c.upperBoundNominal(bindType); ok {
		bindType = nominal
		scrutineeEntry = c.Ctx.LookupEntry(nominal.Module, nominal.Name)
	}

	patterns := make([]ast.Pat, len(n.Arms))
	var firstType types.Type
	for i := range n.Arms {
		arm := &n.Arms[i]
		c.bindPatternType(arm.Pattern, bindType)
		c.Pat.CheckOrPatterns(arm.Pattern)

		bodyTyped := c.check(arm.Body, hint)
		arm.Body = bodyTyped
		if i == 0 {
			firstType = bodyTyped.InferredType()
		} else if !c.Ctx.Assignable(bodyTyped.InferredType(), firstType) {
			c.Sink.Report(diagnostics.Diagnostic{
				Kind: diagnostics.KindIncompatibleType, Location: bodyTyped.Span(),
				Expected: firstType.String(), Actual: bodyTyped.InferredType().String(),
			})
		}
		patterns[i] = arm.Pattern
	}

	c.Pat.CheckMatch(n.Loc, scrutineeEntry, patterns)

	if firstType == nil {
		firstType = unitType(n.Loc)
	}
	n.SetInferredType(firstType.WithReason(types.NewReason(n.Loc)))
	return n
}

// bindPatternType recursively assigns t (and its nested payload types,
// for variant/object patterns) to pat's own type slot and writes every
// binder it introduces into the local environment. Used both for match
// arms and for the Object case of a declaration statement.
func (c *Checker) bindPatternType(pat ast.Pat, t types.Type) {
	pat.SetInferredType(t)
	switch p := pat.(type) {
	case *ast.WildcardPat:
		// no binding
	case *ast.IdentPat:
		c.Ctx.Write(p.Name.Loc, t)
	case *ast.VariantPat:
		nominal, ok := t.(*types.NominalType)
		if !ok {
			return
		}
		tag := c.Interner.Name(p.Tag.Name)
		entry := c.Ctx.LookupEntry(nominal.Module, nominal.Name)
		if entry == nil || entry.TypeDef == nil || entry.TypeDef.Kind != signature.EnumKind {
			c.Sink.Report(diagnostics.Diagnostic{Kind: diagnostics.KindCannotResolveMember, Location: p.Loc, Name: tag})
			return
		}
		sigma := buildSigma(entry.TypeParameters, nominal.TypeArguments)
		for _, v := range entry.TypeDef.Variants {
			if v.Name != tag {
				continue
			}
			for i, sub := range p.SubPatterns {
				if i < len(v.AssociatedData) {
					c.bindPatternType(sub, types.Subst(v.AssociatedData[i], sigma))
				}
			}
		}
	case *ast.TuplePat:
		// The surface grammar has a single scrutinee, so multi-column
		// matches never actually arise; bind every element the same
		// type defensively rather than special-casing it away.
		for _, el := range p.Elements {
			c.bindPatternType(el, t)
		}
	case *ast.ObjectPat:
		nominal, ok := t.(*types.NominalType)
		if !ok {
			return
		}
		entry := c.Ctx.LookupEntry(nominal.Module, nominal.Name)
		if entry == nil || entry.TypeDef == nil || entry.TypeDef.Kind != signature.StructKind {
			return
		}
		sigma := buildSigma(entry.TypeParameters, nominal.TypeArguments)
		for i := range p.Fields {
			f := &p.Fields[i]
			fieldName := c.Interner.Name(f.Field.Name)
			for _, sf := range entry.TypeDef.Fields {
				if sf.Name != fieldName {
					continue
				}
				binder := f.BinderId()
				if !c.fieldAccessible(nominal.Module, nominal.Name, sf.IsPublic) {
					c.Sink.Report(diagnostics.Diagnostic{Kind: diagnostics.KindCannotResolveMember, Location: binder.Loc, Name: fieldName})
					continue
				}
				ft := types.Subst(sf.Type, sigma).WithReason(types.NewReason(binder.Loc))
				f.Type = ft
				c.Ctx.Write(binder.Loc, ft)
			}
		}
	case *ast.OrPat:
		for _, alt := range p.Alternatives {
			c.bindPatternType(alt, t)
		}
	}
}
