package signature

import (
	"strconv"
	"strings"

	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/intern"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

// checkConformance validates, for every class declared in mod, that
// each inherited interface method is defined with a matching
// signature. Interfaces themselves are not checked: an interface
// member's Body is always nil, so there is nothing to conform.
func checkConformance(mod *ast.Module, interner *intern.Interner, sig *GlobalSignature, sink *diagnostics.Sink) {
	for _, tl := range mod.Toplevels {
		cls, ok := tl.(*ast.ClassDef)
		if !ok {
			continue
		}
		name := interner.Name(cls.Name.Name)
		entry := sig.Types[Key{Module: mod.Handle, Name: name}]
		if entry == nil {
			continue
		}
		checkClassConformance(cls.Loc, entry, sig, sink)
	}
}

func checkClassConformance(classLoc diagnostics.Location, entry *Entry, sig *GlobalSignature, sink *diagnostics.Sink) {
	var missing []string
	for _, superNom := range entry.Supertypes {
		if superNom.Module == entry.Key.Module && superNom.Name == entry.Key.Name {
			continue // self
		}
		supEntry := sig.Types[Key{Module: superNom.Module, Name: superNom.Name}]
		if supEntry == nil || !supEntry.IsInterface {
			continue
		}
		sigma := make(types.Substitution, len(supEntry.TypeParameters))
		for i, p := range supEntry.TypeParameters {
			if i < len(superNom.TypeArguments) {
				sigma[p.Name] = superNom.TypeArguments[i]
			}
		}
		for methodName, required := range supEntry.Methods {
			own, ok := entry.Methods[methodName]
			if !ok {
				missing = append(missing, methodName)
				continue
			}
			checkMemberConformance(entry, methodName, own, required, sigma, sink)
		}
	}
	if len(missing) > 0 {
		sink.Report(diagnostics.Diagnostic{
			Kind:     diagnostics.KindMissingClassMemberDefinitions,
			Location: classLoc,
			Names:    missing,
		})
	}
}

func checkMemberConformance(entry *Entry, methodName string, own, required *MemberSig, siteSigma types.Substitution, sink *diagnostics.Sink) {
	requiredFn := types.SubstFn(required.Fn, siteSigma)

	if len(own.TypeParameters) != len(required.TypeParameters) {
		sink.Report(diagnostics.Diagnostic{
			Kind:        diagnostics.KindTypeParameterNameMismatch,
			Location:    own.DefLoc,
			Name:        methodName,
			ExpectedSig: renderTypeParameters(required.TypeParameters),
		})
		return
	}
	if !types.IsSameTypeParameterSignature(canonicalizeBounds(required.TypeParameters), canonicalizeBounds(own.TypeParameters)) {
		sink.Report(diagnostics.Diagnostic{
			Kind:        diagnostics.KindTypeParameterNameMismatch,
			Location:    own.DefLoc,
			Name:        methodName,
			ExpectedSig: renderTypeParameters(required.TypeParameters),
		})
		return
	}

	if required.Visibility == ast.Public && own.Visibility == ast.Private {
		sink.Report(diagnostics.Diagnostic{
			Kind:         diagnostics.KindIncompatibleTypeKind,
			Location:     own.DefLoc,
			ExpectedKind: "public method",
			ActualKind:   "private method",
		})
		return
	}

	canonReq := canonicalizeFn(requiredFn, required.TypeParameters)
	canonOwn := canonicalizeFn(own.Fn, own.TypeParameters)
	if !types.IsSameType(canonReq, canonOwn) {
		sink.Report(diagnostics.Diagnostic{
			Kind:     diagnostics.KindIncompatibleType,
			Location: own.DefLoc,
			Expected: canonReq.String(),
			Actual:   canonOwn.String(),
		})
	}
}

// canonicalizeFn alpha-renames tps's names to positional sentinels
// ("#0", "#1", ...) throughout fn, so that two signatures declared
// with differently-named (but corresponding) type parameters compare
// equal.
func canonicalizeFn(fn *types.FnType, tps []types.TypeParameterSignature) types.Type {
	sigma := canonicalSigma(tps)
	return types.Subst(fn, sigma)
}

func canonicalizeBounds(tps []types.TypeParameterSignature) []types.TypeParameterSignature {
	sigma := canonicalSigma(tps)
	out := make([]types.TypeParameterSignature, len(tps))
	for i, p := range tps {
		var bound types.Bound
		if p.Bound != nil {
			bound, _ = types.Subst(p.Bound, sigma).(*types.NominalType)
		}
		out[i] = types.TypeParameterSignature{Name: canonicalName(i), Bound: bound}
	}
	return out
}

func canonicalSigma(tps []types.TypeParameterSignature) types.Substitution {
	sigma := make(types.Substitution, len(tps))
	for i, p := range tps {
		sigma[p.Name] = &types.GenericType{Name: canonicalName(i)}
	}
	return sigma
}

func canonicalName(i int) string {
	return "#" + strconv.Itoa(i)
}

func renderTypeParameters(tps []types.TypeParameterSignature) string {
	var b strings.Builder
	b.WriteByte('<')
	for i, p := range tps {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		if p.Bound != nil {
			b.WriteString(": ")
			b.WriteString(p.Bound.String())
		}
	}
	b.WriteByte('>')
	return b.String()
}
