package signature

import (
	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

// ValidateTypeInstantiationStrictly reports IncompatibleTypeKind when t
// names an interface used in a position that requires a concrete,
// instantiable type: a member parameter, a struct field, an enum
// variant's associated data, or a `let` annotation. Arity and name
// resolution are already enforced by Resolver.ResolveTypeAnnotation;
// this adds the remaining "non-interface uses reject interface types"
// half.
//
// Positions that are allowed to name an interface — a generic
// parameter's bound, a class's declared `implements`/`extends` list —
// simply never call this check.
func ValidateTypeInstantiationStrictly(sig *GlobalSignature, sink *diagnostics.Sink, t types.Type, loc ast.Location) {
	nom, ok := t.(*types.NominalType)
	if !ok {
		return
	}
	entry := sig.Lookup(nom.Module, nom.Name)
	if entry != nil && entry.IsInterface {
		sink.Report(diagnostics.Diagnostic{
			Kind:         diagnostics.KindIncompatibleTypeKind,
			Location:     loc,
			ExpectedKind: "non-abstract type",
			ActualKind:   "interface",
		})
	}
}
