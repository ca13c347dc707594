package signature

import (
	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/intern"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

// Resolver resolves nominal names visible from one module: its own
// top-levels, its imports, and the built-in root module.
type Resolver struct {
	interner     *intern.Interner
	sig          *GlobalSignature
	module       intern.ModuleID
	importedFrom map[string]intern.ModuleID
}

func NewResolver(interner *intern.Interner, sig *GlobalSignature, mod *ast.Module) *Resolver {
	r := &Resolver{
		interner:     interner,
		sig:          sig,
		module:       mod.Handle,
		importedFrom: make(map[string]intern.ModuleID),
	}
	for _, imp := range mod.Imports {
		for _, member := range imp.MemberNames {
			r.importedFrom[interner.Name(member.Name)] = imp.ImportedMod
		}
	}
	return r
}

// ResolveClassModule resolves a bare class/interface name to the
// module that declares it, searching this module's own top-levels,
// then its imports, then the built-in root module.
func (r *Resolver) ResolveClassModule(name string) (intern.ModuleID, bool) {
	if _, ok := r.sig.Types[Key{Module: r.module, Name: name}]; ok {
		return r.module, true
	}
	if m, ok := r.importedFrom[name]; ok {
		if _, ok := r.sig.Types[Key{Module: m, Name: name}]; ok {
			return m, true
		}
	}
	if _, ok := r.sig.Types[Key{Module: intern.RootModule, Name: name}]; ok {
		return intern.RootModule, true
	}
	return 0, false
}

// ResolveTypeAnnotation converts a surface TypeAnnotation into a
// resolved types.Type, reporting CannotResolveClass/ArityMismatch
// diagnostics as needed: a nominal reference's type-argument arity
// must match the declared parameter count.
func (r *Resolver) ResolveTypeAnnotation(ta ast.TypeAnnotation, sink *diagnostics.Sink) types.Type {
	switch t := ta.(type) {
	case *ast.PrimitiveTypeAnnotation:
		return &types.PrimType{Reason: types.NewReason(t.Loc), Kind: t.Kind}
	case *ast.GenericTypeAnnotation:
		return &types.GenericType{Reason: types.NewReason(t.Loc), Name: r.interner.Name(t.Name.Name)}
	case *ast.NominalTypeAnnotation:
		name := r.interner.Name(t.Name.Name)
		mod, ok := r.ResolveClassModule(name)
		if !ok {
			sink.Report(diagnostics.Diagnostic{Kind: diagnostics.KindCannotResolveClass, Location: t.Loc, Name: name})
			return &types.AnyType{Reason: types.NewReason(t.Loc)}
		}
		args := make([]types.Type, len(t.TypeArguments))
		for i, a := range t.TypeArguments {
			args[i] = r.ResolveTypeAnnotation(a, sink)
		}
		if entry, ok := r.sig.Types[Key{Module: mod, Name: name}]; ok {
			if len(entry.TypeParameters) != len(args) {
				sink.Report(diagnostics.Diagnostic{
					Kind: diagnostics.KindArityMismatch, Location: t.Loc,
					ArityOf: diagnostics.ArityTypeArguments,
					ExpectedCount: len(entry.TypeParameters), ActualCount: len(args),
				})
			}
		}
		return &types.NominalType{Reason: types.NewReason(t.Loc), Module: mod, Name: name, TypeArguments: args}
	case *ast.FnTypeAnnotation:
		args := make([]types.Type, len(t.Parameters))
		for i, p := range t.Parameters {
			args[i] = r.ResolveTypeAnnotation(p, sink)
		}
		ret := r.ResolveTypeAnnotation(t.Return, sink)
		return &types.FnType{Reason: types.NewReason(t.Loc), ArgumentTypes: args, ReturnType: ret}
	default:
		return &types.AnyType{Reason: types.NewReason(diagnostics.Location{Module: r.module})}
	}
}

func (r *Resolver) ResolveTypeParameters(tps []ast.TypeParameter, sink *diagnostics.Sink) []types.TypeParameterSignature {
	out := make([]types.TypeParameterSignature, len(tps))
	for i, tp := range tps {
		var bound *types.NominalType
		if tp.Bound != nil {
			resolved := r.ResolveTypeAnnotation(tp.Bound, sink)
			if nom, ok := resolved.(*types.NominalType); ok {
				bound = nom
			}
		}
		out[i] = types.TypeParameterSignature{Name: r.interner.Name(tp.Name.Name), Bound: bound}
	}
	return out
}
