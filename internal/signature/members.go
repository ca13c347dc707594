package signature

import (
	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

// resolveMemberFnType synthesizes the function type of a declared
// member from its parameter list and return-type annotation.
func resolveMemberFnType(r *Resolver, m *ast.MemberDeclaration, sink *diagnostics.Sink) *types.FnType {
	args := make([]types.Type, len(m.Parameters))
	for i, p := range m.Parameters {
		args[i] = r.ResolveTypeAnnotation(p.Annotation, sink)
	}
	ret := r.ResolveTypeAnnotation(m.ReturnType, sink)
	return &types.FnType{Reason: types.NewReason(m.Loc), ArgumentTypes: args, ReturnType: ret}
}

// resolveTypeDefinition resolves a class's struct/enum payload.
func resolveTypeDefinition(r *Resolver, td ast.TypeDefinition, sink *diagnostics.Sink) *TypeDef {
	switch t := td.(type) {
	case *ast.StructDefinition:
		fields := make([]StructField, len(t.Fields))
		for i, f := range t.Fields {
			fieldType := r.ResolveTypeAnnotation(f.Annotation, sink)
			ValidateTypeInstantiationStrictly(r.sig, sink, fieldType, f.Annotation.Span())
			fields[i] = StructField{
				Name:     r.interner.Name(f.Name.Name),
				Type:     fieldType,
				IsPublic: f.IsPublic,
			}
		}
		return &TypeDef{Kind: StructKind, Fields: fields}
	case *ast.EnumDefinition:
		variants := make([]EnumVariant, len(t.Variants))
		for i, v := range t.Variants {
			data := make([]types.Type, len(v.AssociatedData))
			for j, d := range v.AssociatedData {
				data[j] = r.ResolveTypeAnnotation(d, sink)
				ValidateTypeInstantiationStrictly(r.sig, sink, data[j], d.Span())
			}
			variants[i] = EnumVariant{Name: r.interner.Name(v.Name.Name), AssociatedData: data}
		}
		return &TypeDef{Kind: EnumKind, Variants: variants}
	default:
		return nil
	}
}

// addSynthesizedConstructors adds the struct's `init` function (field
// types in declaration order) or, for an enum, one constructor per
// variant taking the variant's associated data types. Variant
// constructors are always public.
func addSynthesizedConstructors(entry *Entry, td ast.TypeDefinition, r *Resolver, sink *diagnostics.Sink) {
	switch t := td.(type) {
	case *ast.StructDefinition:
		args := make([]types.Type, len(t.Fields))
		for i, f := range t.Fields {
			args[i] = r.ResolveTypeAnnotation(f.Annotation, sink)
		}
		entry.Functions["init"] = &MemberSig{
			IsMethod:       false,
			TypeParameters: entry.TypeParameters,
			Fn: &types.FnType{
				Reason:        types.NewReason(t.Loc),
				ArgumentTypes: args,
				ReturnType:    selfNominal(entry, t.Loc),
			},
			DefLoc: t.Loc,
		}
	case *ast.EnumDefinition:
		for _, v := range t.Variants {
			name := r.interner.Name(v.Name.Name)
			args := make([]types.Type, len(v.AssociatedData))
			for i, d := range v.AssociatedData {
				args[i] = r.ResolveTypeAnnotation(d, sink)
			}
			entry.Functions[name] = &MemberSig{
				IsMethod:       false,
				TypeParameters: entry.TypeParameters,
				Fn: &types.FnType{
					Reason:        types.NewReason(v.Loc),
					ArgumentTypes: args,
					ReturnType:    selfNominal(entry, v.Loc),
				},
				DefLoc: v.Loc,
			}
		}
	}
}

func selfNominal(entry *Entry, loc diagnostics.Location) *types.NominalType {
	args := make([]types.Type, len(entry.TypeParameters))
	for i, p := range entry.TypeParameters {
		args[i] = &types.GenericType{Reason: types.NewReason(loc), Name: p.Name}
	}
	return &types.NominalType{
		Reason:        types.NewReason(loc),
		Module:        entry.Key.Module,
		Name:          entry.Key.Name,
		TypeArguments: args,
	}
}
