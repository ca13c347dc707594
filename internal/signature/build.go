package signature

import (
	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/intern"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

// Build constructs the GlobalSignature for a batch of modules. It
// loads the built-in root module first, then folds in every user
// module in four passes:
//  1. register every top-level's bare Key + declared type parameters,
//     so forward/cross-module references resolve regardless of order;
//  2. resolve each declaration's own members, type definition, and
//     declared supertype list against the now-complete key set;
//  3. compute each entry's transitive supertype closure, detecting
//     cycles;
//  4. validate member conformance against the now-fully-inlined
//     inherited signatures.
func Build(modules map[intern.ModuleID]*ast.Module, interner *intern.Interner, sink *diagnostics.Sink) (*GlobalSignature, error) {
	sig := newGlobalSignature()
	if err := LoadBuiltins(sig); err != nil {
		return nil, err
	}

	for _, mod := range modules {
		registerKeys(mod, interner, sig, sink)
	}
	for _, mod := range modules {
		resolveDeclarations(mod, interner, sig, sink)
	}
	computeAllClosures(sig, sink)
	for _, mod := range modules {
		checkConformance(mod, interner, sig, sink)
	}
	return sig, nil
}

// registerKeys is pass 1: every top-level gets an Entry with its Key
// and declared type parameters (needed to validate arity before any
// cross-reference is resolved), and a name collision within the same
// module drops the later declaration.
func registerKeys(mod *ast.Module, interner *intern.Interner, sig *GlobalSignature, sink *diagnostics.Sink) {
	r := NewResolver(interner, sig, mod)
	for _, tl := range mod.Toplevels {
		name := interner.Name(tl.ToplevelName().Name)
		key := Key{Module: mod.Handle, Name: name}
		if _, exists := sig.Types[key]; exists {
			sink.Report(diagnostics.Diagnostic{Kind: diagnostics.KindCollision, Location: tl.Span(), Name: name})
			continue
		}
		_, isInterface := tl.(*ast.InterfaceDef)
		sig.Types[key] = &Entry{
			Key:            key,
			IsInterface:    isInterface,
			TypeParameters: r.ResolveTypeParameters(tl.ToplevelTypeParameters(), sink),
			Functions:      make(map[string]*MemberSig),
			Methods:        make(map[string]*MemberSig),
		}
	}
}

// resolveDeclarations is pass 2.
func resolveDeclarations(mod *ast.Module, interner *intern.Interner, sig *GlobalSignature, sink *diagnostics.Sink) {
	r := NewResolver(interner, sig, mod)
	for _, tl := range mod.Toplevels {
		name := interner.Name(tl.ToplevelName().Name)
		entry := sig.Types[Key{Module: mod.Handle, Name: name}]
		if entry == nil {
			continue // dropped by a collision in pass 1
		}
		// Declared supertypes are resolved right away: r already has
		// this module's import context, and the entry's own type
		// parameters (used as Generic type arguments in e.g. `class
		// Foo<T> implements Bar<T>`) were registered in pass 1.
		for _, sup := range tl.ToplevelExtendsOrImplements() {
			resolved := r.ResolveTypeAnnotation(sup, sink)
			if nom, ok := resolved.(*types.NominalType); ok {
				entry.DeclaredSupers = append(entry.DeclaredSupers, nom)
			}
		}

		for _, m := range tl.ToplevelMembers() {
			memberName := interner.Name(m.Name.Name)
			if entry.IsInterface && !m.IsMethod {
				sink.Report(diagnostics.Diagnostic{Kind: diagnostics.KindIllegalFunctionInInterface, Location: m.Loc})
				continue
			}
			memberSig := &MemberSig{
				Visibility:     m.Visibility,
				IsMethod:       m.IsMethod,
				TypeParameters: r.ResolveTypeParameters(m.TypeParameters, sink),
				DefLoc:         m.Loc,
				Fn:             resolveMemberFnType(r, m, sink),
			}
			if m.IsMethod {
				entry.Methods[memberName] = memberSig
			} else {
				entry.Functions[memberName] = memberSig
			}
		}
		if cls, ok := tl.(*ast.ClassDef); ok && cls.TypeDefinition != nil {
			entry.TypeDef = resolveTypeDefinition(r, cls.TypeDefinition, sink)
			addSynthesizedConstructors(entry, cls.TypeDefinition, r, sink)
		}
	}
}
