// Package signature builds the cross-module global signature:
// per-module declarations joined into a signature table, transitive
// supertypes with cycle detection, and member conformance validation
// against inherited signatures.
package signature

import (
	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/intern"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

// Key identifies a top-level declaration across modules.
type Key struct {
	Module intern.ModuleID
	Name   string
}

// MemberSig is a function or method's resolved signature.
type MemberSig struct {
	Visibility     ast.Visibility
	IsMethod       bool
	TypeParameters []types.TypeParameterSignature
	Fn             *types.FnType
	DefLoc         ast.Location
}

// TypeDefKind distinguishes struct vs enum payloads.
type TypeDefKind int

const (
	NoTypeDef TypeDefKind = iota
	StructKind
	EnumKind
)

// StructField is one resolved struct field.
type StructField struct {
	Name     string
	Type     types.Type
	IsPublic bool
}

// EnumVariant is one resolved enum variant.
type EnumVariant struct {
	Name           string
	AssociatedData []types.Type
}

// TypeDef is the resolved struct/enum payload of a class.
type TypeDef struct {
	Kind     TypeDefKind
	Fields   []StructField // when Kind == StructKind
	Variants []EnumVariant // when Kind == EnumKind
}

// Entry is a fully-resolved class or interface entry: its own
// declared parameters, its function/method maps (an interface's
// Methods also hold every inherited method; a class's maps hold only
// its own members), and its transitive supertype list including
// itself, so subtype checks reduce to list membership.
type Entry struct {
	Key            Key
	IsInterface    bool
	TypeParameters []types.TypeParameterSignature
	Functions      map[string]*MemberSig
	Methods        map[string]*MemberSig
	// Supertypes is expressed with TypeArguments equal to this entry's
	// own declared type parameters (as Generic references), so a call
	// site substitutes its concrete instantiation through before using
	// the list for a subtype check.
	Supertypes     []*types.NominalType
	DeclaredSupers []*types.NominalType
	TypeDef        *TypeDef // nil for interfaces and payload-less classes
}

// Supertypes implements types.SupertypeLister over a GlobalSignature:
// Entry.Supertypes is stored generically, parameterized by the
// entry's own declared type parameters, so it is substituted here
// using sub's concrete type arguments before being handed back.
func (g *GlobalSignature) Supertypes(sub *types.NominalType) []*types.NominalType {
	e, ok := g.Types[Key{Module: sub.Module, Name: sub.Name}]
	if !ok {
		return nil
	}
	if len(e.TypeParameters) != len(sub.TypeArguments) {
		return e.Supertypes
	}
	sigma := make(types.Substitution, len(e.TypeParameters))
	for i, p := range e.TypeParameters {
		sigma[p.Name] = sub.TypeArguments[i]
	}
	out := make([]*types.NominalType, len(e.Supertypes))
	for i, s := range e.Supertypes {
		out[i] = types.Subst(s, sigma).(*types.NominalType)
	}
	return out
}

// GlobalSignature maps every (module, name) to its fully-resolved
// Entry.
type GlobalSignature struct {
	Types map[Key]*Entry
}

func newGlobalSignature() *GlobalSignature {
	return &GlobalSignature{Types: make(map[Key]*Entry)}
}

// Lookup resolves a nominal name within a module, returning nil if
// undeclared.
func (g *GlobalSignature) Lookup(module intern.ModuleID, name string) *Entry {
	return g.Types[Key{Module: module, Name: name}]
}

// ctx bundles the interner, sink and signature shared by the build
// passes; Build and its passes take them as separate parameters.
type ctx struct {
	interner *intern.Interner
	sink     *diagnostics.Sink
	sig      *GlobalSignature
}
