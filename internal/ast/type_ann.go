package ast

import "github.com/SamChou19815/samlang-sub001/internal/types"

// TypeAnnotation is the surface-syntax type grammar produced by the
// parser: nominal references carry an unresolved Id rather than an
// already-interned module+name pair, since resolution is exactly what
// C5/C7 exist to perform.
type TypeAnnotation interface {
	Node
	isTypeAnnotation()
}

func (*NominalTypeAnnotation) isTypeAnnotation()   {}
func (*GenericTypeAnnotation) isTypeAnnotation()   {}
func (*PrimitiveTypeAnnotation) isTypeAnnotation() {}
func (*FnTypeAnnotation) isTypeAnnotation()        {}

// NominalTypeAnnotation references a class or interface by name,
// optionally instantiated with type arguments.
type NominalTypeAnnotation struct {
	Loc           Location
	Name          Id
	TypeArguments []TypeAnnotation
}

func (t *NominalTypeAnnotation) Span() Location { return t.Loc }

// GenericTypeAnnotation references a type parameter in scope.
type GenericTypeAnnotation struct {
	Loc  Location
	Name Id
}

func (t *GenericTypeAnnotation) Span() Location { return t.Loc }

// PrimitiveTypeAnnotation is one of unit/bool/int.
type PrimitiveTypeAnnotation struct {
	Loc  Location
	Kind types.PrimitiveKind
}

func (t *PrimitiveTypeAnnotation) Span() Location { return t.Loc }

// FnTypeAnnotation is a first-class function type annotation.
type FnTypeAnnotation struct {
	Loc        Location
	Parameters []TypeAnnotation
	Return     TypeAnnotation
}

func (t *FnTypeAnnotation) Span() Location { return t.Loc }

// TypeParameter is a declared type parameter with an optional bound.
type TypeParameter struct {
	Loc   Location
	Name  Id
	Bound *NominalTypeAnnotation // nil when unbounded
}
