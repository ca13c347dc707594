package types

import (
	"strings"

	"github.com/SamChou19815/samlang-sub001/internal/intern"
)

// PrimitiveKind enumerates the non-nominal built-in scalar kinds.
type PrimitiveKind int

const (
	Unit PrimitiveKind = iota
	Bool
	Int
)

func (p PrimitiveKind) String() string {
	switch p {
	case Unit:
		return "unit"
	case Bool:
		return "bool"
	case Int:
		return "int"
	default:
		return "?"
	}
}

// Type is the internal type language: Any, Primitive, Nominal,
// Generic, Fn. It is a closed sum type: every variant below
// implements isType() so a type switch on Type is exhaustive by
// construction (the same "sum type via marker method" idiom the
// teacher uses for type_system.Type).
//
//sumtype:decl
type Type interface {
	isType()
	GetReason() Reason
	WithReason(Reason) Type
	String() string
}

func (*AnyType) isType()     {}
func (*PrimType) isType()    {}
func (*NominalType) isType() {}
func (*GenericType) isType() {}
func (*FnType) isType()      {}

// AnyType is the error/placeholder type. Underconstrained marks a
// placeholder the checker produced where it could not decide a type:
// an unsolved type parameter, an unannotated lambda parameter with no
// hint, or the result of a call whose callee or arity was wrong.
// ContainsPlaceholder reports whether a type mentions one.
type AnyType struct {
	Reason           Reason
	Underconstrained bool
}

func (t *AnyType) GetReason() Reason { return t.Reason }
func (t *AnyType) WithReason(r Reason) Type {
	cp := *t
	cp.Reason = r
	return &cp
}
func (t *AnyType) String() string { return "Any" }

// PrimType is one of unit, bool, int.
type PrimType struct {
	Reason Reason
	Kind   PrimitiveKind
}

func (t *PrimType) GetReason() Reason { return t.Reason }
func (t *PrimType) WithReason(r Reason) Type {
	cp := *t
	cp.Reason = r
	return &cp
}
func (t *PrimType) String() string { return t.Kind.String() }

// NominalType is both an ordinary type reference and a "class object"
// handle (IsClassStatics distinguishes the two).
type NominalType struct {
	Reason          Reason
	IsClassStatics  bool
	Module          intern.ModuleID
	Name            string
	TypeArguments   []Type
}

func (t *NominalType) GetReason() Reason { return t.Reason }
func (t *NominalType) WithReason(r Reason) Type {
	cp := *t
	cp.Reason = r
	return &cp
}
func (t *NominalType) String() string {
	if len(t.TypeArguments) == 0 {
		return t.Name
	}
	parts := make([]string, len(t.TypeArguments))
	for i, a := range t.TypeArguments {
		parts[i] = a.String()
	}
	return t.Name + "<" + strings.Join(parts, ", ") + ">"
}

// GenericType is a free type parameter reference.
type GenericType struct {
	Reason Reason
	Name   string
}

func (t *GenericType) GetReason() Reason { return t.Reason }
func (t *GenericType) WithReason(r Reason) Type {
	cp := *t
	cp.Reason = r
	return &cp
}
func (t *GenericType) String() string { return t.Name }

// FnType is a first-class function type.
type FnType struct {
	Reason        Reason
	ArgumentTypes []Type
	ReturnType    Type
}

func (t *FnType) GetReason() Reason { return t.Reason }
func (t *FnType) WithReason(r Reason) Type {
	cp := *t
	cp.Reason = r
	return &cp
}
func (t *FnType) String() string {
	parts := make([]string, len(t.ArgumentTypes))
	for i, a := range t.ArgumentTypes {
		parts[i] = a.String()
	}
	return "(" + strings.Join(parts, ", ") + ") -> " + t.ReturnType.String()
}

// Bound is a nominal interface type every instantiation of a type
// parameter must be a subtype of.
type Bound = *NominalType

// TypeParameterSignature is a declared type parameter together with
// its optional bound.
type TypeParameterSignature struct {
	Name  string
	Bound Bound
}

// FunctionTypeSignature is a function's declared type parameters plus
// its Fn shape. The global signature keeps the same pair in its own
// signature.MemberSig instead.
type FunctionTypeSignature struct {
	TypeParameters []TypeParameterSignature
	Type           *FnType
}
