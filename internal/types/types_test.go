package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var ignoreReasons = cmp.Options{
	cmpopts.IgnoreFields(PrimType{}, "Reason"),
	cmpopts.IgnoreFields(NominalType{}, "Reason"),
	cmpopts.IgnoreFields(GenericType{}, "Reason"),
	cmpopts.IgnoreFields(FnType{}, "Reason"),
	cmpopts.IgnoreFields(AnyType{}, "Reason"),
}

func TestSubstReplacesGenericArgumentAndReturn(t *testing.T) {
	fn := &FnType{
		ArgumentTypes: []Type{&GenericType{Name: "T"}},
		ReturnType:    &GenericType{Name: "T"},
	}
	sigma := Substitution{"T": &PrimType{Kind: Int}}

	got := SubstFn(fn, sigma)

	want := &FnType{
		ArgumentTypes: []Type{&PrimType{Kind: Int}},
		ReturnType:    &PrimType{Kind: Int},
	}
	if diff := cmp.Diff(want, got, ignoreReasons); diff != "" {
		t.Errorf("SubstFn mismatch (-want +got):\n%s", diff)
	}
}

func TestSubstLeavesUnmentionedGenericAlone(t *testing.T) {
	nom := &NominalType{Name: "Box", TypeArguments: []Type{&GenericType{Name: "U"}}}
	sigma := Substitution{"T": &PrimType{Kind: Bool}}

	got := Subst(nom, sigma)

	if diff := cmp.Diff(Type(nom), got, ignoreReasons); diff != "" {
		t.Errorf("Subst should be a no-op when sigma doesn't mention the nominal's arguments (-want +got):\n%s", diff)
	}
}

func TestSubstRecursesIntoNominalTypeArguments(t *testing.T) {
	nom := &NominalType{Name: "Box", TypeArguments: []Type{&GenericType{Name: "T"}}}
	sigma := Substitution{"T": &NominalType{Name: "Widget"}}

	got := Subst(nom, sigma)

	want := &NominalType{Name: "Box", TypeArguments: []Type{&NominalType{Name: "Widget"}}}
	if diff := cmp.Diff(Type(want), got, ignoreReasons); diff != "" {
		t.Errorf("Subst mismatch (-want +got):\n%s", diff)
	}
}

func TestContainsPlaceholderDetectsUnderconstrainedAny(t *testing.T) {
	fn := &FnType{
		ArgumentTypes: []Type{&AnyType{Underconstrained: true}},
		ReturnType:    &PrimType{Kind: Unit},
	}
	if !ContainsPlaceholder(fn) {
		t.Fatal("expected ContainsPlaceholder to find the underconstrained argument")
	}

	clean := &FnType{
		ArgumentTypes: []Type{&PrimType{Kind: Int}},
		ReturnType:    &PrimType{Kind: Unit},
	}
	if ContainsPlaceholder(clean) {
		t.Fatal("expected ContainsPlaceholder to be false with no placeholders")
	}
}
