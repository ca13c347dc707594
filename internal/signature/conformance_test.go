package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

func fnSig(vis ast.Visibility, args []types.Type, ret types.Type) *MemberSig {
	return &MemberSig{Visibility: vis, IsMethod: true, Fn: &types.FnType{ArgumentTypes: args, ReturnType: ret}}
}

func TestCheckClassConformanceMissingMethod(t *testing.T) {
	iface := &Entry{
		Key:         Key{Name: "Greeter"},
		IsInterface: true,
		Methods: map[string]*MemberSig{
			"greet": fnSig(ast.Public, nil, &types.PrimType{Kind: types.Unit}),
		},
	}
	cls := &Entry{
		Key:        Key{Name: "Impl"},
		Methods:    map[string]*MemberSig{},
		Supertypes: []*types.NominalType{nominal(0, "Impl"), nominal(0, "Greeter")},
	}
	sig := newGlobalSignature()
	sig.Types[iface.Key] = iface
	sig.Types[cls.Key] = cls

	sink := diagnostics.New(nil)
	checkClassConformance(diagnostics.Location{}, cls, sig, sink)

	diags := sink.All()
	assert.Len(t, diags, 1)
	assert.Equal(t, diagnostics.KindMissingClassMemberDefinitions, diags[0].Kind)
	assert.Equal(t, []string{"greet"}, diags[0].Names)
}

func TestCheckClassConformanceSignatureMismatch(t *testing.T) {
	iface := &Entry{
		Key:         Key{Name: "Greeter"},
		IsInterface: true,
		Methods: map[string]*MemberSig{
			"greet": fnSig(ast.Public, nil, &types.PrimType{Kind: types.Int}),
		},
	}
	cls := &Entry{
		Key: Key{Name: "Impl"},
		Methods: map[string]*MemberSig{
			"greet": fnSig(ast.Public, nil, &types.PrimType{Kind: types.Bool}),
		},
		Supertypes: []*types.NominalType{nominal(0, "Impl"), nominal(0, "Greeter")},
	}
	sig := newGlobalSignature()
	sig.Types[iface.Key] = iface
	sig.Types[cls.Key] = cls

	sink := diagnostics.New(nil)
	checkClassConformance(diagnostics.Location{}, cls, sig, sink)

	diags := sink.All()
	assert.Len(t, diags, 1)
	assert.Equal(t, diagnostics.KindIncompatibleType, diags[0].Kind)
}

func TestCheckClassConformancePrivateNarrowing(t *testing.T) {
	iface := &Entry{
		Key:         Key{Name: "Greeter"},
		IsInterface: true,
		Methods: map[string]*MemberSig{
			"greet": fnSig(ast.Public, nil, &types.PrimType{Kind: types.Unit}),
		},
	}
	cls := &Entry{
		Key: Key{Name: "Impl"},
		Methods: map[string]*MemberSig{
			"greet": fnSig(ast.Private, nil, &types.PrimType{Kind: types.Unit}),
		},
		Supertypes: []*types.NominalType{nominal(0, "Impl"), nominal(0, "Greeter")},
	}
	sig := newGlobalSignature()
	sig.Types[iface.Key] = iface
	sig.Types[cls.Key] = cls

	sink := diagnostics.New(nil)
	checkClassConformance(diagnostics.Location{}, cls, sig, sink)

	diags := sink.All()
	assert.Len(t, diags, 1)
	assert.Equal(t, diagnostics.KindIncompatibleTypeKind, diags[0].Kind)
}

func TestCheckClassConformanceOK(t *testing.T) {
	iface := &Entry{
		Key:         Key{Name: "Greeter"},
		IsInterface: true,
		Methods: map[string]*MemberSig{
			"greet": fnSig(ast.Public, nil, &types.PrimType{Kind: types.Unit}),
		},
	}
	cls := &Entry{
		Key: Key{Name: "Impl"},
		Methods: map[string]*MemberSig{
			"greet": fnSig(ast.Public, nil, &types.PrimType{Kind: types.Unit}),
		},
		Supertypes: []*types.NominalType{nominal(0, "Impl"), nominal(0, "Greeter")},
	}
	sig := newGlobalSignature()
	sig.Types[iface.Key] = iface
	sig.Types[cls.Key] = cls

	sink := diagnostics.New(nil)
	checkClassConformance(diagnostics.Location{}, cls, sig, sink)

	assert.True(t, sink.Empty())
}
