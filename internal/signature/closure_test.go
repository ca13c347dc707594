package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/intern"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

func nominal(module intern.ModuleID, name string, args ...types.Type) *types.NominalType {
	return &types.NominalType{Module: module, Name: name, TypeArguments: args}
}

func TestComputeAllClosuresLinearChain(t *testing.T) {
	sig := newGlobalSignature()
	sig.Types[Key{Name: "Base"}] = &Entry{Key: Key{Name: "Base"}, Methods: map[string]*MemberSig{
		"greet": {Fn: &types.FnType{ReturnType: &types.PrimType{Kind: types.Unit}}},
	}}
	sig.Types[Key{Name: "Mid"}] = &Entry{
		Key:            Key{Name: "Mid"},
		IsInterface:    true,
		Methods:        map[string]*MemberSig{},
		DeclaredSupers: []*types.NominalType{nominal(0, "Base")},
	}
	sig.Types[Key{Name: "Top"}] = &Entry{
		Key:            Key{Name: "Top"},
		IsInterface:    true,
		Methods:        map[string]*MemberSig{},
		DeclaredSupers: []*types.NominalType{nominal(0, "Mid")},
	}

	sink := diagnostics.New(nil)
	computeAllClosures(sig, sink)

	assert.True(t, sink.Empty())

	top := sig.Types[Key{Name: "Top"}]
	names := make([]string, len(top.Supertypes))
	for i, s := range top.Supertypes {
		names[i] = s.Name
	}
	assert.ElementsMatch(t, []string{"Top", "Mid", "Base"}, names)

	// Interfaces fully inline inherited methods.
	_, hasGreet := top.Methods["greet"]
	assert.True(t, hasGreet, "Top should inherit Base's greet method through Mid")
}

func TestComputeAllClosuresCycleReported(t *testing.T) {
	sig := newGlobalSignature()
	sig.Types[Key{Name: "A"}] = &Entry{
		Key:            Key{Name: "A"},
		IsInterface:    true,
		Methods:        map[string]*MemberSig{},
		DeclaredSupers: []*types.NominalType{{Name: "B", Reason: types.NewReason(diagnostics.Location{})}},
	}
	sig.Types[Key{Name: "B"}] = &Entry{
		Key:            Key{Name: "B"},
		IsInterface:    true,
		Methods:        map[string]*MemberSig{},
		DeclaredSupers: []*types.NominalType{{Name: "A", Reason: types.NewReason(diagnostics.Location{})}},
	}

	sink := diagnostics.New(nil)
	computeAllClosures(sig, sink)

	diags := sink.All()
	assert.Len(t, diags, 1)
	assert.Equal(t, diagnostics.KindCyclicTypeDefinition, diags[0].Kind)
}
