package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/intern"
	"github.com/SamChou19815/samlang-sub001/internal/signature"
	"github.com/SamChou19815/samlang-sub001/internal/ssa"
	"github.com/SamChou19815/samlang-sub001/internal/typectx"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

// testContextWithTypeParams builds a bare Context suitable for testing
// helpers that only read Ctx.TypeParams/CurrentClass/Module, with an
// empty signature/SSA result standing in for a real module pass.
func testContextWithTypeParams(tps []types.TypeParameterSignature) *typectx.Context {
	sig := &signature.GlobalSignature{Types: map[signature.Key]*signature.Entry{}}
	interner := intern.New()
	sink := diagnostics.New(interner)
	ssaResult := &ssa.Result{
		UseToDef: make(map[ast.Location]ast.Location),
		Captures: make(map[ast.Location][]ast.Location),
	}
	ctx := typectx.New(sig, interner, sink, ssaResult, intern.RootModule)
	ctx.TypeParams = tps
	return ctx
}

func TestSelfTypeInstantiatesOwnTypeParameters(t *testing.T) {
	entry := &signature.Entry{
		Key:            signature.Key{Module: intern.RootModule, Name: "Box"},
		TypeParameters: []types.TypeParameterSignature{{Name: "T"}},
	}

	got := selfType(entry)
	nom, ok := got.(*types.NominalType)
	assert.True(t, ok)
	assert.Equal(t, "Box", nom.Name)
	assert.Len(t, nom.TypeArguments, 1)
	gt, ok := nom.TypeArguments[0].(*types.GenericType)
	assert.True(t, ok)
	assert.Equal(t, "T", gt.Name)
}

func TestCheckModuleSkipsMembersWithNoBody(t *testing.T) {
	interner := intern.New()
	sig := &signature.GlobalSignature{Types: map[signature.Key]*signature.Entry{}}
	name := interner.InternName("Widget")
	entry := &signature.Entry{
		Key:     signature.Key{Module: intern.RootModule, Name: "Widget"},
		Methods: map[string]*signature.MemberSig{},
	}
	sig.Types[entry.Key] = entry

	mod := &ast.Module{
		Handle: intern.RootModule,
		Toplevels: []ast.Toplevel{
			&ast.ClassDef{
				Name: ast.Id{Name: name},
				Members: []*ast.MemberDeclaration{
					{Name: ast.Id{Name: interner.InternName("declareOnly")}, IsMethod: true, Body: nil},
				},
			},
		},
	}

	sink := diagnostics.New(interner)
	ssaResult := ssa.Analyze(mod, sink, interner)
	c := New(sig, interner, sink, ssaResult, mod)

	assert.NotPanics(t, func() { c.CheckModule(mod) })
	assert.True(t, sink.Empty())
}
