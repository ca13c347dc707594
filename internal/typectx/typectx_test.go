package typectx

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/intern"
	"github.com/SamChou19815/samlang-sub001/internal/signature"
	"github.com/SamChou19815/samlang-sub001/internal/ssa"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

func newTestContext() *Context {
	sig := &signature.GlobalSignature{Types: map[signature.Key]*signature.Entry{}}
	interner := intern.New()
	sink := diagnostics.New(interner)
	ssaResult := &ssa.Result{
		UseToDef: make(map[ast.Location]ast.Location),
		Captures: make(map[ast.Location][]ast.Location),
	}
	return New(sig, interner, sink, ssaResult, intern.RootModule)
}

func TestReadWriteRoundTrip(t *testing.T) {
	c := newTestContext()
	loc := ast.Location{Start: ast.Position{Line: 1, Column: 1}}
	intT := &types.PrimType{Kind: types.Int}

	c.Write(loc, intT)
	assert.Equal(t, intT, c.Read(loc))
}

func TestReadUnwrittenIsAny(t *testing.T) {
	c := newTestContext()
	loc := ast.Location{Start: ast.Position{Line: 2, Column: 1}}

	got := c.Read(loc)
	_, ok := got.(*types.AnyType)
	assert.True(t, ok)
}

func TestRunInSynthesisModeRestoresPreviousFlag(t *testing.T) {
	c := newTestContext()
	assert.False(t, c.InSynthesisMode())

	var insideValue bool
	c.RunInSynthesisMode(func() {
		insideValue = c.InSynthesisMode()
	})
	assert.True(t, insideValue)
	assert.False(t, c.InSynthesisMode())
}

func TestRunInSynthesisModeNestedRestoresOuterTrue(t *testing.T) {
	c := newTestContext()
	c.RunInSynthesisMode(func() {
		assert.True(t, c.InSynthesisMode())
		c.RunInSynthesisMode(func() {
			assert.True(t, c.InSynthesisMode())
		})
		assert.True(t, c.InSynthesisMode(), "nested call must restore the outer true, not flip to false")
	})
	assert.False(t, c.InSynthesisMode())
}

func TestClassExistsAndLookupEntry(t *testing.T) {
	c := newTestContext()
	entry := &signature.Entry{Key: signature.Key{Module: intern.RootModule, Name: "Widget"}}
	c.Sig.Types[entry.Key] = entry

	assert.True(t, c.ClassExists(intern.RootModule, "Widget"))
	assert.False(t, c.ClassExists(intern.RootModule, "Missing"))
	assert.Same(t, entry, c.LookupEntry(intern.RootModule, "Widget"))
}

func TestGetCapturedDelegatesToSSA(t *testing.T) {
	c := newTestContext()
	lambdaLoc := ast.Location{Start: ast.Position{Line: 3, Column: 1}}
	captureLoc := ast.Location{Start: ast.Position{Line: 1, Column: 1}}
	c.SSA.Captures[lambdaLoc] = []ast.Location{captureLoc}

	assert.Equal(t, []ast.Location{captureLoc}, c.GetCaptured(lambdaLoc))
}
