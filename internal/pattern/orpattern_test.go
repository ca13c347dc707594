package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

func TestCheckOrPatternsConsistentBindings(t *testing.T) {
	c, interner, _ := newTestChecker()
	intT := &types.PrimType{Kind: types.Int}

	left := &ast.IdentPat{Name: ast.Id{Name: interner.InternName("x")}}
	left.SetInferredType(intT)
	right := &ast.IdentPat{Name: ast.Id{Name: interner.InternName("x")}}
	right.SetInferredType(intT)

	or := &ast.OrPat{Alternatives: []ast.Pat{left, right}}
	bindings := c.CheckOrPatterns(or)

	assert.True(t, c.Sink.Empty())
	assert.Len(t, bindings, 1)
}

func TestCheckOrPatternsInconsistentBindingsReported(t *testing.T) {
	c, interner, _ := newTestChecker()
	intT := &types.PrimType{Kind: types.Int}

	left := &ast.IdentPat{Name: ast.Id{Name: interner.InternName("x")}}
	left.SetInferredType(intT)
	right := &ast.IdentPat{Name: ast.Id{Name: interner.InternName("y")}}
	right.SetInferredType(intT)

	or := &ast.OrPat{Alternatives: []ast.Pat{left, right}}
	c.CheckOrPatterns(or)

	diags := c.Sink.All()
	assert.Len(t, diags, 1)
	assert.Equal(t, diagnostics.KindOrPatternInconsistentBindings, diags[0].Kind)
}

func TestCheckOrPatternsRepeatedVariantTagUseless(t *testing.T) {
	c, interner, _ := newTestChecker()

	or := &ast.OrPat{Alternatives: []ast.Pat{
		variantPat(interner, "None"),
		variantPat(interner, "None"),
	}}
	c.CheckOrPatterns(or)

	diags := c.Sink.All()
	assert.Len(t, diags, 1)
	assert.Equal(t, diagnostics.KindUselessPattern, diags[0].Kind)
}
