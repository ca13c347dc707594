package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/intern"
	"github.com/SamChou19815/samlang-sub001/internal/signature"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

func optionEntry(interner *intern.Interner) *signature.Entry {
	return &signature.Entry{
		Key: signature.Key{Name: "Option"},
		TypeDef: &signature.TypeDef{
			Kind: signature.EnumKind,
			Variants: []signature.EnumVariant{
				{Name: "None"},
				{Name: "Some", AssociatedData: []types.Type{&types.PrimType{Kind: types.Int}}},
			},
		},
	}
}

func variantPat(interner *intern.Interner, tag string, subs ...ast.Pat) *ast.VariantPat {
	return &ast.VariantPat{Tag: ast.Id{Name: interner.InternName(tag)}, SubPatterns: subs}
}

func newTestChecker() (*Checker, *intern.Interner, *signature.GlobalSignature) {
	interner := intern.New()
	sig := &signature.GlobalSignature{Types: map[signature.Key]*signature.Entry{}}
	entry := optionEntry(interner)
	sig.Types[entry.Key] = entry
	sink := diagnostics.New(interner)
	return New(sig, interner, sink), interner, sig
}

func TestCheckMatchExhaustive(t *testing.T) {
	c, interner, sig := newTestChecker()
	entry := sig.Types[signature.Key{Name: "Option"}]

	arms := []ast.Pat{
		variantPat(interner, "None"),
		variantPat(interner, "Some", &ast.WildcardPat{}),
	}
	ok := c.CheckMatch(ast.Location{}, entry, arms)
	assert.True(t, ok)
	assert.True(t, c.Sink.Empty())
}

func TestCheckMatchNonExhaustiveReportsWitness(t *testing.T) {
	c, interner, sig := newTestChecker()
	entry := sig.Types[signature.Key{Name: "Option"}]

	arms := []ast.Pat{
		variantPat(interner, "None"),
	}
	ok := c.CheckMatch(ast.Location{}, entry, arms)
	assert.False(t, ok)

	diags := c.Sink.All()
	assert.Len(t, diags, 1)
	assert.Equal(t, diagnostics.KindNonExhaustiveMatch, diags[0].Kind)
	assert.Equal(t, "Some(_)", diags[0].Witness)
}

func TestCheckMatchUselessArmReported(t *testing.T) {
	c, interner, sig := newTestChecker()
	entry := sig.Types[signature.Key{Name: "Option"}]

	arms := []ast.Pat{
		&ast.WildcardPat{},
		variantPat(interner, "Some", &ast.WildcardPat{}),
	}
	ok := c.CheckMatch(ast.Location{}, entry, arms)
	assert.True(t, ok)

	diags := c.Sink.All()
	assert.Len(t, diags, 1)
	assert.Equal(t, diagnostics.KindUselessPattern, diags[0].Kind)
}

func TestCheckMatchNonEnumScrutineeAlwaysExhaustive(t *testing.T) {
	c, _, _ := newTestChecker()
	arms := []ast.Pat{&ast.WildcardPat{}}
	ok := c.CheckMatch(ast.Location{}, nil, arms)
	assert.True(t, ok)
	assert.True(t, c.Sink.Empty())
}
