package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/intern"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

func TestBuildSigmaPositional(t *testing.T) {
	params := []types.TypeParameterSignature{{Name: "T"}, {Name: "U"}}
	args := []types.Type{&types.PrimType{Kind: types.Int}, &types.PrimType{Kind: types.Bool}}

	sigma := buildSigma(params, args)

	assert.Equal(t, args[0], sigma["T"])
	assert.Equal(t, args[1], sigma["U"])
}

func TestBuildSigmaFewerArgsThanParams(t *testing.T) {
	params := []types.TypeParameterSignature{{Name: "T"}, {Name: "U"}}
	args := []types.Type{&types.PrimType{Kind: types.Int}}

	sigma := buildSigma(params, args)

	assert.Equal(t, args[0], sigma["T"])
	_, hasU := sigma["U"]
	assert.False(t, hasU)
}

func TestBuildArgConstraintsTruncatesToShorterSlice(t *testing.T) {
	params := []types.Type{&types.PrimType{Kind: types.Int}, &types.PrimType{Kind: types.Bool}}
	args := []types.Type{&types.PrimType{Kind: types.Int}}

	cs := buildArgConstraints(params, args)

	assert.Len(t, cs, 1)
	assert.Equal(t, args[0], cs[0].Concrete)
	assert.Equal(t, params[0], cs[0].Template)
}

func TestFillAnyForAllMarksUnderconstrained(t *testing.T) {
	fn := &types.FnType{
		ArgumentTypes: []types.Type{&types.GenericType{Name: "T"}},
		ReturnType:    &types.GenericType{Name: "T"},
	}
	tps := []types.TypeParameterSignature{{Name: "T"}}

	out := fillAnyForAll(fn, tps, ast.Location{})

	arg, ok := out.ArgumentTypes[0].(*types.AnyType)
	assert.True(t, ok)
	assert.True(t, arg.Underconstrained)
	ret, ok := out.ReturnType.(*types.AnyType)
	assert.True(t, ok)
	assert.True(t, ret.Underconstrained)
}

func TestUpperBoundNominalPassesThroughNominal(t *testing.T) {
	c := &Checker{}
	nom := &types.NominalType{Module: intern.RootModule, Name: "Widget"}

	got, ok := c.upperBoundNominal(nom)
	assert.True(t, ok)
	assert.Same(t, nom, got)
}

func TestUpperBoundNominalResolvesGenericBound(t *testing.T) {
	bound := &types.NominalType{Module: intern.RootModule, Name: "Comparable"}
	c := &Checker{Ctx: testContextWithTypeParams([]types.TypeParameterSignature{{Name: "T", Bound: bound}})}

	got, ok := c.upperBoundNominal(&types.GenericType{Name: "T"})
	assert.True(t, ok)
	assert.Same(t, bound, got)
}

func TestUpperBoundNominalUnboundedGenericFails(t *testing.T) {
	c := &Checker{Ctx: testContextWithTypeParams([]types.TypeParameterSignature{{Name: "T"}})}

	_, ok := c.upperBoundNominal(&types.GenericType{Name: "T"})
	assert.False(t, ok)
}

func TestFieldAccessiblePublicAlwaysAllowed(t *testing.T) {
	c := &Checker{Ctx: testContextWithTypeParams(nil)}
	assert.True(t, c.fieldAccessible(intern.RootModule, "Other", true))
}

func TestFieldAccessiblePrivateOnlyFromOwnClass(t *testing.T) {
	ctx := testContextWithTypeParams(nil)
	ctx.CurrentClass = "Widget"
	ctx.Module = intern.RootModule
	c := &Checker{Ctx: ctx}

	assert.True(t, c.fieldAccessible(intern.RootModule, "Widget", false))
	assert.False(t, c.fieldAccessible(intern.RootModule, "Other", false))
}

func TestIsEligibleForEarlySynthesis(t *testing.T) {
	assert.True(t, isEligibleForEarlySynthesis(&ast.LiteralExpr{}))
	assert.False(t, isEligibleForEarlySynthesis(&ast.CallExpr{}))

	annotated := &ast.LambdaExpr{
		Parameters: []ast.LambdaParam{{Annotation: &ast.PrimitiveTypeAnnotation{}}},
		Body:       &ast.LiteralExpr{},
	}
	assert.True(t, isEligibleForEarlySynthesis(annotated))

	unannotated := &ast.LambdaExpr{
		Parameters: []ast.LambdaParam{{}},
		Body:       &ast.LiteralExpr{},
	}
	assert.False(t, isEligibleForEarlySynthesis(unannotated))
}
