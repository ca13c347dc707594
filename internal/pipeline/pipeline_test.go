package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/intern"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

// buildIdentityModule constructs `class Box { function identity(x: Int): Int = x; }`
// directly as an ast.Module, since nothing in this tree parses source text.
func buildIdentityModule(interner *intern.Interner, handle intern.ModuleID) *ast.Module {
	xName := interner.InternName("x")
	xUse := ast.Id{Name: xName, Loc: ast.Location{Module: handle, Start: ast.Position{Line: 1, Column: 20}}}
	xDef := ast.Id{Name: xName, Loc: ast.Location{Module: handle, Start: ast.Position{Line: 1, Column: 10}}}

	body := &ast.LocalIdExpr{
		Common: ast.Common{Loc: xUse.Loc},
		Name:   xUse,
	}

	method := &ast.MemberDeclaration{
		Loc:        ast.Location{Module: handle},
		IsMethod:   false,
		Name:       ast.Id{Name: interner.InternName("identity")},
		Parameters: []ast.Parameter{{Name: xDef, Annotation: &ast.PrimitiveTypeAnnotation{Kind: types.Int}}},
		ReturnType: &ast.PrimitiveTypeAnnotation{Kind: types.Int},
		Body:       body,
	}

	cls := &ast.ClassDef{
		Loc:     ast.Location{Module: handle},
		Name:    ast.Id{Name: interner.InternName("Box")},
		Members: []*ast.MemberDeclaration{method},
	}

	return &ast.Module{Handle: handle, Toplevels: []ast.Toplevel{cls}}
}

func TestRunChecksSimpleFunctionBody(t *testing.T) {
	interner := intern.New()
	handle := interner.InternModule([]string{"box"})
	mod := buildIdentityModule(interner, handle)

	modules := map[intern.ModuleID]*ast.Module{handle: mod}

	typed, sig, sink, runID, err := Run(context.Background(), modules, interner)
	assert.NoError(t, err)
	assert.NotNil(t, sig)
	assert.True(t, sink.Empty(), sink.PrettyPrint())
	assert.Equal(t, interner.RunID, runID)

	gotMod := typed[handle]
	gotCls := gotMod.Toplevels[0].(*ast.ClassDef)
	gotBody := gotCls.Members[0].Body
	nom, ok := gotBody.InferredType().(*types.PrimType)
	assert.True(t, ok)
	assert.Equal(t, types.Int, nom.Kind)
}
