package checker

import (
	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

// check is the main bidirectional entry point: each expression kind is
// checked against an optional hint, and the result is a typed
// expression (occasionally a different concrete node, for the
// field-access/method-access disambiguation) with its own type slot
// filled.
func (c *Checker) check(e ast.Expr, hint *types.Type) ast.Expr {
	switch n := e.(type) {
	case *ast.LiteralExpr:
		return c.checkLiteral(n)
	case *ast.LocalIdExpr:
		return c.checkLocalId(n)
	case *ast.ClassIdExpr:
		return c.checkClassId(n)
	case *ast.FieldAccessExpr:
		node, _, _ := c.checkFieldOrMethodAccess(n, hint, false, nil)
		return node
	case *ast.UnaryExpr:
		return c.checkUnary(n)
	case *ast.CallExpr:
		return c.checkCall(n, hint)
	case *ast.BinaryExpr:
		return c.checkBinary(n)
	case *ast.IfElseExpr:
		return c.checkIfElse(n, hint)
	case *ast.MatchExpr:
		return c.checkMatch(n, hint)
	case *ast.LambdaExpr:
		return c.checkLambda(n, hint)
	case *ast.BlockExpr:
		return c.checkBlock(n, hint)
	default:
		return e
	}
}

func (c *Checker) checkLiteral(n *ast.LiteralExpr) ast.Expr {
	switch n.Kind {
	case ast.LitBool:
		n.SetInferredType(boolType(n.Loc))
	case ast.LitInt:
		n.SetInferredType(intType(n.Loc))
	case ast.LitString:
		n.SetInferredType(stringType(n.Loc))
	}
	return n
}

func (c *Checker) checkLocalId(n *ast.LocalIdExpr) ast.Expr {
	defLoc, ok := c.Ctx.UseDef(n.Name.Loc)
	if !ok {
		n.SetInferredType(&types.AnyType{Reason: types.NewReason(n.Loc)})
		return n
	}
	n.SetInferredType(c.Ctx.Read(defLoc))
	return n
}

func (c *Checker) checkClassId(n *ast.ClassIdExpr) ast.Expr {
	name := c.Interner.Name(n.Name.Name)
	mod, ok := c.R.ResolveClassModule(name)
	if !ok {
		c.Sink.Report(diagnostics.Diagnostic{Kind: diagnostics.KindCannotResolveClass, Location: n.Loc, Name: name})
		n.SetInferredType(&types.AnyType{Reason: types.NewReason(n.Loc)})
		return n
	}
	n.SetInferredType(&types.NominalType{
		Reason: types.NewReason(n.Loc), IsClassStatics: true, Module: mod, Name: name,
	})
	return n
}

func (c *Checker) checkUnary(n *ast.UnaryExpr) ast.Expr {
	var expected types.Type
	switch n.Op {
	case ast.Not:
		expected = boolType(n.Operand.Span())
	case ast.Neg:
		expected = intType(n.Operand.Span())
	}
	operand := c.check(n.Operand, &expected)
	n.Operand = operand
	if !c.Ctx.Assignable(operand.InferredType(), expected) {
		c.Sink.Report(diagnostics.Diagnostic{
			Kind: diagnostics.KindIncompatibleType, Location: operand.Span(),
			Expected: expected.String(), Actual: operand.InferredType().String(),
		})
	}
	n.SetInferredType(expected.WithReason(types.NewReason(n.Loc)))
	return n
}

func (c *Checker) checkBinary(n *ast.BinaryExpr) ast.Expr {
	switch n.Op {
	case ast.Mul, ast.Div, ast.Mod, ast.Add, ast.Sub:
		return c.checkBinaryFixed(n, intType, intType)
	case ast.Lt, ast.Le, ast.Gt, ast.Ge:
		return c.checkBinaryFixed(n, intType, boolType)
	case ast.And, ast.Or:
		return c.checkBinaryFixed(n, boolType, boolType)
	case ast.Concat:
		return c.checkBinaryFixed(n, stringType, stringType)
	case ast.Eq, ast.Ne:
		left := c.check(n.Left, nil)
		n.Left = left
		leftType := left.InferredType()
		right := c.check(n.Right, &leftType)
		n.Right = right
		n.SetInferredType(boolType(n.Loc))
		return n
	default:
		n.SetInferredType(&types.AnyType{Reason: types.NewReason(n.Loc)})
		return n
	}
}

// checkBinaryFixed handles every operator whose operand type is fixed
// regardless of context (arithmetic/comparison/logical/concat).
func (c *Checker) checkBinaryFixed(n *ast.BinaryExpr, operand func(ast.Location) types.Type, result func(ast.Location) types.Type) ast.Expr {
	expected := operand(n.Loc)
	left := c.check(n.Left, &expected)
	n.Left = left
	if !c.Ctx.Assignable(left.InferredType(), expected) {
		c.Sink.Report(diagnostics.Diagnostic{
			Kind: diagnostics.KindIncompatibleType, Location: left.Span(),
			Expected: expected.String(), Actual: left.InferredType().String(),
		})
	}
	right := c.check(n.Right, &expected)
	n.Right = right
	if !c.Ctx.Assignable(right.InferredType(), expected) {
		c.Sink.Report(diagnostics.Diagnostic{
			Kind: diagnostics.KindIncompatibleType, Location: right.Span(),
			Expected: expected.String(), Actual: right.InferredType().String(),
		})
	}
	n.SetInferredType(result(n.Loc))
	return n
}

func (c *Checker) checkIfElse(n *ast.IfElseExpr, hint *types.Type) ast.Expr {
	boolT := boolType(n.Condition.Span())
	cond := c.check(n.Condition, &boolT)
	n.Condition = cond
	if !c.Ctx.Assignable(cond.InferredType(), boolT) {
		c.Sink.Report(diagnostics.Diagnostic{
			Kind: diagnostics.KindIncompatibleType, Location: cond.Span(),
			Expected: boolT.String(), Actual: cond.InferredType().String(),
		})
	}

	thenTyped := c.check(n.Then, hint)
	n.Then = thenTyped
	elseTyped := c.check(n.Else, hint)
	n.Else = elseTyped

	if !c.Ctx.Assignable(elseTyped.InferredType(), thenTyped.InferredType()) {
		c.Sink.Report(diagnostics.Diagnostic{
			Kind: diagnostics.KindIncompatibleType, Location: elseTyped.Span(),
			Expected: thenTyped.InferredType().String(), Actual: elseTyped.InferredType().String(),
		})
	}
	n.SetInferredType(thenTyped.InferredType().WithReason(types.NewReason(n.Loc)))
	return n
}

func (c *Checker) checkBlock(n *ast.BlockExpr, hint *types.Type) ast.Expr {
	for _, s := range n.Statements {
		c.checkStmt(s)
	}
	var resultType types.Type
	if n.Final != nil {
		finalTyped := c.check(n.Final, hint)
		n.Final = finalTyped
		resultType = finalTyped.InferredType()
	} else {
		resultType = unitType(n.Loc)
	}
	n.SetInferredType(resultType.WithReason(types.NewReason(n.Loc)))
	return n
}
