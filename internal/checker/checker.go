// Package checker implements the main bidirectional type checker:
// per-expression check(e, hint) entries, phased call-argument
// inference, and declaration-statement/pattern checking. It maps an
// untyped ast.Module into a typed one of the same shape by structural
// recursion, filling every expression's type slot in place rather than
// building a second tree.
package checker

import (
	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/intern"
	"github.com/SamChou19815/samlang-sub001/internal/pattern"
	"github.com/SamChou19815/samlang-sub001/internal/signature"
	"github.com/SamChou19815/samlang-sub001/internal/ssa"
	"github.com/SamChou19815/samlang-sub001/internal/typectx"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

// Checker checks every class and interface member body of one module
// against the already-built global signature.
type Checker struct {
	Ctx     *typectx.Context
	Pat     *pattern.Checker
	R       *signature.Resolver
	Sink    *diagnostics.Sink
	Sig     *signature.GlobalSignature
	Interner *intern.Interner
}

// New builds a Checker for one module; its Resolver R resolves the
// annotations found inside member bodies (`let x: T`, lambda
// parameters, explicit type arguments), which are never pre-resolved
// into the global signature the way member parameter/return types are.
func New(sig *signature.GlobalSignature, interner *intern.Interner, sink *diagnostics.Sink, ssaResult *ssa.Result, mod *ast.Module) *Checker {
	return &Checker{
		Ctx:      typectx.New(sig, interner, sink, ssaResult, mod.Handle),
		Pat:      pattern.New(sig, interner, sink),
		R:        signature.NewResolver(interner, sig, mod),
		Sink:     sink,
		Sig:      sig,
		Interner: interner,
	}
}

// CheckModule type-checks every member body declared in mod, in
// place. Member bodies are independent of each other's own checking
// (they only depend on the already-resolved global signature), so the
// orchestrator may run CheckModule for distinct modules concurrently
// as long as each gets its own Checker.
func (c *Checker) CheckModule(mod *ast.Module) {
	for _, tl := range mod.Toplevels {
		c.checkToplevel(tl)
	}
}

func (c *Checker) checkToplevel(tl ast.Toplevel) {
	cls, ok := tl.(*ast.ClassDef)
	if !ok {
		return // interface members have no body to check
	}
	name := c.Interner.Name(cls.Name.Name)
	entry := c.Sig.Lookup(c.Ctx.Module, name)
	if entry == nil {
		return
	}
	classTypeParams := entry.TypeParameters
	for _, m := range cls.Members {
		if m.Body == nil {
			continue
		}
		c.checkMember(name, entry, classTypeParams, m)
	}
}

func (c *Checker) checkMember(className string, entry *signature.Entry, classTypeParams []types.TypeParameterSignature, m *ast.MemberDeclaration) {
	memberName := c.Interner.Name(m.Name.Name)
	var sig *signature.MemberSig
	if m.IsMethod {
		sig = entry.Methods[memberName]
	} else {
		sig = entry.Functions[memberName]
	}
	if sig == nil {
		return
	}

	c.Ctx.CurrentClass = className
	c.Ctx.TypeParams = append(append([]types.TypeParameterSignature{}, classTypeParams...), sig.TypeParameters...)

	for i, p := range m.Parameters {
		if i < len(sig.Fn.ArgumentTypes) {
			c.Ctx.Write(p.Name.Loc, sig.Fn.ArgumentTypes[i])
			c.Ctx.ValidateTypeInstantiationStrictly(sig.Fn.ArgumentTypes[i], p.Annotation.Span())
		}
	}
	if m.IsMethod {
		c.Ctx.Write(m.Loc, selfType(entry))
	}

	hint := sig.Fn.ReturnType
	m.Body = c.check(m.Body, &hint)
	if !c.Ctx.Assignable(m.Body.InferredType(), hint) {
		c.Sink.Report(diagnostics.Diagnostic{
			Kind:     diagnostics.KindIncompatibleType,
			Location: m.Body.Span(),
			Expected: hint.String(),
			Actual:   m.Body.InferredType().String(),
		})
	}
}

// selfType builds the `this` nominal type of a method's enclosing
// class, instantiated with its own declared type parameters.
func selfType(entry *signature.Entry) types.Type {
	args := make([]types.Type, len(entry.TypeParameters))
	for i, p := range entry.TypeParameters {
		args[i] = &types.GenericType{Name: p.Name}
	}
	return &types.NominalType{Module: entry.Key.Module, Name: entry.Key.Name, TypeArguments: args}
}
