// Package typectx implements the typing context façade: per-expression
// transient state held by the main checker — the local type
// environment, the current class, the type parameters in scope, a
// synthesis-mode flag, and a handle on the diagnostics sink.
package typectx

import (
	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/intern"
	"github.com/SamChou19815/samlang-sub001/internal/signature"
	"github.com/SamChou19815/samlang-sub001/internal/ssa"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

// Context is the per-module, per-checker-invocation façade. It is
// exclusively owned by one checker invocation and mutated without
// synchronization.
type Context struct {
	Sig      *signature.GlobalSignature
	Interner *intern.Interner
	Sink     *diagnostics.Sink
	SSA      *ssa.Result
	Module   intern.ModuleID

	// CurrentClass is the name of the class whose member is currently
	// being checked, used for privacy checks. It is empty until the
	// first member body is checked and is not cleared afterwards.
	CurrentClass string

	// TypeParams is the list of type parameters in scope (the
	// enclosing class's plus the enclosing member's), consulted to
	// upper-bound a Generic type to its declared bound for member
	// lookup.
	TypeParams []types.TypeParameterSignature

	// synthesis is on only within the phased argument inference's first
	// phase. It is a plain field,
	// not a global, so re-entrant lambda bodies inside call arguments
	// each get their own save/restore via RunInSynthesisMode.
	synthesis bool

	locals  map[ast.Location]types.Type
	counter int
}

// New creates a Context for checking one module, given that module's
// SSA result and the already-built global signature.
func New(sig *signature.GlobalSignature, interner *intern.Interner, sink *diagnostics.Sink, ssaResult *ssa.Result, module intern.ModuleID) *Context {
	return &Context{
		Sig:      sig,
		Interner: interner,
		Sink:     sink,
		SSA:      ssaResult,
		Module:   module,
		locals:   make(map[ast.Location]types.Type),
	}
}

// Read returns the resolved type of a binder identified by its
// definition location. Unresolved binders read as Any.
func (c *Context) Read(loc ast.Location) types.Type {
	if t, ok := c.locals[loc]; ok {
		return t
	}
	return &types.AnyType{Reason: types.NewReason(loc)}
}

// Write records the resolved type of a binder at its definition
// location.
func (c *Context) Write(loc ast.Location, t types.Type) {
	c.locals[loc] = t
}

// GetCaptured returns the definition locations captured by the lambda
// at loc.
func (c *Context) GetCaptured(loc ast.Location) []ast.Location {
	return c.SSA.Captures[loc]
}

// UseDef resolves a use location to its definition location via the
// module's SSA result, or (zero Location, false) if the use is
// unbound.
func (c *Context) UseDef(loc ast.Location) (ast.Location, bool) {
	d, ok := c.SSA.UseToDef[loc]
	return d, ok
}

// InSynthesisMode reports whether synthesis mode is currently active.
func (c *Context) InSynthesisMode() bool { return c.synthesis }

// RunInSynthesisMode runs f with synthesis mode on, restoring the
// previous flag value afterwards so nested, non-synthesis checks
// (e.g. a lambda body entered while re-checking a deferred argument)
// are unaffected.
func (c *Context) RunInSynthesisMode(f func()) {
	prev := c.synthesis
	c.synthesis = true
	defer func() { c.synthesis = prev }()
	f()
}

// MkPlaceholderType mints a fresh Any placeholder at loc, used as the
// shape of a synthesis-mode lambda body so callers still have
// something to solve against.
func (c *Context) MkPlaceholderType(loc ast.Location) types.Type {
	c.counter++
	return &types.AnyType{Reason: types.NewReason(loc)}
}

// MkUnderconstrainedAnyType mints an Any placeholder marked
// Underconstrained at loc.
func (c *Context) MkUnderconstrainedAnyType(loc ast.Location) types.Type {
	return &types.AnyType{Reason: types.NewReason(loc), Underconstrained: true}
}

// IsSubtype delegates to types.IsSubtype using the global signature as
// the SupertypeLister.
func (c *Context) IsSubtype(sub, sup types.Type) bool {
	return types.IsSubtype(sub, sup, c.Sig)
}

// Assignable delegates to types.AssignabilityCheck using the global
// signature as the SupertypeLister.
func (c *Context) Assignable(lower, upper types.Type) bool {
	return types.AssignabilityCheck(lower, upper, c.Sig)
}

// ClassExists reports whether the global signature has a class or
// interface entry for (module, name).
func (c *Context) ClassExists(module intern.ModuleID, name string) bool {
	return c.Sig.Lookup(module, name) != nil
}

// GetMethodType resolves the method named name on the class/interface
// at (module, className), returning its MemberSig or nil.
func (c *Context) GetMethodType(module intern.ModuleID, className, name string) *signature.MemberSig {
	entry := c.Sig.Lookup(module, className)
	if entry == nil {
		return nil
	}
	return entry.Methods[name]
}

// GetFunctionType resolves the static function named name on the
// class at (module, className), returning its MemberSig or nil.
func (c *Context) GetFunctionType(module intern.ModuleID, className, name string) *signature.MemberSig {
	entry := c.Sig.Lookup(module, className)
	if entry == nil {
		return nil
	}
	return entry.Functions[name]
}

// ResolveStructDefinition returns the struct type definition of the
// class at (module, name), or nil if it isn't a struct-backed class.
func (c *Context) ResolveStructDefinition(module intern.ModuleID, name string) *signature.TypeDef {
	entry := c.Sig.Lookup(module, name)
	if entry == nil || entry.TypeDef == nil || entry.TypeDef.Kind != signature.StructKind {
		return nil
	}
	return entry.TypeDef
}

// ResolveEnumDefinition returns the enum type definition of the class
// at (module, name), or nil if it isn't an enum-backed class.
func (c *Context) ResolveEnumDefinition(module intern.ModuleID, name string) *signature.TypeDef {
	entry := c.Sig.Lookup(module, name)
	if entry == nil || entry.TypeDef == nil || entry.TypeDef.Kind != signature.EnumKind {
		return nil
	}
	return entry.TypeDef
}

// LookupEntry exposes the raw signature entry, used by the checker
// for operations with no dedicated façade method (e.g. member and
// type-definition lookup during member access and pattern binding).
func (c *Context) LookupEntry(module intern.ModuleID, name string) *signature.Entry {
	return c.Sig.Lookup(module, name)
}

// ValidateTypeInstantiationStrictly reports IncompatibleTypeKind when
// t names an interface used in a position that requires a concrete,
// instantiable type. Positions that allow an interface instead — a
// generic parameter's bound, a class's declared supertype list —
// simply never call this.
func (c *Context) ValidateTypeInstantiationStrictly(t types.Type, loc ast.Location) {
	signature.ValidateTypeInstantiationStrictly(c.Sig, c.Sink, t, loc)
}
