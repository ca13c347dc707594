// Package ssa implements the per-module SSA analyzer: a scoped walk
// over declarations then bodies producing a use→def map, a def→uses
// map, a lambda-capture map, an unbound-name set, and an invalid-define
// set.
package ssa

import (
	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/intern"
)

// Result is the read-only output of analyzing one module.
type Result struct {
	// UseToDef maps a use location to the single location that defines
	// it. Absent entries correspond either to an unbound name or to a
	// class-id / field / method name (not tracked by SSA).
	UseToDef map[ast.Location]ast.Location
	// DefToUses maps a definition location to every use that resolves
	// to it.
	DefToUses map[ast.Location][]ast.Location
	// Unbound is the set of use locations that resolved to nothing.
	Unbound map[ast.Location]bool
	// InvalidDefines is the set of binder locations that collided with
	// an existing binder in the same frame.
	InvalidDefines map[ast.Location]bool
	// Captures maps a lambda's own location to the definition locations
	// of every name it captures from an enclosing scope.
	Captures map[ast.Location][]ast.Location
}

func newResult() *Result {
	return &Result{
		UseToDef:       make(map[ast.Location]ast.Location),
		DefToUses:      make(map[ast.Location][]ast.Location),
		Unbound:        make(map[ast.Location]bool),
		InvalidDefines: make(map[ast.Location]bool),
		Captures:       make(map[ast.Location][]ast.Location),
	}
}

// frame is one lexical scope: a set of binders introduced in it, plus
// a parent link. captureBoundary is non-nil when this frame is the
// entry frame of a lambda body, so uses resolving past it are captures.
type frame struct {
	parent          *frame
	binders         map[intern.NameID]ast.Location
	captureBoundary *ast.Location // the lambda's own location, if this frame opens one
}

func newFrame(parent *frame) *frame {
	return &frame{parent: parent, binders: make(map[intern.NameID]ast.Location)}
}

// analyzer threads the current frame and accumulates the result while
// walking one module.
type analyzer struct {
	res    *Result
	sink   *diagnostics.Sink
	scope  *frame
	thisID intern.NameID
}

// Analyze runs the SSA pass over a single module. It never modifies
// the AST and is idempotent: calling it twice on the same module
// produces structurally equal results. interner is used only to
// resolve the reserved name "this" to its stable handle, so that
// `this` outside a method body resolves to nothing and is recorded as
// unbound.
func Analyze(mod *ast.Module, sink *diagnostics.Sink, interner *intern.Interner) *Result {
	a := &analyzer{
		res:    newResult(),
		sink:   sink,
		scope:  newFrame(nil),
		thisID: interner.InternName("this"),
	}
	for _, tl := range mod.Toplevels {
		a.walkToplevel(tl)
	}
	return a.res
}

func (a *analyzer) push() {
	a.scope = newFrame(a.scope)
}

func (a *analyzer) pushLambda(lambdaLoc ast.Location) {
	f := newFrame(a.scope)
	f.captureBoundary = &lambdaLoc
	a.scope = f
}

func (a *analyzer) pop() {
	a.scope = a.scope.parent
}

// define records a binder in the current frame; a re-binding of the
// same name in the same frame is an invalid-define collision;
// shadowing across frames is permitted.
func (a *analyzer) define(id ast.Id) {
	if _, collide := a.scope.binders[id.Name]; collide {
		a.res.InvalidDefines[id.Loc] = true
		return
	}
	a.scope.binders[id.Name] = id.Loc
}

// use resolves a name use by walking frames inside-out; if no frame
// defines it, the use is recorded as unbound. Crossing a capture
// boundary while resolving records the binder as captured by that
// lambda.
func (a *analyzer) use(id ast.Id) {
	crossedBoundaries := []ast.Location{}
	f := a.scope
	for f != nil {
		if f.captureBoundary != nil {
			crossedBoundaries = append(crossedBoundaries, *f.captureBoundary)
		}
		if defLoc, ok := f.binders[id.Name]; ok {
			a.res.UseToDef[id.Loc] = defLoc
			a.res.DefToUses[defLoc] = append(a.res.DefToUses[defLoc], id.Loc)
			for _, lambdaLoc := range crossedBoundaries {
				a.res.Captures[lambdaLoc] = append(a.res.Captures[lambdaLoc], defLoc)
			}
			return
		}
		f = f.parent
	}
	a.res.Unbound[id.Loc] = true
}
