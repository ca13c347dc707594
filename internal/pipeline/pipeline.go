// Package pipeline is the orchestrator: it drives the full batch from
// parsed modules to a fully type-checked batch by
// running the global signature builder once over the whole set, then
// fanning the per-module SSA analysis and bidirectional check out
// across goroutines, one per module, joined before returning.
package pipeline

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/checker"
	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/intern"
	"github.com/SamChou19815/samlang-sub001/internal/signature"
	"github.com/SamChou19815/samlang-sub001/internal/ssa"
)

// Run type-checks every module in modules against the batch's own
// global signature and returns the same map, mutated in place with
// resolved types, alongside the signature that was built, the sink
// every diagnostic (from every component) was reported to, and the
// interner's RunID so a caller driving several concurrent batches
// through a shared logging/tracing pipeline can tell which batch a
// given sink's diagnostics came from.
//
// The global signature must be complete before any module's body is
// checked (a method may reference any class in the batch, not only
// its own module's), so signature.Build always runs single-threaded
// first; only the per-module SSA + check passes, which only read the
// now-frozen signature, run concurrently.
func Run(ctx context.Context, modules map[intern.ModuleID]*ast.Module, interner *intern.Interner) (map[intern.ModuleID]*ast.Module, *signature.GlobalSignature, *diagnostics.Sink, uuid.UUID, error) {
	sink := diagnostics.New(interner)

	sig, err := signature.Build(modules, interner, sink)
	if err != nil {
		return nil, nil, sink, interner.RunID, err
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, mod := range modules {
		mod := mod
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			checkModule(mod, sig, interner, sink)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, sink, interner.RunID, err
	}

	return modules, sig, sink, interner.RunID, nil
}

func checkModule(mod *ast.Module, sig *signature.GlobalSignature, interner *intern.Interner, sink *diagnostics.Sink) {
	ssaResult := ssa.Analyze(mod, sink, interner)
	c := checker.New(sig, interner, sink, ssaResult, mod)
	c.CheckModule(mod)
}
