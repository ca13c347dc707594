// Package samlang is the module's own root package: the single
// external entry point a caller links against, re-exporting the
// orchestrator in internal/pipeline.
package samlang

import (
	"context"

	"github.com/google/uuid"

	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/intern"
	"github.com/SamChou19815/samlang-sub001/internal/pipeline"
	"github.com/SamChou19815/samlang-sub001/internal/signature"
)

// TypeCheckSources runs the full batch: it builds one GlobalSignature
// across every module in parsed, then checks every member body against
// it, returning the same modules mutated in place with resolved types.
// ctx only propagates cancellation into the per-module fan-out; no
// behavior depends on a deadline.
func TypeCheckSources(
	ctx context.Context,
	parsed map[intern.ModuleID]*ast.Module,
	interner *intern.Interner,
) (typed map[intern.ModuleID]*ast.Module, sig *signature.GlobalSignature, sink *diagnostics.Sink, runID uuid.UUID, err error) {
	return pipeline.Run(ctx, parsed, interner)
}
