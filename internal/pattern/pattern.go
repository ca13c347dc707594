// Package pattern implements the pattern-matching checker: or-pattern
// well-formedness, Maranget-style exhaustiveness via specialization
// matrices, and reachability/useless-row detection.
package pattern

import (
	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/intern"
	"github.com/SamChou19815/samlang-sub001/internal/signature"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

// Checker bundles the read-only context the pattern checker needs:
// the global signature (for enum variant lookup) and the interner
// (for rendering names in diagnostics).
type Checker struct {
	Sig      *signature.GlobalSignature
	Interner *intern.Interner
	Sink     *diagnostics.Sink
}

func New(sig *signature.GlobalSignature, interner *intern.Interner, sink *diagnostics.Sink) *Checker {
	return &Checker{Sig: sig, Interner: interner, Sink: sink}
}

// binding is one name bound by a pattern, used by the or-pattern
// consistency check.
type binding struct {
	Name intern.NameID
	Loc  ast.Location
	Type types.Type
}
