// Package ast is the untyped/typed unified AST: every node carries a
// source location and a comment handle, and every expression
// additionally carries a type slot that is nil on the untyped tree and
// a resolved types.Type on the typed tree. The checker maps an untyped
// Module into a typed Module of the same shape by structural
// recursion, rather than using two distinct generated tree types.
package ast

import (
	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/intern"
)

// Location is re-exported from diagnostics so that every AST node and
// every diagnostic share one location type.
type Location = diagnostics.Location

// CommentRef is a handle into a module's comment store; -1 means "no
// attached comment".
type CommentRef int

const NoComment CommentRef = -1

// Id is {source location; comment ref; interned name}.
type Id struct {
	Loc     Location
	Comment CommentRef
	Name    intern.NameID
}

// Node is implemented by every AST node.
type Node interface {
	Span() Location
}

// CommentStore holds the free-text comments attached to a module's
// nodes, indexed by CommentRef.
type CommentStore struct {
	Comments []string
}

func (cs *CommentStore) Add(text string) CommentRef {
	cs.Comments = append(cs.Comments, text)
	return CommentRef(len(cs.Comments) - 1)
}

func (cs *CommentStore) Get(ref CommentRef) (string, bool) {
	if ref < 0 || int(ref) >= len(cs.Comments) {
		return "", false
	}
	return cs.Comments[ref], true
}

// Import is a reference to another module, as it appears in a
// module's import list.
type Import struct {
	Loc          Location
	ImportedMod  intern.ModuleID
	MemberNames  []Id
}

// Module is the top-level AST unit: imports + top-levels + the
// module's own comment store.
type Module struct {
	Handle    intern.ModuleID
	Imports   []Import
	Toplevels []Toplevel
	Comments  CommentStore
}
