// Package types implements the internal type language: representation,
// substitution, same-type/subtype checks, assignability, meet, and
// constraint solving.
package types

import "github.com/SamChou19815/samlang-sub001/internal/diagnostics"

// Reason carries the provenance of a type for diagnostic rendering: the
// location where the type was used, and optionally where the thing it
// describes was defined.
type Reason struct {
	UseLocation        diagnostics.Location
	DefinitionLocation *diagnostics.Location
}

// NewReason builds a Reason with no definition location.
func NewReason(use diagnostics.Location) Reason {
	return Reason{UseLocation: use}
}

// NewReasonWithDef builds a Reason carrying both a use and a
// definition location.
func NewReasonWithDef(use, def diagnostics.Location) Reason {
	d := def
	return Reason{UseLocation: use, DefinitionLocation: &d}
}

// WithUseLocation returns a copy of r repositioned to a new use
// location, preserving any definition location. Used when a type is
// repositioned to an access or call site.
func (r Reason) WithUseLocation(loc diagnostics.Location) Reason {
	return Reason{UseLocation: loc, DefinitionLocation: r.DefinitionLocation}
}
