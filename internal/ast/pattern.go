package ast

import "github.com/SamChou19815/samlang-sub001/internal/types"

// Pat is the pattern grammar: wildcard, identifier (binds), variant
// (tag + sub-pattern tuple), tuple (multi-column matches), object
// (struct destructuring), or-pattern.
//
//sumtype:decl
type Pat interface {
	Node
	isPat()
	InferredType() types.Type
	SetInferredType(types.Type)
}

func (*WildcardPat) isPat() {}
func (*IdentPat) isPat()    {}
func (*VariantPat) isPat()  {}
func (*TuplePat) isPat()    {}
func (*ObjectPat) isPat()   {}
func (*OrPat) isPat()       {}

// PatCommon is the shared record every pattern node embeds.
type PatCommon struct {
	Loc  Location
	Type types.Type
}

func (c *PatCommon) Span() Location              { return c.Loc }
func (c *PatCommon) InferredType() types.Type     { return c.Type }
func (c *PatCommon) SetInferredType(t types.Type) { c.Type = t }

// WildcardPat (`_`) binds nothing and matches anything.
type WildcardPat struct{ PatCommon }

// IdentPat binds the matched value to Name.
type IdentPat struct {
	PatCommon
	Name Id
}

// VariantPat matches an enum variant by tag, destructuring its
// associated data into sub-patterns.
type VariantPat struct {
	PatCommon
	Tag         Id
	SubPatterns []Pat
}

// TuplePat matches a fixed-arity tuple of sub-patterns, used for
// multi-column matches (matching more than one scrutinee at once).
type TuplePat struct {
	PatCommon
	Elements []Pat
}

// ObjectPatField destructures one named field, with an optional
// binding alias. When Alias is nil, the field name itself is the
// binder. Type is filled by the checker with the field's resolved
// type, repositioned to the alias's location (or the field name's
// location if no alias).
type ObjectPatField struct {
	Loc   Location
	Field Id
	Alias *Id // nil => bind to Field's own name
	Type  types.Type
}

// BinderId returns the identifier that this field actually binds: the
// alias if present, otherwise the field name itself.
func (f ObjectPatField) BinderId() Id {
	if f.Alias != nil {
		return *f.Alias
	}
	return f.Field
}

// ObjectPat destructures a struct by field name.
type ObjectPat struct {
	PatCommon
	Fields []ObjectPatField
}

// OrPat is `p1 | p2 | … | pn`: matches when any alternative matches,
// and requires identical binding sets (with identical types) across
// alternatives.
type OrPat struct {
	PatCommon
	Alternatives []Pat
}
