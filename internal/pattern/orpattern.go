package pattern

import (
	"sort"

	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/intern"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

// CheckOrPatterns validates or-pattern well-formedness at every
// nesting level of p and returns the ordered binding list of p itself.
// It must run after the checker has assigned a type to every
// IdentPat/ObjectPatField leaf, since binding type consistency is part
// of well-formedness.
func (c *Checker) CheckOrPatterns(p ast.Pat) []binding {
	switch n := p.(type) {
	case *ast.WildcardPat:
		return nil
	case *ast.IdentPat:
		return []binding{{Name: n.Name.Name, Loc: n.Name.Loc, Type: n.InferredType()}}
	case *ast.VariantPat:
		var out []binding
		for _, sub := range n.SubPatterns {
			out = append(out, c.CheckOrPatterns(sub)...)
		}
		return out
	case *ast.TuplePat:
		var out []binding
		for _, sub := range n.Elements {
			out = append(out, c.CheckOrPatterns(sub)...)
		}
		return out
	case *ast.ObjectPat:
		var out []binding
		for _, f := range n.Fields {
			id := f.BinderId()
			out = append(out, binding{Name: id.Name, Loc: id.Loc, Type: f.Type})
		}
		return out
	case *ast.OrPat:
		return c.checkOrPat(n)
	default:
		return nil
	}
}

// checkOrPat validates one or-pattern node: every alternative must
// bind exactly the same set of names, each with the same inferred
// type across alternatives. A row with a repeated variant tag among
// its alternatives (`A | B | A`) has a useless alternative.
func (c *Checker) checkOrPat(n *ast.OrPat) []binding {
	c.checkRepeatedAlternatives(n)

	if len(n.Alternatives) == 0 {
		return nil
	}
	first := c.CheckOrPatterns(n.Alternatives[0])
	firstSet, firstNames := bindingSet(first)

	for _, alt := range n.Alternatives[1:] {
		altBindings := c.CheckOrPatterns(alt)
		altSet, altNames := bindingSet(altBindings)

		if !sameNameSet(firstSet, altSet) {
			c.Sink.Report(diagnostics.Diagnostic{
				Kind:          diagnostics.KindOrPatternInconsistentBindings,
				Location:      alt.Span(),
				ExpectedNames: c.renderNames(firstNames),
				ActualNames:   c.renderNames(altNames),
			})
			continue
		}
		for _, name := range altNames {
			fb, ab := firstSet[name], altSet[name]
			if fb.Type == nil || ab.Type == nil {
				continue
			}
			if !types.IsSameType(fb.Type, ab.Type) {
				c.Sink.Report(diagnostics.Diagnostic{
					Kind:     diagnostics.KindIncompatibleType,
					Location: ab.Loc,
					Expected: fb.Type.String(),
					Actual:   ab.Type.String(),
				})
			}
		}
	}
	return first
}

// checkRepeatedAlternatives flags a later alternative as useless when
// an earlier alternative already matches the identical enum
// constructor tag. Non-variant alternatives (wildcard/ident/tuple/
// object) are not tracked here: repetition among them is not
// well-defined without deeper structural equality.
func (c *Checker) checkRepeatedAlternatives(n *ast.OrPat) {
	seen := make(map[string]bool, len(n.Alternatives))
	for _, alt := range n.Alternatives {
		v, ok := alt.(*ast.VariantPat)
		if !ok {
			continue
		}
		tag := c.Interner.Name(v.Tag.Name)
		if seen[tag] {
			c.Sink.Report(diagnostics.Diagnostic{Kind: diagnostics.KindUselessPattern, Location: alt.Span()})
			continue
		}
		seen[tag] = true
	}
}

func bindingSet(bs []binding) (map[intern.NameID]binding, []intern.NameID) {
	set := make(map[intern.NameID]binding, len(bs))
	names := make([]intern.NameID, 0, len(bs))
	for _, b := range bs {
		if _, exists := set[b.Name]; !exists {
			names = append(names, b.Name)
		}
		set[b.Name] = b
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return set, names
}

func sameNameSet(a, b map[intern.NameID]binding) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

func (c *Checker) renderNames(ids []intern.NameID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = c.Interner.Name(id)
	}
	return out
}
