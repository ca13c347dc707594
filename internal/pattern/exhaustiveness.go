package pattern

import (
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/SamChou19815/samlang-sub001/internal/ast"
	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/signature"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

// row is one flattened (or-free) arm pattern, one ast.Pat per column.
// A match has exactly one scrutinee, so every row starts with one
// column; specialization against a variant of arity n replaces that
// column with n new columns.
type row []ast.Pat

// CheckMatch validates exhaustiveness and reachability for one match
// expression. scrutineeEntry is the signature entry of the matched
// expression's nominal type, or nil when it has none. When it is nil
// or not enum-backed, constructors can't be enumerated, so
// exhaustiveness always holds trivially and no row can be useless by
// constructor coverage.
// arms is the ordered list of arm patterns. Returns whether the match
// is exhaustive.
func (c *Checker) CheckMatch(loc ast.Location, scrutineeEntry *signature.Entry, arms []ast.Pat) bool {
	flattened := make([]row, 0, len(arms))
	armRows := make([][]row, len(arms))
	for i, p := range arms {
		expansions := expandPat(p)
		rows := make([]row, len(expansions))
		for j, e := range expansions {
			rows[j] = row{e}
		}
		armRows[i] = rows
	}

	// Reachability: arm i is useless iff none of its own expansions is
	// useful against every arm strictly before it.
	for i, rows := range armRows {
		reachable := false
		for _, r := range rows {
			if c.usefulness(flattened, r, []*signature.Entry{scrutineeEntry}) {
				reachable = true
				break
			}
		}
		if !reachable && len(flattened) > 0 {
			c.Sink.Report(diagnostics.Diagnostic{Kind: diagnostics.KindUselessPattern, Location: arms[i].Span()})
		}
		flattened = append(flattened, rows...)
	}

	if scrutineeEntry == nil || scrutineeEntry.TypeDef == nil || scrutineeEntry.TypeDef.Kind != signature.EnumKind {
		return true
	}
	wildcardRow := row{&ast.WildcardPat{}}
	nonExhaustive := c.usefulness(flattened, wildcardRow, []*signature.Entry{scrutineeEntry})
	if nonExhaustive {
		witness, ok := c.missingWitness(flattened, scrutineeEntry)
		if !ok {
			witness = "_"
		}
		c.Sink.Report(diagnostics.Diagnostic{Kind: diagnostics.KindNonExhaustiveMatch, Location: loc, Witness: witness})
		return false
	}
	return true
}

// expandPat distributes or-patterns outward, returning every or-free
// pattern p can expand to. Non-or patterns expand to themselves;
// constructor patterns expand to the cross product of their
// sub-patterns' own expansions.
func expandPat(p ast.Pat) []ast.Pat {
	switch n := p.(type) {
	case *ast.OrPat:
		var out []ast.Pat
		for _, alt := range n.Alternatives {
			out = append(out, expandPat(alt)...)
		}
		return out
	case *ast.VariantPat:
		combos := expandAll(n.SubPatterns)
		out := make([]ast.Pat, len(combos))
		for i, combo := range combos {
			cp := *n
			cp.SubPatterns = combo
			out[i] = &cp
		}
		return out
	case *ast.TuplePat:
		combos := expandAll(n.Elements)
		out := make([]ast.Pat, len(combos))
		for i, combo := range combos {
			cp := *n
			cp.Elements = combo
			out[i] = &cp
		}
		return out
	default:
		return []ast.Pat{p}
	}
}

// expandAll returns the cross product of expandPat applied to each
// element of pats.
func expandAll(pats []ast.Pat) [][]ast.Pat {
	if len(pats) == 0 {
		return [][]ast.Pat{{}}
	}
	rest := expandAll(pats[1:])
	head := expandPat(pats[0])
	out := make([][]ast.Pat, 0, len(head)*len(rest))
	for _, h := range head {
		for _, r := range rest {
			combo := make([]ast.Pat, 0, 1+len(r))
			combo = append(combo, h)
			combo = append(combo, r...)
			out = append(out, combo)
		}
	}
	return out
}

func isWildcardLike(p ast.Pat) bool {
	switch p.(type) {
	case *ast.WildcardPat, *ast.IdentPat:
		return true
	default:
		return false
	}
}

func (c *Checker) headConstructor(p ast.Pat) (tag string, subs []ast.Pat, ok bool) {
	v, ok := p.(*ast.VariantPat)
	if !ok {
		return "", nil, false
	}
	return c.Interner.Name(v.Tag.Name), v.SubPatterns, true
}

// specialize keeps and expands rows matching constructorTag, replaces
// wildcard-like heads with arity fresh wildcards, and drops rows whose
// head is a different constructor.
func (c *Checker) specialize(rows []row, constructorTag string, arity int) []row {
	out := make([]row, 0, len(rows))
	for _, r := range rows {
		head, rest := r[0], r[1:]
		if tag, subs, ok := c.headConstructor(head); ok {
			if tag == constructorTag {
				nr := make(row, 0, arity+len(rest))
				nr = append(nr, subs...)
				nr = append(nr, rest...)
				out = append(out, nr)
			}
			continue
		}
		if isWildcardLike(head) {
			nr := make(row, 0, arity+len(rest))
			for i := 0; i < arity; i++ {
				nr = append(nr, &ast.WildcardPat{})
			}
			nr = append(nr, rest...)
			out = append(out, nr)
		}
	}
	return out
}

// defaultRows is the "default matrix": rows whose head is
// wildcard-like, with that head column dropped (used when the
// column's type has no enumerable constructor set, or column
// patterns don't restrict).
func defaultRows(rows []row) []row {
	out := make([]row, 0, len(rows))
	for _, r := range rows {
		if isWildcardLike(r[0]) {
			out = append(out, r[1:])
		}
	}
	return out
}

// variantColumnEntries returns the enum entry (or nil) for each of a
// variant's associated-data positions, so specialization can recurse
// into nested enum-typed sub-patterns.
func (c *Checker) variantColumnEntries(entry *signature.Entry, tag string) []*signature.Entry {
	if entry == nil || entry.TypeDef == nil {
		return nil
	}
	for _, v := range entry.TypeDef.Variants {
		if v.Name == tag {
			out := make([]*signature.Entry, len(v.AssociatedData))
			for i, d := range v.AssociatedData {
				out[i] = c.nominalEnumEntry(d)
			}
			return out
		}
	}
	return nil
}

// nominalEnumEntry resolves t to its backing signature.Entry when t
// is a Nominal type naming an enum-bearing class, so specialization
// can recurse into a variant's associated-data positions.
func (c *Checker) nominalEnumEntry(t types.Type) *signature.Entry {
	nom, ok := t.(*types.NominalType)
	if !ok {
		return nil
	}
	return c.Sig.Lookup(nom.Module, nom.Name)
}

// usefulness implements the Maranget usefulness check: is q useful
// with respect to the matrix rows (i.e. does q match some value not
// matched by any row)? colEntries[i] is the enum entry backing column
// i's type, or nil if that column isn't enum-typed.
func (c *Checker) usefulness(rows []row, q row, colEntries []*signature.Entry) bool {
	if len(q) == 0 {
		return len(rows) == 0
	}
	head, rest := q[0], q[1:]
	entry := colEntries[0]
	restEntries := colEntries[1:]

	if tag, subs, ok := c.headConstructor(head); ok {
		arity := len(subs)
		specRows := c.specialize(rows, tag, arity)
		subEntries := c.variantColumnEntries(entry, tag)
		if len(subEntries) != arity {
			subEntries = make([]*signature.Entry, arity)
		}
		newEntries := append(append([]*signature.Entry{}, subEntries...), restEntries...)
		newQ := append(append(row{}, subs...), rest...)
		return c.usefulness(specRows, newQ, newEntries)
	}

	if entry == nil || entry.TypeDef == nil || entry.TypeDef.Kind != signature.EnumKind {
		return c.usefulness(defaultRows(rows), rest, restEntries)
	}

	present := make(map[string]bool)
	for _, r := range rows {
		if tag, _, ok := c.headConstructor(r[0]); ok {
			present[tag] = true
		}
	}
	if len(present) < len(entry.TypeDef.Variants) {
		return c.usefulness(defaultRows(rows), rest, restEntries)
	}
	for _, v := range entry.TypeDef.Variants {
		arity := len(v.AssociatedData)
		specRows := c.specialize(rows, v.Name, arity)
		wc := make(row, arity)
		for i := range wc {
			wc[i] = &ast.WildcardPat{}
		}
		subEntries := c.variantColumnEntries(entry, v.Name)
		if len(subEntries) != arity {
			subEntries = make([]*signature.Entry, arity)
		}
		newEntries := append(append([]*signature.Entry{}, subEntries...), restEntries...)
		newQ := append(append(row{}, wc...), rest...)
		if c.usefulness(specRows, newQ, newEntries) {
			return true
		}
	}
	return false
}

// missingWitness reconstructs a human-readable example of a value not
// covered by rows, by taking, at the top level, a constructor not
// covered by the column heads. Sub-positions are filled with "_"
// rather than recursing to full precision (e.g. `Mul(_, _)`).
func (c *Checker) missingWitness(rows []row, entry *signature.Entry) (string, bool) {
	if entry == nil || entry.TypeDef == nil || entry.TypeDef.Kind != signature.EnumKind {
		return "_", true
	}
	present := make(map[string]bool)
	for _, r := range rows {
		if tag, _, ok := c.headConstructor(r[0]); ok {
			present[tag] = true
		}
	}
	for _, v := range entry.TypeDef.Variants {
		if present[v.Name] {
			continue
		}
		name := strcase.ToCamel(v.Name)
		if len(v.AssociatedData) == 0 {
			return name, true
		}
		parts := make([]string, len(v.AssociatedData))
		for i := range parts {
			parts[i] = "_"
		}
		return name + "(" + strings.Join(parts, ", ") + ")", true
	}
	return "", false
}
