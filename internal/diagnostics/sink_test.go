package diagnostics

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/SamChou19815/samlang-sub001/internal/intern"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m) // remove unused snapshots
	os.Exit(v)
}

// TestPrettyPrintReport snapshots the deterministic report format:
// sorted by (file, start location, kind), one stanza per diagnostic, a
// source line + caret when the file is registered.
func TestPrettyPrintReport(t *testing.T) {
	interner := intern.New()
	sink := New(interner)
	mod := interner.InternModule([]string{"widget"})
	sink.RegisterFile(mod, "widget.sam", "class Widget {\n  function greet(): Int = true;\n}\n")

	sink.Report(Diagnostic{
		Kind:     KindIncompatibleType,
		Location: Location{Module: mod, Start: Position{Line: 2, Column: 26}, End: Position{Line: 2, Column: 30}},
		Expected: "Int",
		Actual:   "Bool",
	})
	sink.Report(Diagnostic{
		Kind:     KindCannotResolveClass,
		Location: Location{Module: mod, Start: Position{Line: 1, Column: 7}, End: Position{Line: 1, Column: 13}},
		Name:     "Wdiget",
	})

	snaps.MatchSnapshot(t, sink.PrettyPrint())
}

// TestSortedOrdersByFileThenLocationThenKind exercises the ordering
// contract PrettyPrint relies on, independent of rendering.
func TestSortedOrdersByFileThenLocationThenKind(t *testing.T) {
	interner := intern.New()
	sink := New(interner)
	modA := interner.InternModule([]string{"a"})
	modB := interner.InternModule([]string{"b"})
	sink.RegisterFile(modA, "a.sam", "")
	sink.RegisterFile(modB, "b.sam", "")

	sink.Report(Diagnostic{Kind: KindSyntaxError, Location: Location{Module: modB, Start: Position{Line: 1, Column: 1}}})
	sink.Report(Diagnostic{Kind: KindSyntaxError, Location: Location{Module: modA, Start: Position{Line: 2, Column: 1}}})
	sink.Report(Diagnostic{Kind: KindCollision, Location: Location{Module: modA, Start: Position{Line: 1, Column: 1}}})

	sorted := sink.Sorted()
	if len(sorted) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", len(sorted))
	}
	if sorted[0].Location.Module != modA || sorted[0].Location.Start.Line != 1 {
		t.Fatalf("expected a.sam:1 first, got module=%v line=%d", sorted[0].Location.Module, sorted[0].Location.Start.Line)
	}
	if sorted[1].Location.Module != modA || sorted[1].Location.Start.Line != 2 {
		t.Fatalf("expected a.sam:2 second, got module=%v line=%d", sorted[1].Location.Module, sorted[1].Location.Start.Line)
	}
	if sorted[2].Location.Module != modB {
		t.Fatalf("expected b.sam third, got module=%v", sorted[2].Location.Module)
	}
}
