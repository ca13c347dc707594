package diagnostics

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/maruel/natural"

	"github.com/SamChou19815/samlang-sub001/internal/intern"
)

// fileInfo is the minimal per-module information the printer needs to
// reproduce a source line under a diagnostic's caret.
type fileInfo struct {
	path  string
	lines []string
}

// Sink accumulates structured diagnostics across every component and
// every module in a batch. It is the only object in the pipeline that
// accepts unordered concurrent writes: Report has no per-diagnostic
// dependency and may be called from any goroutine.
type Sink struct {
	mu          sync.Mutex
	diags       []Diagnostic
	files       map[intern.ModuleID]fileInfo
	interner    *intern.Interner
}

// New creates an empty Sink. interner is used to resolve module
// handles to file paths when pretty-printing; it may be nil if the
// caller never calls PrettyPrint.
func New(interner *intern.Interner) *Sink {
	return &Sink{
		files:    make(map[intern.ModuleID]fileInfo),
		interner: interner,
	}
}

// RegisterFile associates a module handle with the path and contents
// used to render source snippets in pretty-printed output.
func (s *Sink) RegisterFile(module intern.ModuleID, path, contents string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[module] = fileInfo{path: path, lines: strings.Split(contents, "\n")}
}

// Report appends a diagnostic. Safe for concurrent use.
func (s *Sink) Report(d Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diags = append(s.diags, d)
}

// Empty reports whether the sink has no diagnostics. Whole-pipeline
// success is defined as the sink being empty.
func (s *Sink) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.diags) == 0
}

// Len returns the number of diagnostics reported so far.
func (s *Sink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.diags)
}

// All returns a defensive copy of the diagnostics reported so far, in
// no particular order. Use Sorted for a deterministic ordering.
func (s *Sink) All() []Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Diagnostic, len(s.diags))
	copy(out, s.diags)
	return out
}

func (s *Sink) path(module intern.ModuleID) string {
	if fi, ok := s.files[module]; ok {
		return fi.path
	}
	if s.interner != nil {
		return s.interner.ModulePath(module)
	}
	return "<unknown>"
}

// Sorted returns diagnostics ordered by (file, start line, start col,
// kind), the deterministic order required before printing.
func (s *Sink) Sorted() []Diagnostic {
	s.mu.Lock()
	files := make(map[intern.ModuleID]fileInfo, len(s.files))
	for k, v := range s.files {
		files[k] = v
	}
	out := make([]Diagnostic, len(s.diags))
	copy(out, s.diags)
	s.mu.Unlock()

	pathOf := func(m intern.ModuleID) string {
		if fi, ok := files[m]; ok {
			return fi.path
		}
		if s.interner != nil {
			return s.interner.ModulePath(m)
		}
		return "<unknown>"
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		pa, pb := pathOf(a.Location.Module), pathOf(b.Location.Module)
		if pa != pb {
			return natural.Less(pa, pb)
		}
		if a.Location.Start != b.Location.Start {
			return a.Location.Start.less(b.Location.Start)
		}
		return a.Kind < b.Kind
	})
	return out
}

// PrettyPrint renders every diagnostic in the sink in a deterministic
// format, followed by "Found <N> errors.".
func (s *Sink) PrettyPrint() string {
	return s.render(false)
}

// PrettyPrintColor renders the same report with ANSI highlighting on
// the header line and the caret underline. It is never used by the
// deterministic test oracle, which compares against plain PrettyPrint.
func (s *Sink) PrettyPrintColor() string {
	return s.render(true)
}

func (s *Sink) render(colorize bool) string {
	sorted := s.Sorted()

	s.mu.Lock()
	files := make(map[intern.ModuleID]fileInfo, len(s.files))
	for k, v := range s.files {
		files[k] = v
	}
	s.mu.Unlock()

	var buf bytes.Buffer
	header := color.New(color.FgRed, color.Bold)
	for i, d := range sorted {
		if i > 0 {
			buf.WriteByte('\n')
		}
		loc := d.Location
		path := s.path(loc.Module)
		if fi, ok := files[loc.Module]; ok {
			path = fi.path
		}
		headerLine := fmt.Sprintf("Error -------- %s:%s-%s", path, loc.Start.String(), loc.End.String())
		if colorize {
			headerLine = header.Sprint(headerLine)
		}
		buf.WriteString(headerLine)
		buf.WriteString("\n\n")
		buf.WriteString(d.Message())
		buf.WriteByte('\n')

		if fi, ok := files[loc.Module]; ok && loc.Start.Line >= 1 && loc.Start.Line <= len(fi.lines) {
			buf.WriteByte('\n')
			srcLine := fi.lines[loc.Start.Line-1]
			lineNoStr := strconv.Itoa(loc.Start.Line)
			buf.WriteString("  " + lineNoStr + "| " + srcLine + "\n")
			underlineLen := 1
			if loc.Start.Line == loc.End.Line && loc.End.Column > loc.Start.Column {
				underlineLen = loc.End.Column - loc.Start.Column
			}
			pad := strings.Repeat(" ", len(lineNoStr)+2+loc.Start.Column-1)
			caret := strings.Repeat("^", underlineLen)
			if colorize {
				caret = color.New(color.FgRed).Sprint(caret)
			}
			buf.WriteString(pad + caret + "\n")
		}

		for n, rel := range d.Related {
			buf.WriteString(fmt.Sprintf("  [%d] %s:%s-%s\n", n+1, s.path(rel.Module), rel.Start.String(), rel.End.String()))
		}
	}
	if len(sorted) > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteString(fmt.Sprintf("Found %d errors.\n", len(sorted)))
	return buf.String()
}
