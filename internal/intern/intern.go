// Package intern provides stable small-integer handles for identifier
// names and module reference paths.
package intern

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// NameID is a stable handle for an interned identifier name.
type NameID int32

// ModuleID is a stable handle for an interned module reference.
type ModuleID int32

// RootModule is the distinguished module handle for built-in classes:
// primitives-as-classes, the string type carrier, and the panic/IO
// intrinsics.
const RootModule ModuleID = 0

// Interner is an append-only, internally synchronized store of names
// and module paths. Readers see stable ids once an entry is interned.
// It outlives every pass over a batch.
type Interner struct {
	mu sync.Mutex

	names   []string
	nameIdx map[string]NameID

	modules    [][]string
	moduleIdx  map[string]ModuleID
	moduleRoot []string

	// RunID correlates diagnostics produced by concurrent
	// TypeCheckSources invocations sharing a process-wide sink.
	RunID uuid.UUID
}

// New creates an Interner with the root module pre-registered.
func New() *Interner {
	in := &Interner{
		names:     make([]string, 0, 64),
		nameIdx:   make(map[string]NameID, 64),
		modules:   make([][]string, 1, 16),
		moduleIdx: make(map[string]ModuleID, 16),
		RunID:     uuid.New(),
	}
	in.modules[0] = nil
	in.moduleIdx[""] = RootModule
	return in
}

// InternName returns the stable handle for name, minting one if this is
// the first occurrence.
func (in *Interner) InternName(name string) NameID {
	in.mu.Lock()
	defer in.mu.Unlock()
	if id, ok := in.nameIdx[name]; ok {
		return id
	}
	id := NameID(len(in.names))
	in.names = append(in.names, name)
	in.nameIdx[name] = id
	return id
}

// Name resolves a previously interned NameID back to its string.
func (in *Interner) Name(id NameID) string {
	in.mu.Lock()
	defer in.mu.Unlock()
	if int(id) < 0 || int(id) >= len(in.names) {
		return ""
	}
	return in.names[id]
}

// InternModule returns the stable handle for an ordered sequence of
// name segments, minting one if this is the first occurrence. An empty
// segment list always resolves to RootModule.
func (in *Interner) InternModule(segments []string) ModuleID {
	if len(segments) == 0 {
		return RootModule
	}
	key := strings.Join(segments, "/")
	in.mu.Lock()
	defer in.mu.Unlock()
	if id, ok := in.moduleIdx[key]; ok {
		return id
	}
	id := ModuleID(len(in.modules))
	cp := make([]string, len(segments))
	copy(cp, segments)
	in.modules = append(in.modules, cp)
	in.moduleIdx[key] = id
	return id
}

// Module resolves a previously interned ModuleID back to its segments.
func (in *Interner) Module(id ModuleID) []string {
	in.mu.Lock()
	defer in.mu.Unlock()
	if int(id) < 0 || int(id) >= len(in.modules) {
		return nil
	}
	return in.modules[id]
}

// ModulePath renders a module handle's dotted path, or "<root>" for
// the built-in module.
func (in *Interner) ModulePath(id ModuleID) string {
	if id == RootModule {
		return "<root>"
	}
	return strings.Join(in.Module(id), ".")
}
