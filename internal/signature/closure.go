package signature

import (
	"sort"

	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

// closureState threads the recursive DFS's visited/in-progress status
// across every entry in one Build call, keyed by (module, name).
// statusDone entries have a final Supertypes list; statusVisiting
// entries are on the current recursion path, so an edge into one of
// them closes a cycle and is reported under the target's name.
type closureState struct {
	status map[Key]int
	sink   *diagnostics.Sink
}

const (
	statusUnvisited = 0
	statusVisiting  = 1
	statusDone      = 2
)

// computeAllClosures computes the transitive supertype closure of
// every entry in sig. Entries are visited in (module, name) order and
// each entry's own closure is memoized by status, so the result,
// including which edge of a supertype cycle is reported and dropped,
// is the same on every run.
func computeAllClosures(sig *GlobalSignature, sink *diagnostics.Sink) {
	cs := &closureState{status: make(map[Key]int, len(sig.Types)), sink: sink}
	keys := make([]Key, 0, len(sig.Types))
	for key := range sig.Types {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Module != keys[j].Module {
			return keys[i].Module < keys[j].Module
		}
		return keys[i].Name < keys[j].Name
	})
	for _, key := range keys {
		cs.compute(sig, key)
	}
}

func (cs *closureState) compute(sig *GlobalSignature, key Key) []*types.NominalType {
	entry := sig.Types[key]
	if entry == nil {
		return nil
	}
	if cs.status[key] == statusDone {
		return entry.Supertypes
	}
	cs.status[key] = statusVisiting

	selfArgs := make([]types.Type, len(entry.TypeParameters))
	for i, p := range entry.TypeParameters {
		selfArgs[i] = &types.GenericType{Reason: types.NewReason(entry.entryLoc()), Name: p.Name}
	}
	supers := []*types.NominalType{{
		Reason:        types.NewReason(entry.entryLoc()),
		Module:        key.Module,
		Name:          key.Name,
		TypeArguments: selfArgs,
	}}

	for _, declared := range entry.DeclaredSupers {
		supKey := Key{Module: declared.Module, Name: declared.Name}
		supEntry := sig.Types[supKey]
		if supEntry == nil {
			continue // unresolved name already reported by the resolver
		}
		if cs.status[supKey] == statusVisiting {
			cs.sink.Report(diagnostics.Diagnostic{
				Kind:     diagnostics.KindCyclicTypeDefinition,
				Location: declared.Reason.UseLocation,
				Name:     supKey.Name,
			})
			continue // the offending edge is not traversed
		}

		parentSupers := cs.compute(sig, supKey)

		sigma := make(types.Substitution, len(supEntry.TypeParameters))
		for i, p := range supEntry.TypeParameters {
			if i < len(declared.TypeArguments) {
				sigma[p.Name] = declared.TypeArguments[i]
			}
		}
		for _, ps := range parentSupers {
			supers = append(supers, types.Subst(ps, sigma).(*types.NominalType))
		}

		// Interface entries fully inline every ancestor's methods so
		// that member lookup on a sub-interface value never has to
		// walk the supertype chain itself. Classes never inherit
		// method *bodies*: a class must
		// define every interface method itself, checked by
		// checkConformance against supEntry's own (already-inlined)
		// Methods map.
		if entry.IsInterface {
			for name, m := range supEntry.Methods {
				if _, exists := entry.Methods[name]; !exists {
					entry.Methods[name] = substMember(m, sigma)
				}
			}
		}
	}

	entry.Supertypes = supers
	cs.status[key] = statusDone
	return supers
}

func substMember(m *MemberSig, sigma types.Substitution) *MemberSig {
	cp := *m
	cp.Fn = types.SubstFn(m.Fn, sigma)
	return &cp
}

// entryLoc picks a stable location to attribute to the entry's own
// "self" supertype-list head; any member's definition location will
// do since the self entry never surfaces in a diagnostic by itself.
func (e *Entry) entryLoc() diagnostics.Location {
	for _, m := range e.Methods {
		return m.DefLoc
	}
	for _, m := range e.Functions {
		return m.DefLoc
	}
	if e.TypeDef != nil {
		return diagnostics.Location{}
	}
	return diagnostics.Location{}
}
