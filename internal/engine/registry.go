package engine

import (
	"fmt"
	"slices"
	"strings"
)

// All selects every registered engine in Expand.
const All = "all"

// Registry holds the engines available for one process. It is immutable once
// built.
type Registry struct {
	engines map[string]Engine
	order   []string
}

// NewRegistry registers the engines of each integration. The first
// registration of an id wins. An empty registry is valid.
func NewRegistry(integrations ...Integration) *Registry {
	r := &Registry{engines: make(map[string]Engine)}
	for _, in := range integrations {
		for _, e := range in.Engines {
			id := strings.ToLower(strings.TrimSpace(e.ID))
			if id == "" || e.Backend == nil {
				continue
			}
			if _, exists := r.engines[id]; exists {
				continue
			}
			e.ID = id
			r.engines[id] = e
			r.order = append(r.order, id)
		}
	}
	slices.SortStableFunc(r.order, func(a, b string) int {
		return r.engines[a].Priority - r.engines[b].Priority
	})
	return r
}

// IDs returns engine ids by ascending priority, ties in registration order.
func (r *Registry) IDs() []string {
	return slices.Clone(r.order)
}

// Len is the number of registered engines.
func (r *Registry) Len() int {
	return len(r.order)
}

// Lookup resolves id to its engine.
func (r *Registry) Lookup(id string) (Engine, error) {
	e, ok := r.engines[id]
	if !ok {
		return Engine{}, fmt.Errorf("%w: %q", ErrUnknownEngine, id)
	}
	return e, nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.engines[id]
	return ok
}

// Descriptors returns the registered descriptors in IDs order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.engines[id].Descriptor)
	}
	return out
}

// Defaults returns the ids selected when the user has not picked any.
func (r *Registry) Defaults() []string {
	var out []string
	for _, id := range r.order {
		if !r.engines[id].OffByDefault {
			out = append(out, id)
		}
	}
	return out
}

// Expand normalizes a user selection: ids are trimmed and lower-cased,
// comma-separated entries are split, duplicates are dropped and "all" expands
// to every registered engine. Unknown ids are kept so callers can report them.
func (r *Registry) Expand(selection []string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(id string) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		out = append(out, id)
	}
	for _, entry := range selection {
		for _, id := range strings.Split(entry, ",") {
			id = strings.ToLower(strings.TrimSpace(id))
			if id == All {
				for _, known := range r.order {
					add(known)
				}
				continue
			}
			add(id)
		}
	}
	return out
}
