package monster

import (
	"fmt"
	"sort"
)

// Registry holds monster definitions indexed by code.
type Registry struct {
	defs map[string]*Definition
}

// NewRegistry builds a Registry from defs.
//
// Postcondition: Returns an error on the first duplicate code.
func NewRegistry(defs []*Definition) (*Registry, error) {
	r := &Registry{defs: make(map[string]*Definition, len(defs))}
	for _, d := range defs {
		if _, exists := r.defs[d.Code]; exists {
			return nil, fmt.Errorf("monster: duplicate code %q", d.Code)
		}
		r.defs[d.Code] = d
	}
	return r, nil
}

// Get returns the definition for code and whether it was found.
func (r *Registry) Get(code string) (*Definition, bool) {
	d, ok := r.defs[code]
	return d, ok
}

// UpToLevel returns definitions whose level does not exceed level, ordered by
// level then code.
func (r *Registry) UpToLevel(level int) []*Definition {
	var out []*Definition
	for _, d := range r.defs {
		if d.Level <= level {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level < out[j].Level
		}
		return out[i].Code < out[j].Code
	})
	return out
}
