package item

import (
	"fmt"
	"sort"
)

// Registry holds item definitions indexed by code.
type Registry struct {
	items map[string]*Def
}

// NewRegistry returns an empty Registry.
//
// Postcondition: the internal map is initialised.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]*Def)}
}

// NewRegistryFrom builds a Registry from defs.
//
// Postcondition: Returns an error on the first duplicate code.
func NewRegistryFrom(defs []*Def) (*Registry, error) {
	r := NewRegistry()
	for _, d := range defs {
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds d to the registry.
//
// Precondition:  d must not be nil.
// Postcondition: Get(d.Code) returns (d, true); returns error if d.Code already registered.
func (r *Registry) Register(d *Def) error {
	if _, exists := r.items[d.Code]; exists {
		return fmt.Errorf("item: Registry.Register: item code %q already registered", d.Code)
	}
	r.items[d.Code] = d
	return nil
}

// Get returns the Def for code and whether it was found.
func (r *Registry) Get(code string) (*Def, bool) {
	d, ok := r.items[code]
	return d, ok
}

// Len returns the number of registered items.
func (r *Registry) Len() int { return len(r.items) }

// OfType returns the registered items of type t sorted by code.
func (r *Registry) OfType(t string) []*Def {
	var out []*Def
	for _, d := range r.items {
		if d.Type == t {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// EquipableAt returns the items of type t whose level does not exceed level,
// sorted by code.
func (r *Registry) EquipableAt(t string, level int) []*Def {
	var out []*Def
	for _, d := range r.OfType(t) {
		if d.Level <= level {
			out = append(out, d)
		}
	}
	return out
}
