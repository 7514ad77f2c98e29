package menu

import "sort"

// Regions is a registry of the menu roots that count as "inside" a menu.
// An interaction whose ancestor chain touches none of them is outside.
type Regions struct {
	roots map[string]struct{}
}

// NewRegions returns a registry with the given root IDs registered.
func NewRegions(ids ...string) *Regions {
	r := &Regions{roots: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		r.Register(id)
	}
	return r
}

// Register marks id as an active menu root.
func (r *Regions) Register(id string) {
	if id == "" {
		return
	}
	r.roots[id] = struct{}{}
}

// Unregister removes id from the active menu roots.
func (r *Regions) Unregister(id string) {
	delete(r.roots, id)
}

// Contains reports whether any element of the ancestor chain is a
// registered menu root.
func (r *Regions) Contains(chain ...string) bool {
	if r == nil {
		return false
	}
	for _, id := range chain {
		if _, ok := r.roots[id]; ok {
			return true
		}
	}
	return false
}

// IDs returns the registered root IDs in sorted order.
func (r *Regions) IDs() []string {
	ids := make([]string, 0, len(r.roots))
	for id := range r.roots {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
