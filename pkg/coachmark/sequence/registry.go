package sequence

import "github.com/BrandonKowalski/coachmark/pkg/coachmark/geometry"

// Registry maps step ids to the last measured rectangle of their anchor.
// The last write for an id wins; nothing is ever reset by navigation.
type Registry struct {
	regions map[string]geometry.Rect
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{regions: make(map[string]geometry.Rect)}
}

// Set records the region for id.
func (r *Registry) Set(id string, rect geometry.Rect) {
	r.regions[id] = rect
}

// Lookup returns the region for id. ok is false until the anchor has been
// measured at least once.
func (r *Registry) Lookup(id string) (rect geometry.Rect, ok bool) {
	rect, ok = r.regions[id]
	return rect, ok
}

// Delete forgets the region for id.
func (r *Registry) Delete(id string) {
	delete(r.regions, id)
}

// Len returns the number of known regions.
func (r *Registry) Len() int {
	return len(r.regions)
}
