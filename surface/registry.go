package surface

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// Registry maps identifiers of primitives to their tags. It hands out new IDs
// in ascending order and keeps entries sorted by ID, i.e., in creation order.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	tags *treemap.Map // ID → Tag
	next ID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tags: treemap.NewWithIntComparator(),
		next: 1,
	}
}

// Register allocates a new ID for a primitive with tag t.
func (reg *Registry) Register(t Tag) ID {
	id := reg.next
	reg.next++
	reg.tags.Put(int(id), t)
	return id
}

// Tag returns the tag of primitive id.
func (reg *Registry) Tag(id ID) (Tag, bool) {
	t, ok := reg.tags.Get(int(id))
	if !ok {
		return Tag{}, false
	}
	return t.(Tag), true
}

// Remove unregisters id.
func (reg *Registry) Remove(id ID) {
	reg.tags.Remove(int(id))
}

// Len returns the number of registered primitives.
func (reg *Registry) Len() int {
	return reg.tags.Size()
}

// Find returns the IDs of all primitives matching the query tag q, in
// ascending order.
func (reg *Registry) Find(q Tag) []ID {
	var ids []ID
	it := reg.tags.Iterator()
	for it.Next() {
		if it.Value().(Tag).Matches(q) {
			ids = append(ids, ID(it.Key().(int)))
		}
	}
	return ids
}

// IDs returns all registered IDs in ascending order.
func (reg *Registry) IDs() []ID {
	keys := reg.tags.Keys()
	ids := make([]ID, len(keys))
	for i, k := range keys {
		ids[i] = ID(k.(int))
	}
	return ids
}
