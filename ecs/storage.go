package ecs

// Registry tracks entity generations and free ids. Destroying an entity bumps
// its generation so stale handles stop resolving.
type Registry struct {
	gen  []generation
	free []entityID
}

// Create allocates a new entity, reusing a freed id when one is available.
func (r *Registry) Create() Entity {
	if r == nil {
		return 0
	}
	if n := len(r.free); n > 0 {
		id := r.free[n-1]
		r.free = r.free[:n-1]
		return makeEntity(id, r.gen[id-1])
	}
	r.gen = append(r.gen, 0)
	return makeEntity(entityID(len(r.gen)), 0)
}

// Destroy invalidates e. It returns false if e was already dead.
func (r *Registry) Destroy(e Entity) bool {
	if !r.IsAlive(e) {
		return false
	}
	id := e.id()
	r.gen[id-1]++
	r.free = append(r.free, id)
	return true
}

// IsAlive reports whether e is a live handle of this registry.
func (r *Registry) IsAlive(e Entity) bool {
	if r == nil || !e.Valid() || int(e.id()) > len(r.gen) {
		return false
	}
	return r.gen[e.id()-1] == e.generation()
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.gen) - len(r.free)
}
