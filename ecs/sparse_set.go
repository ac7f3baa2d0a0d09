package ecs

// Table is a sparse set of values keyed by Entity. Dense storage keeps
// insertion order, including across removals, so iteration is deterministic.
//
// Pointers returned by Get and Each stay valid until the next Insert or
// Remove.
type Table[T any] struct {
	denseEntities []Entity
	denseValues   []T
	sparse        []int
}

// NewTable returns an empty table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{}
}

// Has reports whether e (including its generation) is stored.
func (t *Table[T]) Has(e Entity) bool {
	if t == nil || !e.Valid() {
		return false
	}
	slot := int(e.id()) - 1
	if slot >= len(t.sparse) {
		return false
	}
	idx := t.sparse[slot]
	return idx >= 0 && idx < len(t.denseEntities) && t.denseEntities[idx] == e
}

// Get returns a pointer to the value stored for e, or false on a miss.
func (t *Table[T]) Get(e Entity) (*T, bool) {
	if !t.Has(e) {
		return nil, false
	}
	return &t.denseValues[t.sparse[int(e.id())-1]], true
}

// Insert stores v for e, replacing any existing value in place.
func (t *Table[T]) Insert(e Entity, v T) {
	if t == nil || !e.Valid() {
		return
	}
	slot := int(e.id()) - 1
	for len(t.sparse) <= slot {
		t.sparse = append(t.sparse, -1)
	}
	if idx := t.sparse[slot]; idx >= 0 && idx < len(t.denseEntities) && t.denseEntities[idx].id() == e.id() {
		t.denseEntities[idx] = e
		t.denseValues[idx] = v
		return
	}
	t.denseEntities = append(t.denseEntities, e)
	t.denseValues = append(t.denseValues, v)
	t.sparse[slot] = len(t.denseEntities) - 1
}

// Remove deletes the value for e. Later entries shift down by one so order is
// preserved.
func (t *Table[T]) Remove(e Entity) bool {
	if !t.Has(e) {
		return false
	}
	slot := int(e.id()) - 1
	idx := t.sparse[slot]

	copy(t.denseEntities[idx:], t.denseEntities[idx+1:])
	copy(t.denseValues[idx:], t.denseValues[idx+1:])
	last := len(t.denseEntities) - 1
	var zero T
	t.denseValues[last] = zero
	t.denseEntities = t.denseEntities[:last]
	t.denseValues = t.denseValues[:last]

	for i := idx; i < len(t.denseEntities); i++ {
		t.sparse[int(t.denseEntities[i].id())-1] = i
	}
	t.sparse[slot] = -1
	return true
}

// Len returns the number of stored values.
func (t *Table[T]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.denseEntities)
}

// Entities returns the dense entity list in insertion order. Callers must not
// modify it.
func (t *Table[T]) Entities() []Entity {
	if t == nil {
		return nil
	}
	return t.denseEntities
}

// Each calls fn for every stored value in insertion order. Returning false
// stops the iteration.
func (t *Table[T]) Each(fn func(e Entity, v *T) bool) {
	if t == nil || fn == nil {
		return
	}
	for i := range t.denseEntities {
		if !fn(t.denseEntities[i], &t.denseValues[i]) {
			return
		}
	}
}
