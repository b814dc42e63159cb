package sesshoku

// Filter provides a fast iterator over all entities that have a component of
// type `T`. It walks the dense storage of that component directly, so the
// iteration order is the order in which components were attached, perturbed
// by removals (the last element is swapped into the hole).
//
// Adding or removing components of type `T` while iterating is not
// supported. Reset the filter after such mutations.
type Filter[T any] struct {
	store *store[T]
	idx   int
}

// NewFilter creates a new `Filter` that iterates over all entities possessing
// at least the component of type `T`.
//
// Parameters:
//   - w: The World to query.
//
// Returns:
//   - A pointer to the newly created `Filter[T]`.
func NewFilter[T any](w *World) *Filter[T] {
	s, _ := storeFor[T](w)
	return &Filter[T]{store: s, idx: -1}
}

// Reset rewinds the filter's iterator to the beginning.
func (f *Filter[T]) Reset() {
	f.idx = -1
}

// Next advances the filter to the next matching entity. It returns true if an
// entity was found, and false if the iteration is complete. This method must
// be called before accessing the entity or its components.
//
// Example:
//
//	query := sesshoku.NewFilter[sesshoku.Interactor](world)
//	for query.Next() {
//	    // ... process entity
//	}
func (f *Filter[T]) Next() bool {
	f.idx++
	return f.idx < len(f.store.dense)
}

// Entity returns the current `Entity` in the iteration.
func (f *Filter[T]) Entity() Entity {
	return f.store.owners[f.idx]
}

// Get returns a pointer to the component of type `T` for the current entity.
func (f *Filter[T]) Get() *T {
	return &f.store.dense[f.idx]
}

// Len returns the number of entities matched by the filter.
func (f *Filter[T]) Len() int {
	return len(f.store.dense)
}

// Entities returns a copy of all entities that match the filter.
func (f *Filter[T]) Entities() []Entity {
	out := make([]Entity, len(f.store.owners))
	copy(out, f.store.owners)
	return out
}

// Filter2 iterates over entities that have both a `T1` and a `T2`
// component. It walks the storage of `T1` and skips entities whose mask
// lacks `T2`.
type Filter2[T1 any, T2 any] struct {
	world  *World
	store1 *store[T1]
	store2 *store[T2]
	mask   bitmask256
	idx    int
}

// NewFilter2 creates a new `Filter2` over entities having both `T1` and `T2`.
func NewFilter2[T1 any, T2 any](w *World) *Filter2[T1, T2] {
	s1, id1 := storeFor[T1](w)
	s2, id2 := storeFor[T2](w)
	var m bitmask256
	m.set(id1)
	m.set(id2)
	return &Filter2[T1, T2]{world: w, store1: s1, store2: s2, mask: m, idx: -1}
}

// Reset rewinds the filter's iterator to the beginning.
func (f *Filter2[T1, T2]) Reset() {
	f.idx = -1
}

// Next advances to the next entity holding both components.
func (f *Filter2[T1, T2]) Next() bool {
	for {
		f.idx++
		if f.idx >= len(f.store1.dense) {
			return false
		}
		e := f.store1.owners[f.idx]
		if f.world.entities.metas[e.ID].mask.contains(f.mask) {
			return true
		}
	}
}

// Entity returns the current `Entity` in the iteration.
func (f *Filter2[T1, T2]) Entity() Entity {
	return f.store1.owners[f.idx]
}

// Get returns pointers to both components of the current entity.
func (f *Filter2[T1, T2]) Get() (*T1, *T2) {
	e := f.store1.owners[f.idx]
	return &f.store1.dense[f.idx], f.store2.get(e.ID)
}

// Entities returns all entities that match the filter.
func (f *Filter2[T1, T2]) Entities() []Entity {
	out := make([]Entity, 0, len(f.store1.owners))
	for _, e := range f.store1.owners {
		if f.world.entities.metas[e.ID].mask.contains(f.mask) {
			out = append(out, e)
		}
	}
	return out
}
