package sesshoku

import "reflect"

// componentStore is the type-erased view of a storage the World needs to
// remove or clear components without knowing their type.
type componentStore interface {
	remove(id uint32) bool
	clear()
	len() int
}

// store is a sparse set holding the components of type T. Components are
// packed in dense, and sparse maps an entity ID to its dense index (-1 when
// the entity has no such component). Removal swaps the last element in.
type store[T any] struct {
	sparse []int32
	dense  []T
	owners []Entity
}

func newStore[T any](capacity int) *store[T] {
	s := &store[T]{
		sparse: make([]int32, capacity),
		dense:  make([]T, 0, 16),
		owners: make([]Entity, 0, 16),
	}
	for i := range s.sparse {
		s.sparse[i] = -1
	}
	return s
}

// index returns the dense index of the entity, or -1.
func (s *store[T]) index(id uint32) int {
	if int(id) >= len(s.sparse) {
		return -1
	}
	return int(s.sparse[id])
}

// grow makes sparse large enough to address id.
func (s *store[T]) grow(id uint32) {
	if int(id) < len(s.sparse) {
		return
	}
	newLen := max(2*len(s.sparse), int(id)+1)
	old := len(s.sparse)
	s.sparse = append(s.sparse, make([]int32, newLen-old)...)
	for i := old; i < newLen; i++ {
		s.sparse[i] = -1
	}
}

// insert stores v for e, overwriting any existing value, and returns a
// pointer to the stored component.
func (s *store[T]) insert(e Entity, v T) *T {
	if idx := s.index(e.ID); idx >= 0 {
		s.dense[idx] = v
		s.owners[idx] = e
		return &s.dense[idx]
	}
	s.grow(e.ID)
	s.sparse[e.ID] = int32(len(s.dense))
	s.dense = append(s.dense, v)
	s.owners = append(s.owners, e)
	return &s.dense[len(s.dense)-1]
}

// get returns a pointer to the component of the entity, or nil.
func (s *store[T]) get(id uint32) *T {
	idx := s.index(id)
	if idx < 0 {
		return nil
	}
	return &s.dense[idx]
}

func (s *store[T]) remove(id uint32) bool {
	idx := s.index(id)
	if idx < 0 {
		return false
	}
	last := len(s.dense) - 1
	if idx < last {
		s.dense[idx] = s.dense[last]
		s.owners[idx] = s.owners[last]
		s.sparse[s.owners[idx].ID] = int32(idx)
	}
	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.owners = s.owners[:last]
	s.sparse[id] = -1
	return true
}

func (s *store[T]) clear() {
	for _, e := range s.owners {
		s.sparse[e.ID] = -1
	}
	clear(s.dense)
	s.dense = s.dense[:0]
	s.owners = s.owners[:0]
}

func (s *store[T]) len() int {
	return len(s.dense)
}

// storeFor returns the storage of component type T, registering the type on
// first use, together with the component ID.
func storeFor[T any](w *World) (*store[T], uint8) {
	id := w.getCompTypeID(reflect.TypeFor[T]())
	if s := w.components.stores[id]; s != nil {
		return s.(*store[T]), id
	}
	s := newStore[T](w.entities.capacity)
	w.components.stores[id] = s
	return s, id
}
