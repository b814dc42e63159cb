package sesshoku

// GetComponent retrieves a pointer to the component of type `T` for the given
// entity. It provides a direct, type-safe way to access component data.
//
// The pointer stays valid until a component of the same type is added to or
// removed from any entity. Do not keep it across such mutations.
//
// Parameters:
//   - w: The World containing the entity.
//   - e: The Entity from which to retrieve the component.
//
// Returns:
//   - A pointer to the component data (*T), or nil if the entity is invalid or
//     does not have the component.
func GetComponent[T any](w *World, e Entity) *T {
	if !w.IsValid(e) {
		return nil
	}
	s, id := storeFor[T](w)
	if !w.entities.metas[e.ID].mask.containsBit(id) {
		return nil
	}
	return s.get(e.ID)
}

// HasComponent reports whether the entity is valid and has a component of type `T`.
func HasComponent[T any](w *World, e Entity) bool {
	if !w.IsValid(e) {
		return false
	}
	_, id := storeFor[T](w)
	return w.entities.metas[e.ID].mask.containsBit(id)
}

// SetComponent adds a component of type `T` with the given value to an entity,
// or updates it if the component already exists.
//
// Parameters:
//   - w: The World where the entity resides.
//   - e: The Entity to modify.
//   - val: The component data of type `T` to set.
//
// Returns:
//   - false if the entity is invalid, true otherwise.
func SetComponent[T any](w *World, e Entity, val T) bool {
	if !w.IsValid(e) {
		return false
	}
	s, id := storeFor[T](w)
	meta := &w.entities.metas[e.ID]
	meta.mask.set(id)
	s.insert(e, val)
	return true
}

// RemoveComponent removes the component of type `T` from the entity.
//
// Returns:
//   - true if a component was removed, false if the entity is invalid or did
//     not have it.
func RemoveComponent[T any](w *World, e Entity) bool {
	if !w.IsValid(e) {
		return false
	}
	s, id := storeFor[T](w)
	meta := &w.entities.metas[e.ID]
	if !meta.mask.containsBit(id) {
		return false
	}
	s.remove(e.ID)
	meta.mask.unset(id)
	return true
}

// Count returns the number of entities that have a component of type `T`.
func Count[T any](w *World) int {
	s, _ := storeFor[T](w)
	return s.len()
}
