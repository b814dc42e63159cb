package sesshoku

// Builder2 creates entities that start with a T1 and a T2 component. The
// component stores are resolved once, so spawning many entities of the same
// shape skips the per-call type lookup of SetComponent.
type Builder2[T1 any, T2 any] struct {
	world  *World
	store1 *store[T1]
	store2 *store[T2]
	mask   bitmask256
}

// NewBuilder2 creates a builder for entities carrying T1 and T2.
func NewBuilder2[T1 any, T2 any](w *World) *Builder2[T1, T2] {
	s1, id1 := storeFor[T1](w)
	s2, id2 := storeFor[T2](w)
	var mask bitmask256
	mask.set(id1)
	mask.set(id2)
	return &Builder2[T1, T2]{world: w, store1: s1, store2: s2, mask: mask}
}

// NewEntity creates one entity with the given component values.
func (b *Builder2[T1, T2]) NewEntity(v1 T1, v2 T2) Entity {
	e := b.world.CreateEntity()
	b.attach(e, v1, v2)
	return e
}

// NewEntities creates count entities, each holding a copy of v1 and v2.
func (b *Builder2[T1, T2]) NewEntities(count int, v1 T1, v2 T2) []Entity {
	ents := b.world.CreateEntities(count)
	for _, e := range ents {
		b.attach(e, v1, v2)
	}
	return ents
}

func (b *Builder2[T1, T2]) attach(e Entity, v1 T1, v2 T2) {
	meta := &b.world.entities.metas[e.ID]
	meta.mask.or(b.mask)
	b.store1.insert(e, v1)
	b.store2.insert(e, v2)
}
