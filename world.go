package sesshoku

import (
	"fmt"
	"reflect"
)

// MaxComponentTypes defines the maximum number of unique component types that can be
// registered in a World. This value is fixed at 256.
const MaxComponentTypes = 256

// Entity represents a unique identifier for an object in the World. It combines
// a 32-bit ID with a 32-bit version to ensure that recycled IDs are not confused
// with new entities.
type Entity struct {
	// ID is the unique, recyclable identifier for the entity.
	ID uint32
	// Version is a generation counter to protect against stale entity references.
	// It is incremented each time an entity ID is reused.
	Version uint32
}

// String formats the entity as "id:version".
func (e Entity) String() string {
	return fmt.Sprintf("%d:%d", e.ID, e.Version)
}

// less orders entities by ID, then by version.
func (e Entity) less(o Entity) bool {
	if e.ID != o.ID {
		return e.ID < o.ID
	}
	return e.Version < o.Version
}

// entityMeta holds the component mask and liveness of an entity.
type entityMeta struct {
	mask    bitmask256 // components attached to the entity
	version uint32     // current version, 0 if the entity is dead
}

// entityRegistry tracks entity liveness and recycles IDs.
type entityRegistry struct {
	freeIDs       []uint32     // stack of recycled entity IDs
	metas         []entityMeta // indexed by entity ID
	capacity      int          // current maximum number of entities
	nextEntityVer uint32       // version for the next created entity
	alive         int          // number of live entities
}

// componentRegistry maps component types to their IDs and storages.
type componentRegistry struct {
	typeToID       map[reflect.Type]uint8
	idToType       [MaxComponentTypes]reflect.Type
	stores         [MaxComponentTypes]componentStore
	nextCompTypeID uint16 // counter for assigning new component type IDs
}

// World owns every entity, its components and the global resources shared
// by the systems that run on it.
//
// A World is not safe for concurrent mutation. Systems may read it from
// several goroutines as long as nothing creates, removes or re-attaches
// components at the same time.
type World struct {
	resources  *Resources
	entities   entityRegistry
	components componentRegistry
}

// NewWorld creates and initializes a new World with a specified initial
// capacity for entities. It pre-allocates memory for the entity metadata and
// free ID list to optimize performance.
//
// Parameters:
//   - initialCapacity: The number of entities to pre-allocate memory for.
//     The world grows automatically when the capacity is exhausted.
//
// Returns:
//   - A pointer to the newly created World.
func NewWorld(initialCapacity int) *World {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	w := &World{
		resources: &Resources{},
		components: componentRegistry{
			typeToID: make(map[reflect.Type]uint8, 16),
		},
		entities: entityRegistry{
			capacity:      initialCapacity,
			freeIDs:       make([]uint32, initialCapacity),
			metas:         make([]entityMeta, initialCapacity),
			nextEntityVer: 1,
		},
	}
	for i := range w.entities.freeIDs {
		w.entities.freeIDs[i] = uint32(initialCapacity - 1 - i)
	}
	return w
}

// Resources returns the world's resource manager. Systems use it to share
// event queues, buses and configuration without holding direct references
// to each other.
func (w *World) Resources() *Resources {
	return w.resources
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.entities.alive
}

// Capacity returns the number of entity slots currently allocated.
func (w *World) Capacity() int {
	return w.entities.capacity
}

// IsValid checks if the entity is currently alive in the world. An entity is
// valid if its ID is within bounds and its version matches the world's current
// version for that ID. This prevents "stale" entity references from accessing
// incorrect data after an entity has been deleted and its ID recycled.
func (w *World) IsValid(e Entity) bool {
	if int(e.ID) >= len(w.entities.metas) {
		return false
	}
	meta := w.entities.metas[e.ID]
	return meta.version != 0 && meta.version == e.Version
}

// CreateEntity creates a new entity with no components.
func (w *World) CreateEntity() Entity {
	if len(w.entities.freeIDs) == 0 {
		w.expand(1)
	}
	last := len(w.entities.freeIDs) - 1
	id := w.entities.freeIDs[last]
	w.entities.freeIDs = w.entities.freeIDs[:last]
	meta := &w.entities.metas[id]
	meta.mask = bitmask256{}
	meta.version = w.entities.nextEntityVer
	w.entities.nextEntityVer++
	w.entities.alive++
	return Entity{ID: id, Version: meta.version}
}

// CreateEntities creates a batch of entities with no components and returns them.
func (w *World) CreateEntities(count int) []Entity {
	if count <= 0 {
		return nil
	}
	if len(w.entities.freeIDs) < count {
		w.expand(count - len(w.entities.freeIDs))
	}
	ents := make([]Entity, count)
	for i := range ents {
		ents[i] = w.CreateEntity()
	}
	return ents
}

// RemoveEntity removes a single entity together with all of its components.
// Stale or already removed entities are ignored.
func (w *World) RemoveEntity(e Entity) {
	if !w.IsValid(e) {
		return
	}
	meta := &w.entities.metas[e.ID]
	for cid := 0; cid < int(w.components.nextCompTypeID); cid++ {
		if meta.mask.containsBit(uint8(cid)) {
			w.components.stores[cid].remove(e.ID)
		}
	}
	meta.mask = bitmask256{}
	meta.version = 0
	w.entities.freeIDs = append(w.entities.freeIDs, e.ID)
	w.entities.alive--
}

// RemoveEntities removes a batch of entities.
func (w *World) RemoveEntities(ents []Entity) {
	for _, e := range ents {
		w.RemoveEntity(e)
	}
}

// ClearEntities removes all entities from the world, recycling their IDs and
// emptying every component storage. Registered component types and resources
// are kept.
func (w *World) ClearEntities() {
	for i := range w.entities.metas {
		w.entities.metas[i] = entityMeta{}
	}
	w.entities.freeIDs = w.entities.freeIDs[:0]
	for i := w.entities.capacity - 1; i >= 0; i-- {
		w.entities.freeIDs = append(w.entities.freeIDs, uint32(i))
	}
	for cid := 0; cid < int(w.components.nextCompTypeID); cid++ {
		w.components.stores[cid].clear()
	}
	w.entities.alive = 0
}

// expand grows the entity capacity by at least additional slots.
func (w *World) expand(additional int) {
	oldCap := w.entities.capacity
	newCap := oldCap * 2
	if newCap == 0 {
		newCap = 1
	}
	if newCap < oldCap+additional {
		newCap = oldCap + additional
	}
	delta := newCap - oldCap
	w.entities.metas = append(w.entities.metas, make([]entityMeta, delta)...)
	// Keep lower IDs on top of the stack so they are handed out first.
	newFree := make([]uint32, 0, len(w.entities.freeIDs)+delta)
	for i := newCap - 1; i >= oldCap; i-- {
		newFree = append(newFree, uint32(i))
	}
	newFree = append(newFree, w.entities.freeIDs...)
	w.entities.freeIDs = newFree
	w.entities.capacity = newCap
}

// getCompTypeID registers or fetches a component type ID for t.
func (w *World) getCompTypeID(t reflect.Type) uint8 {
	if id, ok := w.components.typeToID[t]; ok {
		return id
	}
	if w.components.nextCompTypeID >= MaxComponentTypes {
		panic("ecs: too many component types")
	}
	id := uint8(w.components.nextCompTypeID)
	w.components.typeToID[t] = id
	w.components.idToType[id] = t
	w.components.nextCompTypeID++
	return id
}
