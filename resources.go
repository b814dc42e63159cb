package sesshoku

import "reflect"

// Resources holds world-global values, at most one per type. The plugin
// keeps its fire queue, interaction queue and event bus here so that any
// system holding the World can reach them.
//
// Resources are stored and looked up by pointer type: GetResource[T]
// finds the value added as a *T.
type Resources struct {
	items map[reflect.Type]any
}

// Add stores res under its dynamic type. Panics if res is nil or if a
// resource of the same type already exists.
func (r *Resources) Add(res any) {
	if res == nil {
		panic("cannot add nil resource")
	}
	t := reflect.TypeOf(res)
	if r.items == nil {
		r.items = make(map[reflect.Type]any)
	}
	if _, ok := r.items[t]; ok {
		panic("resource of the same type already exists")
	}
	r.items[t] = res
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	return len(r.items)
}

// HasResource reports whether a resource of type *T exists.
func HasResource[T any](r *Resources) bool {
	_, ok := r.items[reflect.TypeFor[*T]()]
	return ok
}

// GetResource returns the resource of type *T, or nil.
func GetResource[T any](r *Resources) *T {
	if res, ok := r.items[reflect.TypeFor[*T]()]; ok {
		return res.(*T)
	}
	return nil
}

// ResourceOrInsert returns the resource of type *T, adding the value built by
// create when none exists yet.
func ResourceOrInsert[T any](r *Resources, create func() *T) *T {
	if res := GetResource[T](r); res != nil {
		return res
	}
	res := create()
	r.Add(res)
	return res
}
