package sesshoku

import "reflect"

// MaxEventTypes defines the maximum number of unique event types that can be
// registered in the EventBus. This value is fixed at 256.
const MaxEventTypes = 256

// EventBus dispatches events synchronously to every handler subscribed to the
// event's type. The interaction plugin publishes each InteractionEvent on the
// world's bus as soon as it is emitted.
//
// The zero value is ready to use.
type EventBus struct {
	eventTypeMap    map[reflect.Type]uint8
	handlers        [MaxEventTypes][]any
	nextEventTypeID uint16
}

// Subscribe registers a handler function to be called when an event of type `T`
// is published. Handlers are stored in the order they are subscribed.
//
// Parameters:
//   - bus: The EventBus instance to subscribe to.
//   - handler: A function that takes a single argument of type `T`.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	id := bus.getEventTypeID(reflect.TypeFor[T]())
	if cap(bus.handlers[id]) == 0 {
		bus.handlers[id] = make([]any, 0, 4)
	}
	bus.handlers[id] = append(bus.handlers[id], handler)
}

// Publish broadcasts an event of type `T` to all registered handlers for that
// type. The handlers are called synchronously in the order they were subscribed.
func Publish[T any](bus *EventBus, event T) {
	if id, ok := bus.eventTypeMap[reflect.TypeFor[T]()]; ok {
		for _, h := range bus.handlers[id] {
			h.(func(T))(event)
		}
	}
}

// getEventTypeID retrieves or assigns an ID for the event type.
func (bus *EventBus) getEventTypeID(t reflect.Type) uint8 {
	if bus.eventTypeMap == nil {
		bus.eventTypeMap = make(map[reflect.Type]uint8)
	}
	if id, ok := bus.eventTypeMap[t]; ok {
		return id
	}
	if bus.nextEventTypeID >= MaxEventTypes {
		panic("ecs: too many event types")
	}
	id := uint8(bus.nextEventTypeID)
	bus.nextEventTypeID++
	bus.eventTypeMap[t] = id
	return id
}

// Events is a FIFO queue of events of type `T`. Producers Send, the owning
// system drains the whole queue once per pass.
//
// The zero value is ready to use.
type Events[T any] struct {
	items []T
}

// NewEvents creates an empty queue with room for capacity events.
func NewEvents[T any](capacity int) *Events[T] {
	return &Events[T]{items: make([]T, 0, capacity)}
}

// Send appends an event to the queue.
func (q *Events[T]) Send(event T) {
	q.items = append(q.items, event)
}

// Drain returns every queued event in send order and empties the queue. The
// returned slice is owned by the caller.
func (q *Events[T]) Drain() []T {
	if len(q.items) == 0 {
		return nil
	}
	out := make([]T, len(q.items))
	copy(out, q.items)
	clear(q.items)
	q.items = q.items[:0]
	return out
}

// Read returns the queued events without consuming them. The slice is only
// valid until the next Send, Drain or Clear.
func (q *Events[T]) Read() []T {
	return q.items
}

// Len returns the number of queued events.
func (q *Events[T]) Len() int {
	return len(q.items)
}

// Clear drops every queued event.
func (q *Events[T]) Clear() {
	clear(q.items)
	q.items = q.items[:0]
}
