package sesshoku

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingComponent is matched by every *MissingComponentError.
	ErrMissingComponent = errors.New("sesshoku: missing component")
	// ErrInvalidDistance is returned for a non-positive or non-finite interaction distance.
	ErrInvalidDistance = errors.New("sesshoku: max distance must be a positive finite number")
	// ErrUnknownOrder is returned when parsing an unsupported TickOrder.
	ErrUnknownOrder = errors.New("sesshoku: unknown tick order")
)

// MissingComponentError reports that an entity referenced by a system lacks
// a component the system requires. It means the host's entity registry and
// the interaction state went out of sync.
type MissingComponentError struct {
	Entity    Entity
	Component string
}

func (e *MissingComponentError) Error() string {
	return fmt.Sprintf("sesshoku: entity %s has no %s component", e.Entity, e.Component)
}

// Is makes errors.Is(err, ErrMissingComponent) match.
func (e *MissingComponentError) Is(target error) bool {
	return target == ErrMissingComponent
}

func missing(e Entity, component string) error {
	return &MissingComponentError{Entity: e, Component: component}
}
