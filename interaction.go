package sesshoku

import (
	"math"
	"slices"
)

// ViewHalfAngle is the half-angle, in radians, of the cone in front of an
// interactor inside which interactables can be targeted (22.5°).
const ViewHalfAngle = math.Pi / 8

// Interactor enables an entity to request interactions. Pass the entity to
// Plugin.Fire to interact with the interactables currently in range.
//
// Targets and closest are maintained by the targeting system; the zero
// value is a valid interactor with no targets.
type Interactor struct {
	targets    map[Entity]struct{}
	closest    Entity
	hasClosest bool
}

// NewInteractor returns an interactor with no targets. The target set is
// allocated by the first targeting pass, so copies of the returned value
// never share state.
func NewInteractor() Interactor {
	return Interactor{}
}

// Targets returns every interactable in range, sorted by entity ID then
// version.
func (i *Interactor) Targets() []Entity {
	out := make([]Entity, 0, len(i.targets))
	for e := range i.targets {
		out = append(out, e)
	}
	slices.SortFunc(out, compareEntities)
	return out
}

// Closest returns the in-range interactable with the smallest angular
// deviation from the interactor's forward direction.
func (i *Interactor) Closest() (Entity, bool) {
	return i.closest, i.hasClosest
}

// HasTarget reports whether e is currently in range.
func (i *Interactor) HasTarget(e Entity) bool {
	_, ok := i.targets[e]
	return ok
}

// Len returns the number of targets in range.
func (i *Interactor) Len() int {
	return len(i.targets)
}

// reset clears targets and closest, keeping the allocated set.
func (i *Interactor) reset() {
	if i.targets == nil {
		i.targets = make(map[Entity]struct{})
	} else {
		clear(i.targets)
	}
	i.closest = Entity{}
	i.hasClosest = false
}

func (i *Interactor) insert(e Entity) {
	if i.targets == nil {
		i.targets = make(map[Entity]struct{})
	}
	i.targets[e] = struct{}{}
}

func (i *Interactor) setClosest(e Entity) {
	i.closest = e
	i.hasClosest = true
}

// Possibility decides whether an interactable can currently be interacted
// with, given the live world state. Hosts attach one to an Interactable to
// suppress it without removing the component.
type Possibility interface {
	IsPossible(e Entity, w *World) bool
}

// PossibilityFunc adapts a plain function to Possibility.
type PossibilityFunc func(e Entity, w *World) bool

// IsPossible calls f(e, w).
func (f PossibilityFunc) IsPossible(e Entity, w *World) bool {
	return f(e, w)
}

// Interactable enables an entity to receive interactions from interactors
// in range.
type Interactable struct {
	// Name and Description are display metadata for the host UI.
	Name        string
	Description string
	// Enabled excludes the interactable from targeting when false.
	Enabled bool
	// Possible optionally gates the interactable on world state.
	Possible Possibility

	maxDistanceSquared float32
	exclusive          bool
}

// InteractableOption configures an Interactable built by NewInteractable.
type InteractableOption func(*Interactable)

// WithName sets the display name.
func WithName(name string) InteractableOption {
	return func(it *Interactable) { it.Name = name }
}

// WithDescription sets the display description.
func WithDescription(description string) InteractableOption {
	return func(it *Interactable) { it.Description = description }
}

// WithPossibility attaches a dynamic gate.
func WithPossibility(p Possibility) InteractableOption {
	return func(it *Interactable) { it.Possible = p }
}

// Disabled creates the interactable disabled.
func Disabled() InteractableOption {
	return func(it *Interactable) { it.Enabled = false }
}

// NewInteractable builds an enabled interactable reachable from up to
// maxDistance away.
//
// If exclusive, the interactable is only interacted with when it is the
// closest target of the interactor, and the interaction is then not
// delivered to any other interactable in range.
func NewInteractable(maxDistance float32, exclusive bool, opts ...InteractableOption) (Interactable, error) {
	d := float64(maxDistance)
	if !(d > 0) || math.IsInf(d, 0) {
		return Interactable{}, ErrInvalidDistance
	}
	it := Interactable{
		Enabled:            true,
		maxDistanceSquared: maxDistance * maxDistance,
		exclusive:          exclusive,
	}
	for _, opt := range opts {
		opt(&it)
	}
	return it, nil
}

// DefaultInteractable returns an enabled, non-exclusive interactable with a
// range of 1.
func DefaultInteractable() Interactable {
	return Interactable{Enabled: true, maxDistanceSquared: 1}
}

// Exclusive reports whether the interactable suppresses other targets.
func (it Interactable) Exclusive() bool {
	return it.exclusive
}

// MaxDistanceSquared returns the squared interaction range.
func (it Interactable) MaxDistanceSquared() float32 {
	return it.maxDistanceSquared
}

// MaxDistance returns the interaction range.
func (it Interactable) MaxDistance() float32 {
	return float32(math.Sqrt(float64(it.maxDistanceSquared)))
}

// FiredEvent requests an interaction from the given interactor entity.
type FiredEvent struct {
	Interactor Entity
}

// InteractionEvent is emitted once a FiredEvent has been processed, for
// each interactable receiving the interaction. Hosts consume it to perform
// the actual action.
type InteractionEvent struct {
	// Interactor is the entity which triggered the interaction.
	Interactor Entity
	// Interactable is the entity receiving the interaction.
	Interactable Entity
}

func compareEntities(a, b Entity) int {
	switch {
	case a.less(b):
		return -1
	case b.less(a):
		return 1
	default:
		return 0
	}
}
