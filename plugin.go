package sesshoku

import (
	"github.com/edwinsyarief/sesshoku/logger"
	"github.com/sirupsen/logrus"
)

// Plugin wires the targeting and trigger stages onto a World and runs them
// once per Update.
//
// Entities become interactors or interactables by carrying a Transform plus
// an Interactor or an Interactable. The plugin never adds or removes those
// components; it only updates Interactor targets.
//
// The fire request queue, the interaction output queue and the EventBus are
// stored as world resources, so other systems can reach them with
// GetResource.
type Plugin struct {
	world        *World
	cfg          Config
	log          logrus.FieldLogger
	fired        *Events[FiredEvent]
	interactions *Events[InteractionEvent]
	bus          *EventBus
	targeting    *TargetingSystem
	trigger      *TriggerSystem

	tick          uint64
	lastTargeting TargetingReport
	lastTrigger   TriggerReport
}

// PluginOption configures a Plugin.
type PluginOption func(*Plugin)

// WithLogger sets the logger used by both stages. Defaults to a discarding
// logger, which a nil log leaves in place.
func WithLogger(log logrus.FieldLogger) PluginOption {
	return func(p *Plugin) {
		if log != nil {
			p.log = log
		}
	}
}

// NewPlugin installs the interaction stages on w.
func NewPlugin(w *World, cfg Config, opts ...PluginOption) (*Plugin, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Plugin{world: w, cfg: cfg, log: logger.Discard()}
	for _, opt := range opts {
		opt(p)
	}

	res := w.Resources()
	p.fired = ResourceOrInsert(res, func() *Events[FiredEvent] { return NewEvents[FiredEvent](16) })
	p.interactions = ResourceOrInsert(res, func() *Events[InteractionEvent] { return NewEvents[InteractionEvent](16) })
	p.bus = ResourceOrInsert(res, func() *EventBus { return &EventBus{} })

	p.targeting = NewTargetingSystem(w, p.log, cfg.Workers)
	p.trigger = NewTriggerSystem(w, p.log, p.fired, p.interactions, p.bus)

	p.log.WithFields(logrus.Fields{
		"workers": cfg.Workers,
		"order":   cfg.Order.String(),
	}).Info("Interaction plugin installed.")
	return p, nil
}

// World returns the world the plugin runs on.
func (p *Plugin) World() *World {
	return p.world
}

// Fire queues an interaction request from the interactor entity. It is
// processed by the next trigger pass.
func (p *Plugin) Fire(interactor Entity) {
	p.fired.Send(FiredEvent{Interactor: interactor})
}

// Subscribe registers a handler called synchronously for every interaction
// event, as it is emitted.
func (p *Plugin) Subscribe(handler func(InteractionEvent)) {
	Subscribe(p.bus, handler)
}

// Update runs one tick: both stages, in the configured order.
func (p *Plugin) Update() {
	switch p.cfg.Order {
	case OrderTriggerFirst:
		p.lastTrigger = p.trigger.Update()
		p.lastTargeting = p.targeting.Update()
	default:
		p.lastTargeting = p.targeting.Update()
		p.lastTrigger = p.trigger.Update()
	}
	p.tick++
}

// Interactions returns a copy of the events emitted by the last trigger pass,
// in emission order.
func (p *Plugin) Interactions() []InteractionEvent {
	src := p.interactions.Read()
	out := make([]InteractionEvent, len(src))
	copy(out, src)
	return out
}

// Tick returns the number of completed updates.
func (p *Plugin) Tick() uint64 {
	return p.tick
}

// LastTargeting returns the report of the last targeting pass.
func (p *Plugin) LastTargeting() TargetingReport {
	return p.lastTargeting
}

// LastTrigger returns the report of the last trigger pass.
func (p *Plugin) LastTrigger() TriggerReport {
	return p.lastTrigger
}

// ----------------------------------------
// Spawn helpers
// ----------------------------------------

// SpawnInteractor creates an entity with a Transform and an empty Interactor.
func SpawnInteractor(w *World, tf Transform) Entity {
	return NewBuilder2[Transform, Interactor](w).NewEntity(tf, NewInteractor())
}

// SpawnInteractable creates an entity with a Transform and the given Interactable.
func SpawnInteractable(w *World, tf Transform, it Interactable) Entity {
	return NewBuilder2[Transform, Interactable](w).NewEntity(tf, it)
}
