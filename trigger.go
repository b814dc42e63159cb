package sesshoku

import (
	"github.com/sirupsen/logrus"
)

// Dispatch decides which interactables receive the interaction requested by
// interactor and appends the resulting events to dst:
//
//   - no closest target: nothing;
//   - exclusive closest target: only (interactor, closest);
//   - otherwise: one event per non-exclusive target, in Targets order.
//
// A missing Interactor on the requesting entity, or a missing Interactable on
// one of its targets, returns a *MissingComponentError and dst unchanged.
func Dispatch(w *World, interactor Entity, dst []InteractionEvent) ([]InteractionEvent, error) {
	in := GetComponent[Interactor](w, interactor)
	if in == nil {
		return dst, missing(interactor, "Interactor")
	}
	closest, ok := in.Closest()
	if !ok {
		return dst, nil
	}
	target := GetComponent[Interactable](w, closest)
	if target == nil {
		return dst, missing(closest, "Interactable")
	}
	if target.exclusive {
		return append(dst, InteractionEvent{Interactor: interactor, Interactable: closest}), nil
	}

	start := len(dst)
	for _, e := range in.Targets() {
		it := GetComponent[Interactable](w, e)
		if it == nil {
			return dst[:start], missing(e, "Interactable")
		}
		if !it.exclusive {
			dst = append(dst, InteractionEvent{Interactor: interactor, Interactable: e})
		}
	}
	return dst, nil
}

// TriggerReport summarizes one trigger pass.
type TriggerReport struct {
	Requests      int // fire requests drained
	Notifications int // interaction events emitted
	Skipped       int // malformed requests
	Errors        []error
}

// TriggerSystem drains the fire request queue and emits interaction events.
type TriggerSystem struct {
	world *World
	log   logrus.FieldLogger
	fired *Events[FiredEvent]
	out   *Events[InteractionEvent]
	bus   *EventBus
	buf   []InteractionEvent
}

// NewTriggerSystem creates the trigger stage. Events of a pass are written to
// out, which is cleared at the start of every pass, and published on bus.
func NewTriggerSystem(w *World, log logrus.FieldLogger, fired *Events[FiredEvent], out *Events[InteractionEvent], bus *EventBus) *TriggerSystem {
	return &TriggerSystem{
		world: w,
		log:   log.WithField("component", "trigger"),
		fired: fired,
		out:   out,
		bus:   bus,
	}
}

// Update drains every queued fire request. Requests sent while the pass runs,
// for example from an event handler, wait for the next pass.
func (s *TriggerSystem) Update() TriggerReport {
	var report TriggerReport
	s.out.Clear()
	requests := s.fired.Drain()
	report.Requests = len(requests)

	for _, req := range requests {
		var err error
		s.buf, err = Dispatch(s.world, req.Interactor, s.buf[:0])
		if err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, err)
			s.log.WithField("interactor", req.Interactor.String()).WithError(err).Error("Fire request skipped.")
			continue
		}
		for _, ev := range s.buf {
			s.out.Send(ev)
			report.Notifications++
			s.log.WithFields(logrus.Fields{
				"interactor":   ev.Interactor.String(),
				"interactable": ev.Interactable.String(),
			}).Debug("Interaction emitted.")
		}
		for _, ev := range s.buf {
			Publish(s.bus, ev)
		}
	}
	return report
}
