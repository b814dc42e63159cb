package sesshoku

import (
	"testing"
)

func newPlugin(t *testing.T, w *World, order TickOrder) *Plugin {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Order = order
	p, err := NewPlugin(w, cfg)
	if err != nil {
		t.Fatalf("NewPlugin: %v", err)
	}
	return p
}

func TestPluginTargetingFirstHasNoStaleness(t *testing.T) {
	w := NewWorld(4)
	p := newPlugin(t, w, OrderTargetingFirst)
	player := SpawnInteractor(w, facingZ)
	a := SpawnInteractable(w, NewTransform(V3(0, 0, 0.5), V3(0, 0, 1)), mustInteractable(t, 1, false))

	p.Fire(player)
	p.Update()
	expectEvents(t, p.Interactions(), InteractionEvent{Interactor: player, Interactable: a})

	// Targets and closest reflect the tick in which the trigger ran.
	in := GetComponent[Interactor](w, player)
	if closest, ok := in.Closest(); !ok || closest != a || !in.HasTarget(a) {
		t.Errorf("expected closest %v, got %v %v", a, closest, ok)
	}

	// Moving out of range is seen by a fire request in the same tick.
	GetComponent[Transform](w, a).Position = V3(0, 0, 3)
	p.Fire(player)
	p.Update()
	if got := p.Interactions(); len(got) != 0 {
		t.Errorf("expected no interactions once out of range, got %v", got)
	}
	if p.Tick() != 2 {
		t.Errorf("expected tick 2, got %d", p.Tick())
	}
}

func TestPluginTriggerFirstSeesPreviousTick(t *testing.T) {
	w := NewWorld(4)
	p := newPlugin(t, w, OrderTriggerFirst)
	player := SpawnInteractor(w, facingZ)
	a := SpawnInteractable(w, NewTransform(V3(0, 0, 0.5), V3(0, 0, 1)), mustInteractable(t, 1, false))

	// No targeting pass has run yet.
	p.Fire(player)
	p.Update()
	if got := p.Interactions(); len(got) != 0 {
		t.Errorf("expected no interactions on the first tick, got %v", got)
	}

	p.Fire(player)
	p.Update()
	expectEvents(t, p.Interactions(), InteractionEvent{Interactor: player, Interactable: a})

	// Out of range now, but the trigger still sees last tick's targets.
	GetComponent[Transform](w, a).Position = V3(0, 0, 3)
	p.Fire(player)
	p.Update()
	expectEvents(t, p.Interactions(), InteractionEvent{Interactor: player, Interactable: a})

	p.Fire(player)
	p.Update()
	if got := p.Interactions(); len(got) != 0 {
		t.Errorf("expected no interactions one tick later, got %v", got)
	}
}

func TestPluginTriggerFirstDespawnedTargetIsSkipped(t *testing.T) {
	w := NewWorld(4)
	p := newPlugin(t, w, OrderTriggerFirst)
	player := SpawnInteractor(w, facingZ)
	a := SpawnInteractable(w, NewTransform(V3(0, 0, 0.5), V3(0, 0, 1)), mustInteractable(t, 1, false))
	p.Update()

	w.RemoveEntity(a)
	p.Fire(player)
	p.Update()

	if got := p.Interactions(); len(got) != 0 {
		t.Errorf("expected no interactions, got %v", got)
	}
	if report := p.LastTrigger(); report.Skipped != 1 {
		t.Errorf("expected the stale request to be skipped, got %+v", report)
	}
	if in := GetComponent[Interactor](w, player); in.Len() != 0 {
		t.Errorf("expected targeting to drop the removed entity, got %v", in.Targets())
	}
}

func TestPluginSubscribeAndResources(t *testing.T) {
	w := NewWorld(4)
	p := newPlugin(t, w, OrderTargetingFirst)
	player := SpawnInteractor(w, facingZ)
	lever := SpawnInteractable(w, NewTransform(V3(0, 0, 0.5), V3(0, 0, 1)), mustInteractable(t, 1, true))

	var got []InteractionEvent
	p.Subscribe(func(ev InteractionEvent) { got = append(got, ev) })

	// Requests can also be queued through the world resource.
	fired := GetResource[Events[FiredEvent]](w.Resources())
	if fired == nil {
		t.Fatal("expected the fire queue to be a world resource")
	}
	fired.Send(FiredEvent{Interactor: player})
	p.Update()

	expectEvents(t, got, InteractionEvent{Interactor: player, Interactable: lever})
	out := GetResource[Events[InteractionEvent]](w.Resources())
	if out == nil || out.Len() != 1 {
		t.Errorf("expected the output queue resource to hold one event, got %v", out)
	}
	if bus := GetResource[EventBus](w.Resources()); bus == nil {
		t.Error("expected the event bus to be a world resource")
	}
	if r := p.LastTargeting(); r.Interactors != 1 || r.Targets != 1 {
		t.Errorf("unexpected targeting report %+v", r)
	}
	if p.World() != w {
		t.Error("expected World to return the plugin's world")
	}
}

func TestPluginReusesExistingResources(t *testing.T) {
	w := NewWorld(1)
	bus := &EventBus{}
	w.Resources().Add(bus)
	newPlugin(t, w, OrderTargetingFirst)
	if got := GetResource[EventBus](w.Resources()); got != bus {
		t.Error("expected the existing bus to be reused")
	}
}

func TestPluginRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 0
	if _, err := NewPlugin(NewWorld(1), cfg); err == nil {
		t.Error("expected an error for zero workers")
	}
}

func TestPluginNilLoggerKeepsDefault(t *testing.T) {
	w := NewWorld(2)
	p, err := NewPlugin(w, DefaultConfig(), WithLogger(nil))
	if err != nil {
		t.Fatalf("NewPlugin: %v", err)
	}
	player := SpawnInteractor(w, facingZ)
	p.Fire(player)
	p.Update()
	if p.Tick() != 1 {
		t.Errorf("expected 1 tick, got %d", p.Tick())
	}
}
