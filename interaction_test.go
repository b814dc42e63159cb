package sesshoku

import (
	"errors"
	"math"
	"testing"
)

func TestNewInteractable(t *testing.T) {
	it, err := NewInteractable(2, true, WithName("lever"), WithDescription("Opens the gate"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.MaxDistanceSquared() != 4 {
		t.Errorf("expected squared distance 4, got %v", it.MaxDistanceSquared())
	}
	if it.MaxDistance() != 2 {
		t.Errorf("expected distance 2, got %v", it.MaxDistance())
	}
	if !it.Exclusive() {
		t.Error("expected exclusive")
	}
	if !it.Enabled {
		t.Error("expected enabled by default")
	}
	if it.Name != "lever" || it.Description != "Opens the gate" {
		t.Errorf("unexpected metadata %q %q", it.Name, it.Description)
	}
}

func TestNewInteractableRejectsBadDistance(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	for _, d := range []float32{0, -1, nan, inf} {
		if _, err := NewInteractable(d, false); !errors.Is(err, ErrInvalidDistance) {
			t.Errorf("distance %v: expected ErrInvalidDistance, got %v", d, err)
		}
	}
}

func TestInteractableOptions(t *testing.T) {
	called := false
	gate := PossibilityFunc(func(Entity, *World) bool {
		called = true
		return false
	})
	it, err := NewInteractable(1, false, Disabled(), WithPossibility(gate))
	if err != nil {
		t.Fatal(err)
	}
	if it.Enabled {
		t.Error("expected disabled")
	}
	if it.Possible == nil || it.Possible.IsPossible(Entity{}, nil) || !called {
		t.Error("expected the possibility gate to be attached")
	}
}

func TestDefaultInteractable(t *testing.T) {
	it := DefaultInteractable()
	if it.MaxDistance() != 1 || it.Exclusive() || !it.Enabled {
		t.Errorf("unexpected default %+v", it)
	}
}

func TestInteractorZeroValue(t *testing.T) {
	var in Interactor
	if in.Len() != 0 {
		t.Errorf("expected no targets, got %d", in.Len())
	}
	if _, ok := in.Closest(); ok {
		t.Error("expected no closest target")
	}
	if len(in.Targets()) != 0 {
		t.Error("expected empty targets")
	}
	in.reset()
	in.insert(Entity{ID: 3, Version: 1})
	if !in.HasTarget(Entity{ID: 3, Version: 1}) {
		t.Error("expected target after insert")
	}
}

func TestInteractorTargetsSorted(t *testing.T) {
	in := NewInteractor()
	for _, e := range []Entity{{ID: 5, Version: 1}, {ID: 1, Version: 2}, {ID: 1, Version: 1}, {ID: 3, Version: 9}} {
		in.insert(e)
	}
	got := in.Targets()
	want := []Entity{{ID: 1, Version: 1}, {ID: 1, Version: 2}, {ID: 3, Version: 9}, {ID: 5, Version: 1}}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestNewInteractorCopiesAreIndependent(t *testing.T) {
	a := NewInteractor()
	b := a
	a.reset()
	a.insert(Entity{ID: 1, Version: 1})
	if b.Len() != 0 || b.HasTarget(Entity{ID: 1, Version: 1}) {
		t.Errorf("copy shares targets: %v", b.Targets())
	}
}
