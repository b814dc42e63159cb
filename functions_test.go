package sesshoku

import "testing"

// go test -run ^TestSetComponent$ . -count 1
func TestSetComponent(t *testing.T) {
	w := NewWorld(4)
	e := w.CreateEntity()

	t.Run("AddNewComponent", func(t *testing.T) {
		if !SetComponent(w, e, testPosition{X: 100, Y: 200}) {
			t.Fatal("SetComponent failed to add a new component")
		}
		p := GetComponent[testPosition](w, e)
		if p == nil {
			t.Fatal("GetComponent failed after SetComponent added a component")
		}
		if p.X != 100 || p.Y != 200 {
			t.Errorf("expected {100, 200}, got %+v", *p)
		}
	})

	t.Run("UpdateExistingComponent", func(t *testing.T) {
		SetComponent(w, e, testVelocity{VX: 1, VY: 2})
		SetComponent(w, e, testPosition{X: 555, Y: 777})

		p := GetComponent[testPosition](w, e)
		if p == nil || p.X != 555 || p.Y != 777 {
			t.Errorf("expected {555, 777}, got %+v", p)
		}
		v := GetComponent[testVelocity](w, e)
		if v == nil || v.VX != 1 || v.VY != 2 {
			t.Errorf("velocity corrupted, got %+v", v)
		}
		if Count[testPosition](w) != 1 {
			t.Errorf("expected a single position, got %d", Count[testPosition](w))
		}
	})

	t.Run("MutateThroughPointer", func(t *testing.T) {
		GetComponent[testPosition](w, e).X = 9
		if got := GetComponent[testPosition](w, e).X; got != 9 {
			t.Errorf("expected 9, got %v", got)
		}
	})
}

// go test -run ^TestRemoveComponent$ . -count 1
func TestRemoveComponent(t *testing.T) {
	w := NewWorld(4)
	e := w.CreateEntity()
	SetComponent(w, e, testPosition{X: 1})
	SetComponent(w, e, testTag{})

	if !RemoveComponent[testPosition](w, e) {
		t.Fatal("expected RemoveComponent to report a removal")
	}
	if HasComponent[testPosition](w, e) {
		t.Error("expected position to be gone")
	}
	if !HasComponent[testTag](w, e) {
		t.Error("expected tag to survive")
	}
	if RemoveComponent[testPosition](w, e) {
		t.Error("expected second removal to report false")
	}
}

func TestSwapRemoveKeepsOtherComponents(t *testing.T) {
	w := NewWorld(8)
	ents := w.CreateEntities(5)
	for i, e := range ents {
		SetComponent(w, e, testPosition{X: float32(i)})
	}
	w.RemoveEntity(ents[1])
	RemoveComponent[testPosition](w, ents[3])

	for i, e := range ents {
		p := GetComponent[testPosition](w, e)
		switch i {
		case 1, 3:
			if p != nil {
				t.Errorf("expected no position for entity %d", i)
			}
		default:
			if p == nil || p.X != float32(i) {
				t.Errorf("entity %d: expected X=%d, got %+v", i, i, p)
			}
		}
	}
	if Count[testPosition](w) != 3 {
		t.Errorf("expected 3 positions, got %d", Count[testPosition](w))
	}
}

func TestGetComponentUnregisteredType(t *testing.T) {
	w := NewWorld(1)
	e := w.CreateEntity()
	if GetComponent[testVelocity](w, e) != nil {
		t.Error("expected nil for a component never set")
	}
	if HasComponent[testVelocity](w, e) {
		t.Error("expected HasComponent to be false")
	}
}

func TestTooManyComponentTypesPanics(t *testing.T) {
	w := NewWorld(1)
	w.components.nextCompTypeID = MaxComponentTypes
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	SetComponent(w, w.CreateEntity(), testTag{})
}
