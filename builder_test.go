package sesshoku

import "testing"

// go test -run ^TestBuilder2 . -count 1
func TestBuilder2NewEntity(t *testing.T) {
	w := NewWorld(2)
	b := NewBuilder2[testPosition, testVelocity](w)

	e := b.NewEntity(testPosition{X: 1, Y: 2}, testVelocity{VX: 3, VY: 4})
	if !w.IsValid(e) {
		t.Fatal("built entity is not valid")
	}
	p := GetComponent[testPosition](w, e)
	v := GetComponent[testVelocity](w, e)
	if p == nil || v == nil {
		t.Fatalf("missing components: pos=%v vel=%v", p, v)
	}
	if p.X != 1 || p.Y != 2 || v.VX != 3 || v.VY != 4 {
		t.Errorf("unexpected values: pos=%+v vel=%+v", *p, *v)
	}
	if HasComponent[testTag](w, e) {
		t.Error("built entity should not carry unrelated components")
	}
}

func TestBuilder2NewEntities(t *testing.T) {
	w := NewWorld(2)
	b := NewBuilder2[testPosition, testVelocity](w)

	ents := b.NewEntities(10, testPosition{X: 5}, testVelocity{VY: 1})
	if len(ents) != 10 {
		t.Fatalf("expected 10 entities, got %d", len(ents))
	}
	if w.Len() != 10 {
		t.Errorf("expected world length 10, got %d", w.Len())
	}

	f := NewFilter2[testPosition, testVelocity](w)
	seen := 0
	for f.Next() {
		pos, vel := f.Get()
		if pos.X != 5 || vel.VY != 1 {
			t.Errorf("entity %v: unexpected values pos=%+v vel=%+v", f.Entity(), *pos, *vel)
		}
		seen++
	}
	if seen != 10 {
		t.Errorf("filter visited %d entities, want 10", seen)
	}

	// Values are copies.
	GetComponent[testPosition](w, ents[0]).X = 99
	if GetComponent[testPosition](w, ents[1]).X != 5 {
		t.Error("mutating one built entity changed another")
	}
}

func TestBuilder2ZeroCount(t *testing.T) {
	w := NewWorld(0)
	b := NewBuilder2[testPosition, testVelocity](w)
	if ents := b.NewEntities(0, testPosition{}, testVelocity{}); ents != nil {
		t.Errorf("expected nil for zero count, got %v", ents)
	}
	if w.Len() != 0 {
		t.Errorf("expected empty world, got %d", w.Len())
	}
}

func TestBuilder2RemovedEntityDropsComponents(t *testing.T) {
	w := NewWorld(4)
	b := NewBuilder2[testPosition, testVelocity](w)
	e := b.NewEntity(testPosition{X: 1}, testVelocity{})
	w.RemoveEntity(e)
	if Count[testPosition](w) != 0 || Count[testVelocity](w) != 0 {
		t.Errorf("components left behind: pos=%d vel=%d", Count[testPosition](w), Count[testVelocity](w))
	}
}
