package catcher

import "testing"

// fixedSource returns the same value for every draw.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

const testBottleWidth = 0.05

func TestSpawnAtClampsToScreen(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{"far right", 2.0, 1.0 - testBottleWidth/2},
		{"far left", -2.0, -1.0 + testBottleWidth/2},
		{"right edge", 1.0, 1.0 - testBottleWidth/2},
		{"center", 0.0, 0.0},
		{"inside", 0.5, 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBottles(testBottleWidth, 1.0)
			bottle := b.SpawnAt(tc.x)

			if bottle.X != tc.expected {
				t.Errorf("SpawnAt(%v).X = %v, expected %v", tc.x, bottle.X, tc.expected)
			}
			if bottle.Y != 1.0 {
				t.Errorf("SpawnAt(%v).Y = %v, expected 1.0", tc.x, bottle.Y)
			}
			if !bottle.Active {
				t.Error("spawned bottle should be active")
			}
			if b.Len() != 1 {
				t.Errorf("Len() = %d, expected 1", b.Len())
			}
		})
	}
}

func TestSpawnUsesSource(t *testing.T) {
	tests := []struct {
		draw     float64
		expected float64
	}{
		{0.5, 0.0},
		{0.75, 0.5},
		{0.0, -1.0 + testBottleWidth/2},
		{0.9999, 1.0 - testBottleWidth/2},
	}

	for _, tc := range tests {
		b := NewBottles(testBottleWidth, 1.0)
		bottle := b.Spawn(fixedSource(tc.draw))
		if bottle.X != tc.expected {
			t.Errorf("Spawn(%v).X = %v, expected %v", tc.draw, bottle.X, tc.expected)
		}
	}
}

func TestAdvanceMovesOnlyActive(t *testing.T) {
	b := NewBottles(testBottleWidth, 1.0)
	b.SpawnAt(-0.5)
	b.SpawnAt(0.5)
	b.items[1].Active = false

	b.Advance(0.25)

	if b.items[0].Y != 0.75 {
		t.Errorf("active bottle Y = %v, expected 0.75", b.items[0].Y)
	}
	if b.items[1].Y != 1.0 {
		t.Errorf("inactive bottle Y = %v, expected 1.0 (unchanged)", b.items[1].Y)
	}
	if b.items[0].X != -0.5 {
		t.Errorf("bottle X changed to %v while falling", b.items[0].X)
	}
}

func TestPrunePreservesOrder(t *testing.T) {
	b := NewBottles(testBottleWidth, 1.0)
	for _, x := range []float64{-0.6, -0.3, 0.0, 0.3, 0.6} {
		b.SpawnAt(x)
	}
	b.items[1].Active = false
	b.items[3].Active = false

	removed := b.Prune()
	if removed != 2 {
		t.Errorf("Prune() removed %d, expected 2", removed)
	}

	got := b.All()
	expected := []float64{-0.6, 0.0, 0.6}
	if len(got) != len(expected) {
		t.Fatalf("after Prune() len = %d, expected %d", len(got), len(expected))
	}
	for i, x := range expected {
		if got[i].X != x {
			t.Errorf("bottle %d X = %v, expected %v", i, got[i].X, x)
		}
	}
}

func TestPruneIdempotent(t *testing.T) {
	b := NewBottles(testBottleWidth, 1.0)
	b.SpawnAt(-0.4)
	b.SpawnAt(0.4)
	b.items[0].Active = false

	b.Prune()
	first := b.All()
	if removed := b.Prune(); removed != 0 {
		t.Errorf("second Prune() removed %d, expected 0", removed)
	}
	second := b.All()

	if len(first) != len(second) {
		t.Fatalf("Prune() not idempotent: %d vs %d bottles", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("bottle %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestEmptyRegistryNoOps(t *testing.T) {
	b := NewBottles(testBottleWidth, 1.0)
	b.Advance(0.1)
	if b.Prune() != 0 {
		t.Error("Prune() on empty registry should remove nothing")
	}
	b.Clear()
	if b.Len() != 0 || b.ActiveCount() != 0 {
		t.Error("empty registry should stay empty")
	}
}

func TestClearAndActiveCount(t *testing.T) {
	b := NewBottles(testBottleWidth, 1.0)
	b.SpawnAt(0)
	b.SpawnAt(0.2)
	b.SpawnAt(0.4)
	b.items[2].Active = false

	if b.ActiveCount() != 2 {
		t.Errorf("ActiveCount() = %d, expected 2", b.ActiveCount())
	}

	b.Clear()
	if b.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", b.Len())
	}
}

func TestAllReturnsCopy(t *testing.T) {
	b := NewBottles(testBottleWidth, 1.0)
	b.SpawnAt(0)

	snapshot := b.All()
	snapshot[0].Y = -5

	if b.items[0].Y != 1.0 {
		t.Error("mutating All() result should not affect the registry")
	}
}
