package catcher

import (
	"github.com/samber/lo"

	"github.com/vovakirdan/bottle-catcher/internal/core"
)

// Source provides uniform random numbers in [0, 1).
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Bottle is a falling object in world coordinates.
// X never changes after spawn; Y decreases by the fall speed every tick.
type Bottle struct {
	X      float64 // Horizontal center
	Y      float64 // Base of the bottle
	Active bool    // False once caught
}

// Fall moves the bottle down by speed units.
func (b *Bottle) Fall(speed float64) {
	b.Y -= speed
}

// Bottles is the ordered collection of live bottles.
type Bottles struct {
	items  []Bottle
	width  float64
	spawnY float64
}

// NewBottles creates an empty registry for bottles of the given width.
func NewBottles(width, spawnY float64) *Bottles {
	return &Bottles{
		items:  make([]Bottle, 0, 16),
		width:  width,
		spawnY: spawnY,
	}
}

// Spawn adds a bottle at a uniformly random horizontal position.
func (b *Bottles) Spawn(rng Source) Bottle {
	return b.SpawnAt(rng.Float64()*2 - 1)
}

// SpawnAt adds a bottle at x, clamped so its full width stays on screen.
func (b *Bottles) SpawnAt(x float64) Bottle {
	half := b.width / 2
	bottle := Bottle{
		X:      core.ClampF(x, -1.0+half, 1.0-half),
		Y:      b.spawnY,
		Active: true,
	}
	b.items = append(b.items, bottle)
	return bottle
}

// Advance moves every active bottle down by fallSpeed.
func (b *Bottles) Advance(fallSpeed float64) {
	for i := range b.items {
		if b.items[i].Active {
			b.items[i].Fall(fallSpeed)
		}
	}
}

// Prune removes inactive bottles, keeping the order of the rest.
// Returns the number of bottles removed.
func (b *Bottles) Prune() int {
	before := len(b.items)
	b.items = lo.Filter(b.items, func(bt Bottle, _ int) bool {
		return bt.Active
	})
	return before - len(b.items)
}

// Clear removes all bottles.
func (b *Bottles) Clear() {
	b.items = b.items[:0]
}

// Len returns the number of bottles, active or not.
func (b *Bottles) Len() int {
	return len(b.items)
}

// ActiveCount returns the number of bottles still falling.
func (b *Bottles) ActiveCount() int {
	return lo.CountBy(b.items, func(bt Bottle) bool {
		return bt.Active
	})
}

// All returns a copy of the bottles in registry order.
func (b *Bottles) All() []Bottle {
	out := make([]Bottle, len(b.items))
	copy(out, b.items)
	return out
}

// Width returns the bottle width in world units.
func (b *Bottles) Width() float64 {
	return b.width
}
