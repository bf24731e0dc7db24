// Package core provides fundamental types and utilities for the catcher game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Circle is a bounding circle in world coordinates.
type Circle struct {
	X, Y float64 // Center
	R    float64 // Radius
}

// Collides reports whether two circles overlap.
func (c Circle) Collides(other Circle) bool {
	return CirclesCollide(c.X, c.Y, c.R, other.X, other.Y, other.R)
}

// CirclesCollide returns true if the squared distance between the centers is
// strictly less than the squared sum of the radii. Touching circles do not collide.
func CirclesCollide(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x1 - x2
	dy := y1 - y2
	rs := r1 + r2
	return dx*dx+dy*dy < rs*rs
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// WorldToCol maps a world x in [-1, 1] to a screen column.
func WorldToCol(x float64, width int) int {
	return int(math.Round((x + 1) / 2 * float64(width-1)))
}

// WorldToRow maps a world y in [-1, 1] to a screen row. World y grows upward.
func WorldToRow(y float64, height int) int {
	return int(math.Round((1 - y) / 2 * float64(height-1)))
}

// ColToWorld maps a screen column back to a world x in [-1, 1].
func ColToWorld(col, width int) float64 {
	if width <= 1 {
		return 0
	}
	return float64(col)/float64(width-1)*2 - 1
}
