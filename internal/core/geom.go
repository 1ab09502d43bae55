// Package core provides fundamental types and utilities for the clicker game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned cell rectangle on the screen buffer.
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

// Point is a position on the logical drawing surface.
type Point struct {
	X, Y float64
}

// RectF is an axis-aligned box in logical surface units.
// Entities live in these coordinates; the platform scales them to cells.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a new logical rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if the two boxes strictly overlap on both axes.
// Boxes that only share an edge do not intersect.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if p lies inside the box.
// Left and top edges are inclusive, right and bottom edges exclusive.
func (r RectF) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// CellSpan converts a logical span [pos, pos+size) into a cell span of the
// given cell size. A partially covered cell counts as covered.
func CellSpan(pos, size, cell float64) (start, length int) {
	start = int(math.Floor(pos / cell))
	end := int(math.Ceil((pos + size) / cell))
	return start, Max(end-start, 0)
}

// SnapToCells grows r to the cells it touches on a grid of cellW x cellH
// units, matching what CellSpan rasterizes.
func SnapToCells(r RectF, cellW, cellH float64) RectF {
	x, w := CellSpan(r.X, r.W, cellW)
	y, h := CellSpan(r.Y, r.H, cellH)
	return RectF{
		X: float64(x) * cellW,
		Y: float64(y) * cellH,
		W: float64(w) * cellW,
		H: float64(h) * cellH,
	}
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
