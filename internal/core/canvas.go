package core

import "math"

// BoldTextSize is the smallest text size rendered in bold.
const BoldTextSize = 40

// Surface is a 2D drawing target in logical units.
type Surface interface {
	// Clear fills the whole surface with a color.
	Clear(c Color)
	// FillRect fills a box with a color.
	FillRect(r RectF, c Color)
	// DrawText places text with its top-left corner at the given point.
	DrawText(text string, at Point, size int, c Color)
}

// Canvas rasterizes logical drawing operations onto a Screen.
// Each cell covers cellW x cellH logical units.
type Canvas struct {
	screen *Screen
	cellW  float64
	cellH  float64
}

// NewCanvas creates a canvas over the given screen.
func NewCanvas(screen *Screen, cellW, cellH float64) *Canvas {
	return &Canvas{screen: screen, cellW: cellW, cellH: cellH}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// Clear fills the whole screen with a background color.
func (c *Canvas) Clear(bg Color) {
	c.screen.Clear(bg)
}

// FillRect fills every cell the box touches.
func (c *Canvas) FillRect(r RectF, bg Color) {
	x, w := CellSpan(r.X, r.W, c.cellW)
	y, h := CellSpan(r.Y, r.H, c.cellH)
	c.screen.FillRect(NewRect(x, y, w, h), bg)
}

// DrawText writes text starting at the cell containing the point.
func (c *Canvas) DrawText(text string, at Point, size int, fg Color) {
	x := int(math.Floor(at.X / c.cellW))
	y := int(math.Floor(at.Y / c.cellH))
	c.screen.DrawText(x, y, text, fg, size >= BoldTextSize)
}

// CellCenter maps a screen cell to the logical point at its center.
func (c *Canvas) CellCenter(col, row int) Point {
	return Point{
		X: (float64(col) + 0.5) * c.cellW,
		Y: (float64(row) + 0.5) * c.cellH,
	}
}
