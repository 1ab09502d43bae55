package clicker

import "github.com/vovakirdan/adventure-clicker/internal/core"

// Entity is anything the play area draws as a solid box.
type Entity interface {
	Bounds() core.RectF
	Draw(dst core.Surface)
}

// Body is the shared position, size and drawing of Player and Obstacle.
type Body struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Bounds returns the collision box.
func (b Body) Bounds() core.RectF {
	return core.NewRectF(b.X, b.Y, b.W, b.H)
}

// Draw renders the body as a filled rectangle in the entity color.
func (b Body) Draw(dst core.Surface) {
	dst.FillRect(b.Bounds(), EntityColor)
}
