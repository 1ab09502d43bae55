package clicker

import "github.com/vovakirdan/adventure-clicker/internal/core"

// Button is an upgrade button in the right-hand panel.
// Clicking it only reports its label.
type Button struct {
	Rect  core.RectF
	Label string

	hit core.RectF // Area drawn on a cell grid; zero when unsnapped
}

// IsClicked returns true if p lies inside the button.
func (b Button) IsClicked(p core.Point) bool {
	return b.Rect.Contains(p)
}

// Hits reports whether a click at p lands on the button as displayed.
// On a cell grid that is every cell the button fills.
func (b Button) Hits(p core.Point) bool {
	if b.hit.W > 0 && b.hit.H > 0 {
		return b.hit.Contains(p)
	}
	return b.IsClicked(p)
}

// snap sets the clickable area to the cells the button is drawn on.
func (b *Button) snap(cellW, cellH float64) {
	if cellW > 0 && cellH > 0 {
		b.hit = core.SnapToCells(b.Rect, cellW, cellH)
	}
}

// Draw fills the button and writes its label with a small inset.
func (b Button) Draw(dst core.Surface) {
	dst.FillRect(b.Rect, PanelColor)
	dst.DrawText(b.Label, core.Point{X: b.Rect.X + labelInset, Y: b.Rect.Y + labelInset}, ButtonTextSize, TextColor)
}
