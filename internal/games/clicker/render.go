package clicker

import (
	"fmt"

	"github.com/vovakirdan/adventure-clicker/internal/core"
)

// Palette
const (
	BackgroundColor   = core.ColorBrightWhite
	EntityColor       = core.ColorBlack
	PanelColor        = core.ColorGray
	UpgradePanelColor = core.ColorBlack
	TextColor         = core.ColorBlack
)

// Text sizes in logical units.
const (
	ButtonTextSize   = 30
	PanelTextSize    = 40
	GameOverTextSize = 50
)

const labelInset = 5

// Render draws the current frame, back to front.
func (g *Game) Render(dst core.Surface) {
	dst.Clear(BackgroundColor)

	for _, e := range g.entities() {
		e.Draw(dst)
	}

	g.drawInfoPanel(dst)
	g.drawUpgradePanel(dst)

	if g.state == StateGameOver {
		g.drawGameOver(dst)
	}
}

// entities returns the player followed by every obstacle.
func (g *Game) entities() []Entity {
	obstacles := g.obstacles.Obstacles()
	list := make([]Entity, 0, len(obstacles)+1)
	list = append(list, g.player)
	for i := range obstacles {
		list = append(list, &obstacles[i])
	}
	return list
}

// drawInfoPanel draws the middle column: title and nugget count.
func (g *Game) drawInfoPanel(dst core.Surface) {
	x := g.cfg.GameWidth()
	dst.FillRect(core.NewRectF(x, 0, g.cfg.Layout.MiddleWidth, float64(g.cfg.Display.Height)), PanelColor)

	textX := x + 10
	for i, word := range []string{"Adventure", "Clicker"} {
		dst.DrawText(word, core.Point{X: textX, Y: 50 + float64(i)*50}, PanelTextSize, TextColor)
	}
	dst.DrawText("Gold Nuggets:", core.Point{X: textX, Y: 150}, PanelTextSize, TextColor)
	dst.DrawText(fmt.Sprintf("%d", g.nuggets), core.Point{X: textX, Y: 200}, PanelTextSize, TextColor)
}

// drawUpgradePanel draws the right column and its buttons.
func (g *Game) drawUpgradePanel(dst core.Surface) {
	dst.FillRect(core.NewRectF(g.cfg.PanelX(), 0, g.cfg.Layout.PanelWidth, float64(g.cfg.Display.Height)), UpgradePanelColor)
	for _, b := range g.buttons {
		b.Draw(dst)
	}
}

// drawGameOver draws the final score overlay around the surface center.
func (g *Game) drawGameOver(dst core.Surface) {
	cx := float64(g.cfg.Display.Width / 2)
	cy := float64(g.cfg.Display.Height / 2)

	dst.DrawText("Game Over", core.Point{X: cx - 100, Y: cy - 25}, GameOverTextSize, TextColor)
	dst.DrawText(fmt.Sprintf("Score: %d", g.score), core.Point{X: cx - 70, Y: cy + 10}, GameOverTextSize, TextColor)
	dst.DrawText(fmt.Sprintf("Gold Nuggets: %d", g.nuggets), core.Point{X: cx - 100, Y: cy + 50}, GameOverTextSize, TextColor)
}
