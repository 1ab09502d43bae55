// Package clicker implements Adventure Clicker: an endless runner where the
// player jumps over obstacles for score and gold nuggets, next to a panel of
// upgrade buttons.
package clicker

import (
	"github.com/vovakirdan/adventure-clicker/internal/config"
	"github.com/vovakirdan/adventure-clicker/internal/core"
)

// State is the game's lifecycle state.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game implements the Adventure Clicker game logic.
type Game struct {
	cfg       config.ClickerConfig
	clock     core.Clock
	player    *Player
	obstacles *ObstacleManager
	buttons   []Button
	score     int   // Ticks survived
	nuggets   int   // Successful jumps
	state     State // Playing until the first collision
	tick      uint64
}

// New creates a game with the given configuration.
// Reset must be called before the first Step.
func New(cfg config.ClickerConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "clicker"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.cfg.Display.Title
}

// Config returns the game configuration.
func (g *Game) Config() config.ClickerConfig {
	return g.cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.clock = runtime.Clock
	if g.clock == nil {
		g.clock = core.NewSystemClock()
	}

	cfg := g.cfg
	groundY := cfg.GroundY()

	g.player = NewPlayer(cfg.Player.X, cfg.Player.Width, cfg.Player.Height,
		groundY, cfg.Physics.Gravity, cfg.Physics.JumpStrength)

	if g.obstacles == nil {
		g.obstacles = NewObstacleManager(cfg.SpawnX(), groundY,
			cfg.Obstacles.Width, cfg.Obstacles.Height, cfg.Obstacles.Speed, cfg.Obstacles.SpawnInterval)
	}
	g.obstacles.Reset(g.clock.Millis())

	g.buttons = g.buttons[:0]
	for i, label := range cfg.Upgrades {
		b := Button{
			Rect: core.NewRectF(
				cfg.PanelX()+cfg.Layout.ButtonInset,
				cfg.Layout.ButtonTop+float64(i)*cfg.Layout.ButtonSpacing,
				cfg.Layout.ButtonWidth,
				cfg.Layout.ButtonHeight,
			),
			Label: label,
		}
		b.snap(runtime.CellW, runtime.CellH)
		g.buttons = append(g.buttons, b)
	}

	g.score = 0
	g.nuggets = 0
	g.state = StatePlaying
	g.tick = 0
}

// Step advances the game by one tick: input, then simulation.
// Clicks are reported in every state; jumping and simulation stop at game over.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var clicked []string

	if g.state == StatePlaying && in.Has(core.ActionJump) {
		if g.player.Jump() {
			g.nuggets++
		}
	}

	for _, p := range in.Clicks {
		for _, b := range g.buttons {
			if b.Hits(p) {
				clicked = append(clicked, b.Label)
			}
		}
	}

	if g.state == StatePlaying {
		g.simulate()
	}

	return core.StepResult{State: g.State(), Clicked: clicked}
}

// simulate runs one tick of physics, collisions, pruning and spawning.
func (g *Game) simulate() {
	g.tick++
	g.player.Update()

	if g.obstacles.Update(g.player.Bounds()) {
		g.state = StateGameOver
	}

	g.obstacles.Prune()
	g.obstacles.MaybeSpawn(g.clock.Millis())

	g.score++
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Nuggets:  g.nuggets,
		GameOver: g.state == StateGameOver,
	}
}

// Buttons returns the upgrade buttons in layout order.
func (g *Game) Buttons() []Button {
	return g.buttons
}
