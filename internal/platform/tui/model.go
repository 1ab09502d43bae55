package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/adventure-clicker/internal/core"
	"github.com/vovakirdan/adventure-clicker/internal/games/clicker"
)

// RunRecorder persists finished runs. *storage.Store implements it.
type RunRecorder interface {
	SaveRun(score, nuggets int) (int64, error)
}

// Model is the Bubble Tea model running one game session.
type Model struct {
	game       *clicker.Game
	canvas     *core.Canvas
	renderer   *lipgloss.Renderer
	store      RunRecorder // nil disables run history
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int // Terminal size, 0 until the first resize message
	height     int
	quitting   bool
	runSaved   bool // Whether the run has been recorded for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *clicker.Game, store RunRecorder, logger *log.Logger, renderer *lipgloss.Renderer, cfg core.RuntimeConfig) Model {
	gc := game.Config()
	screen := core.NewScreen(gc.Columns(), gc.Rows())

	if cfg.TickRate <= 0 {
		cfg.TickRate = gc.Display.TickRate
	}
	if cfg.Clock == nil {
		cfg.Clock = core.NewSystemClock()
	}
	cfg.CellW = gc.Display.CellWidth
	cfg.CellH = gc.Display.CellHeight

	game.Reset(cfg)

	return Model{
		game:       game,
		canvas:     core.NewCanvas(screen, gc.Display.CellWidth, gc.Display.CellHeight),
		renderer:   renderer,
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop and sets the terminal title.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Unbound keys are ignored.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
	case core.ActionJump:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse queues left clicks as pointer-down events at the cell center.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Click(m.canvas.CellCenter(msg.X, msg.Y))
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, label := range result.Clicked {
		m.logger.Info(label+" clicked!", "label", label)
	}

	// Record the run on game over (once)
	if m.gameState.GameOver && !m.runSaved {
		m.logger.Info("game over", "score", m.gameState.Score, "nuggets", m.gameState.Nuggets)
		if m.store != nil {
			if _, err := m.store.SaveRun(m.gameState.Score, m.gameState.Nuggets); err != nil {
				m.logger.Warn("could not save run", "error", err)
			}
		}
		m.runSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() error {
	m.game.Render(m.canvas)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("tui: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".clicker", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.canvas.Screen().String()), 0o600); err != nil {
		return fmt.Errorf("tui: cannot write screenshot: %w", err)
	}

	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// tooSmall reports whether the terminal cannot show the whole surface and
// the help line.
func (m Model) tooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}
	screen := m.canvas.Screen()
	return m.width < screen.Width() || m.height < screen.Height()+1
}

// View renders the current frame to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		screen := m.canvas.Screen()
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d",
			screen.Width(), screen.Height()+1, m.width, m.height)
	}

	m.game.Render(m.canvas)

	var b strings.Builder
	b.WriteString(RenderScreen(m.renderer, m.canvas.Screen()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// ProgramOptions returns the Bubble Tea options the game needs.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Upgrade buttons are clicked with the mouse
	}
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *clicker.Game, store RunRecorder, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, lipgloss.DefaultRenderer(), cfg)

	p := tea.NewProgram(model, ProgramOptions()...)

	_, err := p.Run()
	return err
}
