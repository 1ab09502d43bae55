package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 30)
	Clock    Clock // Time source for spawn timing; nil means a new SystemClock

	// CellW and CellH are the display's cell size in logical units.
	// When set, clickable areas cover the same cells they are drawn on.
	CellW, CellH float64
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Ticks survived
	Nuggets  int  // Gold nuggets earned from jumps
	GameOver bool // Whether the game has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState

	// Clicked holds the labels of upgrade buttons hit this tick, in layout order.
	Clicked []string
}
