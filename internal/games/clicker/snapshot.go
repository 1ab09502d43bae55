package clicker

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Score      int
	Nuggets    int
	State      State
	PlayerY    float64
	PlayerVelY float64
	Airborne   bool
	ObstacleXs []float64 // In spawn order
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	obstacles := g.obstacles.Obstacles()
	xs := make([]float64, len(obstacles))
	for i, o := range obstacles {
		xs[i] = o.X
	}

	return Snapshot{
		Tick:       g.tick,
		Score:      g.score,
		Nuggets:    g.nuggets,
		State:      g.state,
		PlayerY:    g.player.Y,
		PlayerVelY: g.player.VelY,
		Airborne:   g.player.Airborne,
		ObstacleXs: xs,
	}
}
