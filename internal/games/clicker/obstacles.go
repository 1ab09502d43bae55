package clicker

import "github.com/vovakirdan/adventure-clicker/internal/core"

// Obstacle is a ground block moving left at constant speed.
type Obstacle struct {
	Body
	speed float64
}

// Update moves the obstacle left. Pruning is the manager's job.
func (o *Obstacle) Update() {
	o.X -= o.speed
}

// ObstacleManager handles spawning, movement, and removal of obstacles.
type ObstacleManager struct {
	obstacles []Obstacle
	spawnX    float64
	groundY   float64
	width     float64
	height    float64
	speed     float64
	interval  int64 // Minimum milliseconds between spawns
	lastSpawn int64 // Clock time of the last spawn (or of Reset)
}

// NewObstacleManager creates an empty manager.
func NewObstacleManager(spawnX, groundY, width, height, speed float64, interval int64) *ObstacleManager {
	return &ObstacleManager{
		obstacles: make([]Obstacle, 0, 8),
		spawnX:    spawnX,
		groundY:   groundY,
		width:     width,
		height:    height,
		speed:     speed,
		interval:  interval,
	}
}

// Reset clears all obstacles and restarts the spawn timer at now.
func (om *ObstacleManager) Reset(now int64) {
	om.obstacles = om.obstacles[:0]
	om.lastSpawn = now
}

// Update advances every obstacle and reports whether any of them overlaps
// the player box after moving. All obstacles move even after a hit.
func (om *ObstacleManager) Update(player core.RectF) bool {
	hit := false
	for i := range om.obstacles {
		om.obstacles[i].Update()
		if om.obstacles[i].Bounds().Intersects(player) {
			hit = true
		}
	}
	return hit
}

// Prune removes obstacles that reached the left boundary, keeping order.
func (om *ObstacleManager) Prune() {
	kept := om.obstacles[:0]
	for _, o := range om.obstacles {
		if o.X > 0 {
			kept = append(kept, o)
		}
	}
	om.obstacles = kept
}

// MaybeSpawn appends a new obstacle if more than the spawn interval has
// passed since the last spawn. Returns true if one was spawned.
func (om *ObstacleManager) MaybeSpawn(now int64) bool {
	if now-om.lastSpawn <= om.interval {
		return false
	}
	om.Add(om.spawnX)
	om.lastSpawn = now
	return true
}

// Add appends an obstacle at x on the ground line.
func (om *ObstacleManager) Add(x float64) {
	om.obstacles = append(om.obstacles, Obstacle{
		Body:  Body{X: x, Y: om.groundY, W: om.width, H: om.height},
		speed: om.speed,
	})
}

// Obstacles returns the active obstacles in spawn order.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}
