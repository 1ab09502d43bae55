package clicker

// Player is the jumping character. Its x never changes; obstacles move
// toward it instead.
type Player struct {
	Body
	VelY     float64 // Vertical velocity, negative is up
	Airborne bool

	gravity      float64
	jumpStrength float64
	groundY      float64
}

// NewPlayer places a grounded player with its top edge on the ground line.
func NewPlayer(x, w, h, groundY, gravity, jumpStrength float64) *Player {
	return &Player{
		Body:         Body{X: x, Y: groundY, W: w, H: h},
		gravity:      gravity,
		jumpStrength: jumpStrength,
		groundY:      groundY,
	}
}

// Jump starts a jump if the player is grounded.
// Returns false, changing nothing, while already airborne.
func (p *Player) Jump() bool {
	if p.Airborne {
		return false
	}
	p.VelY = -p.jumpStrength
	p.Airborne = true
	return true
}

// Update applies one tick of velocity and gravity, landing on the ground line.
func (p *Player) Update() {
	p.Y += p.VelY
	if p.Airborne {
		p.VelY += p.gravity
	}

	if p.Y >= p.groundY {
		p.Y = p.groundY
		p.Airborne = false
		p.VelY = 0
	}
}
