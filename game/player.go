package game

import (
	"math"
	"time"

	"github.com/meghashyamc/asteroids2d/geometry"
)

type Player struct {
	position      geometry.Vector
	velocity      geometry.Vector
	angle         float64 // radians, never normalized
	rotationSpeed float64
	acceleration  float64
	maxVelocity   float64
	deceleration  float64
	startLives    int
	lives         int
	score         int

	invulnerable    bool
	invulnerability *Timer

	vertices []geometry.Point // tip, left, right
}

func NewPlayer(position geometry.Vector, tuning Tuning) *Player {
	return &Player{
		position:        position,
		angle:           playerStartAngle,
		rotationSpeed:   tuning.RotationSpeed,
		acceleration:    tuning.Acceleration,
		maxVelocity:     tuning.MaxVelocity,
		deceleration:    tuning.Deceleration,
		startLives:      tuning.Lives,
		lives:           tuning.Lives,
		invulnerability: NewTimer(tuning.Invulnerability),
		vertices:        make([]geometry.Point, 0, 3),
	}
}

// Update applies one tick of controls and motion. dt only drives the
// invulnerability window; motion is per tick.
func (p *Player) Update(cmds Commands, dt time.Duration, bounds geometry.Bounds) {
	if cmds.Has(CommandRotateLeft) {
		p.angle -= p.rotationSpeed
	}
	if cmds.Has(CommandRotateRight) {
		p.angle += p.rotationSpeed
	}

	if cmds.Has(CommandAccelerate) {
		p.velocity = p.velocity.Add(geometry.FromAngle(p.angle).Scale(p.acceleration))
	} else {
		p.velocity.X = decelerate(p.velocity.X, p.deceleration)
		p.velocity.Y = decelerate(p.velocity.Y, p.deceleration)
	}

	if speed := p.velocity.Magnitude(); speed > p.maxVelocity {
		p.velocity = p.velocity.Scale(p.maxVelocity / speed)
	}

	if p.invulnerable {
		p.invulnerability.Update(dt)
		if p.invulnerability.IsReady() {
			p.invulnerable = false
		}
	}

	// The drift term is applied on every tick, thrusting or not
	p.position.X += p.velocity.X - p.deceleration
	p.position.Y += p.velocity.Y - p.deceleration

	p.recalculateVertices()
	p.wrap(bounds)
}

// decelerate moves v toward zero by amount without crossing it
func decelerate(v, amount float64) float64 {
	if math.Abs(v) <= amount {
		return 0
	}
	if v > 0 {
		return v - amount
	}
	return v + amount
}

func (p *Player) recalculateVertices() {
	back := 2 * math.Pi / 3

	tip := p.position.Add(geometry.FromAngle(p.angle).Scale(playerScale))
	left := p.position.Add(geometry.FromAngle(p.angle + back).Scale(0.5 * playerScale))
	right := p.position.Add(geometry.FromAngle(p.angle - back).Scale(0.5 * playerScale))

	p.vertices = append(p.vertices[:0], tip.Point(), left.Point(), right.Point())
}

func (p *Player) wrap(bounds geometry.Bounds) {
	width := float64(bounds.Width)
	height := float64(bounds.Height)

	if p.position.X < 0 {
		p.position.X = width
	} else if p.position.X > width {
		p.position.X = 0
	}

	if p.position.Y < 0 {
		p.position.Y = height
	} else if p.position.Y > height {
		p.position.Y = 0
	}
}

// Hit costs a life and respawns the ship at the centre, unless the ship is
// still invulnerable. It reports whether the hit counted.
func (p *Player) Hit(bounds geometry.Bounds) bool {
	if p.invulnerable {
		return false
	}

	p.position = bounds.Center()
	p.velocity = geometry.Vector{}
	p.lives--
	p.invulnerable = true
	p.invulnerability.Reset()
	return true
}

func (p *Player) Reset(bounds geometry.Bounds) {
	p.score = 0
	p.lives = p.startLives
	p.position = bounds.Center()
	p.velocity = geometry.Vector{}
	p.invulnerable = false
	p.invulnerability.Reset()
}

// Visible is false during the hidden half of each blink period while
// invulnerable. It has no effect on collisions.
func (p *Player) Visible() bool {
	if !p.invulnerable {
		return true
	}
	return (p.invulnerability.Elapsed()/blinkInterval)%2 != 0
}

func (p *Player) Draw(r Renderer, colour RGB) error {
	if !p.Visible() || len(p.vertices) < 3 {
		return nil
	}
	return r.FillPolygon(p.vertices, colour)
}

func (p *Player) IncrementScore() {
	p.score++
}

func (p *Player) IsDead() bool {
	return p.lives <= 0
}

func (p *Player) IsInvulnerable() bool {
	return p.invulnerable
}

func (p *Player) Position() geometry.Vector {
	return p.position
}

func (p *Player) Velocity() geometry.Vector {
	return p.velocity
}

func (p *Player) Angle() float64 {
	return p.angle
}

func (p *Player) Lives() int {
	return p.lives
}

func (p *Player) Score() int {
	return p.score
}

// Vertices returns the ship triangle; empty until the first Update
func (p *Player) Vertices() []geometry.Point {
	return p.vertices
}
