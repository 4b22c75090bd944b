package game

import (
	"math"
	"math/rand/v2"

	"github.com/meghashyamc/asteroids2d/geometry"
)

// AsteroidConfig lists the optional construction fields of an asteroid. A nil
// field is filled from the randomized defaults: scale in the tuning's scale
// range, an off-screen spawn point padded by that scale, a slow random
// velocity, and not a parent.
type AsteroidConfig struct {
	Position *geometry.Vector
	Velocity *geometry.Vector
	Scale    *float64
	Parent   *bool
}

type Asteroid struct {
	id       EntityID
	position geometry.Vector
	velocity geometry.Vector
	scale    float64
	vertices []geometry.Point // closed outline, first vertex repeated last
	parent   bool
}

func NewAsteroid(id EntityID, cfg AsteroidConfig, bounds geometry.Bounds, tuning Tuning, rng *rand.Rand) *Asteroid {
	var scale float64
	if cfg.Scale != nil {
		scale = *cfg.Scale
	} else {
		scale = geometry.Uniform(rng, tuning.AsteroidMinScale, tuning.AsteroidMaxScale)
	}

	var position geometry.Vector
	if cfg.Position != nil {
		position = *cfg.Position
	} else {
		position = geometry.GenerateSpawnPoint(rng, bounds.Width, bounds.Height, scale)
	}

	var velocity geometry.Vector
	if cfg.Velocity != nil {
		velocity = *cfg.Velocity
	} else {
		velocity = geometry.GenerateVelocity(rng, tuning.AsteroidMinSpeed, tuning.AsteroidMaxSpeed)
	}

	parent := false
	if cfg.Parent != nil {
		parent = *cfg.Parent
	}

	return &Asteroid{
		id:       id,
		position: position,
		velocity: velocity,
		scale:    scale,
		vertices: make([]geometry.Point, 0, asteroidVertexCount+1),
		parent:   parent,
	}
}

// Update moves the asteroid one tick, wraps it around the screen and rebuilds
// its outline
func (a *Asteroid) Update(bounds geometry.Bounds) {
	a.position = a.position.Add(a.velocity)
	a.wrap(bounds)
	a.recalculateVertices()
}

// wrap sends an asteroid that has fully left along an axis to the far side of
// that axis, chosen by its direction of travel rather than by which edge it
// crossed
func (a *Asteroid) wrap(bounds geometry.Bounds) {
	width := float64(bounds.Width)
	height := float64(bounds.Height)

	if a.position.X <= -a.scale || a.position.X >= width+a.scale {
		if a.velocity.X > 0 {
			a.position.X = -a.scale
		} else {
			a.position.X = width + a.scale
		}
	}

	if a.position.Y <= -a.scale || a.position.Y >= height+a.scale {
		if a.velocity.Y > 0 {
			a.position.Y = -a.scale
		} else {
			a.position.Y = height + a.scale
		}
	}
}

func (a *Asteroid) recalculateVertices() {
	a.vertices = a.vertices[:0]
	for i := 0; i < asteroidVertexCount; i++ {
		angle := 2 * math.Pi * float64(i) / asteroidVertexCount
		offset := geometry.FromAngle(angle).Scale(a.scale)
		a.vertices = append(a.vertices, a.position.Add(offset).Point())
	}
	a.vertices = append(a.vertices, a.vertices[0])
}

func (a *Asteroid) Draw(r Renderer, colour RGB) error {
	if len(a.vertices) < 2 {
		return nil
	}
	return r.DrawLines(a.vertices, colour)
}

// IsHit reports whether point, truncated to pixels, lies inside the outline
func (a *Asteroid) IsHit(point geometry.Vector) bool {
	return geometry.IsPointInPolygon(point.Point(), a.vertices)
}

func (a *Asteroid) IsColliding(triangle []geometry.Point) bool {
	return geometry.PolygonCollision(triangle, a.vertices)
}

// GenerateChild creates a smaller, non-parent asteroid near this one, moving
// roughly the same way
func (a *Asteroid) GenerateChild(id EntityID, bounds geometry.Bounds, tuning Tuning, rng *rand.Rand) *Asteroid {
	position := geometry.Vector{
		X: a.position.X + geometry.Uniform(rng, -childPositionVariance, childPositionVariance),
		Y: a.position.Y + geometry.Uniform(rng, -childPositionVariance, childPositionVariance),
	}

	xVariance := childVelocityVariance * math.Abs(a.velocity.X)
	yVariance := childVelocityVariance * math.Abs(a.velocity.Y)
	velocity := geometry.Vector{
		X: a.velocity.X + geometry.Uniform(rng, -xVariance, xVariance),
		Y: a.velocity.Y + geometry.Uniform(rng, -yVariance, yVariance),
	}

	scaleVariance := childScaleVariance * a.scale
	scale := childScaleFactor*a.scale + geometry.Uniform(rng, -scaleVariance, scaleVariance)
	parent := false

	return NewAsteroid(id, AsteroidConfig{
		Position: &position,
		Velocity: &velocity,
		Scale:    &scale,
		Parent:   &parent,
	}, bounds, tuning, rng)
}

func (a *Asteroid) ID() EntityID {
	return a.id
}

func (a *Asteroid) Position() geometry.Vector {
	return a.position
}

func (a *Asteroid) Velocity() geometry.Vector {
	return a.velocity
}

func (a *Asteroid) Scale() float64 {
	return a.scale
}

func (a *Asteroid) IsParent() bool {
	return a.parent
}

// Vertices returns the current outline; empty until the first Update
func (a *Asteroid) Vertices() []geometry.Point {
	return a.vertices
}
