package game

import "github.com/meghashyamc/asteroids2d/geometry"

type Laser struct {
	id       EntityID
	position geometry.Vector
	angle    float64 // fixed at creation
	speed    float64
}

func NewLaser(id EntityID, position geometry.Vector, angle, speed float64) *Laser {
	return &Laser{
		id:       id,
		position: position,
		angle:    angle,
		speed:    speed,
	}
}

func (l *Laser) Update() {
	l.position = l.position.Add(geometry.FromAngle(l.angle).Scale(l.speed))
}

// InBounds reports whether the laser is still on screen; lasers do not wrap
func (l *Laser) InBounds(bounds geometry.Bounds) bool {
	return bounds.Contains(l.position)
}

func (l *Laser) Draw(r Renderer, colour RGB) error {
	half := float64(laserDotSize) / 2
	return r.FillRect(
		int(l.position.X-half),
		int(l.position.Y-half),
		laserDotSize,
		laserDotSize,
		colour,
	)
}

func (l *Laser) ID() EntityID {
	return l.id
}

func (l *Laser) Position() geometry.Vector {
	return l.position
}

func (l *Laser) Angle() float64 {
	return l.angle
}
