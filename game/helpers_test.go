package game

import (
	"math/rand/v2"
	"testing"

	"github.com/meghashyamc/asteroids2d/geometry"
	"github.com/meghashyamc/asteroids2d/logger"
)

var testBounds = geometry.Bounds{Width: 800, Height: 600}

func newTestState(t *testing.T) *State {
	t.Helper()
	return NewState(StateOptions{
		Bounds: testBounds,
		Tuning: DefaultTuning(),
		Seed:   42,
		Logger: logger.Discard(),
	})
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

// placeAsteroid builds an asteroid with a computed outline at position
func placeAsteroid(id EntityID, position, velocity geometry.Vector, scale float64, parent bool) *Asteroid {
	a := NewAsteroid(id, AsteroidConfig{
		Position: &position,
		Velocity: &velocity,
		Scale:    &scale,
		Parent:   &parent,
	}, testBounds, DefaultTuning(), newTestRand())
	a.recalculateVertices()
	return a
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
