package game

import (
	"math"
	"testing"

	"github.com/meghashyamc/asteroids2d/geometry"
)

func TestLaserMovesAlongHeading(t *testing.T) {
	l := NewLaser(1, geometry.Vector{X: 100, Y: 100}, math.Pi/2, 2)
	l.Update()
	l.Update()

	if abs(l.Position().X-100) > 1e-9 || abs(l.Position().Y-104) > 1e-9 {
		t.Errorf("expected (100,104), got %v", l.Position())
	}
	if l.Angle() != math.Pi/2 {
		t.Errorf("heading should not change, got %f", l.Angle())
	}
}

func TestLaserDefaultSpeed(t *testing.T) {
	l := NewLaser(1, geometry.Vector{X: 100, Y: 100}, 0, DefaultTuning().LaserSpeed)
	l.Update()
	if abs(l.Position().X-100.075) > 1e-12 {
		t.Errorf("expected x 100.075, got %f", l.Position().X)
	}
}

func TestLaserInBounds(t *testing.T) {
	cases := []struct {
		position geometry.Vector
		want     bool
	}{
		{geometry.Vector{X: 400, Y: 300}, true},
		{geometry.Vector{X: 0, Y: 0}, true},
		{geometry.Vector{X: 800, Y: 600}, true},
		{geometry.Vector{X: -0.1, Y: 300}, false},
		{geometry.Vector{X: 800.1, Y: 300}, false},
		{geometry.Vector{X: 400, Y: -1}, false},
		{geometry.Vector{X: 400, Y: 601}, false},
	}
	for _, c := range cases {
		l := NewLaser(1, c.position, 0, 0)
		if got := l.InBounds(testBounds); got != c.want {
			t.Errorf("InBounds(%v) = %v, want %v", c.position, got, c.want)
		}
	}
}

func TestLaserDrawsCenteredDot(t *testing.T) {
	r := NewRecordingRenderer()
	l := NewLaser(1, geometry.Vector{X: 100, Y: 50}, 0, 0)
	if err := l.Draw(r, ColourWhite); err != nil {
		t.Fatal(err)
	}
	if len(r.Calls) != 1 || r.Calls[0].Rect != [4]int{98, 48, 3, 3} {
		t.Errorf("expected a 3x3 dot at (98,48), got %+v", r.Calls)
	}
}
