package game

import "github.com/meghashyamc/asteroids2d/geometry"

type EventKind int

const (
	EventLaserFired EventKind = iota
	EventAsteroidDestroyed
	EventPlayerHit
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventLaserFired:
		return "laser_fired"
	case EventAsteroidDestroyed:
		return "asteroid_destroyed"
	case EventPlayerHit:
		return "player_hit"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind     EventKind
	Position geometry.Vector
}
