package game

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/meghashyamc/asteroids2d/geometry"
	"github.com/meghashyamc/asteroids2d/logger"
)

type Mode int

const (
	ModePlaying Mode = iota
	ModePaused
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

type StateOptions struct {
	Bounds geometry.Bounds
	Tuning Tuning
	Seed   uint64
	Logger logger.Logger
}

// State owns every entity and advances the simulation one tick at a time.
// It is not safe for concurrent use.
type State struct {
	bounds geometry.Bounds
	tuning Tuning
	rng    *rand.Rand
	logger logger.Logger

	player      *Player
	asteroids   []*Asteroid
	lasers      []*Laser
	liveParents int

	mode         Mode
	fireCooldown *Timer
	nextID       EntityID
	ticks        uint64
	events       []Event
}

func NewState(opts StateOptions) *State {
	if opts.Bounds.Width == 0 || opts.Bounds.Height == 0 {
		opts.Bounds = geometry.Bounds{Width: defaultScreenWidth, Height: defaultScreenHeight}
	}
	if opts.Tuning == (Tuning{}) {
		opts.Tuning = DefaultTuning()
	}
	if opts.Logger == nil {
		opts.Logger = logger.New()
	}

	s := &State{
		bounds: opts.Bounds,
		tuning: opts.Tuning,
		rng:    rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
		logger: opts.Logger,
	}
	s.reset()

	s.logger.Info("game state initialized",
		"width", s.bounds.Width,
		"height", s.bounds.Height,
		"max_parent_asteroids", s.tuning.MaxParentAsteroids,
		"seed", opts.Seed,
	)
	return s
}

func (s *State) reset() {
	s.player = NewPlayer(s.bounds.Center(), s.tuning)
	s.asteroids = make([]*Asteroid, 0, s.tuning.MaxParentAsteroids*(childrenPerParent+1))
	s.lasers = make([]*Laser, 0, s.tuning.MaxLasers)
	s.liveParents = 0
	s.fireCooldown = NewExpiredTimer(s.tuning.FireCooldown)
	s.events = s.events[:0]
	s.mode = ModePlaying
}

// TogglePause flips between playing and paused. It does nothing after the game
// is over.
func (s *State) TogglePause() {
	switch s.mode {
	case ModePlaying:
		s.mode = ModePaused
	case ModePaused:
		s.mode = ModePlaying
	default:
		return
	}
	s.logger.Debug("pause toggled", "mode", s.mode)
}

// RequestReset starts a fresh game once the current one is over
func (s *State) RequestReset() {
	if s.mode != ModeGameOver {
		return
	}
	s.logger.Debug("resetting game", "final_score", s.player.Score())
	s.reset()
	s.logger.Debug("game reset complete", "mode", s.mode)
}

// Tick advances the simulation by one frame. dt is the simulated time since
// the previous tick and drives the fire cooldown and invulnerability timers.
// Nothing moves unless the game is playing.
func (s *State) Tick(dt time.Duration, cmds Commands) {
	s.events = s.events[:0]
	if s.mode != ModePlaying {
		return
	}

	s.ticks++
	s.fireCooldown.Update(dt)

	s.addAsteroids()
	for _, asteroid := range s.asteroids {
		asteroid.Update(s.bounds)
	}
	s.player.Update(cmds, dt, s.bounds)
	s.updateLasers(cmds)
	s.handleAsteroidHits()
	s.handlePlayerCollisions()
}

func (s *State) newID() EntityID {
	s.nextID++
	return s.nextID
}

// addAsteroids tops the parent population back up to the cap
func (s *State) addAsteroids() {
	parent := true
	for s.liveParents < s.tuning.MaxParentAsteroids {
		asteroid := NewAsteroid(s.newID(), AsteroidConfig{Parent: &parent}, s.bounds, s.tuning, s.rng)
		s.asteroids = append(s.asteroids, asteroid)
		s.liveParents++
		s.logger.Debug("asteroid spawned",
			"id", asteroid.ID(),
			"position", asteroid.Position(),
			"scale", asteroid.Scale(),
			"live_parents", s.liveParents,
		)
	}
}

func (s *State) updateLasers(cmds Commands) {
	s.lasers = slices.DeleteFunc(s.lasers, func(l *Laser) bool {
		return !l.InBounds(s.bounds)
	})

	if cmds.Has(CommandFire) && s.fireCooldown.IsReady() && len(s.lasers) < s.tuning.MaxLasers {
		laser := NewLaser(s.newID(), s.player.Position(), s.player.Angle(), s.tuning.LaserSpeed)
		s.lasers = append(s.lasers, laser)
		s.fireCooldown.Reset()
		s.emit(EventLaserFired, laser.Position())
	}

	for _, laser := range s.lasers {
		laser.Update()
	}
}

// handleAsteroidHits scans every laser against every asteroid, then removes
// what was hit and adds the children of destroyed parents. The slices are not
// touched while the scan runs.
func (s *State) handleAsteroidHits() {
	hitLasers := idSet{}
	hitAsteroids := idSet{}
	var children []*Asteroid

	for _, laser := range s.lasers {
		for _, asteroid := range s.asteroids {
			if !asteroid.IsHit(laser.Position()) {
				continue
			}

			hitLasers.add(laser.ID())
			s.player.IncrementScore()

			if !hitAsteroids.add(asteroid.ID()) {
				continue
			}
			s.emit(EventAsteroidDestroyed, asteroid.Position())
			s.logger.Debug("asteroid destroyed",
				"id", asteroid.ID(),
				"parent", asteroid.IsParent(),
				"score", s.player.Score(),
			)

			if asteroid.IsParent() {
				s.liveParents--
				for i := 0; i < childrenPerParent; i++ {
					children = append(children, asteroid.GenerateChild(s.newID(), s.bounds, s.tuning, s.rng))
				}
			}
		}
	}

	s.lasers = removeIDs(s.lasers, hitLasers)
	s.asteroids = removeIDs(s.asteroids, hitAsteroids)
	s.asteroids = append(s.asteroids, children...)
}

func (s *State) handlePlayerCollisions() {
	for _, asteroid := range s.asteroids {
		if !asteroid.IsColliding(s.player.Vertices()) {
			continue
		}

		if s.player.Hit(s.bounds) {
			s.emit(EventPlayerHit, asteroid.Position())
			s.logger.Info("player hit", "lives", s.player.Lives(), "asteroid", asteroid.ID())
		}

		if s.player.IsDead() {
			s.mode = ModeGameOver
			s.emit(EventGameOver, s.player.Position())
			s.logger.Info("game over", "score", s.player.Score(), "ticks", s.ticks)
			return
		}
	}
}

func (s *State) emit(kind EventKind, position geometry.Vector) {
	s.events = append(s.events, Event{Kind: kind, Position: position})
}

func (s *State) Mode() Mode {
	return s.mode
}

func (s *State) Player() *Player {
	return s.player
}

func (s *State) Asteroids() []*Asteroid {
	return s.asteroids
}

func (s *State) Lasers() []*Laser {
	return s.lasers
}

func (s *State) LiveParents() int {
	return s.liveParents
}

func (s *State) Bounds() geometry.Bounds {
	return s.bounds
}

func (s *State) Ticks() uint64 {
	return s.ticks
}

// Events lists what happened during the most recent Tick
func (s *State) Events() []Event {
	return s.events
}
