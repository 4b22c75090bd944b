package game

import (
	"math"
	"time"
)

// Per-tick values: velocities are pixels per tick, speeds are not scaled by dt.
const (
	defaultMaxParentAsteroids = 7
	defaultAsteroidMinScale   = 30.0
	defaultAsteroidMaxScale   = 50.0
	defaultAsteroidMinSpeed   = 0.01
	defaultAsteroidMaxSpeed   = 0.02
	asteroidVertexCount       = 7
	childPositionVariance     = 20.0
	childVelocityVariance     = 0.25
	childScaleFactor          = 0.4
	childScaleVariance        = 0.2
	childrenPerParent         = 2

	defaultLaserSpeed   = 0.075
	defaultMaxLasers    = 64
	defaultFireCooldown = 350 * time.Millisecond
	laserDotSize        = 3

	defaultPlayerRotationSpeed = 0.001
	defaultPlayerAcceleration  = 0.000025
	defaultPlayerMaxVelocity   = 0.065
	defaultPlayerDeceleration  = 0.000005
	defaultPlayerLives         = 3
	defaultInvulnerability     = 3 * time.Second
	playerScale                = 20.0
	blinkInterval              = 150 * time.Millisecond

	defaultScreenWidth  = 800
	defaultScreenHeight = 600
)

const playerStartAngle = -math.Pi / 2

// Tuning holds every gameplay constant. The zero value is not usable; start
// from DefaultTuning and override.
type Tuning struct {
	MaxParentAsteroids int
	AsteroidMinScale   float64
	AsteroidMaxScale   float64
	AsteroidMinSpeed   float64
	AsteroidMaxSpeed   float64

	LaserSpeed   float64
	MaxLasers    int
	FireCooldown time.Duration

	RotationSpeed   float64
	Acceleration    float64
	MaxVelocity     float64
	Deceleration    float64
	Lives           int
	Invulnerability time.Duration
}

func DefaultTuning() Tuning {
	return Tuning{
		MaxParentAsteroids: defaultMaxParentAsteroids,
		AsteroidMinScale:   defaultAsteroidMinScale,
		AsteroidMaxScale:   defaultAsteroidMaxScale,
		AsteroidMinSpeed:   defaultAsteroidMinSpeed,
		AsteroidMaxSpeed:   defaultAsteroidMaxSpeed,

		LaserSpeed:   defaultLaserSpeed,
		MaxLasers:    defaultMaxLasers,
		FireCooldown: defaultFireCooldown,

		RotationSpeed:   defaultPlayerRotationSpeed,
		Acceleration:    defaultPlayerAcceleration,
		MaxVelocity:     defaultPlayerMaxVelocity,
		Deceleration:    defaultPlayerDeceleration,
		Lives:           defaultPlayerLives,
		Invulnerability: defaultInvulnerability,
	}
}
