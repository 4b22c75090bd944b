package main

import (
	"github.com/meghashyamc/asteroids2d/config"
	"github.com/meghashyamc/asteroids2d/game"
)

// applyTuning overrides the defaults with whatever tuning.* keys are set
func applyTuning(cfg *config.Config, t game.Tuning) game.Tuning {
	floats := map[string]*float64{
		"asteroid_min_scale": &t.AsteroidMinScale,
		"asteroid_max_scale": &t.AsteroidMaxScale,
		"asteroid_min_speed": &t.AsteroidMinSpeed,
		"asteroid_max_speed": &t.AsteroidMaxSpeed,
		"laser_speed":        &t.LaserSpeed,
		"rotation_speed":     &t.RotationSpeed,
		"acceleration":       &t.Acceleration,
		"max_velocity":       &t.MaxVelocity,
		"deceleration":       &t.Deceleration,
	}
	for name, field := range floats {
		if v, ok := cfg.GetTuningFloat(name); ok {
			*field = v
		}
	}

	ints := map[string]*int{
		"max_parent_asteroids": &t.MaxParentAsteroids,
		"max_lasers":           &t.MaxLasers,
		"lives":                &t.Lives,
	}
	for name, field := range ints {
		if v, ok := cfg.GetTuningInt(name); ok && v > 0 {
			*field = v
		}
	}

	if v, ok := cfg.GetTuningDuration("fire_cooldown"); ok {
		t.FireCooldown = v
	}
	if v, ok := cfg.GetTuningDuration("invulnerability"); ok {
		t.Invulnerability = v
	}

	return t
}
