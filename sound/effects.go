package sound

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/meghashyamc/asteroids2d/game"
)

const sampleRate = beep.SampleRate(44100)

const (
	laserDuration     = 60 * time.Millisecond
	explosionDuration = 180 * time.Millisecond
	hitNoteDuration   = 120 * time.Millisecond
	gameOverNote      = 220 * time.Millisecond
)

type note struct {
	freq     float64
	duration time.Duration
}

// decay fades a stream linearly from full volume to silence over its length
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

func newDecay(s beep.Streamer, duration time.Duration) beep.Streamer {
	return &decay{streamer: s, total: sampleRate.N(duration)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	if d.position >= d.total {
		return 0, false
	}
	if remaining := d.total - d.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := float64(d.total-d.position) / float64(d.total)
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// noise is white noise, used for explosions
type noise struct{}

func (noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		val := rand.Float64()*2 - 1
		samples[i][0] = val
		samples[i][1] = val
	}
	return len(samples), true
}

func (noise) Err() error { return nil }

func tone(n note) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, n.freq)
	if err != nil {
		return beep.Silence(sampleRate.N(n.duration))
	}
	return newDecay(beep.Take(sampleRate.N(n.duration), sine), n.duration)
}

func melody(notes ...note) beep.Streamer {
	streamers := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		streamers = append(streamers, tone(n))
	}
	return beep.Seq(streamers...)
}

// math.Log2(0) is -Inf, so zero volume is mapped to silence
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Effect builds the sound for a game event, or nil for events without one
func Effect(kind game.EventKind, volume float64) beep.Streamer {
	var s beep.Streamer
	switch kind {
	case game.EventLaserFired:
		s = tone(note{freq: 880, duration: laserDuration})
	case game.EventAsteroidDestroyed:
		s = newDecay(beep.Take(sampleRate.N(explosionDuration), noise{}), explosionDuration)
	case game.EventPlayerHit:
		s = melody(note{220, hitNoteDuration}, note{165, hitNoteDuration})
	case game.EventGameOver:
		s = melody(note{440, gameOverNote}, note{330, gameOverNote}, note{220, 2 * gameOverNote})
	default:
		return nil
	}
	return withVolume(s, volume)
}

// EffectDuration is how long the sound for kind plays
func EffectDuration(kind game.EventKind) time.Duration {
	switch kind {
	case game.EventLaserFired:
		return laserDuration
	case game.EventAsteroidDestroyed:
		return explosionDuration
	case game.EventPlayerHit:
		return 2 * hitNoteDuration
	case game.EventGameOver:
		return 4 * gameOverNote
	default:
		return 0
	}
}
