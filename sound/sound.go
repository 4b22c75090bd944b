package sound

import (
	"time"

	"github.com/gopxl/beep/speaker"

	"github.com/meghashyamc/asteroids2d/game"
	"github.com/meghashyamc/asteroids2d/logger"
)

// Player turns game events into sound effects on the default audio device.
// A Player that failed to open the device, or was created disabled, drops
// every event.
type Player struct {
	enabled bool
	volume  float64
	logger  logger.Logger
}

func New(enabled bool, volume float64, log logger.Logger) *Player {
	p := &Player{volume: volume, logger: log}
	if !enabled {
		log.Info("sound disabled")
		return p
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Warn("failed to initialize audio, continuing without sound", "err", err.Error())
		return p
	}
	p.enabled = true
	log.Info("sound initialized", "sample_rate", int(sampleRate), "volume", volume)
	return p
}

// Disabled returns a Player that plays nothing
func Disabled() *Player {
	return &Player{}
}

// PlayEvents plays one effect per kind of event in the batch
func (p *Player) PlayEvents(events []game.Event) {
	if !p.enabled || len(events) == 0 {
		return
	}

	var played [game.EventGameOver + 1]bool
	for _, event := range events {
		if event.Kind < 0 || int(event.Kind) >= len(played) || played[event.Kind] {
			continue
		}
		played[event.Kind] = true
		if s := Effect(event.Kind, p.volume); s != nil {
			speaker.Play(s)
		}
	}
}

func (p *Player) Enabled() bool {
	return p.enabled
}

func (p *Player) Close() {
	if !p.enabled {
		return
	}
	speaker.Close()
	p.enabled = false
}
