package sound

import (
	"testing"

	"github.com/gopxl/beep"

	"github.com/meghashyamc/asteroids2d/game"
	"github.com/meghashyamc/asteroids2d/logger"
)

func drain(t *testing.T, s beep.Streamer) (count int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if v > peak {
					peak = v
				} else if -v > peak {
					peak = -v
				}
			}
		}
		count += n
		if !ok {
			break
		}
		if count > sampleRate.N(EffectDuration(game.EventGameOver))*2 {
			t.Fatal("effect never ended")
		}
	}
	if err := s.Err(); err != nil {
		t.Errorf("unexpected stream error: %v", err)
	}
	return count, peak
}

func TestEffectLengths(t *testing.T) {
	kinds := []game.EventKind{
		game.EventLaserFired,
		game.EventAsteroidDestroyed,
		game.EventPlayerHit,
		game.EventGameOver,
	}

	for _, kind := range kinds {
		s := Effect(kind, 1)
		if s == nil {
			t.Fatalf("%s: expected an effect", kind)
		}

		count, peak := drain(t, s)
		want := sampleRate.N(EffectDuration(kind))
		if abs(count-want) > 4 {
			t.Errorf("%s: expected about %d samples, got %d", kind, want, count)
		}
		if peak > 1 {
			t.Errorf("%s: sample out of range: %f", kind, peak)
		}
		if peak == 0 {
			t.Errorf("%s: effect is silent", kind)
		}
	}
}

func TestEffectUnknownKind(t *testing.T) {
	if s := Effect(game.EventKind(99), 1); s != nil {
		t.Error("expected no effect for an unknown event")
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(t, Effect(game.EventLaserFired, 0))
	if peak != 0 {
		t.Errorf("expected silence, got peak %f", peak)
	}
}

func TestDecayFadesOut(t *testing.T) {
	s := &decay{streamer: beep.Take(100, constant{}), total: 100}
	buf := make([][2]float64, 200)

	n, _ := s.Stream(buf)
	if n != 100 {
		t.Fatalf("expected 100 samples, got %d", n)
	}
	if buf[0][0] != 1 {
		t.Errorf("expected full volume at the start, got %f", buf[0][0])
	}
	for i := 1; i < n; i++ {
		if buf[i][0] > buf[i-1][0] {
			t.Fatalf("volume rose at sample %d", i)
		}
	}
	if _, ok := s.Stream(buf); ok {
		t.Error("expected the stream to be finished")
	}
}

func TestDisabledPlayerDropsEvents(t *testing.T) {
	p := New(false, 1, logger.Discard())
	if p.Enabled() {
		t.Fatal("expected a disabled player")
	}
	p.PlayEvents([]game.Event{{Kind: game.EventLaserFired}})
	p.Close()

	Disabled().PlayEvents([]game.Event{{Kind: game.EventGameOver}})
}

type constant struct{}

func (constant) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{1, 1}
	}
	return len(samples), true
}

func (constant) Err() error { return nil }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
