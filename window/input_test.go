package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/meghashyamc/asteroids2d/game"
)

func held(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, key := range keys {
			if key == k {
				return true
			}
		}
		return false
	}
}

func TestKeyboardInputMapsKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		want game.Commands
	}{
		{"nothing held", nil, 0},
		{"arrows", []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowUp}, game.NewCommands(game.CommandRotateLeft, game.CommandAccelerate)},
		{"wasd", []ebiten.Key{ebiten.KeyD, ebiten.KeyW}, game.NewCommands(game.CommandRotateRight, game.CommandAccelerate)},
		{"fire", []ebiten.Key{ebiten.KeySpace}, game.NewCommands(game.CommandFire)},
		{"both bindings", []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, game.NewCommands(game.CommandRotateLeft)},
		{"unbound key", []ebiten.Key{ebiten.KeyQ}, 0},
	}

	for _, tt := range tests {
		input := &keyboardInput{pressed: held(tt.keys...)}
		if got := input.Poll(); got != tt.want {
			t.Errorf("%s: expected %08b, got %08b", tt.name, tt.want, got)
		}
	}
}

func TestToColor(t *testing.T) {
	got := toColor(game.ColourRed)
	if got.R != 255 || got.G != 50 || got.B != 50 || got.A != 255 {
		t.Errorf("unexpected colour %v", got)
	}
}
