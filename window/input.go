package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/meghashyamc/asteroids2d/game"
)

var keyBindings = map[game.Command][]ebiten.Key{
	game.CommandRotateLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	game.CommandRotateRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	game.CommandAccelerate:  {ebiten.KeyArrowUp, ebiten.KeyW},
	game.CommandFire:        {ebiten.KeySpace},
}

// keyboardInput reads the keys held right now
type keyboardInput struct {
	pressed func(ebiten.Key) bool
}

func newKeyboardInput() *keyboardInput {
	return &keyboardInput{pressed: ebiten.IsKeyPressed}
}

func (k *keyboardInput) Poll() game.Commands {
	var cmds game.Commands
	for cmd, keys := range keyBindings {
		for _, key := range keys {
			if k.pressed(key) {
				cmds = cmds.With(cmd)
				break
			}
		}
	}
	return cmds
}
