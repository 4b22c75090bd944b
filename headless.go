package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/meghashyamc/asteroids2d/game"
	"github.com/meghashyamc/asteroids2d/logger"
)

// autopilot is the looping control script the headless backend plays: spin
// while firing, thrust for a moment, then drift and fire.
func autopilot() *game.ScriptedInput {
	spin := game.NewCommands(game.CommandRotateRight, game.CommandFire)
	thrust := game.NewCommands(game.CommandAccelerate, game.CommandFire)
	fire := game.NewCommands(game.CommandFire)

	script := slices.Concat(
		game.Repeat(spin, 90),
		game.Repeat(thrust, 20),
		game.Repeat(fire, 60),
	)
	return game.NewScriptedInput(script...).Loop()
}

// runHeadless plays frames against a recording renderer, without a screen or
// audio, and reports how the game went
func runHeadless(state *game.State, frames uint64, dt time.Duration, log logger.Logger) error {
	input := autopilot()
	renderer := game.NewRecordingRenderer()

	log.Info("headless run started", "frames", frames, "dt", dt)
	for i := uint64(0); i < frames; i++ {
		if err := game.Step(state, input, renderer, dt); err != nil {
			return fmt.Errorf("failed to render frame %d: %w", i, err)
		}
		if state.Mode() == game.ModeGameOver {
			state.RequestReset()
		}
	}

	player := state.Player()
	log.Info("headless run finished",
		"frames", renderer.Frames,
		"ticks", state.Ticks(),
		"score", player.Score(),
		"lives", player.Lives(),
		"mode", state.Mode().String(),
	)
	return nil
}
