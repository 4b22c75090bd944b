package game

import "time"

// Step runs one frame: poll the controls, advance the simulation, render
func Step(state *State, input InputSource, renderer Renderer, dt time.Duration) error {
	state.Tick(dt, input.Poll())
	return state.Draw(renderer)
}
