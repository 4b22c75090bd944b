package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/meghashyamc/asteroids2d/game"
	"github.com/meghashyamc/asteroids2d/logger"
	"github.com/meghashyamc/asteroids2d/sound"
)

type action int

const (
	actionNone action = iota
	actionQuit
	actionPause
	actionReset
)

// actionFor maps the keys that drive the game rather than the ship
func actionFor(key tcell.Key, r rune) action {
	switch key {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return actionQuit
	case tcell.KeyEnter:
		return actionReset
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return actionQuit
		case 'p', 'P':
			return actionPause
		}
	}
	return actionNone
}

type Options struct {
	Screen    tcell.Screen
	State     *game.State
	Sound     *sound.Player
	Logger    logger.Logger
	TPS       int
	KeyHold   int
	MaxFrames uint64 // 0 runs until quit
}

// Runner drives the simulation on a terminal screen. Screen events are read on
// a separate goroutine and forwarded over a channel; the state is only touched
// from Run's goroutine.
type Runner struct {
	screen    tcell.Screen
	state     *game.State
	input     *heldKeys
	renderer  *cellRenderer
	sound     *sound.Player
	logger    logger.Logger
	dt        time.Duration
	maxFrames uint64
	frames    uint64
}

func NewRunner(opts Options) *Runner {
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	if opts.Sound == nil {
		opts.Sound = sound.Disabled()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}

	return &Runner{
		screen:    opts.Screen,
		state:     opts.State,
		input:     newHeldKeys(opts.KeyHold),
		renderer:  newCellRenderer(opts.Screen, opts.State.Bounds()),
		sound:     opts.Sound,
		logger:    opts.Logger,
		dt:        time.Second / time.Duration(opts.TPS),
		maxFrames: opts.MaxFrames,
	}
}

// Run steps the game once per tick until the player quits, ctx is done or the
// frame limit is reached. A render failure stops the loop and is returned.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.dt)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := r.screen.PollEvent()
			// nil means the screen was finalized
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	r.logger.Info("terminal loop started", "dt", r.dt, "cols", r.renderer.cols, "rows", r.renderer.rows)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("terminal loop stopped", "frames", r.frames)
			return nil

		case ev := <-events:
			if !r.handleEvent(ev) {
				r.logger.Info("player quit", "frames", r.frames, "score", r.state.Player().Score())
				return nil
			}

		case <-ticker.C:
			if err := game.Step(r.state, r.input, r.renderer, r.dt); err != nil {
				return fmt.Errorf("failed to render frame %d: %w", r.frames, err)
			}
			r.sound.PlayEvents(r.state.Events())
			r.frames++
			if r.maxFrames > 0 && r.frames >= r.maxFrames {
				return nil
			}
		}
	}
}

// handleEvent returns false when the player asked to quit
func (r *Runner) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch actionFor(ev.Key(), ev.Rune()) {
		case actionQuit:
			return false
		case actionPause:
			r.state.TogglePause()
		case actionReset:
			r.state.RequestReset()
		default:
			r.input.press(ev.Key(), ev.Rune())
		}

	case *tcell.EventResize:
		r.renderer.resize(r.screen.Size())
		r.screen.Sync()
		r.logger.Debug("terminal resized", "cols", r.renderer.cols, "rows", r.renderer.rows)
	}

	return true
}

func (r *Runner) Frames() uint64 {
	return r.frames
}
