package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"github.com/meghashyamc/asteroids2d/config"
	"github.com/meghashyamc/asteroids2d/game"
	"github.com/meghashyamc/asteroids2d/geometry"
	"github.com/meghashyamc/asteroids2d/logger"
	"github.com/meghashyamc/asteroids2d/sound"
	"github.com/meghashyamc/asteroids2d/terminal"
	"github.com/meghashyamc/asteroids2d/window"
)

func main() {
	flags := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	env := flags.String("env", "", "config environment, selects config/config.<env>.yaml")
	flags.String("backend", "", "window, terminal or headless")
	flags.Uint64("seed", 0, "random seed, 0 picks one from the clock")
	ticks := flags.Uint64("ticks", 600, "frames to run for the headless backend, or the terminal backend if set")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(*env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}
	if err := cfg.BindFlags(flags); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}

	backend := cfg.GetBackend()
	level := logger.ParseLevel(cfg.GetLogLevel())

	// The terminal backend draws on the tty, so its logs are held back until
	// the screen is released
	var logs bytes.Buffer
	log := logger.NewWithWriter(os.Stderr, level)
	if backend == config.BackendTerminal {
		log = logger.NewWithWriter(&logs, level)
	}

	seed := cfg.GetSeed()
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	state := game.NewState(game.StateOptions{
		Bounds: geometry.Bounds{Width: cfg.GetWindowWidth(), Height: cfg.GetWindowHeight()},
		Tuning: applyTuning(cfg, game.DefaultTuning()),
		Seed:   seed,
		Logger: log,
	})

	switch backend {
	case config.BackendWindow:
		player := sound.New(cfg.GetSoundEnabled(), cfg.GetSoundVolume(), log)
		defer player.Close()
		err = window.NewGame(cfg, state, player, log).Run()
	case config.BackendTerminal:
		maxFrames := uint64(0)
		if flags.Changed("ticks") {
			maxFrames = *ticks
		}
		err = runTerminal(cfg, state, maxFrames, log)
		os.Stderr.Write(logs.Bytes())
	case config.BackendHeadless:
		err = runHeadless(state, *ticks, time.Second/time.Duration(max(cfg.GetTPS(), 1)), log)
	default:
		err = fmt.Errorf("unknown backend %q", backend)
	}

	if err != nil {
		slog.Error("error running game", "backend", backend, "err", err)
		os.Exit(1)
	}
}

func runTerminal(cfg *config.Config, state *game.State, maxFrames uint64, log logger.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	defer screen.Fini()

	player := sound.New(cfg.GetSoundEnabled(), cfg.GetSoundVolume(), log)
	defer player.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := terminal.NewRunner(terminal.Options{
		Screen:    screen,
		State:     state,
		Sound:     player,
		Logger:    log,
		TPS:       cfg.GetTPS(),
		KeyHold:   cfg.GetKeyHoldTicks(),
		MaxFrames: maxFrames,
	})
	return runner.Run(ctx)
}
