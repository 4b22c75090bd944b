package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/meghashyamc/asteroids2d/config"
	"github.com/meghashyamc/asteroids2d/game"
	"github.com/meghashyamc/asteroids2d/logger"
	"github.com/meghashyamc/asteroids2d/sound"
)

// Game runs the simulation in a desktop window
type Game struct {
	cfg    *config.Config
	state  *game.State
	input  game.InputSource
	sound  *sound.Player
	logger logger.Logger
	dt     time.Duration
}

func NewGame(cfg *config.Config, state *game.State, player *sound.Player, log logger.Logger) *Game {
	tps := cfg.GetTPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g := &Game{
		cfg:    cfg,
		state:  state,
		input:  newKeyboardInput(),
		sound:  player,
		logger: log,
		dt:     time.Second / time.Duration(tps),
	}

	g.logger.Info("window game initialized", "tps", tps, "dt", g.dt)
	return g
}

func (g *Game) Run() error {
	g.logger.Info("starting game")
	g.setupWindow()

	// Running the game calls Update() on every 'tick'
	return ebiten.RunGame(g)
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(g.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(int(time.Second / g.dt))
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.state.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.state.RequestReset()
	}

	g.state.Tick(g.dt, g.input.Poll())
	g.sound.PlayEvents(g.state.Events())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if err := g.state.Draw(newScreenRenderer(screen)); err != nil {
		g.logger.Error("failed to draw frame", "err", err.Error(), "tick", g.state.Ticks())
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	bounds := g.state.Bounds()
	return bounds.Width, bounds.Height
}
