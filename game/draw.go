package game

import (
	"fmt"
)

const (
	hudX          = 25
	hudScoreY     = 25
	hudLivesY     = 55
	gameOverTextX = 110
	gameOverTextY = 100
)

// Draw renders the current state. A renderer error stops the frame and is
// returned; the simulation is not affected.
func (s *State) Draw(r Renderer) error {
	r.Clear(ColourBlack)

	switch s.mode {
	case ModePlaying:
		if err := s.drawPlaying(r); err != nil {
			return err
		}
	case ModePaused:
		if err := s.drawPlaying(r); err != nil {
			return err
		}
		if err := s.drawPaused(r); err != nil {
			return err
		}
	case ModeGameOver:
		if err := s.drawGameOver(r); err != nil {
			return err
		}
	}

	if err := r.Present(); err != nil {
		return fmt.Errorf("presenting frame: %w", err)
	}
	return nil
}

func (s *State) drawPlaying(r Renderer) error {
	for _, asteroid := range s.asteroids {
		if err := asteroid.Draw(r, ColourWhite); err != nil {
			return fmt.Errorf("drawing asteroid %d: %w", asteroid.ID(), err)
		}
	}

	for _, laser := range s.lasers {
		if err := laser.Draw(r, ColourWhite); err != nil {
			return fmt.Errorf("drawing laser %d: %w", laser.ID(), err)
		}
	}

	if err := s.player.Draw(r, ColourWhite); err != nil {
		return fmt.Errorf("drawing player: %w", err)
	}

	if err := r.DrawText(fmt.Sprintf("SCORE: %d", s.player.Score()), ColourWhite, hudX, hudScoreY); err != nil {
		return fmt.Errorf("drawing score: %w", err)
	}
	if err := r.DrawText(fmt.Sprintf("LIVES: %d", s.player.Lives()), ColourWhite, hudX, hudLivesY); err != nil {
		return fmt.Errorf("drawing lives: %w", err)
	}
	return nil
}

func (s *State) drawPaused(r Renderer) error {
	x := s.bounds.Width/2 - 60
	y := s.bounds.Height/2 - 20
	if err := r.DrawText("PAUSED", ColourWhite, x, y); err != nil {
		return fmt.Errorf("drawing pause banner: %w", err)
	}
	return nil
}

func (s *State) drawGameOver(r Renderer) error {
	centerX := s.bounds.Width / 2
	centerY := s.bounds.Height / 2

	lines := []struct {
		text   string
		colour RGB
		x, y   int
	}{
		{"GAME OVER", ColourRed, centerX - gameOverTextX, centerY - gameOverTextY},
		{fmt.Sprintf("SCORE: %d", s.player.Score()), ColourWhite, centerX - 100, centerY - 50},
		{"Press Enter to play again", ColourWhite, centerX - 250, centerY},
	}

	for _, line := range lines {
		if err := r.DrawText(line.text, line.colour, line.x, line.y); err != nil {
			return fmt.Errorf("drawing game over screen: %w", err)
		}
	}
	return nil
}
