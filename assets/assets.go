package assets

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	hudFontSize   = 24
	titleFontSize = 40
)

var (
	// HUDFont is used for the score, lives and prompts
	HUDFont *text.GoTextFace
	// TitleFont is used for the game over and pause banners
	TitleFont *text.GoTextFace
)

func init() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	HUDFont = &text.GoTextFace{
		Source: fontSource,
		Size:   hudFontSize,
	}
	TitleFont = &text.GoTextFace{
		Source: fontSource,
		Size:   titleFontSize,
	}
}

// FaceFor picks the face for a piece of screen text
func FaceFor(s string) *text.GoTextFace {
	switch s {
	case "GAME OVER", "PAUSED":
		return TitleFont
	default:
		return HUDFont
	}
}
