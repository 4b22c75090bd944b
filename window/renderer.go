package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/meghashyamc/asteroids2d/assets"
	"github.com/meghashyamc/asteroids2d/game"
	"github.com/meghashyamc/asteroids2d/geometry"
)

const lineWidth = 1

// screenRenderer draws a frame onto the ebiten screen image. ebiten presents
// the screen itself once Draw returns.
type screenRenderer struct {
	screen *ebiten.Image
}

func newScreenRenderer(screen *ebiten.Image) *screenRenderer {
	return &screenRenderer{screen: screen}
}

func toColor(c game.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func (r *screenRenderer) Clear(colour game.RGB) {
	r.screen.Fill(toColor(colour))
}

func (r *screenRenderer) DrawLines(points []geometry.Point, colour game.RGB) error {
	clr := toColor(colour)
	for i := 1; i < len(points); i++ {
		from, to := points[i-1], points[i]
		vector.StrokeLine(r.screen, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), lineWidth, clr, false)
	}
	return nil
}

func (r *screenRenderer) FillRect(x, y, w, h int, colour game.RGB) error {
	vector.DrawFilledRect(r.screen, float32(x), float32(y), float32(w), float32(h), toColor(colour), false)
	return nil
}

func (r *screenRenderer) DrawText(s string, colour game.RGB, x, y int) error {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(toColor(colour))
	text.Draw(r.screen, s, assets.FaceFor(s), op)
	return nil
}

func (r *screenRenderer) FillPolygon(vertices []geometry.Point, colour game.RGB) error {
	if len(vertices) != 3 {
		return fmt.Errorf("can only fill triangles, got %d vertices", len(vertices))
	}

	clr := toColor(colour)
	geometry.ScanTriangle(vertices, func(y, xFrom, xTo int) {
		vector.DrawFilledRect(r.screen, float32(xFrom), float32(y), float32(xTo-xFrom+1), 1, clr, false)
	})
	return nil
}

func (r *screenRenderer) Present() error {
	return nil
}
