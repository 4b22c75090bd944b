package game

import "github.com/meghashyamc/asteroids2d/geometry"

type RGB struct {
	R uint8
	G uint8
	B uint8
}

var (
	ColourWhite = RGB{R: 255, G: 255, B: 255}
	ColourBlack = RGB{R: 0, G: 0, B: 0}
	ColourRed   = RGB{R: 255, G: 50, B: 50}
)

// Renderer is the drawing surface a frame is rendered onto
type Renderer interface {
	Clear(colour RGB)
	// DrawLines draws an open polyline through points in order
	DrawLines(points []geometry.Point, colour RGB) error
	FillRect(x, y, w, h int, colour RGB) error
	DrawText(text string, colour RGB, x, y int) error
	// FillPolygon fills a triangle using geometry.ScanTriangle coverage
	FillPolygon(vertices []geometry.Point, colour RGB) error
	Present() error
}
