package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/meghashyamc/asteroids2d/game"
	"github.com/meghashyamc/asteroids2d/geometry"
)

const (
	runeLine  = '*'
	runeLaser = '.'
	runeShip  = '#'
)

// cellRenderer scales the logical playfield onto the terminal's cell grid.
// Anything that lands outside the grid is clipped.
type cellRenderer struct {
	screen tcell.Screen
	bounds geometry.Bounds
	cols   int
	rows   int
}

func newCellRenderer(screen tcell.Screen, bounds geometry.Bounds) *cellRenderer {
	r := &cellRenderer{screen: screen, bounds: bounds}
	r.resize(screen.Size())
	return r
}

func (r *cellRenderer) resize(cols, rows int) {
	r.cols = cols
	r.rows = rows
}

// cell maps a logical pixel onto the grid
func (r *cellRenderer) cell(x, y int) (int, int) {
	return x * r.cols / r.bounds.Width, y * r.rows / r.bounds.Height
}

func style(colour game.RGB) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(colour.R), int32(colour.G), int32(colour.B))).
		Background(tcell.ColorBlack)
}

func (r *cellRenderer) set(col, row int, ch rune, st tcell.Style) {
	if col < 0 || row < 0 || col >= r.cols || row >= r.rows {
		return
	}
	r.screen.SetContent(col, row, ch, nil, st)
}

func (r *cellRenderer) Clear(colour game.RGB) {
	r.screen.SetStyle(tcell.StyleDefault.Background(tcell.NewRGBColor(int32(colour.R), int32(colour.G), int32(colour.B))))
	r.screen.Clear()
}

func (r *cellRenderer) DrawLines(points []geometry.Point, colour game.RGB) error {
	st := style(colour)
	for i := 1; i < len(points); i++ {
		x0, y0 := r.cell(points[i-1].X, points[i-1].Y)
		x1, y1 := r.cell(points[i].X, points[i].Y)
		line(x0, y0, x1, y1, func(col, row int) {
			r.set(col, row, runeLine, st)
		})
	}
	return nil
}

func (r *cellRenderer) FillRect(x, y, w, h int, colour game.RGB) error {
	st := style(colour)
	left, top := r.cell(x, y)
	right, bottom := r.cell(x+w-1, y+h-1)
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			r.set(col, row, runeLaser, st)
		}
	}
	return nil
}

func (r *cellRenderer) DrawText(text string, colour game.RGB, x, y int) error {
	st := style(colour)
	col, row := r.cell(x, y)
	for _, ch := range text {
		r.set(col, row, ch, st)
		col++
	}
	return nil
}

func (r *cellRenderer) FillPolygon(vertices []geometry.Point, colour game.RGB) error {
	st := style(colour)
	cells := make([]geometry.Point, len(vertices))
	for i, v := range vertices {
		col, row := r.cell(v.X, v.Y)
		cells[i] = geometry.Point{X: col, Y: row}
	}
	geometry.ScanTriangle(cells, func(row, from, to int) {
		for col := from; col <= to; col++ {
			r.set(col, row, runeShip, st)
		}
	})
	return nil
}

func (r *cellRenderer) Present() error {
	r.screen.Show()
	return nil
}

// line walks the cells between two points, Bresenham style
func line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
