package geometry

import (
	"cmp"
	"slices"
)

// Interpolate returns x on the edge (x0,y0)-(x1,y1) at scanline y. A horizontal
// edge yields x0.
func Interpolate(y, y0, y1, x0, x1 int) int {
	if y0 == y1 {
		return x0
	}
	return x0 + (x1-x0)*(y-y0)/(y1-y0)
}

// ScanTriangle fills a triangle scanline by scanline. The vertices are sorted
// by y; above the middle vertex the short edge is the top one, from the middle
// vertex down it is the bottom one, and the long edge spans top to bottom.
// span receives every covered row with an inclusive x range.
func ScanTriangle(vertices []Point, span func(y, xFrom, xTo int)) {
	if len(vertices) < 3 {
		return
	}

	sorted := slices.Clone(vertices[:3])
	slices.SortStableFunc(sorted, func(a, b Point) int {
		return cmp.Compare(a.Y, b.Y)
	})

	x1, y1 := sorted[0].X, sorted[0].Y
	x2, y2 := sorted[1].X, sorted[1].Y
	x3, y3 := sorted[2].X, sorted[2].Y

	for y := y1; y <= y3; y++ {
		var xStart int
		if y < y2 {
			xStart = Interpolate(y, y1, y2, x1, x2)
		} else {
			xStart = Interpolate(y, y2, y3, x2, x3)
		}
		xEnd := Interpolate(y, y1, y3, x1, x3)

		span(y, min(xStart, xEnd), max(xStart, xEnd))
	}
}
