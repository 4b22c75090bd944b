package geometry

// Point is an integer pixel coordinate. Polygons are ordered slices of Points.
type Point struct {
	X int
	Y int
}

func (p Point) Vector() Vector {
	return Vector{X: float64(p.X), Y: float64(p.Y)}
}

// Bounds is the visible screen rectangle [0,Width]x[0,Height]
type Bounds struct {
	Width  int
	Height int
}

func (b Bounds) Center() Vector {
	return Vector{X: float64(b.Width) / 2, Y: float64(b.Height) / 2}
}

// Contains reports whether v lies inside the rectangle, edges included
func (b Bounds) Contains(v Vector) bool {
	return v.X >= 0 && v.X <= float64(b.Width) && v.Y >= 0 && v.Y <= float64(b.Height)
}
