package geometry

import (
	"math"
)

type Vector struct {
	X float64
	Y float64
}

// FromAngle returns the unit vector pointing along angle (radians)
func FromAngle(angle float64) Vector {
	return Vector{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Magnitude calculates the magnitude (length) of a vector
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

func (v Vector) Scale(factor float64) Vector {
	return Vector{v.X * factor, v.Y * factor}
}

// Point truncates both coordinates toward zero
func (v Vector) Point() Point {
	return Point{X: int(v.X), Y: int(v.Y)}
}

func (v Vector) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}
