package geometry

// Distance returns the euclidean distance between two positions
func Distance(a, b Vector) float64 {
	return b.Sub(a).Magnitude()
}
