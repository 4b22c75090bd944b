package geometry

import (
	"math/rand/v2"
)

type edge int

const (
	edgeLeft edge = iota
	edgeRight
	edgeTop
	edgeBottom
)

// Uniform samples [lo, hi). An empty range returns lo.
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// GenerateSpawnPoint picks one of the four screen edges and a random coordinate
// along it, pushed margin pixels outside the visible rectangle.
func GenerateSpawnPoint(rng *rand.Rand, width, height int, margin float64) Vector {
	w := float64(width)
	h := float64(height)

	switch edge(rng.IntN(4)) {
	case edgeLeft:
		return Vector{X: -margin, Y: Uniform(rng, 0, h)}
	case edgeRight:
		return Vector{X: w + margin, Y: Uniform(rng, 0, h)}
	case edgeTop:
		return Vector{X: Uniform(rng, 0, w), Y: -margin}
	default:
		return Vector{X: Uniform(rng, 0, w), Y: h + margin}
	}
}

// GenerateVelocity samples each axis magnitude in [min, max) with its own sign
func GenerateVelocity(rng *rand.Rand, min, max float64) Vector {
	return Vector{
		X: randomSign(rng) * Uniform(rng, min, max),
		Y: randomSign(rng) * Uniform(rng, min, max),
	}
}

func randomSign(rng *rand.Rand) float64 {
	if rng.IntN(2) == 0 {
		return -1
	}
	return 1
}
