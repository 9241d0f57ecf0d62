package random

import (
	"math/rand/v2"
)

// Source provides random values.
type Source interface {
	// Float64 returns a uniformly distributed value in [low, high).
	Float64(low, high float64) float64
	// IntN returns a uniformly distributed value in [low, high].
	IntN(low, high int) int
}

// Generator is a seedable Source backed by PCG. It is not safe for concurrent use.
type Generator struct {
	rnd *rand.Rand
}

var _ Source = (*Generator)(nil)

// New returns a new generator. Zero seed means that the seed is taken from runtime entropy.
func New(seed uint64) *Generator {
	if seed == 0 {
		seed = rand.Uint64()
	}

	return &Generator{
		rnd: rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}

func (g *Generator) Float64(low, high float64) float64 {
	return low + g.rnd.Float64()*(high-low)
}

func (g *Generator) IntN(low, high int) int {
	return low + g.rnd.IntN(high-low+1)
}
