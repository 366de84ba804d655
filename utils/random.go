package utils

import (
	"math/rand"
	"time"

	"golang.org/x/exp/constraints"
)

// Rand is the pseudo random source of a single generator run.
// It is not safe for concurrent use and is not meant to be.
type Rand struct {
	src *rand.Rand
}

// NewRand returns a random source with a fixed seed.
func NewRand(seed int64) *Rand {
	return &Rand{src: rand.New(rand.NewSource(seed))}
}

// NewTimeRand returns a random source seeded from the current time.
func NewTimeRand() *Rand {
	return NewRand(time.Now().UnixNano())
}

// Int returns a uniformly distributed integer in the closed range [min, max].
func Int[T constraints.Integer](r *Rand, min, max T) T {
	lo, hi := Min(min, max), Max(min, max)
	return lo + T(r.src.Int63n(int64(hi-lo)+1))
}

// Float returns a uniformly distributed float in the half-open range [min, max).
func (r *Rand) Float(min, max float64) float64 {
	return min + r.src.Float64()*(max-min)
}

// Intn returns a uniformly distributed integer in [0, n).
func (r *Rand) Intn(n int) int {
	return r.src.Intn(n)
}

// Permutation returns the indices 0..n-1 in shuffled order.
//
// Every index is swapped with a partner drawn from the whole range rather
// than from the unvisited suffix. The result is a permutation but not a
// uniformly distributed one; existing outputs depend on this order.
func (r *Rand) Permutation(n int) []int {
	if n <= 0 {
		return []int{}
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := range p {
		j := r.src.Intn(n)
		p[i], p[j] = p[j], p[i]
	}
	return p
}
