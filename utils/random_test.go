package utils

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandom_IntStaysInRange(t *testing.T) {
	assert := assert.New(t)
	r := NewRand(1)

	seen := map[uint]bool{}
	for i := 0; i < 1000; i++ {
		v := Int(r, uint(8), uint(16))
		assert.GreaterOrEqual(v, uint(8))
		assert.LessOrEqual(v, uint(16))
		seen[v] = true
	}
	// Both ends of the closed range are reachable.
	assert.True(seen[8])
	assert.True(seen[16])

	assert.Equal(5, Int(r, 5, 5))
	v := Int(r, 10, -10)
	assert.GreaterOrEqual(v, -10)
	assert.LessOrEqual(v, 10)
}

func TestRandom_FloatStaysInRange(t *testing.T) {
	r := NewRand(2)
	for i := 0; i < 1000; i++ {
		f := r.Float(18, 70)
		if f < 18 || f >= 70 {
			t.Fatalf("value %v outside of [18, 70)", f)
		}
	}
}

func TestRandom_PermutationIsComplete(t *testing.T) {
	assert := assert.New(t)
	r := NewTimeRand()

	for _, n := range []int{0, 1, 2, 7, 225} {
		p := r.Permutation(n)
		assert.Len(p, n)

		sorted := append([]int(nil), p...)
		sort.Ints(sorted)
		for i, v := range sorted {
			assert.Equal(i, v)
		}
	}
	assert.Empty(r.Permutation(-3))
}

func TestRandom_SameSeedSameSequence(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	assert.Equal(t, a.Permutation(50), b.Permutation(50))
	assert.Equal(t, a.Float(0, 1), b.Float(0, 1))
}

func TestRandom_PermutationSwapsAcrossWholeRange(t *testing.T) {
	const seed, n = 5, 225

	src := rand.New(rand.NewSource(seed))
	want := make([]int, n)
	for i := range want {
		want[i] = i
	}
	for i := range want {
		j := src.Intn(n)
		want[i], want[j] = want[j], want[i]
	}

	assert.Equal(t, want, NewRand(seed).Permutation(n))
}
