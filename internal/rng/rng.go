// Package rng provides the random source used by every game rule.
package rng

import (
	"math/rand/v2"
	"time"
)

// Source is the random number collaborator injected into the engine.
// Every draw is independent; there is no ordering contract between callers.
type Source interface {
	// IntRange returns a uniform integer in [lo, hi].
	IntRange(lo, hi int) int
	// Chance returns true with probability p.
	Chance(p float64) bool
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
	// Shuffle permutes n elements in place using swap.
	Shuffle(n int, swap func(i, j int))
}

// Rand is a Source backed by a PCG generator.
type Rand struct {
	r *rand.Rand
}

// New creates a Source. A seed of 0 means a time-based seed is used.
func New(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{r: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}

// IntRange returns a uniform integer in [lo, hi]. It panics if hi < lo.
func (s *Rand) IntRange(lo, hi int) int {
	if hi < lo {
		panic("rng: IntRange with hi < lo")
	}
	return lo + s.r.IntN(hi-lo+1)
}

// Chance returns true with probability p.
func (s *Rand) Chance(p float64) bool {
	return s.r.Float64() < p
}

// Intn returns a uniform integer in [0, n).
func (s *Rand) Intn(n int) int {
	return s.r.IntN(n)
}

// Shuffle permutes n elements in place.
func (s *Rand) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}

// Choose returns a uniformly chosen element of items. It panics on an empty slice.
func Choose[T any](src Source, items []T) T {
	if len(items) == 0 {
		panic("rng: Choose from empty slice")
	}
	return items[src.Intn(len(items))]
}

var _ Source = (*Rand)(nil)
