// Package rngtest provides a scripted rng.Source for deterministic tests.
package rngtest

import (
	"fmt"

	"github.com/samdwyer/mysterymachine/internal/rng"
)

// Script replays queued values. IntRange and Intn consume Ints, Chance
// consumes Bools. An exhausted queue yields the lowest legal value (or
// false). Shuffle leaves the order untouched.
type Script struct {
	Ints  []int
	Bools []bool
}

// New returns a Script with the given integer draws queued.
func New(ints ...int) *Script {
	return &Script{Ints: ints}
}

// WithBools queues boolean draws and returns the script.
func (s *Script) WithBools(b ...bool) *Script {
	s.Bools = append(s.Bools, b...)
	return s
}

// IntRange pops the next integer, panicking if it lies outside [lo, hi].
func (s *Script) IntRange(lo, hi int) int {
	if len(s.Ints) == 0 {
		return lo
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v < lo || v > hi {
		panic(fmt.Sprintf("rngtest: scripted %d outside [%d, %d]", v, lo, hi))
	}
	return v
}

// Chance pops the next boolean.
func (s *Script) Chance(float64) bool {
	if len(s.Bools) == 0 {
		return false
	}
	v := s.Bools[0]
	s.Bools = s.Bools[1:]
	return v
}

// Intn pops the next integer, panicking if it lies outside [0, n).
func (s *Script) Intn(n int) int {
	return s.IntRange(0, n-1)
}

// Shuffle is the identity permutation.
func (s *Script) Shuffle(int, func(i, j int)) {}

// Remaining reports how many integer and boolean draws are still queued.
func (s *Script) Remaining() (ints, bools int) {
	return len(s.Ints), len(s.Bools)
}

var _ rng.Source = (*Script)(nil)
