// Package rng provides the seeded random source that drives tree growth.
//
// A Source is owned by exactly one engine and must not be shared across
// goroutines. Given the same seed and the same ordered sequence of draws,
// two sources produce identical outputs; this is what makes grown trees
// reproducible from a saved seed.
package rng

import (
	"math/rand"
	"time"
)

type Source struct {
	seed  int64
	rand  *rand.Rand
	draws int
}

// New creates a source from the given seed. A zero seed selects a
// wall-clock seed, which is non-repeatable by design.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{
		seed: seed,
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Roll returns a uniform integer in [0, n). Panics if n <= 0; callers
// guard zero-width ranges.
func (s *Source) Roll(n int) int {
	s.draws++
	return s.rand.Intn(n)
}

// Float returns a uniform float in [0, 1).
func (s *Source) Float() float64 {
	s.draws++
	return s.rand.Float64()
}

// Seed returns the seed the source was created with. Only the seed is ever
// persisted; generator state is not serialized.
func (s *Source) Seed() int64 { return s.seed }

// Draws returns how many values have been drawn so far.
func (s *Source) Draws() int { return s.draws }
