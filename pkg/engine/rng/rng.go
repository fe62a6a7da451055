// Package rng supplies the random numbers used during generation.
// Layouts take a Source so a run can be replayed from its seed.
package rng

import (
	"math/rand"
	"time"
)

// Source draws uniform integers.
type Source interface {
	// IntRange returns a uniform integer in [min, max]. min must not exceed max.
	IntRange(min, max int) int
}

// Seeded is a re-seedable Source backed by math/rand.
type Seeded struct {
	seed int64
	rng  *rand.Rand
}

// New creates a source seeded with seed
func New(seed int64) *Seeded {
	s := &Seeded{}
	s.SetSeed(seed)
	return s
}

// NewFromClock creates a source seeded from the current time
func NewFromClock() *Seeded {
	return New(time.Now().UnixNano())
}

// SetSeed restarts the sequence from seed
func (s *Seeded) SetSeed(seed int64) {
	s.seed = seed
	s.rng = rand.New(rand.NewSource(seed))
}

// Seed returns the seed the current sequence started from
func (s *Seeded) Seed() int64 {
	return s.seed
}

// IntRange returns a uniform integer in [min, max]
func (s *Seeded) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}
