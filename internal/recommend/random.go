// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package recommend

import (
	"math/rand"
	"sync"
	"time"
)

// RandomSource supplies the randomness used for shuffles and exploration
// jitter. Implementations must be safe for concurrent use when the scorer
// is shared.
type RandomSource interface {
	// Intn returns a uniform integer in [0, n). n is always > 0.
	Intn(n int) int

	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// lockedSource guards a math/rand generator with a mutex.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource returns a concurrency-safe source. A zero seed seeds
// from the clock, so every process run differs.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedSource{
		rng: rand.New(rand.NewSource(seed)), //nolint:gosec // math/rand is fine for recommendation shuffling
	}
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// shuffle performs an in-place Fisher-Yates shuffle.
func shuffle[T any](rng RandomSource, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// jitter draws uniform noise in [-amplitude, amplitude).
func jitter(rng RandomSource, amplitude float64) float64 {
	if amplitude == 0 {
		return 0
	}
	return (rng.Float64()*2 - 1) * amplitude
}
