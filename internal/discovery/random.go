// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package discovery

import (
	"math/rand/v2"
	"sync"

	"github.com/tomtom215/indiepick/internal/models"
)

// Random is the source of every random choice the selector makes.
type Random interface {
	// IntN returns a uniform int in [0, n). n must be positive.
	IntN(n int) int
}

// globalRandom uses the math/rand/v2 top-level source, which is safe for concurrent use.
type globalRandom struct{}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n) //nolint:gosec // selection variety, not security
}

// lockedRandom is a seeded source guarded by a mutex.
type lockedRandom struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom returns a deterministic Random for the given seed.
func NewRandom(seed uint64) Random {
	return &lockedRandom{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))} //nolint:gosec // seeded for reproducible tests
}

func (r *lockedRandom) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

// shuffle performs an in-place Fisher-Yates shuffle.
func shuffle(r Random, games []models.Game) {
	for i := len(games) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		games[i], games[j] = games[j], games[i]
	}
}

// coinFlip returns true with probability one half.
func coinFlip(r Random) bool {
	return r.IntN(2) == 1
}
