package timeline

import (
	"math/rand/v2"
	"sync"
)

// Random is the source of randomness for card selection. *rand.Rand from
// math/rand/v2 satisfies it, which lets tests inject a seeded or scripted source.
type Random interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
	// IntN returns a pseudo-random number in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// globalRandom draws from the goroutine-safe top-level math/rand/v2 source.
type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() }
func (globalRandom) IntN(n int) int   { return rand.IntN(n) }

// NewRandom returns an unseeded Random safe for concurrent use.
func NewRandom() Random {
	return globalRandom{}
}

// seededRandom guards a deterministic generator with a mutex, since
// *rand.Rand is not safe for concurrent use.
type seededRandom struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededRandom returns a Random whose sequence is fully determined by seed.
// Two sources created with the same seed make identical selections.
func NewSeededRandom(seed uint64) Random {
	return &seededRandom{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (r *seededRandom) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

func (r *seededRandom) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}
