package core

import (
	"hash/fnv"

	"github.com/google/uuid"
)

// RNG is a deterministic pseudo-random number generator (Mulberry32) seeded
// from an arbitrary string. The string is folded to 32 bits with FNV-1a, so
// the same seed yields the same stream on every platform.
type RNG struct {
	state uint32
	draws uint64
}

// NewRNG creates a new RNG for the given seed string.
func NewRNG(seed string) *RNG {
	return &RNG{state: HashSeed(seed)}
}

// HashSeed folds a seed string into the 32-bit generator state.
func HashSeed(seed string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(seed))
	return h.Sum32()
}

// NewSeed returns a fresh random seed for callers that don't supply one.
func NewSeed() string {
	return uuid.NewString()
}

// Next returns a random float64 in [0, 1).
func (r *RNG) Next() float64 {
	r.draws++
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Range returns a random int in [min, max).
// Returns min without drawing when the range is empty.
func (r *RNG) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + int(r.Next()*float64(max-min))
}

// Draws returns how many values have been drawn since creation.
func (r *RNG) Draws() uint64 {
	return r.draws
}

// Skip advances the stream by n draws.
func (r *RNG) Skip(n uint64) {
	for range n {
		r.Next()
	}
}

// Clone returns an independent copy that continues the same stream.
func (r *RNG) Clone() *RNG {
	c := *r
	return &c
}

// shuffle performs a Fisher-Yates pass over n elements, from the last index
// down to 1, swapping each with a uniformly chosen index in [0, i].
func (r *RNG) shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Range(0, i+1)
		swap(i, j)
	}
}
