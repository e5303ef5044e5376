package domain

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"errors"
	"time"
)

var (
	ErrEmptyCandidates = errors.New("cannot pick from an empty candidate list")
	ErrInvalidCount    = errors.New("shuffle count cannot be negative")
)

// rng is a Mulberry32 generator. Go's math/rand makes no promise that a
// seeded stream stays identical across releases, so the 32-bit mixer is
// written out; the full output sequence depends only on the seed.
type rng struct {
	state uint32
}

func newRNG(seed uint32) *rng {
	return &rng{state: seed}
}

// next returns a uniform float64 in [0, 1).
func (r *rng) next() float64 {
	r.state += 0x6D2B79F5
	z := r.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	return float64(z^(z>>14)) / 4294967296.0
}

// PickOne deterministically selects one candidate for the given seed.
// Every caller with the same seed and list sees the same element.
func PickOne[T any](seed uint32, candidates []T) (T, error) {
	var zero T
	if len(candidates) == 0 {
		return zero, ErrEmptyCandidates
	}
	idx := int(newRNG(seed).next() * float64(len(candidates)))
	if idx >= len(candidates) {
		// floating-point edge at the top of the range
		idx = len(candidates) - 1
	}
	return candidates[idx], nil
}

// ShuffledIndices returns a seed-stable Fisher-Yates permutation of [0, n).
// Every index appears exactly once.
func ShuffledIndices(seed uint32, n int) ([]int, error) {
	if n < 0 {
		return nil, ErrInvalidCount
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	r := newRNG(seed)
	for i := n - 1; i > 0; i-- {
		j := int(r.next() * float64(i+1))
		if j > i {
			j = i
		}
		indices[i], indices[j] = indices[j], indices[i]
	}
	return indices, nil
}

// SessionSeed returns a non-deterministic seed for shuffles that should
// differ between visits rather than stay stable for the day.
func SessionSeed() uint32 {
	var b [4]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		return uint32(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint32(b[:])
}
