package game

import (
	"math/rand/v2"
	"time"
)

// Source picks palette indices; *rand.Rand satisfies it
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG-backed source, seed 0 seeds from the clock
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SequenceSource replays a fixed list of indices, cycling when exhausted
// Used by tests and demos that need a known pattern
type SequenceSource struct {
	values []int
	pos    int
}

// NewSequenceSource creates a source replaying values in order
func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{values: values}
}

// IntN returns the next value modulo n
func (s *SequenceSource) IntN(n int) int {
	if len(s.values) == 0 || n <= 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}
