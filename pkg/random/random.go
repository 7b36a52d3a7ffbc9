// Package random provides the uniform integer source consumed by the randomized drills.
package random

import (
	"math/rand/v2"
	"time"
)

// Source draws uniform integers from [0, n). Implementations panic when n <= 0,
// matching math/rand/v2.
type Source interface {
	IntN(n int) int
}

// New returns a PCG-backed source. A zero seed selects a time-based seed so that
// results differ across runs.
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// OrDefault returns src, or a time-seeded source when src is nil.
func OrDefault(src Source) Source {
	if src == nil {
		return New(0)
	}
	return src
}

// Sequence is a scripted Source that replays fixed values, reduced modulo n.
// It is meant for tests that need to force repeats.
type Sequence struct {
	Values []int
	pos    int
}

// IntN returns the next scripted value modulo n, cycling when exhausted.
func (s *Sequence) IntN(n int) int {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Calls reports how many draws were made.
func (s *Sequence) Calls() int {
	return s.pos
}
