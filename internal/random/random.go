// Package random provides the randomness seam used by every generator.
//
// Generators never touch a process-global source: callers build a Source per
// request from a seed, so a session can be replayed from the seed it echoes
// back, and tests can script exact draws.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source draws uniform integers.
type Source interface {
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

// New returns a math/rand backed source. Not safe for concurrent use.
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewSeed generates a non-zero seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	seed := int64(binary.LittleEndian.Uint64(b[:]))
	if seed == 0 {
		seed = 1
	}
	return seed, nil
}

// Between returns a value in [lo, hi]. hi must not be below lo.
func Between(src Source, lo, hi int) int {
	return lo + src.Intn(hi-lo+1)
}

// Scripted replays a fixed list of draws, cycling when exhausted. Each value
// is reduced modulo n. Intended for tests.
type Scripted struct {
	values []int
	next   int
}

// Script builds a Scripted source.
func Script(values ...int) *Scripted {
	return &Scripted{values: values}
}

// Intn returns the next scripted value modulo n.
func (s *Scripted) Intn(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Draws reports how many values have been consumed.
func (s *Scripted) Draws() int { return s.next }
