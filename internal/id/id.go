package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator produces unique ids for new entities. Constructors take a
// Generator rather than reaching for a random source directly so tests
// can substitute deterministic ids.
type Generator interface {
	NewID() string
}

// UUID generates random RFC 4122 ids.
type UUID struct{}

// NewID returns a new random UUID string.
func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequence generates predictable ids ("tx-1", "tx-2", ...) for tests.
type Sequence struct {
	Prefix string
	next   int
}

// NewSequence creates a Sequence generator with the given prefix.
func NewSequence(prefix string) *Sequence {
	return &Sequence{Prefix: prefix}
}

// NewID returns the next id in the sequence.
func (s *Sequence) NewID() string {
	s.next++
	return fmt.Sprintf("%s-%d", s.Prefix, s.next)
}
