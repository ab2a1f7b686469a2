// Package idgen generates entity identifiers. Identifiers never derive from
// wall-clock time, so two entities created in the same tick cannot collide.
package idgen

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator produces unique identifiers.
type Generator interface {
	NewID() string
}

// UUID generates random version 4 UUIDs.
type UUID struct{}

// NewID returns a new random UUID string.
func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequence generates "<prefix>-<n>" identifiers from a monotonic counter.
// It is unique per process and deterministic, which suits tests and replays.
type Sequence struct {
	Prefix string

	mu   sync.Mutex
	next int
}

// NewSequence creates a sequence starting at 1.
func NewSequence(prefix string) *Sequence {
	return &Sequence{Prefix: prefix}
}

// NewID returns the next identifier of the sequence.
func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	if s.Prefix == "" {
		return fmt.Sprintf("%d", s.next)
	}
	return fmt.Sprintf("%s-%d", s.Prefix, s.next)
}
