package store

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator hands out task ids. Implementations must not repeat an id
// within one process.
type IDGenerator interface {
	NextID() string
}

// Sequence is a monotonic counter: "1", "2", ...
type Sequence struct {
	next int
}

func NewSequence(start int) *Sequence {
	if start <= 0 {
		start = 1
	}
	return &Sequence{next: start}
}

func (s *Sequence) NextID() string {
	if s.next <= 0 {
		s.next = 1
	}
	id := strconv.Itoa(s.next)
	s.next++
	return id
}

// UUIDs generates random version 4 UUIDs.
type UUIDs struct{}

func (UUIDs) NextID() string {
	return uuid.NewString()
}
