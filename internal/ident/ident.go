// Package ident issues todo identifiers.
package ident

import "time"

// Generator hands out unique identifiers.
type Generator interface {
	Next() int64
}

// Sequence derives identifiers from the wall clock in milliseconds but never
// repeats one, even when called twice within the same millisecond or after
// the clock steps backwards.
type Sequence struct {
	now  func() time.Time
	last int64
}

// NewSequence returns a Sequence reading time.Now.
func NewSequence() *Sequence {
	return &Sequence{now: time.Now}
}

// NewSequenceWithClock is NewSequence with an injected clock.
func NewSequenceWithClock(now func() time.Time) *Sequence {
	return &Sequence{now: now}
}

// Next returns an identifier greater than every one issued or observed so far.
func (s *Sequence) Next() int64 {
	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

// Observe raises the floor so id is never issued.
func (s *Sequence) Observe(id int64) {
	if id > s.last {
		s.last = id
	}
}
