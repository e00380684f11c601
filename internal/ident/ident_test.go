package ident

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSequence_UsesClockMillis(t *testing.T) {
	at := time.UnixMilli(1_700_000_000_000)
	s := NewSequenceWithClock(func() time.Time { return at })
	assert.Equal(t, int64(1_700_000_000_000), s.Next())
}

func TestSequence_StrictlyIncreasingOnFrozenClock(t *testing.T) {
	at := time.UnixMilli(1000)
	s := NewSequenceWithClock(func() time.Time { return at })

	prev := s.Next()
	for i := 0; i < 100; i++ {
		next := s.Next()
		assert.Greater(t, next, prev)
		prev = next
	}
}

func TestSequence_ClockGoingBackwards(t *testing.T) {
	at := time.UnixMilli(5000)
	s := NewSequenceWithClock(func() time.Time { return at })
	first := s.Next()

	at = time.UnixMilli(10)
	assert.Equal(t, first+1, s.Next())
}

func TestSequence_Observe(t *testing.T) {
	s := NewSequenceWithClock(func() time.Time { return time.UnixMilli(100) })
	s.Observe(500)
	assert.Equal(t, int64(501), s.Next())

	s.Observe(10)
	assert.Equal(t, int64(502), s.Next())
}
