package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustRange(t *testing.T, startHour, endHour int) TimeRange {
	t.Helper()
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	r, err := NewTimeRange(day.Add(time.Duration(startHour)*time.Hour), day.Add(time.Duration(endHour)*time.Hour))
	assert.NoError(t, err)
	return r
}

func TestNewTimeRange_RejectsInvertedAndEmpty(t *testing.T) {
	now := time.Now()

	_, err := NewTimeRange(now, now)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = NewTimeRange(now, now.Add(-time.Hour))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestOverlaps_DisjointRanges(t *testing.T) {
	a := mustRange(t, 10, 11)
	b := mustRange(t, 12, 13)

	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))
}

func TestOverlaps_AdjacentRangesDoNotOverlap(t *testing.T) {
	a := mustRange(t, 10, 11)
	b := mustRange(t, 11, 12)

	// Half-open: a session ending exactly when another starts is fine.
	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))
}

func TestOverlaps_PartialOverlap(t *testing.T) {
	a := mustRange(t, 10, 12)
	b := mustRange(t, 11, 13)

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
}

func TestOverlaps_FullContainment(t *testing.T) {
	outer := mustRange(t, 9, 17)
	inner := mustRange(t, 12, 13)

	assert.True(t, outer.Overlaps(inner))
	assert.True(t, inner.Overlaps(outer))
}

func TestOverlaps_IdenticalRanges(t *testing.T) {
	a := mustRange(t, 10, 11)
	b := mustRange(t, 10, 11)

	assert.True(t, a.Overlaps(b))
}

func TestSessionOccupiedRange(t *testing.T) {
	s := Session{Date: "2024-01-15", Time: "09:00", Duration: 90}

	rng, err := s.OccupiedRange()
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC), rng.Start)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), rng.End)
}

func TestSessionOccupiedRange_DefaultDuration(t *testing.T) {
	s := Session{Date: "2024-01-15", Time: "09:00"}

	rng, err := s.OccupiedRange()
	assert.NoError(t, err)
	assert.Equal(t, time.Hour, rng.End.Sub(rng.Start))
}

func TestSessionOccupiedRange_BadDate(t *testing.T) {
	s := Session{Date: "15/01/2024", Time: "09:00"}

	_, err := s.OccupiedRange()
	assert.ErrorIs(t, err, ErrInvalidRange)
}
