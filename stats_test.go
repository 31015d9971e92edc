package cogort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerStats_MaxAndMean(t *testing.T) {
	s := NewSchedulerStats[Ticks](3)

	s.Observe(10)
	assert.Equal(t, Ticks(10), s.Max())
	assert.Equal(t, Ticks(10), s.Mean())

	s.Observe(20)
	assert.Equal(t, Ticks(20), s.Max())
	assert.True(t, s.Mean() > 10 && s.Mean() < 20, "mean should move toward the new sample: got %d", s.Mean())

	s.Observe(5)
	assert.Equal(t, Ticks(20), s.Max(), "max must not decrease")
}

func TestSchedulerStats_MeanDecreasesToo(t *testing.T) {
	s := NewSchedulerStats[Ticks](1) // shift 1: aggressive decay, exercises the signed-delta path
	s.Observe(100)
	s.Observe(0)
	assert.True(t, s.Mean() < 100, "mean must be able to move down, not just up: got %d", s.Mean())
}

func TestSchedulerStats_Reset(t *testing.T) {
	s := NewSchedulerStats[Ticks](2)
	s.Observe(10)
	s.Reset()
	assert.Equal(t, Ticks(0), s.Max())
	assert.Equal(t, Ticks(0), s.Mean())
	assert.Equal(t, uint64(0), s.Count())
}

func TestSchedulerStats_Count(t *testing.T) {
	s := NewSchedulerStats[Ticks](2)
	s.Observe(1)
	s.Observe(2)
	s.Observe(3)
	assert.Equal(t, uint64(3), s.Count())
}
