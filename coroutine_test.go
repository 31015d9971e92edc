package cogort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// squares is the canonical "coroutine as a generator" scenario: persistent
// local state (i) survives each yield as a closure capture, the Go
// equivalent of a place-id's persistent variables living in fields.
func squares(yield func(int) bool) {
	for i := 0; ; i++ {
		if !yield(i * i) {
			return
		}
	}
}

func TestCoroutine_SquaresGenerator(t *testing.T) {
	co := FromSeq[int](squares)

	var got []int
	for i := 0; i < 6; i++ {
		v, state := co.Resume()
		require.Equal(t, CoroutineYielded, state)
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 1, 4, 9, 16, 25}, got)
	assert.False(t, co.Ended())
}

// boundedRange yields begin..end-1 and then stops with end as its final
// value, the stop-with-value shape: the Resume call that discovers the
// end delivers end itself.
func boundedRange(begin, end int) GeneratorFunc[int] {
	return func(yield func(int) bool) (int, bool) {
		for i := begin; i < end; i++ {
			if !yield(i) {
				return 0, false
			}
		}
		return end, true
	}
}

func TestCoroutine_BoundedRangeStopsWithFinalValue(t *testing.T) {
	co := NewCoroutine(boundedRange(10, 20))

	var got []int
	for {
		v, state := co.Resume()
		if state == CoroutineStopped {
			assert.Equal(t, 20, v, "the stop value arrives from the same Resume call that ends the coroutine")
			assert.True(t, co.Ended(), "Ended must already be true when the stop value is returned")
			break
		}
		require.Equal(t, CoroutineYielded, state)
		got = append(got, v)
	}

	assert.Equal(t, []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}, got)

	faultOnly(t, func() { co.Resume() }, FaultCoroutine)
}

func TestCoroutine_EndsWithoutFinalValue(t *testing.T) {
	co := FromSeq(func(yield func(int) bool) {
		for i := 0; i < 3; i++ {
			if !yield(i) {
				return
			}
		}
	})

	var got []int
	for {
		v, state := co.Resume()
		if state != CoroutineYielded {
			assert.Equal(t, CoroutineEnded, state)
			assert.Zero(t, v)
			break
		}
		got = append(got, v)
	}

	assert.Equal(t, []int{0, 1, 2}, got)
	assert.True(t, co.Ended())

	faultOnly(t, func() { co.Resume() }, FaultCoroutine)
}

func TestCoroutine_StopEndsEarly(t *testing.T) {
	co := FromSeq[int](squares)
	v, state := co.Resume()
	require.Equal(t, CoroutineYielded, state)
	assert.Equal(t, 0, v)

	co.Stop()
	assert.True(t, co.Ended())

	faultOnly(t, func() { co.Resume() }, FaultCoroutine)
}

func TestCoroutine_StopDiscardsUnwoundFinalValue(t *testing.T) {
	// Unlike boundedRange, this generator returns a final value even
	// when it is being unwound by Stop.
	co := NewCoroutine(func(yield func(int) bool) (int, bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return -1, true
			}
		}
	})
	_, state := co.Resume()
	require.Equal(t, CoroutineYielded, state)

	co.Stop()
	assert.True(t, co.Ended())
	assert.False(t, co.final.Present(), "the value returned while unwinding must be discarded")
}

func TestCoroutine_StopIsIdempotent(t *testing.T) {
	co := FromSeq[int](squares)
	co.Stop()
	co.Stop() // must not panic
	assert.True(t, co.Ended())
}
