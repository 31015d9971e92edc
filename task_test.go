package cogort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter yields its running total on every Yield call, then returns
// the final total — exercising per-cycle publish, not just the final
// value.
func counter(n int) TaskFunc[int] {
	return func(t *Task[int]) int {
		total := 0
		for i := 1; i <= n; i++ {
			total += i
			if !t.Yield(total) {
				return total
			}
		}
		return total
	}
}

func TestTask_YieldPublishesEveryCycle(t *testing.T) {
	task := NewTask(counter(3))

	var got []int
	for !task.Ended() {
		th := task.Resume()
		th.Then(func(v int) { got = append(got, v) })
	}

	assert.Equal(t, []int{1, 3, 6, 6}, got, "every Yield and the final return must be observed exactly once, in order")
}

func TestTask_DoneResolvesWithFinalValue(t *testing.T) {
	task := NewTask(counter(3))

	var final int
	task.Done().Then(func(v int) { final = v })

	for !task.Ended() {
		task.Resume()
	}

	assert.Equal(t, 6, final)
}

func TestTask_ReentrantResumeFromThenDrivesToCompletion(t *testing.T) {
	// Driving a task to completion by calling Resume again from inside
	// the handler attached to the previous cycle's Thenable is the
	// common usage pattern: each Resume call's suspension always fully
	// completes (goroutine handoff, not stack recursion) before the
	// caller's Then callback runs, so this never re-enters Resume while
	// busy.
	task := NewTask(counter(3))

	var got []int
	var step func(v int)
	step = func(v int) {
		got = append(got, v)
		if !task.Ended() {
			task.Resume().Then(step)
		}
	}
	task.Resume().Then(step)

	// Three yields (1, 3, 6), then the final return value (6).
	assert.Equal(t, []int{1, 3, 6, 6}, got)
	assert.True(t, task.Ended())
}

func TestTask_AwaitSynchronousContinuesInline(t *testing.T) {
	other, otherRes := NewThenable[int](NoCriticalSection)
	otherRes.Resolve(21)

	task := NewTask(func(t *Task[int]) int {
		v, ok := Await(t, other)
		if !ok {
			return -1
		}
		return v * 2
	})

	th := task.Resume()
	var got int
	th.Then(func(v int) { got = v })

	assert.True(t, task.Ended(), "an already-resolved Await must not suspend the task at all")
	assert.Equal(t, 42, got)
}

func TestTask_AwaitPendingSuspendsAndResumesOnResolve(t *testing.T) {
	other, otherRes := NewThenable[string](NoCriticalSection)

	task := NewTask(func(t *Task[int]) int {
		v, ok := Await(t, other)
		if !ok {
			return -1
		}
		return len(v)
	})

	th := task.Resume()
	assert.False(t, th.Resolved(), "Resume must return promptly while the task is suspended awaiting an unresolved Thenable")
	assert.False(t, task.Ended())

	done := make(chan int, 1)
	task.Done().Then(func(v int) { done <- v })
	assert.False(t, task.Ended())

	// Resolving the awaited Thenable wakes the task's own goroutine
	// asynchronously, outside of any Resume call — wait on Done rather
	// than checking Ended immediately, since nothing synchronizes this
	// goroutine with the one that resolves otherRes.
	otherRes.Resolve("hello")
	got := <-done

	assert.True(t, task.Ended())
	assert.Equal(t, 5, got, "the task must resume itself once the awaited Thenable resolves, without an external Resume call")
}

func TestTask_ResumeWhileAwaitingPanics(t *testing.T) {
	other, _ := NewThenable[int](NoCriticalSection)

	task := NewTask(func(t *Task[int]) int {
		v, _ := Await(t, other)
		return v
	})

	task.Resume()
	require.False(t, task.Ended())

	faultOnly(t, func() { task.Resume() }, FaultTask)
}

func TestTask_ResumeAfterEndedPanics(t *testing.T) {
	task := NewTask(counter(0))
	task.Resume()
	require.True(t, task.Ended())

	faultOnly(t, func() { task.Resume() }, FaultTask)
}

func TestTask_StopBeforeStartResolvesDoneWithZero(t *testing.T) {
	task := NewTask(counter(5))

	var final int
	var resolved bool
	task.Done().Then(func(v int) { final, resolved = v, true })

	task.Stop()

	assert.True(t, task.Ended())
	require.True(t, resolved)
	assert.Zero(t, final)
}

func TestTask_StopDuringYieldEndsTaskPromptly(t *testing.T) {
	task := NewTask(func(t *Task[int]) int {
		i := 0
		for {
			i++
			if !t.Yield(i) {
				return -i
			}
		}
	})

	task.Resume()
	require.False(t, task.Ended())

	done := make(chan int, 1)
	task.Done().Then(func(v int) { done <- v })

	// Stop only asks the suspended body to wind down on its next wakeup;
	// it does not itself synchronize with that goroutine, so wait on
	// Done rather than asserting Ended right away.
	task.Stop()
	final := <-done

	assert.True(t, task.Ended())
	assert.Equal(t, -1, final, "the body must observe Yield returning false and wind down on its next cycle")
}

func TestTask_StopIsIdempotent(t *testing.T) {
	task := NewTask(counter(3))
	task.Resume()
	task.Stop()
	assert.NotPanics(t, func() { task.Stop() })
}
