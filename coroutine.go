package cogort

import "iter"

// CoroutineState describes what a [Coroutine.Resume] call produced.
type CoroutineState uint8

const (
	// CoroutineYielded: the coroutine produced an intermediate value
	// and suspended; further Resume calls will produce more.
	CoroutineYielded CoroutineState = iota
	// CoroutineStopped: the coroutine produced its final value and
	// ended, both in this same Resume call — the value is valid and
	// [Coroutine.Ended] is already true on return.
	CoroutineStopped
	// CoroutineEnded: the coroutine ended without a final value; the
	// returned value is T's zero.
	CoroutineEnded
)

// GeneratorFunc is the body of a [Coroutine]. yield publishes an
// intermediate value and suspends until the next Resume, reporting
// false if the coroutine is being torn down early; the generator then
// winds down and returns. Returning (v, true) stops the coroutine with
// final value v; returning (zero, false) ends it without one.
type GeneratorFunc[T any] func(yield func(T) bool) (T, bool)

// Coroutine is a stackless, resumable value generator. Where the
// original represented a coroutine's persistent state as a 2-byte
// "place" field driving a switch statement reconstructed by a
// preprocessor macro, Go already has a coroutine primitive that
// captures "resume exactly where a yield happened, with every local
// variable intact" natively: iter.Pull. Coroutine wraps it, because
// iter.Pull's raw (next, stop) pair is both an awkward API to hand to
// callers directly — it is stateful and must be stopped exactly once —
// and too narrow: its (value, ok) shape can only say "a value" or
// "done, no value", while the original's stop-with-value transition
// delivers a final value and enters the terminal state in one resume.
// The generator's return value carries that final value, so the Resume
// call that discovers the end hands it out in the same call.
//
// The generator function body is written exactly like any other
// iter.Seq producer: a for loop that does work and calls yield to
// publish an intermediate value and suspend, returning when done.
// Every local variable declared before a yield survives the
// suspension as a closure capture, which is the Go-idiomatic
// equivalent of the original's persistent variables living in struct
// fields instead of on the (nonexistent) stack across a yield point.
type Coroutine[T any] struct {
	next  func() (T, bool)
	stop  func()
	final Lifetime[T]
	ended bool
}

// NewCoroutine starts a coroutine over gen. The generator does not run
// until the first [Coroutine.Resume] call.
func NewCoroutine[T any](gen GeneratorFunc[T]) *Coroutine[T] {
	c := &Coroutine[T]{}
	c.next, c.stop = iter.Pull(func(yield func(T) bool) {
		if v, ok := gen(yield); ok {
			c.final.Emplace(v)
		}
	})
	return c
}

// FromSeq adapts a plain iter.Seq producer — a generator that ends
// without a final stop value.
func FromSeq[T any](seq iter.Seq[T]) *Coroutine[T] {
	return NewCoroutine(func(yield func(T) bool) (T, bool) {
		seq(yield)
		var zero T
		return zero, false
	})
}

// Resume runs the coroutine until its next yield point or completion.
// A [CoroutineYielded] state carries an intermediate value; the call
// that finds the generator finished returns its final value with
// [CoroutineStopped] (or the zero value with [CoroutineEnded] if the
// generator declined to produce one), with [Coroutine.Ended] already
// true — completion and the final value are observed by one and the
// same call. Resuming a coroutine that has already ended is a usage
// fault: it panics (tag [FaultCoroutine]) rather than quietly
// returning the zero value, the same as resuming past Final in the
// original place-id state machine.
func (c *Coroutine[T]) Resume() (value T, state CoroutineState) {
	if c.ended {
		Raise(FaultCoroutine, "coroutine: resume after the coroutine has already ended")
		return value, CoroutineEnded
	}
	value, ok := c.next()
	if ok {
		return value, CoroutineYielded
	}
	c.ended = true
	c.stop()
	if final, ok := c.final.Get(); ok {
		value = *final
		c.final.Destroy()
		return value, CoroutineStopped
	}
	return value, CoroutineEnded
}

// Ended reports whether the coroutine has run to completion.
func (c *Coroutine[T]) Ended() bool { return c.ended }

// Stop ends the coroutine early without running it to completion,
// unwinding its generator function past the current yield point (any
// deferred cleanup in the generator still runs). A final value the
// unwound generator returns on its way out is discarded. Safe to call
// more than once, and safe to call on an already-ended coroutine.
func (c *Coroutine[T]) Stop() {
	if c.ended {
		return
	}
	c.ended = true
	c.stop()
	c.final.Destroy()
}
