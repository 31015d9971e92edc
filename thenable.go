package cogort

import "unsafe"

// Thenable is a single-slot future: exactly one producer resolves it
// (via the paired [ThenableToResolve]), and one consumer subscribes
// with [Thenable.Then], in whichever order they happen to run. Unlike
// [Multicast], there is no fan-out — binding a second subscriber
// replaces the first, matching the original's single callback-cell
// storage rather than a list of listeners.
//
// The producer-before-consumer case is the whole point of the type:
// resolving with nobody subscribed stores the value (via [Lifetime],
// overwriting any previous pending value, so the latest resolve wins)
// and a later Then redeems it immediately. For T = struct{}, there is
// no value worth storing and the pending state degenerates to a pure
// counter of unredeemed resolutions: k resolves followed by n Thens
// invoke n handlers and leave k-n events pending, the same shape the
// original gave its void specialization.
type Thenable[T any] struct {
	sub       Delegate[T]
	value     Lifetime[T]
	untracked int
	ignore    bool
	cs        CriticalSection
}

// ThenableToResolve is the producer-side handle for a [Thenable]. It is
// a distinct type so that only whoever holds it can resolve the value —
// consumers only ever see the Thenable itself.
type ThenableToResolve[T any] struct {
	t *Thenable[T]
}

// NewThenable returns a fresh, unresolved Thenable and the handle used
// to resolve it. cs guards the resolve/subscribe race when producer and
// consumer can run concurrently (pass [NoCriticalSection] for the
// common single-threaded-scheduler case).
func NewThenable[T any](cs CriticalSection) (*Thenable[T], ThenableToResolve[T]) {
	if cs == nil {
		cs = NoCriticalSection
	}
	t := &Thenable[T]{cs: cs}
	return t, ThenableToResolve[T]{t: t}
}

// isEvent reports whether T carries no information beyond "it
// happened" — the void-specialization case, where pending resolutions
// are counted instead of overwritten.
func (t *Thenable[T]) isEvent() bool {
	var v T
	return unsafe.Sizeof(v) == 0
}

// Resolve delivers value to the consumer. If a subscriber is installed
// it is detached under the critical section and invoked outside it, so
// a handler that re-subscribes to this same Thenable (or resolves
// another one) from inside its own body cannot deadlock or recurse
// into the guard. With no subscriber, the resolution is kept pending
// for a later [Thenable.Then]: the value is stored (latest wins), or,
// for a zero-sized T, the pending event count is incremented.
func (r ThenableToResolve[T]) Resolve(value T) {
	t := r.t
	var sub Delegate[T]
	invoke := false

	withCriticalSection(t.cs, func() {
		if t.ignore {
			return
		}
		if t.sub.Valid() {
			sub, t.sub = t.sub, Delegate[T]{}
			invoke = true
			return
		}
		t.value.Force(value)
		if t.isEvent() {
			t.untracked++
		} else {
			t.untracked = 1
		}
	})

	if invoke {
		sub.Invoke(value)
	}
}

// Then subscribes f as the consumer. If a resolution is already pending
// (producer ran ahead), exactly one is redeemed: f runs immediately,
// synchronously, with the stored value — taken onto the stack under the
// critical section and invoked outside it, so f may itself call Then or
// Resolve on this Thenable without re-entering the guard. Otherwise f
// is installed for the next Resolve, replacing any previous subscriber.
// A nil f is ignored.
func (t *Thenable[T]) Then(f func(T)) {
	if f == nil {
		return
	}

	var value T
	invoke := false

	withCriticalSection(t.cs, func() {
		t.ignore = false
		if t.untracked > 0 {
			value = *t.value.Deref()
			t.untracked--
			if t.untracked == 0 {
				t.value.Destroy()
			}
			invoke = true
			return
		}
		t.sub = NewDelegate(f)
	})

	if invoke {
		f(value)
	}
}

// Set installs f as the consumer without redeeming anything: any
// pending resolution is discarded, and f only sees resolves that happen
// after this call. Passing nil clears the subscriber as well.
func (t *Thenable[T]) Set(f func(T)) {
	withCriticalSection(t.cs, func() {
		t.ignore = false
		t.untracked = 0
		t.value.Destroy()
		if f == nil {
			t.sub = Delegate[T]{}
		} else {
			t.sub = NewDelegate(f)
		}
	})
}

// ExplicitlyIgnore declares that nobody will ever consume this
// Thenable: the current subscriber and any pending resolution are
// dropped, and every future Resolve is discarded on arrival instead of
// accumulating. A later Then or Set reverses the declaration.
func (t *Thenable[T]) ExplicitlyIgnore() {
	withCriticalSection(t.cs, func() {
		t.ignore = true
		t.sub = Delegate[T]{}
		t.untracked = 0
		t.value.Destroy()
	})
}

// ResetCallback detaches the current subscriber, if any, leaving any
// pending resolution in place for a later consumer.
func (t *Thenable[T]) ResetCallback() {
	withCriticalSection(t.cs, func() {
		t.sub = Delegate[T]{}
	})
}

// StoredResult returns the pending resolved value without redeeming it,
// and whether one is pending at all.
func (t *Thenable[T]) StoredResult() (value T, ok bool) {
	withCriticalSection(t.cs, func() {
		if t.untracked > 0 {
			value = *t.value.Deref()
			ok = true
		}
	})
	return value, ok
}

// Resolved reports whether a resolution is currently pending — resolved
// by the producer, not yet redeemed by a Then.
func (t *Thenable[T]) Resolved() bool {
	var r bool
	withCriticalSection(t.cs, func() { r = t.untracked > 0 })
	return r
}

// Untracked returns the number of pending, unredeemed resolutions. For
// a non-event T this is at most 1 (the latest stored value); for
// T = struct{} it counts every resolve nobody was subscribed for.
func (t *Thenable[T]) Untracked() int {
	var n int
	withCriticalSection(t.cs, func() { n = t.untracked })
	return n
}
