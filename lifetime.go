package cogort

// Lifetime is a typed single-slot container with explicit
// construct/destroy lifecycle, the Go rendering of the original's
// placement-new-over-raw-storage manager. Go's GC means there is no
// uninitialized memory to guard against, so Lifetime degrades to a
// regular field behind a present flag — but the explicit-destroy
// contract (and the faults it raises when misused) is preserved, since
// callers rely on exactly-once construct/destroy to run cleanup side
// effects (closing a handle, releasing a counted resource) at a known
// point, not whenever the garbage collector gets around to it.
type Lifetime[T any] struct {
	value   T
	present bool
}

// Emplace constructs value into the slot. Panics (tag [FaultMemory]) if
// the slot is already occupied; call [Lifetime.Destroy] first, or use
// [Lifetime.Force] to overwrite unconditionally.
func (l *Lifetime[T]) Emplace(value T) {
	if l.present {
		Raise(FaultMemory, "lifetime: emplace over live value")
		return
	}
	l.value = value
	l.present = true
}

// Force constructs value into the slot, destroying any value already
// present without requiring a separate [Lifetime.Destroy] call.
func (l *Lifetime[T]) Force(value T) {
	l.value = value
	l.present = true
}

// Singleton returns the current value, constructing it from make if the
// slot is empty. Useful for lazily-initialized, never-destroyed
// resources (the common case for a statically allocated singleton).
func (l *Lifetime[T]) Singleton(make func() T) *T {
	if !l.present {
		l.value = make()
		l.present = true
	}
	return &l.value
}

// Get returns a pointer to the live value and true, or nil and false if
// the slot is empty.
func (l *Lifetime[T]) Get() (*T, bool) {
	if !l.present {
		return nil, false
	}
	return &l.value, true
}

// Present reports whether the slot currently holds a value.
func (l *Lifetime[T]) Present() bool { return l.present }

// Deref returns a pointer to the live value. Panics (tag [FaultMemory])
// if the slot is empty — for call sites that have already established
// (by construction, not by checking) that a value must be there, where
// [Lifetime.Get]'s ok-pattern would just be an unchecked second branch.
func (l *Lifetime[T]) Deref() *T {
	if !l.present {
		Raise(FaultMemory, "lifetime: deref of empty slot")
		return nil
	}
	return &l.value
}

// Destroy clears the slot if it holds a value. It is a no-op if the
// slot is already empty, matching the original's tolerant destroy.
func (l *Lifetime[T]) Destroy() {
	if !l.present {
		return
	}
	var zero T
	l.value = zero
	l.present = false
}

// MustDestroy clears the slot, panicking (tag [FaultMemory]) if it was
// already empty — for call sites where destroying an already-empty
// slot indicates a double-destroy bug rather than a benign no-op.
func (l *Lifetime[T]) MustDestroy() {
	if !l.present {
		Raise(FaultMemory, "lifetime: destroy of empty slot")
		return
	}
	l.Destroy()
}

// Scoped emplaces value, runs body, then destroys the value once body
// returns (even if body panics) — the bracketed emplace/destroy form
// for a value that must stay alive across a [Task]'s yield points.
// Unlike a plain defer around a single synchronous call, this is safe
// even when body calls [Task.Yield] or [Await] any number of times
// before returning: a yield only suspends the task's goroutine, it
// does not unwind body's call frame, so the deferred destroy still
// fires exactly once, after body is genuinely done.
func (l *Lifetime[T]) Scoped(value T, body func()) {
	l.Emplace(value)
	defer l.MustDestroy()
	body()
}
