package cogort

// Delegate is a callable reference to "some function to call later",
// the same role the original C++ header filled with a two-word
// {trampoline pointer, receiver pointer} union. Go's func values are
// already a callable reference that owns whatever state it closed over
// (a method value, a bound receiver, a plain closure), so Delegate here
// is a thin, nil-aware wrapper rather than a hand-rolled vtable.
//
// Delegate deliberately does not support equality or ordering: the C++
// original could compare the two machine words byte-for-byte, but Go
// disallows comparing func values for exactly the aliasing reasons that
// make such a comparison fragile, and nothing in this package needs to
// sort or deduplicate delegates. See DESIGN.md for the fuller rationale.
type Delegate[T any] struct {
	fn func(T)
}

// NewDelegate wraps fn. A nil fn produces an invalid Delegate.
func NewDelegate[T any](fn func(T)) Delegate[T] {
	return Delegate[T]{fn: fn}
}

// Valid reports whether the delegate has a callable target.
func (d Delegate[T]) Valid() bool {
	return d.fn != nil
}

// Invoke calls the wrapped function with arg. Panics (tag
// [FaultCoroutine]) if the delegate is invalid; callers that expect an
// optional delegate should check [Delegate.Valid] first.
func (d Delegate[T]) Invoke(arg T) {
	if d.fn == nil {
		Raise(FaultCoroutine, "delegate: invoke on unbound delegate")
		return
	}
	d.fn(arg)
}

// TryInvoke calls the wrapped function with arg and reports whether
// there was one to call, instead of panicking on an unbound delegate.
func (d Delegate[T]) TryInvoke(arg T) bool {
	if d.fn == nil {
		return false
	}
	d.fn(arg)
	return true
}

// Bind returns a Delegate that calls method on receiver, the Go
// equivalent of the original's member-function binding.
func Bind[R, T any](receiver *R, method func(*R, T)) Delegate[T] {
	return Delegate[T]{fn: func(arg T) { method(receiver, arg) }}
}
