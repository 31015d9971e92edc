package cogort

// Trampoline is a fixed-size pool of reusable callback slots. In the
// original, a trampoline converts a capturing closure into a
// C-style function pointer by reserving a static cell per closure type
// at compile time. Go's func values already carry their captured state,
// so there is no pointer/closure gap to bridge — what remains, and what
// this type actually models, is the original's other property: a
// *bounded* number of simultaneously outstanding callbacks, so that a
// runaway caller faults (tag [FaultTrampoline]) instead of growing
// unbounded.
//
// A Trampoline[T] is reserved once with [NewTrampoline] for a known
// maximum concurrency, then [Trampoline.Bind] and [Trampoline.Release]
// hand out and return [Token]s for the lifetime of the program.
type Trampoline[T any] struct {
	pool *BlockPool[cell[T]]
}

type cell[T any] struct {
	fn       func(T)
	extended bool
}

// Token identifies a single reserved callback slot. The zero Token is
// never valid for Invoke/Release.
type Token struct {
	slot any // *cell[T] for whichever T bound it
}

// NewTrampoline reserves a chain of n callback slots.
func NewTrampoline[T any](n int) *Trampoline[T] {
	return &Trampoline[T]{pool: NewBlockPool[cell[T]](n)}
}

// Bind reserves a slot for fn and returns a [Token] to invoke or
// release it later. Panics (tag [FaultTrampoline]) if the pool is
// exhausted: the reservation count is a static sizing decision, so
// running out of cells means that decision was wrong — a usage fault,
// not a condition the call site can recover from.
func (t *Trampoline[T]) Bind(fn func(T)) Token {
	return t.bind(fn, false)
}

// BindExtended is like Bind but marks the slot as kept alive across
// multiple invocations (the original's "extended"/non-disposable
// trampoline), so [Trampoline.Invoke] does not auto-release it.
func (t *Trampoline[T]) BindExtended(fn func(T)) Token {
	return t.bind(fn, true)
}

func (t *Trampoline[T]) bind(fn func(T), extended bool) Token {
	if fn == nil {
		Raise(FaultTrampoline, "trampoline: bind with nil function")
		return Token{}
	}
	ptr, ok := t.pool.Make(cell[T]{fn: fn, extended: extended})
	if !ok {
		Raise(FaultTrampoline, "trampoline: no free cells")
		return Token{}
	}
	return Token{slot: ptr}
}

// Invoke calls the bound function for tok with arg. Single-shot slots
// (bound via [Trampoline.Bind]) are released automatically after the
// call; extended slots are not, and must be released explicitly.
// Panics (tag [FaultTrampoline]) if tok is not currently bound in t.
func (t *Trampoline[T]) Invoke(tok Token, arg T) {
	c, ok := t.cellOf(tok)
	if !ok {
		Raise(FaultTrampoline, "trampoline: invoke on unbound token")
		return
	}
	fn, extended := c.fn, c.extended
	if !extended {
		t.pool.Free(c)
	}
	fn(arg)
}

// Release returns tok's slot to the pool without invoking it. Use for
// extended tokens once no further invocation is expected, or to cancel
// a single-shot token that was never invoked.
func (t *Trampoline[T]) Release(tok Token) {
	c, ok := t.cellOf(tok)
	if !ok {
		Raise(FaultTrampoline, "trampoline: release of unbound token")
		return
	}
	t.pool.Free(c)
}

func (t *Trampoline[T]) cellOf(tok Token) (*cell[T], bool) {
	c, ok := tok.slot.(*cell[T])
	// A freed cell is zeroed by the pool, and bind never stores a nil
	// fn, so a nil fn means the token's slot is no longer bound.
	if !ok || c == nil || c.fn == nil {
		return nil, false
	}
	return c, true
}
