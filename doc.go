// Package cogort is a cooperative real-time toolkit for deeply embedded
// and resource-constrained systems.
//
// There is no preemption, no priorities, and no kernel thread. A
// [Scheduler] runs a strictly single-threaded loop: pop the next
// due [ActionNode], run it, repeat. If one action blocks, nothing else
// runs. The best practice is not to block.
//
// cogort's storage primitives never allocate once construction is
// finished. [BlockPool] and [Lifetime] give callers deterministic,
// pre-sized storage instead of the heap; [Trampoline] caps the number
// of outstanding callbacks at a fixed reservation. This matters on a
// target where the heap either doesn't exist or must never fragment.
// The rest of the package is not allocation-free: each [Task.Resume]
// creates a new [Thenable] for its cycle, each [Await] call creates a
// channel and a closure, and binding a handler wraps it in a closure.
//
// # Coroutines, Tasks and Thenables
//
// A [Coroutine] is a stackless resumable computation built on the
// standard library's own coroutine primitive, iter.Pull. A [Task] is a
// resumable computation of the same cooperative shape, run on its own
// goroutine, that publishes every yield through a [Thenable] and can
// await other Thenables mid-body, so other code observes its progress
// without polling.
//
// A [Thenable] is a single-slot future: exactly one producer resolves
// it, and exactly one consumer subscribes to it, in either order. There
// is no fan-out here; for that, see [Multicast].
//
// # Time
//
// Every clock value cogort deals with is an opaque wrapping counter
// ([Ticks]), supplied by the host. The library never reads a wall clock.
// Comparisons between tick values account for wraparound, so a counter
// that has been running for a long time behaves the same as one that
// just started.
//
// # Faults
//
// Usage errors (double-free, scheduling a node still in the queue,
// exhausting a fixed pool) panic through the package-level [PanicHook]
// rather than returning an error, because by definition these conditions
// indicate a bug in the calling code, not a recoverable runtime
// condition. See [Fault] for the fault taxonomy and [SetPanicHook] to
// override the default behavior (for example, to reset the target
// instead of spinning in panic's default unwind).
package cogort
