package cogort

import (
	"fmt"
	"runtime/debug"
)

// FaultTag identifies which subsystem raised a [Fault].
type FaultTag byte

const (
	// FaultCoroutine marks a fault raised by a [Coroutine] (resuming an
	// ended coroutine) or by invoking an unbound [Delegate].
	FaultCoroutine FaultTag = 'C'
	// FaultTask marks a fault raised by a [Task] (resuming it after it
	// ended, while it is executing, or while it is suspended in [Await]).
	FaultTask FaultTag = 'T'
	// FaultMemory marks a fault raised by [BlockPool] or [Lifetime]
	// (double free, foreign free, destroying an empty slot).
	FaultMemory FaultTag = 'M'
	// FaultQueue marks a fault raised by the intrusive [List],
	// [Scheduler], [PeriodicTimer] or [ScheduledDebounce] (re-queueing an
	// attached node, a zero period, a non-positive required sample count).
	FaultQueue FaultTag = 'Q'
	// FaultTrampoline marks exhaustion of a [Trampoline] pool.
	FaultTrampoline FaultTag = 'B'
)

func (t FaultTag) String() string {
	switch t {
	case FaultCoroutine:
		return "coroutine"
	case FaultTask:
		return "task"
	case FaultMemory:
		return "memory"
	case FaultQueue:
		return "queue"
	case FaultTrampoline:
		return "trampoline"
	default:
		return "unknown"
	}
}

// Fault is the error value carried through the [Panic] hook whenever
// cogort detects a usage error. Faults are always programmer errors:
// misuse of the API, not conditions a caller can sensibly recover from
// at the call site, which is why they panic instead of returning an
// error.
type Fault struct {
	Tag     FaultTag
	Message string
	Stack   []byte
	cause   error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("cogort: [%s] %s", f.Tag, f.Message)
}

// Unwrap supports errors.Is/errors.As against a wrapped cause, when the
// fault carries one (see raiseCause); otherwise it returns nil.
func (f *Fault) Unwrap() error {
	return f.cause
}

// PanicHook is called by [Raise] in place of the built-in panic. The
// default hook, installed by [SetPanicHook](nil), calls panic(f).
//
// A host with a different fatal-error convention (write to a persistent
// log then reset the target, signal a supervisor task, blink an error
// LED forever) overrides this once at startup.
type PanicHook func(f *Fault)

var currentPanicHook PanicHook = defaultPanicHook

func defaultPanicHook(f *Fault) {
	panic(f)
}

// SetPanicHook installs hook as the target of [Raise]. Passing nil
// restores the default behavior (panic with the *Fault value).
func SetPanicHook(hook PanicHook) {
	if hook == nil {
		hook = defaultPanicHook
		currentPanicHook = hook
		return
	}
	currentPanicHook = hook
}

// Raise builds a *Fault tagged tag with the given message, captures a
// stack trace, and invokes the installed [PanicHook]. Most callers want
// [Raisef].
func Raise(tag FaultTag, message string) {
	currentPanicHook(&Fault{Tag: tag, Message: message, Stack: debug.Stack()})
}

// Raisef is [Raise] with fmt.Sprintf-style formatting.
func Raisef(tag FaultTag, format string, args ...any) {
	Raise(tag, fmt.Sprintf(format, args...))
}

// raiseCause is like Raise but chains cause for errors.Unwrap.
func raiseCause(tag FaultTag, message string, cause error) {
	currentPanicHook(&Fault{Tag: tag, Message: message, Stack: debug.Stack(), cause: cause})
}
