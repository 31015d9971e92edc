package cogort

// Ticks is an opaque, wrapping clock value supplied by the host. cogort
// never reads a wall clock itself — callers sample whatever counter
// their platform exposes (a hardware tick counter, a millisecond
// monotonic clock) and pass it in.
type Ticks uint32

// deltaMax is half of Ticks' range: the wraparound threshold. A signed
// difference larger than this in magnitude is treated as having wrapped
// around rather than as a genuinely large delta, the same halving trick
// TCP sequence-number comparisons use.
const deltaMax Ticks = ^Ticks(0) / 2

// before reports whether a is earlier than b on a wrapping clock.
func before(a, b Ticks) bool {
	return Ticks(a-b) > deltaMax
}

// SimpleTimer is a one-shot deadline over a wrapping tick counter.
type SimpleTimer struct {
	deadline Ticks
	armed    bool
}

// Arm schedules the timer to expire at now+delay.
func (t *SimpleTimer) Arm(now Ticks, delay Ticks) {
	t.deadline = now + delay
	t.armed = true
}

// Disarm cancels a pending expiry.
func (t *SimpleTimer) Disarm() {
	t.armed = false
}

// Armed reports whether the timer currently has a pending expiry.
func (t *SimpleTimer) Armed() bool { return t.armed }

// Expired is an edge-triggered "discover" check: the first call at or
// past the deadline returns true and disarms the timer, so a caller
// that never re-[SimpleTimer.Arm]s it only ever observes the expiry
// once, the same one-shot discovery [PeriodicTimer.Poll] gives for a
// repeating deadline.
func (t *SimpleTimer) Expired(now Ticks) bool {
	if !t.armed || before(now, t.deadline) {
		return false
	}
	t.armed = false
	return true
}

// PeriodicTimer re-arms itself by a fixed period each time it is
// polled and found expired.
type PeriodicTimer struct {
	next   Ticks
	period Ticks
	armed  bool
}

// Start arms the timer to first fire at now+period, then every period
// ticks thereafter.
func (t *PeriodicTimer) Start(now Ticks, period Ticks) {
	if period == 0 {
		Raise(FaultQueue, "periodictimer: period must be non-zero")
		return
	}
	t.period = period
	t.next = now + period
	t.armed = true
}

// Stop disarms the timer.
func (t *PeriodicTimer) Stop() { t.armed = false }

// Armed reports whether the timer is currently running.
func (t *PeriodicTimer) Armed() bool { return t.armed }

// Poll reports whether the timer has fired since the last call, and if
// so advances its internal deadline.
//
// If the caller polls late enough to have missed more than one period,
// Poll catches up by stepping next forward one period at a time until
// it is no longer behind now, rather than firing once per missed
// period — a long gap between polls degrades to "fire once, skip the
// rest", matching the original's catch-up loop instead of bursting a
// backlog of overdue fires. The loop is bounded by the number of
// missed periods, never unbounded.
func (t *PeriodicTimer) Poll(now Ticks) bool {
	if !t.armed || before(now, t.next) {
		return false
	}
	for !before(now, t.next) {
		t.next += t.period
	}
	return true
}
