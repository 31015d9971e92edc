package cogort

// SimpleDebounce absorbs chatter on a polled boolean input: a raw
// reading differing from the current stable value arms a quiet-period
// timer, and only if the reading is still different when that timer
// expires does the stable value toggle. A reading that returns to the
// stable value while the timer is pending cancels it — the chatter is
// absorbed and the next differing reading starts a fresh quiet period.
type SimpleDebounce struct {
	timer  SimpleTimer
	quiet  Ticks
	stable bool
}

// NewSimpleDebounce returns a debouncer that requires a differing raw
// reading to survive quiet ticks before accepting it. initial seeds the
// stable value before the first sample arrives.
func NewSimpleDebounce(quiet Ticks, initial bool) *SimpleDebounce {
	return &SimpleDebounce{quiet: quiet, stable: initial}
}

// Value returns the current debounced value without sampling.
func (d *SimpleDebounce) Value() bool { return d.stable }

// Discover feeds a new raw reading at tick now and reports, edge-
// triggered, whether the stable value toggled on this very sample.
// [SimpleDebounce.Value] reflects the toggle immediately.
func (d *SimpleDebounce) Discover(now Ticks, raw bool) bool {
	if d.timer.Armed() {
		if raw == d.stable {
			// Chatter: the input came back before the quiet period
			// elapsed. The cancel wins even if this sample lands
			// exactly on the deadline.
			d.timer.Disarm()
			return false
		}
		if d.timer.Expired(now) {
			d.stable = raw
			return true
		}
		return false
	}
	if raw != d.stable {
		d.timer.Arm(now, d.quiet)
	}
	return false
}

// ScheduledDebounce is the scheduler-driven counterpart to
// [SimpleDebounce]: instead of a quiet-period timer, it requires a
// configurable number of consecutive agreeing samples before promoting
// a value, sampled on a [Scheduler]'s own cadence through the embedded
// [ActionNode] rather than the caller's ad hoc polling loop.
type ScheduledDebounce struct {
	ActionNode
	required int
	raw      bool
	count    int
	stable   bool
	changed  Multicast
	onTrue   func()
	onFalse  func()
}

// NewScheduledDebounce returns a debouncer requiring requiredSamples
// consecutive agreeing samples before a value is accepted as stable.
// Panics (tag [FaultQueue]) if requiredSamples is not positive.
func NewScheduledDebounce(requiredSamples int, initial bool) *ScheduledDebounce {
	if requiredSamples <= 0 {
		Raise(FaultQueue, "scheduleddebounce: requiredSamples must be positive")
		return nil
	}
	return &ScheduledDebounce{required: requiredSamples, raw: initial, stable: initial}
}

// Stable returns the current debounced value.
func (d *ScheduledDebounce) Stable() bool { return d.stable }

// OnTrue registers cb to run every time the stable value toggles to
// true.
func (d *ScheduledDebounce) OnTrue(cb func()) { d.onTrue = cb }

// OnFalse registers cb to run every time the stable value toggles to
// false.
func (d *ScheduledDebounce) OnFalse(cb func()) { d.onFalse = cb }

// OnChange arms node to call cb with the new stable value whenever it
// changes, through [ActionNode.ListenSubscribe] on the debounce's own
// change [Multicast] — node rejoins automatically after every fire, so
// one OnChange call keeps observing every future change.
func (d *ScheduledDebounce) OnChange(node *ActionNode, cb func(stable bool)) {
	node.Set(func() { cb(d.stable) })
	node.ListenSubscribe(&d.changed)
}

// Sample reports one consecutive-sample observation of raw. Once
// required agreeing samples in a row have been seen, the stable value
// is updated, the matching OnTrue/OnFalse callback runs, and OnChange
// subscribers are fired.
func (d *ScheduledDebounce) Sample(raw bool) {
	if raw != d.raw {
		d.raw = raw
		d.count = 1
	} else {
		d.count++
	}
	if d.count >= d.required && d.stable != raw {
		d.stable = raw
		if raw {
			if d.onTrue != nil {
				d.onTrue()
			}
		} else if d.onFalse != nil {
			d.onFalse()
		}
		d.changed.Fire()
	}
}

// Arm schedules periodic sampling of poll through sched, starting at
// now+period and repeating every period ticks.
func (d *ScheduledDebounce) Arm(sched *Scheduler, now Ticks, period Ticks, poll func() bool) {
	sched.SchedulePeriodic(&d.ActionNode, now, period, func() {
		d.Sample(poll())
	})
}
