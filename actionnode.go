package cogort

// ActionNode is the single schedulable/listenable unit both [Scheduler]
// and [Multicast] operate on: an intrusive list node plus a
// Thenable<void> fire handler. At any moment a node is owned by at
// most one [Scheduler] (scheduled for a future tick, possibly
// repeating) or at most one [Multicast] (listening for a fan-out fire),
// never both — the same node value moves freely between the two by
// calling whichever schedule/listen method applies, detaching from its
// previous owner first.
type ActionNode struct {
	ListNode[ActionNode]

	sched *Scheduler
	mc    *Multicast

	due             Ticks
	period          Ticks // periodTicksAgain; 0 means one-shot
	removeAfterCall bool  // listen_once vs listen_subscribe

	sticky   bool
	stickyCb func()

	fire    *Thenable[struct{}]
	fireRes ThenableToResolve[struct{}]
}

func (n *ActionNode) link() *ListNode[ActionNode] { return &n.ListNode }

func (n *ActionNode) ensureFire() {
	if n.fire == nil {
		n.fire, n.fireRes = NewThenable[struct{}](NoCriticalSection)
	}
}

// Set binds cb as the node's persistent fire handler, discarding any
// pending unobserved fire: a periodic node's Set callback fires every
// period, and a listen_subscribe'd node's fires every multicast fire,
// until [ActionNode.ResetCallback] clears it.
func (n *ActionNode) Set(cb func()) {
	n.ensureFire()
	n.sticky = true
	n.stickyCb = cb
	n.fire.Set(func(struct{}) { n.stickyCb() })
}

// Then subscribes cb to this node's very next fire only, with full
// [Thenable.Then] producer-before-consumer tolerance: if the node
// already fired with no handler bound, cb redeems that pending fire
// immediately instead of waiting for the next one.
func (n *ActionNode) Then(cb func()) {
	n.ensureFire()
	n.fire.Then(func(struct{}) { cb() })
}

// ResetCallback clears any bound fire handler, sticky or one-shot.
// Fires that happen while no handler is bound accumulate as pending on
// the node's Thenable, redeemable by a later Then.
func (n *ActionNode) ResetCallback() {
	n.sticky = false
	n.stickyCb = nil
	if n.fire != nil {
		n.fire.ResetCallback()
	}
}

// fireOnce resolves the node's fire Thenable, invoking whichever
// handler is bound (sticky Set callback, one-shot Then subscriber, or
// neither — in which case the fire stays pending for a later Then).
// Resolving detaches the subscriber, so a sticky callback is
// re-installed afterward for the next cycle.
func (n *ActionNode) fireOnce() {
	n.ensureFire()
	n.fireRes.Resolve(struct{}{})
	if n.sticky {
		n.fire.Set(func(struct{}) { n.stickyCb() })
	}
}

// detach removes n from whichever owner currently holds it, if any.
func (n *ActionNode) detach() {
	Detach[ActionNode, *ActionNode](n)
	n.sched = nil
	n.mc = nil
}

// ScheduleAfter detaches n from any current owner and arms it to fire
// firstDelta ticks from sched's last-observed now, then every period
// ticks thereafter (period 0 for one-shot). Ties at the same due tick
// are broken FIFO: n is inserted after any node already due at the same
// tick.
func (n *ActionNode) ScheduleAfter(sched *Scheduler, firstDelta, period Ticks) {
	n.detach()
	n.sched = sched
	n.due = sched.now + firstDelta
	n.period = period
	sched.insertAfter(n)
}

// ScheduleBefore is [ActionNode.ScheduleAfter], except a tie at the
// same due tick is broken ahead of the existing nodes rather than
// behind them.
func (n *ActionNode) ScheduleBefore(sched *Scheduler, firstDelta, period Ticks) {
	n.detach()
	n.sched = sched
	n.due = sched.now + firstDelta
	n.period = period
	sched.insertBefore(n)
}

// ScheduleLater is [ActionNode.ScheduleAfter] with a one-tick delay and
// no repeat.
func (n *ActionNode) ScheduleLater(sched *Scheduler) { n.ScheduleAfter(sched, 1, 0) }

// ScheduleNow is [ActionNode.ScheduleAfter] with zero delay and no
// repeat — due at sched's current known tick.
func (n *ActionNode) ScheduleNow(sched *Scheduler) { n.ScheduleAfter(sched, 0, 0) }

// ListenOnce detaches n from any current owner and appends it to mc's
// currently-receiving list; it is removed automatically after its next
// fire rather than rejoining for the one after.
func (n *ActionNode) ListenOnce(mc *Multicast) {
	n.detach()
	n.mc = mc
	n.removeAfterCall = true
	mc.attach(n)
}

// ListenSubscribe is [ActionNode.ListenOnce], except n rejoins mc's
// list after every fire instead of being removed.
func (n *ActionNode) ListenSubscribe(mc *Multicast) {
	n.detach()
	n.mc = mc
	n.removeAfterCall = false
	mc.attach(n)
}

// Cancel detaches n from whatever scheduler or multicast currently owns
// it, if any, and zeroes its period — safe at any time, including on an
// already-detached node, and ensures a handler that cancels itself is
// not revived by its own owner's re-arm logic.
func (n *ActionNode) Cancel() {
	n.detach()
	n.period = 0
}

// Due returns the absolute tick n is next due to fire, meaningful only
// while [ActionNode.IsScheduled] is true.
func (n *ActionNode) Due() Ticks { return n.due }

// AbsoluteScheduleTime is [ActionNode.Due] paired with
// [ActionNode.IsScheduled], so a caller can tell a genuine tick 0 due
// time apart from "not scheduled at all".
func (n *ActionNode) AbsoluteScheduleTime() (Ticks, bool) { return n.due, n.sched != nil }

// PeriodTicksAgain returns the node's repeat period, or 0 for a
// one-shot node.
func (n *ActionNode) PeriodTicksAgain() Ticks { return n.period }

// Periodic reports whether the node repeats.
func (n *ActionNode) Periodic() bool { return n.period != 0 }

// Pending reports whether n is currently linked into any owner's list
// (scheduled or listening).
func (n *ActionNode) Pending() bool { return n.Linked() }

// IsScheduled reports whether n is currently owned by a [Scheduler].
func (n *ActionNode) IsScheduled() bool { return n.sched != nil }

// IsListening reports whether n is currently owned by a [Multicast].
func (n *ActionNode) IsListening() bool { return n.mc != nil }
