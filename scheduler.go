package cogort

// Scheduler is a single-threaded, time-ordered run queue of
// [ActionNode]s. There is no preemption and no priority beyond time:
// the scheduler always runs the earliest-due node next, and nodes due
// at the same tick run in the order they were scheduled (FIFO at
// ties), the same ordering discipline an insertion-position binary
// search over a flat priority queue gives, here replatformed onto an
// intrusive list so a handler firing from inside [Scheduler.ExecuteOne]
// can cancel or reschedule other pending nodes cheaply.
//
// Time is caller-supplied and wrapping (see [Ticks]); the scheduler
// orders nodes relative to its own last-observed now, so "due" compares
// correctly across a wraparound as long as no single node is scheduled
// more than half the tick range into the future, the same assumption
// spec.md's wraparound comparison relies on throughout.
type Scheduler struct {
	list List[ActionNode]
	now  Ticks

	execOne *SchedulerStats[Ticks]
	execAll *SchedulerStats[Ticks]

	haveLastOne bool
	lastOne     Ticks
	haveLastAll bool
	lastAll     Ticks
}

// NewScheduler returns an empty Scheduler with jitter statistics
// decayed at the given power-of-two shift (see [NewSchedulerStats]).
func NewScheduler(statsShift uint) *Scheduler {
	return &Scheduler{
		execOne: NewSchedulerStats[Ticks](statsShift),
		execAll: NewSchedulerStats[Ticks](statsShift),
	}
}

// Start initializes the scheduler's notion of the current tick and
// resets its statistics. Optional — the first ExecuteOne call also
// establishes now — but calling it makes the first relative schedule
// ([ActionNode.ScheduleAfter] computes due from the last-observed now)
// well defined before anything has executed.
func (s *Scheduler) Start(now Ticks) {
	s.now = now
	s.execOne.Reset()
	s.execAll.Reset()
	s.haveLastOne = false
	s.haveLastAll = false
}

// KnownAbsoluteTicks returns the tick most recently passed to
// [Scheduler.Start], [Scheduler.ExecuteOne], or [Scheduler.ExecuteAll] —
// the scheduler's own notion of "now", which periodic re-arming and
// relative scheduling measure against.
func (s *Scheduler) KnownAbsoluteTicks() Ticks { return s.now }

// Stats returns the rolling jitter statistics over deltas between
// successive [Scheduler.ExecuteOne] calls.
func (s *Scheduler) Stats() *SchedulerStats[Ticks] { return s.execOne }

// BatchStats returns the rolling jitter statistics over deltas between
// successive [Scheduler.ExecuteAll] calls.
func (s *Scheduler) BatchStats() *SchedulerStats[Ticks] { return s.execAll }

// Empty reports whether the scheduler has no pending nodes.
func (s *Scheduler) Empty() bool { return s.list.Len() == 0 }

// Len returns the number of pending nodes.
func (s *Scheduler) Len() int { return s.list.Len() }

// NextDue returns the due tick of the earliest pending node.
func (s *Scheduler) NextDue() (Ticks, bool) {
	n := s.list.Front()
	if n == nil {
		return 0, false
	}
	return n.due, true
}

// ScheduleAt arms node to call cb at tick due. Panics (tag
// [FaultQueue]) if node is already pending; cancel it first. cb may be
// nil, which leaves whatever handler node already has (possibly none).
func (s *Scheduler) ScheduleAt(node *ActionNode, due Ticks, cb func()) {
	if node.Linked() {
		Raise(FaultQueue, "scheduler: node already scheduled")
		return
	}
	node.sched = s
	node.due = due
	node.period = 0
	if cb != nil {
		node.Set(cb)
	}
	s.insertAfter(node)
}

// ScheduleAfter is [Scheduler.ScheduleAt] with due computed as
// now+delay.
func (s *Scheduler) ScheduleAfter(node *ActionNode, now Ticks, delay Ticks, cb func()) {
	s.ScheduleAt(node, now+delay, cb)
}

// SchedulePeriodic arms node to fire every period ticks starting at
// now+period, re-arming itself after each execution. Panics (tag
// [FaultQueue]) if period is zero or node is already pending.
func (s *Scheduler) SchedulePeriodic(node *ActionNode, now Ticks, period Ticks, cb func()) {
	if period == 0 {
		Raise(FaultQueue, "scheduler: periodic node with zero period")
		return
	}
	if node.Linked() {
		Raise(FaultQueue, "scheduler: node already scheduled")
		return
	}
	node.sched = s
	node.due = now + period
	node.period = period
	if cb != nil {
		node.Set(cb)
	}
	s.insertAfter(node)
}

// Cancel is [ActionNode.Cancel]: it removes node from whichever
// scheduler or multicast holds it, if any, and zeroes its period.
func (s *Scheduler) Cancel(node *ActionNode) {
	node.Cancel()
}

// insertAfter splices node into the list ordered by (due - s.now),
// inserting it after any node already due at the same relative tick —
// the schedule_after tie-breaking rule, and the one ScheduleAt/
// SchedulePeriodic/ExecuteOne's re-arm use.
func (s *Scheduler) insertAfter(node *ActionNode) {
	key := node.due - s.now
	for e := s.list.Front(); e != nil; e = Next[ActionNode, *ActionNode](e) {
		if key < e.due-s.now {
			InsertBefore[ActionNode, *ActionNode](&s.list, node, e)
			return
		}
	}
	PushBack[ActionNode, *ActionNode](&s.list, node)
}

// insertBefore is [Scheduler.insertAfter], except node is inserted
// ahead of any existing node already due at the same relative tick —
// the schedule_before tie-breaking rule.
func (s *Scheduler) insertBefore(node *ActionNode) {
	key := node.due - s.now
	for e := s.list.Front(); e != nil; e = Next[ActionNode, *ActionNode](e) {
		if key <= e.due-s.now {
			InsertBefore[ActionNode, *ActionNode](&s.list, node, e)
			return
		}
	}
	PushBack[ActionNode, *ActionNode](&s.list, node)
}

// ExecuteOne runs the single earliest-due node if it is due by now,
// and reports whether it did. Re-arms periodic nodes automatically,
// using the same missed-interval catch-up rule as [PeriodicTimer.Poll]
// rather than bursting through a backlog of overdue fires.
func (s *Scheduler) ExecuteOne(now Ticks) bool {
	if s.haveLastOne {
		s.execOne.Observe(now - s.lastOne)
	}
	s.haveLastOne = true
	s.lastOne = now
	s.now = now

	front := s.list.Front()
	if front == nil || before(now, front.due) {
		return false
	}

	Remove[ActionNode, *ActionNode](&s.list, front)
	front.sched = nil

	due := front.due
	front.fireOnce()

	// The period is re-read after the fire: a handler that cancelled
	// its own node zeroed it, and must not be revived here. Re-arm only
	// if the handler also left the node detached — one that rescheduled
	// or re-listened itself elsewhere must not be overridden either.
	if period := front.period; period != 0 && !front.Linked() {
		next := due
		for !before(now, next) {
			next += period
		}
		front.due = next
		front.sched = s
		s.insertAfter(front)
	}

	return true
}

// ExecuteAll runs every node currently due as of now and returns how
// many executions happened. A periodic node fires at most once per
// call: its re-arm skips any intervals missed since the last call (see
// [Scheduler.ExecuteOne]), so it is never due again within the same now.
func (s *Scheduler) ExecuteAll(now Ticks) int {
	if s.haveLastAll {
		s.execAll.Observe(now - s.lastAll)
	}
	s.haveLastAll = true
	s.lastAll = now

	count := 0
	for s.ExecuteOne(now) {
		count++
	}
	return count
}
