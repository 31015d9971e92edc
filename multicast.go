package cogort

// Multicast is a fan-out fire point for [ActionNode]s: any node
// currently listening (via [ActionNode.ListenOnce] or
// [ActionNode.ListenSubscribe]) is fired, in subscription order, on
// every [Multicast.Fire] call. Unlike [Scheduler], a Multicast carries
// no notion of time — it fires on demand, whenever its owner decides an
// event occurred.
//
// The zero value is an empty Multicast, double-buffered across two
// intrusive lists with a one-bit index selecting which one is
// currently "receiving" new listeners. Fire flips that index before
// iterating the list it just stopped receiving into, so a handler that
// calls ListenSubscribe or ListenOnce on the same Multicast from inside
// its own callback always lands in the list for the *next* Fire, never
// the one currently in progress, and a handler that cancels a
// not-yet-visited sibling node is safe — that node is simply no longer
// linked when its turn would have come.
type Multicast struct {
	lists     [2]List[ActionNode]
	activeIdx int
}

// attach appends n to whichever list is currently receiving.
func (m *Multicast) attach(n *ActionNode) {
	PushBack[ActionNode, *ActionNode](&m.lists[m.activeIdx], n)
}

// Len returns the number of nodes currently listening, across both the
// receiving list and (if a Fire is not in progress) the other.
func (m *Multicast) Len() int { return m.lists[0].Len() + m.lists[1].Len() }

// Fire flips the receiving index, then invokes every node that was
// listening before the flip, in subscription order. A node fired with
// removeAfterCall false that is still detached afterward (its own
// handler did not reschedule or re-listen it elsewhere) rejoins the new
// receiving list automatically; a removeAfterCall node, or one its own
// handler moved elsewhere, does not.
func (m *Multicast) Fire() {
	firingIdx := m.activeIdx
	m.activeIdx = 1 - m.activeIdx
	list := &m.lists[firingIdx]

	// Each node is popped before its handler runs, so a handler that
	// cancels a not-yet-visited sibling simply unlinks it from this
	// list and it is never popped — iterating by saved next pointers
	// would instead walk into the detached node.
	for {
		n := PopFront[ActionNode, *ActionNode](list)
		if n == nil {
			break
		}
		n.mc = nil

		n.fireOnce()

		if !n.Linked() && !n.removeAfterCall {
			n.mc = m
			m.attach(n)
		}
	}
}
