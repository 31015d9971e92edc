package cogort

// ListNode is an intrusive doubly-linked list link. Embed it (by value)
// in the payload type and splice the payload directly into a [List];
// there is no separate node allocation, matching the zero-dynamic-
// allocation requirement the rest of this package holds itself to.
type ListNode[T any] struct {
	next, prev *T
	list       *List[T]
}

// Linked reports whether the node is currently attached to a [List].
func (n *ListNode[T]) Linked() bool {
	return n.list != nil
}

// List is an intrusive doubly-linked list. The zero value is an empty
// list ready to use. T must embed a [ListNode[T]] and implement
// [Linkable[T]] so the list can reach the embedded node given only a
// *T.
type List[T any] struct {
	head, tail *T
	length     int
}

// Linkable is implemented by *T when T embeds [ListNode[T]]. Generate
// it with a one-line method:
//
//	func (e *Entry) link() *ListNode[Entry] { return &e.ListNode }
type Linkable[T any] interface {
	link() *ListNode[T]
}

type elem[T any] interface {
	*T
	Linkable[T]
}

// Len returns the number of elements currently linked into l.
func (l *List[T]) Len() int { return l.length }

// Front returns the first element, or nil if l is empty.
func (l *List[T]) Front() *T { return l.head }

// Back returns the last element, or nil if l is empty.
func (l *List[T]) Back() *T { return l.tail }

// Next returns the element following e, or nil at the end of the list.
func Next[T any, L elem[T]](e L) *T {
	return e.link().next
}

// Prev returns the element preceding e, or nil at the start of the
// list.
func Prev[T any, L elem[T]](e L) *T {
	return e.link().prev
}

// PushBack appends e to the end of l. Panics (tag [FaultQueue]) if e is
// already linked into a list; attach/detach must always be explicit.
func PushBack[T any, L elem[T]](l *List[T], e L) {
	n := e.link()
	if n.list != nil {
		Raise(FaultQueue, "list: element already linked")
		return
	}
	n.list = l
	n.prev = l.tail
	n.next = nil
	if l.tail != nil {
		L(l.tail).link().next = (*T)(e)
	} else {
		l.head = (*T)(e)
	}
	l.tail = (*T)(e)
	l.length++
}

// InsertBefore inserts e immediately before mark, which must already
// be linked into l.
func InsertBefore[T any, L elem[T]](l *List[T], e, mark L) {
	n := e.link()
	m := mark.link()
	if n.list != nil {
		Raise(FaultQueue, "list: element already linked")
		return
	}
	if m.list != l {
		Raise(FaultQueue, "list: mark not linked into this list")
		return
	}
	n.list = l
	n.prev = m.prev
	n.next = (*T)(mark)
	if m.prev != nil {
		L(m.prev).link().next = (*T)(e)
	} else {
		l.head = (*T)(e)
	}
	m.prev = (*T)(e)
	l.length++
}

// Remove detaches e from l. Panics (tag [FaultQueue]) if e is not
// currently linked into l.
func Remove[T any, L elem[T]](l *List[T], e L) {
	n := e.link()
	if n.list != l {
		Raise(FaultQueue, "list: element not linked into this list")
		return
	}
	if n.prev != nil {
		L(n.prev).link().next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		L(n.next).link().prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.list = nil
	n.next = nil
	n.prev = nil
	l.length--
}

// PopFront removes and returns the first element, or nil if l is
// empty.
func PopFront[T any, L elem[T]](l *List[T]) *T {
	e := l.head
	if e == nil {
		return nil
	}
	Remove[T, L](l, L(e))
	return e
}

// Detach removes e from whichever list currently holds it, if any. It
// is a no-op if e is not linked. Unlike [Remove], the caller does not
// need to know which list e is attached to — useful for a subscriber
// node that might currently be in either half of a double-buffered
// list, such as [Multicast]'s pending/active split.
func Detach[T any, L elem[T]](e L) {
	n := e.link()
	l := n.list
	if l == nil {
		return
	}
	Remove[T, L](l, e)
}
