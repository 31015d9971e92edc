package cogort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listEntry struct {
	ListNode[listEntry]
	val int
}

func (e *listEntry) link() *ListNode[listEntry] { return &e.ListNode }

func TestList_PushBackOrder(t *testing.T) {
	var l List[listEntry]
	a, b, c := &listEntry{val: 1}, &listEntry{val: 2}, &listEntry{val: 3}

	PushBack[listEntry, *listEntry](&l, a)
	PushBack[listEntry, *listEntry](&l, b)
	PushBack[listEntry, *listEntry](&l, c)

	require.Equal(t, 3, l.Len())
	assert.Equal(t, a, l.Front())
	assert.Equal(t, c, l.Back())
	assert.Equal(t, b, Next[listEntry, *listEntry](a))
	assert.Equal(t, a, Prev[listEntry, *listEntry](b))
}

func TestList_RemoveMiddle(t *testing.T) {
	var l List[listEntry]
	a, b, c := &listEntry{val: 1}, &listEntry{val: 2}, &listEntry{val: 3}
	PushBack[listEntry, *listEntry](&l, a)
	PushBack[listEntry, *listEntry](&l, b)
	PushBack[listEntry, *listEntry](&l, c)

	Remove[listEntry, *listEntry](&l, b)

	assert.Equal(t, 2, l.Len())
	assert.Equal(t, c, Next[listEntry, *listEntry](a))
	assert.False(t, b.Linked())
}

func TestList_InsertBefore(t *testing.T) {
	var l List[listEntry]
	a, c := &listEntry{val: 1}, &listEntry{val: 3}
	PushBack[listEntry, *listEntry](&l, a)
	PushBack[listEntry, *listEntry](&l, c)

	b := &listEntry{val: 2}
	InsertBefore[listEntry, *listEntry](&l, b, c)

	assert.Equal(t, []int{1, 2, 3}, collect(&l))
}

func TestList_PopFront(t *testing.T) {
	var l List[listEntry]
	a, b := &listEntry{val: 1}, &listEntry{val: 2}
	PushBack[listEntry, *listEntry](&l, a)
	PushBack[listEntry, *listEntry](&l, b)

	got := PopFront[listEntry, *listEntry](&l)
	assert.Equal(t, a, got)
	assert.False(t, a.Linked())
	assert.Equal(t, 1, l.Len())

	assert.Nil(t, PopFront[listEntry, *listEntry](&List[listEntry]{}))
}

func TestList_DoubleLinkPanics(t *testing.T) {
	faultOnly(t, func() {
		var l List[listEntry]
		a := &listEntry{val: 1}
		PushBack[listEntry, *listEntry](&l, a)
		PushBack[listEntry, *listEntry](&l, a)
	}, FaultQueue)
}

func TestList_Detach(t *testing.T) {
	var l1, l2 List[listEntry]
	a := &listEntry{val: 1}
	PushBack[listEntry, *listEntry](&l1, a)

	Detach[listEntry, *listEntry](a)
	assert.False(t, a.Linked())
	assert.Equal(t, 0, l1.Len())

	// Detach on an unlinked node is a no-op, not a fault.
	Detach[listEntry, *listEntry](a)

	PushBack[listEntry, *listEntry](&l2, a)
	assert.Equal(t, 1, l2.Len())
}

func collect(l *List[listEntry]) []int {
	var out []int
	for e := l.Front(); e != nil; e = Next[listEntry, *listEntry](e) {
		out = append(out, e.val)
	}
	return out
}

// faultOnly runs f and asserts it raised exactly the given tagged
// Fault (via the default panic hook), rather than some other panic.
func faultOnly(t *testing.T, f func(), tag FaultTag) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		fault, ok := r.(*Fault)
		require.True(t, ok, "expected *Fault, got %T: %v", r, r)
		assert.Equal(t, tag, fault.Tag)
	}()
	f()
}
