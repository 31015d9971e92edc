package cogort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifetime_EmplaceDestroy(t *testing.T) {
	var l Lifetime[string]
	assert.False(t, l.Present())

	l.Emplace("hello")
	assert.True(t, l.Present())
	v, ok := l.Get()
	assert.True(t, ok)
	assert.Equal(t, "hello", *v)

	l.Destroy()
	assert.False(t, l.Present())
	_, ok = l.Get()
	assert.False(t, ok)
}

func TestLifetime_EmplaceOverLivePanics(t *testing.T) {
	faultOnly(t, func() {
		var l Lifetime[int]
		l.Emplace(1)
		l.Emplace(2)
	}, FaultMemory)
}

func TestLifetime_Force(t *testing.T) {
	var l Lifetime[int]
	l.Emplace(1)
	l.Force(2)
	v, _ := l.Get()
	assert.Equal(t, 2, *v)
}

func TestLifetime_DestroyEmptyIsNoop(t *testing.T) {
	var l Lifetime[int]
	l.Destroy() // must not panic
	assert.False(t, l.Present())
}

func TestLifetime_MustDestroyEmptyPanics(t *testing.T) {
	faultOnly(t, func() {
		var l Lifetime[int]
		l.MustDestroy()
	}, FaultMemory)
}

func TestLifetime_DerefPanicsOnEmpty(t *testing.T) {
	faultOnly(t, func() {
		var l Lifetime[int]
		l.Deref()
	}, FaultMemory)
}

func TestLifetime_DerefReturnsLiveValue(t *testing.T) {
	var l Lifetime[int]
	l.Emplace(42)
	assert.Equal(t, 42, *l.Deref())
}

func TestLifetime_ScopedDestroysAfterBody(t *testing.T) {
	var l Lifetime[string]
	var sawPresent bool
	var sawValue string

	l.Scoped("held", func() {
		sawPresent = l.Present()
		sawValue = *l.Deref()
	})

	assert.True(t, sawPresent)
	assert.Equal(t, "held", sawValue)
	assert.False(t, l.Present(), "Scoped must destroy once body returns")
}

func TestLifetime_ScopedDestroysEvenOnPanic(t *testing.T) {
	var l Lifetime[int]
	assert.Panics(t, func() {
		l.Scoped(1, func() { panic("boom") })
	})
	assert.False(t, l.Present())
}

func TestLifetime_Singleton(t *testing.T) {
	var l Lifetime[int]
	calls := 0
	make := func() int { calls++; return 7 }

	v1 := l.Singleton(make)
	v2 := l.Singleton(make)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 7, *v1)
	assert.Same(t, v1, v2)
}
