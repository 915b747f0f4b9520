package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitter_On(t *testing.T) {
	e := NewEmitter[int]()

	var got []int
	e.On("down", func(v int) { got = append(got, v) })

	assert.True(t, e.Emit("down", 1))
	assert.True(t, e.Emit("down", 2))
	assert.False(t, e.Emit("up", 3), "no handler on up")
	assert.Equal(t, []int{1, 2}, got)
}

func TestEmitter_Once(t *testing.T) {
	e := NewEmitter[string]()

	calls := 0
	e.Once("move", func(string) { calls++ })
	assert.Equal(t, 1, e.ListenerCount("move"))

	e.Emit("move", "a")
	e.Emit("move", "b")

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, e.ListenerCount("move"))
}

func TestEmitter_OnceNotReentered(t *testing.T) {
	e := NewEmitter[int]()

	calls := 0
	e.Once("x", func(v int) {
		calls++
		e.Emit("x", v+1)
	})
	e.Emit("x", 0)

	assert.Equal(t, 1, calls)
}

func TestEmitter_OrderPreserved(t *testing.T) {
	e := NewEmitter[int]()

	var order []string
	e.On("x", func(int) { order = append(order, "on-1") })
	e.Once("x", func(int) { order = append(order, "once") })
	e.On("x", func(int) { order = append(order, "on-2") })

	e.Emit("x", 0)
	assert.Equal(t, []string{"on-1", "once", "on-2"}, order)
}

func TestSubscription_Cancel(t *testing.T) {
	e := NewEmitter[int]()

	calls := 0
	sub := e.On("x", func(int) { calls++ })
	e.Emit("x", 0)

	sub.Cancel()
	sub.Cancel()
	e.Emit("x", 0)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, e.ListenerCount("x"))
}

func TestSubscription_CancelDuringEmit(t *testing.T) {
	e := NewEmitter[int]()

	var second Subscription
	secondCalls := 0
	e.On("x", func(int) { second.Cancel() })
	second = e.On("x", func(int) { secondCalls++ })

	e.Emit("x", 0)
	assert.Equal(t, 0, secondCalls, "handler cancelled earlier in the same emit must not run")
}

func TestSubscription_CancelOnceDuringEmit(t *testing.T) {
	e := NewEmitter[int]()

	var second Subscription
	secondCalls := 0
	e.Once("x", func(int) { second.Cancel() })
	second = e.Once("x", func(int) { secondCalls++ })

	e.Emit("x", 0)
	e.Emit("x", 0)

	assert.Equal(t, 0, secondCalls, "once handler cancelled earlier in the same emit must not run")
	assert.Equal(t, 0, e.ListenerCount("x"))
}

func TestEmitter_RemoveAllListenersDuringEmit(t *testing.T) {
	e := NewEmitter[int]()

	calls := 0
	e.On("x", func(int) { e.RemoveAllListeners() })
	e.Once("x", func(int) { calls++ })

	e.Emit("x", 0)
	assert.Equal(t, 0, calls)
}

func TestEmitter_RemoveAllListeners(t *testing.T) {
	e := NewEmitter[int]()
	e.On("a", func(int) {})
	e.Once("b", func(int) {})

	e.RemoveAllListeners()

	assert.Equal(t, 0, e.ListenerCount("a"))
	assert.Equal(t, 0, e.ListenerCount("b"))
	assert.False(t, e.Emit("a", 1))
}
