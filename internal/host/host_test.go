package host

import (
	"io"
	"testing"

	"github.com/bnema/waytap/internal/tap"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []string
	fn  func(tap.RawEvent)
}

func (r *recorder) HandleEvent(ev tap.RawEvent) {
	r.got = append(r.got, ev.Name())
	if r.fn != nil {
		r.fn(ev)
	}
}

func quiet() *log.Logger {
	return log.New(io.Discard)
}

func TestSurface_ListenerIdentity(t *testing.T) {
	s := New(tap.Capabilities{MouseEvents: true}, quiet()).Window()
	r := &recorder{}

	s.AddEventListener("mousedown", r)
	s.AddEventListener("mousedown", r)
	assert.Equal(t, 1, s.ListenerCount("mousedown"))
	assert.Equal(t, 1, s.Added("mousedown"))

	assert.Equal(t, 1, s.Dispatch(&tap.MouseEvent{Type: "mousedown"}))
	assert.Equal(t, 0, s.Dispatch(&tap.MouseEvent{Type: "mouseup"}))
	assert.Equal(t, []string{"mousedown"}, r.got)

	s.RemoveEventListener("mousedown", r)
	s.RemoveEventListener("mousedown", r)
	assert.False(t, s.Listening("mousedown"))
	assert.Equal(t, 1, s.Removed("mousedown"))
}

func TestSurface_RemoveDuringDispatch(t *testing.T) {
	s := New(tap.Capabilities{}, quiet()).NewSurface("canvas")
	second := &recorder{}
	first := &recorder{fn: func(tap.RawEvent) { s.RemoveEventListener("pointerdown", second) }}

	s.AddEventListener("pointerdown", first)
	s.AddEventListener("pointerdown", second)

	assert.Equal(t, 1, s.Dispatch(&tap.PointerEvent{Type: "pointerdown"}))
	assert.Empty(t, second.got)
	assert.Equal(t, "canvas", s.Name())
}

func TestHost_DefaultSurface(t *testing.T) {
	h := New(tap.Capabilities{}, quiet())
	assert.NotNil(t, h.DefaultSurface())

	h.DropDefaultSurface()
	assert.Nil(t, h.DefaultSurface(), "dropped surface must be an untyped nil")
	assert.Nil(t, h.Window())
}

func TestHost_PointerLock(t *testing.T) {
	h := New(tap.Capabilities{PointerLock: true}, quiet())

	var changes []bool
	h.OncePointerLockChange(func(locked bool) { changes = append(changes, locked) })
	h.RequestPointerLock(h.Window())

	assert.True(t, h.PointerLocked())
	assert.Same(t, h.Window(), h.LockedSurface())
	assert.Equal(t, []bool{true}, changes)

	// already locked: no second notification
	h.OncePointerLockChange(func(locked bool) { changes = append(changes, locked) })
	h.RequestPointerLock(h.Window())
	assert.Equal(t, []bool{true}, changes)

	h.RevokePointerLock()
	assert.False(t, h.PointerLocked())
	assert.Nil(t, h.LockedSurface())
	assert.Equal(t, []bool{true, false}, changes)

	h.ExitPointerLock()
	assert.Equal(t, 2, h.LockRequests())
	assert.Equal(t, 1, h.LockExits())
}

func TestHost_PointerLockDenied(t *testing.T) {
	h := New(tap.Capabilities{PointerLock: true}, quiet())
	h.DenyPointerLock = true

	var changes []bool
	h.OncePointerLockChange(func(locked bool) { changes = append(changes, locked) })
	h.RequestPointerLock(h.Window())

	assert.False(t, h.PointerLocked())
	assert.Equal(t, []bool{false}, changes)
}

func TestHost_PointerLockUnsupported(t *testing.T) {
	h := New(tap.Capabilities{}, quiet())

	called := false
	h.OncePointerLockChange(func(bool) { called = true })
	h.RequestPointerLock(h.Window())

	assert.False(t, h.PointerLocked())
	assert.False(t, called)
	assert.Equal(t, 1, h.LockRequests())
}
