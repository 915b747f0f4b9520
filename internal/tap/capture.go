package tap

import "github.com/charmbracelet/log"

// LockChange is delivered when the host's pointer capture state flips.
type LockChange struct {
	Locked bool
	// Err is set when the change does not satisfy the request that awaited it.
	Err error
}

// Capture coordinates the host's pointer capture ("lock") mode.
type Capture struct {
	host      Host
	surface   Surface
	available bool
	gestures  *gestureEmitter
	log       *log.Logger

	// closed drops host notifications still pending when the engine is destroyed
	closed bool
}

func newCapture(h Host, surface Surface, available bool, gestures *gestureEmitter, logger *log.Logger) *Capture {
	return &Capture{
		host:      h,
		surface:   surface,
		available: available,
		gestures:  gestures,
		log:       logger,
	}
}

// Available reports whether the host supports pointer capture. It is probed
// once when the engine is built.
func (c *Capture) Available() bool {
	return c.available
}

// IsLocked asks the host for the current capture state on every call.
func (c *Capture) IsLocked() bool {
	return c.host.PointerLocked()
}

// OnceChange returns a channel that receives the next capture transition.
func (c *Capture) OnceChange() <-chan LockChange {
	ch := make(chan LockChange, 1)
	c.host.OncePointerLockChange(func(locked bool) {
		if c.closed {
			return
		}
		ch <- LockChange{Locked: locked}
	})
	return ch
}

// Request asks for pointer capture. Hosts only honour capture requests made
// while handling a user gesture, so the request is issued on the next down,
// whether or not the engine is paused. The returned channel receives the
// resulting transition; it never fires if the host stays silent.
func (c *Capture) Request() (<-chan LockChange, error) {
	if !c.available {
		return nil, ErrLockUnavailable
	}
	if c.IsLocked() {
		return nil, ErrAlreadyLocked
	}

	ch := make(chan LockChange, 1)
	c.host.OncePointerLockChange(func(locked bool) {
		if c.closed {
			return
		}
		change := LockChange{Locked: locked}
		if !locked {
			change.Err = ErrLockDenied
		}
		c.log.Debug("pointer lock request settled", "locked", locked)
		ch <- change
	})

	c.gestures.once(PhaseDown, func(Gesture) {
		c.log.Debug("requesting pointer lock")
		c.host.RequestPointerLock(c.surface)
	})

	return ch, nil
}

// Exit releases the pointer capture. The returned channel receives the
// resulting transition.
func (c *Capture) Exit() (<-chan LockChange, error) {
	if !c.IsLocked() {
		return nil, ErrNotLocked
	}

	ch := c.OnceChange()
	c.log.Debug("exiting pointer lock")
	c.host.ExitPointerLock()
	return ch, nil
}

func (c *Capture) close() {
	c.closed = true
}
