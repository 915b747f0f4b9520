// Package host is an in-process windowing host for the tap engine: named
// listener registries on surfaces, a pointer capture flag and capture change
// notifications. Replay, the terminal monitor and tests drive engines through
// it.
package host

import (
	"github.com/bnema/waytap/internal/events"
	"github.com/bnema/waytap/internal/tap"
	"github.com/charmbracelet/log"
)

const lockChange = "pointerlockchange"

// Host implements tap.Host.
type Host struct {
	caps    tap.Capabilities
	surface *Surface
	log     *log.Logger

	lockedBy *Surface
	locked   bool
	changes  *events.Emitter[bool]

	// DenyPointerLock makes lock requests settle as unlocked.
	DenyPointerLock bool

	lockRequests int
	lockExits    int
}

// New returns a host advertising caps, with one default surface.
func New(caps tap.Capabilities, logger *log.Logger) *Host {
	h := &Host{
		caps:    caps,
		log:     logger,
		changes: events.NewEmitter[bool](),
	}
	h.surface = h.NewSurface("window")
	return h
}

// NewSurface creates an additional surface owned by the host.
func (h *Host) NewSurface(name string) *Surface {
	return newSurface(name, h.log)
}

// Capabilities implements tap.Host.
func (h *Host) Capabilities() tap.Capabilities {
	return h.caps
}

// DefaultSurface implements tap.Host.
func (h *Host) DefaultSurface() tap.Surface {
	if h.surface == nil {
		return nil
	}
	return h.surface
}

// Window returns the default surface with its concrete type.
func (h *Host) Window() *Surface {
	return h.surface
}

// DropDefaultSurface simulates an environment without a global surface.
func (h *Host) DropDefaultSurface() {
	h.surface = nil
}

// PointerLocked implements tap.Host.
func (h *Host) PointerLocked() bool {
	return h.locked
}

// LockedSurface returns the surface holding the capture, or nil.
func (h *Host) LockedSurface() *Surface {
	return h.lockedBy
}

// RequestPointerLock implements tap.Host. The change notification fires
// before RequestPointerLock returns.
func (h *Host) RequestPointerLock(s tap.Surface) {
	h.lockRequests++
	if !h.caps.PointerLock {
		h.log.Debug("pointer lock requested on a host without lock support")
		return
	}
	if h.DenyPointerLock {
		h.log.Debug("pointer lock denied")
		h.changes.Emit(lockChange, false)
		return
	}
	if h.locked {
		return
	}
	surface, _ := s.(*Surface)
	h.setLocked(true, surface)
}

// ExitPointerLock implements tap.Host.
func (h *Host) ExitPointerLock() {
	h.lockExits++
	if !h.locked {
		return
	}
	h.setLocked(false, nil)
}

// RevokePointerLock releases the capture as if the user pressed escape.
func (h *Host) RevokePointerLock() {
	if !h.locked {
		return
	}
	h.log.Debug("pointer lock revoked")
	h.setLocked(false, nil)
}

func (h *Host) setLocked(locked bool, s *Surface) {
	h.locked = locked
	h.lockedBy = s
	h.log.Debug("pointer lock changed", "locked", locked)
	h.changes.Emit(lockChange, locked)
}

// OncePointerLockChange implements tap.Host.
func (h *Host) OncePointerLockChange(fn func(locked bool)) {
	h.changes.Once(lockChange, fn)
}

// LockRequests returns how many lock requests reached the host.
func (h *Host) LockRequests() int {
	return h.lockRequests
}

// LockExits returns how many lock releases reached the host.
func (h *Host) LockExits() int {
	return h.lockExits
}
