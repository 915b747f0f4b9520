package tap

import "errors"

var (
	// ErrLockUnavailable is returned when the host has no pointer capture mode
	ErrLockUnavailable = errors.New("pointer lock is not available")
	// ErrAlreadyLocked is returned by a lock request while the pointer is captured
	ErrAlreadyLocked = errors.New("pointer is already locked")
	// ErrNotLocked is returned by an exit request while the pointer is free
	ErrNotLocked = errors.New("pointer is not locked")
	// ErrLockDenied is reported when the host answers a lock request by staying unlocked
	ErrLockDenied = errors.New("pointer lock was denied by the host")
	// ErrDestroyed is the panic value for use of a destroyed engine
	ErrDestroyed = errors.New("tap: engine used after Destroy")
)
