package tap

// Listener receives raw events from a Surface.
type Listener interface {
	HandleEvent(ev RawEvent)
}

// Surface is a host target that raw event listeners attach to.
type Surface interface {
	AddEventListener(name string, l Listener)
	RemoveEventListener(name string, l Listener)
}

// Capabilities is the result of the host feature probe.
type Capabilities struct {
	PointerEvents  bool
	TouchEvents    bool
	MaxTouchPoints int
	MouseEvents    bool
	PointerLock    bool
}

// Host provides everything the engine needs from the windowing environment.
type Host interface {
	// Capabilities is called once, when an engine is constructed.
	Capabilities() Capabilities

	// DefaultSurface is used when no surface is passed to New. It may be nil.
	DefaultSurface() Surface

	// PointerLocked reports whether the pointer is currently captured.
	PointerLocked() bool
	RequestPointerLock(s Surface)
	ExitPointerLock()

	// OncePointerLockChange calls fn on the next capture transition only.
	OncePointerLockChange(fn func(locked bool))
}
