// Package tap merges the pointer, touch and mouse event families of a host
// surface into a single stream of down, move and up gestures.
//
// The engine attaches every family the host supports and retires a family as
// soon as a down event shows it duplicates a more specific one: touch is
// dropped once pointer is seen, mouse once pointer or touch is seen.
//
//	t := tap.New(h, surface)
//	defer t.Destroy()
//	t.OnDown(func(g tap.Gesture) { fmt.Println("down at", g.Position) })
package tap

import (
	"github.com/bnema/waytap/internal/events"
	"github.com/bnema/waytap/internal/logger"
)

type lifecycle uint8

const (
	lifecycleActive lifecycle = iota
	lifecycleDestroyed
)

// Tap is the gesture engine bound to one surface. It is driven by the host's
// event loop and is not safe for concurrent use.
type Tap struct {
	state lifecycle

	host       Host
	catalog    *Catalog
	arbitrator *arbitrator
	tracker    *positionTracker
	gestures   *gestureEmitter
	capture    *Capture
}

// New builds an engine on surface, or on the host's default surface when
// surface is nil, and starts listening immediately.
func New(h Host, surface Surface, opts ...Option) *Tap {
	o := options{
		logger:  logger.Logger.WithPrefix("tap"),
		catalog: DefaultCatalog(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.families != nil {
		o.catalog = o.catalog.WithEnabled(o.families...)
	}

	if surface == nil {
		surface = h.DefaultSurface()
	}
	if surface == nil {
		o.logger.Warn("no surface found, engine will stay inert")
	}

	caps := h.Capabilities()

	t := &Tap{
		host:    h,
		catalog: o.catalog,
		tracker: newPositionTracker(),
	}
	t.gestures = newGestureEmitter(t.tracker, h.PointerLocked)
	t.capture = newCapture(h, surface, caps.PointerLock, t.gestures, o.logger)
	t.arbitrator = newArbitrator(o.catalog, surface, t, o.logger)
	t.arbitrator.attach(o.catalog.Supported(caps))

	return t
}

func (t *Tap) mustBeActive() {
	if t.state == lifecycleDestroyed {
		panic(ErrDestroyed)
	}
}

// HandleEvent is the listener entry point the surface calls for every
// registered event name.
func (t *Tap) HandleEvent(ev RawEvent) {
	if t.state == lifecycleDestroyed || ev == nil {
		return
	}

	family, phase, ok := t.catalog.Lookup(ev.Name())
	if !ok || !t.arbitrator.isActive(family) {
		// late delivery for a retired or never attached family
		return
	}

	switch phase {
	case PhaseDown:
		if !t.arbitrator.evaluateDown(ev) {
			return
		}
		t.gestures.notifyDown(ev)
	case PhaseMove:
		t.gestures.notifyMove(ev)
	case PhaseUp:
		t.gestures.notifyUp(ev)
	}
}

// Pause stops delivery to On subscribers. State tracking continues.
func (t *Tap) Pause() {
	t.mustBeActive()
	t.gestures.isPaused = true
}

// Resume restarts delivery to On subscribers.
func (t *Tap) Resume() {
	t.mustBeActive()
	t.gestures.isPaused = false
}

// IsPaused reports whether delivery is paused.
func (t *Tap) IsPaused() bool {
	t.mustBeActive()
	return t.gestures.isPaused
}

// IsDown reports whether a down is outstanding.
func (t *Tap) IsDown() bool {
	t.mustBeActive()
	return t.gestures.isDown
}

// CurrentPosition returns the latest computed position, (-1, -1) before the
// first event.
func (t *Tap) CurrentPosition() Vector2 {
	t.mustBeActive()
	return t.tracker.current
}

// LastPosition returns the position before the last change.
func (t *Tap) LastPosition() Vector2 {
	t.mustBeActive()
	return t.tracker.previous
}

// OnDown subscribes cb to down gestures while not paused.
func (t *Tap) OnDown(cb Callback) events.Subscription {
	t.mustBeActive()
	return t.gestures.on(PhaseDown, cb)
}

// OnMove subscribes cb to move gestures while not paused.
func (t *Tap) OnMove(cb Callback) events.Subscription {
	t.mustBeActive()
	return t.gestures.on(PhaseMove, cb)
}

// OnUp subscribes cb to up gestures while not paused.
func (t *Tap) OnUp(cb Callback) events.Subscription {
	t.mustBeActive()
	return t.gestures.on(PhaseUp, cb)
}

// OnceDown delivers the next down gesture to cb. Once subscriptions ignore
// Pause.
func (t *Tap) OnceDown(cb Callback) events.Subscription {
	t.mustBeActive()
	return t.gestures.once(PhaseDown, cb)
}

// OnceMove delivers the next move gesture to cb, paused or not.
func (t *Tap) OnceMove(cb Callback) events.Subscription {
	t.mustBeActive()
	return t.gestures.once(PhaseMove, cb)
}

// OnceUp delivers the next up gesture to cb, paused or not.
func (t *Tap) OnceUp(cb Callback) events.Subscription {
	t.mustBeActive()
	return t.gestures.once(PhaseUp, cb)
}

// PointerLock returns the capture coordinator.
func (t *Tap) PointerLock() *Capture {
	t.mustBeActive()
	return t.capture
}

// ActiveFamilies lists the families whose listeners are registered, in
// priority order.
func (t *Tap) ActiveFamilies() []Family {
	t.mustBeActive()
	var out []Family
	for _, f := range Families {
		if t.arbitrator.isActive(f) {
			out = append(out, f)
		}
	}
	return out
}

// SeenFamilies lists the families that produced at least one down event.
func (t *Tap) SeenFamilies() []Family {
	t.mustBeActive()
	var out []Family
	for _, f := range Families {
		if t.arbitrator.isSeen(f) {
			out = append(out, f)
		}
	}
	return out
}

// Destroy unregisters every listener and drops every subscription. The engine
// must not be used afterwards; calling Destroy again is a no-op.
func (t *Tap) Destroy() {
	if t.state == lifecycleDestroyed {
		return
	}
	t.gestures.isPaused = true
	t.arbitrator.detachAll()
	t.gestures.clear()
	t.capture.close()
	t.state = lifecycleDestroyed
}
