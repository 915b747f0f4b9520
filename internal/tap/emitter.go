package tap

import "github.com/bnema/waytap/internal/events"

// Gesture is the normalised notification delivered to subscribers.
type Gesture struct {
	Phase    Phase
	Position Vector2
	Event    RawEvent
	// Dragging is set on move gestures only and reports whether a down was
	// outstanding when the move arrived.
	Dragging *bool
	// Locked reports whether pointer capture was active, in which case
	// Position is the movement delta rather than a coordinate.
	Locked bool
}

// IsDragging reports the drag flag, false for non-move gestures.
func (g Gesture) IsDragging() bool {
	return g.Dragging != nil && *g.Dragging
}

// Callback receives gestures.
type Callback func(Gesture)

// gestureEmitter holds the up/down state and the pause gate and publishes
// gestures to subscribers.
type gestureEmitter struct {
	events  *events.Emitter[Gesture]
	tracker *positionTracker
	locked  func() bool

	isDown   bool
	isPaused bool
}

func newGestureEmitter(tracker *positionTracker, locked func() bool) *gestureEmitter {
	return &gestureEmitter{
		events:  events.NewEmitter[Gesture](),
		tracker: tracker,
		locked:  locked,
	}
}

// on subscribes cb to p; delivery is suppressed while paused.
func (g *gestureEmitter) on(p Phase, cb Callback) events.Subscription {
	return g.events.On(p.String(), func(ev Gesture) {
		if !g.isPaused {
			cb(ev)
		}
	})
}

// once subscribes cb to the next gesture of phase p, paused or not.
func (g *gestureEmitter) once(p Phase, cb Callback) events.Subscription {
	return g.events.Once(p.String(), func(ev Gesture) {
		cb(ev)
	})
}

func (g *gestureEmitter) notifyDown(ev RawEvent) {
	g.isDown = true
	g.events.Emit(PhaseDown.String(), g.gesture(PhaseDown, ev))
}

func (g *gestureEmitter) notifyMove(ev RawEvent) {
	dragging := g.isDown
	gesture := g.gesture(PhaseMove, ev)
	gesture.Dragging = &dragging
	g.events.Emit(PhaseMove.String(), gesture)
}

func (g *gestureEmitter) notifyUp(ev RawEvent) {
	g.isDown = false
	g.events.Emit(PhaseUp.String(), g.gesture(PhaseUp, ev))
}

func (g *gestureEmitter) gesture(p Phase, ev RawEvent) Gesture {
	locked := g.locked()
	return Gesture{
		Phase:    p,
		Position: g.tracker.compute(ev, locked),
		Event:    ev,
		Locked:   locked,
	}
}

func (g *gestureEmitter) clear() {
	g.events.RemoveAllListeners()
}
