package tap

import "fmt"

// Vector2 is a 2-D coordinate or delta.
type Vector2 struct {
	X float64
	Y float64
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Unset is the initial value of the tracked positions.
var Unset = Vector2{X: -1, Y: -1}

// Point returns a pointer to a new Vector2, for optional coordinate fields.
func Point(x, y float64) *Vector2 {
	return &Vector2{X: x, Y: y}
}

// RawEvent is an event as fired by the host. It is one of *PointerEvent,
// *TouchEvent or *MouseEvent.
type RawEvent interface {
	// Name is the host event name the event was fired under, e.g. "pointerdown".
	Name() string

	rawEvent()
}

// PointerEvent is a raw event of the pointer family.
type PointerEvent struct {
	Type        string
	PointerID   int
	PointerType string
	// Client is nil when the host supplied no client coordinates.
	Client *Vector2
	// Movement is the relative motion since the previous event.
	Movement Vector2
}

// Name implements RawEvent.
func (e *PointerEvent) Name() string { return e.Type }
func (*PointerEvent) rawEvent()      {}

// Touch is a single contact point of a touch event.
type Touch struct {
	Identifier int
	Page       Vector2
}

// TouchEvent is a raw event of the touch family. Touches holds the contacts
// still on the surface, so it is empty on the final touchend.
type TouchEvent struct {
	Type    string
	Touches []Touch
}

// Name implements RawEvent.
func (e *TouchEvent) Name() string { return e.Type }
func (*TouchEvent) rawEvent()      {}

// MouseEvent is a raw event of the mouse family.
type MouseEvent struct {
	Type    string
	Buttons int
	// Client is nil when the host supplied no client coordinates.
	Client   *Vector2
	Movement Vector2
}

// Name implements RawEvent.
func (e *MouseEvent) Name() string { return e.Type }
func (*MouseEvent) rawEvent()      {}
