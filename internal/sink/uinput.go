package sink

import (
	"fmt"
	"math"
	"sync"

	"github.com/ThomasT75/uinput"
	"github.com/bnema/waytap/internal/tap"
)

// virtualMouse is the subset of uinput.Mouse the sink drives.
type virtualMouse interface {
	Move(x, y int32) error
	LeftPress() error
	LeftRelease() error
	Close() error
}

// UInputSink replays gestures on a virtual uinput mouse: position changes
// become relative motion, down and up become left button press and release.
type UInputSink struct {
	mouse virtualMouse
	mu    sync.Mutex

	closed  bool
	hasLast bool
	last    tap.Vector2
	pressed bool
	// sub-pixel motion not yet sent while capture is active
	remainder tap.Vector2
}

// NewUInputSink creates the virtual device at path (usually /dev/uinput).
func NewUInputSink(path, name string) (*UInputSink, error) {
	mouse, err := uinput.CreateMouse(path, []byte(name))
	if err != nil {
		return nil, fmt.Errorf("failed to create virtual mouse: %w", err)
	}
	return newUInputSink(mouse), nil
}

func newUInputSink(m virtualMouse) *UInputSink {
	return &UInputSink{mouse: m}
}

// Handle implements Sink.
func (s *UInputSink) Handle(g tap.Gesture) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSinkClosed
	}

	move := s.moveTo
	if g.Locked {
		move = s.moveBy
	}
	if err := move(g.Position); err != nil {
		return err
	}

	switch g.Phase {
	case tap.PhaseDown:
		if s.pressed {
			return nil
		}
		s.pressed = true
		return s.mouse.LeftPress()
	case tap.PhaseUp:
		if !s.pressed {
			return nil
		}
		s.pressed = false
		return s.mouse.LeftRelease()
	}
	return nil
}

// moveTo moves the device towards an absolute position. last only advances
// by whole units actually sent, so sub-pixel motion accumulates.
func (s *UInputSink) moveTo(pos tap.Vector2) error {
	s.remainder = tap.Vector2{}
	if pos == tap.Unset {
		return nil
	}
	if !s.hasLast {
		s.hasLast = true
		s.last = pos
		return nil
	}

	dx := int32(math.Round(pos.X - s.last.X))
	dy := int32(math.Round(pos.Y - s.last.Y))
	if dx == 0 && dy == 0 {
		return nil
	}
	s.last.X += float64(dx)
	s.last.Y += float64(dy)
	return s.mouse.Move(dx, dy)
}

// moveBy sends a capture-mode movement delta. The absolute reference is
// dropped, the next unlocked gesture starts a new one.
func (s *UInputSink) moveBy(delta tap.Vector2) error {
	s.hasLast = false

	x := delta.X + s.remainder.X
	y := delta.Y + s.remainder.Y
	dx := int32(math.Round(x))
	dy := int32(math.Round(y))
	s.remainder = tap.Vector2{X: x - float64(dx), Y: y - float64(dy)}
	if dx == 0 && dy == 0 {
		return nil
	}
	return s.mouse.Move(dx, dy)
}

// Close releases a held button and destroys the device.
func (s *UInputSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	var err error
	if s.pressed {
		err = s.mouse.LeftRelease()
		s.pressed = false
	}
	if e := s.mouse.Close(); e != nil && err == nil {
		err = e
	}
	return err
}
