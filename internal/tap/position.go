package tap

// positionTracker turns raw events into logical coordinates and keeps the
// current and previous values. previous only moves when current changes.
type positionTracker struct {
	current  Vector2
	previous Vector2
}

func newPositionTracker() *positionTracker {
	return &positionTracker{
		current:  Unset,
		previous: Unset,
	}
}

// compute derives the coordinate carried by ev. When locked, the movement
// delta replaces the absolute position on both axes.
func (p *positionTracker) compute(ev RawEvent, locked bool) Vector2 {
	pos := p.current
	var movement Vector2

	switch e := ev.(type) {
	case *TouchEvent:
		if len(e.Touches) > 0 {
			pos = e.Touches[0].Page
		}
	case *PointerEvent:
		if e.Client != nil {
			pos = *e.Client
		}
		movement = e.Movement
	case *MouseEvent:
		if e.Client != nil {
			pos = *e.Client
		}
		movement = e.Movement
	}

	if locked {
		pos = movement
	}

	p.set(pos)
	return pos
}

func (p *positionTracker) set(pos Vector2) {
	if pos == p.current {
		return
	}
	p.previous = p.current
	p.current = pos
}
