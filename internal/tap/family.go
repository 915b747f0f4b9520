package tap

// Family identifies one of the input event families a host can fire.
// The numeric order is the arbitration priority: lower values win.
type Family uint8

const (
	// FamilyPointer is the unified pointer events family.
	FamilyPointer Family = iota
	// FamilyTouch is the touch events family.
	FamilyTouch
	// FamilyMouse is the legacy mouse events family.
	FamilyMouse
)

// Families lists every family in priority order.
var Families = [...]Family{FamilyPointer, FamilyTouch, FamilyMouse}

// String returns the lowercase family name.
func (f Family) String() string {
	switch f {
	case FamilyPointer:
		return "pointer"
	case FamilyTouch:
		return "touch"
	case FamilyMouse:
		return "mouse"
	default:
		return "unknown"
	}
}

// ParseFamily is the inverse of Family.String.
func ParseFamily(s string) (Family, bool) {
	for _, f := range Families {
		if f.String() == s {
			return f, true
		}
	}
	return 0, false
}

// Phase is the logical step of a gesture.
type Phase uint8

const (
	PhaseDown Phase = iota
	PhaseMove
	PhaseUp
)

func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	default:
		return "unknown"
	}
}
