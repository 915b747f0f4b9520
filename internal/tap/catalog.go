package tap

// SourceDescriptor describes one input family as seen on a particular host.
type SourceDescriptor struct {
	Family    Family
	Supported bool
	Down      string
	Move      string
	Up        string
}

// EventName returns the host event name used for phase p.
func (d SourceDescriptor) EventName(p Phase) string {
	switch p {
	case PhaseDown:
		return d.Down
	case PhaseMove:
		return d.Move
	default:
		return d.Up
	}
}

// EventNames returns the down, move and up names.
func (d SourceDescriptor) EventNames() [3]string {
	return [3]string{d.Down, d.Move, d.Up}
}

type catalogEntry struct {
	family  Family
	enabled bool
	detect  func(Capabilities) bool
	down    string
	move    string
	up      string
}

// Catalog is the ordered table of candidate input families.
type Catalog struct {
	entries []catalogEntry
}

// DefaultCatalog returns the pointer, touch, mouse catalog with every family
// enabled.
func DefaultCatalog() *Catalog {
	return &Catalog{entries: []catalogEntry{
		{
			family:  FamilyPointer,
			enabled: true,
			detect:  func(c Capabilities) bool { return c.PointerEvents },
			down:    "pointerdown",
			move:    "pointermove",
			up:      "pointerup",
		},
		{
			family:  FamilyTouch,
			enabled: true,
			detect:  func(c Capabilities) bool { return c.TouchEvents && c.MaxTouchPoints >= 1 },
			down:    "touchstart",
			move:    "touchmove",
			up:      "touchend",
		},
		{
			family:  FamilyMouse,
			enabled: true,
			detect:  func(c Capabilities) bool { return c.MouseEvents },
			down:    "mousedown",
			move:    "mousemove",
			up:      "mouseup",
		},
	}}
}

// WithEnabled returns a copy of the catalog in which only the given families
// are enabled. Priority order is unchanged.
func (c *Catalog) WithEnabled(families ...Family) *Catalog {
	entries := make([]catalogEntry, len(c.entries))
	copy(entries, c.entries)
	for i := range entries {
		entries[i].enabled = false
		for _, f := range families {
			if entries[i].family == f {
				entries[i].enabled = true
			}
		}
	}
	return &Catalog{entries: entries}
}

// Describe evaluates every entry against caps, in priority order.
func (c *Catalog) Describe(caps Capabilities) []SourceDescriptor {
	out := make([]SourceDescriptor, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, SourceDescriptor{
			Family:    e.family,
			Supported: e.enabled && e.detect(caps),
			Down:      e.down,
			Move:      e.move,
			Up:        e.up,
		})
	}
	return out
}

// Supported returns the descriptors that are enabled and detected on caps,
// in priority order.
func (c *Catalog) Supported(caps Capabilities) []SourceDescriptor {
	var out []SourceDescriptor
	for _, d := range c.Describe(caps) {
		if d.Supported {
			out = append(out, d)
		}
	}
	return out
}

// Lookup resolves a host event name to its family and phase.
func (c *Catalog) Lookup(name string) (Family, Phase, bool) {
	for _, e := range c.entries {
		switch name {
		case e.down:
			return e.family, PhaseDown, true
		case e.move:
			return e.family, PhaseMove, true
		case e.up:
			return e.family, PhaseUp, true
		}
	}
	return 0, 0, false
}

// Descriptor returns the entry for f regardless of support.
func (c *Catalog) Descriptor(f Family) (SourceDescriptor, bool) {
	for _, e := range c.entries {
		if e.family == f {
			return SourceDescriptor{Family: f, Down: e.down, Move: e.move, Up: e.up}, true
		}
	}
	return SourceDescriptor{}, false
}
