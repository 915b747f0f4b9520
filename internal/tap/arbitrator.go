package tap

import "github.com/charmbracelet/log"

// arbitrator owns the listener registrations on the bound surface and
// decides which family is authoritative.
type arbitrator struct {
	catalog  *Catalog
	surface  Surface
	listener Listener
	log      *log.Logger

	// active: listeners currently registered. seen: a down of the family
	// has been observed. A family that leaves active never re-enters it.
	active  [len(Families)]bool
	seen    [len(Families)]bool
	retired [len(Families)]bool
}

func newArbitrator(catalog *Catalog, surface Surface, l Listener, logger *log.Logger) *arbitrator {
	return &arbitrator{
		catalog:  catalog,
		surface:  surface,
		listener: l,
		log:      logger,
	}
}

// attach registers every supported family on the surface.
func (a *arbitrator) attach(supported []SourceDescriptor) {
	for _, d := range supported {
		if a.active[d.Family] || a.retired[d.Family] {
			continue
		}
		if a.surface != nil {
			for _, name := range d.EventNames() {
				a.surface.AddEventListener(name, a.listener)
			}
		}
		a.active[d.Family] = true
		a.log.Debug("attached input family", "family", d.Family, "events", d.EventNames())
	}
}

// detach unregisters f. It is a no-op if f is not active.
func (a *arbitrator) detach(f Family) {
	if !a.active[f] {
		return
	}
	d, ok := a.catalog.Descriptor(f)
	if !ok {
		return
	}
	if a.surface == nil {
		a.log.Warn("no surface bound, nothing to detach", "family", f)
	} else {
		for _, name := range d.EventNames() {
			a.surface.RemoveEventListener(name, a.listener)
		}
	}
	a.active[f] = false
	a.retired[f] = true
	a.log.Debug("detached input family", "family", f)
}

// detachAll detaches every active family.
func (a *arbitrator) detachAll() {
	for _, f := range Families {
		a.detach(f)
	}
}

// evaluateDown applies the deduplication policy to a down event and reports
// whether it should be emitted. Touch is retired once pointer has been seen;
// mouse is retired once pointer or touch has been seen.
func (a *arbitrator) evaluateDown(ev RawEvent) bool {
	family, phase, ok := a.catalog.Lookup(ev.Name())
	if !ok || phase != PhaseDown {
		return true
	}
	a.seen[family] = true

	switch {
	case family == FamilyTouch && a.active[FamilyTouch] && a.seen[FamilyPointer]:
		a.log.Debug("touch duplicates pointer, retiring", "event", ev.Name())
		a.detach(FamilyTouch)
		return false
	case family == FamilyMouse && a.active[FamilyMouse] && (a.seen[FamilyPointer] || a.seen[FamilyTouch]):
		a.log.Debug("mouse duplicates a higher family, retiring", "event", ev.Name())
		a.detach(FamilyMouse)
		return false
	}
	return true
}

func (a *arbitrator) isActive(f Family) bool { return a.active[f] }
func (a *arbitrator) isSeen(f Family) bool   { return a.seen[f] }
