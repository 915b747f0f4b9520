package host

import (
	"github.com/bnema/waytap/internal/tap"
	"github.com/charmbracelet/log"
)

// Surface is a named event target. Listeners are keyed by event name and
// identity.
type Surface struct {
	name      string
	log       *log.Logger
	listeners map[string][]tap.Listener

	added   map[string]int
	removed map[string]int
}

func newSurface(name string, logger *log.Logger) *Surface {
	return &Surface{
		name:      name,
		log:       logger,
		listeners: make(map[string][]tap.Listener),
		added:     make(map[string]int),
		removed:   make(map[string]int),
	}
}

// Name returns the surface name.
func (s *Surface) Name() string {
	return s.name
}

// AddEventListener implements tap.Surface. Adding the same listener twice
// for a name is ignored.
func (s *Surface) AddEventListener(name string, l tap.Listener) {
	for _, existing := range s.listeners[name] {
		if existing == l {
			return
		}
	}
	s.listeners[name] = append(s.listeners[name], l)
	s.added[name]++
}

// RemoveEventListener implements tap.Surface. Removing an unknown listener
// is ignored.
func (s *Surface) RemoveEventListener(name string, l tap.Listener) {
	current := s.listeners[name]
	for i, existing := range current {
		if existing == l {
			s.listeners[name] = append(current[:i:i], current[i+1:]...)
			s.removed[name]++
			if len(s.listeners[name]) == 0 {
				delete(s.listeners, name)
			}
			return
		}
	}
}

// Dispatch delivers ev to the listeners registered for its name and returns
// the number of listeners called. A listener removed by an earlier listener
// during the same dispatch is skipped.
func (s *Surface) Dispatch(ev tap.RawEvent) int {
	snapshot := append([]tap.Listener(nil), s.listeners[ev.Name()]...)
	delivered := 0
	for _, l := range snapshot {
		if !s.has(ev.Name(), l) {
			continue
		}
		l.HandleEvent(ev)
		delivered++
	}
	if delivered == 0 {
		s.log.Debug("event had no listener", "surface", s.name, "event", ev.Name())
	}
	return delivered
}

func (s *Surface) has(name string, l tap.Listener) bool {
	for _, existing := range s.listeners[name] {
		if existing == l {
			return true
		}
	}
	return false
}

// Listening reports whether any listener is registered for name.
func (s *Surface) Listening(name string) bool {
	return len(s.listeners[name]) > 0
}

// ListenerCount returns the number of listeners for name.
func (s *Surface) ListenerCount(name string) int {
	return len(s.listeners[name])
}

// Added returns how many registrations were made for name.
func (s *Surface) Added(name string) int {
	return s.added[name]
}

// Removed returns how many registrations were removed for name.
func (s *Surface) Removed(name string) int {
	return s.removed[name]
}
