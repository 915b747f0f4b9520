// Package sink forwards normalised gestures to consumers outside the engine.
package sink

import (
	"errors"

	"github.com/bnema/waytap/internal/events"
	"github.com/bnema/waytap/internal/tap"
	"github.com/charmbracelet/log"
)

// ErrSinkClosed is returned when a gesture reaches a closed sink
var ErrSinkClosed = errors.New("sink is closed")

// Sink consumes gestures.
type Sink interface {
	Handle(g tap.Gesture) error
	Close() error
}

// Attach subscribes s to every phase of t. Handler errors are logged and do
// not stop delivery. The returned subscriptions detach the sink again.
func Attach(t *tap.Tap, s Sink, logger *log.Logger) []events.Subscription {
	forward := func(g tap.Gesture) {
		if err := s.Handle(g); err != nil {
			logger.Warn("sink failed to handle gesture", "phase", g.Phase, "err", err)
		}
	}
	return []events.Subscription{
		t.OnDown(forward),
		t.OnMove(forward),
		t.OnUp(forward),
	}
}

// LogSink writes one structured log line per gesture.
type LogSink struct {
	log    *log.Logger
	counts map[tap.Phase]int
}

// NewLogSink creates a sink logging at info level on logger.
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{
		log:    logger,
		counts: make(map[tap.Phase]int),
	}
}

// Handle implements Sink.
func (s *LogSink) Handle(g tap.Gesture) error {
	s.counts[g.Phase]++

	keyvals := []interface{}{
		"event", g.Event.Name(),
		"x", g.Position.X,
		"y", g.Position.Y,
	}
	if g.Dragging != nil {
		keyvals = append(keyvals, "dragging", *g.Dragging)
	}
	s.log.Info(g.Phase.String(), keyvals...)
	return nil
}

// Count returns how many gestures of phase p were handled.
func (s *LogSink) Count(p tap.Phase) int {
	return s.counts[p]
}

// Close implements Sink.
func (s *LogSink) Close() error {
	return nil
}
