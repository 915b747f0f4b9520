package trace

import (
	"github.com/bnema/waytap/internal/host"
	"github.com/bnema/waytap/internal/tap"
	"github.com/charmbracelet/log"
)

// Result describes what a single step did.
type Result struct {
	Index int
	Step  Step
	// Delivered is the number of surface listeners that received the event.
	Delivered int
	// Err is set when a lock action was rejected immediately.
	Err error
}

// Summary aggregates a replay.
type Summary struct {
	Steps     int
	Delivered int
	Dropped   int
	Rejected  int
}

// NewHost builds the replay host declared by the trace.
func NewHost(tr *Trace, logger *log.Logger) *host.Host {
	h := host.New(tr.Host.Capabilities(), logger)
	h.DenyPointerLock = tr.Host.DenyLock
	return h
}

// Replay runs every step against engine t bound to surface s of host h. after
// is called once per step, after the step took effect.
func Replay(tr *Trace, t *tap.Tap, h *host.Host, s *host.Surface, after func(Result)) (Summary, error) {
	var sum Summary
	for i, step := range tr.Steps {
		res := Result{Index: i, Step: step}

		switch step.Action {
		case ActionDispatch:
			ev, err := step.Raw()
			if err != nil {
				return sum, err
			}
			res.Delivered = s.Dispatch(ev)
			sum.Delivered += res.Delivered
			if res.Delivered == 0 {
				sum.Dropped++
			}
		case ActionRequestLock:
			_, res.Err = t.PointerLock().Request()
		case ActionExitLock:
			_, res.Err = t.PointerLock().Exit()
		case ActionRevokeLock:
			h.RevokePointerLock()
		case ActionPause:
			t.Pause()
		case ActionResume:
			t.Resume()
		}
		if res.Err != nil {
			sum.Rejected++
		}

		sum.Steps++
		if after != nil {
			after(res)
		}
	}
	return sum, nil
}
