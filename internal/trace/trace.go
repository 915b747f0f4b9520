// Package trace loads scripted sequences of raw host events and replays them
// through an in-process host.
package trace

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bnema/waytap/internal/tap"
	"github.com/spf13/viper"
)

// Host actions a step can perform instead of dispatching an event.
const (
	ActionDispatch    = ""
	ActionRequestLock = "request_lock"
	ActionExitLock    = "exit_lock"
	ActionRevokeLock  = "revoke_lock"
	ActionPause       = "pause"
	ActionResume      = "resume"
)

var (
	// ErrUnknownEvent is returned for an event name outside the catalog
	ErrUnknownEvent = errors.New("unknown event name")
	// ErrUnknownAction is returned for an unsupported step action
	ErrUnknownAction = errors.New("unknown action")
)

// HostSpec declares the capabilities of the replay host.
type HostSpec struct {
	PointerEvents  bool `mapstructure:"pointer_events"`
	TouchEvents    bool `mapstructure:"touch_events"`
	MaxTouchPoints int  `mapstructure:"max_touch_points"`
	MouseEvents    bool `mapstructure:"mouse_events"`
	PointerLock    bool `mapstructure:"pointer_lock"`
	DenyLock       bool `mapstructure:"deny_lock"`
}

// Capabilities returns the declared capabilities in engine form.
func (h HostSpec) Capabilities() tap.Capabilities {
	return tap.Capabilities{
		PointerEvents:  h.PointerEvents,
		TouchEvents:    h.TouchEvents,
		MaxTouchPoints: h.MaxTouchPoints,
		MouseEvents:    h.MouseEvents,
		PointerLock:    h.PointerLock,
	}
}

// Contact is one touch point of a touch step.
type Contact struct {
	ID int     `mapstructure:"id"`
	X  float64 `mapstructure:"x"`
	Y  float64 `mapstructure:"y"`
}

// Step is one entry of a trace.
type Step struct {
	Action string `mapstructure:"action"`
	Name   string `mapstructure:"name"`

	// X and Y are the client coordinates; leaving either out models an event
	// without coordinates.
	X  *float64 `mapstructure:"x"`
	Y  *float64 `mapstructure:"y"`
	DX float64  `mapstructure:"dx"`
	DY float64  `mapstructure:"dy"`

	PointerType string    `mapstructure:"pointer_type"`
	Buttons     int       `mapstructure:"buttons"`
	Touches     []Contact `mapstructure:"touches"`
}

// Trace is a decoded trace file.
type Trace struct {
	Host  HostSpec `mapstructure:"host"`
	Steps []Step   `mapstructure:"events"`
}

// Load reads a trace from a .toml, .yaml or .json file.
func Load(path string) (*Trace, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read trace %s: %w", filepath.Base(path), err)
	}
	return decode(v)
}

// Parse reads a trace of the given format ("toml", "yaml" or "json") from r.
func Parse(r io.Reader, format string) (*Trace, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("failed to parse %s trace: %w", format, err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Trace, error) {
	tr := &Trace{}
	if err := v.Unmarshal(tr); err != nil {
		return nil, fmt.Errorf("unable to decode trace: %w", err)
	}
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	return tr, nil
}

// Validate checks every step against the default catalog.
func (tr *Trace) Validate() error {
	catalog := tap.DefaultCatalog()
	for i, s := range tr.Steps {
		switch s.Action {
		case ActionDispatch:
			if _, _, ok := catalog.Lookup(s.Name); !ok {
				return fmt.Errorf("step %d: %w: %q", i, ErrUnknownEvent, s.Name)
			}
		case ActionRequestLock, ActionExitLock, ActionRevokeLock, ActionPause, ActionResume:
		default:
			return fmt.Errorf("step %d: %w: %q", i, ErrUnknownAction, s.Action)
		}
	}
	return nil
}

// Raw resolves the step into the raw event variant of its family.
func (s Step) Raw() (tap.RawEvent, error) {
	family, _, ok := tap.DefaultCatalog().Lookup(s.Name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, s.Name)
	}

	var client *tap.Vector2
	if s.X != nil && s.Y != nil {
		client = tap.Point(*s.X, *s.Y)
	}
	movement := tap.Vector2{X: s.DX, Y: s.DY}

	switch family {
	case tap.FamilyPointer:
		return &tap.PointerEvent{Type: s.Name, PointerType: s.PointerType, Client: client, Movement: movement}, nil
	case tap.FamilyTouch:
		touches := make([]tap.Touch, 0, len(s.Touches))
		for _, c := range s.Touches {
			touches = append(touches, tap.Touch{Identifier: c.ID, Page: tap.Vector2{X: c.X, Y: c.Y}})
		}
		return &tap.TouchEvent{Type: s.Name, Touches: touches}, nil
	default:
		return &tap.MouseEvent{Type: s.Name, Buttons: s.Buttons, Client: client, Movement: movement}, nil
	}
}

// String renders the step for logs.
func (s Step) String() string {
	if s.Action != ActionDispatch {
		return strings.ReplaceAll(s.Action, "_", " ")
	}
	return s.Name
}
