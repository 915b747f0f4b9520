package ui

import (
	"strings"
	"testing"

	"github.com/bnema/waytap/internal/tap"
)

func TestFormatControl(t *testing.T) {
	tests := []struct {
		name string
		key  string
		desc string
	}{
		{name: "basic control", key: "q", desc: "quit"},
		{name: "pause toggle", key: "p", desc: "pause"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatControl(tt.key, tt.desc)
			if !strings.Contains(got, tt.key) {
				t.Errorf("FormatControl() missing key %q", tt.key)
			}
			if !strings.Contains(got, tt.desc) {
				t.Errorf("FormatControl() missing description %q", tt.desc)
			}
		})
	}
}

func TestFormatPhase(t *testing.T) {
	for _, p := range []tap.Phase{tap.PhaseDown, tap.PhaseMove, tap.PhaseUp} {
		if got := FormatPhase(p); !strings.Contains(got, p.String()) {
			t.Errorf("FormatPhase(%v) = %q", p, got)
		}
	}
}

func TestFormatFamily(t *testing.T) {
	tests := []struct {
		name   string
		active bool
		seen   bool
		icon   string
	}{
		{name: "active", active: true, icon: IconActive},
		{name: "retired", active: false, icon: IconRetired},
		{name: "seen", active: true, seen: true, icon: IconSeen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatFamily(tap.FamilyTouch, tt.active, tt.seen)
			if !strings.Contains(got, "touch") {
				t.Errorf("FormatFamily() missing family name: %q", got)
			}
			if !strings.Contains(got, tt.icon) {
				t.Errorf("FormatFamily() missing icon %q: %q", tt.icon, got)
			}
		})
	}
}

func TestFormatResult(t *testing.T) {
	if got := FormatResult(true, "saved"); !strings.Contains(got, IconSuccess) || !strings.Contains(got, "saved") {
		t.Errorf("FormatResult(true) = %q", got)
	}
	if got := FormatResult(false, "failed"); !strings.Contains(got, IconError) {
		t.Errorf("FormatResult(false) = %q", got)
	}
}

func TestCreateSeparator(t *testing.T) {
	tests := []struct {
		name  string
		width int
		char  string
		count int
	}{
		{name: "default char", width: 10, char: "", count: 10},
		{name: "custom char", width: 5, char: "=", count: 5},
		{name: "zero width", width: 0, char: "-", count: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CreateSeparator(tt.width, tt.char)
			char := tt.char
			if char == "" {
				char = "─"
			}
			if n := strings.Count(got, char); n != tt.count {
				t.Errorf("CreateSeparator() has %d %q, want %d", n, char, tt.count)
			}
		})
	}
}
