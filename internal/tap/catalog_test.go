package tap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func families(ds []SourceDescriptor) []Family {
	var out []Family
	for _, d := range ds {
		out = append(out, d.Family)
	}
	return out
}

func TestCatalog_Supported(t *testing.T) {
	tests := []struct {
		name string
		caps Capabilities
		want []Family
	}{
		{
			name: "everything",
			caps: Capabilities{PointerEvents: true, TouchEvents: true, MaxTouchPoints: 5, MouseEvents: true},
			want: []Family{FamilyPointer, FamilyTouch, FamilyMouse},
		},
		{
			name: "touch without touch points",
			caps: Capabilities{PointerEvents: true, TouchEvents: true, MaxTouchPoints: 0, MouseEvents: true},
			want: []Family{FamilyPointer, FamilyMouse},
		},
		{
			name: "mouse only",
			caps: Capabilities{MouseEvents: true},
			want: []Family{FamilyMouse},
		},
		{
			name: "nothing",
			caps: Capabilities{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := families(DefaultCatalog().Supported(tt.caps))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalog_WithEnabled(t *testing.T) {
	caps := Capabilities{PointerEvents: true, TouchEvents: true, MaxTouchPoints: 1, MouseEvents: true}

	c := DefaultCatalog().WithEnabled(FamilyMouse, FamilyPointer)
	assert.Equal(t, []Family{FamilyPointer, FamilyMouse}, families(c.Supported(caps)), "priority order is kept")

	assert.Len(t, DefaultCatalog().Supported(caps), 3, "receiver is untouched")
}

func TestCatalog_Lookup(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		name   string
		family Family
		phase  Phase
	}{
		{"pointerdown", FamilyPointer, PhaseDown},
		{"pointermove", FamilyPointer, PhaseMove},
		{"touchstart", FamilyTouch, PhaseDown},
		{"touchend", FamilyTouch, PhaseUp},
		{"mousemove", FamilyMouse, PhaseMove},
		{"mouseup", FamilyMouse, PhaseUp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, p, ok := c.Lookup(tt.name)
			assert.True(t, ok)
			assert.Equal(t, tt.family, f)
			assert.Equal(t, tt.phase, p)
		})
	}

	_, _, ok := c.Lookup("click")
	assert.False(t, ok)
}

func TestParseFamily(t *testing.T) {
	for _, f := range Families {
		got, ok := ParseFamily(f.String())
		assert.True(t, ok)
		assert.Equal(t, f, got)
	}
	_, ok := ParseFamily("stylus")
	assert.False(t, ok)
}
