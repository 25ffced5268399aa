package lights

import (
	"github.com/wheelibin/glow/internal/colour"
	"github.com/wheelibin/glow/internal/protocol"
)

type Mode int

const (
	ColourMode Mode = iota
	WhiteMode
	TemperatureMode
)

type HSL struct {
	Hue        float64
	Saturation float64
	Luminance  float64
}

// PendingTarget holds the attribute changes requested since the last commit.
// nil means "no change requested" - a set field always wins over the cached
// value, even when it equals zero.
type PendingTarget struct {
	Hue              *float64
	Saturation       *float64
	Luminance        *float64
	Brightness       *int
	TemperatureMirek *int
	On               *bool
	Mode             *Mode
}

func (p PendingTarget) Empty() bool {
	return p.Hue == nil && p.Saturation == nil && p.Luminance == nil &&
		p.Brightness == nil && p.TemperatureMirek == nil && p.On == nil && p.Mode == nil
}

// PowerOnly reports whether the only requested change is the on/off state
func (p PendingTarget) PowerOnly() bool {
	return p.On != nil &&
		p.Hue == nil && p.Saturation == nil && p.Luminance == nil &&
		p.Brightness == nil && p.TemperatureMirek == nil && p.Mode == nil
}

// LightState is the cached state of a single bulb. The authoritative fields
// (On, Mode, RGB, White, TemperatureMirek) are only overwritten from a
// genuine device read; callers express intent through Pending.
type LightState struct {
	On               bool
	Mode             Mode
	HSL              HSL
	RGB              colour.RGB
	White            colour.WhiteChannels
	TemperatureMirek *int

	// derived from Luminance and On, never authoritative on its own
	Brightness int

	Pending PendingTarget

	snapshot *HSL
}

func NewLightState() *LightState {
	state := &LightState{
		On:   true,
		Mode: ColourMode,
		HSL:  HSL{Hue: 0, Saturation: 0, Luminance: 50},
	}
	state.RefreshBrightness()
	return state
}

// RefreshBrightness recomputes the derived brightness after a state refresh
func (s *LightState) RefreshBrightness() {
	if s.On {
		s.Brightness = int(colour.Clamp(s.HSL.Luminance*2, 0, 100))
	} else {
		s.Brightness = 0
	}
}

// SaveSnapshot remembers the current colour so an effect can restore it
func (s *LightState) SaveSnapshot() {
	hsl := s.HSL
	s.snapshot = &hsl
}

func (s *LightState) Snapshot() (HSL, bool) {
	if s.snapshot == nil {
		return HSL{}, false
	}
	return *s.snapshot, true
}

func modeFromDevice(mode protocol.OperatingMode) Mode {
	switch mode {
	case protocol.ModeWhite:
		return WhiteMode
	case protocol.ModeTemperature:
		return TemperatureMode
	default:
		return ColourMode
	}
}
