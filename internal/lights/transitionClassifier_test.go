package lights_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wheelibin/glow/internal/lights"
)

func boolPtr(v bool) *bool               { return &v }
func intPtr(v int) *int                  { return &v }
func floatPtr(v float64) *float64        { return &v }
func modePtr(v lights.Mode) *lights.Mode { return &v }

func Test_Classify(t *testing.T) {

	tests := []struct {
		name     string
		state    func() *lights.LightState
		expected lights.UpdateType
	}{
		{
			name:     "nothing pending: unchanged",
			state:    func() *lights.LightState { return lights.NewLightState() },
			expected: lights.UpdateUnchanged,
		},
		{
			name: "re-requesting the current on state: redundant",
			state: func() *lights.LightState {
				s := lights.NewLightState()
				s.Pending.On = boolPtr(true)
				return s
			},
			expected: lights.UpdateRedundant,
		},
		{
			name: "only the power state changed: toggle",
			state: func() *lights.LightState {
				s := lights.NewLightState()
				s.Pending.On = boolPtr(false)
				return s
			},
			expected: lights.UpdateToggle,
		},
		{
			name: "a new hue: full update",
			state: func() *lights.LightState {
				s := lights.NewLightState()
				s.Pending.Hue = floatPtr(120)
				s.Pending.Mode = modePtr(lights.ColourMode)
				return s
			},
			expected: lights.UpdateFull,
		},
		{
			name: "hue and power pending together: full update wins",
			state: func() *lights.LightState {
				s := lights.NewLightState()
				s.Pending.Hue = floatPtr(120)
				s.Pending.Mode = modePtr(lights.ColourMode)
				s.Pending.On = boolPtr(false)
				return s
			},
			expected: lights.UpdateFull,
		},
		{
			name: "a colour temperature: full update",
			state: func() *lights.LightState {
				s := lights.NewLightState()
				s.Pending.TemperatureMirek = intPtr(300)
				s.Pending.Mode = modePtr(lights.TemperatureMode)
				return s
			},
			expected: lights.UpdateFull,
		},
		{
			name: "every requested value already applied: redundant",
			state: func() *lights.LightState {
				s := lights.NewLightState()
				s.Pending.Hue = floatPtr(s.HSL.Hue)
				s.Pending.Saturation = floatPtr(s.HSL.Saturation)
				s.Pending.Mode = modePtr(s.Mode)
				s.Pending.On = boolPtr(s.On)
				return s
			},
			expected: lights.UpdateRedundant,
		},
		{
			name: "brightness matching the derived brightness: redundant",
			state: func() *lights.LightState {
				s := lights.NewLightState()
				s.Pending.Brightness = intPtr(s.Brightness)
				s.Pending.Luminance = floatPtr(s.HSL.Luminance)
				return s
			},
			expected: lights.UpdateRedundant,
		},
		{
			name: "mode change alone: full update",
			state: func() *lights.LightState {
				s := lights.NewLightState()
				s.Pending.Mode = modePtr(lights.WhiteMode)
				return s
			},
			expected: lights.UpdateFull,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, lights.Classify(test.state()))
		})
	}
}
