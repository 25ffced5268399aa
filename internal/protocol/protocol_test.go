package protocol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wheelibin/glow/internal/colour"
	"github.com/wheelibin/glow/internal/protocol"
)

func Test_PowerFrame(t *testing.T) {

	t.Run("on", func(t *testing.T) {
		assert.Equal(t, []byte{0x71, 0x23, 0x0F}, protocol.PowerFrame(true))
	})

	t.Run("off", func(t *testing.T) {
		assert.Equal(t, []byte{0x71, 0x24, 0x0F}, protocol.PowerFrame(false))
	})
}

func Test_ColourFrame(t *testing.T) {

	tests := []struct {
		name       string
		rgb        colour.RGB
		brightness int
		mask       protocol.Mask
		expected   []byte
	}{
		{
			name:       "full brightness passes channels through",
			rgb:        colour.RGB{Red: 255, Green: 128, Blue: 0},
			brightness: 100,
			mask:       protocol.MaskColour,
			expected:   []byte{0x31, 255, 128, 0, 0x00, 0xF0, 0x0F},
		},
		{
			name:       "channels are scaled by brightness",
			rgb:        colour.RGB{Red: 255, Green: 100, Blue: 50},
			brightness: 50,
			mask:       protocol.MaskColour,
			expected:   []byte{0x31, 128, 50, 25, 0x00, 0xF0, 0x0F},
		},
		{
			name:       "zero brightness blanks every channel",
			rgb:        colour.RGB{Red: 255, Green: 255, Blue: 255},
			brightness: 0,
			mask:       protocol.MaskColour,
			expected:   []byte{0x31, 0, 0, 0, 0x00, 0xF0, 0x0F},
		},
		{
			name:       "out of range channels are clamped",
			rgb:        colour.RGB{Red: 300, Green: -20, Blue: 255},
			brightness: 100,
			mask:       protocol.MaskWhite,
			expected:   []byte{0x31, 255, 0, 255, 0x00, 0x0F, 0x0F},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, protocol.ColourFrame(test.rgb, test.brightness, test.mask))
		})
	}
}

func Test_Checksum(t *testing.T) {

	t.Run("sum of preceding bytes mod 256", func(t *testing.T) {
		frame := protocol.ColourFrame(colour.RGB{Red: 200, Green: 200, Blue: 200}, 100, protocol.MaskColour)
		framed := protocol.AppendChecksum(frame)

		assert.Len(t, framed, 8)

		var sum int
		for _, b := range framed[:7] {
			sum += int(b)
		}
		assert.Equal(t, byte(sum%256), framed[7])
	})
}

// builds a valid 14-byte state response for tests
func stateResponse(power byte, r, g, b, warm, cold byte) []byte {
	raw := []byte{0x81, 0x44, power, 0x61, 0x00, 0x00, r, g, b, warm, 0x04, cold, 0x00}
	return protocol.AppendChecksum(raw)
}

func Test_ParseStateResponse(t *testing.T) {

	t.Run("decodes an on bulb in colour mode", func(t *testing.T) {
		state, err := protocol.ParseStateResponse(stateResponse(0x23, 255, 0, 64, 0, 0))

		assert.NoError(t, err)
		assert.True(t, state.On)
		assert.Equal(t, protocol.ModeColour, state.Mode)
		assert.Equal(t, colour.RGB{Red: 255, Green: 0, Blue: 64}, state.RGB)
	})

	t.Run("decodes an off bulb", func(t *testing.T) {
		state, err := protocol.ParseStateResponse(stateResponse(0x24, 0, 0, 0, 0, 0))

		assert.NoError(t, err)
		assert.False(t, state.On)
	})

	t.Run("white channels only means a white mode", func(t *testing.T) {
		state, err := protocol.ParseStateResponse(stateResponse(0x23, 0, 0, 0, 255, 0))

		assert.NoError(t, err)
		assert.Equal(t, protocol.ModeWhite, state.Mode)
		assert.Equal(t, colour.WhiteChannels{Warm: 255, Cold: 0}, state.White)
	})

	t.Run("both white banks lit means temperature mode", func(t *testing.T) {
		state, err := protocol.ParseStateResponse(stateResponse(0x23, 0, 0, 0, 128, 128))

		assert.NoError(t, err)
		assert.Equal(t, protocol.ModeTemperature, state.Mode)
	})

	t.Run("rejects a short response", func(t *testing.T) {
		_, err := protocol.ParseStateResponse([]byte{0x81, 0x44})
		assert.Error(t, err)
	})

	t.Run("rejects a bad header", func(t *testing.T) {
		raw := stateResponse(0x23, 0, 0, 0, 0, 0)
		raw[0] = 0x99
		_, err := protocol.ParseStateResponse(raw)
		assert.Error(t, err)
	})

	t.Run("rejects a bad checksum", func(t *testing.T) {
		raw := stateResponse(0x23, 0, 0, 0, 0, 0)
		raw[13] ^= 0xFF
		_, err := protocol.ParseStateResponse(raw)
		assert.Error(t, err)
	})
}
