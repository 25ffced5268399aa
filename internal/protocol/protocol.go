// Package protocol builds and parses the binary command frames understood by
// Magic Home ("flux") LED bulbs.
package protocol

import (
	"fmt"
	"math"

	"github.com/wheelibin/glow/internal/colour"
)

const (
	framePower      = 0x71
	framePowerOn    = 0x23
	framePowerOff   = 0x24
	frameColour     = 0x31
	frameTerminator = 0x0F
)

// Mask selects which LED banks a colour frame drives
type Mask byte

const (
	MaskColour Mask = 0xF0
	MaskWhite  Mask = 0x0F
	MaskBoth   Mask = 0xFF
)

type OperatingMode int

const (
	ModeColour OperatingMode = iota
	ModeWhite
	ModeTemperature
)

// the raw state a bulb reports in response to a state query
type DeviceState struct {
	On    bool
	Mode  OperatingMode
	RGB   colour.RGB
	White colour.WhiteChannels
}

// Checksum is the sum of all preceding frame bytes modulo 256
func Checksum(frame []byte) byte {
	var sum int
	for _, b := range frame {
		sum += int(b)
	}
	return byte(sum % 256)
}

func AppendChecksum(frame []byte) []byte {
	return append(frame, Checksum(frame))
}

// PowerFrame returns the fixed 3-byte power toggle command
func PowerFrame(on bool) []byte {
	if on {
		return []byte{framePower, framePowerOn, frameTerminator}
	}
	return []byte{framePower, framePowerOff, frameTerminator}
}

// ColourFrame builds the full-update command. The colour channels are scaled
// by brightness (0-100) before framing; the checksum byte is appended by the
// transport when checksum mode is requested.
func ColourFrame(rgb colour.RGB, brightness int, mask Mask) []byte {
	scale := func(channel int) byte {
		c := colour.Clamp(float64(channel), 0, 255)
		b := colour.Clamp(float64(brightness), 0, 100)
		return byte(math.Round(c / 100 * b))
	}

	return []byte{
		frameColour,
		scale(rgb.Red),
		scale(rgb.Green),
		scale(rgb.Blue),
		0x00,
		byte(mask),
		frameTerminator,
	}
}

// StateQueryFrame returns the command that asks a bulb to report its state
func StateQueryFrame() []byte {
	return []byte{0x81, 0x8A, 0x8B}
}

const stateResponseLength = 14

// byte offsets within the 14-byte state response
const (
	responseHeader = 0x81
	idxHeader      = 0
	idxPower       = 2
	idxRed         = 6
	idxGreen       = 7
	idxBlue        = 8
	idxWarmWhite   = 9
	idxColdWhite   = 11
)

// ParseStateResponse decodes the bulb's 14-byte state report
func ParseStateResponse(raw []byte) (*DeviceState, error) {
	if len(raw) != stateResponseLength {
		return nil, fmt.Errorf("unexpected state response length %d", len(raw))
	}
	if raw[idxHeader] != responseHeader {
		return nil, fmt.Errorf("unexpected state response header 0x%02x", raw[idxHeader])
	}
	if sum := Checksum(raw[:stateResponseLength-1]); sum != raw[stateResponseLength-1] {
		return nil, fmt.Errorf("state response checksum mismatch (got 0x%02x, want 0x%02x)", raw[stateResponseLength-1], sum)
	}

	state := DeviceState{
		On: raw[idxPower] == framePowerOn,
		RGB: colour.RGB{
			Red:   int(raw[idxRed]),
			Green: int(raw[idxGreen]),
			Blue:  int(raw[idxBlue]),
		},
		White: colour.WhiteChannels{
			Warm: int(raw[idxWarmWhite]),
			Cold: int(raw[idxColdWhite]),
		},
	}
	state.Mode = deriveMode(state)

	return &state, nil
}

func deriveMode(state DeviceState) OperatingMode {
	whiteLit := state.White.Warm > 0 || state.White.Cold > 0
	colourLit := state.RGB.Red > 0 || state.RGB.Green > 0 || state.RGB.Blue > 0

	if whiteLit && !colourLit {
		if state.White.Warm > 0 && state.White.Cold > 0 {
			return ModeTemperature
		}
		return ModeWhite
	}
	return ModeColour
}
