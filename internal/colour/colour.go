package colour

import (
	"math"

	"github.com/wheelibin/glow/internal/constants"
)

type RGB struct {
	Red   int
	Green int
	Blue  int
}

type WhiteChannels struct {
	Warm int
	Cold int
}

func Clamp(value, min, max float64) float64 {
	return math.Min(max, math.Max(min, value))
}

// HSLToRGB converts hue (0-360), saturation (0-100) and luminance (0-100)
// to 0-255 RGB channels
func HSLToRGB(hue, saturation, luminance float64) RGB {
	h := Clamp(hue, 0, 360) / 360
	s := Clamp(saturation, 0, 100) / 100
	l := Clamp(luminance, 0, 100) / 100

	if s == 0 {
		// achromatic
		v := int(math.Round(l * 255))
		return RGB{v, v, v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		Red:   int(math.Round(hueToChannel(p, q, h+1.0/3.0) * 255)),
		Green: int(math.Round(hueToChannel(p, q, h) * 255)),
		Blue:  int(math.Round(hueToChannel(p, q, h-1.0/3.0) * 255)),
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

// RGBToHSL converts 0-255 RGB channels to hue (0-360), saturation (0-100)
// and luminance (0-100)
func RGBToHSL(rgb RGB) (hue, saturation, luminance float64) {
	r := Clamp(float64(rgb.Red), 0, 255) / 255
	g := Clamp(float64(rgb.Green), 0, 255) / 255
	b := Clamp(float64(rgb.Blue), 0, 255) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		// achromatic
		return 0, 0, math.Round(l * 100)
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h /= 6

	return math.Round(h * 360), math.Round(s * 100), math.Round(l * 100)
}

// HueToWhiteChannels maps a hue onto the bulb's warm/cold white LED banks.
// The mapping is piecewise over four 90 degree bands, each a linear ramp,
// and is continuous at the band boundaries.
func HueToWhiteChannels(hue float64) WhiteChannels {
	h := Clamp(hue, 0, 360)

	ramp := func(x float64) int {
		return int(math.Round(255 * x / 90))
	}

	switch {
	case h <= 90:
		return WhiteChannels{Warm: 255, Cold: ramp(h)}
	case h <= 180:
		return WhiteChannels{Warm: ramp(90 - (h - 90)), Cold: 255}
	case h <= 270:
		return WhiteChannels{Warm: ramp(h - 180), Cold: 255}
	default:
		return WhiteChannels{Warm: 255, Cold: ramp(90 - (h - 270))}
	}
}

// WhiteChannelsToMirek maps the warm/cold channel balance onto the standard
// 153-500 mirek range; a warmer balance gives a higher mirek value
func WhiteChannelsToMirek(white WhiteChannels) int {
	warm := Clamp(float64(white.Warm), 0, 255)
	cold := Clamp(float64(white.Cold), 0, 255)
	if warm == 0 && cold == 0 {
		return 0
	}

	warmShare := warm / (warm + cold)
	span := float64(constants.MirekWarmest - constants.MirekCoolest)
	return constants.MirekCoolest + int(math.Round(warmShare*span))
}

// WhiteChannelsForMirek is the inverse of WhiteChannelsToMirek, used when the
// caller asks for a colour temperature directly
func WhiteChannelsForMirek(mirek int) WhiteChannels {
	span := float64(constants.MirekWarmest - constants.MirekCoolest)
	warmShare := Clamp(float64(mirek-constants.MirekCoolest)/span, 0, 1)

	return WhiteChannels{
		Warm: int(math.Round(255 * warmShare)),
		Cold: int(math.Round(255 * (1 - warmShare))),
	}
}
