package lights

// UpdateType is the kind of device write a pending target requires
type UpdateType int

const (
	UpdateUnchanged UpdateType = iota
	UpdateRedundant
	UpdateToggle
	UpdateFull
)

func (u UpdateType) String() string {
	switch u {
	case UpdateUnchanged:
		return "unchanged"
	case UpdateRedundant:
		return "redundant"
	case UpdateToggle:
		return "toggle"
	case UpdateFull:
		return "full"
	default:
		return "unknown"
	}
}

// Classify decides what to send for the merged pending target:
//   - UpdateUnchanged: nothing was requested, nothing to do
//   - UpdateRedundant: the request matches the applied state, skip the write
//   - UpdateToggle:    only the power state changed, send the 3-byte command
//   - UpdateFull:      anything else, send a full colour frame (a pending
//     power change rides along as the frame's brightness)
func Classify(state *LightState) UpdateType {
	pending := state.Pending

	if pending.Empty() {
		return UpdateUnchanged
	}

	if pending.PowerOnly() {
		if *pending.On == state.On {
			return UpdateRedundant
		}
		return UpdateToggle
	}

	if isRedundant(state) {
		return UpdateRedundant
	}

	return UpdateFull
}

// isRedundant reports whether every requested value is already applied
func isRedundant(state *LightState) bool {
	pending := state.Pending

	if pending.On != nil && *pending.On != state.On {
		return false
	}
	if pending.Mode != nil && *pending.Mode != state.Mode {
		return false
	}
	if pending.Hue != nil && *pending.Hue != state.HSL.Hue {
		return false
	}
	if pending.Saturation != nil && *pending.Saturation != state.HSL.Saturation {
		return false
	}
	if pending.Luminance != nil && *pending.Luminance != state.HSL.Luminance {
		return false
	}
	if pending.Brightness != nil && *pending.Brightness != state.Brightness {
		return false
	}
	if pending.TemperatureMirek != nil {
		if state.TemperatureMirek == nil || *pending.TemperatureMirek != *state.TemperatureMirek {
			return false
		}
	}
	return true
}
