package lights

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/glow/internal/colour"
	"github.com/wheelibin/glow/internal/constants"
	"github.com/wheelibin/glow/internal/models"
	"github.com/wheelibin/glow/internal/protocol"
)

type stateReader interface {
	GetState(timeout time.Duration) (*protocol.DeviceState, error)
}

// StateSynchroniser re-reads a bulb after a write has settled and refreshes
// the cached state from what the device actually reports. Bulbs return stale
// data if queried straight after a write, hence the settle delay.
type StateSynchroniser struct {
	logger   *log.Logger
	name     string
	deviceID uint64
	link     stateReader
	notify   func(models.StateNotification)

	// overridable for tests
	SettleDelay time.Duration
	ReadTimeout time.Duration
	Attempts    int
}

func NewStateSynchroniser(logger *log.Logger, name string, deviceID uint64, link stateReader, notify func(models.StateNotification)) *StateSynchroniser {
	return &StateSynchroniser{
		logger:      logger,
		name:        name,
		deviceID:    deviceID,
		link:        link,
		notify:      notify,
		SettleDelay: constants.ReadbackSettleDelay,
		ReadTimeout: constants.StateReadTimeout,
		Attempts:    constants.ReadbackAttempts,
	}
}

// Resync blocks until the bulb has been re-read (or all attempts exhausted)
// and the refreshed state pushed to the host-facing layer
func (s *StateSynchroniser) Resync(state *LightState) {
	time.Sleep(s.SettleDelay)

	var deviceState *protocol.DeviceState
	for attempt := 1; attempt <= s.Attempts; attempt++ {
		read, err := s.link.GetState(s.ReadTimeout)
		if err != nil {
			s.logger.Debugf("state read %d/%d for %s failed: %v", attempt, s.Attempts, s.name, err)
			continue
		}
		deviceState = read
		break
	}

	if deviceState == nil {
		// bulb is unreachable, report it as off rather than freezing the
		// pipeline
		s.logger.Errorf("no state response from %s after %d attempts, reporting as off", s.name, s.Attempts)
		state.On = false
		state.RefreshBrightness()
		s.publish(state, false)
		return
	}

	state.On = deviceState.On
	state.Mode = modeFromDevice(deviceState.Mode)
	state.RGB = deviceState.RGB
	state.White = deviceState.White

	hue, saturation, luminance := colour.RGBToHSL(deviceState.RGB)
	state.HSL = HSL{Hue: hue, Saturation: saturation, Luminance: luminance}

	if state.Mode == ColourMode {
		state.TemperatureMirek = nil
	} else {
		mirek := colour.WhiteChannelsToMirek(deviceState.White)
		state.TemperatureMirek = &mirek
	}

	state.RefreshBrightness()
	s.publish(state, true)
}

func (s *StateSynchroniser) publish(state *LightState, reachable bool) {
	if s.notify == nil {
		return
	}

	notification := models.StateNotification{
		DeviceID:   s.deviceID,
		DeviceName: s.name,
		On:         state.On,
		Hue:        state.HSL.Hue,
		Saturation: state.HSL.Saturation,
		Brightness: state.Brightness,
		Reachable:  reachable,
		SyncedAt:   time.Now(),
	}
	if state.TemperatureMirek != nil {
		notification.TemperatureMirek = *state.TemperatureMirek
	}

	s.notify(notification)
}
