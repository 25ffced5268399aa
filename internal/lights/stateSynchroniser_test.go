package lights_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/wheelibin/glow/internal/colour"
	"github.com/wheelibin/glow/internal/lights"
	"github.com/wheelibin/glow/internal/models"
	"github.com/wheelibin/glow/internal/protocol"
	"github.com/wheelibin/glow/mocks"
)

func newTestSynchroniser(t *testing.T) (*lights.StateSynchroniser, *mocks.MockLightsStateReader, *[]models.StateNotification) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
	reader := mocks.NewMockLightsStateReader(t)

	notifications := &[]models.StateNotification{}
	sy := lights.NewStateSynchroniser(logger, "test-bulb", 7, reader, func(n models.StateNotification) {
		*notifications = append(*notifications, n)
	})
	sy.SettleDelay = 0
	sy.ReadTimeout = 10 * time.Millisecond

	return sy, reader, notifications
}

func Test_StateSynchroniser_Resync(t *testing.T) {

	t.Run("a successful read refreshes the cache and notifies", func(t *testing.T) {
		// arrange
		sy, reader, notifications := newTestSynchroniser(t)
		state := lights.NewLightState()

		reader.On("GetState", 10*time.Millisecond).Return(&protocol.DeviceState{
			On:   true,
			Mode: protocol.ModeColour,
			RGB:  colour.RGB{Red: 255, Green: 0, Blue: 0},
		}, nil).Once()

		// act
		sy.Resync(state)

		// assert
		assert.True(t, state.On)
		assert.Equal(t, lights.ColourMode, state.Mode)
		assert.Equal(t, colour.RGB{Red: 255, Green: 0, Blue: 0}, state.RGB)
		assert.Equal(t, lights.HSL{Hue: 0, Saturation: 100, Luminance: 50}, state.HSL)
		assert.Equal(t, 100, state.Brightness)
		assert.Nil(t, state.TemperatureMirek)

		if assert.Len(t, *notifications, 1) {
			n := (*notifications)[0]
			assert.Equal(t, uint64(7), n.DeviceID)
			assert.Equal(t, "test-bulb", n.DeviceName)
			assert.True(t, n.On)
			assert.Equal(t, float64(0), n.Hue)
			assert.Equal(t, float64(100), n.Saturation)
			assert.Equal(t, 100, n.Brightness)
			assert.True(t, n.Reachable)
		}
	})

	t.Run("failed reads are retried until one succeeds", func(t *testing.T) {
		// arrange
		sy, reader, notifications := newTestSynchroniser(t)
		state := lights.NewLightState()

		reader.On("GetState", 10*time.Millisecond).Return(nil, errors.New("read timed out")).Twice()
		reader.On("GetState", 10*time.Millisecond).Return(&protocol.DeviceState{
			On:   false,
			Mode: protocol.ModeColour,
			RGB:  colour.RGB{Red: 0, Green: 128, Blue: 255},
		}, nil).Once()

		// act
		sy.Resync(state)

		// assert
		assert.False(t, state.On)
		assert.Equal(t, 0, state.Brightness)
		if assert.Len(t, *notifications, 1) {
			assert.True(t, (*notifications)[0].Reachable)
		}
	})

	t.Run("an unreachable bulb is reported as off after all attempts", func(t *testing.T) {
		// arrange
		sy, reader, notifications := newTestSynchroniser(t)
		sy.Attempts = 3
		state := lights.NewLightState()

		reader.On("GetState", 10*time.Millisecond).Return(nil, errors.New("connection refused")).Times(3)

		// act
		sy.Resync(state)

		// assert
		assert.False(t, state.On)
		assert.Equal(t, 0, state.Brightness)
		if assert.Len(t, *notifications, 1) {
			n := (*notifications)[0]
			assert.False(t, n.On)
			assert.False(t, n.Reachable)
		}
	})

	t.Run("a white mode read derives the colour temperature", func(t *testing.T) {
		// arrange
		sy, reader, notifications := newTestSynchroniser(t)
		state := lights.NewLightState()

		white := colour.WhiteChannels{Warm: 255, Cold: 255}
		reader.On("GetState", 10*time.Millisecond).Return(&protocol.DeviceState{
			On:    true,
			Mode:  protocol.ModeTemperature,
			White: white,
		}, nil).Once()

		// act
		sy.Resync(state)

		// assert
		expectedMirek := colour.WhiteChannelsToMirek(white)
		assert.Equal(t, lights.TemperatureMode, state.Mode)
		if assert.NotNil(t, state.TemperatureMirek) {
			assert.Equal(t, expectedMirek, *state.TemperatureMirek)
		}
		if assert.Len(t, *notifications, 1) {
			assert.Equal(t, expectedMirek, (*notifications)[0].TemperatureMirek)
		}
	})
}
