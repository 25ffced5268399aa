package homekit_test

import (
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/wheelibin/glow/internal/effects"
	"github.com/wheelibin/glow/internal/homekit"
	"github.com/wheelibin/glow/internal/models"
	"github.com/wheelibin/glow/mocks"
)

func newTestBridge(t *testing.T) *homekit.Bridge {
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
	return homekit.NewBridge(logger, t.TempDir(), ":0", effects.NewEffectService(logger))
}

func Test_AddLight(t *testing.T) {

	t.Run("the accessory id is derived from the device id", func(t *testing.T) {
		bridge := newTestBridge(t)
		controller := mocks.NewMockHomekitBulbController(t)

		light := bridge.AddLight(models.DeviceConfig{ID: 3, Name: "lounge", Address: "10.0.0.20"}, controller)

		assert.Equal(t, uint64(4), light.Acc.A.Id)
		assert.Equal(t, "lounge", light.Acc.Name())
	})

	t.Run("a zero device id is rejected rather than colliding with the bridge", func(t *testing.T) {
		bridge := newTestBridge(t)
		controller := mocks.NewMockHomekitBulbController(t)

		light := bridge.AddLight(models.DeviceConfig{ID: 0, Name: "lounge"}, controller)

		assert.Nil(t, light)
		// nothing was registered for the device
		bridge.Push(models.StateNotification{DeviceID: 0, On: true})
	})

	t.Run("the colour temperature range matches what the bulbs accept", func(t *testing.T) {
		bridge := newTestBridge(t)
		controller := mocks.NewMockHomekitBulbController(t)

		light := bridge.AddLight(models.DeviceConfig{ID: 1, Name: "lounge"}, controller)

		assert.Equal(t, 153, light.Temperature.MinVal)
		assert.Equal(t, 500, light.Temperature.MaxVal)
	})
}

func Test_Push(t *testing.T) {

	t.Run("a notification is reflected into the characteristics", func(t *testing.T) {
		bridge := newTestBridge(t)
		controller := mocks.NewMockHomekitBulbController(t)
		light := bridge.AddLight(models.DeviceConfig{ID: 1, Name: "lounge"}, controller)

		bridge.Push(models.StateNotification{
			DeviceID:         1,
			DeviceName:       "lounge",
			On:               true,
			Hue:              120,
			Saturation:       80,
			Brightness:       60,
			TemperatureMirek: 300,
			Reachable:        true,
			SyncedAt:         time.Now(),
		})

		assert.True(t, light.Acc.Lightbulb.On.Value())
		assert.Equal(t, float64(120), light.Acc.Lightbulb.Hue.Value())
		assert.Equal(t, float64(80), light.Acc.Lightbulb.Saturation.Value())
		assert.Equal(t, 60, light.Acc.Lightbulb.Brightness.Value())
		assert.Equal(t, 300, light.Temperature.Value())
	})

	t.Run("a powered-off bulb keeps its last brightness", func(t *testing.T) {
		bridge := newTestBridge(t)
		controller := mocks.NewMockHomekitBulbController(t)
		light := bridge.AddLight(models.DeviceConfig{ID: 1, Name: "lounge"}, controller)

		bridge.Push(models.StateNotification{DeviceID: 1, On: true, Brightness: 60})
		bridge.Push(models.StateNotification{DeviceID: 1, On: false, Brightness: 0})

		assert.False(t, light.Acc.Lightbulb.On.Value())
		assert.Equal(t, 60, light.Acc.Lightbulb.Brightness.Value())
	})

	t.Run("notifications for unknown devices are ignored", func(t *testing.T) {
		bridge := newTestBridge(t)

		// no accessories added, must not panic
		bridge.Push(models.StateNotification{DeviceID: 99, On: true})
	})
}
