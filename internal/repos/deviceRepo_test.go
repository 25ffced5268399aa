package repos_test

import (
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wheelibin/glow/internal/models"
	"github.com/wheelibin/glow/internal/repos"
)

func newTestRepo(t *testing.T) *repos.DeviceRepo {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := repos.NewDeviceRepo(log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel}), db)
	require.NoError(t, err)
	return repo
}

func testDevices() []models.DeviceConfig {
	return []models.DeviceConfig{
		{ID: 1, Name: "lounge", Address: "10.0.0.20", ScheduleName: "living"},
		{ID: 2, Name: "bedroom", Address: "10.0.0.21", ScheduleName: "night"},
		{ID: 3, Name: "hall", Address: "10.0.0.22", ScheduleName: "living"},
	}
}

func Test_DeviceRepo(t *testing.T) {

	t.Run("a recorded sync can be read back", func(t *testing.T) {
		repo := newTestRepo(t)
		require.NoError(t, repo.Add(testDevices()))

		err := repo.RecordSync(models.StateNotification{
			DeviceID:         1,
			DeviceName:       "lounge",
			On:               true,
			Hue:              120,
			Saturation:       80,
			Brightness:       60,
			TemperatureMirek: 0,
			Reachable:        true,
			SyncedAt:         time.Now(),
		})
		require.NoError(t, err)

		state, err := repo.GetLastState(1)
		require.NoError(t, err)
		assert.Equal(t, "lounge", state.DeviceName)
		assert.True(t, state.On)
		assert.True(t, state.Reachable)
		assert.Equal(t, float64(120), state.Hue)
		assert.Equal(t, float64(80), state.Saturation)
		assert.Equal(t, 60, state.Brightness)
	})

	t.Run("a device that has never synced reads back as zero state", func(t *testing.T) {
		repo := newTestRepo(t)
		require.NoError(t, repo.Add(testDevices()))

		state, err := repo.GetLastState(2)
		require.NoError(t, err)
		assert.Equal(t, "bedroom", state.DeviceName)
		assert.False(t, state.On)
		assert.False(t, state.Reachable)
	})

	t.Run("unreachable devices are listed", func(t *testing.T) {
		repo := newTestRepo(t)
		require.NoError(t, repo.Add(testDevices()))

		require.NoError(t, repo.RecordSync(models.StateNotification{DeviceID: 1, Reachable: true, SyncedAt: time.Now()}))
		require.NoError(t, repo.RecordSync(models.StateNotification{DeviceID: 2, Reachable: false, SyncedAt: time.Now()}))

		ids, err := repo.GetUnreachableDeviceIDs()
		require.NoError(t, err)
		assert.Equal(t, []uint64{2}, ids)
	})

	t.Run("devices are grouped by schedule", func(t *testing.T) {
		repo := newTestRepo(t)
		require.NoError(t, repo.Add(testDevices()))

		devices, err := repo.GetDevicesForSchedule("living")
		require.NoError(t, err)
		if assert.Len(t, devices, 2) {
			assert.Equal(t, "lounge", devices[0].Name)
			assert.Equal(t, "hall", devices[1].Name)
		}
	})

	t.Run("unknown devices return an error", func(t *testing.T) {
		repo := newTestRepo(t)
		require.NoError(t, repo.Add(testDevices()))

		_, err := repo.GetLastState(99)
		assert.Error(t, err)
	})
}
