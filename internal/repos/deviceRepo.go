package repos

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/glow/internal/models"
)

const initSchema = `
  CREATE TABLE IF NOT EXISTS device (
    id INTEGER PRIMARY KEY,
    name TEXT,
    address TEXT,
    controlled_by_schedule VARCHAR(36),
    reachable INTEGER,
    on_state INTEGER,
    hue REAL,
    saturation REAL,
    brightness INTEGER,
    colour_temp INTEGER,
    last_synced_time TIMESTAMP
  );

  DELETE FROM device;
`

// DeviceRepo is the registry of configured bulbs plus the last state each
// one reported. The table is rebuilt from config on startup; only the
// synced snapshots change after that.
type DeviceRepo struct {
	logger *log.Logger
	db     *sql.DB
}

func NewDeviceRepo(logger *log.Logger, db *sql.DB) (*DeviceRepo, error) {

	_, err := db.Exec(initSchema)
	if err != nil {
		return nil, fmt.Errorf("Error initialising device schema: %w", err)
	}

	return &DeviceRepo{logger: logger, db: db}, nil
}

func (r *DeviceRepo) Add(devices []models.DeviceConfig) error {
	tx, _ := r.db.Begin()
	for _, device := range devices {
		_, err := tx.Exec(
			`INSERT INTO device
      (id, name, address, controlled_by_schedule)
     VALUES ($1, $2, $3, $4);`,
			device.ID,
			device.Name,
			device.Address,
			device.ScheduleName,
		)
		if err != nil {
			return fmt.Errorf("Error adding device (%s): %w", device.Name, err)
		}
	}
	err := tx.Commit()
	if err != nil {
		return fmt.Errorf("Error adding devices: %w", err)
	}

	return nil
}

// RecordSync stores the state a bulb reported after a read-back
func (r *DeviceRepo) RecordSync(n models.StateNotification) error {
	_, err := r.db.Exec(
		`UPDATE device
     SET reachable        = $1,
         on_state         = $2,
         hue              = $3,
         saturation       = $4,
         brightness       = $5,
         colour_temp      = $6,
         last_synced_time = $7
     WHERE id = $8`,
		n.Reachable, n.On, n.Hue, n.Saturation, n.Brightness, n.TemperatureMirek, n.SyncedAt, n.DeviceID)
	if err != nil {
		return fmt.Errorf("Error recording sync for device (%s): %w", n.DeviceName, err)
	}
	return nil
}

// GetLastState returns the most recently synced state for a bulb
func (r *DeviceRepo) GetLastState(id uint64) (models.StateNotification, error) {
	row := r.db.QueryRow(`
    SELECT name,
           coalesce(reachable, false),
           coalesce(on_state, false),
           coalesce(hue, 0),
           coalesce(saturation, 0),
           coalesce(brightness, 0),
           coalesce(colour_temp, 0)
    FROM device
    WHERE id = $1`, id)

	n := models.StateNotification{DeviceID: id}
	err := row.Scan(&n.DeviceName, &n.Reachable, &n.On, &n.Hue, &n.Saturation, &n.Brightness, &n.TemperatureMirek)
	if err != nil {
		return models.StateNotification{}, fmt.Errorf("Error reading last state for device (%d): %w", id, err)
	}

	return n, nil
}

// GetUnreachableDeviceIDs returns the bulbs whose last read-back failed
func (r *DeviceRepo) GetUnreachableDeviceIDs() ([]uint64, error) {
	rows, err := r.db.Query("SELECT id FROM device WHERE reachable = false")
	if err != nil {
		return nil, fmt.Errorf("Error reading ids for unreachable devices: %w", err)
	}
	defer rows.Close()

	ids := []uint64{}

	for rows.Next() {
		var id uint64
		_ = rows.Scan(&id)

		ids = append(ids, id)
	}

	return ids, nil
}

func (r *DeviceRepo) GetDevicesForSchedule(scheduleName string) ([]models.DeviceConfig, error) {
	rows, err := r.db.Query("SELECT id, name, address, controlled_by_schedule FROM device WHERE controlled_by_schedule = $1", scheduleName)
	if err != nil {
		return nil, fmt.Errorf("Error reading devices for schedule (%s): %w", scheduleName, err)
	}
	defer rows.Close()

	devices := []models.DeviceConfig{}

	for rows.Next() {
		var device models.DeviceConfig
		_ = rows.Scan(&device.ID, &device.Name, &device.Address, &device.ScheduleName)

		devices = append(devices, device)
	}

	return devices, nil
}
