package models

import "time"

// a bulb defined in the config file
type DeviceConfig struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`

	// the name of the schedule controlling this bulb (optional)
	ScheduleName string `json:"schedule"`
}

// pushed to the host-facing layer whenever a read-back completes
type StateNotification struct {
	DeviceID   uint64  `json:"deviceId"`
	DeviceName string  `json:"deviceName"`
	On         bool    `json:"on"`
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Brightness int     `json:"brightness"`
	// 0 when the bulb is not in a white mode
	TemperatureMirek int       `json:"temperatureMirek"`
	Reachable        bool      `json:"reachable"`
	SyncedAt         time.Time `json:"syncedAt"`
}

type Schedule struct {
	Name       string   `json:"name"`
	Disabled   bool     `json:"disabled"`
	DayPattern string   `json:"dayPattern"`
	Devices    []string `json:"devices"`
}

type ScheduleDayPatternStep struct {
	Time         string `json:"time"`
	Temperature  int    `json:"temperature"`
	Brightness   int    `json:"brightness"`
	TransitionAt int    `json:"transitionAt"`
	Off          bool   `json:"off"`
}

type DayPattern struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	SunriseMin string `json:"sunriseMin"`
	SunriseMax string `json:"sunriseMax"`
	SunsetMin  string `json:"sunsetMin"`
	SunsetMax  string `json:"sunsetMax"`

	Default struct {
		Temperature int `json:"temperature"`
		Brightness  int `json:"brightness"`
	} `json:"default"`
	Pattern []ScheduleDayPatternStep `json:"pattern"`
}
