package config

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/wheelibin/glow/internal/models"
)

type HomeKit struct {
	Pin      string `json:"pin"`
	StoreDir string `json:"storeDir"`
	Addr     string `json:"addr"`
}

type Config struct {
	GeoLocation string                `json:"geoLocation"`
	LogFile     string                `json:"logFile"`
	DBPath      string                `json:"dbPath"`
	StatusAddr  string                `json:"statusAddr"`
	HomeKit     HomeKit               `json:"homekit"`
	Devices     []models.DeviceConfig `json:"devices"`
	Schedules   []*models.Schedule    `json:"schedules"`
}

func InitialiseConfig() {
	viper.SetConfigName("config")              // name of config file (without extension)
	viper.SetConfigType("json")                // REQUIRED if the config file does not have the extension in the name
	viper.AddConfigPath("/etc/glow/")          // path to look for the config file in
	viper.AddConfigPath("$HOME/.config/glow/") // call multiple times to add many search paths
	viper.AddConfigPath(".")                   // optionally look for config in the working directory

	viper.SetDefault("dbPath", "glow.db")
	viper.SetDefault("statusAddr", ":8089")
	viper.SetDefault("logFile", "logs/glow.log")
	viper.SetDefault("homekit.storeDir", "./db")

	err := viper.ReadInConfig() // Find and read the config file
	if err != nil {             // Handle errors reading the config file
		log.Error(err)
		panic(fmt.Errorf("fatal error config file: %w", err))
	}
}

func ReadConfig(logger *log.Logger) *Config {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		logger.Fatalf("error reading config, unable to continue: %v", err)
	}
	return &config
}
