package main

import (
	"context"
	"database/sql"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/wheelibin/glow/internal/config"
	"github.com/wheelibin/glow/internal/effects"
	"github.com/wheelibin/glow/internal/homekit"
	"github.com/wheelibin/glow/internal/lights"
	"github.com/wheelibin/glow/internal/models"
	"github.com/wheelibin/glow/internal/repos"
	"github.com/wheelibin/glow/internal/schedule"
	"github.com/wheelibin/glow/internal/status"
	"github.com/wheelibin/glow/internal/transport"
)

func main() {

	config.InitialiseConfig()

	logger := log.NewWithOptions(&lumberjack.Logger{
		Filename: viper.GetString("logFile"),
		MaxAge:   3,
	}, log.Options{
		Level:      log.InfoLevel,
		TimeFormat: "2006/01/02 15:04:05",
	})
	logger.Info("glowd starting")

	cfg := config.ReadConfig(logger)

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		logger.Fatal(err)
	}
	defer db.Close()

	deviceRepo, err := repos.NewDeviceRepo(logger, db)
	if err != nil {
		logger.Fatal(err)
	}
	if err := deviceRepo.Add(cfg.Devices); err != nil {
		logger.Fatal(err)
	}

	broadcaster := status.NewBroadcaster(logger, cfg.StatusAddr)
	effectService := effects.NewEffectService(logger)

	bridge := homekit.NewBridge(logger, cfg.HomeKit.StoreDir, cfg.HomeKit.Addr, effectService)
	if cfg.HomeKit.Pin != "" {
		if _, err := bridge.SetPin(cfg.HomeKit.Pin); err != nil {
			logger.Fatal(err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// create/wire up a pipeline per bulb
	updaters := map[string]schedule.LightUpdater{}
	for _, device := range cfg.Devices {
		device := device

		link := transport.NewConnection(logger, device.Address)

		notify := func(n models.StateNotification) {
			if err := deviceRepo.RecordSync(n); err != nil {
				logger.Error(err)
			}
			broadcaster.Notify(n)
			bridge.Push(n)
		}

		syncer := lights.NewStateSynchroniser(logger, device.Name, device.ID, link, notify)
		coalescer := lights.NewUpdateCoalescer(logger, device.Name, lights.NewLightState(), link, syncer)

		bridge.AddLight(device, coalescer)
		updaters[device.Name] = coalescer
	}

	logger.Info("Configured bulbs",
		"names", lo.Map(cfg.Devices, func(d models.DeviceConfig, _ int) string { return d.Name }))

	// start the schedule loop
	scheduleService := schedule.NewScheduleService(logger)
	runner := schedule.NewRunner(logger, scheduleService, cfg.Schedules, updaters)
	go runner.Run(ctx)

	// start the status stream
	go func() {
		if err := broadcaster.Start(ctx); err != nil {
			logger.Error(err)
		}
	}()

	// the HomeKit server blocks until shutdown
	if err := bridge.Start(ctx); err != nil {
		logger.Error(err)
	}

	logger.Info("Glow is closing")
}
