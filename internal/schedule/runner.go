package schedule

import (
	"context"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wheelibin/glow/internal/constants"
	"github.com/wheelibin/glow/internal/models"
)

type LightUpdater interface {
	SetPower(on bool)
	SetBrightness(brightness int)
	SetTemperature(mirek int)
}

// Runner periodically recalculates each schedule's target state and drives
// the bulbs towards it
type Runner struct {
	logger    *log.Logger
	service   *ScheduleService
	schedules []*models.Schedule
	lights    map[string]LightUpdater

	UpdateInterval time.Duration
}

func NewRunner(logger *log.Logger, service *ScheduleService, schedules []*models.Schedule, lights map[string]LightUpdater) *Runner {

	// filter out any disabled schedules
	var enabledSchedules []*models.Schedule
	for _, s := range schedules {
		if !s.Disabled {
			enabledSchedules = append(enabledSchedules, s)
		}
	}

	return &Runner{
		logger:         logger,
		service:        service,
		schedules:      enabledSchedules,
		lights:         lights,
		UpdateInterval: constants.ScheduleUpdateInterval,
	}
}

func (r *Runner) Run(ctx context.Context) {
	r.logger.Debug("Runner.Run")

	updateTimer := time.NewTicker(r.UpdateInterval)
	defer updateTimer.Stop()

	// update all lights straight away
	r.ApplyAll(time.Now())

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Runner.Run: stop signal received")
			return

		case t := <-updateTimer.C:
			r.logger.Debug("Runner.Run: calculating new target states...", "t", t)
			r.ApplyAll(t)
		}
	}
}

// ApplyAll calculates the target state for every enabled schedule at the
// given time and submits it to the scheduled bulbs
func (r *Runner) ApplyAll(t time.Time) {
	for _, sch := range r.schedules {

		interval := r.service.GetScheduleIntervalForTime(sch, t)
		if interval == nil {
			continue
		}
		target := interval.CalculateTargetLightState(t)

		for _, deviceName := range interval.Devices {
			light, ok := r.lights[deviceName]
			if !ok {
				r.logger.Warnf("schedule %s refers to unknown device %s", sch.Name, deviceName)
				continue
			}

			if target.Off {
				light.SetPower(false)
				continue
			}

			light.SetPower(true)
			light.SetTemperature(mirekFromKelvin(target.TemperatureKelvin))
			light.SetBrightness(int(math.Round(target.Brightness)))
		}
	}
}

// bulbs take colour temperature in mirek, schedules are written in kelvin
func mirekFromKelvin(kelvin int) int {
	if kelvin <= 0 {
		return constants.MirekWarmest
	}
	return int(math.Round(1e6 / float64(kelvin)))
}
