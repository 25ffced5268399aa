package effects

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wheelibin/glow/internal/concurrency"
)

type switchableLight interface {
	SetPower(on bool)
}

type effectLight interface {
	switchableLight
	SetHue(hue float64)
	SetSaturation(saturation float64)
	SaveColourSnapshot()
	RestoreColourSnapshot()
}

// EffectService plays short visual effects on a bulb and puts it back the
// way it was found
type EffectService struct {
	logger *log.Logger

	// overridable for tests
	FlashInterval   time.Duration
	RainbowSteps    int
	RainbowInterval time.Duration
}

func NewEffectService(logger *log.Logger) *EffectService {
	return &EffectService{
		logger:          logger,
		FlashInterval:   500 * time.Millisecond,
		RainbowSteps:    36,
		RainbowInterval: time.Second,
	}
}

// Flash blinks the bulb the given number of times, finishing powered on
func (s *EffectService) Flash(ctx context.Context, light switchableLight, times int) {
	s.logger.Info("Playing effect", "effect", "flash", "times", times)

	worker := concurrency.NewThrottledWorker(func(step int) error {
		light.SetPower(step%2 == 0)
		return nil
	})
	worker.Run(ctx, times*2, s.FlashInterval)

	light.SetPower(true)
}

// Rainbow walks the bulb once around the hue wheel at full saturation and
// then restores the original colour
func (s *EffectService) Rainbow(ctx context.Context, light effectLight) {
	s.logger.Info("Playing effect", "effect", "rainbow")

	light.SaveColourSnapshot()
	light.SetSaturation(100)

	hueStep := 360 / float64(s.RainbowSteps)
	worker := concurrency.NewThrottledWorker(func(step int) error {
		light.SetHue(float64(step) * hueStep)
		return nil
	})
	worker.Run(ctx, s.RainbowSteps, s.RainbowInterval)

	light.RestoreColourSnapshot()
}
