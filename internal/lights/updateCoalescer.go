package lights

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/glow/internal/colour"
	"github.com/wheelibin/glow/internal/constants"
	"github.com/wheelibin/glow/internal/protocol"
)

type commandSender interface {
	Send(command []byte, useChecksum bool, timeout time.Duration) error
}

type stateResyncer interface {
	Resync(state *LightState)
}

// UpdateCoalescer merges bursts of attribute changes into a single device
// write. Each change restarts a short quiet window; when the window elapses
// the merged target is classified and committed. At most one write is in
// flight per bulb - a commit that finds one running is retried once after a
// fixed interval.
type UpdateCoalescer struct {
	logger *log.Logger
	name   string
	state  *LightState
	link   commandSender
	syncer stateResyncer

	mu            sync.Mutex
	timer         *time.Timer
	windowOpen    bool
	committing    bool
	commitCount   uint64
	recheckQueued bool
	lastSubmitAt  time.Time

	// overridable for tests
	Window          time.Duration
	RecheckInterval time.Duration
	WriteTimeout    time.Duration
}

func NewUpdateCoalescer(logger *log.Logger, name string, state *LightState, link commandSender, syncer stateResyncer) *UpdateCoalescer {
	return &UpdateCoalescer{
		logger:          logger,
		name:            name,
		state:           state,
		link:            link,
		syncer:          syncer,
		Window:          constants.CoalesceWindow,
		RecheckInterval: constants.CommitRecheckInterval,
		WriteTimeout:    constants.CommandWriteTimeout,
	}
}

func (c *UpdateCoalescer) SetHue(hue float64) {
	h := colour.Clamp(hue, 0, 360)
	mode := ColourMode
	c.submit(func(p *PendingTarget) {
		p.Hue = &h
		p.Mode = &mode
	})
}

func (c *UpdateCoalescer) SetSaturation(saturation float64) {
	s := colour.Clamp(saturation, 0, 100)
	mode := ColourMode
	c.submit(func(p *PendingTarget) {
		p.Saturation = &s
		p.Mode = &mode
	})
}

func (c *UpdateCoalescer) SetBrightness(brightness int) {
	b := int(colour.Clamp(float64(brightness), 0, 100))
	l := float64(b) / 2
	c.submit(func(p *PendingTarget) {
		p.Brightness = &b
		p.Luminance = &l
	})
}

func (c *UpdateCoalescer) SetPower(on bool) {
	c.submit(func(p *PendingTarget) {
		p.On = &on
	})
}

// SetTemperature requests a colour temperature in mirek, which implies the
// white (temperature) operating mode
func (c *UpdateCoalescer) SetTemperature(mirek int) {
	m := int(colour.Clamp(float64(mirek), constants.MirekCoolest, constants.MirekWarmest))
	mode := TemperatureMode
	c.submit(func(p *PendingTarget) {
		p.TemperatureMirek = &m
		p.Mode = &mode
	})
}

// SaveColourSnapshot remembers the current colour (used by effects)
func (c *UpdateCoalescer) SaveColourSnapshot() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SaveSnapshot()
}

// RestoreColourSnapshot submits the previously saved colour as a new target
func (c *UpdateCoalescer) RestoreColourSnapshot() {
	c.mu.Lock()
	hsl, ok := c.state.Snapshot()
	c.mu.Unlock()
	if !ok {
		return
	}

	mode := ColourMode
	c.submit(func(p *PendingTarget) {
		p.Hue = &hsl.Hue
		p.Saturation = &hsl.Saturation
		p.Luminance = &hsl.Luminance
		p.Mode = &mode
	})
}

// submit records the change and restarts the quiet window; it never blocks
// and never writes to the device directly
func (c *UpdateCoalescer) submit(mutate func(p *PendingTarget)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	mutate(&c.state.Pending)
	if !c.lastSubmitAt.IsZero() {
		c.logger.Debugf("change for %s arrived %s after the previous one", c.name, time.Since(c.lastSubmitAt))
	}
	c.lastSubmitAt = time.Now()

	// last submit wins, only the most recently scheduled timer fires
	if c.timer != nil {
		c.timer.Stop()
	}
	c.windowOpen = true
	c.timer = time.AfterFunc(c.Window, c.windowElapsed)
}

// Flush blocks until every submitted change has been committed and its
// read-back has completed, or the context is cancelled. One-shot callers
// use it to drain the pipeline before exiting.
func (c *UpdateCoalescer) Flush(ctx context.Context) error {
	ticker := time.NewTicker(c.Window)
	defer ticker.Stop()

	for {
		c.mu.Lock()
		idle := !c.windowOpen && !c.committing && !c.recheckQueued
		c.mu.Unlock()
		if idle {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *UpdateCoalescer) windowElapsed() {
	c.mu.Lock()
	c.windowOpen = false

	if c.committing {
		// a write is in flight, defer by scheduling a single recheck
		if !c.recheckQueued {
			c.recheckQueued = true
			seen := c.commitCount
			time.AfterFunc(c.RecheckInterval, func() {
				c.mu.Lock()
				c.recheckQueued = false
				// a later change has restarted the window or already
				// committed, so the deferred target is spoken for
				if c.windowOpen || c.commitCount != seen {
					c.mu.Unlock()
					return
				}
				c.mu.Unlock()
				c.windowElapsed()
			})
		}
		c.mu.Unlock()
		return
	}

	c.commitCount++
	c.committing = true
	c.mu.Unlock()

	c.commit()
}

// commit consumes the pending target, performs the required write and
// resynchronises the cache from the device. The in-flight guard is released
// in a cleanup path that always runs.
func (c *UpdateCoalescer) commit() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Errorf("panic committing update for %s: %v", c.name, r)
		}
		c.mu.Lock()
		c.committing = false
		c.mu.Unlock()
	}()

	c.mu.Lock()
	kind := Classify(c.state)
	target := c.resolveTarget()
	// changes submitted from here on belong to the next commit
	c.state.Pending = PendingTarget{}
	c.mu.Unlock()

	switch kind {
	case UpdateUnchanged:
		c.logger.Warnf("update window elapsed for %s with nothing to send", c.name)
		return

	case UpdateRedundant:
		c.logger.Debugf("skipping redundant update for %s", c.name)
		return

	case UpdateToggle:
		c.logger.Info("Toggling power", "device", c.name, "on", target.on)
		if err := c.link.Send(protocol.PowerFrame(target.on), true, c.WriteTimeout); err != nil {
			c.logger.Error(err)
			return
		}

	case UpdateFull:
		rgb := colour.HSLToRGB(target.hue, target.saturation, 50)
		frame := protocol.ColourFrame(rgb, target.brightness, target.mask())

		c.logger.Info("Sending colour frame",
			"device", c.name,
			"hue", target.hue,
			"saturation", target.saturation,
			"brightness", target.brightness,
			"on", target.on,
		)
		if err := c.link.Send(frame, true, c.WriteTimeout); err != nil {
			c.logger.Error(err)
			return
		}

		c.mirrorWhiteChannels(target)
	}

	c.syncer.Resync(c.state)
}

// the merged values a full update will drive the bulb to
type resolvedTarget struct {
	hue        float64
	saturation float64
	luminance  float64
	brightness int
	on         bool
	mode       Mode
	mirek      *int
}

func (t resolvedTarget) mask() protocol.Mask {
	if t.mode == WhiteMode || t.mode == TemperatureMode {
		return protocol.MaskWhite
	}
	return protocol.MaskColour
}

// resolveTarget folds the pending fields over the cached state. A pending
// power-off rides along by driving the frame brightness to zero rather than
// sending a second command.
func (c *UpdateCoalescer) resolveTarget() resolvedTarget {
	state := c.state
	pending := state.Pending

	target := resolvedTarget{
		hue:        state.HSL.Hue,
		saturation: state.HSL.Saturation,
		luminance:  state.HSL.Luminance,
		on:         state.On,
		mode:       state.Mode,
	}

	if pending.Mode != nil {
		target.mode = *pending.Mode
	}
	if pending.Hue != nil {
		target.hue = *pending.Hue
	}
	if pending.Saturation != nil {
		target.saturation = *pending.Saturation
	}
	if pending.Luminance != nil {
		target.luminance = *pending.Luminance
	}
	if pending.On != nil {
		target.on = *pending.On
	}
	if pending.TemperatureMirek != nil {
		mirek := *pending.TemperatureMirek
		target.mirek = &mirek
	}

	if pending.Brightness != nil {
		target.brightness = *pending.Brightness
	} else {
		target.brightness = int(colour.Clamp(target.luminance*2, 0, 100))
	}
	if !target.on {
		target.brightness = 0
	}

	return target
}

// mirrorWhiteChannels keeps the cached white channel values consistent with
// what was just sent, so the reported mirek is right even before the
// read-back lands
func (c *UpdateCoalescer) mirrorWhiteChannels(target resolvedTarget) {
	if target.mode == ColourMode {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if target.mirek != nil {
		c.state.White = colour.WhiteChannelsForMirek(*target.mirek)
		mirek := *target.mirek
		c.state.TemperatureMirek = &mirek
	} else {
		c.state.White = colour.HueToWhiteChannels(target.hue)
		mirek := colour.WhiteChannelsToMirek(c.state.White)
		c.state.TemperatureMirek = &mirek
	}
}
