package homekit

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"

	"github.com/brutella/hap"
	"github.com/brutella/hap/accessory"
	"github.com/brutella/hap/characteristic"
	"github.com/charmbracelet/log"

	"github.com/wheelibin/glow/internal/constants"
	"github.com/wheelibin/glow/internal/effects"
	"github.com/wheelibin/glow/internal/models"
)

// store name for the server PIN code
const pinStore = "glow_pin"

type bulbController interface {
	SetPower(on bool)
	SetHue(hue float64)
	SetSaturation(saturation float64)
	SetBrightness(brightness int)
	SetTemperature(mirek int)
}

// Light is a bulb exposed over HomeKit
type Light struct {
	Acc         *accessory.ColoredLightbulb
	Temperature *characteristic.ColorTemperature
}

// Bridge exposes the bulbs as HomeKit accessories. Remote characteristic
// updates are forwarded to each bulb's controller; read-back notifications
// flow the other way via Push.
type Bridge struct {
	logger  *log.Logger
	store   hap.Store
	pin     string
	addr    string
	effects *effects.EffectService

	bridgeAcc *accessory.Bridge
	lights    map[uint64]*Light
}

func NewBridge(logger *log.Logger, storeDir string, addr string, effectService *effects.EffectService) *Bridge {
	return &Bridge{
		logger:    logger,
		store:     hap.NewFsStore(storeDir),
		addr:      addr,
		effects:   effectService,
		bridgeAcc: accessory.NewBridge(accessory.Info{Name: "Glow Bridge", Manufacturer: "glow"}),
		lights:    make(map[uint64]*Light),
	}
}

// SetPin sets the pairing PIN. An empty pin is read from the store, or
// failing that, generated and persisted.
func (b *Bridge) SetPin(pin string) (string, error) {
	if pin == "" {
		if storePin, err := b.store.Get(pinStore); err == nil {
			pin = string(storePin)
		}
	}

	savePin := pin == ""

	if pin == "" {
		for {
			rnd, err := rand.Int(rand.Reader, big.NewInt(99999999+1))
			if err != nil {
				return "", fmt.Errorf("can't generate PIN: %v", err)
			}

			// pad if necessary
			pin = rnd.Text(10) + "00000000"
			pin = pin[:8]

			if !hap.InvalidPins[pin] {
				break
			}
		}
	} else if hap.InvalidPins[pin] {
		return "", fmt.Errorf("insecure pin %s", pin)
	}

	if savePin {
		if err := b.store.Set(pinStore, []byte(pin)); err != nil {
			return "", err
		}
	}

	b.pin = pin
	return pin, nil
}

// AddLight creates the accessory for a bulb and wires its characteristics
// to the controller
func (b *Bridge) AddLight(device models.DeviceConfig, controller bulbController) *Light {

	// accessory id 1 is the bridge itself, so device ids start at 1
	if device.ID == 0 {
		b.logger.Error("not exposing device over homekit, device ids start at 1", "device", device.Name)
		return nil
	}

	acc := accessory.NewColoredLightbulb(accessory.Info{
		Name:         device.Name,
		Manufacturer: "glow",
		SerialNumber: device.Address,
	})
	acc.A.Id = device.ID + 1

	temperature := characteristic.NewColorTemperature()
	temperature.SetMinValue(constants.MirekCoolest)
	temperature.SetMaxValue(constants.MirekWarmest)
	acc.Lightbulb.AddC(temperature.C)

	acc.Lightbulb.On.OnValueRemoteUpdate(func(on bool) {
		b.logger.Debug("homekit update", "device", device.Name, "on", on)
		controller.SetPower(on)
	})
	acc.Lightbulb.Hue.OnValueRemoteUpdate(func(hue float64) {
		b.logger.Debug("homekit update", "device", device.Name, "hue", hue)
		controller.SetHue(hue)
	})
	acc.Lightbulb.Saturation.OnValueRemoteUpdate(func(saturation float64) {
		b.logger.Debug("homekit update", "device", device.Name, "saturation", saturation)
		controller.SetSaturation(saturation)
	})
	acc.Lightbulb.Brightness.OnValueRemoteUpdate(func(brightness int) {
		b.logger.Debug("homekit update", "device", device.Name, "brightness", brightness)
		controller.SetBrightness(brightness)
	})
	temperature.OnValueRemoteUpdate(func(mirek int) {
		b.logger.Debug("homekit update", "device", device.Name, "mirek", mirek)
		controller.SetTemperature(mirek)
	})

	// blink the bulb when a paired home asks it to identify itself
	acc.A.IdentifyFunc = func(_ *http.Request) {
		go b.effects.Flash(context.Background(), controller, 2)
	}

	light := &Light{Acc: acc, Temperature: temperature}
	b.lights[device.ID] = light
	return light
}

// Push reflects a read-back notification into the accessory so paired
// homes see what the bulb actually did
func (b *Bridge) Push(n models.StateNotification) {
	light, ok := b.lights[n.DeviceID]
	if !ok {
		return
	}

	light.Acc.Lightbulb.On.SetValue(n.On)
	light.Acc.Lightbulb.Hue.SetValue(n.Hue)
	light.Acc.Lightbulb.Saturation.SetValue(n.Saturation)
	if n.Brightness > 0 {
		light.Acc.Lightbulb.Brightness.SetValue(n.Brightness)
	}
	if n.TemperatureMirek > 0 {
		light.Temperature.SetValue(n.TemperatureMirek)
	}
}

// Start runs the HomeKit server until the context is cancelled
func (b *Bridge) Start(ctx context.Context) error {
	if b.pin == "" {
		if _, err := b.SetPin(""); err != nil {
			return err
		}
	}

	var accs []*accessory.A
	for _, light := range b.lights {
		accs = append(accs, light.Acc.A)
	}

	server, err := hap.NewServer(b.store, b.bridgeAcc.A, accs...)
	if err != nil {
		return err
	}
	server.Pin = b.pin
	server.Addr = b.addr

	b.logger.Info("Starting HomeKit server", "addr", b.addr, "pin", b.pin)
	return server.ListenAndServe(ctx)
}
