package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wheelibin/glow/internal/colour"
	"github.com/wheelibin/glow/internal/constants"
	"github.com/wheelibin/glow/internal/effects"
	"github.com/wheelibin/glow/internal/lights"
	"github.com/wheelibin/glow/internal/models"
	"github.com/wheelibin/glow/internal/protocol"
	"github.com/wheelibin/glow/internal/transport"
)

const usage = `usage:
  glow <address> status
  glow <address> on
  glow <address> off
  glow <address> colour <hue> <saturation> <brightness>
  glow <address> flash
  glow <address> rainbow`

func main() {

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})

	if len(os.Args) < 3 {
		fmt.Println(usage)
		os.Exit(1)
	}

	address := os.Args[1]
	command := os.Args[2]
	link := transport.NewConnection(logger, address)

	switch command {

	case "status":
		state, err := link.GetState(constants.StateReadTimeout)
		if err != nil {
			logger.Fatal(err)
		}
		hue, saturation, _ := colour.RGBToHSL(state.RGB)
		fmt.Printf("on=%t rgb=%d,%d,%d hue=%.0f saturation=%.0f warm=%d cold=%d\n",
			state.On,
			state.RGB.Red, state.RGB.Green, state.RGB.Blue,
			hue, saturation,
			state.White.Warm, state.White.Cold,
		)

	case "on", "off":
		if err := link.Send(protocol.PowerFrame(command == "on"), true, constants.CommandWriteTimeout); err != nil {
			logger.Fatal(err)
		}

	case "colour":
		if len(os.Args) < 6 {
			fmt.Println(usage)
			os.Exit(1)
		}
		hue, _ := strconv.ParseFloat(os.Args[3], 64)
		saturation, _ := strconv.ParseFloat(os.Args[4], 64)
		brightness, _ := strconv.Atoi(os.Args[5])

		rgb := colour.HSLToRGB(hue, saturation, 50)
		frame := protocol.ColourFrame(rgb, brightness, protocol.MaskColour)
		if err := link.Send(frame, true, constants.CommandWriteTimeout); err != nil {
			logger.Fatal(err)
		}

	case "flash", "rainbow":
		syncer := lights.NewStateSynchroniser(logger, address, 0, link, func(n models.StateNotification) {
			fmt.Printf("synced: on=%t hue=%.0f saturation=%.0f brightness=%d\n",
				n.On, n.Hue, n.Saturation, n.Brightness)
		})
		coalescer := lights.NewUpdateCoalescer(logger, address, lights.NewLightState(), link, syncer)

		effectService := effects.NewEffectService(logger)
		if command == "flash" {
			effectService.Flash(context.Background(), coalescer, 3)
		} else {
			effectService.Rainbow(context.Background(), coalescer)
		}

		// the last change is still debouncing when the effect returns
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := coalescer.Flush(ctx); err != nil {
			logger.Fatal(err)
		}

	default:
		fmt.Println(usage)
		os.Exit(1)
	}
}
