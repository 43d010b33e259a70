// A munin plugin for the Pimoroni Enviro+ environmental HAT on a
// Raspberry Pi. One positional argument selects the mode: "autoconf",
// "config", or anything else (including nothing) for a value report.
package main

import (
	"fmt"
	"log"
	"os"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/dpse/enviroplugin/common"
	"github.com/dpse/enviroplugin/enviro"
	"github.com/dpse/enviroplugin/sensors"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("enviro: ")

	mode := ""
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	// autoconf answers without touching the hardware.
	if mode == "autoconf" {
		enviro.Autoconf(os.Stdout)
		return
	}

	if err := run(mode); err != nil {
		log.Fatal(err)
	}
}

func run(mode string) error {
	plugin, closeAll, err := initSensors()
	if err != nil {
		return err
	}
	defer closeAll()

	if mode == "config" {
		dirty := os.Getenv("MUNIN_CAP_DIRTYCONFIG") == "1"
		return plugin.Config(os.Stdout, dirty)
	}
	return plugin.Fetch(os.Stdout)
}

// initSensors opens the I2C bus and every Enviro+ sensor. Failure of any
// one of them aborts the whole invocation; munin retries next cycle.
func initSensors() (*enviro.Plugin, func(), error) {
	if _, err := host.Init(); err != nil {
		return nil, nil, fmt.Errorf("periph host init: %v", err)
	}
	bus, err := i2creg.Open("")
	if err != nil {
		return nil, nil, fmt.Errorf("open i2c bus: %v", err)
	}

	bme, err := sensors.NewBME280(bus)
	if err != nil {
		bus.Close()
		return nil, nil, fmt.Errorf("bme280: %v", err)
	}
	light, err := sensors.NewLTR559(bus)
	if err != nil {
		bme.Close()
		bus.Close()
		return nil, nil, fmt.Errorf("ltr559: %v", err)
	}
	gas, err := sensors.NewMICS6814()
	if err != nil {
		light.Close()
		bme.Close()
		bus.Close()
		return nil, nil, fmt.Errorf("mics6814: %v", err)
	}

	plugin := &enviro.Plugin{
		Env:     bme,
		Light:   light,
		Gas:     gas,
		Noise:   sensors.NewNoise(""),
		CPUTemp: common.CPUTemperature,
		Samples: enviro.DefaultSamples,
		Delay:   enviro.DefaultDelay,
	}
	closeAll := func() {
		gas.Close()
		light.Close()
		bme.Close()
		bus.Close()
	}
	return plugin, closeAll, nil
}
