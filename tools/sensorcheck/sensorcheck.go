// Command sensorcheck prints one raw reading from every Enviro+ sensor.
// Handy for verifying the HAT wiring without involving munin.
package main

import (
	"fmt"
	"log"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/dpse/enviroplugin/common"
	"github.com/dpse/enviroplugin/sensors"
)

func main() {
	log.SetFlags(0)

	if _, err := host.Init(); err != nil {
		log.Fatalf("periph host init: %v", err)
	}
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("open i2c bus: %v", err)
	}
	defer bus.Close()

	if cpu, err := common.CPUTemperature(); err != nil {
		log.Printf("cpu temperature: %v", err)
	} else {
		fmt.Printf("cpu temperature: %.2f C\n", cpu)
	}

	if bme, err := sensors.NewBME280(bus); err != nil {
		log.Printf("bme280: %v", err)
	} else {
		defer bme.Close()
		printReading("temperature", "C", bme.Temperature)
		printReading("humidity", "%RH", bme.Humidity)
		printReading("pressure", "hPa", bme.Pressure)
		printReading("altitude", "m", bme.Altitude)
	}

	if light, err := sensors.NewLTR559(bus); err != nil {
		log.Printf("ltr559: %v", err)
	} else {
		defer light.Close()
		printReading("light", "lux", light.Lux)
	}

	if gas, err := sensors.NewMICS6814(); err != nil {
		log.Printf("mics6814: %v", err)
	} else {
		defer gas.Close()
		if r, err := gas.Gas(); err != nil {
			log.Printf("gas: %v", err)
		} else {
			fmt.Printf("gas: ox=%.2f red=%.2f nh3=%.2f kOhm\n", r.Oxidising, r.Reducing, r.NH3)
		}
	}

	if p, err := sensors.NewNoise("").NoiseProfile(); err != nil {
		log.Printf("noise: %v", err)
	} else {
		fmt.Printf("noise: low=%.2f mid=%.2f high=%.2f amp=%.2f\n", p.Low, p.Mid, p.High, p.Amp)
	}
}

func printReading(name, unit string, read func() (float64, error)) {
	v, err := read()
	if err != nil {
		log.Printf("%s: %v", name, err)
		return
	}
	fmt.Printf("%s: %.2f %s\n", name, v, unit)
}
