package sensors

import (
	"math"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/bmxx80"
)

const (
	bme280Address = 0x76

	// ISA sea-level pressure, hPa, for pressure altitude.
	qnh = 1013.25
)

// BME280 reads the Enviro+ onboard BME280 and implements EnvironmentReader.
type BME280 struct {
	dev *bmxx80.Dev
}

// NewBME280 opens the BME280 at its Enviro+ address on the given I2C bus.
func NewBME280(bus i2c.Bus) (*BME280, error) {
	dev, err := bmxx80.NewI2C(bus, bme280Address, &bmxx80.DefaultOpts)
	if err != nil {
		return nil, err
	}
	return &BME280{dev: dev}, nil
}

func (b *BME280) sense() (physic.Env, error) {
	var e physic.Env
	err := b.dev.Sense(&e)
	return e, err
}

// Temperature returns the current temperature in degrees C.
func (b *BME280) Temperature() (float64, error) {
	e, err := b.sense()
	if err != nil {
		return 0, err
	}
	return e.Temperature.Celsius(), nil
}

// Humidity returns the current relative humidity in %RH.
func (b *BME280) Humidity() (float64, error) {
	e, err := b.sense()
	if err != nil {
		return 0, err
	}
	return float64(e.Humidity) / float64(physic.PercentRH), nil
}

// Pressure returns the current atmospheric pressure in hPa.
func (b *BME280) Pressure() (float64, error) {
	e, err := b.sense()
	if err != nil {
		return 0, err
	}
	return float64(e.Pressure) / float64(100*physic.Pascal), nil
}

// Altitude derives pressure altitude in meters against the standard
// atmosphere.
func (b *BME280) Altitude() (float64, error) {
	p, err := b.Pressure()
	if err != nil {
		return 0, err
	}
	return 44330.0 * (1.0 - math.Pow(p/qnh, 1.0/5.255)), nil
}

// Close puts the sensor back to sleep.
func (b *BME280) Close() {
	_ = b.dev.Halt()
}
