package sensors

import (
	"periph.io/x/conn/v3/i2c"

	"github.com/dpse/enviroplugin/sensors/ltr559"
)

// LTR559 reads the Enviro+ ambient light sensor and implements LightReader.
type LTR559 struct {
	dev *ltr559.Dev
}

// NewLTR559 probes and starts the LTR-559 on the given I2C bus.
func NewLTR559(bus i2c.Bus) (*LTR559, error) {
	dev, err := ltr559.New(bus)
	if err != nil {
		return nil, err
	}
	return &LTR559{dev: dev}, nil
}

// Lux returns the current illuminance.
func (l *LTR559) Lux() (float64, error) {
	return l.dev.Lux()
}

// Close puts the sensor in standby.
func (l *LTR559) Close() {
	l.dev.Close()
}
