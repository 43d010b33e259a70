// Package ltr559 is a minimal I2C driver for the Lite-On LTR-559 ambient
// light sensor, covering only the ALS channel wired up on the Enviro+.
package ltr559

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/i2c"
)

var ErrNotPresent = errors.New("ltr559: part/manufacturer ID mismatch, check wiring")

// Lux conversion coefficients from the datasheet appendix, selected by the
// CH1/(CH0+CH1) ratio.
var (
	ch0Coeff = [4]float64{17743, 42785, 5926, 0}
	ch1Coeff = [4]float64{-11059, 19548, -1185, 0}
)

const (
	alsGain       = 4.0
	integrationMs = 50.0
	wakeupDelay   = 100 * time.Millisecond
)

// Dev is a handle to an initialized LTR-559.
type Dev struct {
	conn i2c.Dev
}

// New probes the LTR-559 on the given bus, resets it and starts the ALS
// channel with 4x gain and 50ms integration.
func New(bus i2c.Bus) (*Dev, error) {
	d := &Dev{conn: i2c.Dev{Bus: bus, Addr: Address}}

	part, err := d.readRegister(RegPartID)
	if err != nil {
		return nil, fmt.Errorf("ltr559: read part ID: %v", err)
	}
	manu, err := d.readRegister(RegManufacturerID)
	if err != nil {
		return nil, fmt.Errorf("ltr559: read manufacturer ID: %v", err)
	}
	if part>>4 != PartNumber || manu != ManufacturerID {
		return nil, ErrNotPresent
	}

	if err := d.writeRegister(RegAlsControl, AlsControlSWReset); err != nil {
		return nil, fmt.Errorf("ltr559: reset: %v", err)
	}
	time.Sleep(wakeupDelay)
	if err := d.writeRegister(RegAlsMeasRate, AlsMeasRate50ms); err != nil {
		return nil, fmt.Errorf("ltr559: set measurement rate: %v", err)
	}
	if err := d.writeRegister(RegAlsControl, AlsControlGain4X|AlsControlActive); err != nil {
		return nil, fmt.Errorf("ltr559: activate: %v", err)
	}
	time.Sleep(wakeupDelay)

	return d, nil
}

// Lux reads both ALS channels and converts them to an illuminance value.
func (d *Dev) Lux() (float64, error) {
	var buf [4]byte
	if err := d.conn.Tx([]byte{RegAlsData}, buf[:]); err != nil {
		return 0, fmt.Errorf("ltr559: read ALS data: %v", err)
	}
	ch1 := uint16(buf[0]) | uint16(buf[1])<<8
	ch0 := uint16(buf[2]) | uint16(buf[3])<<8
	return toLux(ch0, ch1), nil
}

func toLux(ch0, ch1 uint16) float64 {
	if ch0 == 0 && ch1 == 0 {
		return 0
	}
	ratio := float64(ch1) * 100 / float64(uint32(ch0)+uint32(ch1))
	var idx int
	switch {
	case ratio < 45:
		idx = 0
	case ratio < 64:
		idx = 1
	case ratio < 85:
		idx = 2
	default:
		idx = 3
	}
	lux := float64(ch0)*ch0Coeff[idx] - float64(ch1)*ch1Coeff[idx]
	lux /= integrationMs / 100.0
	lux /= alsGain
	lux /= 10000.0
	return lux
}

// Close puts the ALS channel back in standby.
func (d *Dev) Close() {
	_ = d.writeRegister(RegAlsControl, 0)
}

func (d *Dev) readRegister(reg byte) (byte, error) {
	var buf [1]byte
	if err := d.conn.Tx([]byte{reg}, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (d *Dev) writeRegister(reg, val byte) error {
	return d.conn.Tx([]byte{reg, val}, nil)
}
