package sensors

import (
	"github.com/rubiojr/go-enviroplus/mics6814"
)

// MICS6814 reads the Enviro+ analog gas sensor through the onboard ADS1015
// ADC and implements GasReader. The driver reports channel resistances in
// ohms; readings are scaled to kilo-ohms.
type MICS6814 struct {
	last func() GasReading
	halt func()
}

// NewMICS6814 opens the gas sensor and starts its background poller.
func NewMICS6814() (*MICS6814, error) {
	dev, err := mics6814.New()
	if err != nil {
		return nil, err
	}
	go dev.StartReading()
	return &MICS6814{
		last: func() GasReading {
			v := dev.LastValue()
			return GasReading{
				Oxidising: v.Oxidising / 1000,
				Reducing:  v.Reducing / 1000,
				NH3:       v.NH3 / 1000,
			}
		},
		halt: dev.Halt,
	}, nil
}

// Gas returns the most recent channel resistances.
func (g *MICS6814) Gas() (GasReading, error) {
	return g.last(), nil
}

// Close stops the poller and powers down the heater.
func (g *MICS6814) Close() {
	g.halt()
}
