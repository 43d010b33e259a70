// Package enviro implements the munin plugin core: sampled collection of
// the Enviro+ sensor groups and the value-report, config and autoconf
// output modes. Hardware access goes through the sensors interfaces, so
// everything here runs against fakes in tests.
package enviro

import (
	"fmt"
	"time"

	"github.com/dpse/enviroplugin/common"
	"github.com/dpse/enviroplugin/sampling"
	"github.com/dpse/enviroplugin/sensors"
)

const (
	DefaultSamples = 10
	DefaultDelay   = 100 * time.Millisecond

	// First reads after power-on are unreliable; the HAT gets a settle
	// pause after one discarded read of everything. The gas ADC needs an
	// extra conversion in flight before values mean anything.
	settleDelay    = 500 * time.Millisecond
	gasSettleDelay = 200 * time.Millisecond
)

// Plugin bundles the sensor sources with the sampling parameters.
type Plugin struct {
	Env     sensors.EnvironmentReader
	Light   sensors.LightReader
	Gas     sensors.GasReader
	Noise   sensors.NoiseReader
	CPUTemp func() (float64, error)

	Samples int
	Delay   time.Duration

	sleep func(time.Duration) // nil means time.Sleep
}

func (p *Plugin) pause(d time.Duration) {
	if p.sleep != nil {
		p.sleep(d)
		return
	}
	time.Sleep(d)
}

func (p *Plugin) warmUp() error {
	if _, err := p.Env.Temperature(); err != nil {
		return fmt.Errorf("environment sensor: %v", err)
	}
	if _, err := p.Light.Lux(); err != nil {
		return fmt.Errorf("light sensor: %v", err)
	}
	if _, err := p.Gas.Gas(); err != nil {
		return fmt.Errorf("gas sensor: %v", err)
	}
	if _, err := p.Noise.NoiseProfile(); err != nil {
		return fmt.Errorf("noise profile: %v", err)
	}
	p.pause(settleDelay)
	return nil
}

// collect samples every sensor group and returns the full reading set,
// keyed by munin field name.
func (p *Plugin) collect() (map[string]float64, error) {
	if err := p.warmUp(); err != nil {
		return nil, err
	}
	data := make(map[string]float64)
	if err := p.collectEnvironment(data); err != nil {
		return nil, fmt.Errorf("environment sensor: %v", err)
	}
	if err := p.collectLight(data); err != nil {
		return nil, fmt.Errorf("light sensor: %v", err)
	}
	if err := p.collectGas(data); err != nil {
		return nil, fmt.Errorf("gas sensor: %v", err)
	}
	if err := p.collectNoise(data); err != nil {
		return nil, fmt.Errorf("noise profile: %v", err)
	}
	return data, nil
}

func (p *Plugin) collectEnvironment(data map[string]float64) error {
	// CPU temperature, raw temperature and raw humidity are sampled in
	// lock step so the corrections compare readings from the same instants.
	vals, err := sampling.MeanVector(func() ([]float64, error) {
		cpu, err := p.CPUTemp()
		if err != nil {
			return nil, err
		}
		t, err := p.Env.Temperature()
		if err != nil {
			return nil, err
		}
		h, err := p.Env.Humidity()
		if err != nil {
			return nil, err
		}
		return []float64{cpu, t, h}, nil
	}, p.Samples, p.Delay)
	if err != nil {
		return err
	}
	cpu, rawT, rawH := vals[0], vals[1], vals[2]
	corrT := common.CorrectTemperature(rawT, cpu)

	data["temperature"] = corrT
	data["raw_temperature"] = rawT
	data["cpu_temperature"] = cpu
	data["humidity"] = common.CorrectHumidity(rawH, rawT, corrT)
	data["raw_humidity"] = rawH

	pressure, err := sampling.Mean(p.Env.Pressure, p.Samples, p.Delay)
	if err != nil {
		return err
	}
	data["pressure"] = pressure

	altitude, err := sampling.Mean(p.Env.Altitude, p.Samples, p.Delay)
	if err != nil {
		return err
	}
	data["altitude"] = altitude
	return nil
}

func (p *Plugin) collectLight(data map[string]float64) error {
	light, err := sampling.Mean(p.Light.Lux, p.Samples, p.Delay)
	if err != nil {
		return err
	}
	data["light"] = light
	return nil
}

func (p *Plugin) collectGas(data map[string]float64) error {
	if _, err := p.Gas.Gas(); err != nil {
		return err
	}
	p.pause(gasSettleDelay)
	vals, err := sampling.MeanVector(func() ([]float64, error) {
		g, err := p.Gas.Gas()
		if err != nil {
			return nil, err
		}
		return []float64{g.Oxidising, g.Reducing, g.NH3}, nil
	}, p.Samples, p.Delay)
	if err != nil {
		return err
	}
	data["oxidising"], data["reducing"], data["nh3"] = vals[0], vals[1], vals[2]
	return nil
}

func (p *Plugin) collectNoise(data map[string]float64) error {
	vals, err := sampling.MeanVector(func() ([]float64, error) {
		np, err := p.Noise.NoiseProfile()
		if err != nil {
			return nil, err
		}
		return []float64{np.Low, np.Mid, np.High, np.Amp}, nil
	}, p.Samples, p.Delay)
	if err != nil {
		return err
	}
	data["low"], data["mid"], data["high"], data["amp"] = vals[0], vals[1], vals[2], vals[3]
	return nil
}
