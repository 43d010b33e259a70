// Package sensors provides the capability interfaces for the Enviro+ HAT
// sensors, plus implementations wrapping the hardware drivers. Consumers
// hold the interfaces only, so the reporting core runs against fakes with
// no hardware present.
package sensors

// GasReading holds the MICS6814 channel resistances in kilo-ohms.
type GasReading struct {
	Oxidising float64
	Reducing  float64
	NH3       float64
}

// NoiseProfile holds mean FFT magnitudes over the low/mid/high frequency
// bands of a microphone capture, plus their overall mean.
type NoiseProfile struct {
	Low  float64
	Mid  float64
	High float64
	Amp  float64
}

// EnvironmentReader provides an interface to a combined
// temperature/humidity/pressure sensor like the BME280.
type EnvironmentReader interface {
	Temperature() (float64, error) // degrees C
	Humidity() (float64, error)    // %RH
	Pressure() (float64, error)    // hPa
	Altitude() (float64, error)    // meters above ISA sea level
	Close()                        // Close stops reading from the sensor.
}

// LightReader provides an interface to an ambient light sensor.
type LightReader interface {
	Lux() (float64, error)
	Close()
}

// GasReader provides an interface to a multi-channel gas sensor.
type GasReader interface {
	Gas() (GasReading, error)
	Close()
}

// NoiseReader provides an interface to a microphone-derived noise profile.
type NoiseReader interface {
	NoiseProfile() (NoiseProfile, error)
}
