package common

// CorrectTemperature compensates the ambient reading for heat soaked in
// from the CPU sitting directly under the HAT. The 2.25 factor is empirical
// for the standard Enviro+ mounting.
func CorrectTemperature(raw, cpu float64) float64 {
	return raw - (cpu-raw)/2.25
}

// CorrectHumidity recomputes relative humidity against the compensated
// temperature, holding the dew point of the raw reading constant. The
// result is capped at 100; there is no lower clamp.
func CorrectHumidity(rawHumidity, rawTemperature, corrTemperature float64) float64 {
	dewpoint := rawTemperature - (100-rawHumidity)/5
	corr := 100 - 5*(corrTemperature-dewpoint)
	if corr > 100 {
		return 100
	}
	return corr
}
