package sensors

import (
	"encoding/binary"
	"fmt"
	"math/cmplx"
	"os/exec"

	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	noiseSampleRate = 16000

	// Spectrum split: everything below the floor bin is discarded, then the
	// low band covers the first 12% of the usable bins, mid the next 36%,
	// high the rest. Bins are 1Hz wide at a one second, 16kHz capture.
	noiseFloorBin = 100
	noiseLowFrac  = 0.12
	noiseMidFrac  = 0.36
)

// Noise measures a band-energy profile from the Enviro+ MEMS microphone.
// One second of mono PCM is captured with arecord and run through a real
// FFT; the profile is the mean magnitude per band.
type Noise struct {
	record func() ([]float64, error)
	fft    *fourier.FFT
}

// NewNoise returns a NoiseReader capturing from the given ALSA device, or
// the default capture device when empty.
func NewNoise(device string) *Noise {
	return &Noise{
		record: func() ([]float64, error) { return recordPCM(device) },
		fft:    fourier.NewFFT(noiseSampleRate),
	}
}

// NoiseProfile captures one second of audio and returns its band profile.
func (n *Noise) NoiseProfile() (NoiseProfile, error) {
	samples, err := n.record()
	if err != nil {
		return NoiseProfile{}, err
	}
	if len(samples) < noiseSampleRate {
		return NoiseProfile{}, fmt.Errorf("noise: short capture, got %d of %d samples",
			len(samples), noiseSampleRate)
	}
	coeffs := n.fft.Coefficients(nil, samples[:noiseSampleRate])
	magnitude := make([]float64, len(coeffs))
	for i, c := range coeffs {
		magnitude[i] = cmplx.Abs(c)
	}
	return bandProfile(magnitude), nil
}

func bandProfile(magnitude []float64) NoiseProfile {
	usable := len(magnitude) - noiseFloorBin
	midStart := noiseFloorBin + int(float64(usable)*noiseLowFrac)
	highStart := midStart + int(float64(usable)*noiseMidFrac)
	low := mean(magnitude[noiseFloorBin:midStart])
	mid := mean(magnitude[midStart:highStart])
	high := mean(magnitude[highStart:])
	return NoiseProfile{
		Low:  low,
		Mid:  mid,
		High: high,
		Amp:  (low + mid + high) / 3,
	}
}

func mean(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

func recordPCM(device string) ([]float64, error) {
	args := []string{"-q", "-t", "raw", "-f", "S16_LE",
		"-r", fmt.Sprint(noiseSampleRate), "-c", "1", "-d", "1"}
	if device != "" {
		args = append(args, "-D", device)
	}
	out, err := exec.Command("arecord", args...).Output()
	if err != nil {
		return nil, fmt.Errorf("noise: arecord: %v", err)
	}
	return decodePCM(out), nil
}

// decodePCM converts raw little-endian signed 16-bit mono PCM to floats.
func decodePCM(raw []byte) []float64 {
	samples := make([]float64, len(raw)/2)
	for i := range samples {
		samples[i] = float64(int16(binary.LittleEndian.Uint16(raw[2*i:])))
	}
	return samples
}
