package common

import (
	"math"
	"testing"
)

func TestCorrectTemperatureAgreement(t *testing.T) {
	// CPU and ambient at the same temperature means no correction.
	for _, v := range []float64{-10, 0, 21.5, 42.5} {
		if got := CorrectTemperature(v, v); got != v {
			t.Errorf("CorrectTemperature(%v, %v) = %v, want %v", v, v, got, v)
		}
	}
}

func TestCorrectTemperatureHotCPU(t *testing.T) {
	got := CorrectTemperature(20.0, 42.5)
	want := 20.0 - (42.5-20.0)/2.25
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("CorrectTemperature(20, 42.5) = %v, want %v", got, want)
	}
	if math.Abs(got-10.0) > 1e-9 {
		t.Errorf("CorrectTemperature(20, 42.5) = %v, want 10.0", got)
	}
}

func TestCorrectHumidityClamp(t *testing.T) {
	cases := []struct {
		rawH, rawT, corrT float64
	}{
		{100, 20, 20},
		{100, 30, 10}, // corrected colder than dew point
		{90, 25, -5},
		{50, 20, 19},
	}
	for _, c := range cases {
		got := CorrectHumidity(c.rawH, c.rawT, c.corrT)
		if got > 100 {
			t.Errorf("CorrectHumidity(%v, %v, %v) = %v, exceeds 100", c.rawH, c.rawT, c.corrT, got)
		}
	}

	if got := CorrectHumidity(100, 20, 20); got != 100 {
		t.Errorf("CorrectHumidity(100, 20, 20) = %v, want 100", got)
	}
}

func TestCorrectHumidityNoLowerClamp(t *testing.T) {
	// Extreme inputs may go negative; that is accepted behavior.
	got := CorrectHumidity(5, -20, 40)
	if got >= 0 {
		t.Errorf("CorrectHumidity(5, -20, 40) = %v, expected a negative value", got)
	}
}

func TestParseCPUTemperature(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"47234\n", 47.234, false},
		{"52486", 52.486, false},
		{"47\n", 47, false}, // already in degrees
		{"", 0, true},
		{"garbage", 0, true},
	}
	for _, c := range cases {
		got, err := parseCPUTemperature(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("parseCPUTemperature(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseCPUTemperature(%q): %v", c.in, err)
			continue
		}
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("parseCPUTemperature(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
