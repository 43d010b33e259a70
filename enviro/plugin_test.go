package enviro

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dpse/enviroplugin/sensors"
)

type fakeEnv struct {
	temp, humid, press, alt float64
	err                     error
}

func (f *fakeEnv) Temperature() (float64, error) { return f.temp, f.err }
func (f *fakeEnv) Humidity() (float64, error)    { return f.humid, f.err }
func (f *fakeEnv) Pressure() (float64, error)    { return f.press, f.err }
func (f *fakeEnv) Altitude() (float64, error)    { return f.alt, f.err }
func (f *fakeEnv) Close()                        {}

type fakeLight struct{ lux float64 }

func (f *fakeLight) Lux() (float64, error) { return f.lux, nil }
func (f *fakeLight) Close()                {}

type fakeGas struct{ r sensors.GasReading }

func (f *fakeGas) Gas() (sensors.GasReading, error) { return f.r, nil }
func (f *fakeGas) Close()                           {}

type fakeNoise struct{ p sensors.NoiseProfile }

func (f *fakeNoise) NoiseProfile() (sensors.NoiseProfile, error) { return f.p, nil }

func testPlugin() *Plugin {
	return &Plugin{
		Env:     &fakeEnv{temp: 20, humid: 50, press: 1013.25, alt: 0},
		Light:   &fakeLight{lux: 120},
		Gas:     &fakeGas{r: sensors.GasReading{Oxidising: 7.5, Reducing: 450, NH3: 80}},
		Noise:   &fakeNoise{p: sensors.NoiseProfile{Low: 1, Mid: 2, High: 3, Amp: 2}},
		CPUTemp: func() (float64, error) { return 42.5, nil },
		Samples: 2,
		Delay:   0,
		sleep:   func(time.Duration) {},
	}
}

var graphOrder = []string{
	"temperature", "humidity", "pressure", "altitude", "light", "gas", "noise",
}

func TestFetchGraphOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := testPlugin().Fetch(&buf); err != nil {
		t.Fatal(err)
	}

	var headers []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "multigraph ") {
			headers = append(headers, strings.TrimPrefix(line, "multigraph enviro_"))
		}
	}
	if len(headers) != len(graphOrder) {
		t.Fatalf("got %d graph headers, want %d: %v", len(headers), len(graphOrder), headers)
	}
	for i, want := range graphOrder {
		if headers[i] != want {
			t.Errorf("graph %d: got %q, want %q", i, headers[i], want)
		}
	}
}

func TestFetchBlockShape(t *testing.T) {
	var buf bytes.Buffer
	if err := testPlugin().Fetch(&buf); err != nil {
		t.Fatal(err)
	}
	blocks := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n\n")
	if len(blocks) != 7 {
		t.Fatalf("got %d blocks, want 7", len(blocks))
	}
	fieldCounts := []int{3, 2, 1, 1, 1, 3, 4}
	for i, block := range blocks {
		lines := strings.Split(block, "\n")
		if !strings.HasPrefix(lines[0], "multigraph enviro_") {
			t.Errorf("block %d does not start with a graph header: %q", i, lines[0])
		}
		if got := len(lines) - 1; got != fieldCounts[i] {
			t.Errorf("block %d: got %d value lines, want %d", i, got, fieldCounts[i])
		}
		for _, line := range lines[1:] {
			if !strings.Contains(line, ".value ") {
				t.Errorf("block %d: not a value line: %q", i, line)
			}
		}
	}
}

func TestFetchCorrectedValues(t *testing.T) {
	// Raw 20C with the CPU at 42.5C corrects to 10C; raw 50%RH at that
	// correction clamps to 100%RH.
	var buf bytes.Buffer
	if err := testPlugin().Fetch(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"temperature.value 10.00000000\n",
		"raw_temperature.value 20.00000000\n",
		"cpu_temperature.value 42.50000000\n",
		"humidity.value 100.00000000\n",
		"raw_humidity.value 50.00000000\n",
		"pressure.value 1013.25000000\n",
		"light.value 120.00000000\n",
		"oxidising.value 7.50000000\n",
		"nh3.value 80.00000000\n",
		"amp.value 2.00000000\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestFetchErrorWritesNothing(t *testing.T) {
	p := testPlugin()
	p.Env = &fakeEnv{err: errors.New("bus gone")}
	var buf bytes.Buffer
	if err := p.Fetch(&buf); err == nil {
		t.Fatal("expected error from failing sensor")
	}
	if buf.Len() != 0 {
		t.Errorf("partial output after sensor failure: %q", buf.String())
	}
}

func TestConfigOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := testPlugin().Config(&buf, false); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if strings.Contains(out, ".value ") {
		t.Error("config without dirtyconfig emitted value lines")
	}
	if got := strings.Count(out, "multigraph enviro_"); got != 7 {
		t.Errorf("got %d graph headers, want 7", got)
	}
	if got := strings.Count(out, "graph_category environment\n"); got != 7 {
		t.Errorf("got %d category lines, want 7", got)
	}
	if got := strings.Count(out, "graph_args --base 1000 --lower-limit 0\n"); got != 7 {
		t.Errorf("got %d graph_args lines, want 7", got)
	}
	for _, want := range []string{
		"graph_title Temperature\n", "graph_vlabel %RH\n", "graph_vlabel hPa\n",
		"raw_temperature.label Raw Temperature\n", "nh3.label NH3\n", "amp.label Amp\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q", want)
		}
	}
}

func TestConfigDirty(t *testing.T) {
	var buf bytes.Buffer
	if err := testPlugin().Config(&buf, true); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	lastLabel := strings.LastIndex(out, ".label ")
	firstValue := strings.Index(out, ".value ")
	if firstValue == -1 {
		t.Fatal("dirtyconfig output has no value lines")
	}
	if lastLabel > firstValue {
		t.Error("value report not strictly after the config block")
	}
	if got := strings.Count(out, "multigraph enviro_"); got != 14 {
		t.Errorf("got %d graph headers, want 14 (config + values)", got)
	}
}

func TestAutoconf(t *testing.T) {
	var buf bytes.Buffer
	Autoconf(&buf)
	if buf.String() != "yes\n" {
		t.Errorf("autoconf output %q, want %q", buf.String(), "yes\n")
	}
}
