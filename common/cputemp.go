package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const cpuTempPath = "/sys/class/thermal/thermal_zone0/temp"

/* CPUTemperature reads the RPi board temperature from the kernel thermal
zone. Most kernels report millidegrees C, but some return a plain integer
degree value, so anything above 1000 is scaled down. */

func CPUTemperature() (float64, error) {
	raw, err := os.ReadFile(cpuTempPath)
	if err != nil {
		return 0, err
	}
	return parseCPUTemperature(string(raw))
}

func parseCPUTemperature(s string) (float64, error) {
	s = strings.TrimSpace(s)
	t, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad thermal zone value %q: %v", s, err)
	}
	if t > 1000 { // millidegrees
		return float64(t) / 1000.0, nil
	}
	return float64(t), nil
}
