// Package sampling smooths noisy sensor reads by averaging a burst of
// spaced samples.
package sampling

import (
	"errors"
	"fmt"
	"time"
)

var ErrBadCount = errors.New("sampling: sample count must be >= 1")

// Mean sleeps delay, calls read, n times over, and returns the arithmetic
// mean of the reads. A failed read aborts immediately; there are no
// retries.
func Mean(read func() (float64, error), n int, delay time.Duration) (float64, error) {
	if n < 1 {
		return 0, ErrBadCount
	}
	var sum float64
	for i := 0; i < n; i++ {
		time.Sleep(delay)
		v, err := read()
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum / float64(n), nil
}

// MeanVector is Mean for reads producing several values at a time, e.g. a
// noise band profile. Each component is averaged independently over the
// same n reads.
func MeanVector(read func() ([]float64, error), n int, delay time.Duration) ([]float64, error) {
	if n < 1 {
		return nil, ErrBadCount
	}
	var sums []float64
	for i := 0; i < n; i++ {
		time.Sleep(delay)
		vs, err := read()
		if err != nil {
			return nil, err
		}
		if sums == nil {
			sums = make([]float64, len(vs))
		} else if len(vs) != len(sums) {
			return nil, fmt.Errorf("sampling: read returned %d values, want %d", len(vs), len(sums))
		}
		for j, v := range vs {
			sums[j] += v
		}
	}
	for j := range sums {
		sums[j] /= float64(n)
	}
	return sums, nil
}
