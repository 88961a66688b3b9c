// Package dsp high-pass filtering.
//
// This file implements a first-order IIR high-pass filter used to remove
// DC offset and low-frequency noise from captured audio before recognition.
package dsp

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// HighPassFilter removes DC offset and low-frequency content below cutoffHz
// using a first-order recurrence.
//
// With dt = 1/sampleRate, rc = 1/(2π·cutoffHz) and alpha = rc/(rc+dt):
//
//	filtered[0] = input[0]
//	filtered[i] = alpha * (filtered[i-1] + input[i] - input[i-1])
//
// The first sample passes through unfiltered and no state is carried between
// calls: every invocation restarts the recurrence from its own first sample.
// The output has the same length as the input. An empty input is returned
// unchanged.
//
// Parameters:
//   - input: Mono float samples
//   - cutoffHz: Filter cutoff frequency in Hz, must be positive
//   - sampleRate: Sample rate of the input in Hz, must be positive
//
// Returns:
//   - []float32: Filtered samples, same length as the input
//   - error: Validation error if cutoffHz or sampleRate is invalid
func HighPassFilter(input []float32, cutoffHz float64, sampleRate uint32) ([]float32, error) {
	logrus.WithFields(logrus.Fields{
		"function":     "HighPassFilter",
		"sample_count": len(input),
		"cutoff_hz":    cutoffHz,
		"sample_rate":  sampleRate,
	}).Debug("Applying high-pass filter")

	if sampleRate == 0 {
		logrus.WithFields(logrus.Fields{
			"function":    "HighPassFilter",
			"sample_rate": sampleRate,
			"error":       "invalid sample rate",
		}).Error("Sample rate validation failed")
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if cutoffHz <= 0 {
		logrus.WithFields(logrus.Fields{
			"function":  "HighPassFilter",
			"cutoff_hz": cutoffHz,
			"error":     "invalid cutoff frequency",
		}).Error("Cutoff validation failed")
		return nil, fmt.Errorf("%w: %f", ErrInvalidCutoff, cutoffHz)
	}

	if len(input) == 0 {
		logrus.WithFields(logrus.Fields{
			"function": "HighPassFilter",
		}).Debug("Empty sample buffer, no filtering needed")
		return input, nil
	}

	dt := 1.0 / float64(sampleRate)
	rc := 1.0 / (2.0 * math.Pi * cutoffHz)
	alpha := float32(rc / (rc + dt))

	filtered := make([]float32, len(input))
	filtered[0] = input[0]
	for i := 1; i < len(input); i++ {
		filtered[i] = alpha * (filtered[i-1] + input[i] - input[i-1])
	}

	logrus.WithFields(logrus.Fields{
		"function":     "HighPassFilter",
		"sample_count": len(filtered),
		"cutoff_hz":    cutoffHz,
		"alpha":        alpha,
	}).Debug("High-pass filter applied")

	return filtered, nil
}
