// Package dsp signal energy measurement.
//
// This file implements the RMS energy meter used for level metering and
// simple voice activity decisions in callers.
package dsp

import (
	"math"

	"github.com/sirupsen/logrus"
)

// ComputeRMS returns the root-mean-square energy of the buffer.
//
// Squares are accumulated in float64 regardless of the float32 sample
// storage to bound rounding error over long buffers. The result is invariant
// under sign negation of all samples, and an all-zero buffer yields 0.
//
// An empty buffer yields NaN (the division by zero is deliberately left
// unguarded); callers that cannot tolerate NaN must check the length first.
//
// Parameters:
//   - input: Mono float samples
//
// Returns:
//   - float32: RMS energy of the buffer, NaN for an empty buffer
func ComputeRMS(input []float32) float32 {
	logrus.WithFields(logrus.Fields{
		"function":     "ComputeRMS",
		"sample_count": len(input),
	}).Debug("Computing RMS energy")

	if len(input) == 0 {
		logrus.WithFields(logrus.Fields{
			"function": "ComputeRMS",
		}).Warn("Empty sample buffer, RMS is undefined")
		return float32(math.NaN())
	}

	var sumSquares float64
	for _, s := range input {
		sumSquares += float64(s) * float64(s)
	}

	rms := float32(math.Sqrt(sumSquares / float64(len(input))))

	logrus.WithFields(logrus.Fields{
		"function":     "ComputeRMS",
		"sample_count": len(input),
		"rms":          rms,
	}).Debug("RMS computation completed")

	return rms
}
