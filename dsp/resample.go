// Package dsp sample rate conversion.
//
// This file implements linear interpolation resampling between arbitrary
// sample rates. Linear interpolation provides good quality for voice
// preprocessing without external dependencies; no anti-aliasing filter is
// applied, so downsampling may alias high-frequency content.
package dsp

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Resample converts a float buffer from sourceRate to targetRate using
// linear interpolation.
//
// The output length is floor(len(input) * targetRate / sourceRate). Output
// positions that map at or beyond the final source sample clamp to it.
//
// When sourceRate equals targetRate the input slice is returned unchanged
// (identity, not a copy): callers must treat the result as potentially
// aliasing the input.
//
// Parameters:
//   - input: Mono float samples at sourceRate
//   - sourceRate: Input sample rate in Hz
//   - targetRate: Desired output sample rate in Hz
//
// Returns:
//   - []float32: Resampled samples at targetRate
//   - error: Validation error if either rate is zero
func Resample(input []float32, sourceRate, targetRate uint32) ([]float32, error) {
	logrus.WithFields(logrus.Fields{
		"function":     "Resample",
		"sample_count": len(input),
		"source_rate":  sourceRate,
		"target_rate":  targetRate,
	}).Debug("Starting audio resampling")

	if sourceRate == 0 || targetRate == 0 {
		logrus.WithFields(logrus.Fields{
			"function":    "Resample",
			"source_rate": sourceRate,
			"target_rate": targetRate,
			"error":       "invalid sample rates",
		}).Error("Sample rate validation failed")
		return nil, fmt.Errorf("%w: source=%d, target=%d", ErrInvalidSampleRate, sourceRate, targetRate)
	}

	if sourceRate == targetRate {
		logrus.WithFields(logrus.Fields{
			"function":    "Resample",
			"sample_rate": sourceRate,
		}).Debug("Sample rates match, returning input unchanged")
		return input, nil
	}

	ratio := float64(targetRate) / float64(sourceRate)
	targetLength := int(float64(len(input)) * ratio)
	output := make([]float32, targetLength)

	for i := 0; i < targetLength; i++ {
		sourceIndex := float64(i) / ratio
		index := int(sourceIndex)
		fraction := sourceIndex - float64(index)

		if index >= len(input)-1 {
			// Clamp to the final source sample.
			output[i] = input[len(input)-1]
		} else {
			output[i] = input[index]*float32(1.0-fraction) + input[index+1]*float32(fraction)
		}
	}

	logrus.WithFields(logrus.Fields{
		"function":      "Resample",
		"source_rate":   sourceRate,
		"target_rate":   targetRate,
		"input_length":  len(input),
		"output_length": len(output),
		"ratio":         ratio,
	}).Info("Audio resampling completed")

	return output, nil
}

// ResampledLength returns the output length Resample produces for the given
// input length and rate pair. Useful for pre-allocating downstream buffers.
func ResampledLength(inputLength int, sourceRate, targetRate uint32) int {
	if sourceRate == 0 || targetRate == 0 || sourceRate == targetRate {
		return inputLength
	}
	return int(float64(inputLength) * float64(targetRate) / float64(sourceRate))
}
