// Package dsp amplitude normalization.
//
// This file implements peak normalization, rescaling a buffer so its peak
// absolute amplitude matches a target level before recognition.
package dsp

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Normalize rescales the buffer so its peak absolute value equals
// targetLevel.
//
// If the input is silent (all samples zero) or empty, the input slice is
// returned unchanged (identity, not a copy): callers must treat the result
// as potentially aliasing the input. Otherwise a new buffer is produced with
// every sample multiplied by targetLevel / max(|input|), so the output peak
// equals targetLevel within floating-point tolerance.
//
// Parameters:
//   - input: Mono float samples
//   - targetLevel: Desired peak absolute amplitude, must be non-negative
//
// Returns:
//   - []float32: Normalized samples, same length as the input
//   - error: Validation error if targetLevel is negative
func Normalize(input []float32, targetLevel float32) ([]float32, error) {
	logrus.WithFields(logrus.Fields{
		"function":     "Normalize",
		"sample_count": len(input),
		"target_level": targetLevel,
	}).Debug("Normalizing audio amplitude")

	if targetLevel < 0 {
		logrus.WithFields(logrus.Fields{
			"function":     "Normalize",
			"target_level": targetLevel,
			"error":        "negative target level",
		}).Error("Target level validation failed")
		return nil, fmt.Errorf("%w: %f", ErrInvalidTargetLevel, targetLevel)
	}

	if len(input) == 0 {
		logrus.WithFields(logrus.Fields{
			"function": "Normalize",
		}).Debug("Empty sample buffer, no normalization needed")
		return input, nil
	}

	var maxVal float32
	for _, s := range input {
		if s < 0 {
			s = -s
		}
		if s > maxVal {
			maxVal = s
		}
	}

	if maxVal == 0 {
		logrus.WithFields(logrus.Fields{
			"function":     "Normalize",
			"sample_count": len(input),
		}).Debug("Silent audio, returning input unchanged")
		return input, nil
	}

	scale := targetLevel / maxVal
	output := make([]float32, len(input))
	for i, s := range input {
		output[i] = s * scale
	}

	logrus.WithFields(logrus.Fields{
		"function":     "Normalize",
		"sample_count": len(output),
		"peak":         maxVal,
		"target_level": targetLevel,
		"scale":        scale,
	}).Debug("Normalization completed")

	return output, nil
}
