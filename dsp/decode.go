// Package dsp PCM decoding.
//
// This file implements fixed-point to floating-point sample conversion,
// the first stage of the preprocessing pipeline.
package dsp

import (
	"github.com/sirupsen/logrus"
)

// pcm16Scale maps the int16 domain [-32768, 32767] onto [-1.0, 1.0).
const pcm16Scale = 1.0 / 32768.0

// DecodePCM16 converts signed 16-bit PCM samples to normalized float32 samples.
//
// Each output sample equals input[i] / 32768.0, so the nominal output domain
// is [-1.0, 1.0). The conversion is purely elementwise with no cross-sample
// dependency; an empty (or nil) input yields an empty output.
//
// Parameters:
//   - pcm: Signed 16-bit PCM samples
//
// Returns:
//   - []float32: Normalized float samples, same length as the input
//   - error: Reserved for input acquisition failures; nil for any readable buffer
func DecodePCM16(pcm []int16) ([]float32, error) {
	logrus.WithFields(logrus.Fields{
		"function":     "DecodePCM16",
		"sample_count": len(pcm),
	}).Debug("Decoding PCM16 samples to float")

	out := make([]float32, len(pcm))
	for i, s := range pcm {
		out[i] = float32(s) * pcm16Scale
	}

	logrus.WithFields(logrus.Fields{
		"function":     "DecodePCM16",
		"sample_count": len(out),
	}).Debug("PCM16 decoding completed")

	return out, nil
}
