package dsp

import "errors"

// Sentinel errors for dsp package operations.
// These errors enable reliable error classification using errors.Is().

var (
	// ErrInvalidSampleRate indicates a zero sample rate was supplied.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")

	// ErrInvalidCutoff indicates a non-positive filter cutoff frequency.
	ErrInvalidCutoff = errors.New("cutoff frequency must be positive")

	// ErrInvalidTargetLevel indicates a negative normalization target level.
	ErrInvalidTargetLevel = errors.New("target level must be non-negative")
)
