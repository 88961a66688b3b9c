package recognizer

import "errors"

// Sentinel errors for recognizer operations.
var (
	// ErrEmptyModelPath indicates no model path was supplied at init.
	ErrEmptyModelPath = errors.New("model path must not be empty")

	// ErrInvalidThreadCount indicates a non-positive thread count.
	ErrInvalidThreadCount = errors.New("thread count must be positive")

	// ErrContextReleased indicates the recognition context was already closed.
	ErrContextReleased = errors.New("recognition context already released")
)

// Recognizer is the capability set a speech-recognition engine exposes to
// the preprocessing core.
//
// Implementations consume preprocessed float buffers produced by the
// pipeline. All methods must be safe to call from a single goroutine at a
// time; Close releases the underlying context and must be idempotent.
type Recognizer interface {
	// Transcribe converts a preprocessed audio buffer into text.
	// language is a BCP-47-ish tag ("en", "auto"); translate requests
	// translation to English instead of same-language transcription.
	Transcribe(samples []float32, sampleRate uint32, language string, translate bool) (string, error)

	// ModelInfo returns a human-readable description of the loaded model.
	ModelInfo() (string, error)

	// IsMultilingual reports whether the loaded model supports more than
	// one language.
	IsMultilingual() (bool, error)

	// Close releases the recognition context.
	Close() error
}
