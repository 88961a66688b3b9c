package recognizer

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fixed responses of the placeholder recognition layer. These mirror the
// strings the host application shipped before real inference was wired in.
const (
	placeholderTranscription = "Placeholder transcription result - whisper.cpp integration pending"
	placeholderModelInfo     = "Placeholder model info - no model loaded"
)

// Placeholder is a non-functional Recognizer used until the real
// whisper.cpp integration lands.
//
// It validates and remembers its configuration, hands out a context ID, and
// returns fixed strings from every query. No model file is opened and no
// inference runs.
type Placeholder struct {
	mu        sync.Mutex
	contextID string
	modelPath string
	threads   int
	released  bool
}

// Compile-time interface check.
var _ Recognizer = (*Placeholder)(nil)

// NewPlaceholder initializes a placeholder recognition context.
//
// The model path is recorded but never opened; thread count is recorded but
// no worker pool is created.
//
// Parameters:
//   - modelPath: Path to the recognition model file (must be non-empty)
//   - threads: Number of inference threads (must be positive)
//
// Returns:
//   - *Placeholder: New placeholder context
//   - error: Validation error if the parameters are invalid
func NewPlaceholder(modelPath string, threads int) (*Placeholder, error) {
	logrus.WithFields(logrus.Fields{
		"function":   "NewPlaceholder",
		"model_path": modelPath,
		"threads":    threads,
	}).Info("Initializing placeholder recognition context")

	if modelPath == "" {
		logrus.WithFields(logrus.Fields{
			"function": "NewPlaceholder",
			"error":    "empty model path",
		}).Error("Context initialization failed")
		return nil, ErrEmptyModelPath
	}
	if threads <= 0 {
		logrus.WithFields(logrus.Fields{
			"function": "NewPlaceholder",
			"threads":  threads,
			"error":    "invalid thread count",
		}).Error("Context initialization failed")
		return nil, fmt.Errorf("%w: %d", ErrInvalidThreadCount, threads)
	}

	p := &Placeholder{
		contextID: uuid.New().String(),
		modelPath: modelPath,
		threads:   threads,
	}

	logrus.WithFields(logrus.Fields{
		"function":   "NewPlaceholder",
		"context_id": p.contextID,
		"model_path": modelPath,
		"threads":    threads,
	}).Info("Placeholder recognition context initialized")

	return p, nil
}

// ContextID returns the opaque identifier assigned to this context.
func (p *Placeholder) ContextID() string {
	return p.contextID
}

// Transcribe returns the fixed placeholder transcription.
//
// The audio buffer is accepted and ignored; no inference is performed.
func (p *Placeholder) Transcribe(samples []float32, sampleRate uint32, language string, translate bool) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"function":     "Placeholder.Transcribe",
		"context_id":   p.contextID,
		"sample_count": len(samples),
		"sample_rate":  sampleRate,
		"language":     language,
		"translate":    translate,
	}).Info("Placeholder transcribe called")

	if p.released {
		logrus.WithFields(logrus.Fields{
			"function":   "Placeholder.Transcribe",
			"context_id": p.contextID,
			"error":      "context released",
		}).Error("Transcription failed")
		return "", ErrContextReleased
	}

	return placeholderTranscription, nil
}

// ModelInfo returns the fixed placeholder model description.
func (p *Placeholder) ModelInfo() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"function":   "Placeholder.ModelInfo",
		"context_id": p.contextID,
	}).Debug("Placeholder model info called")

	if p.released {
		return "", ErrContextReleased
	}
	return placeholderModelInfo, nil
}

// IsMultilingual always reports false for the placeholder.
func (p *Placeholder) IsMultilingual() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"function":   "Placeholder.IsMultilingual",
		"context_id": p.contextID,
	}).Debug("Placeholder multilingual check called")

	if p.released {
		return false, ErrContextReleased
	}
	return false, nil
}

// Close releases the placeholder context. Close is idempotent; subsequent
// calls are no-ops.
func (p *Placeholder) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.released {
		logrus.WithFields(logrus.Fields{
			"function":   "Placeholder.Close",
			"context_id": p.contextID,
		}).Debug("Context already released")
		return nil
	}

	p.released = true

	logrus.WithFields(logrus.Fields{
		"function":   "Placeholder.Close",
		"context_id": p.contextID,
	}).Info("Placeholder recognition context released")

	return nil
}
