package whisperaudio

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/whisperaudio/dsp"
)

// Default pipeline settings matching what the recognition stage expects.
const (
	// DefaultTargetRate is the sample rate the recognition stage consumes.
	DefaultTargetRate uint32 = 16000

	// DefaultCutoffHz is the high-pass cutoff used to strip DC offset and
	// low-frequency rumble from microphone capture.
	DefaultCutoffHz float64 = 100.0

	// DefaultTargetLevel is the peak level buffers are normalized to,
	// leaving headroom against clipping from later stages.
	DefaultTargetLevel float32 = 0.95
)

// Config describes a preprocessing pipeline.
//
// SourceRate is required; the remaining fields fall back to the defaults
// above when left zero. DisableFilter and DisableNormalize skip the
// corresponding stage entirely.
type Config struct {
	SourceRate       uint32  // Capture sample rate in Hz (required)
	TargetRate       uint32  // Output sample rate in Hz (default 16000)
	CutoffHz         float64 // High-pass cutoff in Hz (default 100)
	TargetLevel      float32 // Normalization peak level (default 0.95)
	DisableFilter    bool    // Skip the high-pass stage
	DisableNormalize bool    // Skip the normalization stage
}

// Pipeline composes the core preprocessing operations in the order the
// recognition stage expects:
//
//	PCM16 → DecodePCM16 → Resample → HighPassFilter → Normalize
//
// A Pipeline is a configuration record plus sequencing; it carries no state
// between calls and is safe for concurrent use on disjoint buffers.
type Pipeline struct {
	config Config
}

// NewPipeline creates a preprocessing pipeline for the given configuration.
//
// Zero-valued optional fields are filled with the package defaults. The
// source rate must be positive, and when filtering is enabled the cutoff
// must be positive too.
//
// Parameters:
//   - config: Pipeline configuration
//
// Returns:
//   - *Pipeline: Configured pipeline instance
//   - error: Validation error if the configuration is invalid
func NewPipeline(config Config) (*Pipeline, error) {
	logrus.WithFields(logrus.Fields{
		"function":    "NewPipeline",
		"source_rate": config.SourceRate,
		"target_rate": config.TargetRate,
	}).Info("Creating preprocessing pipeline")

	if config.SourceRate == 0 {
		logrus.WithFields(logrus.Fields{
			"function": "NewPipeline",
			"error":    "source rate required",
		}).Error("Pipeline configuration validation failed")
		return nil, fmt.Errorf("pipeline config: %w", dsp.ErrInvalidSampleRate)
	}

	if config.TargetRate == 0 {
		config.TargetRate = DefaultTargetRate
	}
	if config.CutoffHz == 0 {
		config.CutoffHz = DefaultCutoffHz
	}
	if config.TargetLevel == 0 {
		config.TargetLevel = DefaultTargetLevel
	}

	if !config.DisableFilter && config.CutoffHz <= 0 {
		logrus.WithFields(logrus.Fields{
			"function":  "NewPipeline",
			"cutoff_hz": config.CutoffHz,
			"error":     "invalid cutoff frequency",
		}).Error("Pipeline configuration validation failed")
		return nil, fmt.Errorf("pipeline config: %w", dsp.ErrInvalidCutoff)
	}
	if !config.DisableNormalize && config.TargetLevel < 0 {
		logrus.WithFields(logrus.Fields{
			"function":     "NewPipeline",
			"target_level": config.TargetLevel,
			"error":        "invalid target level",
		}).Error("Pipeline configuration validation failed")
		return nil, fmt.Errorf("pipeline config: %w", dsp.ErrInvalidTargetLevel)
	}

	logrus.WithFields(logrus.Fields{
		"function":     "NewPipeline",
		"source_rate":  config.SourceRate,
		"target_rate":  config.TargetRate,
		"cutoff_hz":    config.CutoffHz,
		"target_level": config.TargetLevel,
		"filter":       !config.DisableFilter,
		"normalize":    !config.DisableNormalize,
	}).Info("Preprocessing pipeline created successfully")

	return &Pipeline{config: config}, nil
}

// Config returns the effective pipeline configuration after defaulting.
func (p *Pipeline) Config() Config {
	return p.config
}

// Process runs one complete capture buffer through the pipeline.
//
// The buffer is decoded from PCM16 to float, resampled to the target rate
// when the rates differ, high-pass filtered, and peak normalized. Each stage
// consumes the previous stage's complete output; no state survives the call.
//
// Parameters:
//   - pcm: Raw mono PCM16 capture at the configured source rate
//
// Returns:
//   - []float32: Preprocessed samples at the target rate
//   - error: First error from any stage, wrapped with the stage name
func (p *Pipeline) Process(pcm []int16) ([]float32, error) {
	logrus.WithFields(logrus.Fields{
		"function":     "Pipeline.Process",
		"sample_count": len(pcm),
		"source_rate":  p.config.SourceRate,
		"target_rate":  p.config.TargetRate,
	}).Info("Processing capture buffer")

	samples, err := dsp.DecodePCM16(pcm)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Pipeline.Process",
			"error":    err.Error(),
		}).Error("PCM decoding failed")
		return nil, fmt.Errorf("decode: %w", err)
	}

	return p.ProcessFloat(samples)
}

// ProcessFloat runs an already-decoded float buffer through the resampling,
// filtering and normalization stages. Useful when capture arrives as float
// samples, for example from the codec package's Opus front-end after
// decoding.
func (p *Pipeline) ProcessFloat(samples []float32) ([]float32, error) {
	logrus.WithFields(logrus.Fields{
		"function":     "Pipeline.ProcessFloat",
		"sample_count": len(samples),
	}).Debug("Processing float buffer")

	samples, err := dsp.Resample(samples, p.config.SourceRate, p.config.TargetRate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Pipeline.ProcessFloat",
			"error":    err.Error(),
		}).Error("Resampling failed")
		return nil, fmt.Errorf("resample: %w", err)
	}

	if !p.config.DisableFilter {
		samples, err = dsp.HighPassFilter(samples, p.config.CutoffHz, p.config.TargetRate)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"function": "Pipeline.ProcessFloat",
				"error":    err.Error(),
			}).Error("High-pass filtering failed")
			return nil, fmt.Errorf("filter: %w", err)
		}
	}

	if !p.config.DisableNormalize {
		samples, err = dsp.Normalize(samples, p.config.TargetLevel)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"function": "Pipeline.ProcessFloat",
				"error":    err.Error(),
			}).Error("Normalization failed")
			return nil, fmt.Errorf("normalize: %w", err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"function":      "Pipeline.ProcessFloat",
		"output_length": len(samples),
		"target_rate":   p.config.TargetRate,
	}).Info("Capture buffer processed successfully")

	return samples, nil
}

// MeasureRMS returns the RMS energy of a preprocessed buffer. An empty
// buffer yields NaN; see dsp.ComputeRMS.
func (p *Pipeline) MeasureRMS(samples []float32) float32 {
	return dsp.ComputeRMS(samples)
}
