// Package whisperaudio implements the audio preprocessing core that prepares
// captured microphone audio for a downstream speech-recognition stage.
//
// The package composes five deterministic, stateless transformations over
// finite in-memory mono buffers — PCM16 decoding, sample rate conversion,
// high-pass filtering, peak normalization, and RMS energy measurement — into
// a caller-configured pipeline. The numeric operations themselves live in the
// dsp subpackage; this package provides the composition and configuration
// surface.
//
// # Getting Started
//
// Create a pipeline for the capture rate and run buffers through it:
//
//	pipeline, err := whisperaudio.NewPipeline(whisperaudio.Config{
//	    SourceRate: 44100,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	samples, err := pipeline.Process(pcm)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	level := pipeline.MeasureRMS(samples)
//	fmt.Printf("preprocessed %d samples, rms %.3f\n", len(samples), level)
//
// The default configuration targets 16 kHz output with a 100 Hz high-pass
// cutoff and a 0.95 peak level, the settings the recognition stage expects.
//
// # Subpackages
//
//   - dsp: the five core buffer operations
//   - codec: Opus capture decoding and PCM16 byte conversion
//   - wavio: WAV file ingest and export for tooling
//   - recognizer: the placeholder speech-recognition contract
//   - capi: C API bindings for host applications
//
// # Concurrency
//
// A Pipeline holds configuration only; it carries no state between calls and
// is safe for concurrent use on disjoint buffers.
package whisperaudio
