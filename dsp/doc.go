// Package dsp implements the core audio preprocessing operations used to
// prepare captured microphone audio for speech recognition.
//
// The package provides five deterministic, stateless transformations over
// finite in-memory mono sample buffers:
//
//   - DecodePCM16: fixed-point PCM16 to normalized float32 conversion
//   - Resample: sample rate conversion via linear interpolation
//   - HighPassFilter: first-order DC-blocking / low-frequency removal
//   - Normalize: peak amplitude normalization to a target level
//   - ComputeRMS: root-mean-square energy measurement
//
// # Pipeline
//
// The typical preprocessing flow composes the operations in order:
//
//	Raw PCM16 capture → DecodePCM16 → Resample → HighPassFilter → Normalize → ComputeRMS
//
// Each operation consumes one complete buffer and produces one complete
// buffer. No state is carried between calls, so concurrent invocations on
// disjoint buffers are safe by construction.
//
// # Buffer Ownership
//
// Operations allocate a new output buffer, with two aliasing exceptions:
// Resample with equal source and target rates, and Normalize on a silent
// buffer, both return the input slice unchanged. Callers that retain both
// references must not mutate either.
//
// # Usage
//
//	samples, err := dsp.DecodePCM16(pcm)
//	if err != nil {
//		return err
//	}
//	samples, err = dsp.Resample(samples, 44100, 16000)
//	if err != nil {
//		return err
//	}
//	samples, err = dsp.HighPassFilter(samples, 100.0, 16000)
//	if err != nil {
//		return err
//	}
//	samples, err = dsp.Normalize(samples, 0.95)
//	if err != nil {
//		return err
//	}
//	level := dsp.ComputeRMS(samples)
//
// # Limitations
//
// Buffers are mono only. Resampling applies no anti-aliasing filter, so
// downsampling may alias high-frequency content. The high-pass filter passes
// the first sample through unfiltered and restarts from it on every call.
package dsp
