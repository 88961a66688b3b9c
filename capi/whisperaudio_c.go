package main

/*
#include <stdint.h>
#include <stdbool.h>
#include <stddef.h>
*/
import "C"

import (
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/whisperaudio"
	"github.com/opd-ai/whisperaudio/dsp"
	"github.com/opd-ai/whisperaudio/recognizer"
)

// whisperaudio_decode_pcm16 converts PCM16 samples to normalized floats.
//
// out must hold at least length floats. Returns the number of samples
// written, or -1 on failure; the input is left untouched on failure.
//
//export whisperaudio_decode_pcm16
func whisperaudio_decode_pcm16(pcm *C.int16_t, length C.size_t, out *C.float) C.int {
	if pcm == nil && length > 0 {
		logrus.WithFields(logrus.Fields{
			"function": "whisperaudio_decode_pcm16",
			"error":    "null input buffer",
		}).Error("Input validation failed")
		return -1
	}
	if out == nil && length > 0 {
		logrus.WithFields(logrus.Fields{
			"function": "whisperaudio_decode_pcm16",
			"error":    "null output buffer",
		}).Error("Output validation failed")
		return -1
	}
	if length == 0 {
		return 0
	}

	input := make([]int16, int(length))
	copy(input, unsafe.Slice((*int16)(unsafe.Pointer(pcm)), int(length)))

	samples, err := dsp.DecodePCM16(input)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "whisperaudio_decode_pcm16",
			"error":    err.Error(),
		}).Error("PCM decoding failed")
		return -1
	}

	copy(unsafe.Slice((*float32)(unsafe.Pointer(out)), len(samples)), samples)
	return C.int(len(samples))
}

// whisperaudio_resampled_length returns the output length a resample call
// will produce, for caller buffer allocation. Returns -1 on invalid rates.
//
//export whisperaudio_resampled_length
func whisperaudio_resampled_length(length C.size_t, source_rate, target_rate C.uint32_t) C.int {
	if source_rate == 0 || target_rate == 0 {
		return -1
	}
	return C.int(dsp.ResampledLength(int(length), uint32(source_rate), uint32(target_rate)))
}

// whisperaudio_resample converts a float buffer between sample rates.
//
// out must hold at least whisperaudio_resampled_length(length, source_rate,
// target_rate) floats. Returns the number of samples written, or -1 on
// failure.
//
//export whisperaudio_resample
func whisperaudio_resample(input *C.float, length C.size_t, source_rate, target_rate C.uint32_t, out *C.float, out_cap C.size_t) C.int {
	if (input == nil || out == nil) && length > 0 {
		logrus.WithFields(logrus.Fields{
			"function": "whisperaudio_resample",
			"error":    "null buffer",
		}).Error("Buffer validation failed")
		return -1
	}

	samples := make([]float32, int(length))
	if length > 0 {
		copy(samples, unsafe.Slice((*float32)(unsafe.Pointer(input)), int(length)))
	}

	resampled, err := dsp.Resample(samples, uint32(source_rate), uint32(target_rate))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "whisperaudio_resample",
			"error":    err.Error(),
		}).Error("Resampling failed")
		return -1
	}

	if len(resampled) > int(out_cap) {
		logrus.WithFields(logrus.Fields{
			"function":    "whisperaudio_resample",
			"needed":      len(resampled),
			"buffer_size": out_cap,
			"error":       "output buffer too small",
		}).Error("Buffer validation failed")
		return -1
	}
	if len(resampled) > 0 {
		copy(unsafe.Slice((*float32)(unsafe.Pointer(out)), len(resampled)), resampled)
	}
	return C.int(len(resampled))
}

// whisperaudio_high_pass_filter removes DC offset and low-frequency content.
//
// out must hold at least length floats. Returns the number of samples
// written, or -1 on failure.
//
//export whisperaudio_high_pass_filter
func whisperaudio_high_pass_filter(input *C.float, length C.size_t, cutoff_freq C.float, sample_rate C.uint32_t, out *C.float) C.int {
	if (input == nil || out == nil) && length > 0 {
		logrus.WithFields(logrus.Fields{
			"function": "whisperaudio_high_pass_filter",
			"error":    "null buffer",
		}).Error("Buffer validation failed")
		return -1
	}

	samples := make([]float32, int(length))
	if length > 0 {
		copy(samples, unsafe.Slice((*float32)(unsafe.Pointer(input)), int(length)))
	}

	filtered, err := dsp.HighPassFilter(samples, float64(cutoff_freq), uint32(sample_rate))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "whisperaudio_high_pass_filter",
			"error":    err.Error(),
		}).Error("High-pass filtering failed")
		return -1
	}

	if len(filtered) > 0 {
		copy(unsafe.Slice((*float32)(unsafe.Pointer(out)), len(filtered)), filtered)
	}
	return C.int(len(filtered))
}

// whisperaudio_normalize rescales the buffer to the target peak level.
//
// out must hold at least length floats. Returns the number of samples
// written, or -1 on failure.
//
//export whisperaudio_normalize
func whisperaudio_normalize(input *C.float, length C.size_t, target_level C.float, out *C.float) C.int {
	if (input == nil || out == nil) && length > 0 {
		logrus.WithFields(logrus.Fields{
			"function": "whisperaudio_normalize",
			"error":    "null buffer",
		}).Error("Buffer validation failed")
		return -1
	}

	samples := make([]float32, int(length))
	if length > 0 {
		copy(samples, unsafe.Slice((*float32)(unsafe.Pointer(input)), int(length)))
	}

	normalized, err := dsp.Normalize(samples, float32(target_level))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "whisperaudio_normalize",
			"error":    err.Error(),
		}).Error("Normalization failed")
		return -1
	}

	if len(normalized) > 0 {
		copy(unsafe.Slice((*float32)(unsafe.Pointer(out)), len(normalized)), normalized)
	}
	return C.int(len(normalized))
}

// whisperaudio_compute_rms returns the RMS energy of the buffer, or 0 when
// the input buffer is null. An empty buffer yields NaN.
//
//export whisperaudio_compute_rms
func whisperaudio_compute_rms(input *C.float, length C.size_t) C.float {
	if input == nil && length > 0 {
		logrus.WithFields(logrus.Fields{
			"function": "whisperaudio_compute_rms",
			"error":    "null input buffer",
		}).Error("Input validation failed")
		return 0
	}

	samples := make([]float32, int(length))
	if length > 0 {
		copy(samples, unsafe.Slice((*float32)(unsafe.Pointer(input)), int(length)))
	}

	return C.float(dsp.ComputeRMS(samples))
}

// whisperaudio_init_context initializes a placeholder recognition context.
//
// Returns an opaque handle, or null on failure.
//
//export whisperaudio_init_context
func whisperaudio_init_context(model_path *C.char, n_threads C.int) unsafe.Pointer {
	if model_path == nil {
		logrus.WithFields(logrus.Fields{
			"function": "whisperaudio_init_context",
			"error":    "null model path",
		}).Error("Context initialization failed")
		return nil
	}

	rec, err := recognizer.NewPlaceholder(C.GoString(model_path), int(n_threads))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "whisperaudio_init_context",
			"error":    err.Error(),
		}).Error("Context initialization failed")
		return nil
	}

	id := registerContext(rec)
	handle := new(uintptr)
	*handle = id
	return unsafe.Pointer(handle)
}

// whisperaudio_transcribe runs the placeholder transcription.
//
// The result text is copied into the caller's out buffer as a NUL-terminated
// string. Returns the text length, or -1 on failure.
//
//export whisperaudio_transcribe
func whisperaudio_transcribe(ctx unsafe.Pointer, samples *C.float, length C.size_t, sample_rate C.uint32_t, language *C.char, translate C.bool, out *C.char, out_cap C.size_t) C.int {
	rec, ok := resolveHandle(ctx)
	if !ok || out == nil {
		logrus.WithFields(logrus.Fields{
			"function": "whisperaudio_transcribe",
			"error":    "invalid handle or null output",
		}).Error("Transcription failed")
		return -1
	}

	audio := make([]float32, int(length))
	if length > 0 {
		if samples == nil {
			logrus.WithFields(logrus.Fields{
				"function": "whisperaudio_transcribe",
				"error":    "null audio buffer",
			}).Error("Input validation failed")
			return -1
		}
		copy(audio, unsafe.Slice((*float32)(unsafe.Pointer(samples)), int(length)))
	}

	lang := ""
	if language != nil {
		lang = C.GoString(language)
	}

	text, err := rec.Transcribe(audio, uint32(sample_rate), lang, bool(translate))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "whisperaudio_transcribe",
			"error":    err.Error(),
		}).Error("Transcription failed")
		return -1
	}

	return C.int(copyCString(text, unsafe.Slice((*byte)(unsafe.Pointer(out)), int(out_cap))))
}

// whisperaudio_release_context releases a recognition context. Safe to call
// with a null or unknown handle.
//
//export whisperaudio_release_context
func whisperaudio_release_context(ctx unsafe.Pointer) {
	if ctx == nil {
		return
	}
	id := *(*uintptr)(ctx)
	if rec, ok := unregisterContext(id); ok {
		if err := rec.Close(); err != nil {
			logrus.WithFields(logrus.Fields{
				"function": "whisperaudio_release_context",
				"error":    err.Error(),
			}).Error("Context release failed")
		}
	}
}

// whisperaudio_get_model_info copies the model description into the
// caller's buffer. Returns the text length, or -1 on failure.
//
//export whisperaudio_get_model_info
func whisperaudio_get_model_info(ctx unsafe.Pointer, out *C.char, out_cap C.size_t) C.int {
	rec, ok := resolveHandle(ctx)
	if !ok || out == nil {
		return -1
	}
	info, err := rec.ModelInfo()
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "whisperaudio_get_model_info",
			"error":    err.Error(),
		}).Error("Model info query failed")
		return -1
	}
	return C.int(copyCString(info, unsafe.Slice((*byte)(unsafe.Pointer(out)), int(out_cap))))
}

// whisperaudio_is_multilingual reports whether the loaded model is
// multilingual. Unknown handles report false.
//
//export whisperaudio_is_multilingual
func whisperaudio_is_multilingual(ctx unsafe.Pointer) C.bool {
	rec, ok := resolveHandle(ctx)
	if !ok {
		return C.bool(false)
	}
	multilingual, err := rec.IsMultilingual()
	if err != nil {
		return C.bool(false)
	}
	return C.bool(multilingual)
}

// whisperaudio_version_info copies the library version string into the
// caller's buffer. Returns the text length, or -1 if the buffer is too
// small.
//
//export whisperaudio_version_info
func whisperaudio_version_info(out *C.char, out_cap C.size_t) C.int {
	if out == nil {
		return -1
	}
	return C.int(copyCString(whisperaudio.VersionInfo(), unsafe.Slice((*byte)(unsafe.Pointer(out)), int(out_cap))))
}

// resolveHandle maps an opaque context pointer to its recognizer.
func resolveHandle(ctx unsafe.Pointer) (*recognizer.Placeholder, bool) {
	if ctx == nil {
		return nil, false
	}
	return lookupContext(*(*uintptr)(ctx))
}

func main() {}
