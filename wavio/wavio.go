package wavio

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/sirupsen/logrus"
)

// Sentinel errors for WAV ingest.
var (
	// ErrInvalidWAV indicates the input is not a readable WAV file.
	ErrInvalidWAV = errors.New("invalid WAV file")

	// ErrNotMono indicates a multi-channel file; the core is mono only.
	ErrNotMono = errors.New("only mono WAV files are supported")

	// ErrUnsupportedBitDepth indicates a bit depth other than 16.
	ErrUnsupportedBitDepth = errors.New("only 16-bit PCM WAV files are supported")
)

// ReadMonoPCM16 decodes a mono 16-bit PCM WAV stream into samples plus its
// sample rate.
//
// Parameters:
//   - r: WAV data source
//
// Returns:
//   - []int16: Mono PCM16 samples
//   - uint32: Sample rate in Hz
//   - error: Validation or decode failure
func ReadMonoPCM16(r io.ReadSeeker) ([]int16, uint32, error) {
	logrus.WithFields(logrus.Fields{
		"function": "ReadMonoPCM16",
	}).Debug("Reading mono PCM16 WAV")

	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		logrus.WithFields(logrus.Fields{
			"function": "ReadMonoPCM16",
			"error":    "not a valid WAV file",
		}).Error("WAV validation failed")
		return nil, 0, ErrInvalidWAV
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "ReadMonoPCM16",
			"error":    err.Error(),
		}).Error("WAV PCM read failed")
		return nil, 0, fmt.Errorf("read PCM buffer: %w", err)
	}

	if buf.Format.NumChannels != 1 {
		logrus.WithFields(logrus.Fields{
			"function": "ReadMonoPCM16",
			"channels": buf.Format.NumChannels,
			"error":    "not mono",
		}).Error("WAV validation failed")
		return nil, 0, fmt.Errorf("%w: got %d channels", ErrNotMono, buf.Format.NumChannels)
	}
	if buf.SourceBitDepth != 16 {
		logrus.WithFields(logrus.Fields{
			"function":  "ReadMonoPCM16",
			"bit_depth": buf.SourceBitDepth,
			"error":     "unsupported bit depth",
		}).Error("WAV validation failed")
		return nil, 0, fmt.Errorf("%w: got %d bits", ErrUnsupportedBitDepth, buf.SourceBitDepth)
	}

	pcm := make([]int16, len(buf.Data))
	for i, s := range buf.Data {
		pcm[i] = int16(s)
	}

	rate := uint32(buf.Format.SampleRate)

	logrus.WithFields(logrus.Fields{
		"function":     "ReadMonoPCM16",
		"sample_count": len(pcm),
		"sample_rate":  rate,
	}).Info("WAV file read successfully")

	return pcm, rate, nil
}

// WriteMonoFloat writes preprocessed float samples as a mono 16-bit PCM WAV.
//
// Samples are clamped to [-1, 1] before conversion, since filtering and
// normalization overshoot may push them slightly outside the nominal domain.
//
// Parameters:
//   - w: Destination stream; the WAV encoder needs seek access to finalize
//     the header
//   - samples: Mono float samples
//   - rate: Sample rate in Hz
//
// Returns:
//   - error: Validation or write failure
func WriteMonoFloat(w io.WriteSeeker, samples []float32, rate uint32) error {
	logrus.WithFields(logrus.Fields{
		"function":     "WriteMonoFloat",
		"sample_count": len(samples),
		"sample_rate":  rate,
	}).Debug("Writing mono float samples as WAV")

	if rate == 0 {
		logrus.WithFields(logrus.Fields{
			"function": "WriteMonoFloat",
			"error":    "zero sample rate",
		}).Error("WAV write validation failed")
		return fmt.Errorf("invalid sample rate: 0")
	}

	data := make([]int, len(samples))
	clipped := 0
	for i, s := range samples {
		if s > 1.0 {
			s = 1.0
			clipped++
		} else if s < -1.0 {
			s = -1.0
			clipped++
		}
		data[i] = int(s * 32767.0)
	}
	if clipped > 0 {
		logrus.WithFields(logrus.Fields{
			"function":      "WriteMonoFloat",
			"clipped_count": clipped,
			"total_samples": len(samples),
		}).Warn("Samples clipped during WAV export")
	}

	encoder := wav.NewEncoder(w, int(rate), 16, 1, 1)
	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: 1, SampleRate: int(rate)},
		SourceBitDepth: 16,
	}

	if err := encoder.Write(buf); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "WriteMonoFloat",
			"error":    err.Error(),
		}).Error("WAV write failed")
		return fmt.Errorf("write WAV data: %w", err)
	}
	if err := encoder.Close(); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "WriteMonoFloat",
			"error":    err.Error(),
		}).Error("WAV finalize failed")
		return fmt.Errorf("finalize WAV: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function":     "WriteMonoFloat",
		"sample_count": len(samples),
		"sample_rate":  rate,
	}).Info("WAV file written successfully")

	return nil
}
