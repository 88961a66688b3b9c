package codec

import (
	"errors"
	"fmt"

	"github.com/pion/opus"
	"github.com/sirupsen/logrus"
)

// Decode errors.
var (
	// ErrEmptyFrame indicates an empty Opus frame was submitted.
	ErrEmptyFrame = errors.New("empty opus frame")

	// ErrStereoFrame indicates a stereo frame; the preprocessing core is
	// mono only.
	ErrStereoFrame = errors.New("stereo opus frames are not supported")
)

// maxFrameSamples bounds a single decoded Opus frame: 60 ms at 48 kHz.
const maxFrameSamples = 2880

// OpusDecoder decodes Opus-compressed capture frames into mono PCM16 for
// the preprocessing pipeline.
//
// Wraps the pure-Go pion/opus decoder. The decoder carries codec state
// across frames, so one OpusDecoder should be used per capture stream and
// not shared between goroutines.
type OpusDecoder struct {
	decoder *opus.Decoder
}

// NewOpusDecoder creates a decoder for one Opus capture stream.
func NewOpusDecoder() *OpusDecoder {
	logrus.WithFields(logrus.Fields{
		"function": "NewOpusDecoder",
	}).Info("Creating Opus capture decoder")

	decoder := opus.NewDecoder()
	return &OpusDecoder{decoder: &decoder}
}

// DecodeFrame decodes one Opus frame to mono PCM16 samples.
//
// The sample rate is derived from the frame's bandwidth as signaled in the
// Opus TOC byte. Stereo frames are rejected.
//
// Parameters:
//   - data: One complete Opus-encoded frame
//
// Returns:
//   - []int16: Decoded mono PCM16 samples
//   - uint32: Sample rate of the decoded audio in Hz
//   - error: Decode or validation failure
func (d *OpusDecoder) DecodeFrame(data []byte) ([]int16, uint32, error) {
	logrus.WithFields(logrus.Fields{
		"function":  "OpusDecoder.DecodeFrame",
		"data_size": len(data),
	}).Debug("Decoding Opus capture frame")

	if len(data) == 0 {
		logrus.WithFields(logrus.Fields{
			"function": "OpusDecoder.DecodeFrame",
			"error":    "empty frame",
		}).Error("Opus frame validation failed")
		return nil, 0, ErrEmptyFrame
	}

	output := make([]byte, maxFrameSamples*2)
	bandwidth, isStereo, err := d.decoder.Decode(data, output)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "OpusDecoder.DecodeFrame",
			"error":    err.Error(),
		}).Error("Opus decode failed")
		return nil, 0, fmt.Errorf("opus decode failed: %w", err)
	}

	if isStereo {
		logrus.WithFields(logrus.Fields{
			"function": "OpusDecoder.DecodeFrame",
			"error":    "stereo frame",
		}).Error("Opus frame validation failed")
		return nil, 0, ErrStereoFrame
	}

	pcm, err := BytesToPCM16(output)
	if err != nil {
		return nil, 0, err
	}

	sampleRate := uint32(bandwidth.SampleRate())

	logrus.WithFields(logrus.Fields{
		"function":     "OpusDecoder.DecodeFrame",
		"input_size":   len(data),
		"sample_count": len(pcm),
		"sample_rate":  sampleRate,
		"bandwidth":    bandwidth.String(),
	}).Debug("Opus frame decoded")

	return pcm, sampleRate, nil
}
