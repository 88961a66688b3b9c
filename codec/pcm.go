package codec

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// ErrOddByteCount indicates a raw PCM16 byte buffer with a dangling byte.
var ErrOddByteCount = errors.New("PCM16 byte buffer length must be even")

// PCM16ToBytes packs int16 samples into little-endian bytes.
func PCM16ToBytes(pcm []int16) []byte {
	data := make([]byte, len(pcm)*2)
	for i, sample := range pcm {
		data[i*2] = byte(sample)
		data[i*2+1] = byte(sample >> 8)
	}
	return data
}

// BytesToPCM16 unpacks little-endian bytes into int16 samples.
//
// Parameters:
//   - data: Raw little-endian PCM16 bytes, length must be even
//
// Returns:
//   - []int16: Unpacked samples, half the input length
//   - error: ErrOddByteCount if the buffer has a dangling byte
func BytesToPCM16(data []byte) ([]int16, error) {
	if len(data)%2 != 0 {
		logrus.WithFields(logrus.Fields{
			"function":  "BytesToPCM16",
			"data_size": len(data),
			"error":     "odd byte count",
		}).Error("PCM16 byte buffer validation failed")
		return nil, ErrOddByteCount
	}

	pcm := make([]int16, len(data)/2)
	for i := range pcm {
		pcm[i] = int16(data[i*2]) | int16(data[i*2+1])<<8
	}
	return pcm, nil
}
