// Package codec provides the compressed-capture front-end for the
// preprocessing pipeline.
//
// Microphone capture sometimes arrives Opus-compressed rather than as raw
// PCM16. OpusDecoder wraps the pure-Go pion/opus decoder to turn such frames
// into mono PCM16 plus a sample rate, ready for dsp.DecodePCM16 and the rest
// of the pipeline:
//
//	dec := codec.NewOpusDecoder()
//	pcm, rate, err := dec.DecodeFrame(frame)
//
// The package also carries the little-endian byte packing helpers used at
// the foreign-call boundary and for raw PCM ingest (BytesToPCM16,
// PCM16ToBytes).
//
// Stereo Opus frames are rejected: the preprocessing core is mono only.
package codec
