package codec

import (
	"testing"
)

func TestNewOpusDecoder(t *testing.T) {
	dec := NewOpusDecoder()
	if dec == nil {
		t.Fatal("NewOpusDecoder() returned nil")
	}
	if dec.decoder == nil {
		t.Error("NewOpusDecoder() decoder not initialized")
	}
}

func TestOpusDecoder_EmptyFrame(t *testing.T) {
	dec := NewOpusDecoder()

	_, _, err := dec.DecodeFrame(nil)
	if err != ErrEmptyFrame {
		t.Errorf("DecodeFrame(nil) error = %v, want ErrEmptyFrame", err)
	}

	_, _, err = dec.DecodeFrame([]byte{})
	if err != ErrEmptyFrame {
		t.Errorf("DecodeFrame(empty) error = %v, want ErrEmptyFrame", err)
	}
}

func TestOpusDecoder_PerStreamInstances(t *testing.T) {
	// Each capture stream gets its own decoder state.
	first := NewOpusDecoder()
	second := NewOpusDecoder()
	if first.decoder == second.decoder {
		t.Error("NewOpusDecoder() instances should not share decoder state")
	}
}
