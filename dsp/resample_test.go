package dsp

import (
	"errors"
	"math"
	"testing"
)

func TestResample_SameRateIdentity(t *testing.T) {
	input := []float32{0.1, -0.2, 0.3, -0.4}

	output, err := Resample(input, 16000, 16000)
	if err != nil {
		t.Fatalf("Resample() unexpected error: %v", err)
	}
	if len(output) != len(input) {
		t.Fatalf("Resample() length = %d, want %d", len(output), len(input))
	}
	// Equal rates return the input slice itself, not a copy.
	if &output[0] != &input[0] {
		t.Error("Resample() same-rate result should alias the input buffer")
	}
}

func TestResample_Upsample(t *testing.T) {
	// Doubling the rate interpolates midpoints and clamps the tail to the
	// final source sample.
	input := []float32{0.0, 1.0}

	output, err := Resample(input, 8000, 16000)
	if err != nil {
		t.Fatalf("Resample() unexpected error: %v", err)
	}

	expected := []float32{0.0, 0.5, 1.0, 1.0}
	if len(output) != len(expected) {
		t.Fatalf("Resample() length = %d, want %d", len(output), len(expected))
	}
	for i, want := range expected {
		if math.Abs(float64(output[i]-want)) > 1e-6 {
			t.Errorf("Resample() output[%d] = %f, want %f", i, output[i], want)
		}
	}
}

func TestResample_OutputLength(t *testing.T) {
	tests := []struct {
		name        string
		inputLength int
		sourceRate  uint32
		targetRate  uint32
		wantLength  int
	}{
		{
			name:        "upsample 8k to 16k",
			inputLength: 100,
			sourceRate:  8000,
			targetRate:  16000,
			wantLength:  200,
		},
		{
			name:        "downsample 48k to 16k",
			inputLength: 480,
			sourceRate:  48000,
			targetRate:  16000,
			wantLength:  160,
		},
		{
			name:        "downsample 44.1k to 16k",
			inputLength: 44100,
			sourceRate:  44100,
			targetRate:  16000,
			wantLength:  16000,
		},
		{
			name:        "non-integer ratio floors",
			inputLength: 3,
			sourceRate:  8000,
			targetRate:  12000,
			wantLength:  4, // floor(3 * 1.5)
		},
		{
			name:        "empty input",
			inputLength: 0,
			sourceRate:  8000,
			targetRate:  16000,
			wantLength:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := make([]float32, tt.inputLength)
			output, err := Resample(input, tt.sourceRate, tt.targetRate)
			if err != nil {
				t.Fatalf("Resample() unexpected error: %v", err)
			}
			if len(output) != tt.wantLength {
				t.Errorf("Resample() length = %d, want %d", len(output), tt.wantLength)
			}
			if got := ResampledLength(tt.inputLength, tt.sourceRate, tt.targetRate); got != tt.wantLength {
				t.Errorf("ResampledLength() = %d, want %d", got, tt.wantLength)
			}
		})
	}
}

func TestResample_Downsample(t *testing.T) {
	// Every second sample of a ramp survives a 2:1 downsample exactly,
	// since all interpolation positions land on integer source indices.
	input := []float32{0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7}

	output, err := Resample(input, 16000, 8000)
	if err != nil {
		t.Fatalf("Resample() unexpected error: %v", err)
	}

	expected := []float32{0.0, 0.2, 0.4, 0.6}
	if len(output) != len(expected) {
		t.Fatalf("Resample() length = %d, want %d", len(output), len(expected))
	}
	for i, want := range expected {
		if math.Abs(float64(output[i]-want)) > 1e-6 {
			t.Errorf("Resample() output[%d] = %f, want %f", i, output[i], want)
		}
	}
}

func TestResample_InvalidRates(t *testing.T) {
	tests := []struct {
		name       string
		sourceRate uint32
		targetRate uint32
	}{
		{
			name:       "zero source rate",
			sourceRate: 0,
			targetRate: 16000,
		},
		{
			name:       "zero target rate",
			sourceRate: 16000,
			targetRate: 0,
		},
		{
			name:       "both rates zero",
			sourceRate: 0,
			targetRate: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resample([]float32{0.5}, tt.sourceRate, tt.targetRate)
			if err == nil {
				t.Fatal("Resample() expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidSampleRate) {
				t.Errorf("Resample() error = %v, want ErrInvalidSampleRate", err)
			}
		})
	}
}

func TestResample_ClampAtBoundary(t *testing.T) {
	// A 1:4 upsample of a single sample can only ever clamp.
	input := []float32{0.75}

	output, err := Resample(input, 4000, 16000)
	if err != nil {
		t.Fatalf("Resample() unexpected error: %v", err)
	}
	if len(output) != 4 {
		t.Fatalf("Resample() length = %d, want 4", len(output))
	}
	for i, s := range output {
		if s != 0.75 {
			t.Errorf("Resample() output[%d] = %f, want 0.75", i, s)
		}
	}
}
