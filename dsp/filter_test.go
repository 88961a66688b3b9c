package dsp

import (
	"errors"
	"math"
	"testing"
)

func TestHighPassFilter_ConstantInputDecays(t *testing.T) {
	// For a constant buffer the input differences vanish, so from the second
	// output onward the filter decays geometrically by alpha.
	input := []float32{1.0, 1.0, 1.0, 1.0}

	output, err := HighPassFilter(input, 100.0, 16000)
	if err != nil {
		t.Fatalf("HighPassFilter() unexpected error: %v", err)
	}
	if len(output) != len(input) {
		t.Fatalf("HighPassFilter() length = %d, want %d", len(output), len(input))
	}

	dt := 1.0 / 16000.0
	rc := 1.0 / (2.0 * math.Pi * 100.0)
	alpha := rc / (rc + dt)

	if output[0] != 1.0 {
		t.Errorf("HighPassFilter() output[0] = %f, want 1.0 (first sample passes through)", output[0])
	}
	if math.Abs(float64(output[1])-alpha) > 1e-4 {
		t.Errorf("HighPassFilter() output[1] = %f, want ~%f", output[1], alpha)
	}
	if math.Abs(float64(output[2])-alpha*alpha) > 1e-4 {
		t.Errorf("HighPassFilter() output[2] = %f, want ~%f", output[2], alpha*alpha)
	}

	// Geometric ratio between consecutive samples from index 2 onward.
	ratio := float64(output[3] / output[2])
	if math.Abs(ratio-alpha) > 1e-4 {
		t.Errorf("HighPassFilter() decay ratio = %f, want ~%f", ratio, alpha)
	}
}

func TestHighPassFilter_AlphaValue(t *testing.T) {
	// 100 Hz cutoff at 16 kHz gives alpha ≈ 0.9623.
	output, err := HighPassFilter([]float32{1.0, 1.0}, 100.0, 16000)
	if err != nil {
		t.Fatalf("HighPassFilter() unexpected error: %v", err)
	}
	if math.Abs(float64(output[1])-0.9623) > 1e-3 {
		t.Errorf("HighPassFilter() output[1] = %f, want ~0.9623", output[1])
	}
}

func TestHighPassFilter_RemovesDCOffset(t *testing.T) {
	// A long constant offset should decay toward zero.
	input := make([]float32, 16000)
	for i := range input {
		input[i] = 0.5
	}

	output, err := HighPassFilter(input, 100.0, 16000)
	if err != nil {
		t.Fatalf("HighPassFilter() unexpected error: %v", err)
	}
	tail := output[len(output)-1]
	if math.Abs(float64(tail)) > 1e-3 {
		t.Errorf("HighPassFilter() tail sample = %f, want ~0 after DC decay", tail)
	}
}

func TestHighPassFilter_StatelessAcrossCalls(t *testing.T) {
	input := []float32{0.3, -0.1, 0.2, 0.4, -0.5}

	first, err := HighPassFilter(input, 120.0, 16000)
	if err != nil {
		t.Fatalf("HighPassFilter() unexpected error: %v", err)
	}
	second, err := HighPassFilter(input, 120.0, 16000)
	if err != nil {
		t.Fatalf("HighPassFilter() unexpected error: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("HighPassFilter() output[%d] differs across calls: %f vs %f", i, first[i], second[i])
		}
	}
}

func TestHighPassFilter_SingleSample(t *testing.T) {
	output, err := HighPassFilter([]float32{0.7}, 100.0, 16000)
	if err != nil {
		t.Fatalf("HighPassFilter() unexpected error: %v", err)
	}
	if len(output) != 1 || output[0] != 0.7 {
		t.Errorf("HighPassFilter() = %v, want [0.7]", output)
	}
}

func TestHighPassFilter_EmptyInput(t *testing.T) {
	output, err := HighPassFilter([]float32{}, 100.0, 16000)
	if err != nil {
		t.Fatalf("HighPassFilter() unexpected error: %v", err)
	}
	if len(output) != 0 {
		t.Errorf("HighPassFilter() length = %d, want 0", len(output))
	}
}

func TestHighPassFilter_InvalidParameters(t *testing.T) {
	tests := []struct {
		name       string
		cutoff     float64
		sampleRate uint32
		wantErr    error
	}{
		{
			name:       "zero cutoff",
			cutoff:     0.0,
			sampleRate: 16000,
			wantErr:    ErrInvalidCutoff,
		},
		{
			name:       "negative cutoff",
			cutoff:     -50.0,
			sampleRate: 16000,
			wantErr:    ErrInvalidCutoff,
		},
		{
			name:       "zero sample rate",
			cutoff:     100.0,
			sampleRate: 0,
			wantErr:    ErrInvalidSampleRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := HighPassFilter([]float32{0.5}, tt.cutoff, tt.sampleRate)
			if err == nil {
				t.Fatal("HighPassFilter() expected error, got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("HighPassFilter() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
