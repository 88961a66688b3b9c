package dsp

import (
	"testing"
)

func TestDecodePCM16(t *testing.T) {
	tests := []struct {
		name     string
		input    []int16
		expected []float32
	}{
		{
			name:     "known values",
			input:    []int16{16384, -16384, 0},
			expected: []float32{0.5, -0.5, 0.0},
		},
		{
			name:     "full scale positive",
			input:    []int16{32767},
			expected: []float32{32767.0 / 32768.0},
		},
		{
			name:     "full scale negative",
			input:    []int16{-32768},
			expected: []float32{-1.0},
		},
		{
			name:     "quarter scale",
			input:    []int16{8192, -8192},
			expected: []float32{0.25, -0.25},
		},
		{
			name:     "empty input",
			input:    []int16{},
			expected: []float32{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := DecodePCM16(tt.input)
			if err != nil {
				t.Fatalf("DecodePCM16() unexpected error: %v", err)
			}
			if len(output) != len(tt.expected) {
				t.Fatalf("DecodePCM16() length = %d, want %d", len(output), len(tt.expected))
			}
			for i, want := range tt.expected {
				if output[i] != want {
					t.Errorf("DecodePCM16() output[%d] = %f, want %f", i, output[i], want)
				}
			}
		})
	}
}

func TestDecodePCM16_NilInput(t *testing.T) {
	output, err := DecodePCM16(nil)
	if err != nil {
		t.Fatalf("DecodePCM16(nil) unexpected error: %v", err)
	}
	if len(output) != 0 {
		t.Errorf("DecodePCM16(nil) length = %d, want 0", len(output))
	}
}

func TestDecodePCM16_PreservesLength(t *testing.T) {
	input := make([]int16, 4801)
	for i := range input {
		input[i] = int16(i % 32768)
	}

	output, err := DecodePCM16(input)
	if err != nil {
		t.Fatalf("DecodePCM16() unexpected error: %v", err)
	}
	if len(output) != len(input) {
		t.Errorf("DecodePCM16() length = %d, want %d", len(output), len(input))
	}
	for i, s := range input {
		want := float32(s) / 32768.0
		if output[i] != want {
			t.Fatalf("DecodePCM16() output[%d] = %f, want %f", i, output[i], want)
		}
	}
}
