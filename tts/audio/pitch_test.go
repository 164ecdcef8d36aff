package audio

import (
	"errors"
	"math"
	"testing"
)

func rampBuffer(frames, rate, channels int) *Buffer {
	samples := make([]float32, frames*channels)
	for i := 0; i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			samples[i*channels+ch] = float32(i) / float32(frames)
		}
	}
	return NewBuffer(samples, rate, channels)
}

func TestParsePitch(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "numeric", input: "1.2", want: 1.2},
		{name: "numeric with spaces", input: " 0.8 ", want: 0.8},
		{name: "preset deep", input: "deep", want: 0.85},
		{name: "preset helium", input: "helium", want: 1.5},
		{name: "preset child", input: "child", want: 1.1},
		{name: "preset slomo", input: "slomo", want: 0.7},
		{name: "preset case insensitive", input: "DEEP", want: 0.85},
		{name: "unknown preset", input: "chipmunk", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParsePitch(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePitch(%q) expected error, got %v", tt.input, spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePitch(%q) unexpected error: %v", tt.input, err)
			}
			if spec.Factor != tt.want {
				t.Errorf("ParsePitch(%q) = %g, want %g", tt.input, spec.Factor, tt.want)
			}
		})
	}
}

func TestPitchSpecValidate(t *testing.T) {
	tests := []struct {
		factor  float64
		wantErr bool
	}{
		{factor: 0.5},
		{factor: 2.0},
		{factor: 1.0},
		{factor: 0.49, wantErr: true},
		{factor: 2.01, wantErr: true},
		{factor: 0, wantErr: true},
		{factor: -1, wantErr: true},
	}

	for _, tt := range tests {
		err := NewPitchSpec(tt.factor).Validate()
		if tt.wantErr {
			if !errors.Is(err, ErrPitchFactorOutOfRange) {
				t.Errorf("Validate(%g) = %v, want ErrPitchFactorOutOfRange", tt.factor, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Validate(%g) unexpected error: %v", tt.factor, err)
		}
	}
}

func TestShiftIdentity(t *testing.T) {
	in := rampBuffer(1000, 22050, 1)

	out, err := Shift(in, NewPitchSpec(1.0))
	if err != nil {
		t.Fatalf("Shift error: %v", err)
	}
	if len(out.Samples) != len(in.Samples) {
		t.Fatalf("identity shift changed length: got %d, want %d",
			len(out.Samples), len(in.Samples))
	}
	for i := range in.Samples {
		if out.Samples[i] != in.Samples[i] {
			t.Fatalf("identity shift changed sample %d: got %v, want %v",
				i, out.Samples[i], in.Samples[i])
		}
	}

	// The copy must be independent of the input.
	out.Samples[0] = 99
	if in.Samples[0] == 99 {
		t.Error("identity shift aliases the input samples")
	}
}

func TestShiftOutputLength(t *testing.T) {
	const frames = 1000
	in := rampBuffer(frames, 22050, 1)

	tests := []struct {
		factor float64
		want   int
	}{
		{factor: 0.5, want: 2000},
		{factor: 0.85, want: 1176},
		{factor: 1.5, want: 667},
		{factor: 2.0, want: 500},
	}

	for _, tt := range tests {
		out, err := Shift(in, NewPitchSpec(tt.factor))
		if err != nil {
			t.Fatalf("Shift(%g) error: %v", tt.factor, err)
		}
		if out.Frames() != tt.want {
			t.Errorf("Shift(%g) frames = %d, want %d", tt.factor, out.Frames(), tt.want)
		}
		if out.SampleRate != in.SampleRate {
			t.Errorf("Shift(%g) changed sample rate to %d", tt.factor, out.SampleRate)
		}
	}
}

func TestShiftDurationMonotonic(t *testing.T) {
	in := rampBuffer(4410, 44100, 1)

	factors := []float64{0.5, 0.7, 0.85, 1.0, 1.1, 1.5, 2.0}
	prev := math.MaxInt
	for _, f := range factors {
		out, err := Shift(in, NewPitchSpec(f))
		if err != nil {
			t.Fatalf("Shift(%g) error: %v", f, err)
		}
		if out.Frames() >= prev {
			t.Errorf("Shift(%g) frames = %d, expected fewer than %d", f, out.Frames(), prev)
		}
		prev = out.Frames()
	}
}

func TestShiftStereoPreservesChannels(t *testing.T) {
	in := rampBuffer(100, 44100, 2)

	out, err := Shift(in, NewPitchSpec(1.5))
	if err != nil {
		t.Fatalf("Shift error: %v", err)
	}
	if out.Channels != 2 {
		t.Fatalf("Shift changed channel count to %d", out.Channels)
	}
	if len(out.Samples)%2 != 0 {
		t.Errorf("stereo output has odd sample count %d", len(out.Samples))
	}
}

func TestShiftEmptyInput(t *testing.T) {
	in := NewBuffer([]float32{}, 22050, 1)

	out, err := Shift(in, NewPitchSpec(1.5))
	if err != nil {
		t.Fatalf("Shift error: %v", err)
	}
	if len(out.Samples) != 0 {
		t.Errorf("empty input produced %d samples", len(out.Samples))
	}
}

func TestShiftRejectsOutOfRange(t *testing.T) {
	in := rampBuffer(100, 22050, 1)

	for _, f := range []float64{0.49, 2.01, 0, -0.5} {
		if _, err := Shift(in, NewPitchSpec(f)); !errors.Is(err, ErrPitchFactorOutOfRange) {
			t.Errorf("Shift(%g) = %v, want ErrPitchFactorOutOfRange", f, err)
		}
	}
}

func TestShiftDeterministic(t *testing.T) {
	in := rampBuffer(500, 22050, 1)

	a, err := Shift(in, NewPitchSpec(1.3))
	if err != nil {
		t.Fatalf("Shift error: %v", err)
	}
	b, err := Shift(in, NewPitchSpec(1.3))
	if err != nil {
		t.Fatalf("Shift error: %v", err)
	}
	if len(a.Samples) != len(b.Samples) {
		t.Fatalf("lengths differ: %d vs %d", len(a.Samples), len(b.Samples))
	}
	for i := range a.Samples {
		if a.Samples[i] != b.Samples[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, a.Samples[i], b.Samples[i])
		}
	}
}
