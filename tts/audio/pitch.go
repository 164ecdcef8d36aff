package audio

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Pitch factor limits. Values outside this range distort speech past
// the point of being usable for lip-sync.
const (
	MinPitchFactor = 0.5
	MaxPitchFactor = 2.0
)

// ErrPitchFactorOutOfRange is returned when a pitch factor falls
// outside [MinPitchFactor, MaxPitchFactor].
var ErrPitchFactorOutOfRange = errors.New("pitch factor must be between 0.5 and 2.0")

// pitchPresets is the canonical preset table. Factors above 1.0
// raise pitch and shorten duration, below 1.0 lower and lengthen.
var pitchPresets = map[string]float64{
	"deep":   0.85,
	"child":  1.1,
	"helium": 1.5,
	"slomo":  0.7,
}

// PitchSpec describes a requested pitch adjustment as a resolved
// factor. Build one with ParsePitch or NewPitchSpec.
type PitchSpec struct {
	Factor float64
}

// NewPitchSpec creates a spec from a numeric factor.
func NewPitchSpec(factor float64) PitchSpec {
	return PitchSpec{Factor: factor}
}

// ParsePitch parses a pitch argument: either a numeric factor
// (e.g. "1.2") or a preset name (deep, child, helium, slomo).
func ParsePitch(s string) (PitchSpec, error) {
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return PitchSpec{Factor: v}, nil
	}
	if f, ok := pitchPresets[strings.ToLower(strings.TrimSpace(s))]; ok {
		return PitchSpec{Factor: f}, nil
	}
	return PitchSpec{}, fmt.Errorf("invalid pitch value or preset %q (presets: %s)",
		s, strings.Join(PresetNames(), ", "))
}

// PresetNames returns the available preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(pitchPresets))
	for name := range pitchPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that the factor is within the accepted range.
// Out-of-range factors are rejected, never clamped.
func (s PitchSpec) Validate() error {
	if s.Factor < MinPitchFactor || s.Factor > MaxPitchFactor {
		return fmt.Errorf("%w: got %g", ErrPitchFactorOutOfRange, s.Factor)
	}
	return nil
}

// Shift resamples the buffer by the pitch factor using linear
// interpolation. This is true resampling: pitch and duration change
// together. The output keeps the input's sample rate and channel
// count; the frame count becomes round(frames/factor).
//
// A factor of exactly 1.0 returns a sample-identical copy.
func Shift(buf *Buffer, spec PitchSpec) (*Buffer, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	if spec.Factor == 1.0 {
		return buf.Clone(), nil
	}

	frames := buf.Frames()
	if frames == 0 {
		return NewBuffer([]float32{}, buf.SampleRate, buf.Channels), nil
	}

	outFrames := int(math.Round(float64(frames) / spec.Factor))
	out := make([]float32, outFrames*buf.Channels)

	for i := 0; i < outFrames; i++ {
		pos := float64(i) * spec.Factor
		i0 := int(pos)
		if i0 > frames-1 {
			i0 = frames - 1
		}
		i1 := i0 + 1
		if i1 > frames-1 {
			i1 = frames - 1
		}
		frac := float32(pos - float64(i0))

		for ch := 0; ch < buf.Channels; ch++ {
			s0 := buf.Samples[i0*buf.Channels+ch]
			s1 := buf.Samples[i1*buf.Channels+ch]
			out[i*buf.Channels+ch] = s0*(1-frac) + s1*frac
		}
	}

	return NewBuffer(out, buf.SampleRate, buf.Channels), nil
}
