// Package audio provides sample buffers, pitch shifting, and WAV
// encoding for the synthesis pipeline.
package audio

import (
	"encoding/binary"
	"math"
	"time"
)

// Buffer holds raw audio samples. The sample rate is fixed for the
// lifetime of a buffer; processing stages produce new buffers rather
// than mutating shared ones.
type Buffer struct {
	Samples    []float32 // Interleaved samples in [-1, 1]
	SampleRate int       // Samples per second per channel
	Channels   int       // Number of interleaved channels
}

// NewBuffer creates a buffer wrapping the given samples.
func NewBuffer(samples []float32, sampleRate, channels int) *Buffer {
	if channels < 1 {
		channels = 1
	}
	return &Buffer{
		Samples:    samples,
		SampleRate: sampleRate,
		Channels:   channels,
	}
}

// Frames returns the number of sample frames (samples per channel).
func (b *Buffer) Frames() int {
	if b.Channels == 0 {
		return 0
	}
	return len(b.Samples) / b.Channels
}

// Duration returns the playing time of the buffer.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate == 0 {
		return 0
	}
	seconds := float64(b.Frames()) / float64(b.SampleRate)
	return time.Duration(seconds * float64(time.Second))
}

// Seconds returns the playing time in seconds.
func (b *Buffer) Seconds() float64 {
	if b.SampleRate == 0 {
		return 0
	}
	return float64(b.Frames()) / float64(b.SampleRate)
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	samples := make([]float32, len(b.Samples))
	copy(samples, b.Samples)
	return &Buffer{
		Samples:    samples,
		SampleRate: b.SampleRate,
		Channels:   b.Channels,
	}
}

// FromPCM16 converts little-endian 16-bit PCM bytes to a buffer.
// A trailing odd byte is dropped.
func FromPCM16(data []byte, sampleRate, channels int) *Buffer {
	n := len(data) / 2
	samples := make([]float32, n)
	for i := 0; i < n; i++ {
		v := int16(binary.LittleEndian.Uint16(data[i*2:]))
		samples[i] = float32(v) / 32767.0
	}
	return NewBuffer(samples, sampleRate, channels)
}

// ToPCM16 converts the buffer to little-endian 16-bit PCM bytes,
// clamping out-of-range samples.
func (b *Buffer) ToPCM16() []byte {
	out := make([]byte, len(b.Samples)*2)
	for i, s := range b.Samples {
		v := math.Round(float64(s) * 32767.0)
		if v > 32767 {
			v = 32767
		} else if v < -32768 {
			v = -32768
		}
		binary.LittleEndian.PutUint16(out[i*2:], uint16(int16(v)))
	}
	return out
}
