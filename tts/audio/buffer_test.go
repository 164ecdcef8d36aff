package audio

import (
	"testing"
	"time"
)

func TestBufferDuration(t *testing.T) {
	tests := []struct {
		name     string
		frames   int
		rate     int
		channels int
		want     time.Duration
	}{
		{name: "one second mono", frames: 22050, rate: 22050, channels: 1, want: time.Second},
		{name: "half second stereo", frames: 22050, rate: 44100, channels: 2, want: 500 * time.Millisecond},
		{name: "empty", frames: 0, rate: 22050, channels: 1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(make([]float32, tt.frames*tt.channels), tt.rate, tt.channels)
			if got := b.Duration(); got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPCM16RoundTrip(t *testing.T) {
	data := []byte{0x00, 0x00, 0xFF, 0x7F, 0x01, 0x80, 0x00, 0x40}

	b := FromPCM16(data, 22050, 1)
	if b.Frames() != 4 {
		t.Fatalf("Frames() = %d, want 4", b.Frames())
	}
	if b.Samples[0] != 0 {
		t.Errorf("sample 0 = %v, want 0", b.Samples[0])
	}
	if b.Samples[1] != 1.0 {
		t.Errorf("sample 1 = %v, want 1.0", b.Samples[1])
	}

	out := b.ToPCM16()
	for i := range data {
		if out[i] != data[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, out[i], data[i])
		}
	}
}

func TestToPCM16Clamps(t *testing.T) {
	b := NewBuffer([]float32{1.5, -1.5}, 22050, 1)
	out := b.ToPCM16()

	hi := int16(out[0]) | int16(out[1])<<8
	lo := int16(out[2]) | int16(out[3])<<8
	if hi != 32767 {
		t.Errorf("over-range sample = %d, want 32767", hi)
	}
	if lo != -32768 {
		t.Errorf("under-range sample = %d, want -32768", lo)
	}
}

func TestFromPCM16DropsTrailingByte(t *testing.T) {
	b := FromPCM16([]byte{0x00, 0x00, 0xFF}, 22050, 1)
	if b.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", b.Frames())
	}
}
