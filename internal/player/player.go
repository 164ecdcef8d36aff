// Package player plays audio buffers through the system output
// device using oto.
package player

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/adam-cyclones/pitch-tts/tts/audio"
)

// Play blocks until the buffer has finished playing or the context is
// cancelled. The PCM bytes are held for the whole playback so the
// device never reads freed memory.
func Play(ctx context.Context, buf *audio.Buffer) error {
	if len(buf.Samples) == 0 {
		return nil
	}

	op := &oto.NewContextOptions{
		SampleRate:   buf.SampleRate,
		ChannelCount: buf.Channels,
		Format:       oto.FormatSignedInt16LE,
	}
	otoCtx, ready, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	pcm := buf.ToPCM16()
	p := otoCtx.NewPlayer(bytes.NewReader(pcm))
	defer p.Close()
	p.Play()

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for p.IsPlaying() {
		select {
		case <-ctx.Done():
			p.Pause()
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
