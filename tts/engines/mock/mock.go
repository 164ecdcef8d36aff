// Package mock provides a deterministic in-process synthesizer for
// tests and dry runs.
package mock

import (
	"context"
	"math"

	"github.com/adam-cyclones/pitch-tts/tts"
	"github.com/adam-cyclones/pitch-tts/tts/audio"
)

// SecondsPerWord is the synthetic speech rate.
const SecondsPerWord = 0.3

// Engine generates a sine tone whose length is proportional to the
// word count, so timing-dependent code can be exercised without a
// real TTS backend.
type Engine struct {
	SampleRate int
	Enabled    bool
}

var _ tts.Synthesizer = (*Engine)(nil)

// New creates an enabled mock engine at the given sample rate.
func New(sampleRate int) *Engine {
	return &Engine{SampleRate: sampleRate, Enabled: true}
}

// Available implements tts.Synthesizer.
func (e *Engine) Available() bool { return e.Enabled }

// Synthesize implements tts.Synthesizer. The same text always
// produces the same samples.
func (e *Engine) Synthesize(_ context.Context, text, _ string) (*audio.Buffer, error) {
	words := tts.Tokenize(text)
	frames := int(float64(len(words)) * SecondsPerWord * float64(e.SampleRate))

	samples := make([]float32, frames)
	for i := range samples {
		samples[i] = float32(0.25 * math.Sin(2*math.Pi*220*float64(i)/float64(e.SampleRate)))
	}
	return audio.NewBuffer(samples, e.SampleRate, 1), nil
}

// Spans returns evenly spaced word spans matching the mock audio, for
// use as a stand-in aligner.
func (e *Engine) Spans(text string) []tts.Span {
	words := tts.Tokenize(text)
	spans := make([]tts.Span, len(words))
	for i, w := range words {
		spans[i] = tts.Span{
			Index: i,
			Word:  w.Text,
			Start: float64(i) * SecondsPerWord,
			End:   float64(i+1) * SecondsPerWord,
		}
	}
	return spans
}
