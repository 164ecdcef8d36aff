package tts

import (
	"context"

	"github.com/adam-cyclones/pitch-tts/tts/audio"
)

// Synthesizer converts text to raw audio for a given voice.
// Implementations wrap external TTS engines and must not retain the
// returned buffer.
type Synthesizer interface {
	// Synthesize produces audio samples for text spoken by voiceID.
	// Fails with ErrVoiceModelMissing if the voice cannot be loaded
	// and ErrSynthesisFailure for engine errors.
	Synthesize(ctx context.Context, text, voiceID string) (*audio.Buffer, error)

	// Available reports whether the engine can be used at all.
	Available() bool
}

// Aligner maps transcript words to time spans within an audio file.
// Implementations wrap external forced-alignment tools.
type Aligner interface {
	// Align returns one span per transcript word, in text order.
	// Fails with ErrSubprocessUnavailable when the tool is not
	// installed; that condition is recoverable for the caller.
	Align(ctx context.Context, wavPath, transcript string) ([]Span, error)
}
