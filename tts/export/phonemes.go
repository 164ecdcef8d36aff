package export

import (
	"context"

	"github.com/adam-cyclones/pitch-tts/tts"
	"github.com/adam-cyclones/pitch-tts/tts/align"
	"github.com/adam-cyclones/pitch-tts/tts/phoneme"
)

// BuildPhonemeDocument produces a timing document directly from
// aligner spans, without a synthesis pass: the transcript is taken
// from the spans themselves. Used when extracting phonemes from
// existing audio.
func BuildPhonemeDocument(ctx context.Context, resolver *phoneme.Resolver, spans []tts.Span, sampleRate int) (*align.Document, error) {
	tokens := make([]tts.WordToken, len(spans))
	seqs := make([][]string, len(spans))
	for i, span := range spans {
		tokens[i] = tts.WordToken{Text: span.Word, Index: i}
		seqs[i] = resolver.Resolve(ctx, span.Word).Symbols
	}
	return align.Merge(tokens, spans, seqs, sampleRate)
}

// WriteDocument serializes a timing document to path as JSON.
func WriteDocument(path string, doc *align.Document) error {
	return writeJSON(path, doc)
}
