// Package tts defines the shared data model and interfaces for the
// pitch-tts synthesis and lip-sync pipeline.
package tts

import "strings"

// WordToken is one word of the source text with its position.
// Tokens are immutable once produced by Tokenize.
type WordToken struct {
	Text  string // Literal word text, punctuation included
	Index int    // Position in the source text
}

// Span is a word-level time range produced by the forced aligner.
// Times are seconds relative to the start of the audio.
type Span struct {
	Index int     // Word index, matches WordToken.Index
	Word  string  // Word text as reported by the aligner
	Start float64 // Start time in seconds
	End   float64 // End time in seconds
}

// Duration returns the span length in seconds.
func (s Span) Duration() float64 {
	return s.End - s.Start
}

// Tokenize splits source text into word tokens on whitespace.
// Punctuation stays attached to the word; normalization happens
// later in the phoneme layer so token text always matches what the
// aligner sees.
func Tokenize(text string) []WordToken {
	fields := strings.Fields(text)
	tokens := make([]WordToken, len(fields))
	for i, f := range fields {
		tokens[i] = WordToken{Text: f, Index: i}
	}
	return tokens
}
