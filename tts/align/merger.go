package align

import (
	"fmt"

	"github.com/adam-cyclones/pitch-tts/tts"
	"github.com/adam-cyclones/pitch-tts/tts/phoneme"
)

// MismatchError reports a word-count disagreement between the
// transcript and the aligner output. It unwraps to
// tts.ErrAlignmentMismatch.
type MismatchError struct {
	Expected int
	Actual   int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: transcript has %d words, aligner returned %d",
		tts.ErrAlignmentMismatch, e.Expected, e.Actual)
}

func (e *MismatchError) Unwrap() error { return tts.ErrAlignmentMismatch }

// WordOrderError reports a position where the aligner's word does not
// match the transcript token, comparing normalized forms so casing
// and punctuation differences are tolerated. It unwraps to
// tts.ErrAlignmentMismatch.
type WordOrderError struct {
	Index    int
	Token    string
	SpanWord string
}

func (e *WordOrderError) Error() string {
	return fmt.Sprintf("%v: word %d is %q in the transcript but %q in the alignment",
		tts.ErrAlignmentMismatch, e.Index, e.Token, e.SpanWord)
}

func (e *WordOrderError) Unwrap() error { return tts.ErrAlignmentMismatch }

// Merge combines transcript tokens, aligner spans, and per-word
// phoneme sequences into a timing document. Spans and sequences must
// both be in transcript order, one per token.
//
// Phonemes inside a word are given equal shares of the word's span;
// the last phoneme ends exactly at the span end so adjacent words
// never overlap. A word with no resolved phonemes gets a single SIL
// placeholder covering its span. The document duration is the latest
// span end time.
func Merge(tokens []tts.WordToken, spans []tts.Span, seqs [][]string, sampleRate int) (*Document, error) {
	if len(spans) != len(tokens) {
		return nil, &MismatchError{Expected: len(tokens), Actual: len(spans)}
	}
	if len(seqs) != len(tokens) {
		return nil, &MismatchError{Expected: len(tokens), Actual: len(seqs)}
	}

	doc := &Document{
		SampleRate: sampleRate,
		Words:      make([]WordTiming, 0, len(tokens)),
	}

	for i, token := range tokens {
		span := spans[i]
		if err := checkWordOrder(i, token, span); err != nil {
			return nil, err
		}
		word := WordTiming{
			Word:     token.Text,
			Start:    span.Start,
			End:      span.End,
			Phonemes: partition(span, seqs[i]),
		}
		doc.Words = append(doc.Words, word)
		if span.End > doc.Duration {
			doc.Duration = span.End
		}
	}

	return doc, nil
}

// checkWordOrder verifies that the aligner's word at position i is
// the transcript token at that position. Either side normalizing to
// nothing (punctuation-only, or an aligner that omits word text)
// skips the check.
func checkWordOrder(i int, token tts.WordToken, span tts.Span) error {
	tokenWord := phoneme.NormalizeWord(token.Text)
	spanWord := phoneme.NormalizeWord(span.Word)
	if tokenWord == "" || spanWord == "" {
		return nil
	}
	if tokenWord != spanWord {
		return &WordOrderError{Index: i, Token: token.Text, SpanWord: span.Word}
	}
	return nil
}

// partition slices a word span into equal-duration phoneme timings.
func partition(span tts.Span, symbols []string) []PhonemeTiming {
	if len(symbols) == 0 {
		return []PhonemeTiming{{Symbol: phoneme.Sil, Start: span.Start, End: span.End}}
	}

	n := len(symbols)
	width := span.End - span.Start
	timings := make([]PhonemeTiming, n)
	for i, sym := range symbols {
		timings[i] = PhonemeTiming{
			Symbol: sym,
			Start:  span.Start + width*float64(i)/float64(n),
			End:    span.Start + width*float64(i+1)/float64(n),
		}
	}
	// Pin the final boundary so float error cannot leak past the span.
	timings[n-1].End = span.End
	return timings
}
