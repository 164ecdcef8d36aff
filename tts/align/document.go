// Package align merges word-level timings from a forced aligner with
// phoneme sequences into an animation timing document.
package align

// PhonemeTiming is a single phoneme with its time span in seconds.
type PhonemeTiming struct {
	Symbol string  `json:"symbol"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
}

// WordTiming is a spoken word with its span and per-phoneme timings.
type WordTiming struct {
	Word     string          `json:"word"`
	Start    float64         `json:"start"`
	End      float64         `json:"end"`
	Phonemes []PhonemeTiming `json:"phonemes"`
}

// Document is the exported animation timing artifact: everything a
// renderer needs to drive mouth shapes against the audio.
type Document struct {
	Duration   float64      `json:"duration"`
	SampleRate int          `json:"sample_rate"`
	Words      []WordTiming `json:"words"`
}
