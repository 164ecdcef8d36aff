package align

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/adam-cyclones/pitch-tts/internal/subprocess"
	"github.com/adam-cyclones/pitch-tts/tts"
)

// WhisperX invokes the whisperx CLI for forced alignment. Output is
// written to a temporary directory and parsed from the JSON artifact
// whisperx produces next to the input name.
type WhisperX struct {
	binary string
	runner *subprocess.Runner
}

var _ tts.Aligner = (*WhisperX)(nil)

// NewWhisperX creates an aligner from configuration.
func NewWhisperX(cfg tts.AlignerConfig) *WhisperX {
	return &WhisperX{
		binary: cfg.Binary,
		runner: subprocess.NewRunner(cfg.Timeout),
	}
}

// Available reports whether the whisperx binary is installed.
func (w *WhisperX) Available() bool {
	return subprocess.CheckBinary(w.binary) == nil
}

// whisperxOutput is the subset of the whisperx JSON artifact we need.
type whisperxOutput struct {
	WordSegments []struct {
		Word  string  `json:"word"`
		Start float64 `json:"start"`
		End   float64 `json:"end"`
	} `json:"word_segments"`
}

// Align runs whisperx on the WAV file and returns one span per
// recognized word, in order.
func (w *WhisperX) Align(ctx context.Context, wavPath, transcript string) ([]tts.Span, error) {
	if err := subprocess.CheckBinary(w.binary); err != nil {
		return nil, err
	}

	outDir, err := os.MkdirTemp("", "pitch-tts-align-*")
	if err != nil {
		return nil, fmt.Errorf("%w: creating alignment dir: %v", tts.ErrIOFailure, err)
	}
	defer os.RemoveAll(outDir)

	log.Debug("Running forced alignment", "binary", w.binary, "wav", wavPath)

	_, err = w.runner.Run(ctx, w.binary,
		wavPath,
		"--output_dir", outDir,
		"--output_format", "json",
		"--compute_type", "float32",
	)
	if err != nil {
		return nil, err
	}

	base := strings.TrimSuffix(filepath.Base(wavPath), filepath.Ext(wavPath))
	artifact := filepath.Join(outDir, base+".json")

	data, err := os.ReadFile(artifact)
	if err != nil {
		return nil, fmt.Errorf("%w: reading alignment output %s: %v", tts.ErrIOFailure, artifact, err)
	}

	var parsed whisperxOutput
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing alignment output: %w", err)
	}

	spans := make([]tts.Span, len(parsed.WordSegments))
	for i, seg := range parsed.WordSegments {
		spans[i] = tts.Span{
			Index: i,
			Word:  seg.Word,
			Start: seg.Start,
			End:   seg.End,
		}
	}
	return spans, nil
}
