// Package piper wraps the Piper neural TTS engine as a subprocess.
package piper

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/adam-cyclones/pitch-tts/internal/subprocess"
	"github.com/adam-cyclones/pitch-tts/tts"
	"github.com/adam-cyclones/pitch-tts/tts/audio"
)

// Engine synthesizes speech by piping text into the piper binary and
// reading raw PCM from its stdout.
type Engine struct {
	binary     string
	modelsDir  string
	sampleRate int
	runner     *subprocess.Runner
}

var _ tts.Synthesizer = (*Engine)(nil)

// New creates a Piper engine from configuration.
func New(cfg tts.Config) *Engine {
	return &Engine{
		binary:     cfg.Piper.Binary,
		modelsDir:  cfg.ModelsDir,
		sampleRate: cfg.SampleRate,
		runner:     subprocess.NewRunner(cfg.Piper.Timeout),
	}
}

// Available implements tts.Synthesizer.
func (e *Engine) Available() bool {
	return subprocess.CheckBinary(e.binary) == nil
}

// ModelPath returns the expected ONNX model path for a voice ID.
func (e *Engine) ModelPath(voiceID string) string {
	return filepath.Join(e.modelsDir, voiceID+".onnx")
}

// Synthesize implements tts.Synthesizer. Piper reads one line of text
// on stdin and emits mono 16-bit PCM on stdout with --output-raw.
func (e *Engine) Synthesize(ctx context.Context, text, voiceID string) (*audio.Buffer, error) {
	if strings.TrimSpace(text) == "" {
		return audio.NewBuffer([]float32{}, e.sampleRate, 1), nil
	}
	if err := subprocess.CheckBinary(e.binary); err != nil {
		return nil, err
	}

	model := e.ModelPath(voiceID)
	if _, err := os.Stat(model); err != nil {
		return nil, fmt.Errorf("%w: %q (expected at %s)", tts.ErrVoiceModelMissing, voiceID, model)
	}

	log.Debug("Synthesizing", "voice", voiceID, "chars", len(text))

	pcm, err := e.runner.RunWithStdin(ctx, text, e.binary,
		"--model", model,
		"--output-raw",
	)
	if err != nil {
		if tts.IsRecoverable(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", tts.ErrSynthesisFailure, err)
	}
	if len(pcm) == 0 {
		return nil, fmt.Errorf("%w: piper produced no audio", tts.ErrSynthesisFailure)
	}

	return audio.FromPCM16(pcm, e.sampleRate, 1), nil
}
