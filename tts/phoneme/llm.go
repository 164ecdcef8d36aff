package phoneme

import (
	"context"
	"fmt"
	"strings"

	"github.com/adam-cyclones/pitch-tts/internal/subprocess"
	"github.com/adam-cyclones/pitch-tts/tts"
)

// SourceLLM tags results produced by the model-based tier.
const SourceLLM = "model-based"

// LLM is the last resolution tier: a local language model asked for
// the ARPAbet phonemes of a word. Output quality varies, so the
// resolver filters its answer against the alphabet like any other
// tier.
type LLM struct {
	binary string
	model  string
	runner *subprocess.Runner
}

// NewLLM creates an LLM tier from configuration.
func NewLLM(cfg tts.LLMConfig) *LLM {
	return &LLM{
		binary: cfg.Binary,
		model:  cfg.Model,
		runner: subprocess.NewRunner(cfg.Timeout),
	}
}

// Name implements Tier.
func (l *LLM) Name() string { return SourceLLM }

// Available implements Tier.
func (l *LLM) Available() bool {
	return subprocess.CheckBinary(l.binary) == nil
}

// Phonemes implements Tier.
func (l *LLM) Phonemes(ctx context.Context, word string) ([]string, error) {
	prompt := fmt.Sprintf(
		"Give only the ARPAbet phonemes for the word '%s', separated by spaces, "+
			"with no explanation. Example: hello => HH AH0 L OW1", word)

	out, err := l.runner.Run(ctx, l.binary, "run", l.model, prompt)
	if err != nil {
		return nil, fmt.Errorf("llm: %w", err)
	}
	return parseLLMAnswer(string(out)), nil
}

// parseLLMAnswer extracts symbols from a model reply. Models often
// echo the "word => PHONEMES" example format or add surrounding chat,
// so only the portion after the last "=>" on the last non-empty line
// is taken.
func parseLLMAnswer(answer string) []string {
	lines := strings.Split(strings.TrimSpace(answer), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if idx := strings.LastIndex(line, "=>"); idx >= 0 {
			line = line[idx+2:]
		}
		return strings.Fields(line)
	}
	return nil
}
