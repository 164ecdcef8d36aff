package phoneme

import (
	"context"
	"fmt"
	"strings"

	"github.com/adam-cyclones/pitch-tts/internal/subprocess"
	"github.com/adam-cyclones/pitch-tts/tts"
)

// SourceG2P tags results produced by the rule-based tier.
const SourceG2P = "rule-based"

// G2P is the second resolution tier: an external grapheme-to-phoneme
// tool that prints space-separated ARPAbet symbols for a word given
// on the command line.
type G2P struct {
	binary string
	runner *subprocess.Runner
}

// NewG2P creates a G2P tier from configuration.
func NewG2P(cfg tts.G2PConfig) *G2P {
	return &G2P{
		binary: cfg.Binary,
		runner: subprocess.NewRunner(cfg.Timeout),
	}
}

// Name implements Tier.
func (g *G2P) Name() string { return SourceG2P }

// Available implements Tier.
func (g *G2P) Available() bool {
	return subprocess.CheckBinary(g.binary) == nil
}

// Phonemes implements Tier. The tool's stdout is split on whitespace;
// symbol validation happens in the resolver.
func (g *G2P) Phonemes(ctx context.Context, word string) ([]string, error) {
	out, err := g.runner.Run(ctx, g.binary, word)
	if err != nil {
		return nil, fmt.Errorf("g2p: %w", err)
	}
	return strings.Fields(string(out)), nil
}
