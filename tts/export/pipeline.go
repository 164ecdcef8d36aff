// Package export orchestrates the synthesis pipeline and writes its
// artifacts: a pitched WAV plus an animation timing document.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/adam-cyclones/pitch-tts/tts"
	"github.com/adam-cyclones/pitch-tts/tts/align"
	"github.com/adam-cyclones/pitch-tts/tts/audio"
	"github.com/adam-cyclones/pitch-tts/tts/phoneme"
)

// Request describes one export job.
type Request struct {
	Text  string
	Voice string
	Pitch audio.PitchSpec

	// Name overrides the output directory name. Empty means a slug
	// derived from the text.
	Name string
}

// Result reports what an export produced. TimingPath is empty when
// the aligner was unavailable and only audio was written.
type Result struct {
	Dir        string
	WAVPath    string
	TimingPath string
	Document   *align.Document
	Warnings   int
}

// AudioOnly reports whether the export fell back to audio without a
// timing document.
func (r *Result) AudioOnly() bool { return r.TimingPath == "" }

// Pipeline runs synthesis, pitch shifting, alignment, phoneme
// resolution, and artifact writing for export requests.
type Pipeline struct {
	cfg      tts.Config
	synth    tts.Synthesizer
	aligner  tts.Aligner
	resolver *phoneme.Resolver
}

// NewPipeline assembles a pipeline from its stages.
func NewPipeline(cfg tts.Config, synth tts.Synthesizer, aligner tts.Aligner, resolver *phoneme.Resolver) *Pipeline {
	return &Pipeline{cfg: cfg, synth: synth, aligner: aligner, resolver: resolver}
}

// Run executes the pipeline for one request. Failures are tagged with
// the stage that produced them; artifacts written before a failure are
// left in place for inspection.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, tts.NewStageError("validate", fmt.Errorf("%w: text is empty", tts.ErrInvalidConfig))
	}
	// The resolver outlives individual requests; only warnings raised
	// during this run belong to this result.
	warningsBefore := p.resolver.Warnings()
	if err := req.Pitch.Validate(); err != nil {
		return nil, tts.NewStageError("validate", err)
	}

	buf, err := p.synth.Synthesize(ctx, req.Text, req.Voice)
	if err != nil {
		return nil, tts.NewStageError("synthesize", err)
	}
	log.Debug("Synthesized", "seconds", buf.Seconds())

	buf, err = audio.Shift(buf, req.Pitch)
	if err != nil {
		return nil, tts.NewStageError("pitch", err)
	}

	name := req.Name
	if name == "" {
		name = req.Text
	}
	name = Slugify(name)
	dir := filepath.Join(p.cfg.OutputDir, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, tts.NewStageError("write-audio",
			fmt.Errorf("%w: creating %s: %v", tts.ErrIOFailure, dir, err))
	}

	res := &Result{
		Dir:     dir,
		WAVPath: filepath.Join(dir, name+".wav"),
	}
	if err := audio.WriteWAVFile(res.WAVPath, buf); err != nil {
		return nil, tts.NewStageError("write-audio",
			fmt.Errorf("%w: %v", tts.ErrIOFailure, err))
	}
	log.Info("Wrote audio", "path", res.WAVPath, "seconds", buf.Seconds())

	spans, err := p.aligner.Align(ctx, res.WAVPath, req.Text)
	if err != nil {
		if errors.Is(err, tts.ErrSubprocessUnavailable) {
			// No aligner installed: the audio artifact still stands.
			log.Warn("Aligner unavailable, exporting audio only", "error", err)
			res.Warnings++
			return res, nil
		}
		return nil, tts.NewStageError("align", err)
	}

	doc, err := p.buildDocument(ctx, req.Text, spans, buf)
	if err != nil {
		return nil, tts.NewStageError("merge", err)
	}
	res.Document = doc

	res.TimingPath = filepath.Join(dir, name+".json")
	if err := writeJSON(res.TimingPath, doc); err != nil {
		return nil, tts.NewStageError("write-timing", err)
	}
	log.Info("Wrote timing document", "path", res.TimingPath, "words", len(doc.Words))

	res.Warnings += p.resolver.Warnings() - warningsBefore
	return res, nil
}

// buildDocument resolves phonemes for each transcript token and
// merges them with the aligner spans.
func (p *Pipeline) buildDocument(ctx context.Context, text string, spans []tts.Span, buf *audio.Buffer) (*align.Document, error) {
	tokens := tts.Tokenize(text)

	seqs := make([][]string, len(tokens))
	for i, token := range tokens {
		seqs[i] = p.resolver.Resolve(ctx, token.Text).Symbols
	}

	return align.Merge(tokens, spans, seqs, buf.SampleRate)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", tts.ErrIOFailure, err)
	}
	return nil
}
