package piper

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/adam-cyclones/pitch-tts/tts"
)

func testConfig(t *testing.T) tts.Config {
	t.Helper()
	cfg := tts.DefaultConfig()
	cfg.ModelsDir = t.TempDir()
	return cfg
}

func TestSynthesizeEmptyText(t *testing.T) {
	e := New(testConfig(t))

	buf, err := e.Synthesize(context.Background(), "   ", "en_GB-alba-medium")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buf.Samples) != 0 {
		t.Errorf("empty text produced %d samples", len(buf.Samples))
	}
}

func TestSynthesizeMissingBinary(t *testing.T) {
	cfg := testConfig(t)
	cfg.Piper.Binary = "definitely-not-piper"

	e := New(cfg)
	if e.Available() {
		t.Fatal("Available() = true for nonexistent binary")
	}

	_, err := e.Synthesize(context.Background(), "hello", "en_GB-alba-medium")
	if !errors.Is(err, tts.ErrSubprocessUnavailable) {
		t.Errorf("err = %v, want ErrSubprocessUnavailable", err)
	}
}

func TestSynthesizeMissingModel(t *testing.T) {
	cfg := testConfig(t)
	// A binary that exists but is never reached: the model check
	// fails first.
	cfg.Piper.Binary = "true"
	cfg.Piper.Timeout = time.Second

	e := New(cfg)
	_, err := e.Synthesize(context.Background(), "hello", "no-such-voice")
	if !errors.Is(err, tts.ErrVoiceModelMissing) {
		t.Errorf("err = %v, want ErrVoiceModelMissing", err)
	}
}

func TestModelPath(t *testing.T) {
	cfg := testConfig(t)
	e := New(cfg)

	want := filepath.Join(cfg.ModelsDir, "en_GB-alba-medium.onnx")
	if got := e.ModelPath("en_GB-alba-medium"); got != want {
		t.Errorf("ModelPath = %q, want %q", got, want)
	}
}
