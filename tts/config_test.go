package tts

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Piper.Voice != "en_GB-alba-medium" {
		t.Errorf("default voice = %q", cfg.Piper.Voice)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "bad sample rate", mutate: func(c *Config) { c.SampleRate = 12345 }},
		{name: "empty output dir", mutate: func(c *Config) { c.OutputDir = "" }},
		{name: "empty models dir", mutate: func(c *Config) { c.ModelsDir = "" }},
		{name: "empty piper binary", mutate: func(c *Config) { c.Piper.Binary = "" }},
		{name: "tiny piper timeout", mutate: func(c *Config) { c.Piper.Timeout = 10 * time.Millisecond }},
		{name: "tiny aligner timeout", mutate: func(c *Config) { c.Aligner.Timeout = 0 }},
		{name: "tiny g2p timeout", mutate: func(c *Config) { c.G2P.Timeout = 0 }},
		{name: "tiny llm timeout", mutate: func(c *Config) { c.LLM.Timeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestIsRecoverable(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{err: nil, want: true},
		{err: ErrSubprocessUnavailable, want: true},
		{err: ErrSubprocessTimeout, want: true},
		{err: ErrAlignmentMismatch, want: false},
		{err: ErrSynthesisFailure, want: false},
		{err: ErrIOFailure, want: false},
	}

	for _, tt := range tests {
		if got := IsRecoverable(tt.err); got != tt.want {
			t.Errorf("IsRecoverable(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestStageError(t *testing.T) {
	err := NewStageError("align", ErrAlignmentMismatch)

	if !errors.Is(err, ErrAlignmentMismatch) {
		t.Error("StageError does not unwrap to its cause")
	}
	if err.Error() != "align: "+ErrAlignmentMismatch.Error() {
		t.Errorf("Error() = %q", err.Error())
	}
}
