package tts

import (
	"fmt"
	"time"
)

// Config contains all pipeline configuration options.
type Config struct {
	// Audio settings
	SampleRate int `yaml:"sample_rate" env:"PITCH_TTS_SAMPLE_RATE" envDefault:"22050"`

	// Artifact locations
	OutputDir string `yaml:"output_dir" env:"PITCH_TTS_OUTPUT_DIR" envDefault:"exports"`
	ModelsDir string `yaml:"models_dir" env:"PITCH_TTS_MODELS_DIR" envDefault:"models"`

	// Optional path to a full CMUdict file. When empty only the
	// embedded core dictionary is used.
	DictPath string `yaml:"dict_path" env:"PITCH_TTS_DICT_PATH"`

	// External tool configurations
	Piper   PiperConfig   `yaml:"piper"`
	Aligner AlignerConfig `yaml:"aligner"`
	G2P     G2PConfig     `yaml:"g2p"`
	LLM     LLMConfig     `yaml:"llm"`
}

// PiperConfig contains Piper TTS engine settings.
type PiperConfig struct {
	Binary  string        `yaml:"binary" env:"PITCH_TTS_PIPER_BINARY" envDefault:"piper"`
	Voice   string        `yaml:"voice" env:"PITCH_TTS_PIPER_VOICE" envDefault:"en_GB-alba-medium"`
	Timeout time.Duration `yaml:"timeout" env:"PITCH_TTS_PIPER_TIMEOUT" envDefault:"60s"`
}

// AlignerConfig contains forced-alignment tool settings.
type AlignerConfig struct {
	Binary  string        `yaml:"binary" env:"PITCH_TTS_ALIGNER_BINARY" envDefault:"whisperx"`
	Timeout time.Duration `yaml:"timeout" env:"PITCH_TTS_ALIGNER_TIMEOUT" envDefault:"120s"`
}

// G2PConfig contains rule-based grapheme-to-phoneme tool settings.
type G2PConfig struct {
	Binary  string        `yaml:"binary" env:"PITCH_TTS_G2P_BINARY" envDefault:"g2p-en"`
	Timeout time.Duration `yaml:"timeout" env:"PITCH_TTS_G2P_TIMEOUT" envDefault:"10s"`
}

// LLMConfig contains model-based phoneme fallback settings.
type LLMConfig struct {
	Binary  string        `yaml:"binary" env:"PITCH_TTS_LLM_BINARY" envDefault:"ollama"`
	Model   string        `yaml:"model" env:"PITCH_TTS_LLM_MODEL" envDefault:"llama3.2"`
	Timeout time.Duration `yaml:"timeout" env:"PITCH_TTS_LLM_TIMEOUT" envDefault:"60s"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		SampleRate: 22050,
		OutputDir:  "exports",
		ModelsDir:  "models",

		Piper: PiperConfig{
			Binary:  "piper",
			Voice:   "en_GB-alba-medium",
			Timeout: 60 * time.Second,
		},
		Aligner: AlignerConfig{
			Binary:  "whisperx",
			Timeout: 120 * time.Second,
		},
		G2P: G2PConfig{
			Binary:  "g2p-en",
			Timeout: 10 * time.Second,
		},
		LLM: LLMConfig{
			Binary:  "ollama",
			Model:   "llama3.2",
			Timeout: 60 * time.Second,
		},
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	validSampleRates := []int{8000, 16000, 22050, 24000, 44100, 48000}
	sampleRateValid := false
	for _, sr := range validSampleRates {
		if c.SampleRate == sr {
			sampleRateValid = true
			break
		}
	}
	if !sampleRateValid {
		return fmt.Errorf("%w: sample rate %d must be one of %v",
			ErrInvalidConfig, c.SampleRate, validSampleRates)
	}

	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir cannot be empty", ErrInvalidConfig)
	}
	if c.ModelsDir == "" {
		return fmt.Errorf("%w: models_dir cannot be empty", ErrInvalidConfig)
	}

	if c.Piper.Binary == "" {
		return fmt.Errorf("%w: piper binary cannot be empty", ErrInvalidConfig)
	}
	if c.Piper.Timeout < time.Second {
		return fmt.Errorf("%w: piper timeout must be at least 1s, got %v",
			ErrInvalidConfig, c.Piper.Timeout)
	}
	if c.Aligner.Timeout < time.Second {
		return fmt.Errorf("%w: aligner timeout must be at least 1s, got %v",
			ErrInvalidConfig, c.Aligner.Timeout)
	}
	if c.G2P.Timeout < time.Second {
		return fmt.Errorf("%w: g2p timeout must be at least 1s, got %v",
			ErrInvalidConfig, c.G2P.Timeout)
	}
	if c.LLM.Timeout < time.Second {
		return fmt.Errorf("%w: llm timeout must be at least 1s, got %v",
			ErrInvalidConfig, c.LLM.Timeout)
	}

	return nil
}
