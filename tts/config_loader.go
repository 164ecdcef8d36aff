package tts

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

// LoadConfig builds the effective configuration: defaults, then the
// viper-loaded config file, then environment overrides.
func LoadConfig() (Config, error) {
	cfg := LoadConfigFromViper()

	// Environment variables win over the config file.
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfigFromViper loads pipeline configuration from Viper.
func LoadConfigFromViper() Config {
	cfg := DefaultConfig()

	if viper.IsSet("sample_rate") {
		cfg.SampleRate = viper.GetInt("sample_rate")
	}
	if viper.IsSet("output_dir") {
		cfg.OutputDir = viper.GetString("output_dir")
	}
	if viper.IsSet("models_dir") {
		cfg.ModelsDir = viper.GetString("models_dir")
	}
	if viper.IsSet("dict_path") {
		cfg.DictPath = viper.GetString("dict_path")
	}

	if viper.IsSet("piper.binary") {
		cfg.Piper.Binary = viper.GetString("piper.binary")
	}
	if viper.IsSet("piper.voice") {
		cfg.Piper.Voice = viper.GetString("piper.voice")
	}
	if d, ok := durationSetting("piper.timeout"); ok {
		cfg.Piper.Timeout = d
	}

	if viper.IsSet("aligner.binary") {
		cfg.Aligner.Binary = viper.GetString("aligner.binary")
	}
	if d, ok := durationSetting("aligner.timeout"); ok {
		cfg.Aligner.Timeout = d
	}

	if viper.IsSet("g2p.binary") {
		cfg.G2P.Binary = viper.GetString("g2p.binary")
	}
	if d, ok := durationSetting("g2p.timeout"); ok {
		cfg.G2P.Timeout = d
	}

	if viper.IsSet("llm.binary") {
		cfg.LLM.Binary = viper.GetString("llm.binary")
	}
	if viper.IsSet("llm.model") {
		cfg.LLM.Model = viper.GetString("llm.model")
	}
	if d, ok := durationSetting("llm.timeout"); ok {
		cfg.LLM.Timeout = d
	}

	return cfg
}

// SetDefaults sets default values in Viper so a generated config file
// documents every setting.
func SetDefaults() {
	defaults := DefaultConfig()

	viper.SetDefault("sample_rate", defaults.SampleRate)
	viper.SetDefault("output_dir", defaults.OutputDir)
	viper.SetDefault("models_dir", defaults.ModelsDir)
	viper.SetDefault("dict_path", defaults.DictPath)

	viper.SetDefault("piper.binary", defaults.Piper.Binary)
	viper.SetDefault("piper.voice", defaults.Piper.Voice)
	viper.SetDefault("piper.timeout", defaults.Piper.Timeout.String())

	viper.SetDefault("aligner.binary", defaults.Aligner.Binary)
	viper.SetDefault("aligner.timeout", defaults.Aligner.Timeout.String())

	viper.SetDefault("g2p.binary", defaults.G2P.Binary)
	viper.SetDefault("g2p.timeout", defaults.G2P.Timeout.String())

	viper.SetDefault("llm.binary", defaults.LLM.Binary)
	viper.SetDefault("llm.model", defaults.LLM.Model)
	viper.SetDefault("llm.timeout", defaults.LLM.Timeout.String())
}

// durationSetting reads a duration-valued viper key.
func durationSetting(key string) (time.Duration, bool) {
	if !viper.IsSet(key) {
		return 0, false
	}
	d, err := time.ParseDuration(viper.GetString(key))
	if err != nil {
		return 0, false
	}
	return d, true
}
