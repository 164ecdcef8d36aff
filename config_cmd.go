package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/x/editor"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultConfig = `# pitch-tts configuration

# output sample rate in Hz
sample_rate: 22050
# directory for export artifacts
output_dir: "exports"
# directory for downloaded voice models
models_dir: "models"
# optional path to a full CMUdict file
# dict_path: "/usr/share/dict/cmudict.dict"

piper:
  binary: "piper"
  voice: "en_GB-alba-medium"
  timeout: "60s"

aligner:
  binary: "whisperx"
  timeout: "120s"

g2p:
  binary: "g2p-en"
  timeout: "10s"

llm:
  binary: "ollama"
  model: "llama3.2"
  timeout: "60s"
`

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Edit the pitch-tts config file",
	Long:    paragraph(fmt.Sprintf("\n%s the pitch-tts config file. We'll use EDITOR to determine which editor to use. If the config file doesn't exist, it will be created.", keyword("Edit"))),
	Example: paragraph("pitch-tts config\npitch-tts config --config path/to/pitch-tts.yml"),
	Args:    cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		if err := ensureConfigFile(); err != nil {
			return err
		}

		c, err := editor.Cmd("pitch-tts", configFile)
		if err != nil {
			return fmt.Errorf("unable to set config file: %w", err)
		}
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		if err := c.Run(); err != nil {
			return fmt.Errorf("unable to run command: %w", err)
		}

		fmt.Println("Wrote config file to:", configFile)
		return nil
	},
}

func ensureConfigFile() error {
	if configFile == "" {
		configFile = viper.GetViper().ConfigFileUsed()
	}
	if err := os.MkdirAll(filepath.Dir(configFile), 0o755); err != nil {
		return fmt.Errorf("could not create configuration directory: %w", err)
	}
	if _, err := os.Stat(configFile); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(configFile, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("could not write configuration file: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("could not stat configuration file: %w", err)
	}
	return nil
}
