package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/adam-cyclones/pitch-tts/internal/voices"
)

var downloadCmd = &cobra.Command{
	Use:   "download VOICE...",
	Short: "Download voice models ahead of time",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		for _, id := range args {
			if err := voices.Ensure(cmd.Context(), cfg.ModelsDir, id); err != nil {
				return err
			}
			log.Info("Voice ready", "voice", id)
		}
		return nil
	},
}
