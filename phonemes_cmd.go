package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/adam-cyclones/pitch-tts/tts/align"
	"github.com/adam-cyclones/pitch-tts/tts/audio"
	"github.com/adam-cyclones/pitch-tts/tts/export"
	"github.com/adam-cyclones/pitch-tts/tts/phoneme"
)

var (
	phonemesOutput string

	phonemesCmd = &cobra.Command{
		Use:   "phonemes WAV",
		Short: "Extract a phoneme timing document from an audio file",
		Long: paragraph("\nRuns forced alignment on an existing WAV file and resolves each " +
			"recognized word to ARPAbet phonemes, writing the same timing document " +
			"that export produces, without synthesizing anything."),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wavPath := args[0]

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			buf, err := audio.ReadWAVFile(wavPath)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			spans, err := align.NewWhisperX(cfg.Aligner).Align(ctx, wavPath, "")
			if err != nil {
				return err
			}

			resolver, err := phoneme.NewDefaultResolver(cfg)
			if err != nil {
				return err
			}
			doc, err := export.BuildPhonemeDocument(ctx, resolver, spans, buf.SampleRate)
			if err != nil {
				return err
			}
			if err := export.WriteDocument(phonemesOutput, doc); err != nil {
				return err
			}

			fmt.Println(keyword("Timing:"), phonemesOutput)
			if n := resolver.Warnings(); n > 0 {
				log.Warn("Extraction finished with warnings", "count", n)
			}
			return nil
		},
	}
)

func init() {
	phonemesCmd.Flags().StringVarP(&phonemesOutput, "output", "o", "phonemes.json",
		"output JSON file for phoneme data")
}
