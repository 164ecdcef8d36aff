package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/adam-cyclones/pitch-tts/internal/voices"
	"github.com/adam-cyclones/pitch-tts/tts/align"
	"github.com/adam-cyclones/pitch-tts/tts/audio"
	"github.com/adam-cyclones/pitch-tts/tts/engines/piper"
	"github.com/adam-cyclones/pitch-tts/tts/export"
	"github.com/adam-cyclones/pitch-tts/tts/phoneme"
)

var (
	exportVoice string
	exportPitch string
	exportName  string

	exportCmd = &cobra.Command{
		Use:   "export TEXT...",
		Short: "Export speech audio plus a phoneme timing document",
		Long: paragraph("\nSynthesizes the text, applies the pitch shift, and writes a WAV " +
			"file together with a JSON timing document mapping every word and phoneme " +
			"to its time span. Without a forced aligner installed, only audio is written."),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			voice := exportVoice
			if voice == "" {
				voice = cfg.Piper.Voice
			}

			pitch, err := audio.ParsePitch(exportPitch)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := voices.Ensure(ctx, cfg.ModelsDir, voice); err != nil {
				return err
			}

			resolver, err := phoneme.NewDefaultResolver(cfg)
			if err != nil {
				return err
			}
			pipeline := export.NewPipeline(cfg, piper.New(cfg), align.NewWhisperX(cfg.Aligner), resolver)

			res, err := pipeline.Run(ctx, export.Request{
				Text:  text,
				Voice: voice,
				Pitch: pitch,
				Name:  exportName,
			})
			if err != nil {
				return err
			}

			fmt.Println(keyword("Audio:"), res.WAVPath)
			if res.AudioOnly() {
				fmt.Println("No timing document written (aligner unavailable).")
			} else {
				fmt.Println(keyword("Timing:"), res.TimingPath)
			}
			if res.Warnings > 0 {
				log.Warn("Export finished with warnings", "count", res.Warnings)
			}
			return nil
		},
	}
)

func init() {
	exportCmd.Flags().StringVarP(&exportVoice, "voice", "v", "", "voice ID (default from config)")
	exportCmd.Flags().StringVarP(&exportPitch, "pitch", "p", "1.0",
		"pitch factor (0.5 octave down, 2.0 octave up) or preset (deep, child, helium, slomo)")
	exportCmd.Flags().StringVarP(&exportName, "name", "n", "", "output directory name (default: slug of the text)")
}
