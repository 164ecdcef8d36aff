package main

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/adam-cyclones/pitch-tts/internal/player"
	"github.com/adam-cyclones/pitch-tts/internal/voices"
	"github.com/adam-cyclones/pitch-tts/tts/audio"
	"github.com/adam-cyclones/pitch-tts/tts/engines/piper"
)

const defaultSayText = "Well hello there! I'm Alba, your Scottish friend. " +
	"How about we go for a wee walk in the highlands? " +
	"The weather is absolutely bonnie today!"

var (
	sayVoice string
	sayPitch string

	sayCmd = &cobra.Command{
		Use:   "say [TEXT]",
		Short: "Synthesize speech and play it",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := defaultSayText
			if len(args) > 0 {
				text = strings.Join(args, " ")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			voice := sayVoice
			if voice == "" {
				voice = cfg.Piper.Voice
			}

			pitch, err := audio.ParsePitch(sayPitch)
			if err != nil {
				return err
			}
			if err := pitch.Validate(); err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := voices.Ensure(ctx, cfg.ModelsDir, voice); err != nil {
				return err
			}

			buf, err := piper.New(cfg).Synthesize(ctx, text, voice)
			if err != nil {
				return err
			}
			buf, err = audio.Shift(buf, pitch)
			if err != nil {
				return err
			}

			log.Info("Playing", "voice", voice, "pitch", pitch.Factor, "seconds", buf.Seconds())
			return player.Play(ctx, buf)
		},
	}
)

func init() {
	sayCmd.Flags().StringVarP(&sayVoice, "voice", "v", "", "voice ID (default from config)")
	sayCmd.Flags().StringVarP(&sayPitch, "pitch", "p", "1.0",
		"pitch factor (0.5 octave down, 2.0 octave up) or preset (deep, child, helium, slomo)")
}
