package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/adam-cyclones/pitch-tts/internal/voices"
)

var (
	listByLanguage bool

	voiceIDStyle   = lipgloss.NewStyle().Bold(true)
	voiceMetaStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "241"})
	languageStyle  = lipgloss.NewStyle().Bold(true).Underline(true)

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List available voices",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			styled := term.IsTerminal(int(os.Stdout.Fd()))

			if listByLanguage {
				groups := voices.ByLanguage()
				for _, lang := range voices.Languages() {
					if styled {
						fmt.Println(languageStyle.Render(lang))
					} else {
						fmt.Println(lang + ":")
					}
					for _, v := range groups[lang] {
						printVoice(v, styled)
					}
					fmt.Println()
				}
				return nil
			}

			for _, v := range voices.All() {
				printVoice(v, styled)
			}
			return nil
		},
	}
)

func printVoice(v voices.Voice, styled bool) {
	if styled {
		fmt.Printf("  %s %s\n",
			voiceIDStyle.Render(v.ID),
			voiceMetaStyle.Render(fmt.Sprintf("%s, %s", v.Language, v.Quality)))
		return
	}
	fmt.Printf("  %s (%s, %s)\n", v.ID, v.Language, v.Quality)
}

func init() {
	listCmd.Flags().BoolVarP(&listByLanguage, "by-language", "l", false, "group voices by language")
}
