// Package voices lists downloadable Piper voice models and fetches
// them from the Hugging Face voice repository.
package voices

import (
	"fmt"
	"sort"
	"strings"
)

const hfBase = "https://huggingface.co/rhasspy/piper-voices/resolve/main"

// DefaultVoice is used when no voice is configured.
const DefaultVoice = "en_GB-alba-medium"

// Voice is one downloadable Piper model.
type Voice struct {
	ID       string // e.g. "en_GB-alba-medium"
	Language string // human-readable language name
	Quality  string // x_low, low, medium, or high
}

// DisplayName returns a human-friendly label.
func (v Voice) DisplayName() string {
	return fmt.Sprintf("%s (%s)", strings.ReplaceAll(v.ID, "_", " "), v.Quality)
}

// ModelURL returns the download URL for the ONNX model.
func (v Voice) ModelURL() string {
	return v.repoPath() + ".onnx"
}

// ConfigURL returns the download URL for the model's JSON config.
func (v Voice) ConfigURL() string {
	return v.repoPath() + ".onnx.json"
}

// repoPath rebuilds the repository layout from the voice ID, which
// encodes language_COUNTRY-name-quality.
func (v Voice) repoPath() string {
	parts := strings.SplitN(v.ID, "-", 3)
	if len(parts) != 3 {
		return hfBase + "/" + v.ID
	}
	langCountry, name, quality := parts[0], parts[1], parts[2]
	lang := langCountry[:2]
	return fmt.Sprintf("%s/%s/%s/%s/%s/%s", hfBase, lang, langCountry, name, quality, v.ID)
}

// All returns the known voice catalog.
func All() []Voice {
	out := make([]Voice, len(catalog))
	copy(out, catalog)
	return out
}

// Find looks up a voice by ID.
func Find(id string) (Voice, bool) {
	for _, v := range catalog {
		if v.ID == id {
			return v, true
		}
	}
	return Voice{}, false
}

// ByLanguage groups the catalog by language name. Languages returns
// the group keys sorted.
func ByLanguage() map[string][]Voice {
	groups := make(map[string][]Voice)
	for _, v := range catalog {
		groups[v.Language] = append(groups[v.Language], v)
	}
	return groups
}

// Languages returns the sorted language names present in the catalog.
func Languages() []string {
	seen := make(map[string]bool)
	var names []string
	for _, v := range catalog {
		if !seen[v.Language] {
			seen[v.Language] = true
			names = append(names, v.Language)
		}
	}
	sort.Strings(names)
	return names
}

var catalog = []Voice{
	{ID: "en_GB-alba-medium", Language: "Scottish English", Quality: "medium"},
	{ID: "en_GB-alan-low", Language: "British English", Quality: "low"},
	{ID: "en_GB-alan-medium", Language: "British English", Quality: "medium"},
	{ID: "en_GB-aru-medium", Language: "British English", Quality: "medium"},
	{ID: "en_GB-cori-high", Language: "British English", Quality: "high"},
	{ID: "en_GB-cori-medium", Language: "British English", Quality: "medium"},
	{ID: "en_GB-jenny_dioco-medium", Language: "British English", Quality: "medium"},
	{ID: "en_GB-northern_english_male-medium", Language: "Northern English", Quality: "medium"},
	{ID: "en_GB-semaine-medium", Language: "British English", Quality: "medium"},
	{ID: "en_GB-southern_english_female-low", Language: "Southern English", Quality: "low"},
	{ID: "en_GB-vctk-medium", Language: "British English", Quality: "medium"},

	{ID: "en_US-amy-low", Language: "US English", Quality: "low"},
	{ID: "en_US-amy-medium", Language: "US English", Quality: "medium"},
	{ID: "en_US-arctic-medium", Language: "US English", Quality: "medium"},
	{ID: "en_US-bryce-medium", Language: "US English", Quality: "medium"},
	{ID: "en_US-danny-low", Language: "US English", Quality: "low"},
	{ID: "en_US-hfc_female-medium", Language: "US English", Quality: "medium"},
	{ID: "en_US-hfc_male-medium", Language: "US English", Quality: "medium"},
	{ID: "en_US-joe-medium", Language: "US English", Quality: "medium"},
	{ID: "en_US-john-medium", Language: "US English", Quality: "medium"},
	{ID: "en_US-kathleen-low", Language: "US English", Quality: "low"},
	{ID: "en_US-kristin-medium", Language: "US English", Quality: "medium"},
	{ID: "en_US-kusal-medium", Language: "US English", Quality: "medium"},
	{ID: "en_US-l2arctic-medium", Language: "US English", Quality: "medium"},
	{ID: "en_US-lessac-high", Language: "US English", Quality: "high"},
	{ID: "en_US-lessac-low", Language: "US English", Quality: "low"},
	{ID: "en_US-lessac-medium", Language: "US English", Quality: "medium"},
	{ID: "en_US-libritts-high", Language: "US English", Quality: "high"},
	{ID: "en_US-libritts_r-medium", Language: "US English", Quality: "medium"},
	{ID: "en_US-ljspeech-high", Language: "US English", Quality: "high"},
	{ID: "en_US-ljspeech-medium", Language: "US English", Quality: "medium"},
	{ID: "en_US-norman-medium", Language: "US English", Quality: "medium"},
	{ID: "en_US-ryan-high", Language: "US English", Quality: "high"},
	{ID: "en_US-ryan-low", Language: "US English", Quality: "low"},
	{ID: "en_US-ryan-medium", Language: "US English", Quality: "medium"},

	{ID: "de_DE-eva_k-x_low", Language: "German", Quality: "x_low"},
	{ID: "de_DE-karlsson-low", Language: "German", Quality: "low"},
	{ID: "de_DE-kerstin-low", Language: "German", Quality: "low"},
	{ID: "de_DE-mls-medium", Language: "German", Quality: "medium"},
	{ID: "de_DE-pavoque-low", Language: "German", Quality: "low"},
	{ID: "de_DE-ramona-low", Language: "German", Quality: "low"},
	{ID: "de_DE-thorsten-high", Language: "German", Quality: "high"},
	{ID: "de_DE-thorsten-low", Language: "German", Quality: "low"},
	{ID: "de_DE-thorsten-medium", Language: "German", Quality: "medium"},
	{ID: "de_DE-thorsten_emotional-medium", Language: "German", Quality: "medium"},

	{ID: "fr_FR-gilles-low", Language: "French", Quality: "low"},
	{ID: "fr_FR-mls-medium", Language: "French", Quality: "medium"},
	{ID: "fr_FR-mls_1840-low", Language: "French", Quality: "low"},
	{ID: "fr_FR-siwis-low", Language: "French", Quality: "low"},
	{ID: "fr_FR-siwis-medium", Language: "French", Quality: "medium"},
	{ID: "fr_FR-tom-medium", Language: "French", Quality: "medium"},
	{ID: "fr_FR-upmc-medium", Language: "French", Quality: "medium"},

	{ID: "es_ES-carlfm-x_low", Language: "Spanish", Quality: "x_low"},
	{ID: "es_ES-davefx-medium", Language: "Spanish", Quality: "medium"},
	{ID: "es_ES-mls_10246-low", Language: "Spanish", Quality: "low"},
	{ID: "es_ES-mls_9972-low", Language: "Spanish", Quality: "low"},
	{ID: "es_ES-sharvard-medium", Language: "Spanish", Quality: "medium"},
	{ID: "es_MX-ald-medium", Language: "Mexican Spanish", Quality: "medium"},
	{ID: "es_MX-claude-high", Language: "Mexican Spanish", Quality: "high"},

	{ID: "it_IT-paola-medium", Language: "Italian", Quality: "medium"},
	{ID: "it_IT-riccardo-x_low", Language: "Italian", Quality: "x_low"},

	{ID: "ru_RU-denis-medium", Language: "Russian", Quality: "medium"},
	{ID: "ru_RU-dmitri-medium", Language: "Russian", Quality: "medium"},
	{ID: "ru_RU-irina-medium", Language: "Russian", Quality: "medium"},
	{ID: "ru_RU-ruslan-medium", Language: "Russian", Quality: "medium"},
}
