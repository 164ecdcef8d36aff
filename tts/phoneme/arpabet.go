// Package phoneme resolves words to ARPAbet phoneme sequences using a
// tiered chain: dictionary lookup, a rule-based grapheme-to-phoneme
// tool, and a model-based fallback.
package phoneme

import "strings"

// Sil is the placeholder symbol for silence and for words that could
// not be resolved.
const Sil = "SIL"

// arpabetVowels carry a stress digit (0, 1, or 2) in dictionary
// output; consonants never do.
var arpabetVowels = []string{
	"AA", "AE", "AH", "AO", "AW", "AY", "EH", "ER",
	"EY", "IH", "IY", "OW", "OY", "UH", "UW",
}

var arpabetConsonants = []string{
	"B", "CH", "D", "DH", "F", "G", "HH", "JH", "K", "L", "M",
	"N", "NG", "P", "R", "S", "SH", "T", "TH", "V", "W", "Y", "Z", "ZH",
}

var validSymbols = buildSymbolSet()

func buildSymbolSet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, v := range arpabetVowels {
		set[v] = struct{}{}
		for _, stress := range []string{"0", "1", "2"} {
			set[v+stress] = struct{}{}
		}
	}
	for _, c := range arpabetConsonants {
		set[c] = struct{}{}
	}
	set[Sil] = struct{}{}
	return set
}

// IsValidSymbol reports whether sym is a recognized ARPAbet symbol,
// with or without a stress digit, or the SIL placeholder.
func IsValidSymbol(sym string) bool {
	_, ok := validSymbols[strings.ToUpper(sym)]
	return ok
}

// FilterValid returns the uppercased valid symbols from seq and the
// symbols that were dropped. Order is preserved.
func FilterValid(seq []string) (valid, dropped []string) {
	for _, sym := range seq {
		up := strings.ToUpper(strings.TrimSpace(sym))
		if up == "" {
			continue
		}
		if _, ok := validSymbols[up]; ok {
			valid = append(valid, up)
		} else {
			dropped = append(dropped, sym)
		}
	}
	return valid, dropped
}
