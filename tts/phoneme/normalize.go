package phoneme

import (
	"strings"
	"unicode"
)

// NormalizeWord prepares a raw token for lookup: surrounding
// punctuation is stripped, interior apostrophes kept, and the result
// uppercased. Returns "" when nothing pronounceable remains.
func NormalizeWord(raw string) string {
	trimmed := strings.TrimFunc(raw, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	trimmed = strings.Trim(trimmed, "'")
	if trimmed == "" {
		return ""
	}
	return strings.ToUpper(trimmed)
}

// IsNumeric reports whether the normalized word consists entirely of
// digits.
func IsNumeric(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

var onesWords = []string{
	"ZERO", "ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN",
	"EIGHT", "NINE", "TEN", "ELEVEN", "TWELVE", "THIRTEEN", "FOURTEEN",
	"FIFTEEN", "SIXTEEN", "SEVENTEEN", "EIGHTEEN", "NINETEEN",
}

var tensWords = []string{
	"", "", "TWENTY", "THIRTY", "FORTY", "FIFTY",
	"SIXTY", "SEVENTY", "EIGHTY", "NINETY",
}

// ExpandNumber converts a digit string into its spoken-English words,
// one word per slice element. Numbers too large to speak naturally
// fall back to digit-by-digit reading.
func ExpandNumber(digits string) []string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return []string{"ZERO"}
	}
	if len(trimmed) > 12 {
		return digitByDigit(digits)
	}

	var n int64
	for _, r := range trimmed {
		n = n*10 + int64(r-'0')
	}
	return spellInt(n)
}

func digitByDigit(digits string) []string {
	words := make([]string, 0, len(digits))
	for _, r := range digits {
		words = append(words, onesWords[r-'0'])
	}
	return words
}

func spellInt(n int64) []string {
	switch {
	case n < 20:
		return []string{onesWords[n]}
	case n < 100:
		words := []string{tensWords[n/10]}
		if rem := n % 10; rem != 0 {
			words = append(words, onesWords[rem])
		}
		return words
	case n < 1000:
		words := append(spellInt(n/100), "HUNDRED")
		if rem := n % 100; rem != 0 {
			words = append(words, spellInt(rem)...)
		}
		return words
	}

	scales := []struct {
		value int64
		word  string
	}{
		{1_000_000_000, "BILLION"},
		{1_000_000, "MILLION"},
		{1_000, "THOUSAND"},
	}
	for _, scale := range scales {
		if n >= scale.value {
			words := append(spellInt(n/scale.value), scale.word)
			if rem := n % scale.value; rem != 0 {
				words = append(words, spellInt(rem)...)
			}
			return words
		}
	}
	return []string{onesWords[0]}
}
