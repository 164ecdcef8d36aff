package phoneme

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// SourceDictionary tags results produced by dictionary lookup.
const SourceDictionary = "dictionary"

// Dictionary is the first resolution tier: exact lookup of normalized
// words in a CMU-style pronunciation dictionary.
type Dictionary struct {
	entries map[string][]string
}

// NewDictionary creates a dictionary preloaded with the embedded core
// vocabulary.
func NewDictionary() *Dictionary {
	d := &Dictionary{entries: make(map[string][]string)}
	// The embedded vocabulary is a constant string; reading it cannot
	// fail.
	_ = d.parseEntries(strings.NewReader(coreDict))
	return d
}

// LoadFile merges entries from a CMUdict-format file. Lines starting
// with ";;;" are comments; "WORD(2)" marks an alternate pronunciation
// and is skipped in favor of the primary entry.
func (d *Dictionary) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening dictionary %s: %w", path, err)
	}
	defer f.Close()
	if err := d.parseEntries(f); err != nil {
		return fmt.Errorf("reading dictionary %s: %w", path, err)
	}
	return nil
}

func (d *Dictionary) parseEntries(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		word := strings.ToUpper(fields[0])
		if strings.Contains(word, "(") {
			continue
		}
		symbols, dropped := FilterValid(fields[1:])
		if len(symbols) == 0 || len(dropped) > 0 {
			continue
		}
		d.entries[word] = symbols
	}
	return scanner.Err()
}

// Len returns the number of dictionary entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Name implements Tier.
func (d *Dictionary) Name() string { return SourceDictionary }

// Available implements Tier. The dictionary is always available.
func (d *Dictionary) Available() bool { return true }

// Phonemes implements Tier. Returns nil when the word is not listed.
func (d *Dictionary) Phonemes(_ context.Context, word string) ([]string, error) {
	symbols, ok := d.entries[word]
	if !ok {
		return nil, nil
	}
	out := make([]string, len(symbols))
	copy(out, symbols)
	return out, nil
}

// coreDict is a small built-in vocabulary in CMUdict format covering
// common function words and the spoken forms of numbers, so basic
// sentences resolve without an external dictionary file.
const coreDict = `;;; built-in core vocabulary
A AH0
ALL AO1 L
AN AE1 N
AND AH0 N D
ARE AA1 R
AS AE1 Z
AT AE1 T
BE B IY1
BILLION B IH1 L Y AH0 N
BUT B AH1 T
BY B AY1
CAT K AE1 T
DOG D AO1 G
EIGHT EY1 T
EIGHTEEN EY0 T IY1 N
EIGHTY EY1 T IY0
ELEVEN IH0 L EH1 V AH0 N
FIFTEEN F IH0 F T IY1 N
FIFTY F IH1 F T IY0
FIVE F AY1 V
FOR F AO1 R
FORTY F AO1 R T IY0
FOUR F AO1 R
FOURTEEN F AO1 R T IY1 N
FROM F R AH1 M
HAD HH AE1 D
HAS HH AE1 Z
HAT HH AE1 T
HAVE HH AE1 V
HE HH IY1
HELLO HH AH0 L OW1
HER HH ER1
HIS HH IH1 Z
HUNDRED HH AH1 N D R AH0 D
I AY1
IN IH0 N
IS IH1 Z
IT IH1 T
MAT M AE1 T
MILLION M IH1 L Y AH0 N
NINE N AY1 N
NINETEEN N AY1 N T IY1 N
NINETY N AY1 N T IY0
NOT N AA1 T
OF AH1 V
ON AA1 N
ONE W AH1 N
OR AO1 R
SAT S AE1 T
SEVEN S EH1 V AH0 N
SEVENTEEN S EH1 V AH0 N T IY1 N
SEVENTY S EH1 V AH0 N T IY0
SHE SH IY1
SIX S IH1 K S
SIXTEEN S IH0 K S T IY1 N
SIXTY S IH1 K S T IY0
TEN T EH1 N
THAT DH AE1 T
THE DH AH0
THEY DH EY1
THIRTEEN TH ER1 T IY1 N
THIRTY TH ER1 T IY0
THIS DH IH1 S
THOUSAND TH AW1 Z AH0 N D
THREE TH R IY1
TO T UW1
TWELVE T W EH1 L V
TWENTY T W EH1 N T IY0
TWO T UW1
WAS W AA1 Z
WE W IY1
WERE W ER1
WITH W IH1 DH
WORLD W ER1 L D
YOU Y UW1
ZERO Z IY1 R OW0
`
