package loader

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WordPair is one human-annotated similarity judgement.
type WordPair struct {
	Word1 string
	Word2 string
	Score float64
}

// ReadWordSim parses <word1> <word2> <score> lines. Any other shape is an error.
func ReadWordSim(r io.Reader, optFns ...Option) ([]WordPair, error) {
	o := applyOptions(optFns)

	var pairs []WordPair
	_, err := scanLines(r, o, func(n int, line string) error {
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return malformed(n, line, "want 3 fields, got %d", len(fields))
		}
		score, perr := strconv.ParseFloat(fields[2], 64)
		if perr != nil {
			return &ParseError{Line: n, Text: line, Err: perr}
		}
		pairs = append(pairs, WordPair{
			Word1: o.normalize(fields[0]),
			Word2: o.normalize(fields[1]),
			Score: score,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("word-sim: %w", err)
	}
	return pairs, nil
}

// DictEntry is one head word and its gold translations.
type DictEntry struct {
	Word         string
	Translations []string
}

// Dictionary is a bilingual dictionary in file order.
type Dictionary struct {
	entries []DictEntry
	index   map[string]int
}

// Len returns the number of head words.
func (d *Dictionary) Len() int { return len(d.entries) }

// Entries returns the entries in first-seen order.
func (d *Dictionary) Entries() []DictEntry { return d.entries }

// Translations returns the gold translations of word.
func (d *Dictionary) Translations(word string) ([]string, bool) {
	i, ok := d.index[word]
	if !ok {
		return nil, false
	}
	return d.entries[i].Translations, true
}

// ReadDictionary parses <word>\t<t1>/<t2>/... lines. Head words are lower-cased;
// a repeated head word keeps its first position and its last translations.
// Lines without a tab are skipped.
func ReadDictionary(r io.Reader, optFns ...Option) (*Dictionary, Stats, error) {
	o := applyOptions(optFns)
	d := &Dictionary{index: make(map[string]int)}

	var st Stats
	lines, err := scanLines(r, o, func(_ int, line string) error {
		word, rest, ok := strings.Cut(line, "\t")
		if !ok {
			st.Malformed++
			return nil
		}
		word = strings.ToLower(o.normalize(word))
		translations := strings.Split(rest, "/")
		for i, t := range translations {
			translations[i] = o.normalize(t)
		}

		if i, dup := d.index[word]; dup {
			d.entries[i].Translations = translations
			st.Duplicates++
			return nil
		}
		d.index[word] = len(d.entries)
		d.entries = append(d.entries, DictEntry{Word: word, Translations: translations})
		st.Kept++
		return nil
	})
	st.Lines = lines
	if err != nil {
		return nil, st, fmt.Errorf("dictionary: %w", err)
	}
	return d, st, nil
}
