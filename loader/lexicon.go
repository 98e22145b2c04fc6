package loader

import (
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/sememeval/lexicon"
)

// ReadVocabulary parses <target>|<source> lines into a label vocabulary.
// A line without exactly one separator is an error.
func ReadVocabulary(r io.Reader, optFns ...Option) (*lexicon.Vocabulary, Stats, error) {
	o := applyOptions(optFns)
	vocab := lexicon.NewVocabulary()

	var st Stats
	lines, err := scanLines(r, o, func(n int, line string) error {
		target, source, ok := strings.Cut(line, "|")
		if !ok || strings.Contains(source, "|") {
			return malformed(n, line, "want <target>|<source>")
		}
		if _, err := vocab.Add(o.normalize(target), o.normalize(source)); err != nil {
			return &ParseError{Line: n, Text: line, Err: err}
		}
		st.Kept++
		return nil
	})
	st.Lines = lines
	if err != nil {
		return nil, st, fmt.Errorf("vocabulary: %w", err)
	}
	return vocab, st, nil
}

// ReadLexicon parses a lexical resource into an index over vocab.
//
// Each line is <word>\t<senses>, senses separated by ';' and each sense a
// brace-wrapped, comma-separated label list. Labels are the canonical
// vocabulary strings; labels outside the vocabulary are dropped and words
// left without labels are not indexed. Lines without a tab are skipped. A
// word listed on several lines keeps the labels of its last line that has
// any vocabulary label.
func ReadLexicon(r io.Reader, vocab *lexicon.Vocabulary, optFns ...Option) (*lexicon.Index, Stats, error) {
	o := applyOptions(optFns)
	idx := lexicon.NewIndex(vocab)

	var st Stats
	var labels []string
	lines, err := scanLines(r, o, func(_ int, line string) error {
		word, senses, ok := strings.Cut(line, "\t")
		if !ok {
			st.Malformed++
			return nil
		}
		labels = labels[:0]
		for _, sense := range strings.Split(senses, ";") {
			for _, label := range strings.Split(strings.Trim(sense, "{}"), ",") {
				labels = append(labels, o.normalize(label))
			}
		}
		if idx.Add(o.normalize(word), labels) {
			st.Kept++
		} else {
			st.Filtered++
		}
		return nil
	})
	st.Lines = lines
	if err != nil {
		return nil, st, fmt.Errorf("lexicon: %w", err)
	}
	return idx, st, nil
}
