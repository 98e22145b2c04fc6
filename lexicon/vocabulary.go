package lexicon

import (
	"errors"
	"fmt"

	"github.com/hupe1980/sememeval/internal/conv"
)

// ErrEmptyLabel is returned for vocabulary entries without a target or source side.
var ErrEmptyLabel = errors.New("empty label")

// Pair is one bilingual vocabulary entry.
type Pair struct {
	Target string
	Source string
}

// Label returns the canonical label string "target|source".
//
// Both language versions of the lexical resource annotate words with the
// canonical form, which is what makes labels comparable across languages.
func (p Pair) Label() string {
	return p.Target + "|" + p.Source
}

// Vocabulary is the fixed set of permissible labels.
type Vocabulary struct {
	pairs []Pair
	ids   map[string]uint32
}

// NewVocabulary returns an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{
		ids: make(map[string]uint32),
	}
}

// Add registers a bilingual pair and returns the ID of its canonical label.
// Adding an existing pair returns the existing ID.
func (v *Vocabulary) Add(target, source string) (uint32, error) {
	if target == "" || source == "" {
		return 0, fmt.Errorf("%w: %q|%q", ErrEmptyLabel, target, source)
	}
	p := Pair{Target: target, Source: source}
	label := p.Label()
	if id, ok := v.ids[label]; ok {
		return id, nil
	}
	id, err := conv.IntToUint32(len(v.pairs))
	if err != nil {
		return 0, err
	}
	v.pairs = append(v.pairs, p)
	v.ids[label] = id
	return id, nil
}

// Contains reports whether label is a canonical vocabulary label.
func (v *Vocabulary) Contains(label string) bool {
	_, ok := v.ids[label]
	return ok
}

// Len returns the number of labels.
func (v *Vocabulary) Len() int { return len(v.pairs) }
