package sememeval

import (
	"github.com/hupe1980/sememeval/lexicon"
	"github.com/hupe1980/sememeval/vectorstore"
)

// Dataset holds everything a sememe prediction run reads.
//
// Source is the language whose words vote with their sememes; Target is the
// language whose words are evaluated.
type Dataset struct {
	Source        *vectorstore.Store
	Target        *vectorstore.Store
	SourceLexicon *lexicon.Index
	TargetLexicon *lexicon.Index
	// Frequencies of target words. May be nil.
	Frequencies map[string]int64
}

// NewDataset restricts both stores to words with gold labels and checks that
// both sides can be compared.
func NewDataset(source, target *vectorstore.Store, sourceLex, targetLex *lexicon.Index, freqs map[string]int64) (*Dataset, error) {
	if source.Dimension() != target.Dimension() {
		return nil, &ErrDimensionMismatch{Source: source.Dimension(), Target: target.Dimension()}
	}

	ds := &Dataset{
		Source:        restrict(source, sourceLex),
		Target:        restrict(target, targetLex),
		SourceLexicon: sourceLex,
		TargetLexicon: targetLex,
		Frequencies:   freqs,
	}
	if ds.Source.Len() == 0 || ds.Target.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	return ds, nil
}

func restrict(s *vectorstore.Store, lex *lexicon.Index) *vectorstore.Store {
	for w := range s.All() {
		if !lex.Contains(w) {
			return s.Filter(lex.Contains)
		}
	}
	return s
}

// Frequency returns the frequency of a target word.
func (ds *Dataset) Frequency(word string) (int64, bool) {
	f, ok := ds.Frequencies[word]
	return f, ok
}
