package lexicon

import "slices"

// Index maps words to their label sets, restricted to a vocabulary.
//
// Thread safety: concurrent reads are safe; writes require external synchronization.
type Index struct {
	vocab *Vocabulary
	sets  map[string]*LabelSet
	words []string
}

// NewIndex returns an empty index over vocab.
func NewIndex(vocab *Vocabulary) *Index {
	return &Index{
		vocab: vocab,
		sets:  make(map[string]*LabelSet),
	}
}

// Vocabulary returns the label vocabulary of the index.
func (x *Index) Vocabulary() *Vocabulary { return x.vocab }

// Add indexes word with the vocabulary members of labels.
// It reports false, and indexes nothing, when no label survives filtering.
// Adding a word again replaces its label set; the word keeps its first
// position in Words.
func (x *Index) Add(word string, labels []string) bool {
	set := x.vocab.NewSet(labels)
	if set.IsEmpty() {
		return false
	}
	_, seen := x.sets[word]
	x.sets[word] = set
	if seen {
		return true
	}
	x.words = append(x.words, word)
	return true
}

// Set returns the label set of word.
func (x *Index) Set(word string) (*LabelSet, bool) {
	s, ok := x.sets[word]
	return s, ok
}

// Labels returns the labels of word in first-seen order.
// The slice is shared and must not be modified.
func (x *Index) Labels(word string) []string {
	s, ok := x.sets[word]
	if !ok {
		return nil
	}
	return s.labels
}

// Contains reports whether word has a non-empty label set.
func (x *Index) Contains(word string) bool {
	_, ok := x.sets[word]
	return ok
}

// Words returns the indexed words in insertion order.
func (x *Index) Words() []string { return slices.Clone(x.words) }

// Len returns the number of indexed words.
func (x *Index) Len() int { return len(x.words) }
