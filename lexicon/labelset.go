package lexicon

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// LabelSet is an immutable set of vocabulary labels.
//
// Membership is answered by a Roaring bitmap over label IDs; the labels are
// also kept in first-seen order so iteration is deterministic.
type LabelSet struct {
	vocab  *Vocabulary
	rb     *roaring.Bitmap
	labels []string
}

// NewSet builds a set from labels, keeping only vocabulary members and
// dropping duplicates.
func (v *Vocabulary) NewSet(labels []string) *LabelSet {
	s := &LabelSet{vocab: v, rb: roaring.New()}
	for _, l := range labels {
		id, ok := v.ids[l]
		if !ok {
			continue
		}
		if s.rb.CheckedAdd(id) {
			s.labels = append(s.labels, l)
		}
	}
	return s
}

// Contains reports whether label is in the set.
func (s *LabelSet) Contains(label string) bool {
	if s == nil {
		return false
	}
	id, ok := s.vocab.ids[label]
	if !ok {
		return false
	}
	return s.rb.Contains(id)
}

// Len returns the number of labels.
func (s *LabelSet) Len() int {
	if s == nil {
		return 0
	}
	return int(s.rb.GetCardinality())
}

// IsEmpty reports whether the set has no labels.
func (s *LabelSet) IsEmpty() bool {
	return s.Len() == 0
}

// Labels returns the labels in first-seen order.
func (s *LabelSet) Labels() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.labels)
}
