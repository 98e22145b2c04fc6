// Package vectorstore holds L2-normalized word embeddings for one vocabulary.
//
// Vectors are stored contiguously in a single []float32 slice in insertion
// order, so iteration order is deterministic and sequential scans stay cache
// friendly. The nearest-neighbour ranker relies on that order to break ties.
//
// Thread safety: concurrent reads are safe; writes require external synchronization.
package vectorstore

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/hupe1980/sememeval/distance"
)

var (
	// ErrWrongDimension is returned when a vector doesn't match the store dimension.
	ErrWrongDimension = errors.New("wrong vector dimension")

	// ErrZeroNorm is returned for vectors without a direction.
	ErrZeroNorm = errors.New("vector has zero norm")
)

// Store maps words to unit vectors of a fixed dimension.
type Store struct {
	dim   int
	data  []float32 // vectors[i] = data[i*dim : (i+1)*dim]
	words []string
	index map[string]int
}

// New creates an empty store with the given dimension.
func New(dim int) (*Store, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("invalid dimension: %d", dim)
	}
	return &Store{
		dim:   dim,
		index: make(map[string]int),
	}, nil
}

// Dimension returns the vector dimension.
func (s *Store) Dimension() int { return s.dim }

// Len returns the number of stored words.
func (s *Store) Len() int { return len(s.words) }

// Add normalizes vec and stores it under word.
// Adding a stored word replaces its vector and keeps its position.
// vec is copied; the caller keeps ownership.
func (s *Store) Add(word string, vec []float32) error {
	if len(vec) != s.dim {
		return fmt.Errorf("%w: expected %d, got %d", ErrWrongDimension, s.dim, len(vec))
	}
	unit, ok := distance.NormalizeL2Copy(vec)
	if !ok {
		return fmt.Errorf("%w: %q", ErrZeroNorm, word)
	}
	if i, ok := s.index[word]; ok {
		copy(s.at(i), unit)
		return nil
	}
	s.index[word] = len(s.words)
	s.words = append(s.words, word)
	s.data = append(s.data, unit...)
	return nil
}

// Vector returns the unit vector for word.
// The returned slice aliases internal memory and must not be modified.
func (s *Store) Vector(word string) ([]float32, bool) {
	i, ok := s.index[word]
	if !ok {
		return nil, false
	}
	return s.at(i), true
}

// Contains reports whether word is stored.
func (s *Store) Contains(word string) bool {
	_, ok := s.index[word]
	return ok
}

// Words returns a copy of the stored words in insertion order.
func (s *Store) Words() []string {
	return slices.Clone(s.words)
}

// All iterates words and vectors in insertion order.
func (s *Store) All() iter.Seq2[string, []float32] {
	return func(yield func(string, []float32) bool) {
		for i, w := range s.words {
			if !yield(w, s.at(i)) {
				return
			}
		}
	}
}

// Filter returns a new store containing the words for which keep returns true,
// in their original order.
func (s *Store) Filter(keep func(word string) bool) *Store {
	out := &Store{
		dim:   s.dim,
		index: make(map[string]int),
	}
	for i, w := range s.words {
		if !keep(w) {
			continue
		}
		out.index[w] = len(out.words)
		out.words = append(out.words, w)
		out.data = append(out.data, s.at(i)...)
	}
	return out
}

func (s *Store) at(i int) []float32 {
	return s.data[i*s.dim : (i+1)*s.dim : (i+1)*s.dim]
}
