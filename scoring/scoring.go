// Package scoring aggregates the labels of ranked neighbours into label
// scores and selects the predicted label subset.
//
// Each neighbour at rank r (1-based) contributes similarity * c^r to every
// label it carries. Scores are accumulated in a map local to one call, so a
// Scorer can be shared by concurrent evaluations.
package scoring

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/hupe1980/sememeval/searcher"
)

// ErrInvalidDecay is returned when the decay coefficient is outside (0, 1).
var ErrInvalidDecay = errors.New("decay coefficient must be in (0, 1)")

// LabelScore is a label and its accumulated score.
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// LabelSource resolves the labels of a neighbour word.
// *lexicon.Index satisfies it.
type LabelSource interface {
	Labels(word string) []string
}

// Scorer computes rank-decayed label scores.
type Scorer struct {
	decay float64
}

// NewScorer returns a Scorer with decay coefficient c.
func NewScorer(c float64) (*Scorer, error) {
	if !(c > 0 && c < 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDecay, c)
	}
	return &Scorer{decay: c}, nil
}

// Decay returns the decay coefficient.
func (s *Scorer) Decay() float64 { return s.decay }

// Score aggregates the labels of neighbors and returns them sorted by
// descending score. Equal scores are ordered by label.
//
// Neighbours without labels in source contribute nothing but still consume
// their rank.
func (s *Scorer) Score(neighbors []searcher.Neighbor, source LabelSource) []LabelScore {
	scores := make(map[string]float64)
	w := 1.0
	for _, n := range neighbors {
		w *= s.decay
		contrib := n.Score * w
		for _, label := range source.Labels(n.Word) {
			scores[label] += contrib
		}
	}

	out := make([]LabelScore, 0, len(scores))
	for label, score := range scores {
		out = append(out, LabelScore{Label: label, Score: score})
	}
	slices.SortFunc(out, compareScores)
	return out
}

func compareScores(a, b LabelScore) int {
	switch {
	case a.Score > b.Score:
		return -1
	case a.Score < b.Score:
		return 1
	}
	return strings.Compare(a.Label, b.Label)
}

// Select returns the labels scoring strictly above threshold.
// If none does, the single top-scoring label is returned so every
// non-empty prediction selects at least one label.
// scores must be sorted as returned by Score.
func Select(scores []LabelScore, threshold float64) []LabelScore {
	var out []LabelScore
	for _, ls := range scores {
		if ls.Score > threshold {
			out = append(out, ls)
		}
	}
	if len(out) == 0 && len(scores) > 0 {
		out = append(out, scores[0])
	}
	return out
}

// Labels projects scores to their labels, preserving order.
func Labels(scores []LabelScore) []string {
	out := make([]string, len(scores))
	for i, ls := range scores {
		out[i] = ls.Label
	}
	return out
}
