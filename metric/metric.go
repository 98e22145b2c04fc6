// Package metric implements the evaluation metrics for sememe prediction and
// bilingual embedding evaluation.
package metric

import (
	"errors"
	"math"
)

var (
	// ErrNoHit is returned by AveragePrecision when no prediction is in the
	// gold set. The accompanying value is 0.
	ErrNoHit = errors.New("no predicted label is in the gold set")

	// ErrEmptySet is returned by F1 when the gold or the selected set is empty.
	// The accompanying value is 0.
	ErrEmptySet = errors.New("empty gold or selected set")

	// ErrUndefined is returned when a statistic is undefined for its input.
	ErrUndefined = errors.New("statistic is undefined")
)

// GoldSet is the set of correct labels for one word.
// *lexicon.LabelSet and StringSet satisfy it.
type GoldSet interface {
	Contains(label string) bool
	Len() int
}

// StringSet is a GoldSet backed by a map.
type StringSet map[string]struct{}

// NewStringSet builds a StringSet from labels.
func NewStringSet(labels ...string) StringSet {
	s := make(StringSet, len(labels))
	for _, l := range labels {
		s[l] = struct{}{}
	}
	return s
}

// Contains implements GoldSet.
func (s StringSet) Contains(label string) bool {
	_, ok := s[label]
	return ok
}

// Len implements GoldSet.
func (s StringSet) Len() int { return len(s) }

// AveragePrecision scores a ranked prediction list against gold.
//
// Walking predicted in rank order (1-based position i), every prediction in
// gold increments hit and adds hit/i to a running sum; the result is
// sum/hit. When nothing hits, it returns 0 and ErrNoHit so callers can flag
// the word as degenerate.
func AveragePrecision(gold GoldSet, predicted []string) (float64, error) {
	var sum float64
	hit := 0
	for i, label := range predicted {
		if gold.Contains(label) {
			hit++
			sum += float64(hit) / float64(i+1)
		}
	}
	if hit == 0 {
		return 0, ErrNoHit
	}
	return sum / float64(hit), nil
}

// F1 scores a selected label set against gold.
//
// TP = |gold ∩ selected|, FP = |selected| - TP, FN = |gold| - TP.
// The precision and recall terms follow the reference evaluation, which
// names them the other way round from the usual convention:
//
//	precision = TP / (TP + FN)
//	recall    = TP / (TP + FP)
//
// The harmonic mean is symmetric, so the F1 value is unaffected. Each
// denominator is guarded: an empty gold or selected set returns 0 and
// ErrEmptySet, and precision+recall == 0 returns 0 without error.
// Duplicate selections are counted once.
func F1(gold GoldSet, selected []string) (float64, error) {
	seen := make(map[string]struct{}, len(selected))
	tp := 0
	for _, label := range selected {
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		if gold.Contains(label) {
			tp++
		}
	}
	return F1Counts(tp, len(seen), gold.Len())
}

// F1Counts computes F1 from the true-positive count and the set sizes.
func F1Counts(tp, selected, gold int) (float64, error) {
	fp := selected - tp
	fn := gold - tp
	if tp+fn <= 0 || tp+fp <= 0 {
		return 0, ErrEmptySet
	}
	precision := float64(tp) / float64(tp+fn)
	recall := float64(tp) / float64(tp+fp)
	if precision+recall == 0 {
		return 0, nil
	}
	return 2 * precision * recall / (precision + recall), nil
}

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Pearson returns the Pearson correlation coefficient of x and y.
// It returns ErrUndefined for fewer than two pairs, mismatched lengths or a
// constant series.
func Pearson(x, y []float64) (float64, error) {
	if len(x) != len(y) || len(x) < 2 {
		return 0, ErrUndefined
	}
	mx, my := Mean(x), Mean(y)
	var sxy, sxx, syy float64
	for i := range x {
		dx := x[i] - mx
		dy := y[i] - my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return 0, ErrUndefined
	}
	r := sxy / math.Sqrt(sxx*syy)
	// Guard rounding drift outside [-1, 1].
	return math.Max(-1, math.Min(1, r)), nil
}

// HitAtK reports whether any of the first k predictions is in gold.
// For k == 1 this is exact-first-match precision.
func HitAtK(gold GoldSet, predicted []string, k int) bool {
	for i, p := range predicted {
		if i >= k {
			break
		}
		if gold.Contains(p) {
			return true
		}
	}
	return false
}
