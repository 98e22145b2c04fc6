package bilingual

import (
	"github.com/hupe1980/sememeval/distance"
	"github.com/hupe1980/sememeval/loader"
	"github.com/hupe1980/sememeval/metric"
)

// Vectors looks up the unit vector of a word.
// *vectorstore.Store satisfies it.
type Vectors interface {
	Vector(word string) ([]float32, bool)
}

// WordSimResult is the outcome of one word-similarity benchmark.
type WordSimResult struct {
	Name    string  `json:"name,omitempty"`
	Score   float64 `json:"score"`
	Tested  int     `json:"tested"`
	Skipped int     `json:"skipped"`

	// Err is metric.ErrUndefined when fewer than two pairs could be tested
	// or either series is constant. Score is 0 then.
	Err error `json:"-"`
}

// WordSimilarity returns the Pearson correlation between the human scores of
// pairs and the cosine similarity of their vectors. Pairs with a word missing
// from vecs are skipped.
func WordSimilarity(vecs Vectors, pairs []loader.WordPair) WordSimResult {
	var res WordSimResult
	human := make([]float64, 0, len(pairs))
	model := make([]float64, 0, len(pairs))

	for _, p := range pairs {
		v1, ok1 := vecs.Vector(p.Word1)
		v2, ok2 := vecs.Vector(p.Word2)
		if !ok1 || !ok2 {
			res.Skipped++
			continue
		}
		human = append(human, p.Score)
		model = append(model, float64(distance.Dot(v1, v2)))
		res.Tested++
	}

	res.Score, res.Err = metric.Pearson(human, model)
	return res
}
