// Package searcher ranks candidate words by cosine similarity to a query vector.
package searcher

import (
	"container/heap"
	"iter"
	"sync"

	"github.com/hupe1980/sememeval/distance"
)

// Neighbor is a ranked candidate word and its similarity to the query.
type Neighbor struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// Candidates is a sequence of unit vectors in a stable order.
// *vectorstore.Store satisfies it.
type Candidates interface {
	All() iter.Seq2[string, []float32]
}

var queuePool = sync.Pool{
	New: func() any {
		return &resultQueue{items: make([]queueItem, 0, 128)}
	},
}

// Rank returns the k candidates most similar to query, best first.
//
// The score is the dot product of query and candidate, which equals cosine
// similarity because both sides are unit vectors. Equal scores keep the
// candidates' input order, so the result equals a stable descending sort
// truncated to k. Fewer than k candidates yields all of them; k <= 0 yields
// an empty list. Rank does not modify its inputs.
func Rank(query []float32, candidates Candidates, k int) []Neighbor {
	if k <= 0 || candidates == nil {
		return []Neighbor{}
	}

	q := queuePool.Get().(*resultQueue)
	defer func() {
		q.reset()
		queuePool.Put(q)
	}()

	ord := 0
	for word, vec := range candidates.All() {
		q.pushBounded(queueItem{
			word:  word,
			score: float64(distance.Dot(query, vec)),
			ord:   ord,
		}, k)
		ord++
	}

	out := make([]Neighbor, q.Len())
	for i := len(out) - 1; i >= 0; i-- {
		it := heap.Pop(q).(queueItem)
		out[i] = Neighbor{Word: it.word, Score: it.score}
	}
	return out
}
