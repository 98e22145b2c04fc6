package searcher

import "container/heap"

// Compile time check to ensure resultQueue satisfies the heap interface.
var _ heap.Interface = (*resultQueue)(nil)

// queueItem is a scored candidate.
// ord is the candidate's position in the input sequence and breaks score ties.
type queueItem struct {
	word  string
	score float64
	ord   int
}

// worse reports whether a ranks below b: lower score, or equal score and a
// later input position.
func worse(a, b queueItem) bool {
	if a.score != b.score {
		return a.score < b.score
	}
	return a.ord > b.ord
}

// resultQueue is a bounded heap whose top is the worst retained candidate.
type resultQueue struct {
	items []queueItem
}

func (q *resultQueue) Len() int           { return len(q.items) }
func (q *resultQueue) Less(i, j int) bool { return worse(q.items[i], q.items[j]) }
func (q *resultQueue) Swap(i, j int)      { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *resultQueue) Push(x any) {
	q.items = append(q.items, x.(queueItem))
}

func (q *resultQueue) Pop() any {
	n := len(q.items)
	it := q.items[n-1]
	q.items = q.items[:n-1]
	return it
}

// pushBounded inserts it while keeping at most capacity items.
// When full, it replaces the top only if the top ranks below it.
func (q *resultQueue) pushBounded(it queueItem, capacity int) {
	if len(q.items) < capacity {
		heap.Push(q, it)
		return
	}
	if worse(q.items[0], it) {
		q.items[0] = it
		heap.Fix(q, 0)
	}
}

func (q *resultQueue) reset() {
	clear(q.items)
	q.items = q.items[:0]
}
