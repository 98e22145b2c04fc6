package bilingual

import (
	"context"
	"time"

	"github.com/hupe1980/sememeval"
	"github.com/hupe1980/sememeval/loader"
	"github.com/hupe1980/sememeval/metric"
	"github.com/hupe1980/sememeval/searcher"
)

const (
	// DefaultInductionK is the number of translations retrieved per word.
	DefaultInductionK = 5
	// DefaultProgressEvery is the number of words between progress logs.
	DefaultProgressEvery = 200
)

// Store is a vector store that can be both queried and scanned.
type Store interface {
	Vectors
	searcher.Candidates
}

// InductionResult is the outcome of a lexicon induction run.
type InductionResult struct {
	Tested int     `json:"tested"`
	P1     float64 `json:"p1"`
	P5     float64 `json:"p5"`

	Words []string `json:"-"`
	Hit1  []bool   `json:"-"`
	Hit5  []bool   `json:"-"`
}

type inductionOptions struct {
	maxTest       int
	seed          uint64
	progressEvery int
	logger        *sememeval.Logger
}

// InductionOption configures LexiconInduction.
type InductionOption func(*inductionOptions)

// WithMaxTest limits the number of tested words. n <= 0 tests every
// dictionary word that has a query vector.
func WithMaxTest(n int) InductionOption {
	return func(o *inductionOptions) { o.maxTest = n }
}

// WithSeed sets the seed of the word order.
func WithSeed(seed uint64) InductionOption {
	return func(o *inductionOptions) { o.seed = seed }
}

// WithProgressEvery sets the number of words between progress logs.
func WithProgressEvery(n int) InductionOption {
	return func(o *inductionOptions) { o.progressEvery = n }
}

// WithLogger sets the logger.
func WithLogger(l *sememeval.Logger) InductionOption {
	return func(o *inductionOptions) { o.logger = l }
}

// LexiconInduction translates dictionary headwords from the query side into
// the answer side. Words are visited in a seeded random order; words without
// a query vector are passed over and do not count toward maxTest.
//
// A word scores a hit at 1 when its nearest answer word is one of its
// dictionary translations, and a hit at 5 when any of the five nearest is.
// Translations missing from the answer store are not filtered out, so they
// lower the achievable precision.
func LexiconInduction(ctx context.Context, answers, queries Store, dict *loader.Dictionary, optFns ...InductionOption) (*InductionResult, error) {
	o := inductionOptions{
		seed:          sememeval.DefaultSeed,
		progressEvery: DefaultProgressEvery,
	}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.logger == nil {
		o.logger = sememeval.NoopLogger()
	}

	words := make([]string, 0, dict.Len())
	for _, e := range dict.Entries() {
		words = append(words, e.Word)
	}

	res := &InductionResult{}
	var p1, p5 []float64
	start := time.Now()

	for _, word := range sememeval.Sample(words, 0, o.seed) {
		if o.maxTest > 0 && res.Tested >= o.maxTest {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		query, ok := queries.Vector(word)
		if !ok {
			continue
		}
		translations, _ := dict.Translations(word)
		gold := metric.NewStringSet(translations...)

		neighbors := searcher.Rank(query, answers, DefaultInductionK)
		predicted := make([]string, len(neighbors))
		for i, n := range neighbors {
			predicted[i] = n.Word
		}

		hit1 := metric.HitAtK(gold, predicted, 1)
		hit5 := metric.HitAtK(gold, predicted, DefaultInductionK)
		res.Words = append(res.Words, word)
		res.Hit1 = append(res.Hit1, hit1)
		res.Hit5 = append(res.Hit5, hit5)
		p1 = append(p1, indicator(hit1))
		p5 = append(p5, indicator(hit5))
		res.Tested++

		if o.progressEvery > 0 && res.Tested%o.progressEvery == 0 {
			o.logger.InfoContext(ctx, "lexicon induction progress",
				"tested", res.Tested,
				"p1", metric.Mean(p1),
				"p5", metric.Mean(p5),
				"elapsed", time.Since(start),
			)
			start = time.Now()
		}
	}

	res.P1 = metric.Mean(p1)
	res.P5 = metric.Mean(p5)
	return res, nil
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
