package sememeval

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/sememeval/metric"
	"github.com/hupe1980/sememeval/resource"
	"github.com/hupe1980/sememeval/scoring"
	"github.com/hupe1980/sememeval/searcher"
)

// Evaluator predicts sememes for target words and scores the predictions.
// It is safe for concurrent use once constructed.
type Evaluator struct {
	ds     *Dataset
	scorer *scoring.Scorer
	opts   options
}

// New creates an evaluator over ds.
func New(ds *Dataset, optFns ...Option) (*Evaluator, error) {
	if ds == nil || ds.Source == nil || ds.Target == nil || ds.SourceLexicon == nil || ds.TargetLexicon == nil {
		return nil, ErrEmptyDataset
	}
	o := applyOptions(optFns)
	if o.k <= 0 {
		return nil, ErrInvalidK
	}
	scorer, err := scoring.NewScorer(o.decay)
	if err != nil {
		return nil, err
	}
	return &Evaluator{ds: ds, scorer: scorer, opts: o}, nil
}

// Params returns the parameters the evaluator runs with.
func (e *Evaluator) Params() Params {
	return Params{
		K:         e.opts.k,
		Decay:     e.opts.decay,
		Threshold: e.opts.threshold,
		TestNum:   e.opts.testNum,
		Seed:      e.opts.seed,
		Workers:   e.opts.workers,
	}
}

// Words returns the words a Run evaluates, in evaluation order.
func (e *Evaluator) Words() []string {
	return Sample(e.ds.Target.Words(), e.opts.testNum, e.opts.seed)
}

// Evaluate predicts and scores the sememes of one target word.
func (e *Evaluator) Evaluate(ctx context.Context, word string) (Record, error) {
	start := time.Now()
	rec, err := e.evaluate(ctx, word)
	e.opts.metrics.RecordEvaluate(&rec, time.Since(start), err)
	return rec, err
}

func (e *Evaluator) evaluate(ctx context.Context, word string) (Record, error) {
	rec := Record{Word: word}
	if err := ctx.Err(); err != nil {
		return rec, err
	}

	query, ok := e.ds.Target.Vector(word)
	gold, hasGold := e.ds.TargetLexicon.Set(word)
	if !ok || !hasGold {
		return rec, fmt.Errorf("%w: %q", ErrUnknownWord, word)
	}
	rec.Frequency, rec.HasFrequency = e.ds.Frequency(word)
	rec.Gold = gold.Labels()

	searchStart := time.Now()
	rec.Neighbors = searcher.Rank(query, e.ds.Source, e.opts.k)
	e.opts.metrics.RecordSearch(e.opts.k, e.ds.Source.Len(), time.Since(searchStart))

	rec.Scores = e.scorer.Score(rec.Neighbors, e.ds.SourceLexicon)
	rec.Selected = scoring.Labels(scoring.Select(rec.Scores, e.opts.threshold))

	ap, err := metric.AveragePrecision(gold, scoring.Labels(rec.Scores))
	switch {
	case errors.Is(err, metric.ErrNoHit):
		rec.Degenerate = true
	case err != nil:
		return rec, err
	}
	rec.AP = ap

	// Selection always yields a label unless the ranking is empty, in which
	// case the word is degenerate already and F1 stays 0.
	f1, err := metric.F1(gold, rec.Selected)
	if err != nil && !errors.Is(err, metric.ErrEmptySet) {
		return rec, err
	}
	rec.F1 = f1

	return rec, nil
}

// Run evaluates the sampled words and aggregates mAP and mean F1.
//
// A word that fails to evaluate is logged, counted in Summary.Failed and left
// out of the means; degenerate words count as 0. Only cancellation of ctx
// stops the run, which is checked between words.
func (e *Evaluator) Run(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()
	logger := e.opts.logger.WithRunID(runID).WithK(e.opts.k)
	words := e.Words()
	start := time.Now()

	logger.InfoContext(ctx, "sememe prediction started",
		"words", len(words),
		"source_words", e.ds.Source.Len(),
		"workers", e.opts.workers,
	)

	progress := &progress{
		every:     e.opts.checkpointEvery,
		total:     len(words),
		start:     start,
		fn:        e.opts.onCheckpoint,
		hostStats: e.opts.hostStats,
		logger:    logger,
	}

	records := make([]Record, len(words))
	ok := make([]bool, len(words))
	var err error
	if e.opts.workers <= 1 {
		err = e.runSequential(ctx, words, records, ok, logger, progress)
	} else {
		err = e.runParallel(ctx, words, records, ok, logger, progress)
	}
	if err != nil {
		return nil, err
	}

	evaluated := records[:0]
	for i := range records {
		if ok[i] {
			evaluated = append(evaluated, records[i])
		}
	}

	res := &Result{
		Summary: summarize(evaluated),
		Records: evaluated,
	}
	res.Summary.Failed = len(words) - len(evaluated)
	res.Summary.RunID = runID
	res.Summary.SourceWords = e.ds.Source.Len()
	res.Summary.TargetWords = e.ds.Target.Len()
	res.Summary.StartedAt = start
	res.Summary.Elapsed = time.Since(start)
	res.Summary.Params = e.Params()

	logger.LogSummary(ctx, &res.Summary)
	return res, nil
}

// runWord evaluates one word of a run. It reports false for a word that failed
// and returns an error only when ctx is done.
func (e *Evaluator) runWord(ctx context.Context, word string, logger *Logger) (Record, bool, error) {
	rec, err := e.Evaluate(ctx, word)
	if err != nil {
		if cerr := ctx.Err(); cerr != nil {
			return rec, false, cerr
		}
		logger.LogEvaluate(ctx, &rec, err)
		return rec, false, nil
	}
	logger.LogEvaluate(ctx, &rec, nil)
	return rec, true, nil
}

func (e *Evaluator) runSequential(ctx context.Context, words []string, records []Record, ok []bool, logger *Logger, p *progress) error {
	for i, w := range words {
		rec, good, err := e.runWord(ctx, w, logger)
		if err != nil {
			return err
		}
		records[i], ok[i] = rec, good
		p.step(ctx)
	}
	return nil
}

func (e *Evaluator) runParallel(ctx context.Context, words []string, records []Record, ok []bool, logger *Logger, p *progress) error {
	rc := e.opts.controller
	if rc == nil {
		rc = resource.NewController(resource.Config{MaxWorkers: int64(e.opts.workers)})
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, w := range words {
		if err := rc.AcquireWorker(gctx); err != nil {
			break
		}
		g.Go(func() error {
			defer rc.ReleaseWorker()
			rec, good, err := e.runWord(gctx, w, logger)
			if err != nil {
				return err
			}
			records[i], ok[i] = rec, good
			p.step(gctx)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func summarize(records []Record) Summary {
	aps := make([]float64, len(records))
	f1s := make([]float64, len(records))
	degenerate := 0
	for i, r := range records {
		aps[i] = r.AP
		f1s[i] = r.F1
		if r.Degenerate {
			degenerate++
		}
	}
	return Summary{
		Words:      len(records),
		MAP:        metric.Mean(aps),
		MeanF1:     metric.Mean(f1s),
		Degenerate: degenerate,
	}
}

type progress struct {
	mu        sync.Mutex
	done      int
	every     int
	total     int
	start     time.Time
	fn        CheckpointFunc
	hostStats bool
	logger    *Logger
}

func (p *progress) step(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.done++
	if p.every <= 0 || p.done%p.every != 0 {
		return
	}

	cp := Checkpoint{
		Done:    p.done,
		Total:   p.total,
		Elapsed: time.Since(p.start),
	}
	if p.hostStats {
		cp.Host = readHostStats(ctx)
	}
	p.logger.LogCheckpoint(ctx, cp)
	if p.fn != nil {
		p.fn(cp)
	}
}
