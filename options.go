package sememeval

import (
	"log/slog"

	"github.com/hupe1980/sememeval/resource"
)

const (
	// DefaultK is the number of nearest source words per target word.
	DefaultK = 100
	// DefaultDecay is the rank decay coefficient c.
	DefaultDecay = 0.8
	// DefaultThreshold is the score a sememe must exceed to be selected.
	DefaultThreshold = 0.5
	// DefaultCheckpointEvery is the number of words between progress checkpoints.
	DefaultCheckpointEvery = 100
	// DefaultDimension is the embedding dimension of the input files.
	DefaultDimension = 200
	// DefaultSeed seeds the word sampling permutation.
	DefaultSeed uint64 = 4711
)

type options struct {
	k               int
	decay           float64
	threshold       float64
	testNum         int
	seed            uint64
	workers         int
	checkpointEvery int
	onCheckpoint    CheckpointFunc
	hostStats       bool
	dimension       int
	nfkc            bool
	controller      *resource.Controller
	metrics         MetricsCollector
	logger          *Logger
}

// Option configures an Evaluator.
type Option func(*options)

// WithK sets the number of nearest source words used per target word.
func WithK(k int) Option {
	return func(o *options) {
		o.k = k
	}
}

// WithDecay sets the rank decay coefficient c, which must lie in (0, 1).
func WithDecay(c float64) Option {
	return func(o *options) {
		o.decay = c
	}
}

// WithThreshold sets the selection threshold. Sememes scoring strictly above
// it are selected; if none does, the best-scoring sememe is selected alone.
func WithThreshold(t float64) Option {
	return func(o *options) {
		o.threshold = t
	}
}

// WithTestNum limits a run to the first n words of the sampled permutation.
// n <= 0 evaluates every target word.
func WithTestNum(n int) Option {
	return func(o *options) {
		o.testNum = n
	}
}

// WithSeed sets the seed of the word sampling permutation.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithWorkers evaluates up to n words concurrently. Records keep the sampled
// order regardless of n.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithResourceController bounds concurrency through rc instead of a private
// worker limit. The controller's worker count wins over WithWorkers.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithCheckpoint reports progress every n words through fn.
// fn may be nil to only log checkpoints.
func WithCheckpoint(n int, fn CheckpointFunc) Option {
	return func(o *options) {
		o.checkpointEvery = n
		o.onCheckpoint = fn
	}
}

// WithHostStats attaches host CPU and memory usage to checkpoints.
func WithHostStats(enabled bool) Option {
	return func(o *options) {
		o.hostStats = enabled
	}
}

// WithDimension sets the embedding dimension LoadDataset expects.
// Lines with a different number of components are skipped.
func WithDimension(dim int) Option {
	return func(o *options) {
		o.dimension = dim
	}
}

// WithNFKC makes LoadDataset apply Unicode NFKC normalization to words and
// sememes.
func WithNFKC() Option {
	return func(o *options) {
		o.nfkc = true
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &sememeval.BasicMetricsCollector{}
//	ev, _ := sememeval.New(ds, sememeval.WithMetricsCollector(metrics))
//	_, _ = ev.Run(ctx)
//	fmt.Println(metrics.GetStats().SearchAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metrics = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		k:               DefaultK,
		decay:           DefaultDecay,
		threshold:       DefaultThreshold,
		seed:            DefaultSeed,
		workers:         1,
		checkpointEvery: DefaultCheckpointEvery,
		dimension:       DefaultDimension,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metrics == nil {
		o.metrics = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.controller != nil {
		o.workers = o.controller.Workers()
	}
	if o.workers < 1 {
		o.workers = 1
	}
	return o
}
