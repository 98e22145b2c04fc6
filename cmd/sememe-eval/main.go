// Command sememe-eval predicts HowNet sememes for target-language words from
// bilingual word embeddings and reports mAP and mean F1.
//
// Usage:
//
//	sememe-eval [flags] [OUTPUT [DATA [TESTNUM [MODE]]]]
//
// OUTPUT holds the embeddings (word-vec.zh, word-vec.en, vocab.en) and
// receives the results; DATA holds the sememe vocabulary and both HowNet
// lexicons. Both may be local directories or s3:// and minio:// locations.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/hupe1980/sememeval"
	"github.com/hupe1980/sememeval/codec"
	"github.com/hupe1980/sememeval/internal/storeuri"
	"github.com/hupe1980/sememeval/report"
)

type cliOptions struct {
	configPath string
	cfg        sememeval.Config
	set        map[string]bool
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("sememe-eval: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		log.Fatalf("sememe-eval: %v", err)
	}
}

func parseFlags(args []string) (cliOptions, error) {
	var (
		opts cliOptions
		c    = &opts.cfg
		fs   = flag.NewFlagSet("sememe-eval", flag.ContinueOnError)
	)
	fs.StringVar(&opts.configPath, "config", "", "Path to a JSON config file")
	fs.StringVar(&c.Output, "output", "", "Embedding location, also receives the results")
	fs.StringVar(&c.Data, "data", "", "Evaluation data location (sememe vocabulary and HowNet lexicons)")
	fs.IntVar(&c.TestNum, "test-num", 0, "Number of target words to evaluate (0 = all)")
	fs.IntVar(&c.Mode, "mode", 0, "Output mode: 0 none, 1 table, 2 table with neighbours and scores")
	fs.IntVar(&c.K, "k", sememeval.DefaultK, "Nearest source words per target word")
	fs.Float64Var(&c.Decay, "decay", sememeval.DefaultDecay, "Rank decay coefficient in (0,1)")
	fs.Float64Var(&c.Threshold, "threshold", sememeval.DefaultThreshold, "Score a sememe must exceed to be selected")
	fs.Uint64Var(&c.Seed, "seed", sememeval.DefaultSeed, "Seed of the word sample")
	fs.IntVar(&c.Workers, "workers", 1, "Concurrent word evaluations")
	fs.IntVar(&c.Dimension, "dim", sememeval.DefaultDimension, "Embedding dimension")
	fs.IntVar(&c.CheckpointEvery, "checkpoint-every", sememeval.DefaultCheckpointEvery, "Words between progress checkpoints")
	fs.BoolVar(&c.HostStats, "host-stats", false, "Include host CPU and memory usage in checkpoints")
	fs.BoolVar(&c.NFKC, "nfkc", false, "Apply Unicode NFKC normalization to words and labels")
	fs.StringVar(&c.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.StringVar(&c.LogFormat, "log-format", "text", "Log format: text or json")
	fs.StringVar(&c.Files.Vocabulary, "vocabulary-file", "", "Sememe vocabulary file name")
	fs.StringVar(&c.Files.SourceLexicon, "source-lexicon-file", "", "Source-language HowNet file name")
	fs.StringVar(&c.Files.TargetLexicon, "target-lexicon-file", "", "Target-language HowNet file name")
	fs.StringVar(&c.Files.SourceVectors, "source-vectors-file", "", "Source-language embedding file name")
	fs.StringVar(&c.Files.TargetVectors, "target-vectors-file", "", "Target-language embedding file name")
	fs.StringVar(&c.Files.Frequencies, "frequency-file", "", "Target-language word frequency file name")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [options] [OUTPUT [DATA [TESTNUM [MODE]]]]\n\n", filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	if err := applyPositional(&opts, fs.Args()); err != nil {
		fs.Usage()
		return opts, err
	}
	return opts, nil
}

func applyPositional(opts *cliOptions, args []string) error {
	if len(args) > 4 {
		return fmt.Errorf("too many arguments: %d", len(args))
	}
	names := []string{"output", "data", "test-num", "mode"}
	for i, arg := range args {
		name := names[i]
		switch name {
		case "output":
			opts.cfg.Output = arg
		case "data":
			opts.cfg.Data = arg
		case "test-num", "mode":
			n, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if name == "mode" {
				opts.cfg.Mode = n
			} else {
				opts.cfg.TestNum = n
			}
		}
		opts.set[name] = true
	}
	return nil
}

// resolveConfig layers explicitly set flags over the config file.
func resolveConfig(opts cliOptions) (sememeval.Config, error) {
	cfg, err := sememeval.LoadConfig(opts.configPath)
	if err != nil {
		return cfg, err
	}
	f := opts.cfg
	override := map[string]func(){
		"output":              func() { cfg.Output = f.Output },
		"data":                func() { cfg.Data = f.Data },
		"test-num":            func() { cfg.TestNum = f.TestNum },
		"mode":                func() { cfg.Mode = f.Mode },
		"k":                   func() { cfg.K = f.K },
		"decay":               func() { cfg.Decay = f.Decay },
		"threshold":           func() { cfg.Threshold = f.Threshold },
		"seed":                func() { cfg.Seed = f.Seed },
		"workers":             func() { cfg.Workers = f.Workers; cfg.Resource.MaxWorkers = int64(f.Workers) },
		"dim":                 func() { cfg.Dimension = f.Dimension },
		"checkpoint-every":    func() { cfg.CheckpointEvery = f.CheckpointEvery },
		"host-stats":          func() { cfg.HostStats = f.HostStats },
		"nfkc":                func() { cfg.NFKC = f.NFKC },
		"log-level":           func() { cfg.LogLevel = f.LogLevel },
		"log-format":          func() { cfg.LogFormat = f.LogFormat },
		"vocabulary-file":     func() { cfg.Files.Vocabulary = f.Files.Vocabulary },
		"source-lexicon-file": func() { cfg.Files.SourceLexicon = f.Files.SourceLexicon },
		"target-lexicon-file": func() { cfg.Files.TargetLexicon = f.Files.TargetLexicon },
		"source-vectors-file": func() { cfg.Files.SourceVectors = f.Files.SourceVectors },
		"target-vectors-file": func() { cfg.Files.TargetVectors = f.Files.TargetVectors },
		"frequency-file":      func() { cfg.Files.Frequencies = f.Files.Frequencies },
	}
	for name := range opts.set {
		if fn, ok := override[name]; ok {
			fn()
		}
	}
	cfg.ApplyDefaults()

	if cfg.Output == "" {
		return cfg, errors.New("missing output location")
	}
	if cfg.Data == "" {
		cfg.Data = storeuri.Join(cfg.Output, "eval_data")
	}
	if cfg.Mode < 0 || cfg.Mode > int(report.ModeVerbose) {
		return cfg, fmt.Errorf("invalid mode %d", cfg.Mode)
	}
	return cfg, nil
}

func run(ctx context.Context, opts cliOptions) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}
	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	c, ok := codec.ByName(cfg.Codec)
	if !ok {
		return fmt.Errorf("unknown codec %q", cfg.Codec)
	}

	output, err := storeuri.Open(ctx, cfg.Output)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	data, err := storeuri.Open(ctx, cfg.Data)
	if err != nil {
		return fmt.Errorf("open data: %w", err)
	}

	metrics := report.NewPrometheusCollector()
	evalOpts := append(cfg.Options(),
		sememeval.WithLogger(logger),
		sememeval.WithMetricsCollector(metrics),
	)

	ds, err := sememeval.LoadDataset(ctx, output, data, cfg.Files, evalOpts...)
	if err != nil {
		return err
	}

	ev, err := sememeval.New(ds, evalOpts...)
	if err != nil {
		return err
	}
	res, err := ev.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Sememe Prediction Complete")
	fmt.Printf("mAP: %f\n", res.Summary.MAP)
	fmt.Printf("mean F1: %f\n", res.Summary.MeanF1)
	if res.Summary.Degenerate > 0 {
		fmt.Printf("words without a correct sememe: %d\n", res.Summary.Degenerate)
	}
	if res.Summary.Failed > 0 {
		fmt.Printf("words that failed to evaluate: %d\n", res.Summary.Failed)
	}

	return writeOutputs(ctx, output, cfg, c, res, metrics)
}

func writeOutputs(ctx context.Context, out storeuri.Store, cfg sememeval.Config, c codec.Codec, res *sememeval.Result, metrics *report.PrometheusCollector) error {
	if mode := report.Mode(cfg.Mode); mode > report.ModeNone {
		var buf bytes.Buffer
		if err := report.WriteTSV(&buf, res.Records, mode); err != nil {
			return err
		}
		if err := out.Put(ctx, report.ResultsFile, buf.Bytes()); err != nil {
			return fmt.Errorf("write %s: %w", report.ResultsFile, err)
		}
	}

	var buf bytes.Buffer
	if err := report.WriteSummary(&buf, &res.Summary, c); err != nil {
		return err
	}
	if err := out.Put(ctx, report.SummaryFile, buf.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", report.SummaryFile, err)
	}

	prom, err := metrics.MetricsBytes()
	if err != nil {
		return err
	}
	if err := out.Put(ctx, report.MetricsFile, prom); err != nil {
		return fmt.Errorf("write %s: %w", report.MetricsFile, err)
	}
	return nil
}
