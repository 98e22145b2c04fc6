// Command bilingual-eval evaluates bilingual word embeddings on monolingual
// word-similarity benchmarks and on bilingual lexicon induction.
//
// Usage:
//
//	bilingual-eval [flags] [OUTPUT [MAXTEST]]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/sememeval"
	"github.com/hupe1980/sememeval/bilingual"
	"github.com/hupe1980/sememeval/blobstore"
	"github.com/hupe1980/sememeval/internal/storeuri"
	"github.com/hupe1980/sememeval/loader"
	"github.com/hupe1980/sememeval/vectorstore"
)

type cliOptions struct {
	output    string
	data      string
	maxTest   int
	seed      uint64
	dimension int
	logLevel  string
	logFormat string
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("bilingual-eval: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		log.Fatalf("bilingual-eval: %v", err)
	}
}

func parseFlags(args []string) (cliOptions, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("bilingual-eval", flag.ContinueOnError)
	fs.StringVar(&opts.output, "output", "", "Embedding location holding word-vec.zh and word-vec.en")
	fs.StringVar(&opts.data, "data", "", "Evaluation data location (default: OUTPUT/eval_data)")
	fs.IntVar(&opts.maxTest, "max-test", 1000, "Number of dictionary words tested for lexicon induction (0 = all)")
	fs.Uint64Var(&opts.seed, "seed", sememeval.DefaultSeed, "Seed of the dictionary word order")
	fs.IntVar(&opts.dimension, "dim", sememeval.DefaultDimension, "Embedding dimension")
	fs.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.StringVar(&opts.logFormat, "log-format", "text", "Log format: text or json")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [options] [OUTPUT [MAXTEST]]\n\n", filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	args = fs.Args()
	if len(args) > 2 {
		fs.Usage()
		return opts, fmt.Errorf("too many arguments: %d", len(args))
	}
	if len(args) > 0 {
		opts.output = args[0]
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return opts, fmt.Errorf("max-test: %w", err)
		}
		opts.maxTest = n
	}
	if opts.output == "" {
		fs.Usage()
		return opts, errors.New("missing output location")
	}
	if opts.data == "" {
		opts.data = storeuri.Join(opts.output, "eval_data")
	}
	return opts, nil
}

func run(ctx context.Context, opts cliOptions, w io.Writer) error {
	logger, err := sememeval.Config{LogLevel: opts.logLevel, LogFormat: opts.logFormat}.Logger()
	if err != nil {
		return err
	}

	embeddings, err := storeuri.Open(ctx, opts.output)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	data, err := storeuri.Open(ctx, opts.data)
	if err != nil {
		return fmt.Errorf("open data: %w", err)
	}

	readOpts := []sememeval.Option{sememeval.WithLogger(logger)}
	files := sememeval.DefaultFiles()

	var zh, en *vectorstore.Store
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		zh, err = readVectors(gctx, embeddings, files.SourceVectors, opts.dimension, readOpts)
		return err
	})
	g.Go(func() (err error) {
		en, err = readVectors(gctx, embeddings, files.TargetVectors, opts.dimension, readOpts)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	zhResults, err := wordSim(ctx, data, zh, bilingual.SourceWordSim, readOpts)
	if err != nil {
		return err
	}
	enResults, err := wordSim(ctx, data, en, bilingual.TargetWordSim, readOpts)
	if err != nil {
		return err
	}

	var dict *loader.Dictionary
	err = sememeval.ReadInput(ctx, data, bilingual.DictionaryFile, func(r io.Reader, lo []loader.Option) (loader.Stats, error) {
		d, st, err := loader.ReadDictionary(r, lo...)
		dict = d
		return st, err
	}, readOpts...)
	if err != nil {
		return err
	}

	bli, err := bilingual.LexiconInduction(ctx, zh, en, dict,
		bilingual.WithMaxTest(opts.maxTest),
		bilingual.WithSeed(opts.seed),
		bilingual.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Chinese WordSim Results:")
	printWordSim(w, zhResults)
	fmt.Fprintln(w, "English WordSim Results:")
	printWordSim(w, enResults)
	fmt.Fprintln(w, "Bilingual Lexicon Induction Results:")
	fmt.Fprintf(w, "Test Words: %d P@1: %f P@5: %f\n", bli.Tested, bli.P1, bli.P5)
	return nil
}

func readVectors(ctx context.Context, store blobstore.BlobStore, name string, dim int, opts []sememeval.Option) (*vectorstore.Store, error) {
	var vecs *vectorstore.Store
	err := sememeval.ReadInput(ctx, store, name, func(r io.Reader, lo []loader.Option) (loader.Stats, error) {
		s, st, err := loader.ReadVectors(r, dim, nil, lo...)
		vecs = s
		return st, err
	}, opts...)
	return vecs, err
}

func wordSim(ctx context.Context, store blobstore.BlobStore, vecs *vectorstore.Store, names []string, opts []sememeval.Option) ([]bilingual.WordSimResult, error) {
	results := make([]bilingual.WordSimResult, 0, len(names))
	for _, name := range names {
		var pairs []loader.WordPair
		err := sememeval.ReadInput(ctx, store, bilingual.WordSimFile(name), func(r io.Reader, lo []loader.Option) (loader.Stats, error) {
			p, err := loader.ReadWordSim(r, lo...)
			pairs = p
			return loader.Stats{Lines: len(p), Kept: len(p)}, err
		}, opts...)
		if err != nil {
			return nil, err
		}
		res := bilingual.WordSimilarity(vecs, pairs)
		res.Name = name
		results = append(results, res)
	}
	return results, nil
}

func printWordSim(w io.Writer, results []bilingual.WordSimResult) {
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%s: Score: undefined (%v) Skipped Word Pairs: %d\n", r.Name, r.Err, r.Skipped)
			continue
		}
		fmt.Fprintf(w, "%s: Score: %f Skipped Word Pairs: %d\n", r.Name, r.Score, r.Skipped)
	}
}
