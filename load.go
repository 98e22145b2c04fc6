package sememeval

import (
	"context"
	"errors"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/sememeval/blobstore"
	"github.com/hupe1980/sememeval/lexicon"
	"github.com/hupe1980/sememeval/loader"
	"github.com/hupe1980/sememeval/resource"
	"github.com/hupe1980/sememeval/vectorstore"
)

const loadProgressEvery = 100_000

// Files names the inputs of a sememe prediction run.
//
// Vocabulary and the lexicons are read from the evaluation-data store;
// vectors and frequencies from the embedding store.
type Files struct {
	Vocabulary    string `json:"vocabulary"`
	SourceLexicon string `json:"source_lexicon"`
	TargetLexicon string `json:"target_lexicon"`
	SourceVectors string `json:"source_vectors"`
	TargetVectors string `json:"target_vectors"`
	Frequencies   string `json:"frequencies"`
}

// DefaultFiles returns the file names of the Chinese-to-English HowNet setup:
// Chinese words vote, English words are evaluated.
func DefaultFiles() Files {
	return Files{
		Vocabulary:    "sememe_1400_EnZh.txt",
		SourceLexicon: "HowNet_chinese_version.txt",
		TargetLexicon: "HowNet_english_version.txt",
		SourceVectors: "word-vec.zh",
		TargetVectors: "word-vec.en",
		Frequencies:   "vocab.en",
	}
}

// ApplyDefaults fills empty names from DefaultFiles.
func (f *Files) ApplyDefaults() {
	d := DefaultFiles()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&f.Vocabulary, d.Vocabulary)
	fill(&f.SourceLexicon, d.SourceLexicon)
	fill(&f.TargetLexicon, d.TargetLexicon)
	fill(&f.SourceVectors, d.SourceVectors)
	fill(&f.TargetVectors, d.TargetVectors)
	fill(&f.Frequencies, d.Frequencies)
}

// LoadDataset reads all inputs and builds a Dataset. Independent files are
// read concurrently. A missing frequency file is tolerated; any other failure
// aborts with a *LoadError.
//
// Relevant options: WithDimension, WithNFKC, WithResourceController,
// WithLogger and WithMetricsCollector.
func LoadDataset(ctx context.Context, embeddings, evalData blobstore.BlobStore, files Files, optFns ...Option) (*Dataset, error) {
	o := applyOptions(optFns)
	l := &datasetLoader{opts: o}

	var vocab *lexicon.Vocabulary
	err := l.read(ctx, evalData, files.Vocabulary, func(r io.Reader, lo []loader.Option) (loader.Stats, error) {
		v, st, err := loader.ReadVocabulary(r, lo...)
		vocab = v
		return st, err
	})
	if err != nil {
		return nil, err
	}

	var sourceLex, targetLex *lexicon.Index
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return l.read(gctx, evalData, files.SourceLexicon, func(r io.Reader, lo []loader.Option) (loader.Stats, error) {
			idx, st, err := loader.ReadLexicon(r, vocab, lo...)
			sourceLex = idx
			return st, err
		})
	})
	g.Go(func() error {
		return l.read(gctx, evalData, files.TargetLexicon, func(r io.Reader, lo []loader.Option) (loader.Stats, error) {
			idx, st, err := loader.ReadLexicon(r, vocab, lo...)
			targetLex = idx
			return st, err
		})
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var (
		source, target *vectorstore.Store
		freqs          map[string]int64
	)
	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		return l.read(gctx, embeddings, files.SourceVectors, func(r io.Reader, lo []loader.Option) (loader.Stats, error) {
			s, st, err := loader.ReadVectors(r, o.dimension, sourceLex.Contains, lo...)
			source = s
			return st, err
		})
	})
	g.Go(func() error {
		return l.read(gctx, embeddings, files.TargetVectors, func(r io.Reader, lo []loader.Option) (loader.Stats, error) {
			s, st, err := loader.ReadVectors(r, o.dimension, targetLex.Contains, lo...)
			target = s
			return st, err
		})
	})
	if files.Frequencies != "" {
		g.Go(func() error {
			err := l.read(gctx, embeddings, files.Frequencies, func(r io.Reader, lo []loader.Option) (loader.Stats, error) {
				f, st, err := loader.ReadFrequencies(r, targetLex.Contains, lo...)
				freqs = f
				return st, err
			})
			if errors.Is(err, blobstore.ErrNotFound) {
				o.logger.WarnContext(gctx, "frequency file not found, frequencies left empty", "file", files.Frequencies)
				return nil
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewDataset(source, target, sourceLex, targetLex, freqs)
}

type datasetLoader struct {
	opts options
}

// ParseFunc parses one decompressed input stream with the given loader
// options and reports what it read.
type ParseFunc func(r io.Reader, lo []loader.Option) (loader.Stats, error)

// ReadInput reads one named input from store the way LoadDataset does: a
// missing name falls back to its .zst or .lz4 variant, and reading honors
// the resource controller, logger and metrics collector of optFns. Failures
// are returned as *LoadError.
func ReadInput(ctx context.Context, store blobstore.BlobStore, name string, parse ParseFunc, optFns ...Option) error {
	l := &datasetLoader{opts: applyOptions(optFns)}
	return l.read(ctx, store, name, parse)
}

// read opens name (or its .zst / .lz4 variant), streams it through the IO
// limiter and the matching decompressor and hands it to parse.
func (l *datasetLoader) read(ctx context.Context, store blobstore.BlobStore, name string, parse ParseFunc) (err error) {
	start := time.Now()
	var st loader.Stats
	defer func() {
		elapsed := time.Since(start)
		l.opts.metrics.RecordLoad(name, st.Kept, elapsed, err)
		l.opts.logger.LogLoad(ctx, name, st.Lines, st.Kept, elapsed, err)
		if err != nil {
			err = &LoadError{Name: name, Err: err}
		}
	}()

	blob, resolved, err := openInput(ctx, store, name)
	if err != nil {
		return err
	}
	defer blob.Close()

	rc := l.opts.controller
	reserved := reservation(rc, blob.Size())
	if err := rc.AcquireMemory(ctx, reserved); err != nil {
		return err
	}
	defer rc.ReleaseMemory(reserved)

	r, err := blobstore.NewReader(ctx, blob)
	if err != nil {
		return err
	}
	defer r.Close()

	dec, err := loader.Decompress(resolved, rc.LimitReader(ctx, r))
	if err != nil {
		return err
	}
	defer dec.Close()

	lo := []loader.Option{
		loader.WithProgress(loadProgressEvery, func(n int) {
			l.opts.logger.DebugContext(ctx, "reading", "file", name, "lines", n)
		}),
	}
	if l.opts.nfkc {
		lo = append(lo, loader.WithNFKC())
	}

	st, err = parse(dec, lo)
	return err
}

// reservation is the memory a load holds while parsing: the blob size,
// capped at the controller limit so oversized files still make progress.
func reservation(rc *resource.Controller, size int64) int64 {
	if limit := rc.MemoryLimit(); limit > 0 && size > limit {
		return limit
	}
	return size
}

func openInput(ctx context.Context, store blobstore.BlobStore, name string) (blobstore.Blob, string, error) {
	blob, err := store.Open(ctx, name)
	if err == nil || !errors.Is(err, blobstore.ErrNotFound) {
		return blob, name, err
	}
	for _, ext := range []string{".zst", ".lz4"} {
		if b, cerr := store.Open(ctx, name+ext); cerr == nil {
			return b, name + ext, nil
		}
	}
	return nil, name, err
}
