package loader

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const maxLineBytes = 16 << 20

// Stats counts what a reader did with its input lines.
type Stats struct {
	Lines      int `json:"lines"`
	Kept       int `json:"kept"`
	Malformed  int `json:"malformed,omitempty"`
	Filtered   int `json:"filtered,omitempty"`
	ZeroNorm   int `json:"zero_norm,omitempty"`
	Duplicates int `json:"duplicates,omitempty"`
}

// Skipped returns the number of lines that were read but not kept.
func (s Stats) Skipped() int { return s.Lines - s.Kept }

type options struct {
	normalize     func(string) string
	progressEvery int
	progress      func(lines int)
}

// Option configures a reader.
type Option func(*options)

// WithNFKC applies Unicode NFKC normalization to every word and label.
// Off by default, which keeps inputs byte-for-byte.
func WithNFKC() Option {
	return func(o *options) { o.normalize = norm.NFKC.String }
}

// WithProgress calls fn every n lines.
func WithProgress(n int, fn func(lines int)) Option {
	return func(o *options) {
		o.progressEvery = n
		o.progress = fn
	}
}

func applyOptions(optFns []Option) options {
	o := options{normalize: func(s string) string { return s }}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// scanLines calls fn with the 1-based number and the trimmed text of every
// line. Blank lines are counted but not passed on.
func scanLines(r io.Reader, o options, fn func(n int, line string) error) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	n := 0
	for sc.Scan() {
		n++
		if o.progress != nil && o.progressEvery > 0 && n%o.progressEvery == 0 {
			o.progress(n)
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := fn(n, line); err != nil {
			return n, err
		}
	}
	return n, sc.Err()
}
