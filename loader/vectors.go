package loader

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/sememeval/vectorstore"
)

// ReadVectors parses a text embedding file into a store of unit vectors.
//
// A line is kept when it has exactly dim+1 fields, all components parse, the
// vector has a non-zero norm and keep (if non-nil) accepts the word. Anything
// else is skipped, including word2vec-style header lines. For duplicate
// words the last vector wins and the word keeps its first position.
func ReadVectors(r io.Reader, dim int, keep func(word string) bool, optFns ...Option) (*vectorstore.Store, Stats, error) {
	o := applyOptions(optFns)

	store, err := vectorstore.New(dim)
	if err != nil {
		return nil, Stats{}, err
	}

	var st Stats
	vec := make([]float32, dim)

	lines, err := scanLines(r, o, func(_ int, line string) error {
		fields := strings.Fields(line)
		if len(fields) != dim+1 {
			st.Malformed++
			return nil
		}
		word := o.normalize(fields[0])
		if keep != nil && !keep(word) {
			st.Filtered++
			return nil
		}
		for i, f := range fields[1:] {
			x, perr := strconv.ParseFloat(f, 32)
			if perr != nil {
				st.Malformed++
				return nil
			}
			vec[i] = float32(x)
		}

		dup := store.Contains(word)
		switch aerr := store.Add(word, vec); {
		case aerr == nil && dup:
			st.Duplicates++
		case aerr == nil:
			st.Kept++
		case errors.Is(aerr, vectorstore.ErrZeroNorm):
			st.ZeroNorm++
		default:
			return aerr
		}
		return nil
	})
	st.Lines = lines
	if err != nil {
		return nil, st, err
	}
	return store, st, nil
}
