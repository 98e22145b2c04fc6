package loader

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadFrequencies parses <word> <count> lines, keeping the words accepted by
// keep (all words when keep is nil). Lines that are not a word and an integer
// are skipped.
func ReadFrequencies(r io.Reader, keep func(word string) bool, optFns ...Option) (map[string]int64, Stats, error) {
	o := applyOptions(optFns)
	freqs := make(map[string]int64)

	var st Stats
	lines, err := scanLines(r, o, func(_ int, line string) error {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			st.Malformed++
			return nil
		}
		word := o.normalize(fields[0])
		if keep != nil && !keep(word) {
			st.Filtered++
			return nil
		}
		n, perr := strconv.ParseInt(fields[1], 10, 64)
		if perr != nil {
			st.Malformed++
			return nil
		}
		if _, dup := freqs[word]; dup {
			st.Duplicates++
		}
		freqs[word] = n
		st.Kept++
		return nil
	})
	st.Lines = lines
	if err != nil {
		return nil, st, fmt.Errorf("frequencies: %w", err)
	}
	return freqs, st, nil
}
