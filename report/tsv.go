package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/sememeval"
)

// Mode selects how much WriteTSV writes.
type Mode int

const (
	// ModeNone writes nothing.
	ModeNone Mode = iota
	// ModeTable writes one row per word.
	ModeTable
	// ModeVerbose adds the nearest source words and the ranked sememe scores
	// below each row.
	ModeVerbose
)

// ResultsFile is the file name of the result table.
const ResultsFile = "SememePreResults.txt"

// Header is the first line of the result table.
const Header = "Word\tFrequency\tAP\tF1"

// WriteTSV writes records as a tab-separated table. A word without a known
// frequency gets an empty frequency column.
func WriteTSV(w io.Writer, records []sememeval.Record, mode Mode) error {
	if mode <= ModeNone {
		return nil
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(Header)
	bw.WriteByte('\n')

	for i := range records {
		r := &records[i]

		freq := ""
		if r.HasFrequency {
			freq = strconv.FormatInt(r.Frequency, 10)
		}
		fmt.Fprintf(bw, "%s\t%s\t%s\t%s\n", r.Word, freq, formatFloat(r.AP), formatFloat(r.F1))

		if mode >= ModeVerbose {
			writeVerbose(bw, r)
		}
	}
	return bw.Flush()
}

func writeVerbose(bw *bufio.Writer, r *sememeval.Record) {
	bw.WriteString("\tNearest Source Words:")
	for _, n := range r.Neighbors {
		fmt.Fprintf(bw, " %s:%.6f", n.Word, n.Score)
	}
	bw.WriteByte('\n')

	bw.WriteString("\tSememes and Scores:")
	for _, s := range r.Scores {
		fmt.Fprintf(bw, " %s:%.6f", s.Label, s.Score)
	}
	bw.WriteByte('\n')

	if r.Degenerate {
		fmt.Fprintf(bw, "\tDegenerate: no predicted sememe is in the gold set %s\n", strings.Join(r.Gold, " "))
	}
}

// formatFloat prints the shortest representation that round-trips, always
// with a decimal point or exponent.
func formatFloat(x float64) string {
	s := strconv.FormatFloat(x, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
