package report

import (
	"io"

	"github.com/hupe1980/sememeval"
	"github.com/hupe1980/sememeval/codec"
)

// SummaryFile is the file name of the JSON run summary.
const SummaryFile = "summary.json"

type indenter interface {
	MarshalIndent(v any) ([]byte, error)
}

// WriteSummary encodes s with c, indented when c supports it. A nil c uses
// codec.Default.
func WriteSummary(w io.Writer, s *sememeval.Summary, c codec.Codec) error {
	if c == nil {
		c = codec.Default
	}

	var (
		data []byte
		err  error
	)
	if ic, ok := c.(indenter); ok {
		data, err = ic.MarshalIndent(s)
	} else {
		data, err = c.Marshal(s)
	}
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
