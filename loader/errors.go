package loader

import (
	"errors"
	"fmt"
)

// ErrMalformed is wrapped by every *ParseError.
var ErrMalformed = errors.New("malformed line")

// ParseError reports a line that could not be parsed.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func malformed(line int, text, format string, args ...any) *ParseError {
	return &ParseError{
		Line: line,
		Text: text,
		Err:  fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...)),
	}
}
