package resource

import (
	"context"
	"io"
)

// LimitReader wraps r so that every Read is charged against the controller's
// IO limit. With a nil controller or no limit, r is returned unchanged.
func (c *Controller) LimitReader(ctx context.Context, r io.Reader) io.Reader {
	if c == nil || c.ioLimiter == nil {
		return r
	}
	return &limitedReader{r: r, rc: c, ctx: ctx}
}

type limitedReader struct {
	r   io.Reader
	rc  *Controller
	ctx context.Context
}

// Read charges the bytes actually read, so a short read does not consume
// budget for the whole buffer.
func (r *limitedReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if n > 0 {
		if werr := r.rc.AcquireIO(r.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}
