//go:build mpack_hostio && !mpack_noalloc

package hostio

import (
	"io"

	"github.com/mpackgo/mpack/buf"
	"github.com/mpackgo/mpack/errs"
	"github.com/mpackgo/mpack/internal/pool"
)

// FromReader drains src into a pooled buffer and returns a *buf.Reader
// over it. This is the one place in the module that cannot operate on a
// caller-owned slice: a blocking stream's length isn't known up front.
func FromReader(src io.Reader) (*buf.Reader, error) {
	bb := pool.Get()

	chunk := make([]byte, 32*1024)
	for {
		n, err := src.Read(chunk)
		if n > 0 {
			bb.Append(chunk[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			pool.Put(bb)
			return nil, errs.HostIO{Err: err}
		}
	}

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())
	pool.Put(bb)

	return buf.NewReader(out), nil
}
