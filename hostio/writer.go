//go:build mpack_hostio && !mpack_noalloc

package hostio

import (
	"io"

	"github.com/mpackgo/mpack/buf"
	"github.com/mpackgo/mpack/errs"
)

// Writer wraps a buf.GrowableWriter and flushes its accumulated bytes to
// a host io.Writer on Flush.
type Writer struct {
	gw  *buf.GrowableWriter
	dst io.Writer
}

var _ buf.Writer = (*Writer)(nil)

// ToWriter returns a Writer that buffers encoded values in memory and
// writes them to dst on Flush.
func ToWriter(dst io.Writer) *Writer {
	return &Writer{gw: buf.NewGrowableWriter(), dst: dst}
}

func (w *Writer) Reserve(n int) error        { return w.gw.Reserve(n) }
func (w *Writer) Write(p []byte) error       { return w.gw.Write(p) }
func (w *Writer) WriteString(s string) error { return w.gw.WriteString(s) }
func (w *Writer) Written() int               { return w.gw.Written() }

// Flush writes everything buffered so far to the host stream and resets
// the internal buffer for the next value.
func (w *Writer) Flush() error {
	if _, err := w.dst.Write(w.gw.Bytes()); err != nil {
		return errs.HostIO{Err: err}
	}

	w.gw.Release()
	w.gw = buf.NewGrowableWriter()

	return nil
}
