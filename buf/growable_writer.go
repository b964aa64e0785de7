//go:build !mpack_noalloc

package buf

import "github.com/mpackgo/mpack/internal/pool"

// GrowableWriter is the heap-enabled convenience writer: it grows its
// backing buffer on demand instead of failing with errs.NoCapacity, and
// is backed by a pooled buffer so repeated Marshal calls amortize their
// allocations.
//
// GrowableWriter is not part of the no-heap core codec; it exists for
// callers (the datamodel package's Marshal) who do not know the encoded
// size up front and are willing to allocate for it. It is unavailable
// under the mpack_noalloc build tag.
type GrowableWriter struct {
	bb *pool.ByteBuffer
}

var _ Writer = (*GrowableWriter)(nil)

// NewGrowableWriter returns a GrowableWriter backed by a pooled buffer.
// Call Release when done to return the buffer to the pool.
func NewGrowableWriter() *GrowableWriter {
	return &GrowableWriter{bb: pool.Get()}
}

// Reserve implements Writer; it grows the backing buffer and never fails.
func (w *GrowableWriter) Reserve(n int) error {
	w.bb.Grow(n)
	return nil
}

// Write implements Writer; it never fails.
func (w *GrowableWriter) Write(p []byte) error {
	w.bb.Append(p)
	return nil
}

// WriteString implements Writer; it never fails.
func (w *GrowableWriter) WriteString(s string) error {
	w.bb.AppendString(s)
	return nil
}

// Written implements Writer.
func (w *GrowableWriter) Written() int { return w.bb.Len() }

// Bytes returns the encoded data. The returned slice is only valid until
// Release is called.
func (w *GrowableWriter) Bytes() []byte { return w.bb.Bytes() }

// Release returns the backing buffer to the pool. After calling Release
// the writer must not be used again.
func (w *GrowableWriter) Release() {
	pool.Put(w.bb)
	w.bb = nil
}
