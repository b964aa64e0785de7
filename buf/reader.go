// Package buf provides the IO abstractions the codec decodes from and
// encodes into: a slice-backed Reader with exact reads and single-byte
// peek, and a Writer capability surface with two implementations, a
// fixed-capacity SliceWriter and a pooled, growable convenience writer.
//
// Both surfaces are synchronous and report failure as a typed error
// rather than a panic -- see the errs package. The Reader and the
// SliceWriter allocate nothing on their own successful paths; the
// growable writer allocates as its pooled buffer grows.
package buf

import "github.com/mpackgo/mpack/errs"

// Reader is a slice-backed byte source. Position advances monotonically
// and never exceeds the length of the underlying buffer.
//
// Reader is NOT safe for concurrent use by multiple goroutines; distinct
// Readers over disjoint buffers are independent.
type Reader struct {
	data []byte
	pos  int
}

// NewReader wraps data for sequential decoding. The returned Reader
// borrows data; the caller must keep it alive and unmodified for as long
// as any value decoded from it (a Str or Bin view) is in use.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the current read position.
func (r *Reader) Pos() int { return r.pos }

// Len returns the number of unread bytes remaining.
func (r *Reader) Len() int { return len(r.data) - r.pos }

// Rest exposes the trailing unread slice, for callers that want a
// (value, remainder) style API instead of driving the Reader directly.
func (r *Reader) Rest() []byte { return r.data[r.pos:] }

// SeekTo resets the read position. It exists for the decoder's own
// rewind-on-failure bookkeeping (§4.8) and is not meant to be called by
// adapter code outside this module.
func (r *Reader) SeekTo(pos int) { r.pos = pos }

// Read returns the next n bytes without copying and advances the
// position by n. On insufficient input it returns errs.NeedMore and
// leaves the position unchanged -- a partial read never happens.
func (r *Reader) Read(n int) ([]byte, error) {
	if n < 0 {
		return nil, errs.NeedMore{Missing: 0}
	}
	if r.Len() < n {
		return nil, errs.NeedMore{Missing: n - r.Len()}
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

// PeekTag returns the next byte without advancing the position.
func (r *Reader) PeekTag() (byte, error) {
	if r.Len() < 1 {
		return 0, errs.NeedMore{Missing: 1}
	}

	return r.data[r.pos], nil
}
