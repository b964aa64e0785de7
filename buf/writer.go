package buf

import (
	"github.com/mpackgo/mpack/errs"
)

// Writer is the byte-sink capability encoders write through.
//
// Every typed encoder calls Reserve exactly once with the total size of
// the value it is about to write (tag + payload), before issuing any
// Write/WriteString calls for that value. Reserve is the all-or-nothing
// check: if it fails, nothing has been written, and the encoder is done.
// Once Reserve has succeeded the subsequent Write/WriteString calls for
// that same value cannot fail on capacity, which is what keeps a
// multi-call encode (header, then a separately-sourced payload) from
// ever leaving a torn write in the buffer.
type Writer interface {
	// Reserve verifies that at least n more bytes can be written without
	// writing anything itself. It fails with errs.NoCapacity, leaving the
	// writer untouched, if fewer than n bytes remain.
	Reserve(n int) error
	// Write appends p. Only call after a successful Reserve that covers
	// p's length.
	Write(p []byte) error
	// WriteString appends s without requiring the caller to convert it
	// to []byte first (Go's copy(dst []byte, src string) does not
	// allocate, unlike a []byte(s) conversion). Only call after a
	// successful Reserve that covers len(s).
	WriteString(s string) error
	// Written reports the cumulative number of bytes successfully
	// written so far.
	Written() int
}

// SliceWriter writes into a caller-owned, fixed-capacity buffer. It never
// allocates; once the buffer is full, Reserve fails with errs.NoCapacity.
type SliceWriter struct {
	buf []byte
	pos int
}

var _ Writer = (*SliceWriter)(nil)

// NewSliceWriter wraps buf for encoding. The returned Writer's capacity
// is len(buf); encoded bytes land at buf[0:Written()].
func NewSliceWriter(buf []byte) *SliceWriter {
	return &SliceWriter{buf: buf}
}

// Reserve implements Writer.
func (w *SliceWriter) Reserve(n int) error {
	remaining := len(w.buf) - w.pos
	if remaining < n {
		return errs.NoCapacity{Required: n, Remaining: remaining}
	}

	return nil
}

// Write implements Writer.
func (w *SliceWriter) Write(p []byte) error {
	if err := w.Reserve(len(p)); err != nil {
		return err
	}
	copy(w.buf[w.pos:], p)
	w.pos += len(p)

	return nil
}

// WriteString implements Writer.
func (w *SliceWriter) WriteString(s string) error {
	if err := w.Reserve(len(s)); err != nil {
		return err
	}
	copy(w.buf[w.pos:], s)
	w.pos += len(s)

	return nil
}

// Written implements Writer.
func (w *SliceWriter) Written() int { return w.pos }

// Bytes returns the written prefix of the underlying buffer.
func (w *SliceWriter) Bytes() []byte { return w.buf[:w.pos] }
