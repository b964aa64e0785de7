//go:build mpack_hostio && !mpack_noalloc

// Package hostio adapts mpack's caller-owned-slice buf.Reader/buf.Writer
// to blocking io.Reader/io.Writer streams.
//
// This is gated behind the mpack_hostio build tag because it is the one
// place in the module that cannot avoid allocating: a blocking stream's
// length is not known up front, so FromReader must read it into a pooled
// buffer rather than operate on a caller-owned slice. The no-heap build
// never imports this package.
package hostio
