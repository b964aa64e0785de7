//go:build mpack_noalloc

package mpack

import "github.com/mpackgo/mpack/errs"

// Marshal is unavailable in a no-heap build: encoding always needs a
// freshly allocated destination slice. Drive package encoding directly
// against a caller-owned buf.Writer instead.
func Marshal(v any, opts ...ConfigOption) ([]byte, error) {
	return nil, errs.BorrowRequired{}
}
