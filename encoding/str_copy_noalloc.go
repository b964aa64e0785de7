//go:build mpack_noalloc

package encoding

import (
	"github.com/mpackgo/mpack/buf"
	"github.com/mpackgo/mpack/errs"
)

// DecodeStrCopy is unavailable in a no-heap build: producing an owned
// copy of the payload would allocate, so this rejects with
// errs.BorrowRequired instead. Use DecodeStr for a borrowed view.
func DecodeStrCopy(r *buf.Reader) (string, int, error) {
	return "", 0, errs.BorrowRequired{}
}
