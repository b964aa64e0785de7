//go:build mpack_noalloc

package encoding

import (
	"github.com/mpackgo/mpack/buf"
	"github.com/mpackgo/mpack/errs"
)

// DecodeBinCopy is unavailable in a no-heap build: producing an owned
// copy of the payload would allocate, so this rejects with
// errs.BorrowRequired instead. Use DecodeBin for a borrowed view.
func DecodeBinCopy(r *buf.Reader) ([]byte, int, error) {
	return nil, 0, errs.BorrowRequired{}
}
