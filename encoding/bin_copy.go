//go:build !mpack_noalloc

package encoding

import "github.com/mpackgo/mpack/buf"

// DecodeBinCopy behaves like DecodeBin but returns an owned copy.
// Unavailable under the mpack_noalloc build tag.
func DecodeBinCopy(r *buf.Reader) ([]byte, int, error) {
	b, n, err := DecodeBin(r)
	if err != nil {
		return nil, 0, err
	}

	cp := make([]byte, len(b))
	copy(cp, b)

	return cp, n, nil
}
