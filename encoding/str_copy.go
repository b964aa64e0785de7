//go:build !mpack_noalloc

package encoding

import "github.com/mpackgo/mpack/buf"

// DecodeStrCopy behaves like DecodeStr but returns an owned copy that
// remains valid after the reader's buffer is reused or discarded.
// Unavailable under the mpack_noalloc build tag.
func DecodeStrCopy(r *buf.Reader) (string, int, error) {
	s, n, err := DecodeStr(r)
	if err != nil {
		return "", 0, err
	}

	return string([]byte(s)), n, nil
}
