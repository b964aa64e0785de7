//go:build !mpack_noalloc

package mpack

import "github.com/mpackgo/mpack/datamodel"

// Marshal encodes v into a freshly allocated byte slice. Unavailable
// under mpack_noalloc; see Unmarshal's doc comment.
func Marshal(v any, opts ...ConfigOption) ([]byte, error) {
	return datamodel.Marshal(v, opts...)
}
