//go:build mpack_hostio && !mpack_noalloc

package hostio

import (
	"bytes"
	"testing"

	"github.com/mpackgo/mpack/encoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromReader_DrainsWholeStream(t *testing.T) {
	src := bytes.NewReader([]byte{0xc3, 0xc2, 0xc0})

	r, err := FromReader(src)
	require.NoError(t, err)

	v, _, err := encoding.DecodeBool(r)
	require.NoError(t, err)
	assert.True(t, v)
}

func TestToWriter_FlushWritesToStream(t *testing.T) {
	var dst bytes.Buffer
	w := ToWriter(&dst)

	_, err := encoding.EncodeBool(w, true)
	require.NoError(t, err)
	require.NoError(t, w.Flush())

	assert.Equal(t, []byte{0xc3}, dst.Bytes())
}

func TestCompressedRoundTrip(t *testing.T) {
	for _, typ := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		var dst bytes.Buffer

		w, err := NewCompressedWriter(&dst, typ)
		require.NoError(t, err)

		_, err = encoding.EncodeStr(w, "hello compressed world")
		require.NoError(t, err)
		require.NoError(t, w.Flush())

		r, err := NewCompressedReader(&dst, typ)
		require.NoError(t, err)

		s, _, err := encoding.DecodeStr(r)
		require.NoError(t, err)
		assert.Equal(t, "hello compressed world", s)
	}
}
