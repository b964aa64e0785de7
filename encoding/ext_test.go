package encoding

import (
	"strings"
	"testing"

	"github.com/mpackgo/mpack/buf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeExt_FixedSizes(t *testing.T) {
	sizes := []int{1, 2, 4, 8, 16}

	for _, size := range sizes {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i + 1)
		}

		out := make([]byte, size+4)
		w := buf.NewSliceWriter(out)

		n, err := EncodeExt(w, 5, data)
		require.NoError(t, err)

		r := buf.NewReader(w.Bytes())
		ext, consumed, err := DecodeExt(r)
		require.NoError(t, err)
		assert.Equal(t, int8(5), ext.Type)
		assert.Equal(t, data, ext.Data)
		assert.Equal(t, n, consumed)
	}
}

func TestEncodeDecodeExt_VariableSize(t *testing.T) {
	data := []byte(strings.Repeat("x", 300))
	out := make([]byte, 400)
	w := buf.NewSliceWriter(out)

	_, err := EncodeExt(w, -5, data)
	require.NoError(t, err)
	assert.Equal(t, byte(0xc8), w.Bytes()[0]) // ext16

	r := buf.NewReader(w.Bytes())
	ext, _, err := DecodeExt(r)
	require.NoError(t, err)
	assert.Equal(t, int8(-5), ext.Type)
	assert.Equal(t, data, ext.Data)
}
