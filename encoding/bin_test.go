package encoding

import (
	"testing"

	"github.com/mpackgo/mpack/buf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeBin_RoundTrip(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	out := make([]byte, 16)
	w := buf.NewSliceWriter(out)

	n, err := EncodeBin(w, data)
	require.NoError(t, err)
	assert.Equal(t, byte(0xc4), w.Bytes()[0]) // bin8

	r := buf.NewReader(w.Bytes())
	decoded, consumed, err := DecodeBin(r)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
	assert.Equal(t, n, consumed)
}

func TestDecodeBinCopy_IsIndependentOfSource(t *testing.T) {
	data := []byte{0xaa, 0xbb}
	out := make([]byte, 16)
	w := buf.NewSliceWriter(out)
	_, err := EncodeBin(w, data)
	require.NoError(t, err)

	r := buf.NewReader(w.Bytes())
	decoded, _, err := DecodeBinCopy(r)
	require.NoError(t, err)

	out[2] = 0xff
	assert.Equal(t, []byte{0xaa, 0xbb}, decoded)
}
