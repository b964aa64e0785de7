package encoding

import (
	"testing"

	"github.com/mpackgo/mpack/buf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAny_Dispatch(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		kind Kind
	}{
		{"nil", []byte{0xc0}, KindNil},
		{"bool", []byte{0xc3}, KindBool},
		{"positive fixint", []byte{0x05}, KindUint},
		{"negative fixint", []byte{0xff}, KindInt},
		{"uint16", []byte{0xcd, 0x01, 0x00}, KindUint},
		{"float64", []byte{0xcb, 0, 0, 0, 0, 0, 0, 0, 0}, KindFloat},
		{"fixstr", []byte{0xa0}, KindStr},
		{"bin8", []byte{0xc4, 0x00}, KindBin},
		{"fixarray", []byte{0x90}, KindArray},
		{"fixmap", []byte{0x80}, KindMap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := buf.NewReader(tt.data)
			v, _, err := DecodeAny(r)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind)
		})
	}
}

func TestDecodeAny_Timestamp(t *testing.T) {
	out := make([]byte, 16)
	w := buf.NewSliceWriter(out)
	_, err := EncodeTimestamp(w, Timestamp{Sec: 42})
	require.NoError(t, err)

	r := buf.NewReader(w.Bytes())
	v, _, err := DecodeAny(r)
	require.NoError(t, err)
	assert.Equal(t, KindTimestamp, v.Kind)
	assert.Equal(t, int64(42), v.TS.Sec)
}

func TestDecodeAny_NonTimestampExt(t *testing.T) {
	out := make([]byte, 16)
	w := buf.NewSliceWriter(out)
	_, err := EncodeExt(w, 7, []byte{0x01})
	require.NoError(t, err)

	r := buf.NewReader(w.Bytes())
	v, _, err := DecodeAny(r)
	require.NoError(t, err)
	assert.Equal(t, KindExt, v.Kind)
	assert.Equal(t, int8(7), v.Ext.Type)
}
