//go:build !mpack_noalloc

package datamodel

import (
	"testing"

	"github.com/mpackgo/mpack/numpolicy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type simpleRecord struct {
	Compact bool   `mpack:"compact"`
	Schema  uint8  `mpack:"schema"`
	Less    string `mpack:"less"`
}

// TestS1_RecordAsMap is scenario S1 at the datamodel layer: a record
// marshals to a map keyed by its mpack tags, and decodes back equal.
func TestS1_RecordAsMap(t *testing.T) {
	in := simpleRecord{Compact: true, Schema: 0, Less: "than json"}

	out, err := Marshal(&in, WithSerializePolicy(numpolicy.LosslessMinimize))
	require.NoError(t, err)

	var got simpleRecord
	err = Unmarshal(out, &got, WithDeserializePolicy(numpolicy.Lenient))
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

type tupleRecord struct {
	_       struct{} `mpack:",astuple"`
	Compact bool     `mpack:"compact"`
	Schema  uint8    `mpack:"schema"`
}

// TestS2_RecordFromArray is scenario S2 at the datamodel layer: a
// record marked astuple marshals as a positional array, and bytes
// 92 c3 00 decode into it as {compact: true, schema: 0}.
func TestS2_RecordFromArray(t *testing.T) {
	var got tupleRecord
	err := Unmarshal([]byte{0x92, 0xc3, 0x00}, &got, WithDeserializePolicy(numpolicy.Lenient))
	require.NoError(t, err)
	assert.True(t, got.Compact)
	assert.Equal(t, uint8(0), got.Schema)

	out, err := Marshal(&tupleRecord{Compact: true, Schema: 0}, WithSerializePolicy(numpolicy.LosslessMinimize))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x92, 0xc3, 0x00}, out)
}

type withExtra struct {
	A int32 `mpack:"a"`
}

// TestS7_UnknownKeySkip is scenario S7: a map holding an unrecognized
// key decodes successfully, skipping the unknown entry's value.
func TestS7_UnknownKeySkip(t *testing.T) {
	type wire struct {
		A       int32  `mpack:"a"`
		Unknown string `mpack:"unknown"`
	}

	raw, err := Marshal(&wire{A: 7, Unknown: "ignored"})
	require.NoError(t, err)

	var got withExtra
	err = Unmarshal(raw, &got)
	require.NoError(t, err)
	assert.Equal(t, int32(7), got.A)
}

func TestMissingRequiredField(t *testing.T) {
	type full struct {
		A int32 `mpack:"a"`
		B int32 `mpack:"b"`
	}
	type partial struct {
		A int32 `mpack:"a"`
	}

	raw, err := Marshal(&partial{A: 1})
	require.NoError(t, err)

	var got full
	err = Unmarshal(raw, &got)
	require.Error(t, err)
}

func TestOmitEmptyFieldDropped(t *testing.T) {
	type withOptional struct {
		A int32  `mpack:"a"`
		B string `mpack:"b,omitempty"`
	}

	raw, err := Marshal(&withOptional{A: 1})
	require.NoError(t, err)

	var got withOptional
	err = Unmarshal(raw, &got)
	require.NoError(t, err)
	assert.Equal(t, withOptional{A: 1}, got)
}

func TestSequenceRoundTrip(t *testing.T) {
	in := []int32{1, 2, 3, 4}

	raw, err := Marshal(in)
	require.NoError(t, err)

	var got []int32
	err = Unmarshal(raw, &got)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestMapRoundTrip(t *testing.T) {
	in := map[string]int32{"x": 1, "y": 2}

	raw, err := Marshal(in)
	require.NoError(t, err)

	var got map[string]int32
	err = Unmarshal(raw, &got)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestPointerOptionRoundTrip(t *testing.T) {
	type hasOption struct {
		Name *string `mpack:"name"`
	}

	var got hasOption
	raw, err := Marshal(&hasOption{Name: nil})
	require.NoError(t, err)
	err = Unmarshal(raw, &got)
	require.NoError(t, err)
	assert.Nil(t, got.Name)

	name := "present"
	raw, err = Marshal(&hasOption{Name: &name})
	require.NoError(t, err)
	err = Unmarshal(raw, &got)
	require.NoError(t, err)
	require.NotNil(t, got.Name)
	assert.Equal(t, "present", *got.Name)
}

func TestBytesRoundTrip(t *testing.T) {
	type withBlob struct {
		Data []byte `mpack:"data"`
	}

	in := withBlob{Data: []byte{1, 2, 3, 4, 5}}
	raw, err := Marshal(&in)
	require.NoError(t, err)

	var got withBlob
	err = Unmarshal(raw, &got)
	require.NoError(t, err)
	assert.Equal(t, in.Data, got.Data)
}

func TestInterfaceFieldRoundTrip(t *testing.T) {
	type withAny struct {
		Payload any `mpack:"payload"`
	}

	in := withAny{Payload: map[string]any{"k": int64(3)}}
	raw, err := Marshal(&in)
	require.NoError(t, err)

	var got withAny
	err = Unmarshal(raw, &got)
	require.NoError(t, err)

	m, ok := got.Payload.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, int64(3), m["k"])
}
