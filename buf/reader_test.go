package buf

import (
	"testing"

	"github.com/mpackgo/mpack/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_ReadAdvances(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03, 0x04})

	b, err := r.Read(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, b)
	assert.Equal(t, 2, r.Pos())
	assert.Equal(t, 2, r.Len())

	b, err = r.Read(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0x04}, b)
	assert.Equal(t, 0, r.Len())
}

func TestReader_ReadShortLeavesPositionUnchanged(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})

	_, err := r.Read(5)
	require.Error(t, err)

	var needMore errs.NeedMore
	require.ErrorAs(t, err, &needMore)
	assert.Equal(t, 3, needMore.Missing)
	assert.Equal(t, 0, r.Pos(), "position must not advance on a failed read")
}

func TestReader_PeekTagDoesNotAdvance(t *testing.T) {
	r := NewReader([]byte{0xc0, 0x01})

	tag, err := r.PeekTag()
	require.NoError(t, err)
	assert.Equal(t, byte(0xc0), tag)
	assert.Equal(t, 0, r.Pos())

	tag, err = r.PeekTag()
	require.NoError(t, err)
	assert.Equal(t, byte(0xc0), tag)
}

func TestReader_PeekTagEmpty(t *testing.T) {
	r := NewReader(nil)

	_, err := r.PeekTag()
	require.Error(t, err)

	var needMore errs.NeedMore
	require.ErrorAs(t, err, &needMore)
	assert.Equal(t, 1, needMore.Missing)
}

func TestReader_RestAndSeekTo(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03})

	_, err := r.Read(1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x03}, r.Rest())

	r.SeekTo(0)
	assert.Equal(t, 0, r.Pos())
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, r.Rest())
}

func TestReader_ReadZeroLength(t *testing.T) {
	r := NewReader([]byte{0x01})

	b, err := r.Read(0)
	require.NoError(t, err)
	assert.Empty(t, b)
	assert.Equal(t, 0, r.Pos())
}
