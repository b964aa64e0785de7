//go:build !mpack_noalloc

package buf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowableWriter_GrowsAsNeeded(t *testing.T) {
	w := NewGrowableWriter()
	defer w.Release()

	large := make([]byte, 4096)
	for i := range large {
		large[i] = byte(i)
	}

	require.NoError(t, w.Reserve(len(large)))
	require.NoError(t, w.Write(large))
	assert.Equal(t, len(large), w.Written())
	assert.Equal(t, large, w.Bytes())
}

func TestGrowableWriter_WriteString(t *testing.T) {
	w := NewGrowableWriter()
	defer w.Release()

	require.NoError(t, w.WriteString("hello world"))
	assert.Equal(t, "hello world", string(w.Bytes()))
}

func TestGrowableWriter_ReleaseThenReuseFromPool(t *testing.T) {
	w := NewGrowableWriter()
	require.NoError(t, w.Write([]byte{0x01, 0x02, 0x03}))
	w.Release()

	w2 := NewGrowableWriter()
	defer w2.Release()
	assert.Equal(t, 0, w2.Written(), "a pooled buffer must come back reset")
}
