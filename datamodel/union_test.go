//go:build !mpack_noalloc

package datamodel

import (
	"testing"

	"github.com/mpackgo/mpack/buf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWriter() *buf.GrowableWriter {
	return buf.NewGrowableWriter()
}

type shutdown struct{}

func (shutdown) VariantName() string { return "shutdown" }
func (shutdown) IsUnitVariant()       {}

type setSpeed struct {
	RPM int32 `mpack:"rpm"`
}

func (setSpeed) VariantName() string { return "set_speed" }

func TestUnion_UnitVariantRoundTrip(t *testing.T) {
	reg := NewUnionRegistry()
	reg.Register(shutdown{})
	reg.Register(setSpeed{})

	cfg, err := resolveConfig()
	require.NoError(t, err)

	w := newTestWriter()
	_, err = encodeVariant(w, shutdown{}, cfg)
	require.NoError(t, err)

	r := newTestReader(w.Bytes())
	got, _, err := reg.DecodeValue(r, cfg)
	require.NoError(t, err)
	assert.Equal(t, "shutdown", got.VariantName())
}

func TestUnion_PayloadVariantRoundTrip(t *testing.T) {
	reg := NewUnionRegistry()
	reg.Register(shutdown{})
	reg.Register(setSpeed{})

	cfg, err := resolveConfig()
	require.NoError(t, err)

	w := newTestWriter()
	_, err = encodeVariant(w, setSpeed{RPM: 4200}, cfg)
	require.NoError(t, err)

	r := newTestReader(w.Bytes())
	got, _, err := reg.DecodeValue(r, cfg)
	require.NoError(t, err)

	speed, ok := got.(setSpeed)
	require.True(t, ok)
	assert.Equal(t, int32(4200), speed.RPM)
}

func TestUnion_UnknownVariantFails(t *testing.T) {
	reg := NewUnionRegistry()
	reg.Register(shutdown{})

	cfg, err := resolveConfig()
	require.NoError(t, err)

	w := newTestWriter()
	_, err = encodeVariant(w, setSpeed{RPM: 1}, cfg)
	require.NoError(t, err)

	r := newTestReader(w.Bytes())
	_, _, err = reg.DecodeValue(r, cfg)
	assert.Error(t, err)
}
