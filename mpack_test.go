//go:build !mpack_noalloc

package mpack

import (
	"testing"

	"github.com/mpackgo/mpack/numpolicy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reading struct {
	Sensor string      `mpack:"sensor"`
	Value  Option[int] `mpack:"value"`
}

func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	in := reading{Sensor: "temp", Value: Some(72)}

	data, err := Marshal(&in)
	require.NoError(t, err)

	var got reading
	err = Unmarshal(data, &got)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestOption_NoneEncodesAsNil(t *testing.T) {
	in := reading{Sensor: "temp", Value: None[int]()}

	data, err := Marshal(&in)
	require.NoError(t, err)

	var got reading
	err = Unmarshal(data, &got)
	require.NoError(t, err)

	v, ok := got.Value.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, v)
}

type shutdownCmd struct{}

func (shutdownCmd) VariantName() string { return "shutdown" }
func (shutdownCmd) IsUnitVariant()       {}

type setSpeedCmd struct {
	RPM int32 `mpack:"rpm"`
}

func (setSpeedCmd) VariantName() string { return "set_speed" }

type command struct {
	Source string  `mpack:"source"`
	Action Variant `mpack:"action,union=command"`
}

func commandRegistry() *UnionRegistry {
	reg := NewUnionRegistry()
	reg.Register(shutdownCmd{})
	reg.Register(setSpeedCmd{})

	return reg
}

func TestMarshalUnmarshal_UnionFieldRoundTrip(t *testing.T) {
	in := command{Source: "console", Action: setSpeedCmd{RPM: 4200}}

	data, err := Marshal(&in)
	require.NoError(t, err)

	var got command
	err = Unmarshal(data, &got, WithUnionRegistry("command", commandRegistry()))
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestMarshalUnmarshal_UnionFieldUnitVariantRoundTrip(t *testing.T) {
	in := command{Source: "console", Action: shutdownCmd{}}

	data, err := Marshal(&in)
	require.NoError(t, err)

	var got command
	err = Unmarshal(data, &got, WithUnionRegistry("command", commandRegistry()))
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestMarshal_PoliciesForwarded(t *testing.T) {
	type exact struct {
		N uint8 `mpack:"n"`
	}

	data, err := Marshal(&exact{N: 5}, WithSerializePolicy(numpolicy.Exact))
	require.NoError(t, err)
	// Exact policy for a uint8 field always emits the two-byte uint8 tag form.
	assert.Equal(t, byte(0xcc), data[len(data)-2])

	var got exact
	err = Unmarshal(data, &got, WithDeserializePolicy(numpolicy.ExactPolicy))
	require.NoError(t, err)
	assert.Equal(t, uint8(5), got.N)
}
