package datamodel

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taggedFields struct {
	First  int32 `mpack:"first"`
	Second int32 `mpack:"second,omitempty"`
	Hidden int32 `mpack:"-"`
	Plain  int32
}

func TestBuildTypeInfo_ResolvesNamesAndOptions(t *testing.T) {
	info := lookupTypeInfo(reflect.TypeOf(taggedFields{}))

	names := make([]string, 0, len(info.fields))
	for _, fi := range info.fields {
		names = append(names, fi.wireName)
	}

	assert.Contains(t, names, "first")
	assert.Contains(t, names, "second")
	assert.Contains(t, names, "Plain")
	assert.NotContains(t, names, "Hidden")

	second, ok := info.fieldByWireName("second")
	require.True(t, ok)
	assert.True(t, second.omitEmpty)
}

func TestTypeInfo_AsTupleMarker(t *testing.T) {
	info := lookupTypeInfo(reflect.TypeOf(tupleRecord{}))
	assert.True(t, info.asTuple)

	info2 := lookupTypeInfo(reflect.TypeOf(simpleRecord{}))
	assert.False(t, info2.asTuple)
}

func TestTypeInfo_CachedAcrossCalls(t *testing.T) {
	t1 := lookupTypeInfo(reflect.TypeOf(simpleRecord{}))
	t2 := lookupTypeInfo(reflect.TypeOf(simpleRecord{}))
	assert.Same(t, t1, t2)
}

type collidingA struct {
	FieldOne int32 `mpack:"a"`
	FieldTwo int32 `mpack:"b"`
}

func TestFieldByWireName_MissingReturnsFalse(t *testing.T) {
	info := lookupTypeInfo(reflect.TypeOf(collidingA{}))
	_, ok := info.fieldByWireName("nonexistent")
	assert.False(t, ok)
}
