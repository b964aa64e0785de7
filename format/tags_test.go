package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPositiveFixInt(t *testing.T) {
	assert.True(t, IsPositiveFixInt(0x00))
	assert.True(t, IsPositiveFixInt(0x7f))
	assert.False(t, IsPositiveFixInt(0x80))
	assert.False(t, IsPositiveFixInt(0xe0))
}

func TestIsNegativeFixInt(t *testing.T) {
	assert.True(t, IsNegativeFixInt(0xe0))
	assert.True(t, IsNegativeFixInt(0xff))
	assert.False(t, IsNegativeFixInt(0x00))
	assert.False(t, IsNegativeFixInt(0xc0))
}

func TestIsFixMapArrayStr(t *testing.T) {
	assert.True(t, IsFixMap(0x80))
	assert.True(t, IsFixMap(0x8f))
	assert.False(t, IsFixMap(0x90))

	assert.True(t, IsFixArray(0x90))
	assert.True(t, IsFixArray(0x9f))
	assert.False(t, IsFixArray(0xa0))

	assert.True(t, IsFixStr(0xa0))
	assert.True(t, IsFixStr(0xbf))
	assert.False(t, IsFixStr(0xc0))
}

func TestClassifyFamily(t *testing.T) {
	tests := []struct {
		tag  Tag
		want Family
	}{
		{0x00, FamilyInt},
		{0x7f, FamilyInt},
		{0xe0, FamilyInt},
		{0x80, FamilyMap},
		{0x90, FamilyArray},
		{0xa0, FamilyStr},
		{Nil, FamilyNil},
		{False, FamilyBool},
		{True, FamilyBool},
		{Bin8, FamilyBin},
		{Bin16, FamilyBin},
		{Bin32, FamilyBin},
		{Ext8, FamilyExt},
		{FixExt1, FamilyExt},
		{Float32, FamilyFloat},
		{Float64, FamilyFloat},
		{Uint8, FamilyUint},
		{Uint64, FamilyUint},
		{Int8, FamilyInt},
		{Int64, FamilyInt},
		{Str8, FamilyStr},
		{Str32, FamilyStr},
		{Array16, FamilyArray},
		{Array32, FamilyArray},
		{Map16, FamilyMap},
		{Map32, FamilyMap},
		{Reserved, FamilyUnknown},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, ClassifyFamily(tt.tag), "tag 0x%02x", tt.tag)
	}
}

func TestIsValidTag(t *testing.T) {
	assert.False(t, IsValidTag(Reserved))
	assert.True(t, IsValidTag(Nil))
	assert.True(t, IsValidTag(0x00))
	assert.True(t, IsValidTag(0xff))
}

func TestFamilyString(t *testing.T) {
	assert.Equal(t, "nil", FamilyNil.String())
	assert.Equal(t, "bool", FamilyBool.String())
	assert.Equal(t, "int", FamilyInt.String())
	assert.Equal(t, "uint", FamilyUint.String())
	assert.Equal(t, "float", FamilyFloat.String())
	assert.Equal(t, "str", FamilyStr.String())
	assert.Equal(t, "bin", FamilyBin.String())
	assert.Equal(t, "array", FamilyArray.String())
	assert.Equal(t, "map", FamilyMap.String())
	assert.Equal(t, "ext", FamilyExt.String())
	assert.Equal(t, "unknown", FamilyUnknown.String())
}
