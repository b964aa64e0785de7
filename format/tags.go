// Package format defines the MessagePack wire-format constants: tag bytes,
// the fixed-form bit layouts packed into a tag byte, and the pure
// classification functions used to tell one family of tag from another.
//
// Nothing in this package touches a buffer or allocates; it is tag-byte
// arithmetic only, the lowest layer of the codec.
package format

// Tag is a single MessagePack format byte.
type Tag = byte

// Fixed-form tag bytes and ranges, in the order they appear in the
// MessagePack spec (https://github.com/msgpack/msgpack/blob/master/spec.md).
const (
	PositiveFixIntMin Tag = 0x00
	PositiveFixIntMax Tag = 0x7f

	FixMapMin Tag = 0x80
	FixMapMax Tag = 0x8f

	FixArrayMin Tag = 0x90
	FixArrayMax Tag = 0x9f

	FixStrMin Tag = 0xa0
	FixStrMax Tag = 0xbf

	Nil      Tag = 0xc0
	Reserved Tag = 0xc1 // never used by MessagePack
	False    Tag = 0xc2
	True     Tag = 0xc3

	Bin8  Tag = 0xc4
	Bin16 Tag = 0xc5
	Bin32 Tag = 0xc6

	Ext8  Tag = 0xc7
	Ext16 Tag = 0xc8
	Ext32 Tag = 0xc9

	Float32 Tag = 0xca
	Float64 Tag = 0xcb

	Uint8  Tag = 0xcc
	Uint16 Tag = 0xcd
	Uint32 Tag = 0xce
	Uint64 Tag = 0xcf

	Int8  Tag = 0xd0
	Int16 Tag = 0xd1
	Int32 Tag = 0xd2
	Int64 Tag = 0xd3

	FixExt1  Tag = 0xd4
	FixExt2  Tag = 0xd5
	FixExt4  Tag = 0xd6
	FixExt8  Tag = 0xd7
	FixExt16 Tag = 0xd8

	Str8  Tag = 0xd9
	Str16 Tag = 0xda
	Str32 Tag = 0xdb

	Array16 Tag = 0xdc
	Array32 Tag = 0xdd

	Map16 Tag = 0xde
	Map32 Tag = 0xdf

	NegativeFixIntMin Tag = 0xe0
	NegativeFixIntMax Tag = 0xff
)

// TimestampExtType is the reserved ext type code for the timestamp extension.
const TimestampExtType int8 = -1

// MaxLength is the largest length any str/bin/array/map/ext payload may
// declare (2^32 - 1); encoders fail with errs.TooLong beyond this.
const MaxLength = 0xffffffff

// Family identifies which MessagePack value family a tag belongs to.
type Family uint8

const (
	FamilyUnknown Family = iota
	FamilyNil
	FamilyBool
	FamilyInt
	FamilyUint
	FamilyFloat
	FamilyStr
	FamilyBin
	FamilyArray
	FamilyMap
	FamilyExt
)

func (f Family) String() string {
	switch f {
	case FamilyNil:
		return "nil"
	case FamilyBool:
		return "bool"
	case FamilyInt:
		return "int"
	case FamilyUint:
		return "uint"
	case FamilyFloat:
		return "float"
	case FamilyStr:
		return "str"
	case FamilyBin:
		return "bin"
	case FamilyArray:
		return "array"
	case FamilyMap:
		return "map"
	case FamilyExt:
		return "ext"
	default:
		return "unknown"
	}
}

// IsPositiveFixInt reports whether t is a positive fixint tag (0x00..0x7f).
func IsPositiveFixInt(t Tag) bool { return t&0x80 == 0x00 }

// IsNegativeFixInt reports whether t is a negative fixint tag (0xe0..0xff).
func IsNegativeFixInt(t Tag) bool { return t&0xe0 == NegativeFixIntMin }

// IsFixMap reports whether t is a fixmap tag (0x80..0x8f).
func IsFixMap(t Tag) bool { return t&0xf0 == FixMapMin }

// IsFixArray reports whether t is a fixarray tag (0x90..0x9f).
func IsFixArray(t Tag) bool { return t&0xf0 == FixArrayMin }

// IsFixStr reports whether t is a fixstr tag (0xa0..0xbf).
func IsFixStr(t Tag) bool { return t&0xe0 == FixStrMin }

// ClassifyFamily returns the wire family a tag belongs to, or FamilyUnknown
// for the single reserved byte (0xc1) that MessagePack never assigns.
func ClassifyFamily(t Tag) Family {
	switch {
	case IsPositiveFixInt(t), IsNegativeFixInt(t):
		return FamilyInt
	case IsFixMap(t):
		return FamilyMap
	case IsFixArray(t):
		return FamilyArray
	case IsFixStr(t):
		return FamilyStr
	}

	switch t {
	case Nil:
		return FamilyNil
	case False, True:
		return FamilyBool
	case Bin8, Bin16, Bin32:
		return FamilyBin
	case Ext8, Ext16, Ext32, FixExt1, FixExt2, FixExt4, FixExt8, FixExt16:
		return FamilyExt
	case Float32, Float64:
		return FamilyFloat
	case Uint8, Uint16, Uint32, Uint64:
		return FamilyUint
	case Int8, Int16, Int32, Int64:
		return FamilyInt
	case Str8, Str16, Str32:
		return FamilyStr
	case Array16, Array32:
		return FamilyArray
	case Map16, Map32:
		return FamilyMap
	default:
		return FamilyUnknown
	}
}

// IsValidTag reports whether t is an assigned MessagePack tag byte. The
// sole invalid byte in the format is 0xc1.
func IsValidTag(t Tag) bool { return t != Reserved }
