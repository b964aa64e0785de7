package encoding

import (
	"github.com/mpackgo/mpack/buf"
	"github.com/mpackgo/mpack/errs"
	"github.com/mpackgo/mpack/format"
	"github.com/mpackgo/mpack/numpolicy"
)

// Kind identifies which field of a Value is populated.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindStr
	KindBin
	KindArray
	KindMap
	KindExt
	KindTimestamp
)

// Value is a polymorphic decode result: Go has no sum type, so this is
// a tagged struct. Only the field matching Kind is meaningful.
//
// For KindArray/KindMap, Len holds the element/entry count; the caller
// decodes the container body itself (§4.4), this codec does not
// materialize it.
type Value struct {
	Kind  Kind
	Bool  bool
	Int   int64
	Uint  uint64
	Float float64
	Str   string
	Bin   []byte
	Ext   Extension
	TS    Timestamp
	Len   int
}

// DecodeAny inspects the next tag and dispatches to the matching family
// decoder, returning a Value sum type and the bytes consumed.
func DecodeAny(r *buf.Reader) (Value, int, error) {
	tag, err := r.PeekTag()
	if err != nil {
		return Value{}, 0, err
	}

	family := format.ClassifyFamily(tag)

	switch family {
	case format.FamilyNil:
		n, err := DecodeNil(r)
		return Value{Kind: KindNil}, n, err
	case format.FamilyBool:
		v, n, err := DecodeBool(r)
		return Value{Kind: KindBool, Bool: v}, n, err
	case format.FamilyUint:
		v, n, err := DecodeUint64(r, numpolicy.Lenient)
		return Value{Kind: KindUint, Uint: v}, n, err
	case format.FamilyInt:
		if format.IsPositiveFixInt(tag) {
			v, n, err := DecodeUint64(r, numpolicy.Lenient)
			return Value{Kind: KindUint, Uint: v}, n, err
		}
		v, n, err := DecodeInt64(r, numpolicy.Lenient)
		return Value{Kind: KindInt, Int: v}, n, err
	case format.FamilyFloat:
		v, n, err := DecodeFloat64(r, numpolicy.Lenient)
		return Value{Kind: KindFloat, Float: v}, n, err
	case format.FamilyStr:
		v, n, err := DecodeStr(r)
		return Value{Kind: KindStr, Str: v}, n, err
	case format.FamilyBin:
		v, n, err := DecodeBin(r)
		return Value{Kind: KindBin, Bin: v}, n, err
	case format.FamilyArray:
		v, n, err := DecodeArrayHeader(r)
		return Value{Kind: KindArray, Len: v}, n, err
	case format.FamilyMap:
		v, n, err := DecodeMapHeader(r)
		return Value{Kind: KindMap, Len: v}, n, err
	case format.FamilyExt:
		start := r.Pos()
		ext, n, err := DecodeExt(r)
		if err != nil {
			return Value{}, 0, err
		}
		if ext.Type == format.TimestampExtType {
			r.SeekTo(start)
			ts, n, err := DecodeTimestamp(r)
			return Value{Kind: KindTimestamp, TS: ts}, n, err
		}

		return Value{Kind: KindExt, Ext: ext}, n, nil
	default:
		return Value{}, 0, errs.InvalidTag{Byte: tag}
	}
}
