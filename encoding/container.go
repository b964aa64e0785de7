package encoding

import (
	"github.com/mpackgo/mpack/buf"
	"github.com/mpackgo/mpack/endian"
	"github.com/mpackgo/mpack/errs"
	"github.com/mpackgo/mpack/format"
)

// EncodeArrayHeader writes an array header for n elements. The n
// elements themselves are written by the caller, one encoder call per
// element; the header does not verify element count (§3 invariant).
func EncodeArrayHeader(w buf.Writer, n int) (int, error) {
	return encodeContainerHeader(w, n, format.FixArrayMin, format.Array16, format.Array32, format.FamilyArray)
}

// EncodeMapHeader writes a map header for n entries (n key/value pairs,
// so 2n elements follow).
func EncodeMapHeader(w buf.Writer, n int) (int, error) {
	return encodeContainerHeader(w, n, format.FixMapMin, format.Map16, format.Map32, format.FamilyMap)
}

func encodeContainerHeader(w buf.Writer, n int, fixMin, tag16, tag32 format.Tag, _ format.Family) (int, error) {
	switch {
	case n <= 0x0f:
		if err := w.Reserve(1); err != nil {
			return 0, err
		}
		if err := w.Write([]byte{fixMin | format.Tag(n)}); err != nil {
			return 0, err
		}

		return 1, nil
	case n <= 0xffff:
		return writeTagAndBytes(w, tag16, endian.AppendUint16(nil, uint16(n)))
	case n <= 0xffffffff:
		return writeTagAndBytes(w, tag32, endian.AppendUint32(nil, uint32(n)))
	default:
		return 0, errs.TooLong{Length: n}
	}
}

// DecodeArrayHeader returns the element count of the next array value.
// The caller is responsible for then decoding exactly that many
// elements (§4.4); the body is not materialized here.
func DecodeArrayHeader(r *buf.Reader) (int, int, error) {
	return decodeContainerHeader(r, format.FixArrayMin, format.IsFixArray, format.Array16, format.Array32, format.FamilyArray)
}

// DecodeMapHeader returns the entry count of the next map value. The
// caller then decodes 2*count elements, alternating key and value.
func DecodeMapHeader(r *buf.Reader) (int, int, error) {
	return decodeContainerHeader(r, format.FixMapMin, format.IsFixMap, format.Map16, format.Map32, format.FamilyMap)
}

func decodeContainerHeader(
	r *buf.Reader,
	fixMin format.Tag,
	isFix func(format.Tag) bool,
	tag16, tag32 format.Tag,
	family format.Family,
) (int, int, error) {
	start := r.Pos()

	tag, err := r.PeekTag()
	if err != nil {
		return 0, 0, err
	}

	switch {
	case isFix(tag):
		if _, err := r.Read(1); err != nil {
			r.SeekTo(start)
			return 0, 0, err
		}

		return int(tag &^ fixMin), 1, nil
	case tag == tag16:
		b, err := r.Read(3)
		if err != nil {
			r.SeekTo(start)
			return 0, 0, err
		}

		return int(endian.Uint16(b[1:])), 3, nil
	case tag == tag32:
		b, err := r.Read(5)
		if err != nil {
			r.SeekTo(start)
			return 0, 0, err
		}

		return int(endian.Uint32(b[1:])), 5, nil
	default:
		return 0, 0, errs.UnexpectedTag{Found: tag, ExpectedFamily: family.String()}
	}
}
