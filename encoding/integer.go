package encoding

import (
	"math"

	"github.com/mpackgo/mpack/buf"
	"github.com/mpackgo/mpack/endian"
	"github.com/mpackgo/mpack/errs"
	"github.com/mpackgo/mpack/format"
	"github.com/mpackgo/mpack/numpolicy"
)

// encodeUintMinimal applies the shortest-form rules of §4.2 to v,
// regardless of the Go source width it came from.
func encodeUintMinimal(w buf.Writer, v uint64) (int, error) {
	switch {
	case v <= 0x7f:
		if err := w.Reserve(1); err != nil {
			return 0, err
		}
		if err := w.Write([]byte{byte(v)}); err != nil {
			return 0, err
		}

		return 1, nil
	case v <= 0xff:
		return writeTagAndBytes(w, format.Uint8, []byte{byte(v)})
	case v <= 0xffff:
		return writeTagAndBytes(w, format.Uint16, endian.AppendUint16(nil, uint16(v)))
	case v <= 0xffffffff:
		return writeTagAndBytes(w, format.Uint32, endian.AppendUint32(nil, uint32(v)))
	default:
		return writeTagAndBytes(w, format.Uint64, endian.AppendUint64(nil, v))
	}
}

// encodeIntMinimal applies the shortest-form rules of §4.2 to v.
func encodeIntMinimal(w buf.Writer, v int64) (int, error) {
	if v >= 0 {
		return encodeUintMinimal(w, uint64(v))
	}

	switch {
	case v >= -32:
		if err := w.Reserve(1); err != nil {
			return 0, err
		}
		if err := w.Write([]byte{byte(int8(v))}); err != nil {
			return 0, err
		}

		return 1, nil
	case v >= math.MinInt8:
		return writeTagAndBytes(w, format.Int8, []byte{byte(int8(v))})
	case v >= math.MinInt16:
		return writeTagAndBytes(w, format.Int16, endian.AppendUint16(nil, uint16(int16(v))))
	case v >= math.MinInt32:
		return writeTagAndBytes(w, format.Int32, endian.AppendUint32(nil, uint32(int32(v))))
	default:
		return writeTagAndBytes(w, format.Int64, endian.AppendUint64(nil, uint64(v)))
	}
}

// writeTagAndBytes reserves, then writes, a tag byte followed by payload
// as a single logical unit (the Reserve covers both, so the two Write
// calls can never leave a torn write).
func writeTagAndBytes(w buf.Writer, tag format.Tag, payload []byte) (int, error) {
	n := 1 + len(payload)
	if err := w.Reserve(n); err != nil {
		return 0, err
	}
	if err := w.Write([]byte{tag}); err != nil {
		return 0, err
	}
	if err := w.Write(payload); err != nil {
		return 0, err
	}

	return n, nil
}

func uintTagForBits(bits int) format.Tag {
	switch bits {
	case 8:
		return format.Uint8
	case 16:
		return format.Uint16
	case 32:
		return format.Uint32
	default:
		return format.Uint64
	}
}

func intTagForBits(bits int) format.Tag {
	switch bits {
	case 8:
		return format.Int8
	case 16:
		return format.Int16
	case 32:
		return format.Int32
	default:
		return format.Int64
	}
}

// EncodeUint8 writes v. Under Exact it always uses the uint8 tag;
// under LosslessMinimize/AggressiveMinimize it applies the shortest-form
// rules (e.g. a small value may be written as a positive fixint instead).
func EncodeUint8(w buf.Writer, v uint8, policy numpolicy.SerializePolicy) (int, error) {
	if policy == numpolicy.Exact {
		return writeTagAndBytes(w, format.Uint8, []byte{v})
	}

	return encodeUintMinimal(w, uint64(v))
}

// EncodeUint16 writes v, see EncodeUint8.
func EncodeUint16(w buf.Writer, v uint16, policy numpolicy.SerializePolicy) (int, error) {
	if policy == numpolicy.Exact {
		return writeTagAndBytes(w, format.Uint16, endian.AppendUint16(nil, v))
	}

	return encodeUintMinimal(w, uint64(v))
}

// EncodeUint32 writes v, see EncodeUint8.
func EncodeUint32(w buf.Writer, v uint32, policy numpolicy.SerializePolicy) (int, error) {
	if policy == numpolicy.Exact {
		return writeTagAndBytes(w, format.Uint32, endian.AppendUint32(nil, v))
	}

	return encodeUintMinimal(w, uint64(v))
}

// EncodeUint64 writes v, see EncodeUint8.
func EncodeUint64(w buf.Writer, v uint64, policy numpolicy.SerializePolicy) (int, error) {
	if policy == numpolicy.Exact {
		return writeTagAndBytes(w, format.Uint64, endian.AppendUint64(nil, v))
	}

	return encodeUintMinimal(w, v)
}

// EncodeInt8 writes v, see EncodeUint8 for the policy contract.
func EncodeInt8(w buf.Writer, v int8, policy numpolicy.SerializePolicy) (int, error) {
	if policy == numpolicy.Exact {
		return writeTagAndBytes(w, format.Int8, []byte{byte(v)})
	}

	return encodeIntMinimal(w, int64(v))
}

// EncodeInt16 writes v, see EncodeInt8.
func EncodeInt16(w buf.Writer, v int16, policy numpolicy.SerializePolicy) (int, error) {
	if policy == numpolicy.Exact {
		return writeTagAndBytes(w, format.Int16, endian.AppendUint16(nil, uint16(v)))
	}

	return encodeIntMinimal(w, int64(v))
}

// EncodeInt32 writes v, see EncodeInt8.
func EncodeInt32(w buf.Writer, v int32, policy numpolicy.SerializePolicy) (int, error) {
	if policy == numpolicy.Exact {
		return writeTagAndBytes(w, format.Int32, endian.AppendUint32(nil, uint32(v)))
	}

	return encodeIntMinimal(w, int64(v))
}

// EncodeInt64 writes v, see EncodeInt8.
func EncodeInt64(w buf.Writer, v int64, policy numpolicy.SerializePolicy) (int, error) {
	if policy == numpolicy.Exact {
		return writeTagAndBytes(w, format.Int64, endian.AppendUint64(nil, uint64(v)))
	}

	return encodeIntMinimal(w, v)
}

// decodeRawInteger reads the next value as any uint/int wire form
// (fixint included) and returns its magnitude and sign. It rewinds the
// reader on any error.
func decodeRawInteger(r *buf.Reader) (mag uint64, negative bool, consumed int, err error) {
	start := r.Pos()

	tag, err := r.PeekTag()
	if err != nil {
		return 0, false, 0, err
	}

	readPayload := func(n int) ([]byte, error) {
		b, err := r.Read(1 + n)
		if err != nil {
			r.SeekTo(start)
			return nil, err
		}

		return b[1:], nil
	}

	switch {
	case format.IsPositiveFixInt(tag):
		if _, err := r.Read(1); err != nil {
			r.SeekTo(start)
			return 0, false, 0, err
		}

		return uint64(tag), false, 1, nil
	case format.IsNegativeFixInt(tag):
		if _, err := r.Read(1); err != nil {
			r.SeekTo(start)
			return 0, false, 0, err
		}
		v := int8(tag)

		return uint64(-int64(v)), true, 1, nil
	}

	switch tag {
	case format.Uint8:
		p, err := readPayload(1)
		if err != nil {
			return 0, false, 0, err
		}

		return uint64(p[0]), false, 2, nil
	case format.Uint16:
		p, err := readPayload(2)
		if err != nil {
			return 0, false, 0, err
		}

		return uint64(endian.Uint16(p)), false, 3, nil
	case format.Uint32:
		p, err := readPayload(4)
		if err != nil {
			return 0, false, 0, err
		}

		return uint64(endian.Uint32(p)), false, 5, nil
	case format.Uint64:
		p, err := readPayload(8)
		if err != nil {
			return 0, false, 0, err
		}

		return endian.Uint64(p), false, 9, nil
	case format.Int8:
		p, err := readPayload(1)
		if err != nil {
			return 0, false, 0, err
		}
		v := int8(p[0])
		if v >= 0 {
			return uint64(v), false, 2, nil
		}

		return uint64(-int64(v)), true, 2, nil
	case format.Int16:
		p, err := readPayload(2)
		if err != nil {
			return 0, false, 0, err
		}
		v := int16(endian.Uint16(p))
		if v >= 0 {
			return uint64(v), false, 3, nil
		}

		return uint64(-int64(v)), true, 3, nil
	case format.Int32:
		p, err := readPayload(4)
		if err != nil {
			return 0, false, 0, err
		}
		v := int32(endian.Uint32(p))
		if v >= 0 {
			return uint64(v), false, 5, nil
		}

		return uint64(-int64(v)), true, 5, nil
	case format.Int64:
		p, err := readPayload(8)
		if err != nil {
			return 0, false, 0, err
		}
		v := int64(endian.Uint64(p))
		if v >= 0 {
			return uint64(v), false, 9, nil
		}

		return uint64(-v), true, 9, nil
	default:
		return 0, false, 0, errs.UnexpectedTag{Found: tag, ExpectedFamily: "int"}
	}
}

func uintMax(bits int) uint64 {
	switch bits {
	case 8:
		return math.MaxUint8
	case 16:
		return math.MaxUint16
	case 32:
		return math.MaxUint32
	default:
		return math.MaxUint64
	}
}

func intMagMax(bits int, negative bool) uint64 {
	if negative {
		switch bits {
		case 8:
			return 1 << 7
		case 16:
			return 1 << 15
		case 32:
			return 1 << 31
		default:
			return 1 << 63
		}
	}

	switch bits {
	case 8:
		return math.MaxInt8
	case 16:
		return math.MaxInt16
	case 32:
		return math.MaxInt32
	default:
		return math.MaxInt64
	}
}

// decodeUintBits decodes an unsigned integer of the given bit width
// under policy.
func decodeUintBits(r *buf.Reader, bits int, policy numpolicy.DeserializePolicy) (uint64, int, error) {
	start := r.Pos()

	if policy == numpolicy.ExactPolicy {
		tag, err := r.PeekTag()
		if err != nil {
			return 0, 0, err
		}
		want := uintTagForBits(bits)
		if tag != want {
			return 0, 0, errs.UnexpectedTag{Found: tag, ExpectedFamily: format.FamilyUint.String()}
		}
		n := 1 + bits/8
		b, err := r.Read(n)
		if err != nil {
			r.SeekTo(start)
			return 0, 0, err
		}

		switch bits {
		case 8:
			return uint64(b[1]), n, nil
		case 16:
			return uint64(endian.Uint16(b[1:])), n, nil
		case 32:
			return uint64(endian.Uint32(b[1:])), n, nil
		default:
			return endian.Uint64(b[1:]), n, nil
		}
	}

	mag, negative, n, err := decodeRawInteger(r)
	if err == nil {
		if negative {
			r.SeekTo(start)
			return 0, 0, errs.Overflow{Value: -int64(mag), Bits: bits}
		}
		if mag > uintMax(bits) {
			r.SeekTo(start)
			return 0, 0, errs.Overflow{Value: int64(mag), Bits: bits}
		}

		return mag, n, nil
	}

	if policy != numpolicy.AggressiveLenient {
		return 0, 0, err
	}

	// AggressiveLenient additionally accepts a float wire form with an
	// integral value that fits the requested width.
	f, n, ferr := decodeRawFloat(r)
	if ferr != nil {
		return 0, 0, err
	}
	if f != math.Trunc(f) || f < 0 || f > float64(uintMax(bits)) {
		r.SeekTo(start)
		return 0, 0, errs.Overflow{Value: int64(f), Bits: bits}
	}

	return uint64(f), n, nil
}

// decodeIntBits decodes a signed integer of the given bit width under policy.
func decodeIntBits(r *buf.Reader, bits int, policy numpolicy.DeserializePolicy) (int64, int, error) {
	start := r.Pos()

	if policy == numpolicy.ExactPolicy {
		tag, err := r.PeekTag()
		if err != nil {
			return 0, 0, err
		}
		want := intTagForBits(bits)
		if tag != want {
			return 0, 0, errs.UnexpectedTag{Found: tag, ExpectedFamily: format.FamilyInt.String()}
		}
		n := 1 + bits/8
		b, err := r.Read(n)
		if err != nil {
			r.SeekTo(start)
			return 0, 0, err
		}

		switch bits {
		case 8:
			return int64(int8(b[1])), n, nil
		case 16:
			return int64(int16(endian.Uint16(b[1:]))), n, nil
		case 32:
			return int64(int32(endian.Uint32(b[1:]))), n, nil
		default:
			return int64(endian.Uint64(b[1:])), n, nil
		}
	}

	mag, negative, n, err := decodeRawInteger(r)
	if err == nil {
		if mag > intMagMax(bits, negative) {
			v := int64(mag)
			if negative {
				v = -v
			}

			r.SeekTo(start)
			return 0, 0, errs.Overflow{Value: v, Bits: bits}
		}
		if negative {
			return -int64(mag), n, nil
		}

		return int64(mag), n, nil
	}

	if policy != numpolicy.AggressiveLenient {
		return 0, 0, err
	}

	f, n, ferr := decodeRawFloat(r)
	if ferr != nil {
		return 0, 0, err
	}
	if f != math.Trunc(f) {
		r.SeekTo(start)
		return 0, 0, errs.Overflow{Value: int64(f), Bits: bits}
	}
	mi, ma := intRange(bits)
	if f < float64(mi) || f > float64(ma) {
		r.SeekTo(start)
		return 0, 0, errs.Overflow{Value: int64(f), Bits: bits}
	}

	return int64(f), n, nil
}

func intRange(bits int) (int64, int64) {
	switch bits {
	case 8:
		return math.MinInt8, math.MaxInt8
	case 16:
		return math.MinInt16, math.MaxInt16
	case 32:
		return math.MinInt32, math.MaxInt32
	default:
		return math.MinInt64, math.MaxInt64
	}
}

// DecodeUint8 decodes an unsigned 8-bit integer under policy.
func DecodeUint8(r *buf.Reader, policy numpolicy.DeserializePolicy) (uint8, int, error) {
	v, n, err := decodeUintBits(r, 8, policy)
	return uint8(v), n, err
}

// DecodeUint16 decodes an unsigned 16-bit integer under policy.
func DecodeUint16(r *buf.Reader, policy numpolicy.DeserializePolicy) (uint16, int, error) {
	v, n, err := decodeUintBits(r, 16, policy)
	return uint16(v), n, err
}

// DecodeUint32 decodes an unsigned 32-bit integer under policy.
func DecodeUint32(r *buf.Reader, policy numpolicy.DeserializePolicy) (uint32, int, error) {
	v, n, err := decodeUintBits(r, 32, policy)
	return uint32(v), n, err
}

// DecodeUint64 decodes an unsigned 64-bit integer under policy.
func DecodeUint64(r *buf.Reader, policy numpolicy.DeserializePolicy) (uint64, int, error) {
	return decodeUintBits(r, 64, policy)
}

// DecodeInt8 decodes a signed 8-bit integer under policy.
func DecodeInt8(r *buf.Reader, policy numpolicy.DeserializePolicy) (int8, int, error) {
	v, n, err := decodeIntBits(r, 8, policy)
	return int8(v), n, err
}

// DecodeInt16 decodes a signed 16-bit integer under policy.
func DecodeInt16(r *buf.Reader, policy numpolicy.DeserializePolicy) (int16, int, error) {
	v, n, err := decodeIntBits(r, 16, policy)
	return int16(v), n, err
}

// DecodeInt32 decodes a signed 32-bit integer under policy.
func DecodeInt32(r *buf.Reader, policy numpolicy.DeserializePolicy) (int32, int, error) {
	v, n, err := decodeIntBits(r, 32, policy)
	return int32(v), n, err
}

// DecodeInt64 decodes a signed 64-bit integer under policy.
func DecodeInt64(r *buf.Reader, policy numpolicy.DeserializePolicy) (int64, int, error) {
	return decodeIntBits(r, 64, policy)
}
