package encoding

import (
	"math"

	"github.com/mpackgo/mpack/buf"
	"github.com/mpackgo/mpack/endian"
	"github.com/mpackgo/mpack/errs"
	"github.com/mpackgo/mpack/format"
	"github.com/mpackgo/mpack/numpolicy"
)

// EncodeFloat32 writes v as a 32-bit float, unless policy is
// AggressiveMinimize and v has an integral value representable as an
// integer, in which case it is written as the shortest integer form
// instead (§4.2).
func EncodeFloat32(w buf.Writer, v float32, policy numpolicy.SerializePolicy) (int, error) {
	if policy == numpolicy.AggressiveMinimize {
		if n, ok, err := encodeFloatAsInt(w, float64(v)); ok {
			return n, err
		}
	}

	return writeTagAndBytes(w, format.Float32, endian.AppendUint32(nil, math.Float32bits(v)))
}

// EncodeFloat64 writes v as a 64-bit float, see EncodeFloat32.
func EncodeFloat64(w buf.Writer, v float64, policy numpolicy.SerializePolicy) (int, error) {
	if policy == numpolicy.AggressiveMinimize {
		if n, ok, err := encodeFloatAsInt(w, v); ok {
			return n, err
		}
	}

	return writeTagAndBytes(w, format.Float64, endian.AppendUint64(nil, math.Float64bits(v)))
}

// encodeFloatAsInt writes v as the shortest integer form if it has an
// integral value representable in <=64 bits. ok reports whether this
// path was taken; when ok is false the caller falls back to the float
// wire form.
func encodeFloatAsInt(w buf.Writer, v float64) (n int, ok bool, err error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, nil
	}
	if v != math.Trunc(v) {
		return 0, false, nil
	}
	if v < math.MinInt64 || v > math.MaxInt64 {
		return 0, false, nil
	}

	n, err = encodeIntMinimal(w, int64(v))
	return n, true, err
}

// decodeRawFloat decodes a value that must be wire-tagged float32 or
// float64, returning it widened to float64. It rewinds on error.
func decodeRawFloat(r *buf.Reader) (float64, int, error) {
	start := r.Pos()

	tag, err := r.PeekTag()
	if err != nil {
		return 0, 0, err
	}

	switch tag {
	case format.Float32:
		b, err := r.Read(5)
		if err != nil {
			r.SeekTo(start)
			return 0, 0, err
		}

		return float64(math.Float32frombits(endian.Uint32(b[1:]))), 5, nil
	case format.Float64:
		b, err := r.Read(9)
		if err != nil {
			r.SeekTo(start)
			return 0, 0, err
		}

		return math.Float64frombits(endian.Uint64(b[1:])), 9, nil
	default:
		return 0, 0, errs.UnexpectedTag{Found: tag, ExpectedFamily: format.FamilyFloat.String()}
	}
}

// DecodeFloat32 decodes a float under policy.
//
// Exact requires a float32 tag. Lenient additionally accepts float64
// where the narrowing to float32 is exact. AggressiveLenient
// additionally accepts any integer wire form with an exact conversion.
func DecodeFloat32(r *buf.Reader, policy numpolicy.DeserializePolicy) (float32, int, error) {
	v, n, err := decodeFloatBits(r, 32, policy)
	return float32(v), n, err
}

// DecodeFloat64 decodes a float under policy, see DecodeFloat32.
func DecodeFloat64(r *buf.Reader, policy numpolicy.DeserializePolicy) (float64, int, error) {
	return decodeFloatBits(r, 64, policy)
}

func decodeFloatBits(r *buf.Reader, bits int, policy numpolicy.DeserializePolicy) (float64, int, error) {
	start := r.Pos()

	if policy == numpolicy.ExactPolicy {
		tag, err := r.PeekTag()
		if err != nil {
			return 0, 0, err
		}
		want := format.Tag(format.Float64)
		if bits == 32 {
			want = format.Float32
		}
		if tag != want {
			return 0, 0, errs.UnexpectedTag{Found: tag, ExpectedFamily: format.FamilyFloat.String()}
		}

		return decodeRawFloat(r)
	}

	v, n, err := decodeRawFloat(r)
	if err == nil {
		if bits == 32 && float64(float32(v)) != v && !math.IsNaN(v) {
			r.SeekTo(start)
			return 0, 0, errs.Overflow{Value: int64(math.Float64bits(v)), Bits: bits}
		}

		return v, n, nil
	}

	if policy != numpolicy.AggressiveLenient {
		return 0, 0, err
	}

	mag, negative, n2, ierr := decodeRawInteger(r)
	if ierr != nil {
		r.SeekTo(start)
		return 0, 0, err
	}
	fv := float64(mag)
	if bits == 32 {
		fv = float64(float32(mag))
	}
	if fv >= 1<<64 || uint64(fv) != mag {
		r.SeekTo(start)
		return 0, 0, errs.Overflow{Value: int64(mag), Bits: bits}
	}
	if negative {
		fv = -fv
	}

	return fv, n2, nil
}
