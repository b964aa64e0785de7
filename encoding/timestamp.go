package encoding

import (
	"github.com/mpackgo/mpack/buf"
	"github.com/mpackgo/mpack/endian"
	"github.com/mpackgo/mpack/errs"
	"github.com/mpackgo/mpack/format"
)

// Timestamp is a decoded MessagePack timestamp extension value.
type Timestamp struct {
	Sec  int64
	Nsec uint32
}

// EncodeTimestamp writes ts using the narrowest of the three timestamp
// ext encodings (§4.2):
//   - ext 4 (4-byte unsigned seconds) when seconds is in [0, 2^32) and
//     nanoseconds is 0.
//   - ext 8 (30-bit nanos packed with 34-bit seconds) when seconds is in
//     [0, 2^34).
//   - ext 12 (32-bit nanos, 64-bit signed seconds) otherwise.
func EncodeTimestamp(w buf.Writer, ts Timestamp) (int, error) {
	switch {
	case ts.Sec >= 0 && ts.Sec < 1<<32 && ts.Nsec == 0:
		payload := endian.AppendUint32(nil, uint32(ts.Sec))
		return writeExtFixed(w, format.FixExt4, format.TimestampExtType, payload)
	case ts.Sec >= 0 && ts.Sec < 1<<34:
		packed := (uint64(ts.Nsec) << 34) | uint64(ts.Sec)
		payload := endian.AppendUint64(nil, packed)
		return writeExtFixed(w, format.FixExt8, format.TimestampExtType, payload)
	default:
		var payload []byte
		payload = endian.AppendUint32(payload, ts.Nsec)
		payload = endian.AppendUint64(payload, uint64(ts.Sec))
		return writeExtFixed(w, format.Ext8, format.TimestampExtType, payload)
	}
}

// writeExtFixed writes a fixed-size ext value: a fixext tag needs no
// length prefix, while ext8 (used for the 12-byte timestamp form) needs
// a 1-byte length prefix ahead of the type byte and payload.
func writeExtFixed(w buf.Writer, tag format.Tag, typ int8, payload []byte) (int, error) {
	var lenBytes []byte
	if tag == format.Ext8 {
		lenBytes = []byte{byte(len(payload))}
	}

	n := 1 + len(lenBytes) + 1 + len(payload)
	if err := w.Reserve(n); err != nil {
		return 0, err
	}
	if err := w.Write([]byte{tag}); err != nil {
		return 0, err
	}
	if len(lenBytes) > 0 {
		if err := w.Write(lenBytes); err != nil {
			return 0, err
		}
	}
	if err := w.Write([]byte{byte(typ)}); err != nil {
		return 0, err
	}
	if err := w.Write(payload); err != nil {
		return 0, err
	}

	return n, nil
}

// DecodeTimestamp decodes a timestamp ext value in any of its three
// encodings.
func DecodeTimestamp(r *buf.Reader) (Timestamp, int, error) {
	start := r.Pos()

	ext, n, err := DecodeExt(r)
	if err != nil {
		return Timestamp{}, 0, err
	}
	if ext.Type != format.TimestampExtType {
		r.SeekTo(start)
		return Timestamp{}, 0, errs.UnexpectedTag{Found: byte(ext.Type), ExpectedFamily: "timestamp"}
	}

	switch len(ext.Data) {
	case 4:
		return Timestamp{Sec: int64(endian.Uint32(ext.Data))}, n, nil
	case 8:
		packed := endian.Uint64(ext.Data)
		return Timestamp{
			Sec:  int64(packed & ((1 << 34) - 1)),
			Nsec: uint32(packed >> 34),
		}, n, nil
	case 12:
		nsec := endian.Uint32(ext.Data[:4])
		sec := int64(endian.Uint64(ext.Data[4:]))
		return Timestamp{Sec: sec, Nsec: nsec}, n, nil
	default:
		r.SeekTo(start)
		return Timestamp{}, 0, errs.InvalidTag{Byte: byte(ext.Type)}
	}
}
