package encoding

import (
	"github.com/mpackgo/mpack/buf"
	"github.com/mpackgo/mpack/endian"
	"github.com/mpackgo/mpack/errs"
	"github.com/mpackgo/mpack/format"
)

// Extension is a decoded MessagePack ext value: an application type code
// (negative codes are reserved by MessagePack itself, e.g. -1 for
// timestamp) plus a borrowed payload view.
type Extension struct {
	Type int8
	Data []byte
}

// EncodeExt writes typ/data as a fixext form if the payload length is
// 1/2/4/8/16, else as ext8/16/32 by length (§4.2).
func EncodeExt(w buf.Writer, typ int8, data []byte) (int, error) {
	l := len(data)

	var tag format.Tag
	var lenBytes []byte

	switch l {
	case 1:
		tag = format.FixExt1
	case 2:
		tag = format.FixExt2
	case 4:
		tag = format.FixExt4
	case 8:
		tag = format.FixExt8
	case 16:
		tag = format.FixExt16
	default:
		switch {
		case l <= 0xff:
			tag = format.Ext8
			lenBytes = []byte{byte(l)}
		case l <= 0xffff:
			tag = format.Ext16
			lenBytes = endian.AppendUint16(nil, uint16(l))
		case l <= 0xffffffff:
			tag = format.Ext32
			lenBytes = endian.AppendUint32(nil, uint32(l))
		default:
			return 0, errs.TooLong{Length: l}
		}
	}

	n := 1 + len(lenBytes) + 1 + l // tag + [len] + type byte + payload
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
	if err := w.Write(data); err != nil {
		return 0, err
	}

	return n, nil
}

// DecodeExt decodes the next ext value. Data is a borrowed view into
// the reader's buffer, see DecodeBin.
func DecodeExt(r *buf.Reader) (Extension, int, error) {
	start := r.Pos()

	tag, err := r.PeekTag()
	if err != nil {
		return Extension{}, 0, err
	}

	var length, headerLen int

	switch tag {
	case format.FixExt1:
		length, headerLen = 1, 1
	case format.FixExt2:
		length, headerLen = 2, 1
	case format.FixExt4:
		length, headerLen = 4, 1
	case format.FixExt8:
		length, headerLen = 8, 1
	case format.FixExt16:
		length, headerLen = 16, 1
	case format.Ext8:
		b, err := r.Read(2)
		if err != nil {
			r.SeekTo(start)
			return Extension{}, 0, err
		}
		length, headerLen = int(b[1]), 2
	case format.Ext16:
		b, err := r.Read(3)
		if err != nil {
			r.SeekTo(start)
			return Extension{}, 0, err
		}
		length, headerLen = int(endian.Uint16(b[1:])), 3
	case format.Ext32:
		b, err := r.Read(5)
		if err != nil {
			r.SeekTo(start)
			return Extension{}, 0, err
		}
		length, headerLen = int(endian.Uint32(b[1:])), 5
	default:
		return Extension{}, 0, errs.UnexpectedTag{Found: tag, ExpectedFamily: format.FamilyExt.String()}
	}

	if headerLen == 1 {
		if _, err := r.Read(1); err != nil {
			r.SeekTo(start)
			return Extension{}, 0, err
		}
	}

	rest, err := r.Read(1 + length)
	if err != nil {
		r.SeekTo(start)
		return Extension{}, 0, err
	}

	ext := Extension{Type: int8(rest[0]), Data: rest[1:]}

	return ext, headerLen + 1 + length, nil
}
