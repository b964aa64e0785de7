package encoding

import (
	"unicode/utf8"
	"unsafe"

	"github.com/mpackgo/mpack/buf"
	"github.com/mpackgo/mpack/endian"
	"github.com/mpackgo/mpack/errs"
	"github.com/mpackgo/mpack/format"
)

// EncodeStr writes s using the shortest admissible str form for its
// length (§4.2): fixstr up to 31 bytes, then str8/16/32.
func EncodeStr(w buf.Writer, s string) (int, error) {
	l := len(s)

	var tag format.Tag
	var lenBytes []byte

	switch {
	case l <= 31:
		tag = format.FixStrMin | format.Tag(l)
	case l <= 0xff:
		tag = format.Str8
		lenBytes = []byte{byte(l)}
	case l <= 0xffff:
		tag = format.Str16
		lenBytes = endian.AppendUint16(nil, uint16(l))
	case l <= 0xffffffff:
		tag = format.Str32
		lenBytes = endian.AppendUint32(nil, uint32(l))
	default:
		return 0, errs.TooLong{Length: l}
	}

	n := 1 + len(lenBytes) + l
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
	if err := w.WriteString(s); err != nil {
		return 0, err
	}

	return n, nil
}

// strLen reads a str tag and returns its payload length and the number
// of bytes consumed by tag+length-prefix (not including the payload
// itself). It rewinds on error.
func strLen(r *buf.Reader) (length int, headerLen int, err error) {
	start := r.Pos()

	tag, err := r.PeekTag()
	if err != nil {
		return 0, 0, err
	}

	switch {
	case format.IsFixStr(tag):
		if _, err := r.Read(1); err != nil {
			r.SeekTo(start)
			return 0, 0, err
		}

		return int(tag & 0x1f), 1, nil
	case tag == format.Str8:
		b, err := r.Read(2)
		if err != nil {
			r.SeekTo(start)
			return 0, 0, err
		}

		return int(b[1]), 2, nil
	case tag == format.Str16:
		b, err := r.Read(3)
		if err != nil {
			r.SeekTo(start)
			return 0, 0, err
		}

		return int(endian.Uint16(b[1:])), 3, nil
	case tag == format.Str32:
		b, err := r.Read(5)
		if err != nil {
			r.SeekTo(start)
			return 0, 0, err
		}

		return int(endian.Uint32(b[1:])), 5, nil
	default:
		return 0, 0, errs.UnexpectedTag{Found: tag, ExpectedFamily: format.FamilyStr.String()}
	}
}

// DecodeStr decodes the next str value as a borrowed view into the
// reader's buffer: it must not outlive the buffer passed to NewReader.
// A payload that is not valid UTF-8 fails with errs.InvalidUTF8.
func DecodeStr(r *buf.Reader) (string, int, error) {
	start := r.Pos()

	length, headerLen, err := strLen(r)
	if err != nil {
		return "", 0, err
	}

	payload, err := r.Read(length)
	if err != nil {
		r.SeekTo(start)
		return "", 0, err
	}

	if !utf8.Valid(payload) {
		r.SeekTo(start)
		return "", 0, errs.InvalidUTF8{}
	}

	s := unsafe.String(unsafe.SliceData(payload), len(payload))

	return s, headerLen + length, nil
}
