package encoding

import (
	"github.com/mpackgo/mpack/buf"
	"github.com/mpackgo/mpack/endian"
	"github.com/mpackgo/mpack/errs"
	"github.com/mpackgo/mpack/format"
)

// EncodeBin writes b using the shortest admissible bin form for its
// length (§4.2): bin8 up to 0xFF bytes, then bin16, then bin32.
func EncodeBin(w buf.Writer, b []byte) (int, error) {
	l := len(b)

	var tag format.Tag
	var lenBytes []byte

	switch {
	case l <= 0xff:
		tag = format.Bin8
		lenBytes = []byte{byte(l)}
	case l <= 0xffff:
		tag = format.Bin16
		lenBytes = endian.AppendUint16(nil, uint16(l))
	case l <= 0xffffffff:
		tag = format.Bin32
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
	if err := w.Write(lenBytes); err != nil {
		return 0, err
	}
	if err := w.Write(b); err != nil {
		return 0, err
	}

	return n, nil
}

func binLen(r *buf.Reader) (length int, headerLen int, err error) {
	start := r.Pos()

	tag, err := r.PeekTag()
	if err != nil {
		return 0, 0, err
	}

	switch tag {
	case format.Bin8:
		b, err := r.Read(2)
		if err != nil {
			r.SeekTo(start)
			return 0, 0, err
		}

		return int(b[1]), 2, nil
	case format.Bin16:
		b, err := r.Read(3)
		if err != nil {
			r.SeekTo(start)
			return 0, 0, err
		}

		return int(endian.Uint16(b[1:])), 3, nil
	case format.Bin32:
		b, err := r.Read(5)
		if err != nil {
			r.SeekTo(start)
			return 0, 0, err
		}

		return int(endian.Uint32(b[1:])), 5, nil
	default:
		return 0, 0, errs.UnexpectedTag{Found: tag, ExpectedFamily: format.FamilyBin.String()}
	}
}

// DecodeBin decodes the next bin value as a borrowed view into the
// reader's buffer: it must not outlive the buffer passed to NewReader.
func DecodeBin(r *buf.Reader) ([]byte, int, error) {
	start := r.Pos()

	length, headerLen, err := binLen(r)
	if err != nil {
		return nil, 0, err
	}

	payload, err := r.Read(length)
	if err != nil {
		r.SeekTo(start)
		return nil, 0, err
	}

	return payload, headerLen + length, nil
}
