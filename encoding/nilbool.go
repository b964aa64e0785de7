package encoding

import (
	"github.com/mpackgo/mpack/buf"
	"github.com/mpackgo/mpack/errs"
	"github.com/mpackgo/mpack/format"
)

// EncodeNil writes the one-byte nil tag.
func EncodeNil(w buf.Writer) (int, error) {
	if err := w.Reserve(1); err != nil {
		return 0, err
	}
	if err := w.Write([]byte{format.Nil}); err != nil {
		return 0, err
	}

	return 1, nil
}

// DecodeNil consumes a nil tag.
func DecodeNil(r *buf.Reader) (int, error) {
	start := r.Pos()

	tag, err := r.PeekTag()
	if err != nil {
		return 0, err
	}
	if tag != format.Nil {
		return 0, errs.UnexpectedTag{Found: tag, ExpectedFamily: format.FamilyNil.String()}
	}
	if _, err := r.Read(1); err != nil {
		r.SeekTo(start)
		return 0, err
	}

	return 1, nil
}

// EncodeBool writes the one-byte true/false tag.
func EncodeBool(w buf.Writer, v bool) (int, error) {
	tag := byte(format.False)
	if v {
		tag = format.True
	}

	if err := w.Reserve(1); err != nil {
		return 0, err
	}
	if err := w.Write([]byte{tag}); err != nil {
		return 0, err
	}

	return 1, nil
}

// DecodeBool decodes a true/false tag.
func DecodeBool(r *buf.Reader) (bool, int, error) {
	start := r.Pos()

	tag, err := r.PeekTag()
	if err != nil {
		return false, 0, err
	}

	switch tag {
	case format.False, format.True:
		if _, err := r.Read(1); err != nil {
			r.SeekTo(start)
			return false, 0, err
		}

		return tag == format.True, 1, nil
	default:
		return false, 0, errs.UnexpectedTag{Found: tag, ExpectedFamily: format.FamilyBool.String()}
	}
}
