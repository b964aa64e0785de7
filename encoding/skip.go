package encoding

import (
	"github.com/mpackgo/mpack/buf"
	"github.com/mpackgo/mpack/errs"
	"github.com/mpackgo/mpack/format"
	"github.com/mpackgo/mpack/numpolicy"
)

// DefaultSkipDepth is the recommended recursion cap from §4.7: beyond
// this many nested container levels, Skip fails with errs.DepthExceeded
// instead of growing its worklist without bound.
const DefaultSkipDepth = 1024

// Skip consumes exactly one MessagePack value of any family, descending
// into arrays/maps/ext bodies as needed. It uses an explicit worklist
// instead of Go call-stack recursion, so an adversarially deep input
// fails with errs.DepthExceeded rather than exhausting the goroutine
// stack.
//
// The worklist holds the number of remaining elements still owed at
// each nesting level; every loop iteration consumes one scalar (or
// pushes a new level for a container) until the outermost level's count
// reaches zero.
func Skip(r *buf.Reader) error {
	start := r.Pos()

	// remaining[i] is how many more values must be skipped at depth i
	// before that level is done. The value being skipped right now is
	// always the top of the stack.
	remaining := []int{1}

	for len(remaining) > 0 {
		top := len(remaining) - 1

		if remaining[top] == 0 {
			remaining = remaining[:top]

			continue
		}

		if len(remaining) > DefaultSkipDepth {
			r.SeekTo(start)
			return errs.DepthExceeded{Limit: DefaultSkipDepth}
		}

		tag, err := r.PeekTag()
		if err != nil {
			r.SeekTo(start)
			return err
		}

		family := format.ClassifyFamily(tag)

		switch family {
		case format.FamilyArray:
			n, _, err := DecodeArrayHeader(r)
			if err != nil {
				r.SeekTo(start)
				return err
			}
			remaining[top]--
			if n > 0 {
				remaining = append(remaining, n)
			}
		case format.FamilyMap:
			n, _, err := DecodeMapHeader(r)
			if err != nil {
				r.SeekTo(start)
				return err
			}
			remaining[top]--
			if n > 0 {
				remaining = append(remaining, 2*n)
			}
		default:
			if err := skipScalar(r, tag, family); err != nil {
				r.SeekTo(start)
				return err
			}
			remaining[top]--
		}
	}

	return nil
}

// skipScalar consumes a single non-container value.
func skipScalar(r *buf.Reader, tag byte, family format.Family) error {
	switch family {
	case format.FamilyNil:
		_, err := DecodeNil(r)
		return err
	case format.FamilyBool:
		_, _, err := DecodeBool(r)
		return err
	case format.FamilyUint:
		_, _, err := DecodeUint64(r, numpolicy.Lenient)
		return err
	case format.FamilyInt:
		if format.IsPositiveFixInt(tag) {
			_, _, err := DecodeUint64(r, numpolicy.Lenient)
			return err
		}
		_, _, err := DecodeInt64(r, numpolicy.Lenient)
		return err
	case format.FamilyFloat:
		_, _, err := DecodeFloat64(r, numpolicy.Lenient)
		return err
	case format.FamilyStr:
		// A length-only skip, not DecodeStr: a non-UTF-8 str payload is
		// still a valid value to skip over (e.g. an unknown map key this
		// call is discarding), and UTF-8 validation would reject it.
		length, _, err := strLen(r)
		if err != nil {
			return err
		}
		_, err = r.Read(length)
		return err
	case format.FamilyBin:
		_, _, err := DecodeBin(r)
		return err
	case format.FamilyExt:
		_, _, err := DecodeExt(r)
		return err
	default:
		return errs.InvalidTag{Byte: tag}
	}
}
