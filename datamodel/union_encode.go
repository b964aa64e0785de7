//go:build !mpack_noalloc

package datamodel

import (
	"reflect"

	"github.com/mpackgo/mpack/buf"
	"github.com/mpackgo/mpack/encoding"
)

// encodeVariant writes v: a UnitVariant as its bare name, any other
// Variant as a single-entry {name: payload} map.
func encodeVariant(w buf.Writer, v Variant, cfg *Config) (int, error) {
	if _, ok := v.(UnitVariant); ok {
		return encoding.EncodeStr(w, v.VariantName())
	}

	n, err := encoding.EncodeMapHeader(w, 1)
	if err != nil {
		return 0, err
	}
	total := n

	n, err = encoding.EncodeStr(w, v.VariantName())
	if err != nil {
		return 0, err
	}
	total += n

	n, err = encodeValue(w, reflect.ValueOf(v), cfg)
	if err != nil {
		return 0, err
	}
	total += n

	return total, nil
}
