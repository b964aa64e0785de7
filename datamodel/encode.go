//go:build !mpack_noalloc

package datamodel

import (
	"fmt"
	"reflect"

	"github.com/mpackgo/mpack/buf"
	"github.com/mpackgo/mpack/encoding"
)

// Marshal encodes v into a freshly allocated byte slice: a pooled
// growable writer absorbs the unknown final size, and only the result
// is copied out. Unavailable under the mpack_noalloc build tag; drive
// package encoding directly against a buf.SliceWriter instead.
func Marshal(v any, opts ...Option) ([]byte, error) {
	cfg, err := resolveConfig(opts...)
	if err != nil {
		return nil, err
	}

	w := buf.NewGrowableWriter()
	defer w.Release()

	if _, err := encodeValue(w, reflect.ValueOf(v), cfg); err != nil {
		return nil, err
	}

	out := make([]byte, w.Written())
	copy(out, w.Bytes())

	return out, nil
}

// encodeValue dispatches on v's Go kind to the matching encoding package
// function, recursing into composite kinds (pointer, interface, slice,
// array, map, struct).
func encodeValue(w buf.Writer, v reflect.Value, cfg *Config) (int, error) {
	if !v.IsValid() {
		return encoding.EncodeNil(w)
	}

	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return encoding.EncodeNil(w)
		}

		return encodeValue(w, v.Elem(), cfg)
	case reflect.Interface:
		if v.IsNil() {
			return encoding.EncodeNil(w)
		}
		if variant, ok := v.Interface().(Variant); ok {
			return encodeVariant(w, variant, cfg)
		}

		return encodeValue(w, v.Elem(), cfg)
	case reflect.Bool:
		return encoding.EncodeBool(w, v.Bool())
	case reflect.Int8:
		return encoding.EncodeInt8(w, int8(v.Int()), cfg.SerializePolicy)
	case reflect.Int16:
		return encoding.EncodeInt16(w, int16(v.Int()), cfg.SerializePolicy)
	case reflect.Int32:
		return encoding.EncodeInt32(w, int32(v.Int()), cfg.SerializePolicy)
	case reflect.Int, reflect.Int64:
		return encoding.EncodeInt64(w, v.Int(), cfg.SerializePolicy)
	case reflect.Uint8:
		return encoding.EncodeUint8(w, uint8(v.Uint()), cfg.SerializePolicy)
	case reflect.Uint16:
		return encoding.EncodeUint16(w, uint16(v.Uint()), cfg.SerializePolicy)
	case reflect.Uint32:
		return encoding.EncodeUint32(w, uint32(v.Uint()), cfg.SerializePolicy)
	case reflect.Uint, reflect.Uint64:
		return encoding.EncodeUint64(w, v.Uint(), cfg.SerializePolicy)
	case reflect.Float32:
		return encoding.EncodeFloat32(w, float32(v.Float()), cfg.SerializePolicy)
	case reflect.Float64:
		return encoding.EncodeFloat64(w, v.Float(), cfg.SerializePolicy)
	case reflect.String:
		return encoding.EncodeStr(w, v.String())
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return encoding.EncodeBin(w, v.Bytes())
		}

		return encodeSequence(w, v, cfg)
	case reflect.Array:
		return encodeSequence(w, v, cfg)
	case reflect.Map:
		return encodeMapValue(w, v, cfg)
	case reflect.Struct:
		return encodeStruct(w, v, cfg)
	default:
		return 0, fmt.Errorf("msgpack: cannot encode value of kind %s", v.Kind())
	}
}

func encodeSequence(w buf.Writer, v reflect.Value, cfg *Config) (int, error) {
	n, err := encoding.EncodeArrayHeader(w, v.Len())
	if err != nil {
		return 0, err
	}
	total := n

	for i := 0; i < v.Len(); i++ {
		n, err := encodeValue(w, v.Index(i), cfg)
		if err != nil {
			return 0, err
		}
		total += n
	}

	return total, nil
}

func encodeMapValue(w buf.Writer, v reflect.Value, cfg *Config) (int, error) {
	n, err := encoding.EncodeMapHeader(w, v.Len())
	if err != nil {
		return 0, err
	}
	total := n

	iter := v.MapRange()
	for iter.Next() {
		n, err := encodeValue(w, iter.Key(), cfg)
		if err != nil {
			return 0, err
		}
		total += n

		n, err = encodeValue(w, iter.Value(), cfg)
		if err != nil {
			return 0, err
		}
		total += n
	}

	return total, nil
}

func encodeStruct(w buf.Writer, v reflect.Value, cfg *Config) (int, error) {
	if v.Type() == timestampType {
		return encoding.EncodeTimestamp(w, v.Interface().(encoding.Timestamp))
	}

	if isOptionShape(v.Type()) {
		if !v.Field(0).Bool() {
			return encoding.EncodeNil(w)
		}

		return encodeValue(w, v.Field(1), cfg)
	}

	info := lookupTypeInfo(v.Type())

	if info.asTuple {
		n, err := encoding.EncodeArrayHeader(w, len(info.fields))
		if err != nil {
			return 0, err
		}
		total := n

		for _, fi := range info.fields {
			n, err := encodeValue(w, v.Field(fi.goIndex), cfg)
			if err != nil {
				return 0, err
			}
			total += n
		}

		return total, nil
	}

	included := make([]fieldInfo, 0, len(info.fields))
	for _, fi := range info.fields {
		if fi.omitEmpty && v.Field(fi.goIndex).IsZero() {
			continue
		}

		included = append(included, fi)
	}

	n, err := encoding.EncodeMapHeader(w, len(included))
	if err != nil {
		return 0, err
	}
	total := n

	for _, fi := range included {
		n, err := encoding.EncodeStr(w, fi.wireName)
		if err != nil {
			return 0, err
		}
		total += n

		n, err = encodeValue(w, v.Field(fi.goIndex), cfg)
		if err != nil {
			return 0, err
		}
		total += n
	}

	return total, nil
}
