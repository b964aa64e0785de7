package datamodel

import (
	"fmt"
	"reflect"

	"github.com/mpackgo/mpack/buf"
	"github.com/mpackgo/mpack/encoding"
	"github.com/mpackgo/mpack/errs"
	"github.com/mpackgo/mpack/format"
)

var timestampType = reflect.TypeOf(encoding.Timestamp{})

// isOptionShape reports whether t is a generic {Valid bool; Value T}
// wrapper (mpack.Option[T]): any two-field struct with that exact shape,
// detected structurally since datamodel cannot import the root package
// that defines it without a cycle.
func isOptionShape(t reflect.Type) bool {
	if t.Kind() != reflect.Struct || t.NumField() != 2 {
		return false
	}

	f0, f1 := t.Field(0), t.Field(1)

	return f0.Name == "Valid" && f0.Type.Kind() == reflect.Bool && f1.Name == "Value"
}

// Unmarshal decodes data into v, which must be a non-nil pointer.
func Unmarshal(data []byte, v any, opts ...Option) error {
	cfg, err := resolveConfig(opts...)
	if err != nil {
		return err
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("msgpack: Unmarshal requires a non-nil pointer, got %T", v)
	}

	r := buf.NewReader(data)
	_, err = decodeValue(r, rv.Elem(), cfg)

	return err
}

// decodeValue dispatches on v's Go kind, mirroring encodeValue.
func decodeValue(r *buf.Reader, v reflect.Value, cfg *Config) (int, error) {
	switch v.Kind() {
	case reflect.Pointer:
		tag, err := r.PeekTag()
		if err != nil {
			return 0, err
		}
		if tag == format.Nil {
			if _, err := encoding.DecodeNil(r); err != nil {
				return 0, err
			}
			v.Set(reflect.Zero(v.Type()))

			return 1, nil
		}
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}

		return decodeValue(r, v.Elem(), cfg)
	case reflect.Interface:
		if v.NumMethod() != 0 {
			return 0, fmt.Errorf("msgpack: cannot decode into non-empty interface %s", v.Type())
		}

		val, n, err := decodeAnyValue(r, cfg)
		if err != nil {
			return 0, err
		}
		if val == nil {
			v.Set(reflect.Zero(v.Type()))
		} else {
			v.Set(reflect.ValueOf(val))
		}

		return n, nil
	case reflect.Bool:
		b, n, err := encoding.DecodeBool(r)
		if err != nil {
			return 0, err
		}
		v.SetBool(b)

		return n, nil
	case reflect.Int8:
		x, n, err := encoding.DecodeInt8(r, cfg.DeserializePolicy)
		if err != nil {
			return 0, err
		}
		v.SetInt(int64(x))

		return n, nil
	case reflect.Int16:
		x, n, err := encoding.DecodeInt16(r, cfg.DeserializePolicy)
		if err != nil {
			return 0, err
		}
		v.SetInt(int64(x))

		return n, nil
	case reflect.Int32:
		x, n, err := encoding.DecodeInt32(r, cfg.DeserializePolicy)
		if err != nil {
			return 0, err
		}
		v.SetInt(int64(x))

		return n, nil
	case reflect.Int, reflect.Int64:
		x, n, err := encoding.DecodeInt64(r, cfg.DeserializePolicy)
		if err != nil {
			return 0, err
		}
		v.SetInt(x)

		return n, nil
	case reflect.Uint8:
		x, n, err := encoding.DecodeUint8(r, cfg.DeserializePolicy)
		if err != nil {
			return 0, err
		}
		v.SetUint(uint64(x))

		return n, nil
	case reflect.Uint16:
		x, n, err := encoding.DecodeUint16(r, cfg.DeserializePolicy)
		if err != nil {
			return 0, err
		}
		v.SetUint(uint64(x))

		return n, nil
	case reflect.Uint32:
		x, n, err := encoding.DecodeUint32(r, cfg.DeserializePolicy)
		if err != nil {
			return 0, err
		}
		v.SetUint(uint64(x))

		return n, nil
	case reflect.Uint, reflect.Uint64:
		x, n, err := encoding.DecodeUint64(r, cfg.DeserializePolicy)
		if err != nil {
			return 0, err
		}
		v.SetUint(x)

		return n, nil
	case reflect.Float32:
		x, n, err := encoding.DecodeFloat32(r, cfg.DeserializePolicy)
		if err != nil {
			return 0, err
		}
		v.SetFloat(float64(x))

		return n, nil
	case reflect.Float64:
		x, n, err := encoding.DecodeFloat64(r, cfg.DeserializePolicy)
		if err != nil {
			return 0, err
		}
		v.SetFloat(x)

		return n, nil
	case reflect.String:
		s, n, err := encoding.DecodeStrCopy(r)
		if err != nil {
			return 0, err
		}
		v.SetString(s)

		return n, nil
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b, n, err := encoding.DecodeBinCopy(r)
			if err != nil {
				return 0, err
			}
			v.SetBytes(b)

			return n, nil
		}

		return decodeSequence(r, v, cfg)
	case reflect.Array:
		return decodeFixedArray(r, v, cfg)
	case reflect.Map:
		return decodeMapValue(r, v, cfg)
	case reflect.Struct:
		return decodeStruct(r, v, cfg)
	default:
		return 0, fmt.Errorf("msgpack: cannot decode into kind %s", v.Kind())
	}
}

// decodeField decodes one struct field, routing fields tagged
// `mpack:",union=name"` through the registry bound to that name instead
// of decodeValue's generic interface handling (which rejects non-empty
// interfaces, since it has no way to resolve a concrete Variant type on
// its own).
func decodeField(r *buf.Reader, v reflect.Value, fi fieldInfo, cfg *Config) (int, error) {
	if fi.union == "" {
		return decodeValue(r, v, cfg)
	}

	reg, ok := cfg.unionRegistry(fi.union)
	if !ok {
		return 0, fmt.Errorf("msgpack: field %q references unregistered union %q", fi.wireName, fi.union)
	}

	tag, err := r.PeekTag()
	if err != nil {
		return 0, err
	}
	if tag == format.Nil {
		if _, err := encoding.DecodeNil(r); err != nil {
			return 0, err
		}
		v.Set(reflect.Zero(v.Type()))

		return 1, nil
	}

	variant, n, err := reg.DecodeValue(r, cfg)
	if err != nil {
		return 0, err
	}
	v.Set(reflect.ValueOf(variant))

	return n, nil
}

func decodeSequence(r *buf.Reader, v reflect.Value, cfg *Config) (int, error) {
	count, n, err := encoding.DecodeArrayHeader(r)
	if err != nil {
		return 0, err
	}
	total := n

	out := reflect.MakeSlice(v.Type(), count, count)
	for i := 0; i < count; i++ {
		n, err := decodeValue(r, out.Index(i), cfg)
		if err != nil {
			return 0, err
		}
		total += n
	}
	v.Set(out)

	return total, nil
}

func decodeFixedArray(r *buf.Reader, v reflect.Value, cfg *Config) (int, error) {
	count, n, err := encoding.DecodeArrayHeader(r)
	if err != nil {
		return 0, err
	}
	if count != v.Len() {
		return 0, fmt.Errorf("msgpack: array length %d does not match %s length %d", count, v.Type(), v.Len())
	}
	total := n

	for i := 0; i < count; i++ {
		n, err := decodeValue(r, v.Index(i), cfg)
		if err != nil {
			return 0, err
		}
		total += n
	}

	return total, nil
}

func decodeMapValue(r *buf.Reader, v reflect.Value, cfg *Config) (int, error) {
	count, n, err := encoding.DecodeMapHeader(r)
	if err != nil {
		return 0, err
	}
	total := n

	t := v.Type()
	out := reflect.MakeMapWithSize(t, count)

	for i := 0; i < count; i++ {
		key := reflect.New(t.Key()).Elem()
		n, err := decodeValue(r, key, cfg)
		if err != nil {
			return 0, err
		}
		total += n

		val := reflect.New(t.Elem()).Elem()
		n, err = decodeValue(r, val, cfg)
		if err != nil {
			return 0, err
		}
		total += n

		out.SetMapIndex(key, val)
	}
	v.Set(out)

	return total, nil
}

func decodeStruct(r *buf.Reader, v reflect.Value, cfg *Config) (int, error) {
	if v.Type() == timestampType {
		ts, n, err := encoding.DecodeTimestamp(r)
		if err != nil {
			return 0, err
		}
		v.Set(reflect.ValueOf(ts))

		return n, nil
	}

	if isOptionShape(v.Type()) {
		tag, err := r.PeekTag()
		if err != nil {
			return 0, err
		}
		if tag == format.Nil {
			if _, err := encoding.DecodeNil(r); err != nil {
				return 0, err
			}
			v.Set(reflect.Zero(v.Type()))

			return 1, nil
		}

		v.Field(0).SetBool(true)

		return decodeValue(r, v.Field(1), cfg)
	}

	info := lookupTypeInfo(v.Type())

	tag, err := r.PeekTag()
	if err != nil {
		return 0, err
	}

	if info.asTuple || format.ClassifyFamily(tag) == format.FamilyArray {
		return decodeStructFromArray(r, v, info, cfg)
	}

	return decodeStructFromMap(r, v, info, cfg)
}

func decodeStructFromArray(r *buf.Reader, v reflect.Value, info *typeInfo, cfg *Config) (int, error) {
	count, n, err := encoding.DecodeArrayHeader(r)
	if err != nil {
		return 0, err
	}
	total := n

	for i := 0; i < count; i++ {
		if i < len(info.fields) {
			fi := info.fields[i]
			n, err := decodeField(r, v.Field(fi.goIndex), fi, cfg)
			if err != nil {
				return 0, err
			}
			total += n

			continue
		}

		before := r.Pos()
		if err := encoding.Skip(r); err != nil {
			return 0, err
		}
		total += r.Pos() - before
	}

	return total, nil
}

func decodeStructFromMap(r *buf.Reader, v reflect.Value, info *typeInfo, cfg *Config) (int, error) {
	count, n, err := encoding.DecodeMapHeader(r)
	if err != nil {
		return 0, err
	}
	total := n

	seen := make(map[int]bool, len(info.fields))

	for i := 0; i < count; i++ {
		// The key is only used for this lookup and is never retained, so
		// it can be a borrowed view rather than an owned copy.
		key, n, err := encoding.DecodeStr(r)
		if err != nil {
			return 0, err
		}
		total += n

		fi, ok := info.fieldByWireName(key)
		if !ok {
			before := r.Pos()
			if err := encoding.Skip(r); err != nil {
				return 0, err
			}
			total += r.Pos() - before

			continue
		}

		n, err = decodeField(r, v.Field(fi.goIndex), fi, cfg)
		if err != nil {
			return 0, err
		}
		total += n
		seen[fi.goIndex] = true
	}

	for _, fi := range info.fields {
		if !fi.omitEmpty && !seen[fi.goIndex] {
			return 0, errs.MissingField{Name: fi.wireName}
		}
	}

	return total, nil
}

// decodeAnyValue fully materializes the next value as an untyped Go
// value, for decoding into an empty interface{} field: arrays become
// []any, maps become map[string]any, everything else round-trips
// through encoding.DecodeAny.
func decodeAnyValue(r *buf.Reader, cfg *Config) (any, int, error) {
	tag, err := r.PeekTag()
	if err != nil {
		return nil, 0, err
	}

	switch format.ClassifyFamily(tag) {
	case format.FamilyArray:
		count, n, err := encoding.DecodeArrayHeader(r)
		if err != nil {
			return nil, 0, err
		}
		total := n

		out := make([]any, count)
		for i := 0; i < count; i++ {
			elem, n, err := decodeAnyValue(r, cfg)
			if err != nil {
				return nil, 0, err
			}
			out[i] = elem
			total += n
		}

		return out, total, nil
	case format.FamilyMap:
		count, n, err := encoding.DecodeMapHeader(r)
		if err != nil {
			return nil, 0, err
		}
		total := n

		out := make(map[string]any, count)
		for i := 0; i < count; i++ {
			key, n, err := encoding.DecodeStrCopy(r)
			if err != nil {
				return nil, 0, err
			}
			total += n

			val, n, err := decodeAnyValue(r, cfg)
			if err != nil {
				return nil, 0, err
			}
			total += n
			out[key] = val
		}

		return out, total, nil
	default:
		val, n, err := encoding.DecodeAny(r)
		if err != nil {
			return nil, 0, err
		}

		switch val.Kind {
		case encoding.KindNil:
			return nil, n, nil
		case encoding.KindBool:
			return val.Bool, n, nil
		case encoding.KindInt:
			return val.Int, n, nil
		case encoding.KindUint:
			return val.Uint, n, nil
		case encoding.KindFloat:
			return val.Float, n, nil
		case encoding.KindStr:
			return val.Str, n, nil
		case encoding.KindBin:
			return val.Bin, n, nil
		case encoding.KindExt:
			return val.Ext, n, nil
		case encoding.KindTimestamp:
			return val.TS, n, nil
		default:
			return nil, n, nil
		}
	}
}
