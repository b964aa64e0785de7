package datamodel

import (
	"fmt"
	"reflect"

	"github.com/mpackgo/mpack/buf"
	"github.com/mpackgo/mpack/encoding"
	"github.com/mpackgo/mpack/errs"
	"github.com/mpackgo/mpack/format"
)

// Variant is a single member of a tagged union: a concrete Go type that
// knows its own wire discriminant.
type Variant interface {
	VariantName() string
}

// UnitVariant marks a Variant that carries no payload, so it is written
// as a bare string (its name) rather than a single-entry map. The marker
// method is exported (unlike an unexported marker method, which only
// types declared inside this package could ever implement) so a
// caller's own variant types can satisfy it.
type UnitVariant interface {
	Variant
	IsUnitVariant()
}

// UnionRegistry maps wire discriminant names to the Go type that decodes
// them, the way a oneof/sum-type deserializer resolves its concrete type
// from a tag carried on the wire.
type UnionRegistry struct {
	byName map[string]reflect.Type
}

// NewUnionRegistry returns an empty registry.
func NewUnionRegistry() *UnionRegistry {
	return &UnionRegistry{byName: make(map[string]reflect.Type)}
}

// Register adds zero's concrete type under the name zero.VariantName()
// reports. zero is never mutated; only its type and discriminant are used.
func (u *UnionRegistry) Register(zero Variant) {
	u.byName[zero.VariantName()] = reflect.TypeOf(zero)
}

// DecodeValue reads one union value and returns the resolved Variant.
func (u *UnionRegistry) DecodeValue(r *buf.Reader, cfg *Config) (Variant, int, error) {
	start := r.Pos()

	tag, err := r.PeekTag()
	if err != nil {
		return nil, 0, err
	}

	if format.ClassifyFamily(tag) == format.FamilyStr {
		name, n, err := encoding.DecodeStrCopy(r)
		if err != nil {
			return nil, 0, err
		}

		t, ok := u.byName[name]
		if !ok {
			r.SeekTo(start)
			return nil, 0, errs.UnknownVariant{Name: name}
		}

		return reflect.New(t).Elem().Interface().(Variant), n, nil
	}

	count, n, err := encoding.DecodeMapHeader(r)
	if err != nil {
		return nil, 0, err
	}
	if count != 1 {
		r.SeekTo(start)
		return nil, 0, fmt.Errorf("msgpack: union map must carry exactly one entry, got %d", count)
	}
	total := n

	name, n, err := encoding.DecodeStrCopy(r)
	if err != nil {
		return nil, 0, err
	}
	total += n

	t, ok := u.byName[name]
	if !ok {
		r.SeekTo(start)
		return nil, 0, errs.UnknownVariant{Name: name}
	}

	ptr := reflect.New(t)
	n, err = decodeValue(r, ptr.Elem(), cfg)
	if err != nil {
		return nil, 0, err
	}
	total += n

	return ptr.Elem().Interface().(Variant), total, nil
}
