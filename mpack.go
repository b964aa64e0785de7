// Package mpack is a MessagePack codec built for constrained and
// no-heap environments: encode/decode directly against a caller-owned
// byte slice (package buf), with a reflection-based struct/slice/map
// adapter (package datamodel) for callers who want Marshal/Unmarshal
// convenience instead of driving package encoding by hand.
//
// # Package structure
//
// This package provides convenient top-level wrappers around the
// datamodel package, mirroring its Marshal/Unmarshal signatures. For
// allocation-free encoding against a fixed buffer, or fine-grained
// control over wire forms, use the encoding/buf packages directly.
//
// Basic usage:
//
//	type Event struct {
//	    Name string `mpack:"name"`
//	    Code int32  `mpack:"code"`
//	}
//
//	data, err := mpack.Marshal(&Event{Name: "tick", Code: 1})
//	var got Event
//	err = mpack.Unmarshal(data, &got)
package mpack

import (
	"github.com/mpackgo/mpack/datamodel"
	"github.com/mpackgo/mpack/numpolicy"
)

// ConfigOption configures a Marshal/Unmarshal call. See
// WithSerializePolicy and WithDeserializePolicy.
type ConfigOption = datamodel.Option

// Unmarshal decodes data into v, which must be a non-nil pointer. Under
// the mpack_noalloc build tag, a struct field whose Go type needs an
// owned copy (string, []byte) fails with errs.BorrowRequired rather
// than allocating.
func Unmarshal(data []byte, v any, opts ...ConfigOption) error {
	return datamodel.Unmarshal(data, v, opts...)
}

// WithSerializePolicy overrides the default Exact serialize policy (§4.5).
func WithSerializePolicy(p numpolicy.SerializePolicy) ConfigOption {
	return datamodel.WithSerializePolicy(p)
}

// WithDeserializePolicy overrides the default Exact deserialize policy (§4.5).
func WithDeserializePolicy(p numpolicy.DeserializePolicy) ConfigOption {
	return datamodel.WithDeserializePolicy(p)
}

// Variant is a single member of a tagged union: a concrete Go type that
// knows its own wire discriminant. A struct field of interface type
// tagged `mpack:",union=name"` decodes through the UnionRegistry bound
// to that name by WithUnionRegistry.
type Variant = datamodel.Variant

// UnitVariant marks a Variant that carries no payload, so it is written
// as a bare string (its name) rather than a single-entry map.
type UnitVariant = datamodel.UnitVariant

// UnionRegistry maps wire discriminant names to the Go type that decodes
// them.
type UnionRegistry = datamodel.UnionRegistry

// NewUnionRegistry returns an empty UnionRegistry.
func NewUnionRegistry() *UnionRegistry {
	return datamodel.NewUnionRegistry()
}

// WithUnionRegistry binds reg under name for a Marshal/Unmarshal call, so
// any struct field tagged `mpack:",union=name"` dispatches through it.
func WithUnionRegistry(name string, reg *UnionRegistry) ConfigOption {
	return datamodel.WithUnionRegistry(name, reg)
}

// Option is a generic none/some wrapper for optional fields whose Go
// type cannot be expressed as a pointer (e.g. an option of an
// interface-typed union field). Datamodel recognizes any two-field
// {Valid bool; Value T} struct shape and encodes/decodes it as nil or
// the wrapped value, so Option[T] composes with Marshal/Unmarshal
// without special-casing in datamodel beyond that shape check.
type Option[T any] struct {
	Valid bool
	Value T
}

// Some returns a populated Option.
func Some[T any](v T) Option[T] { return Option[T]{Valid: true, Value: v} }

// None returns an empty Option.
func None[T any]() Option[T] { return Option[T]{} }

// Get returns the wrapped value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.Value, o.Valid }
