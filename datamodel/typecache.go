package datamodel

import (
	"reflect"
	"strings"
	"sync"

	"github.com/mpackgo/mpack/internal/collision"
	"github.com/mpackgo/mpack/internal/hash"
)

// fieldInfo records everything the serializer/deserializer need to know
// about one exported struct field.
type fieldInfo struct {
	goIndex   int
	wireName  string
	hash      uint64
	omitEmpty bool
	union     string // registry name, set when the field is a tagged union
}

// typeInfo is the cached reflection summary of one struct type: field
// wire names in declaration order, and an O(1) hash index (internal/hash)
// for decode-time map-key dispatch.
type typeInfo struct {
	fields     []fieldInfo
	byHash     map[uint64]int
	collisions *collision.Tracker
	asTuple    bool
}

var typeCache sync.Map // reflect.Type -> *typeInfo

// lookupTypeInfo returns the cached typeInfo for t, building and caching
// it on first use.
func lookupTypeInfo(t reflect.Type) *typeInfo {
	if cached, ok := typeCache.Load(t); ok {
		return cached.(*typeInfo)
	}

	info := buildTypeInfo(t)
	actual, _ := typeCache.LoadOrStore(t, info)

	return actual.(*typeInfo)
}

// buildTypeInfo walks t's exported fields once, resolving each one's
// wire name from an `mpack:"..."` struct tag (falling back to the Go
// field name), and records an xxHash64 of that name for O(1) decode
// dispatch. A collision between two distinct wire names hashing the
// same is tracked so the deserializer can fall back to a linear name
// compare only for the field names actually affected.
func buildTypeInfo(t reflect.Type) *typeInfo {
	info := &typeInfo{
		byHash:     make(map[uint64]int),
		collisions: collision.NewTracker(),
	}

	for i := range t.NumField() {
		f := t.Field(i)

		tag := f.Tag.Get("mpack")
		name, opts := parseTag(tag)

		if f.Name == "_" {
			if hasOption(opts, "astuple") {
				info.asTuple = true
			}

			continue
		}

		if !f.IsExported() {
			continue
		}
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}

		fi := fieldInfo{
			goIndex:   i,
			wireName:  name,
			hash:      hash.FieldName(name),
			omitEmpty: hasOption(opts, "omitempty"),
		}
		if u, ok := unionOption(opts); ok {
			fi.union = u
		}

		info.fields = append(info.fields, fi)
		info.collisions.Add(fi.hash, fi.wireName)
	}

	for _, fi := range info.fields {
		if !info.collisions.Collided(fi.hash) {
			info.byHash[fi.hash] = fi.goIndex
		}
	}

	return info
}

// fieldByWireName resolves name to a field index, consulting the hash
// index first and falling back to a linear scan only when name's hash
// collided with another field's during buildTypeInfo.
func (ti *typeInfo) fieldByWireName(name string) (fieldInfo, bool) {
	h := hash.FieldName(name)

	if ti.collisions.Collided(h) {
		for _, fi := range ti.fields {
			if fi.wireName == name {
				return fi, true
			}
		}

		return fieldInfo{}, false
	}

	idx, ok := ti.byHash[h]
	if !ok {
		return fieldInfo{}, false
	}
	for _, fi := range ti.fields {
		if fi.goIndex == idx {
			return fi, true
		}
	}

	return fieldInfo{}, false
}

func parseTag(tag string) (name string, opts []string) {
	if tag == "" {
		return "", nil
	}

	parts := strings.Split(tag, ",")
	return parts[0], parts[1:]
}

func hasOption(opts []string, want string) bool {
	for _, o := range opts {
		if o == want {
			return true
		}
	}

	return false
}

func unionOption(opts []string) (string, bool) {
	for _, o := range opts {
		if rest, ok := strings.CutPrefix(o, "union="); ok {
			return rest, true
		}
	}

	return "", false
}
