// Package hash provides the field-name hash used to dispatch record map
// keys to struct fields in O(1).
package hash

import "github.com/cespare/xxhash/v2"

// FieldName computes the xxHash64 of a record field's wire name.
func FieldName(name string) uint64 {
	return xxhash.Sum64String(name)
}
