// Package numpolicy defines the number-serialization and
// number-deserialization policies of §4.5: value-type configuration
// knobs, not global state, passed by value into encoder/decoder
// constructors in the encoding package.
package numpolicy

// SerializePolicy selects how aggressively an integer or float encoder
// narrows its wire form.
type SerializePolicy uint8

const (
	// Exact writes the wire form matching the source width exactly
	// (a uint32 source always writes the uint32 tag). This is the
	// single authoritative default; Lossless/AggressiveMinimize are
	// explicit opt-ins.
	Exact SerializePolicy = iota
	// LosslessMinimize applies the shortest-form rules of §4.2 to
	// integers, preserving signedness and exact value.
	LosslessMinimize
	// AggressiveMinimize additionally rewrites a float with an
	// integral value representable in <=64 bits as an integer.
	AggressiveMinimize
)

func (p SerializePolicy) String() string {
	switch p {
	case Exact:
		return "Exact"
	case LosslessMinimize:
		return "LosslessMinimize"
	case AggressiveMinimize:
		return "AggressiveMinimize"
	default:
		return "Unknown"
	}
}

// DeserializePolicy selects how strictly a decoder matches the wire
// form it finds against the domain type requested.
type DeserializePolicy uint8

const (
	// ExactPolicy requires the wire form to match the requested
	// domain type exactly (a uint16 request only accepts a uint16 tag).
	ExactPolicy DeserializePolicy = iota
	// Lenient accepts any integer wire form, narrowing if the value
	// fits, and accepts float32<->float64 where the conversion is exact.
	Lenient
	// AggressiveLenient additionally accepts an integer wire form
	// where a float was requested (exact conversion) and a float wire
	// form where an integer was requested, provided the float has an
	// integral value that fits.
	AggressiveLenient
)

func (p DeserializePolicy) String() string {
	switch p {
	case ExactPolicy:
		return "Exact"
	case Lenient:
		return "Lenient"
	case AggressiveLenient:
		return "AggressiveLenient"
	default:
		return "Unknown"
	}
}
