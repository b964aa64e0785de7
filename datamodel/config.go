// Package datamodel is the reflection-based structured-data adapter
// that drives the encoding package's typed encoders/decoders from Go
// values: records as maps or tuples, sequences, options, and tagged
// unions.
//
// Unlike the core encoding/buf/format packages, datamodel allocates:
// reflect.Value traversal, the per-type field cache, and any owned
// string/slice destination all require it. This is the explicit
// carve-out in §5 of the allocation model. Under the mpack_noalloc
// build tag, Marshal (and the rest of the encode path) is compiled out
// entirely, and Unmarshal rejects any owned string/[]byte destination
// with errs.BorrowRequired rather than copying.
package datamodel

import (
	"github.com/mpackgo/mpack/internal/options"
	"github.com/mpackgo/mpack/numpolicy"
)

// Config holds the per-call policy knobs a Marshal/Unmarshal resolves
// against. It is always constructed fresh from Options and never shared
// as global state, per §5.
type Config struct {
	SerializePolicy   numpolicy.SerializePolicy
	DeserializePolicy numpolicy.DeserializePolicy
	unions            map[string]*UnionRegistry
}

// unionRegistry looks up the registry bound to a `mpack:",union=name"` tag.
func (c *Config) unionRegistry(name string) (*UnionRegistry, bool) {
	reg, ok := c.unions[name]
	return reg, ok
}

func newConfig() *Config {
	return &Config{
		SerializePolicy:   numpolicy.Exact,
		DeserializePolicy: numpolicy.ExactPolicy,
	}
}

// Option configures a Config. See WithSerializePolicy/WithDeserializePolicy.
type Option = options.Option[*Config]

// WithSerializePolicy overrides the default Exact serialize policy.
func WithSerializePolicy(p numpolicy.SerializePolicy) Option {
	return options.NoError(func(c *Config) { c.SerializePolicy = p })
}

// WithDeserializePolicy overrides the default Exact deserialize policy.
func WithDeserializePolicy(p numpolicy.DeserializePolicy) Option {
	return options.NoError(func(c *Config) { c.DeserializePolicy = p })
}

// WithUnionRegistry binds reg under name, so any struct field tagged
// `mpack:",union=name"` dispatches through it on decode. Multiple
// registries may be bound under distinct names in one call.
func WithUnionRegistry(name string, reg *UnionRegistry) Option {
	return options.NoError(func(c *Config) {
		if c.unions == nil {
			c.unions = make(map[string]*UnionRegistry)
		}
		c.unions[name] = reg
	})
}

func resolveConfig(opts ...Option) (*Config, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
