package numpolicy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerializePolicyString(t *testing.T) {
	assert.Equal(t, "Exact", Exact.String())
	assert.Equal(t, "LosslessMinimize", LosslessMinimize.String())
	assert.Equal(t, "AggressiveMinimize", AggressiveMinimize.String())
	assert.Equal(t, "Unknown", SerializePolicy(99).String())
}

func TestSerializePolicyDefaultIsExact(t *testing.T) {
	var p SerializePolicy
	assert.Equal(t, Exact, p)
}

func TestDeserializePolicyString(t *testing.T) {
	assert.Equal(t, "Exact", ExactPolicy.String())
	assert.Equal(t, "Lenient", Lenient.String())
	assert.Equal(t, "AggressiveLenient", AggressiveLenient.String())
	assert.Equal(t, "Unknown", DeserializePolicy(99).String())
}

func TestDeserializePolicyDefaultIsExact(t *testing.T) {
	var p DeserializePolicy
	assert.Equal(t, ExactPolicy, p)
}
