package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimiterRegistry_Unlimited(t *testing.T) {
	registry := NewLimiterRegistry()

	for i := 0; i < 100; i++ {
		assert.True(t, registry.Allow("s1", 0))
	}
}

func TestLimiterRegistry_EnforcesBurst(t *testing.T) {
	registry := NewLimiterRegistry()

	assert.True(t, registry.Allow("s1", 1))
	assert.False(t, registry.Allow("s1", 1), "second use within the minute is over the limit")

	// Other secrets are tracked independently.
	assert.True(t, registry.Allow("s2", 1))
}

func TestLimiterRegistry_ChangedLimitResets(t *testing.T) {
	registry := NewLimiterRegistry()

	assert.True(t, registry.Allow("s1", 1))
	assert.False(t, registry.Allow("s1", 1))

	// Raising the per-minute setting replaces the limiter.
	assert.True(t, registry.Allow("s1", 10))
}

func TestLimiterRegistry_Forget(t *testing.T) {
	registry := NewLimiterRegistry()

	assert.True(t, registry.Allow("s1", 1))
	assert.False(t, registry.Allow("s1", 1))

	registry.Forget("s1")
	assert.True(t, registry.Allow("s1", 1), "a recreated secret starts fresh")
}
