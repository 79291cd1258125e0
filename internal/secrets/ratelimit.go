package secrets

import (
	"sync"

	"golang.org/x/time/rate"
)

// limiterEntry pairs a limiter with the per-minute setting it was built
// for, so a changed setting replaces the limiter.
type limiterEntry struct {
	limiter *rate.Limiter
	perMin  int
}

// LimiterRegistry enforces optional per-secret rate limits on the
// use/record-usage path. Safe for concurrent use.
type LimiterRegistry struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
}

// NewLimiterRegistry creates an empty registry.
func NewLimiterRegistry() *LimiterRegistry {
	return &LimiterRegistry{entries: make(map[string]*limiterEntry)}
}

// Allow reports whether one use of the given secret is within its
// configured per-minute limit. A limit of zero means unlimited.
func (r *LimiterRegistry) Allow(secretID string, perMin int) bool {
	if perMin <= 0 {
		return true
	}

	r.mu.Lock()
	entry, ok := r.entries[secretID]
	if !ok || entry.perMin != perMin {
		entry = &limiterEntry{
			limiter: rate.NewLimiter(rate.Limit(float64(perMin)/60.0), perMin),
			perMin:  perMin,
		}
		r.entries[secretID] = entry
	}
	r.mu.Unlock()

	return entry.limiter.Allow()
}

// Forget drops the limiter state for a deleted secret.
func (r *LimiterRegistry) Forget(secretID string) {
	r.mu.Lock()
	delete(r.entries, secretID)
	r.mu.Unlock()
}
