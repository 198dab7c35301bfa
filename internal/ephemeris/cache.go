package ephemeris

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/tartampluch/go-jyotish/internal/config"
	"github.com/tartampluch/go-jyotish/internal/vedic"
)

type cacheKey struct {
	body vedic.Body
	// jdMicro is the Julian Day in micro-days (~86 ms resolution).
	jdMicro int64
}

type cacheEntry struct {
	reading Reading
	expires time.Time
}

// Cache memoizes readings of another provider for a fixed TTL.
// Errors are never cached.
type Cache struct {
	next Provider
	ttl  time.Duration
	now  func() time.Time

	mu      sync.Mutex
	entries map[cacheKey]cacheEntry
}

// NewCache wraps next with a TTL cache.
func NewCache(next Provider, ttl time.Duration) *Cache {
	return &Cache{
		next:    next,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[cacheKey]cacheEntry),
	}
}

// PositionAt implements Provider.
func (c *Cache) PositionAt(ctx context.Context, jd float64, body vedic.Body) (Reading, error) {
	key := cacheKey{body: body, jdMicro: int64(math.Round(jd * 1e6))}
	now := c.now()

	c.mu.Lock()
	if e, ok := c.entries[key]; ok && now.Before(e.expires) {
		c.mu.Unlock()
		slog.Debug(config.MsgCacheHit,
			config.LogKeyComponent, config.CompEphemeris,
			config.LogKeyBody, body.String())
		return e.reading, nil
	}
	c.mu.Unlock()

	r, err := c.next.PositionAt(ctx, jd, body)
	if err != nil {
		return Reading{}, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{reading: r, expires: now.Add(c.ttl)}
	c.prune(now)
	c.mu.Unlock()
	return r, nil
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prune(c.now())
	return len(c.entries)
}

// prune drops expired entries. Callers hold mu.
func (c *Cache) prune(now time.Time) {
	for k, e := range c.entries {
		if !now.Before(e.expires) {
			delete(c.entries, k)
		}
	}
}
