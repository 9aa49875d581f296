package recommendation

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"dineWise/domain"
)

// DefaultCacheTTL is how long a cached response stays fresh.
const DefaultCacheTTL = 300 * time.Second

type cacheEntry struct {
	value     domain.RecommendationResponse
	createdAt time.Time
}

type CacheStats struct {
	Size    int     `json:"size"`
	Hits    int     `json:"hits"`
	Misses  int     `json:"misses"`
	HitRate float64 `json:"hit_rate"`
}

// ResultCache memoizes recommendation responses by a hash of the full
// normalized request plus the resolved variant. Stale entries are evicted
// lazily on the next lookup; there is no sweeper.
type ResultCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	hits    int
	misses  int

	now func() time.Time // override in tests
}

func NewResultCache(ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ResultCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

type cacheKeyPayload struct {
	Request domain.RecommendationRequest `json:"request"`
	Variant string                       `json:"variant"`
}

// Key derives the cache key for a request under a resolved variant. Two
// requests differing only by variant never collide.
func Key(req domain.RecommendationRequest, variant string) string {
	normalized, _ := json.Marshal(cacheKeyPayload{
		Request: req.Normalized(),
		Variant: variant,
	})
	sum := sha256.Sum256(normalized)
	return hex.EncodeToString(sum[:])[:16]
}

func (c *ResultCache) Get(key string) (domain.RecommendationResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if ok && c.now().Sub(entry.createdAt) < c.ttl {
		c.hits++
		return entry.value, true
	}
	if ok {
		delete(c.entries, key)
	}
	c.misses++
	return domain.RecommendationResponse{}, false
}

func (c *ResultCache) Set(key string, value domain.RecommendationResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{value: value, createdAt: c.now()}
}

func (c *ResultCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := c.hits + c.misses
	rate := 0.0
	if total > 0 {
		rate = round1(float64(c.hits) / float64(total) * 100)
	}

	return CacheStats{
		Size:    len(c.entries),
		Hits:    c.hits,
		Misses:  c.misses,
		HitRate: rate,
	}
}

func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry)
	c.hits = 0
	c.misses = 0
}
