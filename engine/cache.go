package engine

// cacheKey identifies a segment by its 1-based inclusive column range.
type cacheKey struct {
	start, end int
}

// llCache memoizes oracle values by segment range for one engine
// invocation. It is created fresh per call and discarded at its end,
// so calls never interfere with each other.
//
// llCache is not safe for concurrent use. All access happens on the
// invocation goroutine: parallel oracle calls are batched through
// evaluateAll and their values stored only after the batch completes.
type llCache struct {
	vals map[cacheKey]float64
}

func newLLCache(n int) *llCache {
	// Seed capacity for the common densities: the hierarchical engine
	// touches O(n log n) entries, the exact engine up to n(n+1)/2.
	return &llCache{vals: make(map[cacheKey]float64, 4*n)}
}

func (c *llCache) get(start, end int) (float64, bool) {
	v, ok := c.vals[cacheKey{start, end}]
	return v, ok
}

func (c *llCache) put(start, end int, v float64) {
	c.vals[cacheKey{start, end}] = v
}
