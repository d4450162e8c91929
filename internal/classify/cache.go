package classify

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is large enough that the working set of one map file
// (a few hundred distinct values, most of them "0", "1" and small vectors)
// stays resident.
const DefaultCacheSize = 4096

// Cached memoizes Classify. Entity lumps repeat a small set of raw values
// thousands of times, so a per-worker cache skips most of the parse probes.
// Classification is pure, so memoization cannot change results.
type Cached struct {
	cache *lru.Cache[string, TypeKind]
}

// NewCached creates a memoized classifier with the given cache size.
func NewCached(size int) (*Cached, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}

	cache, err := lru.New[string, TypeKind](size)
	if err != nil {
		return nil, err
	}

	return &Cached{cache: cache}, nil
}

// Classify returns the same result as the package-level Classify.
func (c *Cached) Classify(raw string) TypeKind {
	if k, ok := c.cache.Get(raw); ok {
		return k
	}

	k := Classify(raw)
	c.cache.Add(raw, k)

	return k
}
