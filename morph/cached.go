package morph

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedAnalyzer memoizes another Analyzer behind a bounded LRU cache.
// Returned slices are shared with the cache and must not be mutated.
type CachedAnalyzer struct {
	inner Analyzer
	cache *lru.Cache[string, []ParsedToken]
}

var _ Analyzer = (*CachedAnalyzer)(nil)

// Cached wraps analyzer in an LRU of the given size. Sizes below one fall
// back to a small default so the cache stays bounded.
func Cached(analyzer Analyzer, size int) *CachedAnalyzer {
	if size < 1 {
		size = 128
	}
	// lru.New only fails on a non-positive size, which is guarded above.
	cache, _ := lru.New[string, []ParsedToken](size)
	return &CachedAnalyzer{inner: analyzer, cache: cache}
}

func (c *CachedAnalyzer) Translate(expr string) []ParsedToken {
	if tokens, ok := c.cache.Get(expr); ok {
		return tokens
	}
	tokens := c.inner.Translate(expr)
	c.cache.Add(expr, tokens)
	return tokens
}
