package ioweb

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gnames/gnlineage/pkg/lineage"
)

type cacheKey struct {
	query string
	short bool
}

type cacheValue struct {
	lin lineage.Lineage
	err error
}

// cachedFinder memoizes lineages of a finder. Taxonomy data never
// changes while the server runs, so failures are cached as well.
type cachedFinder struct {
	finder  lineage.Finder
	cache   *lru.Cache[cacheKey, cacheValue]
	metrics *metrics
}

func newCachedFinder(
	f lineage.Finder,
	size int,
	m *metrics,
) (*cachedFinder, error) {
	cache, err := lru.New[cacheKey, cacheValue](size)
	if err != nil {
		return nil, err
	}
	return &cachedFinder{finder: f, cache: cache, metrics: m}, nil
}

// Find implements lineage.Finder.
func (cf *cachedFinder) Find(query string, short bool) (lineage.Lineage, error) {
	key := cacheKey{query: strings.ToLower(strings.TrimSpace(query)), short: short}
	if v, ok := cf.cache.Get(key); ok {
		cf.metrics.cacheHits.Inc()
		return v.lin, v.err
	}
	cf.metrics.cacheMisses.Inc()

	lin, err := cf.finder.Find(query, short)
	cf.cache.Add(key, cacheValue{lin: lin, err: err})
	return lin, err
}

// Len returns the number of cached lineages.
func (cf *cachedFinder) Len() int {
	return cf.cache.Len()
}
