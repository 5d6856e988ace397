package navigator

import (
	"sync"

	"github.com/katalvlaran/stepnav/grid"
	"github.com/katalvlaran/stepnav/stepfield"
)

// stepCache memoizes step fields per destination.
// Entries built against an older terrain version are misses.
type stepCache struct {
	mu      sync.Mutex
	entries map[grid.Point]*stepfield.Field
	hits    int
	misses  int
}

func newStepCache() *stepCache {
	return &stepCache{entries: make(map[grid.Point]*stepfield.Field)}
}

func (c *stepCache) lookup(dest grid.Point, version uint64) (*stepfield.Field, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	f, ok := c.entries[dest]
	if !ok || f.Version() != version {
		c.misses++
		return nil, false
	}
	c.hits++
	return f, true
}

func (c *stepCache) store(f *stepfield.Field) {
	c.mu.Lock()
	c.entries[f.Destination()] = f
	c.mu.Unlock()
}

func (c *stepCache) reset() {
	c.mu.Lock()
	clear(c.entries)
	c.hits, c.misses = 0, 0
	c.mu.Unlock()
}

func (c *stepCache) stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Entries: len(c.entries), Hits: c.hits, Misses: c.misses}
}
