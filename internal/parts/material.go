package parts

import (
	"fmt"
	"sync"
)

// SurfaceCache deduplicates identical Surface values so a renderer
// can share one material object across many parts. It is owned by the
// consumer, never by the generator: evicting or bypassing it cannot
// change what Generate returns.
type SurfaceCache struct {
	mu sync.Mutex
	m  map[string]*Surface
}

func NewSurfaceCache() *SurfaceCache {
	return &SurfaceCache{m: make(map[string]*Surface)}
}

// Get returns the shared instance for the given surface value,
// allocating it on first use.
func (c *SurfaceCache) Get(s Surface) *Surface {
	key := fmt.Sprintf("%s|%.4f|%.4f", s.Color, s.Metalness, s.Roughness)
	c.mu.Lock()
	defer c.mu.Unlock()
	if shared, ok := c.m[key]; ok {
		return shared
	}
	shared := &Surface{Color: s.Color, Metalness: s.Metalness, Roughness: s.Roughness}
	c.m[key] = shared
	return shared
}

// Len reports how many distinct surfaces the cache holds.
func (c *SurfaceCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}
