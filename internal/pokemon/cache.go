package pokemon

import "sync"

// NameCache holds localized names for the process lifetime. The reference
// data upstream is effectively immutable, so there is no eviction; the
// cache is an explicit dependency of the controller rather than package
// state.
type NameCache struct {
	mu    sync.RWMutex
	names map[int]string
}

func NewNameCache() *NameCache {
	return &NameCache{names: make(map[int]string)}
}

func (c *NameCache) Get(id int) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	name, ok := c.names[id]
	return name, ok
}

func (c *NameCache) Set(id int, name string) {
	c.mu.Lock()
	c.names[id] = name
	c.mu.Unlock()
}

func (c *NameCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.names)
}
