package shell

const defaultMaxCacheSize = 32

// RenderCache keeps rendered pane bodies, evicting the least recently used.
// Keys must cover everything a body depends on: route, language and width.
type RenderCache struct {
	entries map[string]string
	order   []string // least recently used first
	maxSize int
}

func NewRenderCache() *RenderCache {
	return NewRenderCacheWithSize(defaultMaxCacheSize)
}

func NewRenderCacheWithSize(maxSize int) *RenderCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &RenderCache{
		entries: make(map[string]string),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

func (c *RenderCache) Get(key string) (string, bool) {
	v, ok := c.entries[key]
	if ok {
		c.moveToEnd(key)
	}
	return v, ok
}

func (c *RenderCache) Set(key, rendered string) {
	if _, ok := c.entries[key]; ok {
		c.entries[key] = rendered
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.entries[key] = rendered
	c.order = append(c.order, key)
}

// GetOrRender returns the cached value for key, calling render on a miss.
func (c *RenderCache) GetOrRender(key string, render func() string) string {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := render()
	c.Set(key, v)
	return v
}

func (c *RenderCache) Len() int {
	return len(c.entries)
}

func (c *RenderCache) Clear() {
	c.entries = make(map[string]string)
	c.order = c.order[:0]
}

func (c *RenderCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *RenderCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}
