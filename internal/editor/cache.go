package editor

// Cache holds content for tabs that are not currently active but whose
// content cannot be recovered from disk: dirty tabs and untitled tabs.
// Clean local tabs are never cached; their content is re-read on demand.
type Cache struct {
	entries map[string]string
}

// NewCache returns an empty content cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]string)}
}

// Put inserts or overwrites the content for id.
func (c *Cache) Put(id, content string) {
	c.entries[id] = content
}

// Get returns the cached content for id without removing it.
func (c *Cache) Get(id string) (string, bool) {
	content, ok := c.entries[id]
	return content, ok
}

// Take returns the cached content for id and removes the entry.
func (c *Cache) Take(id string) (string, bool) {
	content, ok := c.entries[id]
	if ok {
		delete(c.entries, id)
	}
	return content, ok
}

// Remove deletes the entry for id if present (used when a tab becomes
// clean after a save).
func (c *Cache) Remove(id string) {
	delete(c.entries, id)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int { return len(c.entries) }

// Contents returns a copy of the cache as an id → content map.
func (c *Cache) Contents() map[string]string {
	out := make(map[string]string, len(c.entries))
	for id, content := range c.entries {
		out[id] = content
	}
	return out
}
