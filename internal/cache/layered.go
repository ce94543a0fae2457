package cache

// LayeredCache keeps a memory layer in front of a persistent store
type LayeredCache struct {
	memory Cache
	store  Cache
}

// NewLayeredCache creates a layered cache over store
func NewLayeredCache(store Cache) *LayeredCache {
	return &LayeredCache{
		memory: NewMemoryCache(),
		store:  store,
	}
}

// Get checks memory first, then the store
func (c *LayeredCache) Get(key string) ([]byte, bool) {
	if val, found := c.memory.Get(key); found {
		return val, true
	}

	if val, found := c.store.Get(key); found {
		_ = c.memory.Set(key, val)
		return val, true
	}

	return nil, false
}

// Set writes through to the store, then to memory
func (c *LayeredCache) Set(key string, value []byte) error {
	if err := c.store.Set(key, value); err != nil {
		return err
	}
	return c.memory.Set(key, value)
}

// Delete removes a value from both layers
func (c *LayeredCache) Delete(key string) error {
	_ = c.memory.Delete(key)
	return c.store.Delete(key)
}

// Clear removes all values from both layers
func (c *LayeredCache) Clear() error {
	_ = c.memory.Clear()
	return c.store.Clear()
}
