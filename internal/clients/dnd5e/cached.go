package dnd5e

import "sync"

type cachedClient struct {
	client Client

	mu       sync.RWMutex
	monsters map[string]*Monster
}

// NewCachedClient wraps a client with a cache of monsters by key. Errors are
// not cached.
func NewCachedClient(c Client) Client {
	if c == nil {
		panic("dnd5e client is required")
	}
	return &cachedClient{
		client:   c,
		monsters: make(map[string]*Monster),
	}
}

func (c *cachedClient) GetMonster(key string) (*Monster, error) {
	c.mu.RLock()
	cached, ok := c.monsters[key]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	monster, err := c.client.GetMonster(key)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.monsters[key] = monster
	c.mu.Unlock()

	return monster, nil
}
