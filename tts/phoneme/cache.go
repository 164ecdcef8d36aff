package phoneme

import "sync"

// Result is a resolved phoneme sequence along with the tier that
// produced it.
type Result struct {
	Symbols []string
	Source  string
}

// Empty reports whether no phonemes were resolved.
func (r Result) Empty() bool {
	return len(r.Symbols) == 0
}

// Cache stores resolution results keyed by normalized word. Safe for
// concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Result
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]Result)}
}

// Get returns the cached result for word, if any.
func (c *Cache) Get(word string) (Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.entries[word]
	return res, ok
}

// Put stores a result. Copies the symbol slice so callers cannot
// mutate cached state.
func (c *Cache) Put(word string, res Result) {
	symbols := make([]string, len(res.Symbols))
	copy(symbols, res.Symbols)
	res.Symbols = symbols

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[word] = res
}

// Len returns the number of cached words.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
