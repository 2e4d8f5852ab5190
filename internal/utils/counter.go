package utils

import "sort"

// KeyCount is one Counter entry.
type KeyCount struct {
	Key   string
	Count int
}

// Counter tallies string keys and remembers the order in which each key was
// first added, so rankings break ties deterministically.
//
// The zero value is not usable; call NewCounter.
type Counter struct {
	index  map[string]int
	keys   []string
	counts []int
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{index: make(map[string]int)}
}

// Add increments key by one.
func (c *Counter) Add(key string) { c.AddN(key, 1) }

// AddN increments key by n.
func (c *Counter) AddN(key string, n int) {
	i, ok := c.index[key]
	if !ok {
		i = len(c.keys)
		c.index[key] = i
		c.keys = append(c.keys, key)
		c.counts = append(c.counts, 0)
	}
	c.counts[i] += n
}

// Get returns the count for key (0 if absent).
func (c *Counter) Get(key string) int {
	if i, ok := c.index[key]; ok {
		return c.counts[i]
	}
	return 0
}

// Len is the number of distinct keys.
func (c *Counter) Len() int { return len(c.keys) }

// InOrder returns all entries in first-seen order.
func (c *Counter) InOrder() []KeyCount {
	out := make([]KeyCount, len(c.keys))
	for i, k := range c.keys {
		out[i] = KeyCount{Key: k, Count: c.counts[i]}
	}
	return out
}

// MostCommon returns the n highest counts, descending, ties in first-seen
// order. n <= 0 returns every entry.
func (c *Counter) MostCommon(n int) []KeyCount {
	out := c.InOrder()
	sort.SliceStable(out, func(a, b int) bool { return out[a].Count > out[b].Count })
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
