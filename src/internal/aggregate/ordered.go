// FILE: loglens/src/internal/aggregate/ordered.go
package aggregate

// Count is a grouping key with its number of occurrences
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// OrderedCounter counts string keys and iterates them in first-seen order.
type OrderedCounter struct {
	entries []Count
	index   map[string]int
}

// NewOrderedCounter creates an empty counter
func NewOrderedCounter() *OrderedCounter {
	return &OrderedCounter{index: make(map[string]int)}
}

// Add increments key, registering it on first sight
func (c *OrderedCounter) Add(key string) {
	if i, ok := c.index[key]; ok {
		c.entries[i].Count++
		return
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, Count{Key: key, Count: 1})
}

// Counts returns a copy of all counts in first-seen order
func (c *OrderedCounter) Counts() []Count {
	out := make([]Count, len(c.entries))
	copy(out, c.entries)
	return out
}
