package state

import "github.com/mmcdole/muse/internal/domain"

// Counters are per-field change counters observed by the rendering layer.
// They only ever increase.
type Counters struct {
	values map[domain.Field]uint64
}

// NewCounters creates zeroed counters
func NewCounters() *Counters {
	return &Counters{values: make(map[domain.Field]uint64)}
}

// Bump increments f by one
func (c *Counters) Bump(f domain.Field) {
	c.values[f]++
}

// Get returns the current value of f
func (c *Counters) Get(f domain.Field) uint64 {
	return c.values[f]
}

// Snapshot returns a copy of every non-zero counter
func (c *Counters) Snapshot() map[domain.Field]uint64 {
	out := make(map[domain.Field]uint64, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}
