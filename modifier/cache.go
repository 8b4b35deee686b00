// Package modifier: single-slot memo.
package modifier

import "github.com/katalvlaran/noisefield/field"

// Cache memoizes the last (x, y, value) triple of its child. A query
// whose coordinates match the slot bit-for-bit returns the stored value
// without re-invoking the child; any other query evaluates, stores and
// returns. Depth-1, width-1: it pays off when a composite queries the
// same child twice at one coordinate (selectors do), not as a general
// cache.
//
// The slot is deliberately unsynchronized: do not share one Cache across
// goroutines without external locking. Bounds are the child's own.
type Cache struct {
	source field.Module
	min    float32
	max    float32

	x      float32
	y      float32
	value  float32
	filled bool
}

// NewCache builds a Cache around source.
func NewCache(source field.Module) (*Cache, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	return &Cache{source: source, min: source.MinValue(), max: source.MaxValue()}, nil
}

// Value implements field.Module.
func (c *Cache) Value(x, y float32) float32 {
	if c.filled && x == c.x && y == c.y {
		return c.value
	}

	v := c.source.Value(x, y)
	c.x, c.y, c.value = x, y, v
	c.filled = true

	return v
}

// MinValue implements field.Module.
func (c *Cache) MinValue() float32 { return c.min }

// MaxValue implements field.Module.
func (c *Cache) MaxValue() float32 { return c.max }
