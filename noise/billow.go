// Package noise: billow-shaped gradient noise source.
package noise

import "github.com/chewxy/math32"

// Billow applies |raw|·2-1 to each gradient-noise octave before
// summation, yielding rounded, cloud-like lobes. A shaped octave spans
// [-1,1] like the plain gradient families.
type Billow struct {
	source
}

// NewBillow builds a Billow source from cfg. Fails on invalid parameters.
func NewBillow(cfg Config) (*Billow, error) {
	s, err := newSource(cfg, 1)
	if err != nil {
		return nil, err
	}

	return &Billow{source: s}, nil
}

// Value implements field.Module. O(octaves).
func (b *Billow) Value(x, y float32) float32 {
	x *= b.frequency
	y *= b.frequency

	sum := float32(0)
	amp := float32(1)
	for i := 0; i < b.octaves; i++ {
		sum += (math32.Abs(singlePerlin(x, y, b.seed+int32(i), b.interp))*2 - 1) * amp
		x *= b.lacunarity
		y *= b.lacunarity
		amp *= b.gain
	}

	return b.mapValue(sum)
}
