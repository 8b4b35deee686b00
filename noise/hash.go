// Package noise: seeded integer-lattice hashing.
//
// All arithmetic is int32 with wraparound (two's complement), so hashes
// are reproducible bit-for-bit across platforms. The scheme: XOR the seed
// with each coordinate multiplied by a large odd prime, then scramble via
// repeated multiplication and a shift/XOR finisher.
package noise

const (
	xPrime int32 = 1619
	yPrime int32 = 31337
	// scramble is the post-mix multiplier applied to the cubed hash.
	scramble int32 = 60493
)

// hash2D mixes (x, y) under seed into a well-distributed int32.
func hash2D(seed, x, y int32) int32 {
	h := seed
	h ^= xPrime * x
	h ^= yPrime * y

	h = h * h * h * scramble
	h = (h >> 13) ^ h

	return h
}

// valCoord2D maps the lattice point (x, y) under seed into [-1, 1).
func valCoord2D(seed, x, y int32) float32 {
	n := seed
	n ^= xPrime * x
	n ^= yPrime * y

	return float32(n*n*n*scramble) / float32(2147483648.0)
}

// gradCoord2D selects a gradient for the lattice point (x, y) under seed
// and returns its dot product with the fractional offset (xd, yd).
func gradCoord2D(seed, x, y int32, xd, yd float32) float32 {
	g := grad2D[hash2D(seed, x, y)&7]

	return xd*g[0] + yd*g[1]
}

// fastFloor truncates toward negative infinity.
func fastFloor(f float32) int32 {
	if f >= 0 {
		return int32(f)
	}

	return int32(f) - 1
}

// fastRound rounds half away from zero.
func fastRound(f float32) int32 {
	if f >= 0 {
		return int32(f + 0.5)
	}

	return int32(f - 0.5)
}
