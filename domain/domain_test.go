package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/noisefield/domain"
	"github.com/katalvlaran/noisefield/field"
)

func TestIdentity(t *testing.T) {
	t.Parallel()

	x, y := domain.Identity{}.Apply(3.5, -2)
	require.Equal(t, float32(3.5), x)
	require.Equal(t, float32(-2), y)
}

func TestOffset(t *testing.T) {
	t.Parallel()

	x, y := domain.NewOffset(10, -5).Apply(1, 2)
	require.Equal(t, float32(11), x)
	require.Equal(t, float32(-3), y)
}

// TestShift perturbs each axis by a module value scaled by strength.
func TestShift(t *testing.T) {
	t.Parallel()

	s := domain.NewShift(field.One, field.Half, 4)

	x, y := s.Apply(0, 0)
	require.Equal(t, float32(4), x)
	require.Equal(t, float32(2), y)

	// Zero strength is the identity.
	x, y = domain.NewShift(field.One, field.One, 0).Apply(7, 9)
	require.Equal(t, float32(7), x)
	require.Equal(t, float32(9), y)
}

// TestCompound applies the first transform, then the second.
func TestCompound(t *testing.T) {
	t.Parallel()

	c := domain.NewCompound(domain.NewOffset(1, 0), domain.NewOffset(0, 2))

	x, y := c.Apply(5, 5)
	require.Equal(t, float32(6), x)
	require.Equal(t, float32(7), y)
}
