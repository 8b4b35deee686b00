package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/noisefield/builder"
	"github.com/katalvlaran/noisefield/field"
	"github.com/katalvlaran/noisefield/noise"
)

// sample evaluates m over a short sweep for output comparison.
func sample(m field.Module) [8]float32 {
	var out [8]float32
	for i := range out {
		out[i] = m.Value(float32(i)*13.7, float32(i)*-7.3)
	}

	return out
}

func TestBuildAllKinds(t *testing.T) {
	t.Parallel()

	kinds := []builder.Kind{
		builder.Perlin, builder.Simplex, builder.Ridge, builder.Billow,
		builder.Cubic, builder.Cell, builder.CellEdge, builder.Sin,
		builder.Rand, builder.Constant,
	}
	for _, k := range kinds {
		m, err := builder.New().Build(k)
		require.NoError(t, err, k.String())
		require.NotNil(t, m, k.String())
		require.LessOrEqual(t, m.MinValue(), m.MaxValue(), k.String())
	}
}

func TestBuildMatchesDirectConstruction(t *testing.T) {
	t.Parallel()

	cfg := noise.DefaultConfig()
	cfg.Seed = 42
	cfg.Octaves = 4
	cfg.Frequency = 0.05

	direct, err := noise.NewPerlin(cfg)
	require.NoError(t, err)

	built, err := builder.New().Seed(42).Octaves(4).Frequency(0.05).Perlin()
	require.NoError(t, err)

	require.Equal(t, sample(direct), sample(built))
}

// TestSnapshotIsolation: mutating the builder after Build must not change
// modules already constructed.
func TestSnapshotIsolation(t *testing.T) {
	t.Parallel()

	b := builder.New().Seed(7)
	first, err := b.Perlin()
	require.NoError(t, err)
	before := sample(first)

	b.Seed(9000).Octaves(5).Frequency(0.5)

	require.Equal(t, before, sample(first))

	second, err := b.Perlin()
	require.NoError(t, err)
	require.NotEqual(t, before, sample(second))
}

// TestRidgeDefaultGain: Ridge picks up its own gain default until Gain is
// called explicitly.
func TestRidgeDefaultGain(t *testing.T) {
	t.Parallel()

	cfg := noise.DefaultConfig()
	cfg.Gain = noise.DefaultRidgeGain
	want, err := noise.NewRidge(cfg)
	require.NoError(t, err)

	got, err := builder.New().Ridge()
	require.NoError(t, err)
	require.Equal(t, sample(want), sample(got))

	// An explicit gain overrides the Ridge default.
	cfg.Gain = 0.5
	want, err = noise.NewRidge(cfg)
	require.NoError(t, err)

	got, err = builder.New().Gain(0.5).Ridge()
	require.NoError(t, err)
	require.Equal(t, sample(want), sample(got))
}

func TestScaleIsInverseFrequency(t *testing.T) {
	t.Parallel()

	byScale, err := builder.New().Scale(100).Perlin()
	require.NoError(t, err)
	byFreq, err := builder.New().Frequency(0.01).Perlin()
	require.NoError(t, err)

	require.Equal(t, sample(byFreq), sample(byScale))
}

func TestCellFuncSelection(t *testing.T) {
	t.Parallel()

	cfg := noise.DefaultConfig()
	want, err := noise.NewCell(cfg, noise.CellDistance, noise.Manhattan)
	require.NoError(t, err)

	got, err := builder.New().CellFunc(noise.CellDistance).DistFunc(noise.Manhattan).Cell()
	require.NoError(t, err)
	require.Equal(t, sample(want), sample(got))
}

func TestConstantUsesValue(t *testing.T) {
	t.Parallel()

	m, err := builder.New().Value(0.37).Constant()
	require.NoError(t, err)
	require.Equal(t, float32(0.37), m.Value(5, -5))
	require.Equal(t, float32(0.37), m.MinValue())
	require.Equal(t, float32(0.37), m.MaxValue())
}

func TestSourceSlot(t *testing.T) {
	t.Parallel()

	b := builder.New()
	require.Equal(t, field.Zero, b.WrappedSource())

	b.Source(field.Half)
	require.Equal(t, field.Half, b.WrappedSource())
}

// TestBuildFailsLoudly: invalid parameters and unknown kinds surface as
// wrapped sentinel errors with no default fallback.
func TestBuildFailsLoudly(t *testing.T) {
	t.Parallel()

	_, err := builder.New().Octaves(0).Perlin()
	require.Error(t, err)
	require.True(t, errors.Is(err, noise.ErrBadOctaves))

	_, err = builder.New().Frequency(0).Simplex()
	require.True(t, errors.Is(err, noise.ErrBadFrequency))

	_, err = builder.New().Build(builder.Kind(99))
	require.True(t, errors.Is(err, builder.ErrUnknownKind))
}
