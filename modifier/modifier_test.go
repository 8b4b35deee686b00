package modifier_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/noisefield/domain"
	"github.com/katalvlaran/noisefield/field"
	"github.com/katalvlaran/noisefield/modifier"
)

// rangeModule reports declared bounds independently of its coordinate-
// driven value, so bound folding can be tested against known ranges.
type rangeModule struct {
	fn  func(x, y float32) float32
	min float32
	max float32
}

func (r *rangeModule) Value(x, y float32) float32 { return r.fn(x, y) }
func (r *rangeModule) MinValue() float32          { return r.min }
func (r *rangeModule) MaxValue() float32          { return r.max }

// unit returns x as the value over the canonical [0,1] range.
func unit() *rangeModule {
	return &rangeModule{fn: func(x, _ float32) float32 { return x }, min: 0, max: 1}
}

func TestAbsFoldsBounds(t *testing.T) {
	t.Parallel()

	straddling := &rangeModule{fn: func(x, _ float32) float32 { return x }, min: -2, max: 3}
	a, err := modifier.NewAbs(straddling)
	require.NoError(t, err)
	require.Equal(t, float32(0), a.MinValue())
	require.Equal(t, float32(3), a.MaxValue())
	require.Equal(t, float32(1.5), a.Value(-1.5, 0))

	negative := &rangeModule{fn: func(x, _ float32) float32 { return x }, min: -3, max: -1}
	a, err = modifier.NewAbs(negative)
	require.NoError(t, err)
	require.Equal(t, float32(1), a.MinValue())
	require.Equal(t, float32(3), a.MaxValue())
}

func TestInvertMirrorsWithinBounds(t *testing.T) {
	t.Parallel()

	inv, err := modifier.NewInvert(unit())
	require.NoError(t, err)

	require.Equal(t, float32(1), inv.Value(0, 0))
	require.Equal(t, float32(0), inv.Value(1, 0))
	require.Equal(t, float32(0.75), inv.Value(0.25, 0))
	require.Equal(t, float32(0), inv.MinValue())
	require.Equal(t, float32(1), inv.MaxValue())
}

func TestBiasShiftsValueAndBounds(t *testing.T) {
	t.Parallel()

	b, err := modifier.NewBias(unit(), 0.5)
	require.NoError(t, err)

	require.Equal(t, float32(0.75), b.Value(0.25, 0))
	require.Equal(t, float32(0.5), b.MinValue())
	require.Equal(t, float32(1.5), b.MaxValue())
}

func TestClampRestrictsRange(t *testing.T) {
	t.Parallel()

	c, err := modifier.NewClamp(unit(), 0.25, 0.75)
	require.NoError(t, err)

	require.Equal(t, float32(0.25), c.Value(0.1, 0))
	require.Equal(t, float32(0.75), c.Value(0.9, 0))
	require.Equal(t, float32(0.5), c.Value(0.5, 0))
	require.Equal(t, float32(0.25), c.MinValue())
	require.Equal(t, float32(0.75), c.MaxValue())

	_, err = modifier.NewClamp(unit(), 1, 0)
	require.True(t, errors.Is(err, modifier.ErrBadRange))
}

func TestMapRemapsAffinely(t *testing.T) {
	t.Parallel()

	mp, err := modifier.NewMap(unit(), -1, 1)
	require.NoError(t, err)

	require.Equal(t, float32(-1), mp.Value(0, 0))
	require.Equal(t, float32(1), mp.Value(1, 0))
	require.Equal(t, float32(0), mp.Value(0.5, 0))
	require.Equal(t, float32(-1), mp.MinValue())
	require.Equal(t, float32(1), mp.MaxValue())

	// A zero-width child range collapses onto lo.
	flat, err := modifier.NewMap(field.NewConstant(0.5), 2, 4)
	require.NoError(t, err)
	require.Equal(t, float32(2), flat.Value(9, 9))
}

func TestStepsQuantizes(t *testing.T) {
	t.Parallel()

	s, err := modifier.NewSteps(unit(), 4)
	require.NoError(t, err)

	require.Equal(t, float32(0), s.Value(0.1, 0))
	require.InDelta(t, 1.0/3, s.Value(0.3, 0), 1e-6)
	require.InDelta(t, 2.0/3, s.Value(0.6, 0), 1e-6)
	require.Equal(t, float32(1), s.Value(1, 0))
	require.Equal(t, float32(0), s.MinValue())
	require.Equal(t, float32(1), s.MaxValue())

	_, err = modifier.NewSteps(unit(), 1)
	require.True(t, errors.Is(err, modifier.ErrBadSteps))
}

// TestPowerCurveIdentityAtPowerOne: power 1 leaves the normalized signal
// untouched over a [0,1] child.
func TestPowerCurveIdentityAtPowerOne(t *testing.T) {
	t.Parallel()

	p, err := modifier.NewPowerCurve(unit(), 1)
	require.NoError(t, err)

	for _, v := range []float32{0, 0.25, 0.5, 0.75, 1} {
		require.InDelta(t, v, p.Value(v, 0), 1e-6)
	}
}

// TestPowerCurveBendsAroundMidpoint: squaring the offset from the middle
// flattens the center and keeps the normalized endpoints pinned.
func TestPowerCurveBendsAroundMidpoint(t *testing.T) {
	t.Parallel()

	p, err := modifier.NewPowerCurve(unit(), 2)
	require.NoError(t, err)

	require.Equal(t, float32(0), p.MinValue())
	require.Equal(t, float32(1), p.MaxValue())

	require.InDelta(t, 0, p.Value(0, 0), 1e-5)
	require.InDelta(t, 1, p.Value(1, 0), 1e-5)
	require.InDelta(t, 0.5, p.Value(0.5, 0), 1e-5)
	// Curved bounds are [0.25, 0.75]; 0.75 curves to 0.5625 -> 0.625.
	require.InDelta(t, 0.625, p.Value(0.75, 0), 1e-5)
}

// TestTurbulenceZeroPowerIsIdentity compares against the unwrapped source
// over a coordinate sweep.
func TestTurbulenceZeroPowerIsIdentity(t *testing.T) {
	t.Parallel()

	src := &rangeModule{fn: func(x, y float32) float32 { return x*0.3 + y*0.7 }, min: -100, max: 100}
	warp := unit()

	tb, err := modifier.NewTurbulence(src, warp, warp, 0)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		x, y := float32(i)*1.3, float32(i)*-0.7
		require.Equal(t, src.Value(x, y), tb.Value(x, y))
	}
}

// TestTurbulenceOffsetsCoordinates: constant warp fields shift the query
// by exactly power units on each axis.
func TestTurbulenceOffsetsCoordinates(t *testing.T) {
	t.Parallel()

	src := &rangeModule{fn: func(x, y float32) float32 { return x + y }, min: -100, max: 100}

	tb, err := modifier.NewTurbulence(src, field.One, field.One, 2)
	require.NoError(t, err)

	require.Equal(t, src.Value(3, 6), tb.Value(1, 4))
	require.Equal(t, src.MinValue(), tb.MinValue())
	require.Equal(t, src.MaxValue(), tb.MaxValue())
}

// TestCacheSkipsRepeatedQuery: a bit-identical repeat never re-invokes
// the child; any new coordinate does.
func TestCacheSkipsRepeatedQuery(t *testing.T) {
	t.Parallel()

	calls := 0
	src := &rangeModule{fn: func(x, y float32) float32 {
		calls++

		return x + y
	}, min: 0, max: 1}

	c, err := modifier.NewCache(src)
	require.NoError(t, err)

	v := c.Value(1.5, 2.5)
	require.Equal(t, v, c.Value(1.5, 2.5))
	require.Equal(t, v, c.Value(1.5, 2.5))
	require.Equal(t, 1, calls)

	c.Value(2.5, 1.5)
	require.Equal(t, 2, calls)

	require.Equal(t, float32(0), c.MinValue())
	require.Equal(t, float32(1), c.MaxValue())
}

func TestWarpedAppliesDomain(t *testing.T) {
	t.Parallel()

	src := &rangeModule{fn: func(x, y float32) float32 { return x * y }, min: -100, max: 100}

	w, err := modifier.NewWarped(src, domain.NewOffset(2, 3))
	require.NoError(t, err)

	require.Equal(t, src.Value(3, 4), w.Value(1, 1))
	require.Equal(t, src.MinValue(), w.MinValue())
	require.Equal(t, src.MaxValue(), w.MaxValue())

	_, err = modifier.NewWarped(src, nil)
	require.True(t, errors.Is(err, modifier.ErrNilDomain))
	_, err = modifier.NewWarped(nil, domain.Identity{})
	require.True(t, errors.Is(err, modifier.ErrNilSource))
}
