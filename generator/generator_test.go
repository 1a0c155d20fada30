package generator_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unalgebra/generator"
	"github.com/katalvlaran/unalgebra/un"
)

const (
	seedProps = int64(4242)
	trials    = 20000
)

// TestNext_AlwaysValid: no sample may fail validation at zero tolerance.
func TestNext_AlwaysValid(t *testing.T) {
	g := generator.New(generator.WithSeed(seedProps))
	for i := 0; i < trials; i++ {
		x := g.Next()
		if err := un.Check(x, 0); err != nil {
			t.Fatalf("sample %d %v invalid: %v", i, x, err)
		}
	}
}

// TestNext_Deterministic: equal seeds give bitwise-equal sequences.
func TestNext_Deterministic(t *testing.T) {
	a := generator.New(generator.WithSeed(7)).Sample(500)
	b := generator.New(generator.WithSeed(7)).Sample(500)
	require.Len(t, a, 500)
	for i := range a {
		require.True(t, a[i].Identical(b[i]), "sample %d differs", i)
	}

	c := generator.New(generator.WithSeed(8)).Sample(500)
	assert.False(t, a[0].Identical(c[0]), "different seeds should diverge")
}

// TestNew_ZeroSeedPolicy: seed 0 and no seed both map to DefaultSeed.
func TestNew_ZeroSeedPolicy(t *testing.T) {
	a := generator.New().Next()
	b := generator.New(generator.WithSeed(0)).Next()
	c := generator.New(generator.WithSeed(generator.DefaultSeed)).Next()
	assert.True(t, a.Identical(b))
	assert.True(t, a.Identical(c))
}

// TestNext_DynamicRange: the default scale spans at least 24 decades.
func TestNext_DynamicRange(t *testing.T) {
	g := generator.New(generator.WithSeed(seedProps))
	lo, hi := math.Inf(1), 0.0
	for i := 0; i < trials; i++ {
		m := g.Next().Budget()
		lo = math.Min(lo, m)
		hi = math.Max(hi, m)
	}
	assert.Less(t, lo, 1e-9, "smallest budget should reach the low decades")
	assert.Greater(t, hi, 1e9, "largest budget should reach the high decades")
	assert.GreaterOrEqual(t, math.Log10(hi)-math.Log10(lo), 20.0)
}

// TestNext_BoundaryBias: repaired drafts land within slack of the boundary.
func TestNext_BoundaryBias(t *testing.T) {
	g := generator.New(generator.WithSeed(seedProps))
	near := 0
	for i := 0; i < trials; i++ {
		x := g.Next()
		_, ut, _, um := x.Components()
		if ut+um-x.Gap() <= 1e-9*(ut+um) {
			near++
		}
	}
	assert.Greater(t, near, trials/20, "expected a sizeable share of boundary samples, got %d", near)
}

// TestWithDecades_Narrow: a narrow range keeps every radius near its scale.
func TestWithDecades_Narrow(t *testing.T) {
	g := generator.New(generator.WithSeed(1), generator.WithDecades(-1, 1))
	for i := 0; i < 2000; i++ {
		x := g.Next()
		na, ut, _, _ := x.Components()
		require.Less(t, math.Abs(na), 1e3, "sample %d: %v", i, x)
		require.Less(t, ut, 1e4, "sample %d: %v", i, x)
	}
}

// TestBoundary_OnBoundary: the gap equals the combined radius up to rounding.
func TestBoundary_OnBoundary(t *testing.T) {
	g := generator.New(generator.WithSeed(seedProps), generator.WithDecades(-6, 6))
	for i := 0; i < 2000; i++ {
		x := g.Boundary()
		require.True(t, un.Validate(x, 0), "sample %d %v invalid", i, x)

		_, ut, _, um := x.Components()
		assert.InDelta(t, ut+um, x.Gap(), 1e-12*x.Budget(), "sample %d not on boundary", i)
	}
}

// TestStream_Reproducible: substreams are stable and mutually distinct.
func TestStream_Reproducible(t *testing.T) {
	a := generator.Stream(seedProps, 3).Next()
	b := generator.Stream(seedProps, 3).Next()
	c := generator.Stream(seedProps, 4).Next()
	assert.True(t, a.Identical(b))
	assert.False(t, a.Identical(c))

	// WithSeed passed as an option is overridden by the derived seed.
	d := generator.Stream(seedProps, 3, generator.WithSeed(99)).Next()
	assert.True(t, a.Identical(d))
}

// TestDeriveSeed_Distinct: consecutive streams map to distinct seeds.
func TestDeriveSeed_Distinct(t *testing.T) {
	seen := make(map[int64]uint64)
	for s := uint64(0); s < 1000; s++ {
		d := generator.DeriveSeed(seedProps, s)
		if prev, ok := seen[d]; ok {
			t.Fatalf("streams %d and %d collide", prev, s)
		}
		seen[d] = s
	}
	assert.Equal(t, generator.DeriveSeed(1, 2), generator.DeriveSeed(1, 2))
}

// TestWithRand_SharesState: the caller's RNG advances.
func TestWithRand_SharesState(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	before := rand.New(rand.NewSource(5)).Int63()
	_ = generator.New(generator.WithRand(r)).Next()
	assert.NotEqual(t, before, r.Int63(), "generator must consume the supplied RNG")
}

// TestSample_NonPositive returns an empty, non-nil slice.
func TestSample_NonPositive(t *testing.T) {
	g := generator.New()
	assert.Empty(t, g.Sample(0))
	assert.NotNil(t, g.Sample(-3))
}

// TestOptions_Panic: option constructors reject meaningless values.
func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { generator.WithRand(nil) })
	assert.Panics(t, func() { generator.WithDecades(1, 1) })
	assert.Panics(t, func() { generator.WithDecades(-200, 0) })
	assert.Panics(t, func() { generator.WithDecades(math.NaN(), 1) })
	assert.Panics(t, func() { generator.WithSlack(-1) })
	assert.Panics(t, func() { generator.WithSlack(math.Inf(1)) })
	assert.Panics(t, func() { generator.WithShare(0.9, 0.1) })
	assert.Panics(t, func() { generator.WithShare(-0.1, 0.5) })
	assert.NotPanics(t, func() { generator.WithShare(0.5, 0.5) })
}
