package scene_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algomap/proximity"
	"github.com/katalvlaran/algomap/scene"
)

func TestParseHex(t *testing.T) {
	c, err := scene.ParseHex("#ff0080")
	require.NoError(t, err)
	assert.InDelta(t, 1, float64(c.R), 1e-6)
	assert.InDelta(t, 0, float64(c.G), 1e-6)
	assert.InDelta(t, 128.0/255, float64(c.B), 1e-6)

	upper, err := scene.ParseHex(" #FF0080 ")
	require.NoError(t, err)
	assert.Equal(t, c, upper)

	c, err = scene.ParseHex("22d3ee")
	require.NoError(t, err)
	assert.InDelta(t, float64(0x22)/255, float64(c.R), 1e-6)

	// #12345g would scan as 12 34 05 without the print-back check
	for _, bad := range []string{"", "#", "#fff", "#12345g", "#1234567", "indigo", "#-12345"} {
		_, err := scene.ParseHex(bad)
		assert.ErrorIs(t, err, scene.ErrBadColor, bad)
	}
}

func TestSample_BoundsAndDeterminism(t *testing.T) {
	f := scene.Field{Count: 500, Extent: proximity.Point3D{X: 20, Y: 20, Z: 10}}
	a := scene.Sample(rand.New(rand.NewSource(7)), f)
	b := scene.Sample(rand.New(rand.NewSource(7)), f)
	require.Len(t, a, 500)
	assert.Equal(t, a, b)

	for _, p := range a {
		assert.True(t, math.Abs(p.X) <= 10 && math.Abs(p.Y) <= 10 && math.Abs(p.Z) <= 5, p.String())
	}

	assert.Empty(t, scene.Sample(rand.New(rand.NewSource(1)), scene.Field{}))
}

func TestBuild_NeedsRandSource(t *testing.T) {
	_, err := scene.Build()
	assert.ErrorIs(t, err, scene.ErrNeedRandSource)
}

func TestBuild_Defaults(t *testing.T) {
	sc, err := scene.Build(scene.WithSeed(42))
	require.NoError(t, err)

	assert.Len(t, sc.Particles, scene.DefaultParticleField.Count)
	assert.Len(t, sc.Nodes, scene.DefaultNetworkField.Count)
	assert.Len(t, sc.Lines, 6*len(sc.Edges))

	palette := make(map[scene.RGB]bool)
	for _, h := range scene.DefaultPalette {
		c, err := scene.ParseHex(h)
		require.NoError(t, err)
		palette[c] = true
	}
	for _, p := range sc.Particles {
		assert.True(t, palette[p.Color])
	}

	// every edge is a strict-threshold pair, and every such pair is an edge
	want, err := proximity.BuildEdges(sc.Nodes, scene.DefaultThreshold, proximity.WithStrategy(proximity.Exhaustive))
	require.NoError(t, err)
	assert.Equal(t, want, sc.Edges)
	for k, e := range sc.Edges {
		assert.Equal(t, float32(sc.Nodes[e.I].X), sc.Lines[6*k])
		assert.Equal(t, float32(sc.Nodes[e.J].Z), sc.Lines[6*k+5])
	}
}

func TestBuild_SameSeedSameScene(t *testing.T) {
	a, err := scene.Build(scene.WithSeed(3))
	require.NoError(t, err)
	b, err := scene.Build(scene.WithRand(rand.New(rand.NewSource(3))))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := scene.Build(scene.WithSeed(4))
	require.NoError(t, err)
	assert.NotEqual(t, a.Nodes, c.Nodes)
}

func TestBuild_Options(t *testing.T) {
	net := scene.Field{Count: 50, Extent: proximity.Point3D{X: 1, Y: 1, Z: 1}}
	sc, err := scene.Build(
		scene.WithSeed(1),
		scene.WithField(net),
		scene.WithParticleField(scene.Field{}),
		scene.WithThreshold(math.Sqrt(3)+0.01),
		scene.WithPalette("#000000"),
		scene.WithStrategy(proximity.Grid),
	)
	require.NoError(t, err)
	assert.Empty(t, sc.Particles)
	// a unit cube's diagonal is sqrt(3), so every pair is joined
	assert.Len(t, sc.Edges, 50*49/2)
	assert.Equal(t, [][]int{seq(50)}, sc.Components())

	sc, err = scene.Build(scene.WithSeed(1), scene.WithThreshold(0))
	require.NoError(t, err)
	assert.Empty(t, sc.Edges)
	assert.Empty(t, sc.Lines)
	assert.Len(t, sc.Components(), scene.DefaultNetworkField.Count)
}

func TestBuild_Errors(t *testing.T) {
	_, err := scene.Build(scene.WithSeed(1), scene.WithThreshold(-1))
	assert.ErrorIs(t, err, proximity.ErrInvalidArgument)

	_, err = scene.Build(scene.WithSeed(1), scene.WithThreshold(math.NaN()))
	assert.ErrorIs(t, err, proximity.ErrInvalidArgument)

	_, err = scene.Build(scene.WithSeed(1), scene.WithPalette("#6366f1", "nope"))
	assert.True(t, errors.Is(err, scene.ErrBadColor))
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { scene.WithRand(nil) })
	assert.Panics(t, func() { scene.WithField(scene.Field{Count: -1}) })
	assert.Panics(t, func() {
		scene.WithParticleField(scene.Field{Count: 1, Extent: proximity.Point3D{X: -1}})
	})
	assert.Panics(t, func() { scene.WithPalette() })
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
