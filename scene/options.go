// SPDX-License-Identifier: MIT
//
// Option constructors panic on meaningless input (nil rng, negative counts
// or extents, empty palette). Values that can only be judged at build time,
// such as the threshold, surface as errors from Build.

package scene

import (
	"math/rand"

	"github.com/katalvlaran/algomap/proximity"
)

// Option customizes Build.
type Option func(*config)

type config struct {
	rng       *rand.Rand
	network   Field
	particles Field
	threshold float64
	palette   []string
	strategy  proximity.Strategy
}

func newConfig(opts ...Option) config {
	cfg := config{
		network:   DefaultNetworkField,
		particles: DefaultParticleField,
		threshold: DefaultThreshold,
		palette:   DefaultPalette,
		strategy:  proximity.Auto,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand sets the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("scene: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed uses a fresh source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithField sets the network layer field.
func WithField(f Field) Option {
	mustField("WithField", f)
	return func(c *config) { c.network = f }
}

// WithParticleField sets the particle layer field.
func WithParticleField(f Field) Option {
	mustField("WithParticleField", f)
	return func(c *config) { c.particles = f }
}

// WithThreshold sets the network edge threshold. Negative values make Build
// fail with proximity.ErrInvalidArgument.
func WithThreshold(t float64) Option {
	return func(c *config) { c.threshold = t }
}

// WithPalette sets the particle colours (#rrggbb). Panics on an empty palette;
// malformed entries fail Build with ErrBadColor.
func WithPalette(hex ...string) Option {
	if len(hex) == 0 {
		panic("scene: WithPalette()")
	}
	p := append([]string(nil), hex...)
	return func(c *config) { c.palette = p }
}

// WithStrategy forwards an edge enumeration strategy to the proximity builder.
func WithStrategy(s proximity.Strategy) Option {
	return func(c *config) { c.strategy = s }
}

func mustField(name string, f Field) {
	if f.Count < 0 || f.Extent.X < 0 || f.Extent.Y < 0 || f.Extent.Z < 0 {
		panic("scene: " + name + ": negative count or extent")
	}
}
