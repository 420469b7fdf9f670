// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/algomap/proximity"
)

// Sample draws f.Count points uniformly from the box f.Extent centred on the
// origin, consuming three draws per point in x, y, z order.
func Sample(rng *rand.Rand, f Field) []proximity.Point3D {
	pts := make([]proximity.Point3D, f.Count)
	for i := range pts {
		pts[i] = proximity.Point3D{
			X: (rng.Float64() - 0.5) * f.Extent.X,
			Y: (rng.Float64() - 0.5) * f.Extent.Y,
			Z: (rng.Float64() - 0.5) * f.Extent.Z,
		}
	}
	return pts
}

// Build samples the particle layer, then the network layer, and joins the
// network nodes closer than the threshold.
//
// Errors:
//   - ErrNeedRandSource: neither WithSeed nor WithRand was given.
//   - ErrBadColor: a palette entry is malformed.
//   - proximity.ErrInvalidArgument: negative or NaN threshold.
func Build(opts ...Option) (*Scene, error) {
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}

	palette := make([]RGB, len(cfg.palette))
	for i, h := range cfg.palette {
		c, err := ParseHex(h)
		if err != nil {
			return nil, err
		}
		palette[i] = c
	}

	sc := &Scene{Particles: make([]Particle, cfg.particles.Count)}
	for i, p := range Sample(cfg.rng, cfg.particles) {
		sc.Particles[i] = Particle{Position: p, Color: palette[cfg.rng.Intn(len(palette))]}
	}

	sc.Nodes = Sample(cfg.rng, cfg.network)
	edges, err := proximity.BuildEdges(sc.Nodes, cfg.threshold, proximity.WithStrategy(cfg.strategy))
	if err != nil {
		return nil, fmt.Errorf("scene: network edges: %w", err)
	}
	sc.Edges = edges
	if sc.Lines, err = proximity.Segments(sc.Nodes, edges); err != nil {
		return nil, fmt.Errorf("scene: line buffer: %w", err)
	}
	return sc, nil
}

// Components returns the connected clusters of the network layer.
func (s *Scene) Components() [][]int {
	return proximity.Components(len(s.Nodes), s.Edges)
}
