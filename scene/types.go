// SPDX-License-Identifier: MIT

package scene

import (
	"errors"

	"github.com/katalvlaran/algomap/proximity"
)

// Sentinel errors for scene construction.
var (
	// ErrNeedRandSource indicates Build was called without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("scene: rng is required")

	// ErrBadColor indicates a palette entry that is not #rrggbb.
	ErrBadColor = errors.New("scene: bad color")
)

// Field is a box of uniformly sampled points centred on the origin.
type Field struct {
	// Count is the number of points to sample.
	Count int
	// Extent is the full box size along each axis.
	Extent proximity.Point3D
}

// RGB is a colour with channels in [0, 1].
type RGB struct {
	R, G, B float32
}

// Particle is one point of the particle layer.
type Particle struct {
	Position proximity.Point3D
	Color    RGB
}

// Scene is a sampled background: a coloured particle cloud plus a node
// network with its proximity edges and the matching line buffer.
type Scene struct {
	Particles []Particle
	Nodes     []proximity.Point3D
	Edges     []proximity.Edge
	// Lines holds 6 float32 per edge (both endpoints), in Edges order.
	Lines []float32
}

// Defaults of the cheat sheet background.
var (
	DefaultNetworkField  = Field{Count: 30, Extent: proximity.Point3D{X: 15, Y: 15, Z: 5}}
	DefaultParticleField = Field{Count: 200, Extent: proximity.Point3D{X: 20, Y: 20, Z: 10}}
	DefaultPalette       = []string{"#6366f1", "#a855f7", "#22d3ee"}
)

// DefaultThreshold is the maximum (exclusive) distance of a network edge.
const DefaultThreshold = 3.0
