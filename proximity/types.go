// SPDX-License-Identifier: MIT

package proximity

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for proximity operations.
var (
	// ErrInvalidArgument indicates a negative or NaN threshold or an invalid option.
	ErrInvalidArgument = errors.New("proximity: invalid argument")

	// ErrIndexOutOfRange indicates an edge index outside [0, len(points)).
	ErrIndexOutOfRange = errors.New("proximity: index out of range")
)

// Point3D is an immutable point in 3-D space.
type Point3D struct {
	X, Y, Z float64
}

// Sub returns p − q.
func (p Point3D) Sub(q Point3D) Point3D { return Point3D{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

// Add returns p + q.
func (p Point3D) Add(q Point3D) Point3D { return Point3D{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }

// Scale returns p·k.
func (p Point3D) Scale(k float64) Point3D { return Point3D{p.X * k, p.Y * k, p.Z * k} }

// Distance returns the Euclidean distance sqrt(dx²+dy²+dz²) between p and q.
func (p Point3D) Distance(q Point3D) float64 {
	dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// finite reports whether every coordinate is neither NaN nor ±Inf.
func (p Point3D) finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0) &&
		!math.IsNaN(p.Z) && !math.IsInf(p.Z, 0)
}

// String formats the point as (x, y, z).
func (p Point3D) String() string { return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z) }

// Edge is an unordered pair of point indices stored with I < J.
type Edge struct {
	I, J int
}

// less orders edges lexicographically by (I, J).
func (e Edge) less(o Edge) bool {
	if e.I != o.I {
		return e.I < o.I
	}
	return e.J < o.J
}

// Strategy selects the pair enumeration algorithm.
type Strategy int

const (
	// Auto uses Grid once the input reaches the grid cutoff, Exhaustive below it.
	Auto Strategy = iota
	// Exhaustive compares every unordered pair.
	Exhaustive
	// Grid compares only points in the same or adjacent spatial cells.
	Grid
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case Exhaustive:
		return "exhaustive"
	case Grid:
		return "grid"
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}
