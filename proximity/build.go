// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: proximity edge enumeration.
// Invariants (all strategies):
//   - (i, j) is an edge iff i < j and points[i].Distance(points[j]) < threshold.
//   - Output is sorted ascending by (I, J) and never nil.

package proximity

import (
	"fmt"
	"math"
	"sort"
)

// cellSlack widens grid cells so float rounding in x/cell can never push two
// points closer than the threshold more than one cell apart.
const cellSlack = 1 + 1e-9

// maxCellIndex bounds |x/cell|; beyond it int64 cell keys lose precision and
// Grid falls back to Exhaustive.
const maxCellIndex = 1 << 52

// BuildEdges returns every index pair (i, j), i < j, with
// distance(points[i], points[j]) < threshold, ascending by (i, j).
//
// Empty and single-point inputs yield an empty slice. Coincident points have
// distance 0 and are joined whenever threshold > 0. Points with NaN or
// infinite coordinates are never joined to anything at a finite threshold.
//
// Errors:
//   - ErrInvalidArgument: threshold < 0, threshold is NaN, or a bad option.
func BuildEdges(points []Point3D, threshold float64, opts ...Option) ([]Edge, error) {
	// 1) Resolve options and validate the threshold
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if math.IsNaN(threshold) || threshold < 0 {
		return nil, fmt.Errorf("%w: threshold must be >= 0, got %v", ErrInvalidArgument, threshold)
	}

	// 2) Trivial inputs: fewer than two points, or distance < 0 never holds
	n := len(points)
	if n < 2 || threshold == 0 {
		return []Edge{}, nil
	}

	// 3) Pick the strategy; Grid falls back to Exhaustive when it cannot run
	strategy := o.Strategy
	if strategy == Auto {
		strategy = Exhaustive
		if n >= o.GridCutoff {
			strategy = Grid
		}
	}
	if strategy == Grid && !math.IsInf(threshold, 1) {
		if edges, ok := gridEdges(points, threshold); ok {
			return edges, nil
		}
	}
	return exhaustiveEdges(points, threshold), nil
}

// exhaustiveEdges enumerates pairs in (i, j) order, so no sort is needed.
func exhaustiveEdges(points []Point3D, threshold float64) []Edge {
	edges := make([]Edge, 0, len(points))
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if points[i].Distance(points[j]) < threshold {
				edges = append(edges, Edge{I: i, J: j})
			}
		}
	}
	return edges
}

type cellKey struct{ x, y, z int64 }

// gridEdges buckets finite points into cells and compares each point with
// the 27 surrounding cells. It reports false when coordinates are too large
// for exact cell keys.
func gridEdges(points []Point3D, threshold float64) ([]Edge, bool) {
	// 1) Bucket finite points by cell; non-finite points get an unused key
	cell := threshold * cellSlack
	keys := make([]cellKey, len(points))
	buckets := make(map[cellKey][]int, len(points))

	for i, p := range points {
		if !p.finite() {
			keys[i] = cellKey{math.MaxInt64, math.MaxInt64, math.MaxInt64}
			continue
		}
		fx, fy, fz := math.Floor(p.X/cell), math.Floor(p.Y/cell), math.Floor(p.Z/cell)
		if math.Abs(fx) > maxCellIndex || math.Abs(fy) > maxCellIndex || math.Abs(fz) > maxCellIndex {
			return nil, false
		}
		k := cellKey{int64(fx), int64(fy), int64(fz)}
		keys[i] = k
		buckets[k] = append(buckets[k], i) // indices ascend within a bucket
	}

	// 2) Compare each point with later indices in the 27 surrounding cells
	edges := make([]Edge, 0, len(points))
	for i, p := range points {
		if !p.finite() {
			continue
		}
		k := keys[i]
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				for dz := int64(-1); dz <= 1; dz++ {
					for _, j := range buckets[cellKey{k.x + dx, k.y + dy, k.z + dz}] {
						if j <= i {
							continue
						}
						if p.Distance(points[j]) < threshold {
							edges = append(edges, Edge{I: i, J: j})
						}
					}
				}
			}
		}
	}

	// 3) Cells are visited out of index order, so restore (I, J) order
	sort.Slice(edges, func(a, b int) bool { return edges[a].less(edges[b]) })
	return edges, true
}
