// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: consumers of an edge list (line buffers, degrees, adjacency,
// connected components).

package proximity

import (
	"fmt"
	"sort"
)

// Segments flattens edges into a line-segment buffer of
// x_i, y_i, z_i, x_j, y_j, z_j per edge, in edge order, ready for a
// line-segment vertex attribute. ErrIndexOutOfRange for a bad edge.
func Segments(points []Point3D, edges []Edge) ([]float32, error) {
	if err := checkEdges(len(points), edges); err != nil {
		return nil, err
	}
	out := make([]float32, 0, len(edges)*6)
	for _, e := range edges {
		a, b := points[e.I], points[e.J]
		out = append(out,
			float32(a.X), float32(a.Y), float32(a.Z),
			float32(b.X), float32(b.Y), float32(b.Z),
		)
	}
	return out, nil
}

// Degrees returns the number of edges incident to each of n points.
// Edges with out-of-range indices are ignored; n <= 0 yields an empty slice.
func Degrees(n int, edges []Edge) []int {
	n = max(n, 0)
	deg := make([]int, n)
	for _, e := range edges {
		if !e.valid(n) {
			continue
		}
		deg[e.I]++
		deg[e.J]++
	}
	return deg
}

// Neighbors returns the ascending adjacency list of each of n points.
// Edges with out-of-range indices are ignored; n <= 0 yields an empty slice.
func Neighbors(n int, edges []Edge) [][]int {
	n = max(n, 0)
	adj := make([][]int, n)
	for _, e := range edges {
		if !e.valid(n) {
			continue
		}
		adj[e.I] = append(adj[e.I], e.J)
		adj[e.J] = append(adj[e.J], e.I)
	}
	for _, a := range adj {
		sort.Ints(a)
	}
	return adj
}

// Components labels the connected components of the graph on n points.
// Each component is sorted ascending and components are ordered by their
// smallest member; isolated points form singleton components. n <= 0
// yields no components.
//
// Time: O(N + E·log d). Memory: O(N + E).
func Components(n int, edges []Edge) [][]int {
	n = max(n, 0)
	adj := Neighbors(n, edges)
	seen := make([]bool, n)
	var comps [][]int

	for i0 := 0; i0 < n; i0++ {
		if seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range adj[queue[qi]] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Ints(queue)
		comps = append(comps, queue)
	}
	return comps
}

func (e Edge) valid(n int) bool {
	return e.I >= 0 && e.J >= 0 && e.I < n && e.J < n && e.I != e.J
}

func checkEdges(n int, edges []Edge) error {
	for k, e := range edges {
		if !e.valid(n) {
			return fmt.Errorf("%w: edge %d (%d,%d) with %d points", ErrIndexOutOfRange, k, e.I, e.J, n)
		}
	}
	return nil
}
