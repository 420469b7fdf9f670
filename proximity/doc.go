// SPDX-License-Identifier: MIT

// Package proximity builds proximity graphs over points in 3-D space: the
// set of index pairs (i, j), i < j, whose Euclidean distance is strictly
// below a threshold. The edge list feeds line-segment rendering of particle
// fields and simple connectivity queries.
//
// What:
//
//   - BuildEdges compares point pairs and returns edges in ascending (i, j)
//     order. The comparison is always sqrt(dx²+dy²+dz²) < threshold; a pair
//     at exactly the threshold is not an edge.
//   - Two strategies produce identical output: Exhaustive enumerates every
//     pair, Grid buckets points into cubic cells of side ≈ threshold and only
//     compares neighbouring cells. Auto (default) picks Grid for large inputs.
//   - Segments, Degrees, Neighbors and Components consume an edge list.
//
// Complexity:
//
//   - Exhaustive: O(N²) time, O(E) memory.
//   - Grid:       O(N + Σ cell-pair work + E·log E), O(N + E) memory.
//   - Components: O(N + E).
//
// Errors:
//
//   - ErrInvalidArgument: negative or NaN threshold, or a bad option value.
//   - ErrIndexOutOfRange: an edge refers to an index outside the point set.
//
// Inputs are never mutated and every function is deterministic for a given
// input. No function blocks, allocates goroutines or performs I/O.
package proximity
