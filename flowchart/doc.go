// SPDX-License-Identifier: MIT

// Package flowchart implements a decision flowchart engine: a fixed table of
// labeled nodes joined by yes/no branches, and per-viewer traversal sessions
// that remember the exploration trail.
//
// What:
//
//   - Node is a closed variant over four kinds: Start, Decision, Category and
//     Terminal. Only Decision nodes carry branch targets, and the constructors
//     (NewStart, NewDecision, NewCategory, NewTerminal) enforce that.
//   - Chart is the immutable node table. Edges are node IDs, never pointers,
//     so a Chart has no ownership cycles and round-trips through YAML.
//   - Session tracks the focused node and the trail of distinct nodes seen,
//     in first-visit order. Revisiting a node moves the focus but never
//     reorders or duplicates the trail.
//
// Load-time checks (New / Decode):
//
//	unique IDs                      → ErrDuplicateNode
//	exactly one Start node          → ErrNoStart, ErrMultipleStart
//	branch targets resolve          → ErrDanglingTarget
//	WithAcyclic():  no cycles       → ErrCycleDetected
//	WithReachable(): all reachable  → ErrUnreachable
//
// Runtime errors:
//
//	ErrNodeNotFound     – unknown ID passed to Lookup or Visit
//	ErrNotADecisionNode – branch query on a non-decision node
//	ErrDeadEnd          – the requested branch is unset
//
// Concurrency:
//
//   - A Chart is read-only after New and may be shared between goroutines.
//   - A Session belongs to exactly one owner and is not safe for concurrent
//     mutation; hosts that share one must serialize Visit/Reset themselves.
//
// Complexity:
//
//   - Lookup, BranchTarget: O(1).
//   - Visit: O(1) amortized (trail membership is a set lookup).
//   - Walk, RouteTo, Reachable, DetectCycles: O(V+E) with E ≤ 2V.
package flowchart
