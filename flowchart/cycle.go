// SPDX-License-Identifier: MIT
//
// File: cycle.go
// Role: directed cycle enumeration for load-time validation.
//
// Three-colour DFS: White = unvisited, Gray = on the current path,
// Black = fully explored. An edge into a Gray node closes a cycle, which is
// the path segment from that node to the current one.
//
// Complexity: O(V + E + C·L) time (C cycles of average length L),
// O(V + L_max) memory.

package flowchart

import (
	"sort"
	"strings"
)

const (
	white = iota
	gray
	black
)

// DetectCycles reports every directed cycle in c found by DFS back edges.
// Each cycle is rotated to begin at its smallest ID and closed by repeating
// that ID ([a b c a]); the list is sorted by signature. A nil chart is
// cycle-free.
func DetectCycles(c *Chart) (bool, [][]string) {
	if c == nil {
		return false, nil
	}

	// 1) Visitation state: colour per node, current DFS path, cycle signatures
	state := make(map[string]int, len(c.order))
	path := make([]string, 0, len(c.order))
	seen := make(map[string]struct{})
	var cycles [][]string

	// 2) Launch DFS from each white node, in declaration order so the
	//    DFS forest is deterministic
	for _, id := range c.order {
		if state[id] == white {
			c.visitCycles(id, state, &path, seen, &cycles)
		}
	}
	if len(cycles) == 0 {
		return false, nil
	}

	// 3) Sort cycles by their comma-joined signature
	sort.Slice(cycles, func(i, j int) bool {
		return strings.Join(cycles[i], ",") < strings.Join(cycles[j], ",")
	})
	return true, cycles
}

func (c *Chart) visitCycles(
	id string,
	state map[string]int,
	path *[]string,
	seen map[string]struct{},
	cycles *[][]string,
) {
	// 1) Mark gray and push onto the path
	state[id] = gray
	*path = append(*path, id)

	// 2) White targets recurse; a gray target closes a cycle
	for _, nbr := range c.nodes[id].Targets() {
		switch state[nbr] {
		case white:
			c.visitCycles(nbr, state, path, seen, cycles)
		case gray:
			recordCycle(nbr, *path, seen, cycles)
		}
	}

	// 3) Backtrack: pop and mark black
	*path = (*path)[:len(*path)-1]
	state[id] = black
}

// recordCycle copies path[from:], rotates it to its canonical form and
// appends it unless an identical cycle was already recorded.
func recordCycle(from string, path []string, seen map[string]struct{}, cycles *[][]string) {
	idx := indexOf(path, from)
	if idx < 0 {
		return
	}
	seg := path[idx:]

	// rotate so the smallest ID leads; direction is fixed in a directed graph
	lo := 0
	for i := range seg {
		if seg[i] < seg[lo] {
			lo = i
		}
	}
	cyc := make([]string, 0, len(seg)+1)
	cyc = append(cyc, seg[lo:]...)
	cyc = append(cyc, seg[:lo]...)
	cyc = append(cyc, cyc[0])

	sig := strings.Join(cyc, ",")
	if _, dup := seen[sig]; dup {
		return
	}
	seen[sig] = struct{}{}
	*cycles = append(*cycles, cyc)
}

func indexOf(xs []string, x string) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return -1
}
