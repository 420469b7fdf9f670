// SPDX-License-Identifier: MIT
//
// File: chart.go
// Role: the immutable node table and its pure queries.
// Determinism:
//   - Nodes() and IDs() return declaration order; Outcomes() is sorted by ID.

package flowchart

import (
	"fmt"
	"sort"
	"strings"
)

// Chart is a fixed table of nodes keyed by ID, with exactly one Start node
// and every branch target resolvable. It is never mutated after New.
type Chart struct {
	nodes   map[string]Node
	order   []string // declaration order
	startID string
}

// New validates nodes and builds a Chart.
//
// Checks, in order:
//  1. IDs are unique (ErrDuplicateNode).
//  2. Exactly one Start node (ErrNoStart, ErrMultipleStart).
//  3. Every branch target is a key of the table (ErrDanglingTarget).
//  4. WithAcyclic: no directed cycle (ErrCycleDetected).
//  5. WithReachable: every node reachable from Start (ErrUnreachable).
//
// Complexity: O(V+E).
func New(nodes []Node, opts ...Option) (*Chart, error) {
	cfg := newConfig(opts)
	c := &Chart{
		nodes: make(map[string]Node, len(nodes)),
		order: make([]string, 0, len(nodes)),
	}

	for _, n := range nodes {
		if n.id == "" {
			return nil, ErrEmptyNodeID
		}
		if _, dup := c.nodes[n.id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, n.id)
		}
		if n.kind == Start {
			if c.startID != "" {
				return nil, fmt.Errorf("%w: %q and %q", ErrMultipleStart, c.startID, n.id)
			}
			c.startID = n.id
		}
		c.nodes[n.id] = n
		c.order = append(c.order, n.id)
	}
	if c.startID == "" {
		return nil, ErrNoStart
	}

	for _, id := range c.order {
		n := c.nodes[id]
		for _, t := range n.Targets() {
			if _, ok := c.nodes[t]; !ok {
				return nil, fmt.Errorf("%w: %q → %q", ErrDanglingTarget, id, t)
			}
		}
	}

	if cfg.acyclic {
		if found, cycles := DetectCycles(c); found {
			sigs := make([]string, len(cycles))
			for i, cyc := range cycles {
				sigs[i] = strings.Join(cyc, "→")
			}
			return nil, fmt.Errorf("%w: %s", ErrCycleDetected, strings.Join(sigs, "; "))
		}
	}
	if cfg.reachable {
		seen, _ := c.Reachable(c.startID)
		if len(seen) != len(c.order) {
			in := make(map[string]struct{}, len(seen))
			for _, id := range seen {
				in[id] = struct{}{}
			}
			for _, id := range c.order {
				if _, ok := in[id]; !ok {
					return nil, fmt.Errorf("%w: %q", ErrUnreachable, id)
				}
			}
		}
	}

	return c, nil
}

// MustNew is New for static tables known to be valid. It panics on error.
func MustNew(nodes []Node, opts ...Option) *Chart {
	c, err := New(nodes, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// StartID returns the ID of the Start node.
func (c *Chart) StartID() string { return c.startID }

// Len returns the number of nodes.
func (c *Chart) Len() int { return len(c.order) }

// Has reports whether id is a key of the chart.
func (c *Chart) Has(id string) bool {
	_, ok := c.nodes[id]
	return ok
}

// Lookup returns the node for id, or ErrNodeNotFound. It has no side effects
// and returns the same node on every call.
func (c *Chart) Lookup(id string) (Node, error) {
	n, ok := c.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	return n, nil
}

// Branch is Lookup followed by BranchTarget.
func (c *Chart) Branch(id string, a Answer) (string, bool, error) {
	n, err := c.Lookup(id)
	if err != nil {
		return "", false, err
	}
	return BranchTarget(n, a)
}

// IDs returns node IDs in declaration order.
func (c *Chart) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Nodes returns all nodes in declaration order.
func (c *Chart) Nodes() []Node {
	out := make([]Node, len(c.order))
	for i, id := range c.order {
		out[i] = c.nodes[id]
	}
	return out
}

// Outcomes returns the Category and Terminal nodes sorted by ID.
func (c *Chart) Outcomes() []Node {
	var out []Node
	for _, id := range c.order {
		if n := c.nodes[id]; n.kind.Outcome() {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}
