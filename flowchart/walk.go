// SPDX-License-Identifier: MIT
//
// File: walk.go
// Role: read-only traversals over a Chart (answer replay, BFS reachability,
// shortest yes/no route).
// Determinism:
//   - Successors are expanded in Targets() order (next, then yes, then no),
//     so every result is stable for a given chart.

package flowchart

import "fmt"

// Route is a path through the chart. Answers holds one entry per Decision
// node on the path except the last node, in path order.
type Route struct {
	Nodes   []string
	Answers []Answer
}

// Outcome returns the last node ID of the route.
func (r Route) Outcome() string {
	if len(r.Nodes) == 0 {
		return ""
	}
	return r.Nodes[len(r.Nodes)-1]
}

// Walk replays answers from the Start node: it follows the Start node's next
// link, then consumes one answer per Decision node, and stops once answers
// run out.
//
// Errors carry the 0-based answer index:
//   - ErrDeadEnd: the answer's branch is unset, or Start has no next link.
//   - ErrNotADecisionNode: answers remain after a non-decision node.
func (c *Chart) Walk(answers ...Answer) (Route, error) {
	r := Route{Nodes: []string{c.startID}}
	cur := c.startID
	if next, ok := c.nodes[cur].Next(); ok {
		cur = next
		r.Nodes = append(r.Nodes, cur)
	} else if len(answers) > 0 {
		return r, fmt.Errorf("step 0: %w: start %q has no next link", ErrDeadEnd, cur)
	}

	for i, a := range answers {
		target, ok, err := BranchTarget(c.nodes[cur], a)
		if err != nil {
			return r, fmt.Errorf("step %d: %w", i, err)
		}
		if !ok {
			return r, fmt.Errorf("step %d: %w: %q has no %s branch", i, ErrDeadEnd, cur, a)
		}
		r.Answers = append(r.Answers, a)
		r.Nodes = append(r.Nodes, target)
		cur = target
	}
	return r, nil
}

// Reachable returns every node reachable from `from`, `from` included, in
// breadth-first order. Returns ErrNodeNotFound for an unknown start.
// Cycles are tolerated: each node is enqueued once.
//
// Complexity: O(V+E).
func (c *Chart) Reachable(from string) ([]string, error) {
	if !c.Has(from) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	order, _ := c.bfs(from)
	return order, nil
}

// RouteTo returns the shortest route (fewest edges) from Start to target.
// Ties resolve towards the yes branch. ErrNodeNotFound for an unknown
// target, ErrUnreachable when no route exists.
func (c *Chart) RouteTo(target string) (Route, error) {
	if !c.Has(target) {
		return Route{}, fmt.Errorf("%w: %q", ErrNodeNotFound, target)
	}
	_, parent := c.bfs(c.startID)
	if _, ok := parent[target]; !ok && target != c.startID {
		return Route{}, fmt.Errorf("%w: %q", ErrUnreachable, target)
	}

	// unwind parent links target → start, then reverse
	var rev []string
	for id := target; ; id = parent[id] {
		rev = append(rev, id)
		if id == c.startID {
			break
		}
	}
	r := Route{Nodes: make([]string, len(rev))}
	for i, id := range rev {
		r.Nodes[len(rev)-1-i] = id
	}
	for i := 0; i+1 < len(r.Nodes); i++ {
		n := c.nodes[r.Nodes[i]]
		if n.kind != Decision {
			continue
		}
		if y, _ := n.YesTarget(); y == r.Nodes[i+1] {
			r.Answers = append(r.Answers, Yes)
		} else {
			r.Answers = append(r.Answers, No)
		}
	}
	return r, nil
}

// bfs walks from root and returns the visit order and the parent of every
// reached node except root.
func (c *Chart) bfs(root string) ([]string, map[string]string) {
	order := make([]string, 0, len(c.order))
	parent := make(map[string]string, len(c.order))
	visited := map[string]bool{root: true}
	queue := []string{root}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		for _, nbr := range c.nodes[id].Targets() {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			parent[nbr] = id
			queue = append(queue, nbr)
		}
	}
	return order, parent
}
