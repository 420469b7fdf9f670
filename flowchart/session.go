// SPDX-License-Identifier: MIT
//
// File: session.go
// Role: per-viewer traversal state (focus + exploration trail).
// Invariants:
//   - trail[0] == chart start ID.
//   - trail holds each ID at most once, in first-visit order.
//   - current is always a member of trail.
//   - Every failing call leaves the session exactly as it was.

package flowchart

import (
	"fmt"

	"github.com/google/uuid"
)

// Session is the mutable state of one viewer walking a Chart.
// It is not safe for concurrent use.
type Session struct {
	id      uuid.UUID
	chart   *Chart
	current string
	trail   []string
	seen    map[string]struct{}
}

// NewSession opens a session focused on the Start node with trail [start].
func (c *Chart) NewSession() *Session {
	s := &Session{id: uuid.New(), chart: c}
	s.Reset()
	return s
}

// ID identifies the session in snapshots and logs.
func (s *Session) ID() uuid.UUID { return s.id }

// Chart returns the chart the session walks.
func (s *Session) Chart() *Chart { return s.chart }

// Current returns the focused node ID.
func (s *Session) Current() string { return s.current }

// CurrentNode returns the focused node.
func (s *Session) CurrentNode() Node { return s.chart.nodes[s.current] }

// Trail returns a copy of the distinct visited IDs in first-visit order.
func (s *Session) Trail() []string {
	out := make([]string, len(s.trail))
	copy(out, s.trail)
	return out
}

// Len returns the trail length.
func (s *Session) Len() int { return len(s.trail) }

// InTrail reports whether id has been visited since the last Reset.
func (s *Session) InTrail(id string) bool {
	_, ok := s.seen[id]
	return ok
}

// Visit focuses id and appends it to the trail on its first visit.
// Revisiting moves the focus only. An unknown id returns ErrNodeNotFound and
// changes nothing.
func (s *Session) Visit(id string) error {
	if _, err := s.chart.Lookup(id); err != nil {
		return err
	}
	s.current = id
	if _, ok := s.seen[id]; !ok {
		s.seen[id] = struct{}{}
		s.trail = append(s.trail, id)
	}
	return nil
}

// Answer follows the current node's branch for a and visits the target.
// It returns the new current ID. ErrNotADecisionNode and ErrDeadEnd leave
// the session unchanged.
func (s *Session) Answer(a Answer) (string, error) {
	target, ok, err := BranchTarget(s.CurrentNode(), a)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: %q has no %s branch", ErrDeadEnd, s.current, a)
	}
	if err = s.Visit(target); err != nil {
		return "", err
	}
	return target, nil
}

// Advance follows the focused Start node's next link and visits it.
// ErrDeadEnd when the focused node has no next link.
func (s *Session) Advance() (string, error) {
	next, ok := s.CurrentNode().Next()
	if !ok {
		return "", fmt.Errorf("%w: %q has no next link", ErrDeadEnd, s.current)
	}
	if err := s.Visit(next); err != nil {
		return "", err
	}
	return next, nil
}

// Reset discards all history: current = start, trail = [start].
// It is valid in any state.
func (s *Session) Reset() {
	start := s.chart.startID
	s.current = start
	s.trail = []string{start}
	s.seen = map[string]struct{}{start: {}}
}

// Snapshot is the serialisable form of a Session.
type Snapshot struct {
	ID      uuid.UUID `json:"id" yaml:"id"`
	Current string    `json:"current" yaml:"current"`
	Trail   []string  `json:"trail" yaml:"trail"`
}

// Snapshot captures the session state. The returned value shares nothing
// with the session.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{ID: s.id, Current: s.current, Trail: s.Trail()}
}

// Restore rebuilds a session from snap. The trail must start with the start
// node, hold only known and distinct IDs, and contain Current; otherwise
// Restore fails with ErrBadSnapshot. A nil snapshot ID gets a fresh one.
func (c *Chart) Restore(snap Snapshot) (*Session, error) {
	if len(snap.Trail) == 0 || snap.Trail[0] != c.startID {
		return nil, fmt.Errorf("%w: trail must begin with %q", ErrBadSnapshot, c.startID)
	}
	seen := make(map[string]struct{}, len(snap.Trail))
	for _, id := range snap.Trail {
		if !c.Has(id) {
			return nil, fmt.Errorf("%w: %w: %q", ErrBadSnapshot, ErrNodeNotFound, id)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %q appears twice", ErrBadSnapshot, id)
		}
		seen[id] = struct{}{}
	}
	if _, ok := seen[snap.Current]; !ok {
		return nil, fmt.Errorf("%w: current %q not in trail", ErrBadSnapshot, snap.Current)
	}

	id := snap.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	trail := make([]string, len(snap.Trail))
	copy(trail, snap.Trail)
	return &Session{id: id, chart: c, current: snap.Current, trail: trail, seen: seen}, nil
}
