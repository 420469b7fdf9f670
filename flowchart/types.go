// SPDX-License-Identifier: MIT

package flowchart

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for flowchart operations.
var (
	// ErrNodeNotFound indicates an ID that is not a key of the chart.
	ErrNodeNotFound = errors.New("flowchart: node not found")

	// ErrNotADecisionNode indicates a branch query on a Start, Category or Terminal node.
	ErrNotADecisionNode = errors.New("flowchart: not a decision node")

	// ErrDeadEnd indicates the requested branch of a decision node is unset.
	ErrDeadEnd = errors.New("flowchart: branch is a dead end")

	// ErrEmptyNodeID indicates a node constructed with an empty ID.
	ErrEmptyNodeID = errors.New("flowchart: node ID is empty")

	// ErrInvalidNode indicates a node whose kind-specific fields are inconsistent.
	ErrInvalidNode = errors.New("flowchart: invalid node")

	// ErrDuplicateNode indicates two nodes sharing one ID.
	ErrDuplicateNode = errors.New("flowchart: duplicate node ID")

	// ErrNoStart indicates a chart without a Start node.
	ErrNoStart = errors.New("flowchart: no start node")

	// ErrMultipleStart indicates a chart with more than one Start node.
	ErrMultipleStart = errors.New("flowchart: multiple start nodes")

	// ErrDanglingTarget indicates a branch pointing at an ID missing from the chart.
	ErrDanglingTarget = errors.New("flowchart: branch target not found")

	// ErrCycleDetected is returned by New when WithAcyclic is set and the chart has a cycle.
	ErrCycleDetected = errors.New("flowchart: cycle detected")

	// ErrUnreachable indicates a node that cannot be reached from Start.
	ErrUnreachable = errors.New("flowchart: node unreachable from start")

	// ErrInvalidAnswer indicates a string that does not parse as yes or no.
	ErrInvalidAnswer = errors.New("flowchart: invalid answer")

	// ErrInvalidDocument indicates a YAML chart document that fails validation.
	ErrInvalidDocument = errors.New("flowchart: invalid document")

	// ErrBadSnapshot indicates a session snapshot inconsistent with its chart.
	ErrBadSnapshot = errors.New("flowchart: bad session snapshot")
)

// Kind classifies a node. The set is closed.
type Kind int

const (
	// Start is the unique entry node of a chart.
	Start Kind = iota
	// Decision is a yes/no question with up to two outgoing branches.
	Decision
	// Category is a classification outcome such as "Regression".
	Category
	// Terminal is a non-category dead end such as "Get More Data".
	Terminal
)

var kindNames = [...]string{
	Start:    "start",
	Decision: "decision",
	Category: "category",
	Terminal: "terminal",
}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if k < Start || k > Terminal {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Outcome reports whether nodes of this kind end a route.
func (k Kind) Outcome() bool { return k == Category || k == Terminal }

// ParseKind converts a kind name back to a Kind. "algorithm" is accepted
// as an alias of Terminal.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start":
		return Start, nil
	case "decision":
		return Decision, nil
	case "category":
		return Category, nil
	case "terminal", "algorithm":
		return Terminal, nil
	}
	return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidNode, s)
}

// Answer selects a branch of a decision node.
type Answer bool

const (
	// Yes follows the yes branch.
	Yes Answer = true
	// No follows the no branch.
	No Answer = false
)

// String returns "yes" or "no".
func (a Answer) String() string {
	if a == Yes {
		return "yes"
	}
	return "no"
}

// ParseAnswer accepts yes/y/true/1 and no/n/false/0, case-insensitively.
func ParseAnswer(s string) (Answer, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1":
		return Yes, nil
	case "no", "n", "false", "0":
		return No, nil
	}
	return No, fmt.Errorf("%w: %q", ErrInvalidAnswer, s)
}

// ParseAnswers splits a comma-separated list such as "yes,no,y" into answers.
// Blank input yields an empty slice.
func ParseAnswers(s string) ([]Answer, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []Answer{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]Answer, 0, len(parts))
	for i, p := range parts {
		a, err := ParseAnswer(p)
		if err != nil {
			return nil, fmt.Errorf("answer %d: %w", i, err)
		}
		out = append(out, a)
	}
	return out, nil
}
