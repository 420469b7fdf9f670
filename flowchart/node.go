// SPDX-License-Identifier: MIT
//
// File: node.go
// Role: the Node variant and its kind-specific constructors.
// Policy:
//   - Node fields are unexported; a Node can only be obtained from a
//     constructor, so the kind/branch rules hold for every value in a Chart.
//   - Nodes are values. Copying one never aliases mutable state.

package flowchart

import "fmt"

// Node is one entry of a Chart. The zero value is not a valid node.
type Node struct {
	id        string
	kind      Kind
	label     string
	label2    string
	desc      string
	desc2     string
	next      string // Start only: the first question; "" = unset
	yesTarget string // Decision only; "" = unset
	noTarget  string // Decision only; "" = unset
}

// NodeOption sets optional display detail on a node.
type NodeOption func(*Node)

// WithDescription sets the primary description shown in node details.
func WithDescription(s string) NodeOption {
	return func(n *Node) { n.desc = s }
}

// WithDescriptionSecondary sets the secondary-language description.
func WithDescriptionSecondary(s string) NodeOption {
	return func(n *Node) { n.desc2 = s }
}

// WithNext links a Start node to the first node of the chart. Start nodes
// have no yes/no branches; this link is what roots the graph at Start.
// It is rejected on every other kind.
func WithNext(id string) NodeOption {
	return func(n *Node) { n.next = id }
}

// NewStart builds the entry node of a chart.
func NewStart(id, label, labelSecondary string, opts ...NodeOption) (Node, error) {
	return newLeaf(id, Start, label, labelSecondary, opts)
}

// NewCategory builds a classification outcome node.
func NewCategory(id, label, labelSecondary string, opts ...NodeOption) (Node, error) {
	return newLeaf(id, Category, label, labelSecondary, opts)
}

// NewTerminal builds a non-category dead-end node.
func NewTerminal(id, label, labelSecondary string, opts ...NodeOption) (Node, error) {
	return newLeaf(id, Terminal, label, labelSecondary, opts)
}

// NewDecision builds a yes/no question. Either target may be empty, meaning
// that branch is a dead end, but not both.
// Self-references are allowed here; cycle rejection is a chart-level option.
func NewDecision(id, label, labelSecondary, yes, no string, opts ...NodeOption) (Node, error) {
	if id == "" {
		return Node{}, ErrEmptyNodeID
	}
	if yes == "" && no == "" {
		return Node{}, fmt.Errorf("%w: decision %q has neither yes nor no target", ErrInvalidNode, id)
	}
	n := Node{id: id, kind: Decision, label: label, label2: labelSecondary, yesTarget: yes, noTarget: no}
	for _, opt := range opts {
		opt(&n)
	}
	if n.next != "" {
		return Node{}, fmt.Errorf("%w: decision %q cannot carry a next link", ErrInvalidNode, id)
	}
	return n, nil
}

func newLeaf(id string, k Kind, label, labelSecondary string, opts []NodeOption) (Node, error) {
	if id == "" {
		return Node{}, ErrEmptyNodeID
	}
	n := Node{id: id, kind: k, label: label, label2: labelSecondary}
	for _, opt := range opts {
		opt(&n)
	}
	if n.next != "" && k != Start {
		return Node{}, fmt.Errorf("%w: %v node %q cannot carry a next link", ErrInvalidNode, k, id)
	}
	return n, nil
}

// newNode dispatches to the constructor for k. Used by Decode.
func newNode(k Kind, id, label, labelSecondary, yes, no string, opts ...NodeOption) (Node, error) {
	if k == Decision {
		return NewDecision(id, label, labelSecondary, yes, no, opts...)
	}
	if k < Start || k > Terminal {
		return Node{}, fmt.Errorf("%w: %q has unknown kind %v", ErrInvalidNode, id, k)
	}
	if yes != "" || no != "" {
		return Node{}, fmt.Errorf("%w: %v node %q cannot have branch targets", ErrInvalidNode, k, id)
	}
	return newLeaf(id, k, label, labelSecondary, opts)
}

// ID returns the unique node key.
func (n Node) ID() string { return n.id }

// Kind returns the node kind.
func (n Node) Kind() Kind { return n.kind }

// Label returns the primary display label.
func (n Node) Label() string { return n.label }

// LabelSecondary returns the secondary-language label.
func (n Node) LabelSecondary() string { return n.label2 }

// Description returns the primary description.
func (n Node) Description() string { return n.desc }

// DescriptionSecondary returns the secondary-language description.
func (n Node) DescriptionSecondary() string { return n.desc2 }

// YesTarget returns the yes branch and whether it is set.
func (n Node) YesTarget() (string, bool) { return n.yesTarget, n.yesTarget != "" }

// NoTarget returns the no branch and whether it is set.
func (n Node) NoTarget() (string, bool) { return n.noTarget, n.noTarget != "" }

// Next returns the Start node's link to the first node and whether it is set.
func (n Node) Next() (string, bool) { return n.next, n.next != "" }

// Targets lists every outgoing edge: the next link of a Start node, or the
// set branches of a Decision node, yes before no. Outcomes return nil.
func (n Node) Targets() []string {
	if n.kind == Start && n.next != "" {
		return []string{n.next}
	}
	if n.kind != Decision {
		return nil
	}
	out := make([]string, 0, 2)
	if n.yesTarget != "" {
		out = append(out, n.yesTarget)
	}
	if n.noTarget != "" {
		out = append(out, n.noTarget)
	}
	return out
}

// String renders the node as "kind:id".
func (n Node) String() string { return n.kind.String() + ":" + n.id }

// BranchTarget returns the target of the answer's branch on a decision node.
// An unset branch yields ("", false, nil): a dead end, not an error.
// Any other kind fails with ErrNotADecisionNode.
func BranchTarget(n Node, a Answer) (string, bool, error) {
	if n.kind != Decision {
		return "", false, fmt.Errorf("%w: %s", ErrNotADecisionNode, n)
	}
	if a == Yes {
		t, ok := n.YesTarget()
		return t, ok, nil
	}
	t, ok := n.NoTarget()
	return t, ok, nil
}
