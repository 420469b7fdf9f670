package flowchart_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algomap/flowchart"
)

func TestSession_Initial(t *testing.T) {
	c := flowchart.CheatSheet()
	s := c.NewSession()

	assert.Equal(t, c.StartID(), s.Current())
	assert.Equal(t, []string{c.StartID()}, s.Trail())
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.InTrail(c.StartID()))
	assert.NotEqual(t, uuid.Nil, s.ID())
	assert.Same(t, c, s.Chart())
	assert.NotEqual(t, s.ID(), c.NewSession().ID())
}

// TestSession_VisitFirstOccurrenceOrder visits start, q1, q2, then q1 again: the trail
// keeps first-visit order with no duplicates while focus follows each call.
func TestSession_VisitFirstOccurrenceOrder(t *testing.T) {
	c, err := flowchart.New(buildDiamond(t))
	require.NoError(t, err)
	s := c.NewSession()

	require.NoError(t, s.Visit("start"))
	require.NoError(t, s.Visit("q1"))
	require.NoError(t, s.Visit("q2"))
	require.NoError(t, s.Visit("q1"))

	assert.Equal(t, []string{"start", "q1", "q2"}, s.Trail())
	assert.Equal(t, "q1", s.Current(), "revisiting moves the focus")
}

func TestSession_VisitIdempotent(t *testing.T) {
	c, err := flowchart.New(buildDiamond(t))
	require.NoError(t, err)
	s := c.NewSession()

	require.NoError(t, s.Visit("out"))
	before := s.Trail()
	require.NoError(t, s.Visit("out"))
	assert.Equal(t, before, s.Trail())
	assert.Equal(t, "out", s.Current())
}

// TestSession_VisitUnknownLeavesStateUntouched: a failed Visit must not move
// focus or grow the trail.
func TestSession_VisitUnknownLeavesStateUntouched(t *testing.T) {
	c, err := flowchart.New(buildDiamond(t))
	require.NoError(t, err)
	s := c.NewSession()
	require.NoError(t, s.Visit("q2"))

	err = s.Visit("ghost")
	assert.ErrorIs(t, err, flowchart.ErrNodeNotFound)
	assert.Equal(t, "q2", s.Current())
	assert.Equal(t, []string{"start", "q2"}, s.Trail())
	assert.False(t, s.InTrail("ghost"))
}

func TestSession_Reset(t *testing.T) {
	c, err := flowchart.New(buildDiamond(t))
	require.NoError(t, err)
	s := c.NewSession()

	// from the initial state
	s.Reset()
	assert.Equal(t, []string{"start"}, s.Trail())

	for _, id := range []string{"q1", "q2", "dead", "out"} {
		require.NoError(t, s.Visit(id))
	}
	s.Reset()
	assert.Equal(t, "start", s.Current())
	assert.Equal(t, []string{"start"}, s.Trail())
	assert.False(t, s.InTrail("q1"))

	// history really is discarded: q2 is appended fresh
	require.NoError(t, s.Visit("q2"))
	assert.Equal(t, []string{"start", "q2"}, s.Trail())
}

func TestSession_TrailIsCopy(t *testing.T) {
	c, err := flowchart.New(buildDiamond(t))
	require.NoError(t, err)
	s := c.NewSession()
	tr := s.Trail()
	tr[0] = "mutated"
	assert.Equal(t, []string{"start"}, s.Trail())
}

func TestSession_AdvanceAndAnswer(t *testing.T) {
	c, err := flowchart.New(buildDiamond(t))
	require.NoError(t, err)
	s := c.NewSession()

	_, err = s.Answer(flowchart.Yes)
	assert.ErrorIs(t, err, flowchart.ErrNotADecisionNode, "start has no branches")

	id, err := s.Advance()
	require.NoError(t, err)
	assert.Equal(t, "q1", id)

	_, err = s.Advance()
	assert.ErrorIs(t, err, flowchart.ErrDeadEnd)

	id, err = s.Answer(flowchart.Yes)
	require.NoError(t, err)
	assert.Equal(t, "q2", id)

	id, err = s.Answer(flowchart.No)
	require.NoError(t, err)
	assert.Equal(t, "dead", id)
	assert.Equal(t, []string{"start", "q1", "q2", "dead"}, s.Trail())

	_, err = s.Answer(flowchart.Yes)
	assert.ErrorIs(t, err, flowchart.ErrNotADecisionNode)
	assert.Equal(t, "dead", s.Current())
}

func TestSession_AnswerDeadEnd(t *testing.T) {
	must := mustNode(t)
	c, err := flowchart.New([]flowchart.Node{
		must(flowchart.NewStart("s", "S", "", flowchart.WithNext("q"))),
		must(flowchart.NewDecision("q", "Q", "", "x", "")),
		must(flowchart.NewCategory("x", "X", "")),
	})
	require.NoError(t, err)
	s := c.NewSession()
	require.NoError(t, s.Visit("q"))

	_, err = s.Answer(flowchart.No)
	assert.ErrorIs(t, err, flowchart.ErrDeadEnd)
	assert.Equal(t, "q", s.Current())
	assert.Equal(t, []string{"s", "q"}, s.Trail())
}

func TestSession_SnapshotRoundTrip(t *testing.T) {
	c := flowchart.CheatSheet()
	s := c.NewSession()
	require.NoError(t, s.Visit(flowchart.CheatSampleSize))
	require.NoError(t, s.Visit(flowchart.CheatPredictCategory))
	require.NoError(t, s.Visit(flowchart.CheatSampleSize))

	raw, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)

	var snap flowchart.Snapshot
	require.NoError(t, json.Unmarshal(raw, &snap))
	restored, err := c.Restore(snap)
	require.NoError(t, err)

	assert.Equal(t, s.ID(), restored.ID())
	assert.Equal(t, s.Current(), restored.Current())
	assert.Equal(t, s.Trail(), restored.Trail())

	// restored sessions keep the dedup invariant
	require.NoError(t, restored.Visit(flowchart.CheatPredictCategory))
	assert.Equal(t, s.Trail(), restored.Trail())
}

// TestRestore_Errors rejects snapshots whose trail is empty or does not start
// at Start, holds unknown or repeated IDs, or omits Current.
func TestRestore_Errors(t *testing.T) {
	c := flowchart.CheatSheet()
	cases := []struct {
		name string
		snap flowchart.Snapshot
	}{
		{"EmptyTrail", flowchart.Snapshot{Current: "start"}},
		{"WrongHead", flowchart.Snapshot{Current: "regression", Trail: []string{"regression"}}},
		{"UnknownID", flowchart.Snapshot{Current: "start", Trail: []string{"start", "ghost"}}},
		{"Duplicate", flowchart.Snapshot{Current: "start", Trail: []string{"start", "regression", "regression"}}},
		{"CurrentOutsideTrail", flowchart.Snapshot{Current: "regression", Trail: []string{"start"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := c.Restore(tc.snap)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, flowchart.ErrBadSnapshot)
		})
	}

	s, err := c.Restore(flowchart.Snapshot{Current: "start", Trail: []string{"start"}})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, s.ID(), "a nil snapshot ID is replaced")
}
