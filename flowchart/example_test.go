package flowchart_test

import (
	"fmt"

	"github.com/katalvlaran/algomap/flowchart"
)

// ExampleSession shows the exploration trail: jumping back to an earlier node
// moves the focus but never reorders or duplicates the trail.
func ExampleSession() {
	s := flowchart.CheatSheet().NewSession()

	_ = s.Visit(flowchart.CheatSampleSize)
	_ = s.Visit(flowchart.CheatPredictCategory)
	_ = s.Visit(flowchart.CheatRegression)
	_ = s.Visit(flowchart.CheatPredictCategory) // revisit

	fmt.Println("current:", s.Current())
	fmt.Println("trail:  ", s.Trail())

	s.Reset()
	fmt.Println("reset:  ", s.Trail())

	// Output:
	// current: predict_category
	// trail:   [start sample_size predict_category regression]
	// reset:   [start]
}

// ExampleChart_Walk replays yes/no answers through the cheat sheet.
func ExampleChart_Walk() {
	c := flowchart.CheatSheet()
	r, err := c.Walk(flowchart.Yes, flowchart.No, flowchart.No, flowchart.Yes)
	if err != nil {
		fmt.Println(err)
		return
	}
	out, _ := c.Lookup(r.Outcome())
	fmt.Println(r.Nodes)
	fmt.Println(out.Label(), "/", out.LabelSecondary())

	// Output:
	// [start sample_size predict_category predict_quantity just_looking dimensionality_reduction]
	// Dimensionality Reduction / 降维
}

// ExampleBranchTarget shows that an unset branch is a dead end, not an error.
func ExampleBranchTarget() {
	q, _ := flowchart.NewDecision("q", "Labeled?", "", "classification", "")

	yes, ok, _ := flowchart.BranchTarget(q, flowchart.Yes)
	fmt.Println(yes, ok)
	_, ok, err := flowchart.BranchTarget(q, flowchart.No)
	fmt.Println(ok, err)

	// Output:
	// classification true
	// false <nil>
}
