// SPDX-License-Identifier: MIT

// Package algomap is an interactive map for choosing a machine-learning
// algorithm, plus the decorative proximity network drawn behind it.
//
// The work is split across three packages:
//
//	flowchart/  the decision graph: typed nodes, load-time validation,
//	              viewer sessions with an exploration trail, replay,
//	              reachability, cycle detection, YAML documents and the
//	              built-in cheat sheet.
//	proximity/  undirected edges between 3-D points closer than a
//	              threshold, with exhaustive and grid strategies, plus
//	              line buffers, degrees and connected components.
//	scene/      seeded sampling of the particle and network layers,
//	              joined through proximity.
//
// A quick walk through the built-in chart:
//
//	c := flowchart.CheatSheet()
//	route, err := c.Walk(flowchart.Yes, flowchart.Yes, flowchart.No)
//	// route.Outcome() == flowchart.CheatClustering
//
// The cmd/algomap command replays answers from the terminal and logs the
// sampled scene. All library packages are synchronous, allocation-bounded
// and free of I/O except for flowchart's Decode and Encode.
package algomap
