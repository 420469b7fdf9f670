package proximity_test

import (
	"fmt"

	"github.com/katalvlaran/algomap/proximity"
)

// ExampleBuildEdges shows the strict threshold: a pair exactly 5 apart is
// joined at 5.1 but not at 5.0.
func ExampleBuildEdges() {
	pts := []proximity.Point3D{{X: 0, Y: 0, Z: 0}, {X: 3, Y: 4, Z: 0}, {X: 3, Y: 4, Z: 2}}

	for _, th := range []float64{5.1, 5.0} {
		edges, _ := proximity.BuildEdges(pts, th)
		fmt.Println(th, edges)
	}

	// Output:
	// 5.1 [{0 1} {1 2}]
	// 5 [{1 2}]
}

// ExampleComponents groups points into clusters of mutually linked particles.
func ExampleComponents() {
	pts := []proximity.Point3D{{X: 0}, {X: 10}, {X: 1}, {X: 11}, {X: 20}}
	edges, _ := proximity.BuildEdges(pts, 1.5)
	fmt.Println(proximity.Components(len(pts), edges))

	// Output:
	// [[0 2] [1 3] [4]]
}
