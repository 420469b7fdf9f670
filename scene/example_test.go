package scene_test

import (
	"fmt"

	"github.com/katalvlaran/algomap/scene"
)

func ExampleParseHex() {
	c, _ := scene.ParseHex("#ff0000")
	fmt.Println(c.R, c.G, c.B)

	// Output: 1 0 0
}

// ExampleBuild builds the default background and checks the line buffer
// layout: six floats per edge.
func ExampleBuild() {
	sc, err := scene.Build(scene.WithSeed(2024))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(sc.Particles), len(sc.Nodes), len(sc.Lines) == 6*len(sc.Edges))

	// Output: 200 30 true
}
