package engine_test

import (
	"fmt"

	"github.com/katalvlaran/ninefold/engine"
)

func ExampleEngine_Analyze() {
	e := engine.Default()

	// A sequence that reads the same both ways has no directional bias.
	r, err := e.Analyze([]int{1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 9, 8, 5, 3, 5, 6, 2, 9, 5, 1, 4, 1})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Ω=%.4f level=%s tracks=%d\n", r.Omega, r.Level, len(r.Tracks))

	r, _ = e.Analyze([]int{3, 1, 4})
	fmt.Println(r.Warning())
	// Output:
	// Ω=0.0000 level=none tracks=4
	// engine: sequence shorter than one block
}
