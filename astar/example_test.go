package astar_test

import (
	"fmt"

	"github.com/katalvlaran/pitchers/astar"
	"github.com/katalvlaran/pitchers/pitcher"
)

// ExampleSearch measures 4 units with a 3- and a 5-unit pitcher and prints
// the winning actions.
func ExampleSearch() {
	caps, err := pitcher.NewCapacities(3, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := astar.Search(caps, 4, astar.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("steps:", res.Steps)
	fmt.Println("final:", res.Goal)
	for _, m := range res.Path {
		fmt.Println(m)
	}
	// Output:
	// steps: 7
	// final: (0,5|4)
	// fill 0 (3)
	// empty 0 (3)
	// fill 0 (3)
	// pour 0->1 (3)
	// fill 0 (3)
	// pour 0->1 (2)
	// empty 0 (1)
}
