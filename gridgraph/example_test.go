// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleNeighbors lists the neighbors of the corner of a 2×2 level
// where every cell costs 2. Orthogonal edges cost 2, the diagonal 2√2.
func ExampleNeighbors() {
	spaces := map[gridgraph.Cell]float64{
		{X: 0, Y: 0}: 2, {X: 1, Y: 0}: 2,
		{X: 0, Y: 1}: 2, {X: 1, Y: 1}: 2,
	}
	l, _ := gridgraph.NewLevel(spaces, nil)

	for _, n := range gridgraph.Neighbors(l, gridgraph.Cell{X: 0, Y: 0}) {
		fmt.Printf("%v %.3f\n", n.Cell, n.Cost)
	}
	// Output:
	// (1,0) 2.000
	// (1,1) 2.828
	// (0,1) 2.000
}

////////////////////////////////////////////////////////////////////////////////
// Example: Regions
////////////////////////////////////////////////////////////////////////////////

// ExampleLevel_Regions splits a level in two with a wall column.
//
//	. X .
//	. X .
func ExampleLevel_Regions() {
	spaces := map[gridgraph.Cell]float64{
		{X: 0, Y: 0}: 1, {X: 2, Y: 0}: 1,
		{X: 0, Y: 1}: 1, {X: 2, Y: 1}: 1,
	}
	l, _ := gridgraph.NewLevel(spaces, nil, gridgraph.Cell{X: 1, Y: 0}, gridgraph.Cell{X: 1, Y: 1})

	for i, region := range l.Regions(gridgraph.DefaultOptions()) {
		fmt.Printf("region %d: %v\n", i, region)
	}
	// Output:
	// region 0: [(0,0) (0,1)]
	// region 1: [(2,0) (2,1)]
}
