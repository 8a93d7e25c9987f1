package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlpath/gridgraph"
)

// randomLevel builds an n×n level with costs in [1,9] and ~20% walls.
func randomLevel(b *testing.B, n int) *gridgraph.Level {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	spaces := make(map[gridgraph.Cell]float64, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if rng.Intn(5) == 0 {
				continue
			}
			spaces[gridgraph.Cell{X: x, Y: y}] = float64(1 + rng.Intn(9))
		}
	}
	l, err := gridgraph.NewLevel(spaces, nil)
	if err != nil {
		b.Fatalf("setup NewLevel failed: %v", err)
	}
	return l
}

// BenchmarkNeighbors measures one adjacency expansion in the middle of a 100×100 level.
// Complexity: O(8)
func BenchmarkNeighbors(b *testing.B) {
	l := uniform(b, 100, 100, 1)
	c := gridgraph.Cell{X: 50, Y: 50}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gridgraph.Neighbors(l, c)
	}
}

// BenchmarkRegions measures Regions on a random 300×300 level.
// Complexity: O(S×d)
func BenchmarkRegions(b *testing.B) {
	l := randomLevel(b, 300)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Regions(gridgraph.DefaultOptions())
	}
}
