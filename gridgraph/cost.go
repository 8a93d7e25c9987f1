package gridgraph

import "math"

// halfDiagonal is 0.5·√2, the share of a diagonal step charged to each endpoint.
const halfDiagonal = 0.5 * math.Sqrt2

// EdgeCost returns the cost of the edge between two distinct 8-adjacent spaces.
//
// A diagonal step (both coordinates differ by 1) costs
// 0.5·√2·cost(a) + 0.5·√2·cost(b); an orthogonal step costs
// 0.5·cost(a) + 0.5·cost(b). The result is symmetric in a and b.
//
// Both cells must be spaces of l and adjacent; EdgeCost does not re-check
// this, it sits in the inner loop of every search.
// Complexity: O(1).
func EdgeCost(l *Level, a, b Cell) float64 {
	ca, cb := l.Spaces[a], l.Spaces[b]
	if isDiagonal(a, b) {
		return halfDiagonal*ca + halfDiagonal*cb
	}
	return 0.5*ca + 0.5*cb
}

func isDiagonal(a, b Cell) bool {
	return abs(a.X-b.X) == 1 && abs(a.Y-b.Y) == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
