package gridgraph

import "fmt"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	if c == Conn4 {
		return "4"
	}
	return "8"
}

// Cell is an integer grid coordinate. It is a value type and is used as a map key.
type Cell struct {
	X, Y int
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Neighbor is one adjacency entry: a reachable cell and the cost of the edge to it.
type Neighbor struct {
	Cell Cell
	Cost float64
}

// Adjacency enumerates the neighbors of a cell together with their edge costs.
// The search engine consumes adjacency only through this type, so any graph
// over Cell identifiers can be plugged in.
type Adjacency func(c Cell) []Neighbor

// Options contains tunable parameters for adjacency generation.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// CornerCutting allows a diagonal step even when one or both of the
	// orthogonal corner cells is a wall.
	CornerCutting bool
}

// DefaultOptions returns Conn8 with corner cutting allowed.
func DefaultOptions() Options {
	return Options{
		Conn:          Conn8,
		CornerCutting: true,
	}
}

// Level is a read-only snapshot of a weighted grid.
// Spaces maps every traversable cell to its base cost; walls are simply absent.
// Waypoints maps labels to cells of interest.
// Walls and the Width×Height bounding box are kept for presentation only;
// the search never reads them.
type Level struct {
	Width, Height int
	Spaces        map[Cell]float64
	Waypoints     map[string]Cell
	Walls         map[Cell]struct{}
}
