package gridgraph

// Neighbor offsets in clockwise order starting north.
var (
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
)

// NeighborOffsets returns the (dx,dy) offsets examined under conn.
// The returned slice must not be modified.
func NeighborOffsets(conn Connectivity) [][2]int {
	if conn == Conn4 {
		return offsets4
	}
	return offsets8
}

// Neighbors returns the 8-directional neighbors of c that are spaces of l,
// each paired with its EdgeCost. The order follows NeighborOffsets and is
// not sorted by cost.
// Complexity: O(8).
func Neighbors(l *Level, c Cell) []Neighbor {
	return l.neighbors(c, DefaultOptions())
}

// Adjacency returns the adjacency capability of l under opts.
// The returned function only reads l and is safe for concurrent use.
func (l *Level) Adjacency(opts Options) Adjacency {
	return func(c Cell) []Neighbor {
		return l.neighbors(c, opts)
	}
}

func (l *Level) neighbors(c Cell, opts Options) []Neighbor {
	offsets := NeighborOffsets(opts.Conn)
	out := make([]Neighbor, 0, len(offsets))
	for _, d := range offsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if _, ok := l.Spaces[n]; !ok {
			continue
		}
		if !opts.CornerCutting && d[0] != 0 && d[1] != 0 {
			// Both orthogonal corners must be open.
			if !l.HasSpace(Cell{X: c.X + d[0], Y: c.Y}) || !l.HasSpace(Cell{X: c.X, Y: c.Y + d[1]}) {
				continue
			}
		}
		out = append(out, Neighbor{Cell: n, Cost: EdgeCost(l, c, n)})
	}
	return out
}
