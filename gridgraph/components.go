package gridgraph

import (
	"container/list"
	"fmt"
	"sort"
)

// Regions finds all contiguous regions ("islands") of spaces under opts
// connectivity. Each region lists its cells sorted by (Y, X); regions are
// ordered by their first cell. Two cells in different regions have no path
// between them.
//
// Time:   O(S·d), where d = 4 or 8.
// Memory: O(S) for visited flags and output.
func (l *Level) Regions(opts Options) [][]Cell {
	cells := sortedCells(l.Spaces)
	seen := make(map[Cell]bool, len(cells))
	var regions [][]Cell

	for _, c0 := range cells {
		if seen[c0] {
			continue
		}
		// BFS to collect the region
		queue := []Cell{c0}
		seen[c0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range l.neighbors(queue[qi], opts) {
				if !seen[n.Cell] {
					seen[n.Cell] = true
					queue = append(queue, n.Cell)
				}
			}
		}
		sortCells(queue)
		regions = append(regions, queue)
	}
	return regions
}

// Bridge finds the fewest non-space cells that would have to be opened to
// connect from and to, together with the path through them (from and to
// inclusive). Stepping onto a space costs 0 and onto any other cell inside
// the Width×Height box costs 1, so a 0-1 BFS over a deque finds the cheapest
// bridge. Cells already in one region yield a path with cost 0.
// With corner cutting disabled the bridge uses orthogonal steps only, so
// every step stays legal once its cells are opened.
// The level itself is never modified.
//
// Returns ErrNotSpace if either endpoint is not a space, and ErrNoBridge if
// to cannot be reached inside the bounding box.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for distances, predecessors and the deque.
func (l *Level) Bridge(opts Options, from, to Cell) ([]Cell, int, error) {
	for _, c := range []Cell{from, to} {
		if !l.HasSpace(c) {
			return nil, 0, fmt.Errorf("%w: %v", ErrNotSpace, c)
		}
	}

	offsets := NeighborOffsets(opts.Conn)
	if !opts.CornerCutting {
		offsets = NeighborOffsets(Conn4)
	}

	// 0-1 BFS: cost-0 steps go to the front of the deque, cost-1 steps to the back.
	dist := map[Cell]int{from: 0}
	prev := make(map[Cell]Cell)
	dq := list.New()
	dq.PushFront(from)

	reached := false
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(Cell)
		if u == to {
			reached = true
			break
		}
		for _, d := range offsets {
			v := Cell{X: u.X + d[0], Y: u.Y + d[1]}
			if !l.InBounds(v) {
				continue
			}
			step := 0
			if !l.HasSpace(v) {
				step = 1
			}
			nd := dist[u] + step
			if old, seen := dist[v]; seen && nd >= old {
				continue
			}
			dist[v] = nd
			prev[v] = u
			if step == 0 {
				dq.PushFront(v)
			} else {
				dq.PushBack(v)
			}
		}
	}
	if !reached {
		return nil, 0, fmt.Errorf("%w: %v to %v", ErrNoBridge, from, to)
	}

	// Walk predecessors back to from, then reverse.
	path := []Cell{to}
	for at := to; at != from; {
		at = prev[at]
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[to], nil
}

func sortedCells(spaces map[Cell]float64) []Cell {
	cells := make([]Cell, 0, len(spaces))
	for c := range spaces {
		cells = append(cells, c)
	}
	sortCells(cells)
	return cells
}

// sortCells orders cells row-major: by Y, then X.
func sortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
}
