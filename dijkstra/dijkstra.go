package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/lvlpath/gridgraph"
)

// ShortestPath finds a minimum-cost path from source to destination over adj.
//
// The search is label-setting: the frontier is a min-heap keyed by tentative
// distance, ties broken by discovery order, and a cell is finalized when it is
// extracted. It stops as soon as destination is extracted.
//
// An unreachable destination is not an error: the Result has Found == false.
// source == destination yields the single-cell path with cost 0.
//
// Returns ErrNilAdjacency if adj is nil, or ErrOptionViolation for invalid options.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over the reachable part of the graph.
//   - Space: O(V).
func ShortestPath(adj gridgraph.Adjacency, source, destination gridgraph.Cell, opts ...Option) (Result, error) {
	// 1) Validate options and adjacency.
	r, err := newRunner(adj, opts)
	if err != nil {
		return Result{}, err
	}

	// 2) Search until destination is finalized or the frontier drains.
	found := r.run(&destination, source)
	r.report()
	if !found {
		return Result{Cost: math.Inf(1), Stats: r.stats}, nil
	}

	// 3) Rebuild the path from the predecessor chain.
	return Result{
		Path:  r.path(destination),
		Cost:  r.items[destination].dist,
		Found: true,
		Stats: r.stats,
	}, nil
}

// ShortestPathToAll computes the minimum cost from source to every cell
// reachable over adj. The frontier is drained completely; unreachable cells
// are absent from the result. An isolated source yields {source: 0}.
//
// Returns ErrNilAdjacency if adj is nil, or ErrOptionViolation for invalid options.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func ShortestPathToAll(adj gridgraph.Adjacency, source gridgraph.Cell, opts ...Option) (map[gridgraph.Cell]float64, error) {
	r, err := newRunner(adj, opts)
	if err != nil {
		return nil, err
	}

	r.run(nil, source)
	r.report()

	// Everything discovered was finalized once the frontier drained.
	dist := make(map[gridgraph.Cell]float64, len(r.items))
	for c, it := range r.items {
		dist[c] = it.dist
	}
	return dist, nil
}

// runner holds the mutable state for a single search execution.
// The items map doubles as the distance and predecessor maps.
type runner struct {
	adj     gridgraph.Adjacency              // adjacency capability; read-only, called once per finalized cell
	options Options                          // resolved configuration (MaxCost cap, OnSettle hook, Stats sink)
	items   map[gridgraph.Cell]*frontierItem // every discovered cell: distance, predecessor, heap index
	pq      frontier                         // cells discovered but not finalized, keyed by (dist, seq)
	seq     uint64                           // discovery counter; equal distances pop in discovery order
	stats   Stats                            // counters for this call, copied out by report
}

// newRunner applies opts over the defaults and rejects invalid input.
func newRunner(adj gridgraph.Adjacency, opts []Option) (*runner, error) {
	// 1) Defaults, then every option in order; the first invalid one is kept.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	// 2) Option errors take precedence over a nil adjacency.
	if cfg.err != nil {
		return nil, cfg.err
	}
	if adj == nil {
		return nil, ErrNilAdjacency
	}

	return &runner{
		adj:     adj,
		options: cfg,
		items:   make(map[gridgraph.Cell]*frontierItem),
	}, nil
}

// run seeds the frontier with source and processes it until it drains or,
// when stopAt is non-nil, until *stopAt is extracted. It reports whether
// *stopAt was reached.
func (r *runner) run(stopAt *gridgraph.Cell, source gridgraph.Cell) bool {
	// 1) Seed: source at distance 0 with no predecessor.
	r.discover(source, 0, gridgraph.Cell{}, false)

	for r.pq.Len() > 0 {
		// 2) Extract the cheapest frontier cell. Pop leaves the item with
		// index -1: the cell is now finalized.
		it := heap.Pop(&r.pq).(*frontierItem)
		r.stats.Pops++
		r.options.OnSettle(it.cell, it.dist)

		// 3) Early exit for a targeted search.
		if stopAt != nil && it.cell == *stopAt {
			return true
		}
		// 4) Push or improve its neighbors.
		r.relax(it)
	}

	return false
}

// relax examines every edge out of the finalized item u.
// A new cell enters the frontier; a frontier cell reached more cheaply has its
// key decreased in place. Finalized cells are never touched again.
func (r *runner) relax(u *frontierItem) {
	for _, n := range r.adj(u.cell) {
		r.stats.Relaxations++
		// 1) Tentative distance through u, dropped past the cap.
		candidate := u.dist + n.Cost
		if candidate > r.options.MaxCost {
			continue
		}

		// 2) First sighting: the cell joins the frontier.
		v, seen := r.items[n.Cell]
		if !seen {
			r.discover(n.Cell, candidate, u.cell, true)
			continue
		}
		// 3) Finalized, or not strictly cheaper: leave it.
		if v.index < 0 || candidate >= v.dist {
			continue
		}
		// 4) Decrease-key in place.
		v.dist = candidate
		v.pred = u.cell
		heap.Fix(&r.pq, v.index)
		r.stats.Improvements++
	}
}

func (r *runner) discover(c gridgraph.Cell, dist float64, pred gridgraph.Cell, hasPred bool) {
	it := &frontierItem{
		cell:    c,
		dist:    dist,
		pred:    pred,
		hasPred: hasPred,
		seq:     r.seq,
	}
	r.seq++
	r.items[c] = it
	heap.Push(&r.pq, it)
}

// path walks predecessors back from destination and reverses the result.
func (r *runner) path(destination gridgraph.Cell) []gridgraph.Cell {
	var path []gridgraph.Cell
	for it := r.items[destination]; ; it = r.items[it.pred] {
		path = append(path, it.cell)
		if !it.hasPred {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (r *runner) report() {
	if r.options.Stats != nil {
		*r.options.Stats = r.stats
	}
}

// frontierItem is a discovered cell with its best-known distance.
// index is its position in the heap, or -1 once extracted.
type frontierItem struct {
	cell    gridgraph.Cell
	dist    float64
	pred    gridgraph.Cell
	hasPred bool
	seq     uint64
	index   int
}

// frontier is a min-heap of *frontierItem ordered by dist, then seq.
// Items track their own index so a decreased key can be restored with heap.Fix.
type frontier []*frontierItem

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq frontier) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *frontier) Push(x any) {
	it := x.(*frontierItem)
	it.index = len(*pq)
	*pq = append(*pq, it)
}

func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*pq = old[:n-1]
	return it
}
