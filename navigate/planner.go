// Package navigate ties a level to the search engine: it resolves waypoint
// labels, builds the adjacency from the configured options, and runs the
// targeted and exhaustive searches.
package navigate

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvlpath/dijkstra"
	"github.com/katalvlaran/lvlpath/gridgraph"
	"github.com/katalvlaran/lvlpath/levelio"
)

var (
	// ErrUnknownWaypoint indicates a label the level does not define.
	// It matches gridgraph.ErrUnknownWaypoint under errors.Is.
	ErrUnknownWaypoint = fmt.Errorf("navigate: %w", gridgraph.ErrUnknownWaypoint)
	// ErrNilLevel is returned by NewPlanner when no level is given.
	ErrNilLevel = errors.New("navigate: nil level")
)

// Planner answers route and cost queries against one level.
// It is safe for concurrent use; every query allocates its own search state.
type Planner struct {
	level   *gridgraph.Level
	search  gridgraph.Options
	adj     gridgraph.Adjacency
	maxCost float64
	logger  *log.Logger
}

// Option configures a Planner.
type Option func(*Planner)

// WithSearchOptions sets connectivity and the corner-cutting policy.
func WithSearchOptions(opts gridgraph.Options) Option {
	return func(p *Planner) { p.search = opts }
}

// WithMaxCost bounds both searches; cells beyond max count as unreachable.
// A value of zero or less leaves the search unbounded.
func WithMaxCost(max float64) Option {
	return func(p *Planner) {
		if max > 0 {
			p.maxCost = max
		}
	}
}

// WithLogger sets the logger used for debug output. nil is ignored.
func WithLogger(l *log.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPlanner returns a Planner for l.
// Defaults: 8-connectivity, corner cutting allowed, unbounded cost, silent logger.
func NewPlanner(l *gridgraph.Level, opts ...Option) (*Planner, error) {
	if l == nil {
		return nil, ErrNilLevel
	}
	p := &Planner{
		level:   l,
		search:  gridgraph.DefaultOptions(),
		maxCost: math.Inf(1),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.adj = l.Adjacency(p.search)

	return p, nil
}

// Level returns the planner's level.
func (p *Planner) Level() *gridgraph.Level { return p.level }

// Resolve maps a waypoint label to its cell.
func (p *Planner) Resolve(label string) (gridgraph.Cell, error) {
	c, err := p.level.Waypoint(label)
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", ErrUnknownWaypoint, label)
	}
	return c, nil
}

// Route finds the minimum-cost path between two labelled waypoints.
// An unreachable destination yields Found == false and a nil error.
func (p *Planner) Route(src, dst string) (dijkstra.Result, error) {
	from, err := p.Resolve(src)
	if err != nil {
		return dijkstra.Result{}, err
	}
	to, err := p.Resolve(dst)
	if err != nil {
		return dijkstra.Result{}, err
	}
	p.logger.Debug("route", "from", src, "at", from, "to", dst, "at_dst", to)

	res, err := dijkstra.ShortestPath(p.adj, from, to, dijkstra.WithMaxCost(p.maxCost))
	if err != nil {
		return dijkstra.Result{}, fmt.Errorf("navigate: route %s to %s: %w", src, dst, err)
	}
	p.logger.Debug("route done",
		"found", res.Found, "cost", res.Cost, "steps", len(res.Path),
		"pops", res.Stats.Pops, "relaxations", res.Stats.Relaxations)

	return res, nil
}

// CostsFrom computes the minimum cost from a labelled waypoint to every reachable cell.
func (p *Planner) CostsFrom(src string) (map[gridgraph.Cell]float64, error) {
	from, err := p.Resolve(src)
	if err != nil {
		return nil, err
	}

	var stats dijkstra.Stats
	costs, err := dijkstra.ShortestPathToAll(p.adj, from,
		dijkstra.WithMaxCost(p.maxCost), dijkstra.WithStats(&stats))
	if err != nil {
		return nil, fmt.Errorf("navigate: costs from %s: %w", src, err)
	}
	p.logger.Debug("costs done", "from", src, "reachable", len(costs), "spaces", len(p.level.Spaces),
		"pops", stats.Pops, "improvements", stats.Improvements)

	return costs, nil
}

// Bridge lists the fewest non-space cells that would have to be opened for
// src to reach dst, in path order. It is empty when a route already exists.
func (p *Planner) Bridge(src, dst string) ([]gridgraph.Cell, error) {
	from, err := p.Resolve(src)
	if err != nil {
		return nil, err
	}
	to, err := p.Resolve(dst)
	if err != nil {
		return nil, err
	}

	path, cost, err := p.level.Bridge(p.search, from, to)
	if err != nil {
		return nil, fmt.Errorf("navigate: bridge %s to %s: %w", src, dst, err)
	}
	walls := make([]gridgraph.Cell, 0, cost)
	for _, c := range path {
		if !p.level.HasSpace(c) {
			walls = append(walls, c)
		}
	}
	p.logger.Debug("bridge", "from", src, "to", dst, "cells", cost)
	return walls, nil
}

// ShowRoute renders the level, searches from src to dst, and reports the outcome to w:
// "Path from src to dst found" followed by the overlaid level, or "No path possible!"
// with the cells that would have to be opened to connect them.
func (p *Planner) ShowRoute(w io.Writer, src, dst string, ro levelio.RenderOptions) (dijkstra.Result, error) {
	if err := levelio.Show(w, p.level, nil, ro); err != nil {
		return dijkstra.Result{}, err
	}
	res, err := p.Route(src, dst)
	if err != nil {
		return dijkstra.Result{}, err
	}
	if !res.Found {
		if _, err = fmt.Fprintln(w, "No path possible!"); err != nil {
			return res, err
		}
		// A cost cap can leave the two waypoints connected; only report a real gap.
		walls, err := p.Bridge(src, dst)
		if err != nil || len(walls) == 0 {
			return res, err
		}
		_, err = fmt.Fprintf(w, "Opening %d cell(s) would connect %s and %s: %v\n", len(walls), src, dst, walls)
		return res, err
	}
	if _, err = fmt.Fprintf(w, "Path from %s to %s found\n", src, dst); err != nil {
		return res, err
	}
	return res, levelio.Show(w, p.level, res.Path, ro)
}

// ExportCosts computes costs from src and writes them as CSV to path.
func (p *Planner) ExportCosts(src, path string) (map[gridgraph.Cell]float64, error) {
	costs, err := p.CostsFrom(src)
	if err != nil {
		return nil, err
	}
	if err := levelio.SaveCosts(p.level, costs, path); err != nil {
		return nil, err
	}
	p.logger.Info("costs saved", "from", src, "path", path)
	return costs, nil
}
