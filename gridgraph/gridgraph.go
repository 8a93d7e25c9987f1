package gridgraph

import (
	"fmt"
	"math"
	"sort"
)

// NewLevel constructs a Level from its spaces and waypoints, plus any wall
// cells the caller wants kept for presentation.
// It deep-copies the inputs to ensure immutability.
// Returns ErrEmptyLevel if there are no spaces, ErrNegativeCell for a space
// or wall left of or above the origin, ErrBadCost for a negative, NaN or
// infinite cost, ErrWaypointNotSpace for a waypoint off the spaces, and
// ErrDuplicateWaypoint when two labels share a cell.
// Width and Height cover every space and wall, so rendering and export see
// every cell.
// Algorithmic complexity: O(S + W) time and memory.
func NewLevel(spaces map[Cell]float64, waypoints map[string]Cell, walls ...Cell) (*Level, error) {
	if len(spaces) == 0 {
		return nil, ErrEmptyLevel
	}
	l := &Level{
		Spaces:    make(map[Cell]float64, len(spaces)),
		Waypoints: make(map[string]Cell, len(waypoints)),
		Walls:     make(map[Cell]struct{}, len(walls)),
	}
	for c, cost := range spaces {
		if c.X < 0 || c.Y < 0 {
			return nil, fmt.Errorf("%w: space %v", ErrNegativeCell, c)
		}
		if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
			return nil, fmt.Errorf("%w: %v has cost %v", ErrBadCost, c, cost)
		}
		l.Spaces[c] = cost
		l.grow(c)
	}

	// Labels are checked in sorted order so the reported error is stable.
	labels := make([]string, 0, len(waypoints))
	for label := range waypoints {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	owner := make(map[Cell]string, len(waypoints))
	for _, label := range labels {
		c := waypoints[label]
		if _, ok := l.Spaces[c]; !ok {
			return nil, fmt.Errorf("%w: %q at %v", ErrWaypointNotSpace, label, c)
		}
		if prev, dup := owner[c]; dup {
			return nil, fmt.Errorf("%w: %q and %q at %v", ErrDuplicateWaypoint, prev, label, c)
		}
		owner[c] = label
		l.Waypoints[label] = c
	}

	for _, c := range walls {
		if c.X < 0 || c.Y < 0 {
			return nil, fmt.Errorf("%w: wall %v", ErrNegativeCell, c)
		}
		if _, ok := l.Spaces[c]; ok {
			continue
		}
		l.Walls[c] = struct{}{}
		l.grow(c)
	}

	return l, nil
}

// grow extends the bounding box to include c.
func (l *Level) grow(c Cell) {
	if c.X+1 > l.Width {
		l.Width = c.X + 1
	}
	if c.Y+1 > l.Height {
		l.Height = c.Y + 1
	}
}

// InBounds reports whether c lies within the Width×Height bounding box.
// Complexity: O(1).
func (l *Level) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < l.Width && c.Y >= 0 && c.Y < l.Height
}

// HasSpace reports whether c is a traversable cell.
func (l *Level) HasSpace(c Cell) bool {
	_, ok := l.Spaces[c]
	return ok
}

// IsWall reports whether the loader recorded c as a wall.
func (l *Level) IsWall(c Cell) bool {
	_, ok := l.Walls[c]
	return ok
}

// Cost returns the base cost of c and whether c is a space.
func (l *Level) Cost(c Cell) (float64, bool) {
	cost, ok := l.Spaces[c]
	return cost, ok
}

// Waypoint resolves a label to its cell.
// Returns ErrUnknownWaypoint if no waypoint carries the label.
func (l *Level) Waypoint(label string) (Cell, error) {
	c, ok := l.Waypoints[label]
	if !ok {
		return Cell{}, fmt.Errorf("%w: %q", ErrUnknownWaypoint, label)
	}
	return c, nil
}

// WaypointAt returns the label placed on c, if any.
func (l *Level) WaypointAt(c Cell) (string, bool) {
	for label, wc := range l.Waypoints {
		if wc == c {
			return label, true
		}
	}
	return "", false
}

// WaypointLabels returns all waypoint labels in sorted order.
func (l *Level) WaypointLabels() []string {
	labels := make([]string, 0, len(l.Waypoints))
	for label := range l.Waypoints {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
