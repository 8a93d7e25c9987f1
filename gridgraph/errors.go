package gridgraph

import "errors"

var (
	// ErrEmptyLevel indicates the level has no traversable cells.
	ErrEmptyLevel = errors.New("gridgraph: level must have at least one space")
	// ErrBadCost indicates a base cost that is negative, NaN or infinite.
	ErrBadCost = errors.New("gridgraph: space cost must be a finite non-negative number")
	// ErrWaypointNotSpace indicates a waypoint placed on a cell that is not a space.
	ErrWaypointNotSpace = errors.New("gridgraph: waypoint is not on a space")
	// ErrDuplicateWaypoint indicates two labels naming the same cell.
	ErrDuplicateWaypoint = errors.New("gridgraph: two waypoints share a cell")
	// ErrUnknownWaypoint indicates a label that no waypoint carries.
	ErrUnknownWaypoint = errors.New("gridgraph: unknown waypoint")
	// ErrNegativeCell indicates a space or wall with a negative coordinate.
	ErrNegativeCell = errors.New("gridgraph: cell coordinates must be non-negative")
	// ErrNotSpace indicates a bridge endpoint that is not a space.
	ErrNotSpace = errors.New("gridgraph: cell is not a space")
	// ErrNoBridge indicates that no bridge exists within the bounding box.
	ErrNoBridge = errors.New("gridgraph: no bridge between cells")
)
