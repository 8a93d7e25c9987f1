// Package gridgraph treats a 2D level of weighted cells as an implicit graph,
// the input to the dijkstra search engine.
//
// What:
//
//   - Level holds the traversable cells ("spaces") with their base costs,
//     the named waypoints, and the walls seen by the loader.
//   - EdgeCost derives the cost of stepping between two adjacent cells.
//   - Neighbors / Level.Adjacency enumerate the 8 (or 4) neighbors of a cell
//     that exist in the level, each paired with its edge cost.
//   - Regions groups spaces into connected regions ("islands").
//
// Why:
//
//   - Game maps: walls are absent cells, rough terrain carries a higher cost.
//   - The edge cost averages half of each endpoint's cost and scales it by the
//     step length (1 orthogonal, √2 diagonal), so the total cost of a path
//     approximates integrating cell difficulty along its length.
//
// Complexity:
//
//   - EdgeCost:  O(1).
//   - Neighbors: O(d), d = 4 or 8.
//   - Regions:   O(S×d), Memory: O(S), S = number of spaces.
//
// Options:
//
//   - Options.Conn: Conn8 (default) or Conn4.
//   - Options.CornerCutting: true (default) allows a diagonal step whenever
//     the diagonal cell itself is open; false also requires both orthogonal
//     corner cells to be open.
//
// Errors:
//
//   - ErrEmptyLevel: the level has no spaces.
//   - ErrBadCost: a base cost is negative, NaN or infinite.
//   - ErrWaypointNotSpace: a waypoint does not name a space.
//   - ErrDuplicateWaypoint: two labels name the same cell.
//   - ErrUnknownWaypoint: a waypoint label lookup failed.
//
// A Level is immutable once built and may be shared read-only between
// goroutines.
package gridgraph
