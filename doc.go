// Package lvlpath finds minimum-cost paths through weighted grid levels.
//
// A level is a grid of spaces, each with a base cost, separated by walls and
// marked with lettered waypoints. Moving between two neighboring spaces costs
// the mean of their base costs, scaled by √2 for a diagonal step.
//
// What is inside:
//
//	gridgraph/ - Cell, Level, the edge cost model and 4/8-way adjacency
//	dijkstra/  - shortest path to one destination or to every reachable cell
//	levelio/   - text level format, terminal rendering, CSV cost export
//	navigate/  - waypoint-level planner used by the CLI and the server
//	storage/   - SQLite archive of exported cost maps
//	config/    - YAML configuration with embedded defaults
//	server/    - read-only JSON API over loaded levels
//	cmd/lvlpath - command-line front end
//
// Quick example (levels/islands.txt):
//
//	XXXXXXXXXX
//	Xa  XX  bX
//	X   XX   X
//	XXXXXXXXXX
//
// a and b sit in separate regions, so `lvlpath route levels/islands.txt a b`
// prints "No path possible!".
//
//	go install github.com/katalvlaran/lvlpath/cmd/lvlpath@latest
package lvlpath
