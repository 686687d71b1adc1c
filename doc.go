// Package gridpath is a small toolkit for planning and following routes
// across 2D tile grids.
//
// 🚀 What is gridpath?
//
//	A grid navigation stack that brings together:
//		• Grids: walkable/blocked cells, 4- or 8-connectivity, world mapping
//		• Search: A* with a deterministic tie-break and per-call scratch state
//		• Motion: a waypoint follower that walks a planned path over time
//		• Boards: start/goal bookkeeping with wall editing and re-planning
//		• Scenarios: YAML map files
//
// Under the hood, everything is organized in subpackages:
//
//	gridgraph/   Grid, Coord, Cell, snapshots, BFS distances, components
//	astar/       FindPath, heuristics and search options
//	follow/      Follower: waypoints, arrival tolerance, speed
//	board/       Board: endpoints, walls, last planned path
//	scenario/    YAML loader producing ready-to-plan boards
//	cmd/gridnav/ interactive terminal front-end
//
// Quick ASCII example:
//
//	S . # .
//	. . # G
//	. . . .
//
// takes 6 steps from S to G under 4-connectivity, detouring below the wall.
//
//	go run github.com/katalvlaran/gridpath/cmd/gridnav -map maps/corridor.yaml
package gridpath
