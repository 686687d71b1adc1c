// Package astar finds minimum-cost routes between two cells of a
// gridgraph.Grid.
//
// Options:
//
//	– WithConnectivity / WithDiagonals: Conn4 (default: the grid's own) or Conn8.
//	– WithHeuristic:     Manhattan (default), Chebyshev, Zero or a custom func.
//	– WithContext:       cancel a long search between expansions.
//	– WithOnExpand:      observe every expanded cell (e.g. to paint a UI).
//	– WithMaxExpansions: per-call expansion budget.
//
// Tie-break policy:
//
//	Among open cells with equal f = g + h, the one with the lower h wins;
//	if h is also equal, the one that entered the open set first wins.
//
// Known approximations:
//
//	– A diagonal step costs 1, the same as an orthogonal step.
//	– A diagonal step is allowed even when both flanking cells are walls.
//	– Manhattan over-estimates under Conn8, so Conn8 paths are not always
//	  shortest. Use WithHeuristic(Chebyshev) when that matters.
//
// Errors (sentinel):
//
//	– ErrNilGrid          if the grid pointer is nil.
//	– ErrInvalidEndpoint  if start or goal is outside the grid.
//	– ErrNoPath           if the goal cannot be reached.
//	– ErrOptionViolation  if an option argument is invalid.
//	– ErrExpansionLimit   if WithMaxExpansions was hit.
//
// Example usage:
//
//	g, _ := gridgraph.NewGrid(5, 5)
//	res, err := astar.FindPath(g, gridgraph.Coord{X: 0, Y: 0}, gridgraph.Coord{X: 4, Y: 4})
//	switch {
//	case errors.Is(err, astar.ErrNoPath):
//	    // walled off
//	case err != nil:
//	    log.Fatal(err)
//	case len(res.Path) == 0:
//	    // already at goal
//	}
package astar
