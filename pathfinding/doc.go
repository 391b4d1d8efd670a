// Package pathfinding routes connectors between class boxes on a canvas.
//
// A route is computed in stages:
//
//  1. Shortcut: when the straight segment start→end crosses no obstacle other
//     than the source and target boxes, the route is just [start, end].
//  2. Grid: the canvas is discretized at the requested cell size and every
//     obstacle is blocked together with a one-cell buffer ring.
//  3. Snapping: blocked endpoint cells are moved to the nearest free cell by a
//     ring search of radius 1..50.
//  4. Search: a best-first search over eight directions ordered by
//     cost-so-far plus a heuristic (Manhattan by default). With diagonal
//     steps costing √2 the Manhattan estimate overestimates, so routes are not
//     guaranteed shortest; the search trades optimality for fewer expansions.
//  5. Fallbacks: an unbuffered grid is searched next, and when that also
//     fails an L-shaped route start → (end.X, start.Y) → end is returned.
//  6. Simplification: collinear interior points are dropped and single
//     orthogonal jogs are collapsed.
//
// Every route starts exactly at the requested start and ends exactly at the
// requested end. Route only fails on invalid arguments.
//
// A Snapshot prepared with Router.Prepare holds the grids and the obstacle
// index for one diagram, so many connectors can be routed against it
// concurrently. Shortcut decisions may be memoized in a ShortcutCache owned
// by the caller.
package pathfinding
