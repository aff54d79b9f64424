// Package tilepath provides A* shortest paths over 2D tile grids.
//
// Movement is 8-directional: a straight step costs CostStraight and a diagonal
// step costs CostDiagonal. Blocked cells are never entered and a diagonal step
// is only taken when both orthogonal cells it passes between are walkable.
//
// It exposes three entry points:
//
//   - PathFinder: run a search to completion and get the path or a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//   - FindPaths: solve many independent queries on a bounded worker pool.
//
// Ties between equally cheap frontier entries are broken first-in-first-out,
// so identical inputs always produce identical paths.
package tilepath
