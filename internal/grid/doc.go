// Package grid provides the cell model for the pathfinding board.
//
// A [Grid] is a fixed-size rectangular field of [Role] values. It owns no
// search state: algorithms read adjacency through [Grid.Neighbors] and the
// run controller paints Visited/Frontier/Path roles back onto it between
// animation frames.
//
// Two invariants are enforced by [Grid.SetRole]:
//
//   - at most one cell holds RoleStart and at most one holds RoleTarget,
//     and once placed an endpoint can only move, never silently vanish
//   - a wall can never cover the start or the target
//
// Adjacency is 4-directional. Neighbors are enumerated clockwise starting
// from Up, which keeps every search run deterministic.
package grid
