// Package mst carves a perfect maze out of a candidate grid by reducing its
// passages to a minimum spanning tree.
//
// What:
//
//   - Kruskal: sort passages by weight and keep each one whose endpoints lie
//     in different Partition classes (randomized Kruskal when weights are
//     random).
//   - Prim: grow the tree from a root cell, always taking the lightest
//     passage that reaches a new cell.
//   - Partition: union-find over grid positions with optional path
//     compression.
//
// Both algorithms mutate the graph in place: every passage that is not kept
// is detached from both of its cells, leaving exactly cells-1 passages and
// one region.
//
// Why:
//
//   - A spanning tree over a grid has exactly one route between any two
//     cells, which is the definition of a perfect maze.
//
// Complexity:
//
//   - Kruskal: O(E log E + E·W), W the Find walk length.
//   - Prim:    O(E log E).
//
// Errors:
//
//   - ErrGraphNil, ErrDisconnected, ErrUnknownPosition, ErrUnknownMethod.
package mst
