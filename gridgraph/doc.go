// Package gridgraph builds the candidate graph a maze is carved from: every
// passage between orthogonally adjacent cells of a rectangular grid, each
// with a randomized, direction-biased weight.
//
// What:
//
//   - NewCandidateGraph lays out cols×rows cells and all
//     rows*(cols-1) + cols*(rows-1) passages in a fixed order.
//   - BiasedWeight draws from [25, 75) and shifts vertical passages down and
//     horizontal passages up by 25*bias.
//   - Regions groups cells reachable from one another through passages.
//
// Why:
//
//   - The minimum spanning tree of randomly weighted candidates is a uniform
//     looking perfect maze; the bias stretches corridors along one axis.
//
// Complexity:
//
//   - NewCandidateGraph: O(W×H), Memory: O(W×H).
//   - Regions:           O(W×H).
//
// Options:
//
//   - WithBias, WithSeed, WithRand, WithWeightFn.
//
// Errors:
//
//   - ErrInvalidDimensions: fewer than 2 rows or columns.
//   - ErrInvalidBias: bias outside [-1, 1].
package gridgraph
