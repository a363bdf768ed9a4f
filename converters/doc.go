// Package converters adapts core.Graph to gonum/graph so gonum's
// algorithms (topo, path, network) can run over a grid or a maze.
//
// Node IDs equal CellIDs, so a cell at (x,y) becomes node y*cols+x and an
// attached passage becomes a weighted undirected gonum edge. Detached
// passages are not exported.
package converters
