// Package lvmaze generates perfect grid mazes and solves them, either
// automatically (breadth- or depth-first) or step by step under player
// control.
//
// A maze starts as a candidate grid graph in which every orthogonally adjacent
// pair of cells is joined by a randomly weighted edge. A bias shifts those
// weights so that horizontal or vertical corridors win more often. A minimum
// spanning tree (Kruskal over a position union-find by default, Prim on
// request) then keeps exactly cells-1 passages: every cell is reachable and
// every route between two cells is unique.
//
// Packages:
//
//	deque/      generic double-ended queue over a sentinel ring
//	worklist/   Stack and Queue work lists on top of deque
//	core/       grid graph model: Position, Direction, Cell, Edge, Graph
//	gridgraph/  candidate graph construction, biased weights, Regions
//	mst/        Kruskal and Prim, Partition (union-find over positions)
//	converters/ gonum adapters
//	maze/       Maze facade: generation, validation, ASCII rendering
//	traverse/   AutomaticSearch, ManualSearch, Tick/Move dispatch
//	game/       Session: key bindings, regeneration, views
//	config/     defaults, YAML, .env and LVMAZE_* environment
//	cmd/lvmaze  headless command line driver
//
// Quick start:
//
//	m, _ := maze.New(10, 20, 0.3, maze.WithSeed(7))
//	s, _ := m.BeginAutomaticSearch(true)
//	_ = s.Run()
//	route, _ := s.SolutionPath()
//
// Coordinates follow image convention: (0,0) is the top-left cell, x grows
// to the right and y grows downward. Every search starts at (0,0) and targets
// the bottom-right cell.
package lvmaze
