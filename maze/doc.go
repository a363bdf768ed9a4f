// Package maze generates perfect grid mazes and starts searches over them.
//
// New builds the candidate grid (gridgraph), weights every passage with a
// direction bias, and reduces it to a spanning tree (mst). The result has
// rows*cols-1 passages and exactly one route between any two cells.
//
//	m, err := maze.New(10, 20, 0.3, maze.WithSeed(42))
//	bfs, _ := m.BeginAutomaticSearch(true)
//	_ = bfs.Run()
//	route, _ := bfs.SolutionPath()
//
// Start is always (0,0) and Target the bottom-right cell. Dimensions are
// reported as (cols, rows).
package maze
