package game

import (
	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/traverse"
)

// View is what a front end needs to draw one frame.
type View struct {
	Mode     traverse.Kind
	Cols     int
	Rows     int
	Current  core.Position
	Target   core.Position
	Visited  []core.Position
	Solution []core.Position // set once Complete
	Complete bool
	// WrongMoves is meaningful only when Complete.
	WrongMoves int
}

// View snapshots the session. With the visited view off, an automatic
// search reports only its latest cell and a manual search reports none.
func (s *Session) View() View {
	cols, rows := s.maze.Dimensions()
	v := View{
		Mode:     s.trav.Kind(),
		Cols:     cols,
		Rows:     rows,
		Current:  s.trav.Current(),
		Target:   s.trav.Target(),
		Complete: s.trav.Complete(),
	}

	visited := s.trav.Processed()
	switch {
	case s.showVisited:
		v.Visited = visited
	case v.Mode != traverse.Manual && len(visited) > 0:
		v.Visited = visited[len(visited)-1:]
	}

	if v.Complete {
		v.Solution, _ = s.trav.SolutionPath()
		v.WrongMoves, _ = s.trav.WrongMoves()
	}
	return v
}

// Render draws the maze with the view overlaid: '.' visited, '*' route,
// '@' current cell and 'T' target.
func (s *Session) Render() string {
	v := s.View()
	marks := make(map[core.Position]rune, len(v.Visited)+len(v.Solution)+2)
	for _, p := range v.Visited {
		marks[p] = '.'
	}
	for _, p := range v.Solution {
		marks[p] = '*'
	}
	marks[v.Target] = 'T'
	marks[v.Current] = '@'
	return s.maze.Render(marks)
}
