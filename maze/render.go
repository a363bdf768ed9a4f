package maze

import (
	"strings"

	"github.com/katalvlaran/lvmaze/core"
)

// Render draws the maze as ASCII, one 3-character slot per cell. marks maps
// positions to the rune drawn in the middle of the slot; unmarked cells are
// blank.
//
//	+---+---+
//	| S     |
//	+---+   +
//	|     T |
//	+---+---+
func (m *Maze) Render(marks map[core.Position]rune) string {
	var b strings.Builder
	cols, rows := m.Dimensions()

	b.WriteString("+" + strings.Repeat("---+", cols) + "\n")
	for y := 0; y < rows; y++ {
		b.WriteByte('|')
		for x := 0; x < cols; x++ {
			p := core.Position{X: x, Y: y}
			c, _ := m.g.CellAt(p)
			mark, ok := marks[p]
			if !ok {
				mark = ' '
			}
			b.WriteByte(' ')
			b.WriteRune(mark)
			b.WriteByte(' ')
			if m.g.HasNeighbor(c, core.Right) {
				b.WriteByte(' ')
			} else {
				b.WriteByte('|')
			}
		}
		b.WriteString("\n+")
		for x := 0; x < cols; x++ {
			c, _ := m.g.CellAt(core.Position{X: x, Y: y})
			if m.g.HasNeighbor(c, core.Down) {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders the maze with S on Start and T on Target.
func (m *Maze) String() string {
	return m.Render(map[core.Position]rune{m.Start(): 'S', m.Target(): 'T'})
}
