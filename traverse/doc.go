// Package traverse provides the two step-based search state machines that
// explore a maze.
//
// AutomaticSearch processes one frontier cell per Step. Its WorkList policy
// picks the order: NewBreadthFirst uses a worklist.Queue, NewDepthFirst a
// worklist.Stack. Each newly seen neighbor remembers the passage it was
// first discovered through; SolutionPath follows those passages back from
// the target.
//
// ManualSearch moves one cell per directional Step. Moves into walls are
// ignored. Reversing the previous move pops the route, so after completion
// SolutionPath is the acyclic route even if the player explored dead ends.
//
// Both satisfy Traverser. Apply routes the two external events: Tick drives
// only automatic searches and Move drives only manual ones; every other
// combination, and any event after completion, does nothing.
//
// WrongMoves = distinct processed cells − route length, available once the
// search is complete.
//
// Neither search spawns goroutines or keeps time; a driver delivers events.
package traverse
