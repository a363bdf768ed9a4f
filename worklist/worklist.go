// Package worklist provides the two frontier policies used by graph search:
// Stack (last-in-first-out) and Queue (first-in-first-out), both built on
// deque.Deque.
//
// A search that is parameterized by WorkList switches between depth-first
// and breadth-first order purely by the policy it is handed.
package worklist

import (
	"errors"

	"github.com/katalvlaran/lvmaze/deque"
)

// ErrEmpty is returned by Next when the work list holds nothing.
var ErrEmpty = errors.New("worklist: empty work list")

// WorkList is a collection that hands out one pending element at a time.
type WorkList[T any] interface {
	// Add stores item as pending work.
	Add(item T)
	// IsEmpty reports whether no work is pending.
	IsEmpty() bool
	// Next removes and returns the element chosen by the policy.
	Next() (T, error)
	// Clear drops all pending work.
	Clear()
	// Len returns the number of pending elements.
	Len() int
}

// Stack hands out the most recently added element first.
type Stack[T any] struct {
	contents deque.Deque[T]
}

// NewStack returns an empty Stack.
func NewStack[T any]() *Stack[T] { return &Stack[T]{} }

// Add pushes item onto the head.
func (s *Stack[T]) Add(item T) { s.contents.AddHead(item) }

// IsEmpty reports whether the stack holds nothing.
func (s *Stack[T]) IsEmpty() bool { return s.contents.Len() == 0 }

// Len returns the number of stacked elements.
func (s *Stack[T]) Len() int { return s.contents.Len() }

// Next pops the head element; ErrEmpty when the stack is empty.
func (s *Stack[T]) Next() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}
	return s.contents.RemoveHead()
}

// Clear drains the stack.
func (s *Stack[T]) Clear() { s.contents.Clear() }

// Queue hands out the least recently added element first.
type Queue[T any] struct {
	contents deque.Deque[T]
}

// NewQueue returns an empty Queue.
func NewQueue[T any]() *Queue[T] { return &Queue[T]{} }

// Add appends item at the tail.
func (q *Queue[T]) Add(item T) { q.contents.AddTail(item) }

// IsEmpty reports whether the queue holds nothing.
func (q *Queue[T]) IsEmpty() bool { return q.contents.Len() == 0 }

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.contents.Len() }

// Next removes the head element; ErrEmpty when the queue is empty.
func (q *Queue[T]) Next() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}
	return q.contents.RemoveHead()
}

// Clear drains the queue.
func (q *Queue[T]) Clear() { q.contents.Clear() }

var (
	_ WorkList[int] = (*Stack[int])(nil)
	_ WorkList[int] = (*Queue[int])(nil)
)
