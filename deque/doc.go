// Package deque implements a generic double-ended sequence backed by a
// circular doubly-linked list with a sentinel header node.
//
// What:
//
//   - AddHead / AddTail insert a value and return a stable *Node handle.
//   - RemoveHead / RemoveTail pop a value from either end.
//   - Find walks the sequence head→tail and returns the first node whose value
//     satisfies a predicate.
//   - Remove unlinks an arbitrary node by handle without disturbing any other
//     handle held by the caller.
//
// Invariants:
//
//   - The header is never removed; an empty deque is a header linked to itself.
//   - A handle belongs to exactly one deque until it is removed; afterwards it
//     is detached and rejected by Remove.
//
// Complexity:
//
//   - AddHead, AddTail, RemoveHead, RemoveTail, Remove, Len: O(1).
//   - Find, Values: O(n).
//
// Errors:
//
//   - ErrEmpty: RemoveHead/RemoveTail/Head/Tail on an empty deque.
//   - ErrNodeNotFound: Remove with a nil, foreign, header or already removed node.
//
// Deque is not safe for concurrent use.
package deque
