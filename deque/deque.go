package deque

import "errors"

var (
	// ErrEmpty indicates a removal or peek on a deque with no elements.
	ErrEmpty = errors.New("deque: empty collection")

	// ErrNodeNotFound indicates Remove received a node this deque does not hold.
	ErrNodeNotFound = errors.New("deque: node not found")
)

// Node is a stable handle to one element of a Deque.
type Node[T any] struct {
	next, prev *Node[T]
	owner      *Deque[T] // nil for detached nodes and for the header
	value      T
}

// Value returns the element stored in n.
func (n *Node[T]) Value() T { return n.value }

// Deque is a circular doubly-linked sequence. The zero value is an empty
// deque ready to use.
type Deque[T any] struct {
	header Node[T] // sentinel: header.next is the head, header.prev the tail
	size   int
}

// New returns an empty Deque.
func New[T any]() *Deque[T] {
	return new(Deque[T]).init()
}

// init links the header to itself when the deque is used for the first time.
func (d *Deque[T]) init() *Deque[T] {
	if d.header.next == nil {
		d.header.next = &d.header
		d.header.prev = &d.header
	}
	return d
}

// Len returns the number of elements.
// Complexity: O(1).
func (d *Deque[T]) Len() int { return d.size }

// AddHead inserts v before the current head and returns its handle.
// Complexity: O(1).
func (d *Deque[T]) AddHead(v T) *Node[T] {
	d.init()
	return d.insertAfter(&d.header, v)
}

// AddTail inserts v after the current tail and returns its handle.
// Complexity: O(1).
func (d *Deque[T]) AddTail(v T) *Node[T] {
	d.init()
	return d.insertAfter(d.header.prev, v)
}

// RemoveHead unlinks the head element and returns its value.
// Returns ErrEmpty when the deque holds nothing.
// Complexity: O(1).
func (d *Deque[T]) RemoveHead() (T, error) {
	d.init()
	if d.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	n := d.header.next
	d.unlink(n)
	return n.value, nil
}

// RemoveTail unlinks the tail element and returns its value.
// Returns ErrEmpty when the deque holds nothing.
// Complexity: O(1).
func (d *Deque[T]) RemoveTail() (T, error) {
	d.init()
	if d.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	n := d.header.prev
	d.unlink(n)
	return n.value, nil
}

// Head returns the head value without removing it.
func (d *Deque[T]) Head() (T, error) {
	d.init()
	if d.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return d.header.next.value, nil
}

// Tail returns the tail value without removing it.
func (d *Deque[T]) Tail() (T, error) {
	d.init()
	if d.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return d.header.prev.value, nil
}

// Find returns the first node, walking head→tail, whose value satisfies pred.
// The second result is false when no value matches.
// Complexity: O(n).
func (d *Deque[T]) Find(pred func(T) bool) (*Node[T], bool) {
	d.init()
	for n := d.header.next; n != &d.header; n = n.next {
		if pred(n.value) {
			return n, true
		}
	}
	return nil, false
}

// Remove unlinks n from the deque. Other handles stay valid.
// Returns ErrNodeNotFound if n is nil, the header, already removed, or owned
// by another deque.
// Complexity: O(1).
func (d *Deque[T]) Remove(n *Node[T]) error {
	if n == nil || n.owner != d {
		return ErrNodeNotFound
	}
	d.unlink(n)
	return nil
}

// Clear drops every element. Handles obtained earlier become detached.
// Complexity: O(n).
func (d *Deque[T]) Clear() {
	d.init()
	for n := d.header.next; n != &d.header; {
		next := n.next
		n.next, n.prev, n.owner = nil, nil, nil
		n = next
	}
	d.header.next = &d.header
	d.header.prev = &d.header
	d.size = 0
}

// Values returns a head→tail snapshot of the stored values.
// Complexity: O(n).
func (d *Deque[T]) Values() []T {
	d.init()
	out := make([]T, 0, d.size)
	for n := d.header.next; n != &d.header; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// insertAfter links a fresh node holding v right after at.
func (d *Deque[T]) insertAfter(at *Node[T], v T) *Node[T] {
	n := &Node[T]{value: v, owner: d, prev: at, next: at.next}
	at.next.prev = n
	at.next = n
	d.size++
	return n
}

// unlink splices n out of the ring and detaches it.
func (d *Deque[T]) unlink(n *Node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next, n.prev, n.owner = nil, nil, nil
	d.size--
}
