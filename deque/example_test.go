package deque_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/deque"
)

// ExampleDeque shows both ends in use and removal through a found handle.
func ExampleDeque() {
	d := deque.New[string]()
	d.AddTail("b")
	d.AddTail("c")
	d.AddHead("a")

	n, _ := d.Find(func(s string) bool { return s == "b" })
	_ = d.Remove(n)

	head, _ := d.RemoveHead()
	tail, _ := d.RemoveTail()
	fmt.Println(head, tail, d.Len())
	// Output:
	// a c 0
}
