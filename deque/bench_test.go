package deque_test

import (
	"testing"

	"github.com/katalvlaran/lvmaze/deque"
)

// BenchmarkTailHead measures a queue-style AddTail/RemoveHead cycle.
// Complexity: O(1) per iteration.
func BenchmarkTailHead(b *testing.B) {
	d := deque.New[int]()
	for i := 0; i < 1024; i++ {
		d.AddTail(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.AddTail(i)
		_, _ = d.RemoveHead()
	}
}
