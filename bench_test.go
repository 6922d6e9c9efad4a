package rcarena

import (
	"runtime"
	"testing"
)

type benchNode struct {
	ID       int64
	Children [4]Ref[benchNode]
	Data     [24]byte
}

// BenchmarkRealisticUsage compares arena allocation with plain heap
// allocation for graphs of small nodes that share one lifetime.
func BenchmarkRealisticUsage(b *testing.B) {
	b.Run("NodeGraph/Arena", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			a := New[benchNode](256)
			var prev Ref[benchNode]
			for j := 0; j < 1000; j++ {
				prev = a.Alloc(benchNode{ID: int64(j), Children: [4]Ref[benchNode]{prev}})
			}
			a.Release()
		}
	})

	b.Run("NodeGraph/Builtin", func(b *testing.B) {
		type heapNode struct {
			ID       int64
			Children [4]*heapNode
			Data     [24]byte
		}
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var prev *heapNode
			for j := 0; j < 1000; j++ {
				prev = &heapNode{ID: int64(j), Children: [4]*heapNode{prev}}
			}
			runtime.KeepAlive(prev)
		}
	})

	b.Run("SharedHandles/Arena", func(b *testing.B) {
		a := New[int64](1024)
		defer a.Release()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			c := a.Clone()
			c.Alloc(int64(i))
			c.Release()
		}
	})
}
