// Package rcarena implements a typed, append-only memory arena with
// reference-counted handles and weak references to the stored values.
//
// # Overview
//
// An arena stores values of a single type in a chain of fixed-size
// segments. Values are never moved once stored, never freed one by one,
// and all of them are dropped together when the arena is destroyed. This
// is useful for:
//
//   - Graphs and trees whose nodes share one lifetime
//   - Bulk allocation of many small objects of the same type
//   - Caches that hand out references which must notice when the cache is gone
//
// # Basic Usage
//
//	a := rcarena.New[Node](128) // 128 values per segment
//	defer a.Release()
//
//	ref := a.Alloc(Node{Name: "root"})
//	n := ref.Get() // panics if the arena is gone
//
//	if n, ok := ref.TryGet(); ok {
//		fmt.Println(n.Name)
//	}
//
// # Handles and References
//
// *Arena values are handles. Clone returns another handle to the same
// storage and every handle must be released. The arena is destroyed when
// the last handle is released.
//
// Ref values are weak. A Ref never keeps its arena alive: once the last
// handle is released, TryGet reports false, Get panics and Arena returns
// false. There is no way to bring a destroyed arena back.
//
//	ref := a.Alloc(42)
//	b := a.Clone()
//	a.Release()
//	ref.Alive() // true, b is still live
//	b.Release()
//	ref.Alive() // false
//
// # Dropping Values
//
// Values implementing Dropper have Drop called exactly once when the arena
// is destroyed, in allocation order. WithDropFunc registers an additional
// per-value hook.
//
// # Thread Safety
//
// Arenas and Refs are not goroutine-safe. An arena and all of its handles
// and references must be used from a single goroutine.
//
// # Metrics and Monitoring
//
//	stats := a.Stats()
//	fmt.Printf("Segments: %d\n", stats.NumSegments)
//	fmt.Printf("Utilization: %.2f%%\n", stats.Utilization*100)
//
// Process-wide Prometheus metrics are available through NewMetrics and
// WithMetrics.
package rcarena
