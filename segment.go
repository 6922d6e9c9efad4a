package rcarena

import "weak"

// Dropper is implemented by values that need cleanup when their arena is
// destroyed. Drop is called exactly once per stored value.
type Dropper interface {
	Drop()
}

// segment is a fixed-capacity block of values. Slots [0, length) are live,
// slots [length, len(slots)) have never been written.
type segment[T any] struct {
	length int
	slots  []T // allocated once, never resliced
	next   *segment[T]
	self   weak.Pointer[segment[T]]
}

func newSegment[T any](n int) *segment[T] {
	s := &segment[T]{slots: make([]T, n)}
	s.self = weak.Make(s)
	return s
}

func (s *segment[T]) full() bool {
	return s.length >= len(s.slots)
}

// append stores v in the next free slot and returns its index.
// The caller must check full() first.
func (s *segment[T]) append(v T) int {
	i := s.length
	s.slots[i] = v
	s.length = i + 1
	return i
}

// at returns the address of live slot i.
func (s *segment[T]) at(i int) (*T, bool) {
	if s.slots == nil || i < 0 || i >= s.length {
		return nil, false
	}
	return &s.slots[i], true
}

// teardown drops every live value of s and of the segments chained after it,
// in slot order within a segment and in chain order across segments. It
// returns the number of values dropped.
func (s *segment[T]) teardown(drop func(*T)) int {
	dropped := 0
	for seg := s; seg != nil; {
		for i := 0; i < seg.length; i++ {
			drop(&seg.slots[i])
			dropped++
		}
		next := seg.next
		seg.slots = nil
		seg.length = 0
		seg.next = nil
		seg = next
	}
	return dropped
}
