package rcarena

import (
	"fmt"
	"weak"
)

// Ref is a reference to a value stored in an Arena. It does not keep the
// arena alive: once every handle has been released, TryGet reports false
// and Get panics.
//
// Refs are read-only. Values that need to change after allocation should
// be stored as pointers or as types that carry their own mutability.
// Copying a Ref is cheap and yields an equivalent reference.
type Ref[T any] struct {
	arena weak.Pointer[arenaInner[T]]
	seg   weak.Pointer[segment[T]]
	slot  int
}

func (r Ref[T]) live() *arenaInner[T] {
	in := r.arena.Value()
	if in == nil || !in.alive() {
		return nil
	}
	return in
}

// TryGet returns the referenced value, or false if the arena has been
// destroyed.
func (r Ref[T]) TryGet() (T, bool) {
	var zero T
	if r.live() == nil {
		return zero, false
	}
	seg := r.seg.Value()
	if seg == nil {
		return zero, false
	}
	p, ok := seg.at(r.slot)
	if !ok {
		return zero, false
	}
	return *p, true
}

// Get returns the referenced value and panics with ErrArenaDead if the
// arena has been destroyed.
func (r Ref[T]) Get() T {
	v, ok := r.TryGet()
	if !ok {
		panic(ErrArenaDead)
	}
	return v
}

// Alive reports whether the referenced arena still has a live handle.
func (r Ref[T]) Alive() bool {
	return r.live() != nil
}

// Arena returns a new handle to the referenced arena, or false if it has
// been destroyed. The returned handle keeps the arena alive and must be
// released like any other.
func (r Ref[T]) Arena() (*Arena[T], bool) {
	in := r.live()
	if in == nil {
		return nil, false
	}
	return in.newHandle(), true
}

// Clone returns a copy of r.
func (r Ref[T]) Clone() Ref[T] {
	return r
}

// IsZero reports whether r is the zero Ref, which never refers to a value.
func (r Ref[T]) IsZero() bool {
	return r.arena == weak.Pointer[arenaInner[T]]{}
}

// PtrEq reports whether r and other refer to the same slot of the same
// arena. The result does not change when the arena is destroyed.
func (r Ref[T]) PtrEq(other Ref[T]) bool {
	if r.IsZero() || other.IsZero() {
		return false
	}
	return r.arena == other.arena && r.seg == other.seg && r.slot == other.slot
}

func (r Ref[T]) String() string {
	v, ok := r.TryGet()
	if !ok {
		return "<dead arena reference>"
	}
	return fmt.Sprint(v)
}

// GoString implements fmt.GoStringer for %#v.
func (r Ref[T]) GoString() string {
	v, ok := r.TryGet()
	if !ok {
		return `Ref("<dead arena>")`
	}
	return fmt.Sprintf("Ref(%#v)", v)
}
