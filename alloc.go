package rcarena

// AllocMany moves each value into the arena in order and returns a
// reference for each. Returns nil if no values are given.
func (a *Arena[T]) AllocMany(values ...T) []Ref[T] {
	a.panicIfReleased()
	if len(values) == 0 {
		return nil
	}
	refs := make([]Ref[T], len(values))
	for i, v := range values {
		refs[i] = a.Alloc(v)
	}
	return refs
}

// AllocZero stores the zero value of T and returns a reference to it.
func (a *Arena[T]) AllocZero() Ref[T] {
	var zero T
	return a.Alloc(zero)
}

// AllocFunc stores the result of calling fn n times, passing the index of
// each call. Returns nil if n <= 0.
func (a *Arena[T]) AllocFunc(n int, fn func(i int) T) []Ref[T] {
	a.panicIfReleased()
	if n <= 0 {
		return nil
	}
	refs := make([]Ref[T], n)
	for i := range refs {
		refs[i] = a.Alloc(fn(i))
	}
	return refs
}
