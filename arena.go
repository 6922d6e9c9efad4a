package rcarena

import (
	"weak"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// arenaInner is the allocation engine shared by every handle of one arena.
type arenaInner[T any] struct {
	head *segment[T] // owns the chain
	tail *segment[T] // accepts new values

	strong      int
	segmentSize int
	segments    int
	length      int

	self    weak.Pointer[arenaInner[T]]
	logger  log.Logger
	metrics *Metrics
	drop    func(*T)
}

func (in *arenaInner[T]) alive() bool {
	return in.strong > 0
}

// alloc appends v to the tail segment, chaining a new segment on first if
// the tail is full. The returned location never moves.
func (in *arenaInner[T]) alloc(v T) (*segment[T], int) {
	if in.tail.full() {
		seg := newSegment[T](in.segmentSize)
		in.tail.next = seg
		in.tail = seg
		in.segments++
		in.metrics.segmentsAllocated.Inc()
		level.Debug(in.logger).Log("msg", "arena segment chain grown", "segments", in.segments, "segment_size", in.segmentSize)
	}
	slot := in.tail.append(v)
	in.length++
	in.metrics.valuesAllocated.Inc()
	return in.tail, slot
}

// destroy drops every stored value. Called once, when strong reaches zero.
func (in *arenaInner[T]) destroy() {
	head := in.head
	in.head, in.tail = nil, nil
	dropped := head.teardown(in.dropValue)
	in.metrics.valuesDropped.Add(float64(dropped))
	in.metrics.arenasDestroyed.Inc()
	level.Debug(in.logger).Log("msg", "arena destroyed", "values", dropped, "segments", in.segments)
}

func (in *arenaInner[T]) dropValue(p *T) {
	if d, ok := any(p).(Dropper); ok {
		d.Drop()
	} else if d, ok := any(*p).(Dropper); ok {
		d.Drop()
	}
	if in.drop != nil {
		in.drop(p)
	}
	var zero T
	*p = zero
}

// Arena is a handle to a typed, append-only arena. Handles are strong
// owners: the stored values live until every handle created by New, Clone
// or Ref.Arena has been released. Not goroutine-safe.
type Arena[T any] struct {
	inner *arenaInner[T]
}

// New creates an arena whose segments hold segmentSize values each.
// It panics if segmentSize <= 0.
func New[T any](segmentSize int) *Arena[T] {
	a, err := NewWithConfig[T](Config{SegmentSize: segmentSize})
	if err != nil {
		panic(err)
	}
	return a
}

// NewDefault creates an arena with DefaultSegmentSize.
func NewDefault[T any]() *Arena[T] {
	return New[T](DefaultSegmentSize)
}

// NewWithConfig creates an arena from cfg, returning the configuration error
// instead of panicking.
func NewWithConfig[T any](cfg Config, opts ...Option) (*Arena[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	inner := &arenaInner[T]{
		strong:      1,
		segmentSize: cfg.SegmentSize,
		segments:    1,
		logger:      o.logger,
		metrics:     o.metrics,
	}
	if o.drop != nil {
		fn, ok := o.drop.(func(*T))
		if !ok {
			return nil, errors.Wrapf(ErrDropFuncType, "got %T, want %T", o.drop, fn)
		}
		inner.drop = fn
	}
	inner.head = newSegment[T](cfg.SegmentSize)
	inner.tail = inner.head
	inner.self = weak.Make(inner)

	o.metrics.arenasCreated.Inc()
	o.metrics.segmentsAllocated.Inc()
	o.metrics.liveHandles.Inc()
	return &Arena[T]{inner: inner}, nil
}

// Clone returns a new handle to the same arena. The clone must be released
// independently.
func (a *Arena[T]) Clone() *Arena[T] {
	a.panicIfReleased()
	return a.inner.newHandle()
}

func (in *arenaInner[T]) newHandle() *Arena[T] {
	in.strong++
	in.metrics.liveHandles.Inc()
	return &Arena[T]{inner: in}
}

// Alloc moves v into the arena and returns a reference to its new location.
// It may chain on one new segment.
func (a *Arena[T]) Alloc(v T) Ref[T] {
	a.panicIfReleased()
	seg, slot := a.inner.alloc(v)
	return Ref[T]{arena: a.inner.self, seg: seg.self, slot: slot}
}

// Release gives up this handle's ownership. When the last handle is
// released every stored value is dropped and all references go dead.
// Releasing the same handle more than once has no effect; any other use
// of a released handle panics.
func (a *Arena[T]) Release() {
	in := a.inner
	if in == nil {
		return
	}
	a.inner = nil
	in.strong--
	in.metrics.liveHandles.Dec()
	if in.strong == 0 {
		in.destroy()
	}
}

// Released reports whether Release has been called on this handle.
func (a *Arena[T]) Released() bool {
	return a.inner == nil
}

// Equal reports whether a and other are handles to the same arena.
func (a *Arena[T]) Equal(other *Arena[T]) bool {
	if a == nil || other == nil || a.inner == nil {
		return false
	}
	return a.inner == other.inner
}

// panicIfReleased panics if the handle has been released.
func (a *Arena[T]) panicIfReleased() {
	if a.inner == nil {
		panic(ErrReleased)
	}
}
