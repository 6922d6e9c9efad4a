package rcarena

import "github.com/pkg/errors"

var (
	// ErrInvalidSegmentSize is returned (or panicked with, from New) when an
	// arena is configured with a segment size of zero or less.
	ErrInvalidSegmentSize = errors.New("segment size must be greater than zero")

	// ErrDropFuncType is returned by NewWithConfig when the function passed to
	// WithDropFunc does not accept a pointer to the arena's element type.
	ErrDropFuncType = errors.New("drop func does not match the arena element type")

	// ErrReleased is panicked with when a handle is used after Release().
	ErrReleased = errors.New("arena: use after Release()")

	// ErrArenaDead is panicked with by Ref.Get once every handle of the
	// referenced arena has been released.
	ErrArenaDead = errors.New("arena: the arena associated with this value is no longer valid")
)
