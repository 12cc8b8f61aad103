package ustring

import (
	"errors"
	"fmt"
	"math"
)

// NPos is returned by search and mapping operations to signal absence,
// mirroring the -1 convention of [strings.Index]. It is a sentinel value,
// not an error: looking for something that isn't there is a normal outcome.
const NPos = -1

// MaxSize is the ceiling on a String's length and capacity, in code units.
// It is a quarter of the maximum representable index so that the
// length-doubling growth arithmetic cannot overflow.
const MaxSize = math.MaxInt >> 2

// Sentinel errors for use with errors.Is. The concrete values returned by
// String operations are *BoundsError and *SizeError, which carry the
// offending position or size.
var (
	// ErrBounds matches any error caused by a position argument past the
	// current length.
	ErrBounds = errors.New("ustring: position out of range")

	// ErrSize matches any error caused by a length or capacity request
	// above MaxSize.
	ErrSize = errors.New("ustring: size exceeds MaxSize")
)

// BoundsError reports a position argument that exceeds the current length
// of a checked operation's receiver.
type BoundsError struct {
	Op  string // the operation, e.g. "Insert"
	Pos int    // the offending position
	Len int    // the length at the time of the call
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("ustring: %s: position %d out of range [0, %d]", e.Op, e.Pos, e.Len)
}

func (e *BoundsError) Is(target error) bool { return target == ErrBounds }

// SizeError reports a length or capacity request above MaxSize. The
// operation that produced it has not mutated the string.
type SizeError struct {
	Op   string // the operation, e.g. "Append"
	Size int    // the requested size, in code units
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("ustring: %s: size %d exceeds MaxSize (%d)", e.Op, e.Size, MaxSize)
}

func (e *SizeError) Is(target error) bool { return target == ErrSize }
