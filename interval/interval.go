package interval

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Interval is an immutable closed numeric range [start, stop] with
// start <= stop.  Zero-width intervals are permitted.  Intervals are plain
// values: the binary operations Intersect and Merge produce new Intervals
// and never mutate their operands, and two Intervals are equal (==) iff
// their bounds are exactly equal, with no tolerance.
//
// The zero value is the zero-width interval [0, 0].
type Interval struct {
	start, stop float64
}

// New returns the closed interval [start, stop].  It fails with
// ErrInvalidInterval when stop < start; use NewUnordered to accept bounds
// in either order instead.
func New(start, stop float64) (Interval, error) {
	if stop < start {
		return Interval{}, errors.Wrapf(ErrInvalidInterval, "got start = %v and stop = %v", start, stop)
	}
	return Interval{start: start, stop: stop}, nil
}

// NewUnordered returns the closed interval covering both bounds, swapping
// them when they arrive inverted.  It cannot fail.
func NewUnordered(a, b float64) Interval {
	if b < a {
		a, b = b, a
	}
	return Interval{start: a, stop: b}
}

// Start returns the lower bound.
func (i Interval) Start() float64 { return i.start }

// Stop returns the upper bound.
func (i Interval) Stop() float64 { return i.stop }

// Width returns stop - start.  It is never negative.
func (i Interval) Width() float64 { return i.stop - i.start }

// MidPoint returns (start + stop) / 2.
func (i Interval) MidPoint() float64 { return (i.start + i.stop) / 2 }

// Overlaps reports whether i and other share content or a boundary value.
// Two intervals overlap iff any of the following holds:
//   - they share an exact start value or an exact stop value;
//   - an endpoint of one falls strictly inside the other;
//   - one strictly encloses the other.
// Intervals that merely touch without sharing the exact boundary value do
// NOT overlap: [0,1] and [1,2] are disjoint (1 is a stop on one side and a
// start on the other), while [0,1] and [1,1] overlap (shared stop value).
// The relation is symmetric but not transitive.  Merging relies on this
// exact boundary policy; do not loosen it.
func (i Interval) Overlaps(other Interval) bool {
	switch {
	case other.start == i.start || other.stop == i.stop:
		return true
	case other.start > i.start && other.start < i.stop:
		return true
	case other.stop > i.start && other.stop < i.stop:
		return true
	case other.start < i.start && other.stop > i.stop:
		return true
	}
	return false
}

// Intersect returns the common region [max(starts), min(stops)].  It fails
// with ErrDoNotOverlap when the intervals do not overlap.
func (i Interval) Intersect(other Interval) (Interval, error) {
	if !i.Overlaps(other) {
		return Interval{}, errors.Wrapf(ErrDoNotOverlap, "cannot intersect %v and %v", i, other)
	}
	return Interval{
		start: math.Max(i.start, other.start),
		stop:  math.Min(i.stop, other.stop),
	}, nil
}

// Merge returns the covering region [min(starts), max(stops)].  It fails
// with ErrDoNotOverlap when the intervals do not overlap.
func (i Interval) Merge(other Interval) (Interval, error) {
	if !i.Overlaps(other) {
		return Interval{}, errors.Wrapf(ErrDoNotOverlap, "cannot merge %v and %v", i, other)
	}
	return Interval{
		start: math.Min(i.start, other.start),
		stop:  math.Max(i.stop, other.stop),
	}, nil
}

// String renders the interval as "<start>-<stop>" in fixed-point notation
// at default precision, the token form Parse accepts.  Rendering is lossy
// beyond six decimal places.
func (i Interval) String() string {
	return fmt.Sprintf("%f-%f", i.start, i.stop)
}
