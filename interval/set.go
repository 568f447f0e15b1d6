package interval

import (
	"math"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// DefaultRelTol is the relative tolerance applied by contiguity checks
// when no other tolerance is given (Edges, ContainingBin).
const DefaultRelTol = 1e-5

// Set is an ordered collection of Intervals.  Insertion order is preserved
// and is not implicitly sorted; a Set may hold overlapping or unordered
// intervals until MergeIntersecting is applied.  The zero value is an
// empty set ready for use.
//
// Sets own their backing storage: factories copy the slices they are
// given, and accessors return fresh slices, so no storage is ever shared
// between a Set and its caller or between two Sets.
//
// Distinct Sets may be used concurrently without coordination.  The
// mutating operations (Extend, Pop, MergeIntersectingInPlace) perform
// plain in-place mutation with no internal locking, so concurrent use of a
// single Set requires external mutual exclusion.
type Set struct {
	intervals []Interval
}

// NewSet returns a Set holding a copy of the given intervals in the given
// order.
func NewSet(intervals []Interval) *Set {
	s := &Set{intervals: make([]Interval, len(intervals))}
	copy(s.intervals, intervals)
	return s
}

// FromStartsAndStops builds a Set from parallel start and stop sequences,
// one interval per pair, preserving input order.  It fails with
// ErrLengthMismatch when the sequences differ in length, and with
// ErrInvalidInterval when any pair is inverted.
func FromStartsAndStops(starts, stops []float64) (*Set, error) {
	if len(starts) != len(stops) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d starts vs %d stops", len(starts), len(stops))
	}
	intervals := make([]Interval, 0, len(starts))
	for i := range starts {
		iv, err := New(starts[i], stops[i])
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, iv)
	}
	return &Set{intervals: intervals}, nil
}

// FromEdges builds a Set from a list of bin edges: edges {-1, 0, 1} yield
// the intervals [-1,0] and [0,1].  The edges are sorted ascending first (a
// copy is sorted; the argument is left alone), so the result is contiguous
// and ascending by construction.  Fewer than two edges yield an empty set.
func FromEdges(edges []float64) *Set {
	sorted := make([]float64, len(edges))
	copy(sorted, edges)
	sort.Float64s(sorted)
	var intervals []Interval
	for i := 0; i+1 < len(sorted); i++ {
		intervals = append(intervals, Interval{start: sorted[i], stop: sorted[i+1]})
	}
	return &Set{intervals: intervals}
}

// FromStrings builds a Set from textual tokens such as "0-10" or
// "-10 - -5", one interval per token, preserving token order.  It fails
// with ErrParse on a malformed token.  It is the inverse of String, up to
// the fixed rendering precision.
func FromStrings(tokens ...string) (*Set, error) {
	intervals := make([]Interval, 0, len(tokens))
	for _, token := range tokens {
		iv, err := Parse(token)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, iv)
	}
	return &Set{intervals: intervals}, nil
}

// Len returns the number of intervals in the set.
func (s *Set) Len() int { return len(s.intervals) }

// At returns the interval at position i in raw (insertion) order.
func (s *Set) At(i int) Interval { return s.intervals[i] }

// Intervals returns a copy of the set's contents in raw order.
func (s *Set) Intervals() []Interval {
	out := make([]Interval, len(s.intervals))
	copy(out, s.intervals)
	return out
}

// Extend appends the given intervals to the set in place.
func (s *Set) Extend(intervals ...Interval) {
	s.intervals = append(s.intervals, intervals...)
}

// Pop removes and returns the interval at position i, shifting later
// elements down.  It panics when i is out of range, like a slice index.
func (s *Set) Pop(i int) Interval {
	iv := s.intervals[i]
	s.intervals = append(s.intervals[:i], s.intervals[i+1:]...)
	return iv
}

// Argsort returns the permutation of indices that orders the set ascending
// by start.  The sort is stable: ties keep their insertion order.
func (s *Set) Argsort() []int {
	perm := make([]int, len(s.intervals))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return s.intervals[perm[a]].start < s.intervals[perm[b]].start
	})
	return perm
}

// Sort returns a new Set ordered ascending by start (stable on ties),
// leaving the receiver untouched.
func (s *Set) Sort() *Set {
	sorted := make([]Interval, len(s.intervals))
	for i, j := range s.Argsort() {
		sorted[i] = s.intervals[j]
	}
	return &Set{intervals: sorted}
}

// IsContiguous reports whether each interval's stop matches the next
// interval's start within the given relative tolerance
// (|start - stop| <= relTol * |stop|), taken pairwise over the set's
// CURRENT order.  It does not sort first: callers that want an
// order-independent answer must Sort before checking.  Edges, by
// contrast, checks contiguity of the sorted view; the asymmetry is
// intentional and kept for compatibility with existing callers.
func (s *Set) IsContiguous(relTol float64) bool {
	for i := 0; i+1 < len(s.intervals); i++ {
		stop := s.intervals[i].stop
		start := s.intervals[i+1].start
		if math.Abs(start-stop) > relTol*math.Abs(stop) {
			return false
		}
	}
	return true
}

// MergeIntersecting returns a new Set in which all overlapping intervals
// (in the sense of Interval.Overlaps) have been collapsed: the result is
// ascending by start, mutually non-overlapping, and covers exactly the
// union of the input.  The receiver is untouched.  Intervals that touch
// without overlapping stay separate.
//
// The sweep sorts a copy and then makes a single pass carrying a pending
// interval that absorbs every successor it overlaps; the pending interval
// is committed as soon as a non-overlapping successor appears.  Cost is
// O(n log n) for the sort plus O(n) for the pass.
func (s *Set) MergeIntersecting() *Set {
	return &Set{intervals: s.mergeSweep()}
}

// MergeIntersectingInPlace is MergeIntersecting with the result replacing
// the receiver's contents.
func (s *Set) MergeIntersectingInPlace() {
	s.intervals = s.mergeSweep()
}

func (s *Set) mergeSweep() []Interval {
	sorted := s.Sort().intervals
	if len(sorted) == 0 {
		return nil
	}
	out := make([]Interval, 0, len(sorted))
	pending := sorted[0]
	for _, next := range sorted[1:] {
		if pending.Overlaps(next) {
			// Unchecked merge: the overlap test just passed.
			pending = Interval{
				start: math.Min(pending.start, next.start),
				stop:  math.Max(pending.stop, next.stop),
			}
			continue
		}
		out = append(out, pending)
		pending = next
	}
	return append(out, pending)
}

// Edges returns the n+1 bin boundaries of the set taken in sort order:
// every sorted start followed by the final sorted stop.  It fails with
// ErrNotContiguous unless the SORTED view is contiguous at DefaultRelTol
// (note the asymmetry with IsContiguous, which checks raw order), or when
// the set is empty.
func (s *Set) Edges() ([]float64, error) {
	if len(s.intervals) == 0 {
		return nil, errors.Wrap(ErrNotContiguous, "empty set has no edges")
	}
	sorted := s.Sort()
	if !sorted.IsContiguous(DefaultRelTol) {
		return nil, errors.Wrap(ErrNotContiguous, "cannot return edges")
	}
	edges := make([]float64, 0, len(sorted.intervals)+1)
	for _, iv := range sorted.intervals {
		edges = append(edges, iv.start)
	}
	return append(edges, sorted.intervals[len(sorted.intervals)-1].stop), nil
}

// ContainingBin returns the index, in the set's edge ordering, of the
// interval that would contain value, found by binary search over Edges.
// Queries are clamped into the valid range: a value below the first edge
// maps to bin 0 and a value past the last edge maps to bin Len()-1.  The
// clamp silently absorbs out-of-domain queries instead of reporting them;
// callers that must detect genuine coverage errors should compare against
// AbsoluteStart and AbsoluteStop first.  A value equal to an interior edge
// maps to the bin ending at that edge.  Fails with ErrNotContiguous when
// the set has no well-defined edges.
func (s *Set) ContainingBin(value float64) (int, error) {
	edges, err := s.Edges()
	if err != nil {
		return 0, err
	}
	idx := sort.SearchFloat64s(edges, value) - 1
	if idx < 0 {
		idx = 0
	}
	if last := len(s.intervals) - 1; idx > last {
		idx = last
	}
	return idx, nil
}

// Starts returns the start of every interval in raw order.
func (s *Set) Starts() []float64 {
	out := make([]float64, len(s.intervals))
	for i, iv := range s.intervals {
		out[i] = iv.start
	}
	return out
}

// Stops returns the stop of every interval in raw order.
func (s *Set) Stops() []float64 {
	out := make([]float64, len(s.intervals))
	for i, iv := range s.intervals {
		out[i] = iv.stop
	}
	return out
}

// MidPoints returns the midpoint of every interval in raw order.
func (s *Set) MidPoints() []float64 {
	out := make([]float64, len(s.intervals))
	for i, iv := range s.intervals {
		out[i] = iv.MidPoint()
	}
	return out
}

// Widths returns the width of every interval in raw order.
func (s *Set) Widths() []float64 {
	out := make([]float64, len(s.intervals))
	for i, iv := range s.intervals {
		out[i] = iv.Width()
	}
	return out
}

// BinStack returns the intervals as [start, stop] rows in raw order.
func (s *Set) BinStack() [][2]float64 {
	out := make([][2]float64, len(s.intervals))
	for i, iv := range s.intervals {
		out[i] = [2]float64{iv.start, iv.stop}
	}
	return out
}

// AbsoluteStart returns the minimum start in the set, regardless of order.
// It panics on an empty set.
func (s *Set) AbsoluteStart() float64 {
	if len(s.intervals) == 0 {
		panic("interval: AbsoluteStart of an empty set")
	}
	min := s.intervals[0].start
	for _, iv := range s.intervals[1:] {
		if iv.start < min {
			min = iv.start
		}
	}
	return min
}

// AbsoluteStop returns the maximum stop in the set, regardless of order.
// It panics on an empty set.
func (s *Set) AbsoluteStop() float64 {
	if len(s.intervals) == 0 {
		panic("interval: AbsoluteStop of an empty set")
	}
	max := s.intervals[0].stop
	for _, iv := range s.intervals[1:] {
		if iv.stop > max {
			max = iv.stop
		}
	}
	return max
}

// Equal reports set-wise equality: both sides are taken in sort order and
// compared elementwise with exact Interval equality, so insertion order
// does not matter but any length or value mismatch does.
func (s *Set) Equal(other *Set) bool {
	if len(s.intervals) != len(other.intervals) {
		return false
	}
	a := s.Sort().intervals
	b := other.Sort().intervals
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String renders the set as comma-joined Interval strings, the form
// FromStrings accepts.  Like Interval.String, rendering is fixed point at
// default precision, so a text round trip reproduces the bounds only to
// that precision.
func (s *Set) String() string {
	parts := make([]string, len(s.intervals))
	for i, iv := range s.intervals {
		parts[i] = iv.String()
	}
	return strings.Join(parts, ",")
}
