// Package binning consumes interval sets through their public contract
// (starts, stops, edges, bin lookup) to bin and select scalar data, the
// way downstream range-selection layers do.  It adds no semantics of its
// own: bin assignment follows Set.ContainingBin exactly, including the
// clamping of out-of-range values.
package binning

import (
	"runtime"
	"sort"

	"github.com/grailbio/base/traverse"
	"github.com/grailbio/intervals/interval"
)

// Count returns how many of the given values land in each bin of the
// set's edge ordering.  Lookup follows Set.ContainingBin, including its
// clamp: a value outside the covered range is counted in the first or
// last bin rather than dropped, so the counts always sum to len(xs).
// Callers that need strict domain handling should pre-filter with Select.
// Fails with interval.ErrNotContiguous when the set has no well-defined
// edges.
func Count(set *interval.Set, xs []float64) ([]int64, error) {
	edges, err := set.Edges()
	if err != nil {
		return nil, err
	}
	counts := make([]int64, set.Len())
	countInto(counts, edges, xs)
	return counts, nil
}

// CountParallel is Count with the values sharded across parallelism jobs.
// parallelism <= 0 means runtime.NumCPU().  The result is identical to
// Count on the same input.
func CountParallel(set *interval.Set, xs []float64, parallelism int) ([]int64, error) {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	edges, err := set.Edges()
	if err != nil {
		return nil, err
	}
	nBin := set.Len()
	partials := make([][]int64, parallelism)
	err = traverse.Each(parallelism, func(job int) error {
		startIdx := (job * len(xs)) / parallelism
		endIdx := ((job + 1) * len(xs)) / parallelism
		counts := make([]int64, nBin)
		countInto(counts, edges, xs[startIdx:endIdx])
		partials[job] = counts
		return nil
	})
	if err != nil {
		return nil, err
	}
	counts := partials[0]
	for _, partial := range partials[1:] {
		for i, c := range partial {
			counts[i] += c
		}
	}
	return counts, nil
}

// countInto replicates Set.ContainingBin's clamped lookup against a
// precomputed edge list, so per-value lookups do not re-derive the edges.
func countInto(counts []int64, edges []float64, xs []float64) {
	for _, x := range xs {
		idx := sort.SearchFloat64s(edges, x) - 1
		if idx < 0 {
			idx = 0
		}
		if last := len(counts) - 1; idx > last {
			idx = last
		}
		counts[idx]++
	}
}

// Select returns a mask over xs marking the values covered by at least
// one interval in the set, with closed bounds on both sides.  It works on
// the raw starts and stops and imposes no contiguity or ordering
// requirement on the set.
func Select(set *interval.Set, xs []float64) []bool {
	starts := set.Starts()
	stops := set.Stops()
	mask := make([]bool, len(xs))
	for i, x := range xs {
		for j := range starts {
			if x >= starts[j] && x <= stops[j] {
				mask[i] = true
				break
			}
		}
	}
	return mask
}

// SelectIndices returns the indices of the values Select would mark, in
// input order.
func SelectIndices(set *interval.Set, xs []float64) []int {
	var idxs []int
	for i, ok := range Select(set, xs) {
		if ok {
			idxs = append(idxs, i)
		}
	}
	return idxs
}
