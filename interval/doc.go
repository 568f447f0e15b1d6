/*Package interval implements a one-dimensional algebra over closed numeric
  ranges: an immutable Interval value type with overlap, intersection and
  merge operations, and a Set collection with multiple construction paths,
  sorting, a sweep-merge that collapses overlapping intervals into their
  minimal non-overlapping cover, contiguity testing, bin-edge extraction,
  and clamped bin lookup.
  (Note that, unlike an interval-union container, a Set tracks its elements
  exactly as inserted; overlapping intervals are only collapsed when
  MergeIntersecting is requested.)
  Two behaviors are deliberate and worth reading about before use: the
  raw-order/sort-order asymmetry between IsContiguous and Edges, and the
  silent clamping of out-of-range ContainingBin queries.
*/
package interval
