// Package transfer finds, for a fixed station sequence, the assignment of
// lines to hops that needs the fewest line changes.
//
// A route coming out of the solver fixes which stations are visited but not
// which line is ridden between them: a segment may be served by several
// lines. Minimize explores, hop by hop, every line serving the segment. Riding
// on with the current line is free; switching lines costs one change at the
// station where the hop starts. Boarding the first line at the origin is
// reported separately (Plan.Boarding) and is not counted as a transfer.
//
// Determinism:
//
//	Lines of a segment are tried in ascending order and a candidate replaces
//	the best one only when strictly better, so among several minimal plans the
//	first in that order is returned. Sub-results are memoized on
//	(hop, current line); memoization does not change which plan wins.
//
// Complexity:
//
//	Time O(H·L²), space O(H·L) where H is the number of hops and L the largest
//	number of lines serving one segment.
//
// Errors:
//
//	ErrNilGraph          - nil ArcFinder.
//	ErrEmptyPath         - path has no vertex.
//	ErrInconsistentPath  - two consecutive stations are not linked in either direction.
//	ErrUnservedSegment   - a linking arc exists but no line serves it.
//	ErrInvalidLine       - a linking arc carries a line number ≤ 0.
package transfer
