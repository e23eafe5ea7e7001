// Package parallel provides the row partitioner and the fork-join worker
// pool that drive frame computation.
//
// The partitioning model is deliberately static: a frame's rows are split
// into contiguous spans fixed before any worker starts, one span per
// worker, and workers share no mutable state beyond their disjoint output
// slices. There is no work stealing and no redistribution; a span that
// lands on a slow region simply finishes last, and the frame's latency is
// bounded by its slowest worker.
package parallel

// Span is a half-open range of rows [Start, End).
type Span struct {
	Start int
	End   int
}

// Rows returns the number of rows in the span.
func (s Span) Rows() int {
	return s.End - s.Start
}

// Empty reports whether the span contains no rows.
func (s Span) Empty() bool {
	return s.End <= s.Start
}

// SplitRows divides the row range [0, height) into exactly n contiguous
// spans. Spans 0..n−2 receive height/n rows each; the last span absorbs
// the remainder of the integer division. When n exceeds height the leading
// spans come out empty, which is valid: the pairwise-disjoint spans always
// cover [0, height) exactly.
//
// Returns nil when height is negative or n is not positive.
func SplitRows(height, n int) []Span {
	if height < 0 || n <= 0 {
		return nil
	}

	per := height / n
	spans := make([]Span, n)
	for i := range spans {
		spans[i] = Span{Start: i * per, End: (i + 1) * per}
	}

	// The last span takes whatever integer division left over.
	spans[n-1].End = height

	return spans
}
