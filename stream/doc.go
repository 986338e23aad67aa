// Package stream defines the pull-based lazy sequence contract used
// throughout weave.
//
// Streams are lazy — no work happens until values are pulled via Next,
// Collect, Drain, or ForEach. Each consumer pulls one element at a time,
// so the producer never computes ahead of demand.
//
// An Iterator is single-owner and single-pass: it is not safe for
// concurrent use, and once exhausted it stays exhausted. Abandoning a
// partially-consumed Iterator is always safe; Close releases whatever
// the producer holds.
//
// # Usage
//
//	src := stream.FromSlice([]string{"a", "b", "c"})
//	out, err := stream.Collect(ctx, src)
//
// Range-over-func consumption:
//
//	for v, err := range stream.Seq(ctx, src) {
//	    ...
//	}
package stream
