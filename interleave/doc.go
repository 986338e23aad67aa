// Package interleave merges a forward source sequence with offset-tagged
// insertions in a single O(n + k) pass.
//
// Offsets are expressed in terms of the original source indexing: an
// insertion with offset i is emitted immediately before the source element
// that was at index i, or after the last source element when i equals the
// source length. Insertions sharing an offset keep their input order.
// The source is never mutated and never buffered; each element is pulled
// once and emitted once.
//
// The Interleaver implements stream.Iterator, so merged output can feed
// another interleave pass or any other stream consumer.
//
// # Usage
//
//	out, err := interleave.Slice([]string{"a", "b", "c"}, []interleave.Insertion[string]{
//	    interleave.Insert(0, "x"),
//	    interleave.Insert(2, "y"),
//	})
//	// out: [x a b y c]
//
// Lazy, over an arbitrary source:
//
//	it, err := interleave.New(src, insertions)
//	merged, err := stream.Collect(ctx, it)
//
// When the source length is known upfront (Slice, or WithSourceLength),
// offsets past the end are rejected before any output is produced. For
// sources of unknown length the end-of-stream policy decides: the default
// EndPolicyClamp emits unplaced insertions at the end of the output in
// stable order, EndPolicyReject surfaces OutOfRangeOffset at the pull
// that exhausts the source.
package interleave
