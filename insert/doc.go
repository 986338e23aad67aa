// Package insert splices byte streams into an origin stream at fixed
// byte offsets, in a single forward pass.
//
// An Inserter copies origin bytes to the target until it reaches the
// next insertion offset, splices that insertion's reader, and repeats.
// Neither the origin nor the insertion sources are ever rewound, so any
// forward-only reader works. Insertions sharing an offset splice in the
// order they were added.
//
// The origin length is not known upfront; offsets past its end follow
// the end-of-stream policy, which defaults to clamping: the insertion
// is spliced at the end of the output.
//
// # Usage
//
//	var out bytes.Buffer
//	err := insert.New(origin, &out).
//	    Insert(12, strings.NewReader("charlie ")).
//	    Insert(18, strings.NewReader("echo ")).
//	    Execute(ctx)
package insert
