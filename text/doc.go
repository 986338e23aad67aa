// Package text inserts strings into an origin string at byte offsets.
//
// It is a convenience layer over package insert: the origin and every
// insertion are streamed through a single forward pass and collected
// into the result string. Offsets are byte offsets into the origin; an
// offset that splits a multi-byte rune yields an INVALID_ENCODING error.
package text
