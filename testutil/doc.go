// Package testutil provides instrumented stream sources for tests.
//
// CountingSource wraps any stream.Iterator and counts pulls, letting
// tests assert complexity properties (total pulls proportional to the
// elements produced, never to elements times insertions).
package testutil
