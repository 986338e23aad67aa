package testutil

import (
	"context"

	"github.com/kbukum/weave/stream"
)

// CountingSource wraps an Iterator and records how often it is pulled
// and whether it was closed.
type CountingSource[T any] struct {
	inner stream.Iterator[T]

	// NextCalls is the number of Next invocations, including the final
	// exhausted pull.
	NextCalls int
	// CloseCalls is the number of Close invocations.
	CloseCalls int
}

// NewCountingSource wraps inner with pull counting.
func NewCountingSource[T any](inner stream.Iterator[T]) *CountingSource[T] {
	return &CountingSource[T]{inner: inner}
}

// NewCountingSlice is shorthand for counting over a slice source.
func NewCountingSlice[T any](items []T) *CountingSource[T] {
	return NewCountingSource(stream.FromSlice(items))
}

func (s *CountingSource[T]) Next(ctx context.Context) (T, bool, error) {
	s.NextCalls++
	return s.inner.Next(ctx)
}

func (s *CountingSource[T]) Close() error {
	s.CloseCalls++
	return s.inner.Close()
}

// FailingSource yields the given values, then fails with Err.
type FailingSource[T any] struct {
	Values []T
	Err    error

	index int
}

func (s *FailingSource[T]) Next(_ context.Context) (T, bool, error) {
	if s.index < len(s.Values) {
		val := s.Values[s.index]
		s.index++
		return val, true, nil
	}
	var zero T
	return zero, false, s.Err
}

func (s *FailingSource[T]) Close() error { return nil }
