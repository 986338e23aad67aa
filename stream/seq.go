package stream

import (
	"context"
	"iter"
)

// FromSeq adapts a Go iterator function to a stream Iterator.
// The sequence is pulled lazily; Close stops the underlying producer.
func FromSeq[T any](seq iter.Seq[T]) Iterator[T] {
	next, stop := iter.Pull(seq)
	return &seqIter[T]{next: next, stop: stop}
}

// Seq exposes an Iterator as an iter.Seq2 of (value, error) pairs for
// range-over-func consumption. Iteration stops after the first error.
// The Iterator is closed when the range loop finishes.
func Seq[T any](ctx context.Context, it Iterator[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		defer it.Close()
		for {
			val, ok, err := it.Next(ctx)
			if err != nil {
				yield(val, err)
				return
			}
			if !ok {
				return
			}
			if !yield(val, nil) {
				return
			}
		}
	}
}

type seqIter[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

func (it *seqIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.done {
		var zero T
		return zero, false, nil
	}
	val, ok := it.next()
	if !ok {
		it.done = true
	}
	return val, ok, nil
}

func (it *seqIter[T]) Close() error {
	it.done = true
	it.stop()
	return nil
}
