package interleave

import (
	"context"
	"time"

	"github.com/kbukum/weave/errors"
	"github.com/kbukum/weave/logger"
	"github.com/kbukum/weave/stream"
)

// Interleaver lazily merges a source stream with a normalized set of
// insertions. It implements stream.Iterator and is single-owner,
// single-pass: once exhausted it stays exhausted, and abandoning it
// part-way is always safe.
type Interleaver[T any] struct {
	source     stream.Iterator[T]
	insertions []Insertion[T]
	opts       Options

	i          int // next unconsumed source index
	j          int // next unplaced insertion
	sourceDone bool
	done       bool

	emittedSource     int
	emittedInsertions int
	started           time.Time
}

// New creates an Interleaver over source. Insertions are validated and
// stably ordered by ascending offset before the first pull; when the
// source length is declared via WithSourceLength, offsets past the end
// are rejected here, before any output is produced.
func New[T any](source stream.Iterator[T], insertions []Insertion[T], opts ...Option) (*Interleaver[T], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	ordered, err := normalize(insertions, o)
	if err != nil {
		o.Logger.WithComponent("interleave").WithError(err).Warn("insertion set rejected", logger.Fields(
			logger.FieldStreamID, o.StreamID,
		))
		if o.Metrics != nil {
			o.Metrics.RecordError(context.Background(), string(errors.CodeOf(err)), "interleave")
		}
		return nil, err
	}

	return &Interleaver[T]{
		source:     source,
		insertions: ordered,
		opts:       o,
		started:    time.Now(),
	}, nil
}

// Next produces the next merged element.
//
// Each call performs O(1) work beyond the single source pull it may
// need: it compares the next insertion offset against the source cursor,
// emits whichever comes first, and advances one cursor. Total work over
// a full consumption is therefore proportional to n + k.
func (iv *Interleaver[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if iv.done {
		return zero, false, nil
	}

	for {
		// Insertions belonging at or before the current source index are
		// due now. Offsets below the cursor only occur when a trusted
		// sort promise was violated; they are emitted late rather than
		// dropped.
		if !iv.sourceDone && iv.j < len(iv.insertions) && iv.insertions[iv.j].Offset <= iv.i {
			item := iv.insertions[iv.j].Item
			iv.j++
			iv.emittedInsertions++
			return item, true, nil
		}

		if !iv.sourceDone {
			val, ok, err := iv.source.Next(ctx)
			if err != nil {
				iv.done = true
				return zero, false, err
			}
			if ok {
				iv.i++
				iv.emittedSource++
				return val, true, nil
			}
			// Source exhausted: iv.i is now the true length n.
			iv.sourceDone = true
			continue
		}

		// Tail insertions: offsets equal to n are regular end inserts;
		// anything beyond follows the end policy.
		if iv.j < len(iv.insertions) {
			ins := iv.insertions[iv.j]
			if ins.Offset > iv.i && iv.opts.EndPolicy == EndPolicyReject {
				iv.done = true
				err := errors.OutOfRangeOffset(ins.Offset, iv.i)
				if iv.opts.Metrics != nil {
					iv.opts.Metrics.RecordError(ctx, string(err.Code), "interleave")
				}
				return zero, false, err
			}
			iv.j++
			iv.emittedInsertions++
			return ins.Item, true, nil
		}

		iv.done = true
		iv.finish(ctx)
		return zero, false, nil
	}
}

// Close releases the underlying source.
func (iv *Interleaver[T]) Close() error {
	iv.done = true
	return iv.source.Close()
}

// StreamID returns the identifier tagging this merge in logs and metrics.
func (iv *Interleaver[T]) StreamID() string {
	return iv.opts.StreamID
}

func (iv *Interleaver[T]) finish(ctx context.Context) {
	elapsed := time.Since(iv.started)
	iv.opts.Logger.WithComponent("interleave").Debug("merge complete", logger.Fields(
		logger.FieldStreamID, iv.opts.StreamID,
		logger.FieldElements, iv.emittedSource,
		logger.FieldInsertions, iv.emittedInsertions,
		logger.FieldDuration, elapsed.Milliseconds(),
	))
	if iv.opts.Metrics != nil {
		iv.opts.Metrics.RecordMerge(ctx, iv.opts.StreamID, "ok", iv.emittedSource, iv.emittedInsertions, elapsed)
	}
}

// Slice eagerly merges src with insertions and returns the combined
// slice of length len(src) + len(insertions). The source length is known
// here, so out-of-range offsets fail before any output is produced.
func Slice[T any](src []T, insertions []Insertion[T], opts ...Option) ([]T, error) {
	opts = append(opts, WithSourceLength(len(src)))
	iv, err := New(stream.FromSlice(src), insertions, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(src)+len(insertions))
	ctx := context.Background()
	for {
		val, ok, err := iv.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, val)
	}
}
