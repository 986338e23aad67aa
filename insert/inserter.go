package insert

import (
	"context"
	"io"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kbukum/weave/errors"
	"github.com/kbukum/weave/interleave"
	"github.com/kbukum/weave/logger"
	"github.com/kbukum/weave/observability"
)

// insertion pairs a byte offset with the reader to splice there.
type insertion struct {
	offset int64
	src    io.Reader
}

// Inserter tracks an origin reader, a target writer, and the insertion
// points between them. It is a single-use builder: configure with
// Insert, then call Execute exactly once.
type Inserter struct {
	origin     io.Reader
	target     io.Writer
	insertions []insertion
	opts       Options
}

// New creates an Inserter copying origin into target.
func New(origin io.Reader, target io.Writer, opts ...Option) *Inserter {
	return &Inserter{
		origin: origin,
		target: target,
		opts:   buildOptions(opts),
	}
}

// Insert schedules src to be spliced in immediately before the origin
// byte at offset. Returns the receiver for chaining. The caller retains
// ownership of src; it is read once during Execute and never closed.
func (in *Inserter) Insert(offset int64, src io.Reader) *Inserter {
	in.insertions = append(in.insertions, insertion{offset: offset, src: src})
	return in
}

// Execute runs the single forward pass: origin bytes are copied to the
// target up to each insertion offset, the insertion is spliced, and the
// remainder of the origin follows after the last insertion.
func (in *Inserter) Execute(ctx context.Context) error {
	ctx, span := observability.StartSpan(ctx, "insert.execute")
	defer span.End()
	span.SetAttributes(
		attribute.String(observability.AttrStreamID, in.opts.StreamID),
		attribute.Int(observability.AttrInsertions, len(in.insertions)),
	)

	started := time.Now()
	written, err := in.execute(ctx)
	span.SetAttributes(attribute.Int64(observability.AttrBytes, written))

	log := in.opts.Logger.WithComponent("insert")
	if err != nil {
		observability.RecordSpanError(ctx, err)
		if in.opts.Metrics != nil {
			in.opts.Metrics.RecordError(ctx, string(errors.CodeOf(err)), "insert")
		}
		log.WithError(err).Error("insert pass failed", logger.Fields(
			logger.FieldStreamID, in.opts.StreamID,
			logger.FieldBytes, written,
		))
		return err
	}

	if in.opts.Metrics != nil {
		in.opts.Metrics.RecordBytes(ctx, in.opts.StreamID, written)
	}
	log.Debug("insert pass complete", logger.Fields(
		logger.FieldStreamID, in.opts.StreamID,
		logger.FieldInsertions, len(in.insertions),
		logger.FieldBytes, written,
		logger.FieldDuration, time.Since(started).Milliseconds(),
	))
	return nil
}

func (in *Inserter) execute(ctx context.Context) (int64, error) {
	for _, ins := range in.insertions {
		if ins.offset < 0 {
			return 0, errors.NegativeOffset(int(ins.offset))
		}
	}
	sort.SliceStable(in.insertions, func(a, b int) bool {
		return in.insertions[a].offset < in.insertions[b].offset
	})

	buffer := make([]byte, in.opts.BufferSize)
	var copied int64 // origin bytes consumed so far
	var written int64
	originDone := false

	for _, ins := range in.insertions {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		// Copy origin bytes until the insertion offset is reached or the
		// origin runs out.
		for !originDone && copied < ins.offset {
			chunk := buffer
			if remaining := ins.offset - copied; remaining < int64(len(chunk)) {
				chunk = chunk[:remaining]
			}
			nr, err := in.origin.Read(chunk)
			if nr > 0 {
				if werr := writeAll(in.target, chunk[:nr]); werr != nil {
					return written, werr
				}
				copied += int64(nr)
				written += int64(nr)
			}
			if err == io.EOF {
				originDone = true
				break
			}
			if err != nil {
				return written, errors.ReadFailed("origin", err)
			}
		}

		if originDone && copied < ins.offset && in.opts.EndPolicy == interleave.EndPolicyReject {
			return written, errors.OutOfRangeOffset(int(ins.offset), int(copied))
		}

		// Splice the insertion. This does not consume origin bytes.
		n, err := in.splice(ins.src, buffer)
		written += n
		if err != nil {
			return written, err
		}
	}

	// All insertions placed; the rest of the origin follows.
	for !originDone {
		nr, err := in.origin.Read(buffer)
		if nr > 0 {
			if werr := writeAll(in.target, buffer[:nr]); werr != nil {
				return written, werr
			}
			written += int64(nr)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return written, errors.ReadFailed("origin", err)
		}
	}

	return written, nil
}

func (in *Inserter) splice(src io.Reader, buffer []byte) (int64, error) {
	var written int64
	for {
		nr, err := src.Read(buffer)
		if nr > 0 {
			if werr := writeAll(in.target, buffer[:nr]); werr != nil {
				return written, werr
			}
			written += int64(nr)
		}
		if err == io.EOF {
			return written, nil
		}
		if err != nil {
			return written, errors.ReadFailed("insertion", err)
		}
	}
}

func writeAll(w io.Writer, p []byte) error {
	if _, err := w.Write(p); err != nil {
		return errors.WriteFailed(err)
	}
	return nil
}
