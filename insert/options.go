package insert

import (
	"github.com/google/uuid"

	"github.com/kbukum/weave/interleave"
	"github.com/kbukum/weave/logger"
	"github.com/kbukum/weave/observability"
)

// defaultBufferSize is the chunk size used to copy between readers and writers.
const defaultBufferSize = 1024

// Options configures an Inserter.
type Options struct {
	// EndPolicy governs insertion offsets past the origin's end.
	EndPolicy interleave.EndPolicy
	// BufferSize is the copy chunk size in bytes.
	BufferSize int
	// StreamID tags logs, spans, and metrics. Generated when empty.
	StreamID string

	Logger  *logger.Logger
	Metrics *observability.MergeMetrics
}

// Option is a functional option for New.
type Option func(*Options)

// WithEndPolicy sets the policy for offsets past the origin's end.
func WithEndPolicy(p interleave.EndPolicy) Option {
	return func(o *Options) { o.EndPolicy = p }
}

// WithBufferSize sets the copy chunk size.
func WithBufferSize(n int) Option {
	return func(o *Options) { o.BufferSize = n }
}

// WithStreamID sets an explicit stream ID.
func WithStreamID(id string) Option {
	return func(o *Options) { o.StreamID = id }
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(l *logger.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics attaches merge metric instruments.
func WithMetrics(m *observability.MergeMetrics) Option {
	return func(o *Options) { o.Metrics = m }
}

func buildOptions(opts []Option) Options {
	o := Options{
		EndPolicy:  interleave.EndPolicyClamp,
		BufferSize: defaultBufferSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.BufferSize <= 0 {
		o.BufferSize = defaultBufferSize
	}
	if o.StreamID == "" {
		o.StreamID = uuid.NewString()
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	return o
}
