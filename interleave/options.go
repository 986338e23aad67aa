package interleave

import (
	"github.com/google/uuid"

	"github.com/kbukum/weave/logger"
	"github.com/kbukum/weave/observability"
	"github.com/kbukum/weave/validation"
)

// EndPolicy governs insertions whose offset is never reached when the
// source length is not known upfront.
type EndPolicy string

const (
	// EndPolicyClamp emits unplaced insertions at the end of the output,
	// in stable order, once the source is exhausted.
	EndPolicyClamp EndPolicy = "clamp"
	// EndPolicyReject fails the merge with OutOfRangeOffset at the pull
	// that exhausts the source.
	EndPolicyReject EndPolicy = "reject"
)

// lengthUnknown marks a source whose length is discovered only by exhaustion.
const lengthUnknown = -1

// Options configures an Interleaver.
type Options struct {
	// TrustSorted skips the internal stable sort. The caller guarantees
	// insertions arrive in ascending offset order; if the promise is
	// violated the output order is undefined, but every element is still
	// emitted exactly once and no error is raised.
	TrustSorted bool `mapstructure:"trust_sorted"`
	// EndPolicy governs offsets past the end of an unknown-length source.
	EndPolicy EndPolicy `mapstructure:"end_policy" validate:"required,oneof=clamp reject"`
	// SourceLength is the known source length, or -1 when unknown.
	// When known, out-of-range offsets are rejected at construction.
	SourceLength int `mapstructure:"source_length" validate:"min=-1"`
	// StreamID tags logs, spans, and metrics. Generated when empty.
	StreamID string `mapstructure:"stream_id"`

	Logger  *logger.Logger              `mapstructure:"-" validate:"-"`
	Metrics *observability.MergeMetrics `mapstructure:"-" validate:"-"`
}

// Option is a functional option for New and Slice.
type Option func(*Options)

// WithTrustSorted skips the internal sort, trusting the caller's ordering.
func WithTrustSorted() Option {
	return func(o *Options) { o.TrustSorted = true }
}

// WithEndPolicy sets the end-of-stream policy for unknown-length sources.
func WithEndPolicy(p EndPolicy) Option {
	return func(o *Options) { o.EndPolicy = p }
}

// WithSourceLength declares the source length, enabling eager
// out-of-range rejection at construction time.
func WithSourceLength(n int) Option {
	return func(o *Options) { o.SourceLength = n }
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

// DefaultOptions returns the options applied before functional options.
func DefaultOptions() Options {
	return Options{
		EndPolicy:    EndPolicyClamp,
		SourceLength: lengthUnknown,
	}
}

// buildOptions applies opts over defaults and validates the result.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validation.Validate(o); err != nil {
		return o, err
	}
	if o.StreamID == "" {
		o.StreamID = uuid.NewString()
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	return o, nil
}
