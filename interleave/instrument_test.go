package interleave

import (
	"context"
	"slices"
	"testing"

	"go.opentelemetry.io/otel/metric/noop"

	"github.com/kbukum/weave/logger"
	"github.com/kbukum/weave/observability"
	"github.com/kbukum/weave/stream"
)

func TestInstrumentedMerge(t *testing.T) {
	metrics, err := observability.NewMergeMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatal(err)
	}

	iv, err := New(stream.FromSlice([]int{1, 3}), []Insertion[int]{
		Insert(1, 2),
	},
		WithLogger(logger.Nop()),
		WithMetrics(metrics),
		WithStreamID("instrumented"),
	)
	if err != nil {
		t.Fatal(err)
	}
	if iv.StreamID() != "instrumented" {
		t.Errorf("stream id = %s", iv.StreamID())
	}

	out, err := stream.Collect(context.Background(), iv)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(out, []int{1, 2, 3}) {
		t.Errorf("got %v", out)
	}
}

func TestInstrumentedRejection(t *testing.T) {
	metrics, err := observability.NewMergeMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = New(stream.FromSlice([]int{1}), []Insertion[int]{
		Insert(9, 0),
	},
		WithSourceLength(1),
		WithMetrics(metrics),
	)
	if err == nil {
		t.Fatal("expected rejection")
	}
}
