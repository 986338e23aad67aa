package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/weave/logger"
	"github.com/kbukum/weave/version"
)

// Element kinds recorded by MergeMetrics.
const (
	ElementKindSource    = "source"
	ElementKindInsertion = "insertion"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: version.Short(),
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// MergeMetrics holds OpenTelemetry metric instruments for merge observability.
type MergeMetrics struct {
	mergeTotal    metric.Int64Counter
	mergeDuration metric.Float64Histogram
	elementTotal  metric.Int64Counter
	bytesCopied   metric.Int64Counter
	errorTotal    metric.Int64Counter
}

// NewMergeMetrics creates metric instruments on the given meter.
func NewMergeMetrics(meter metric.Meter) (*MergeMetrics, error) {
	mergeTotal, err := meter.Int64Counter("merge.total",
		metric.WithDescription("Total number of merge passes"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating merge.total counter: %w", err)
	}

	mergeDuration, err := meter.Float64Histogram("merge.duration",
		metric.WithDescription("Duration of merge passes in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating merge.duration histogram: %w", err)
	}

	elementTotal, err := meter.Int64Counter("merge.elements",
		metric.WithDescription("Total elements emitted, by kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating merge.elements counter: %w", err)
	}

	bytesCopied, err := meter.Int64Counter("merge.bytes",
		metric.WithDescription("Total bytes copied by stream inserters"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating merge.bytes counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("error.total",
		metric.WithDescription("Total errors by code and component"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating error.total counter: %w", err)
	}

	return &MergeMetrics{
		mergeTotal:    mergeTotal,
		mergeDuration: mergeDuration,
		elementTotal:  elementTotal,
		bytesCopied:   bytesCopied,
		errorTotal:    errorTotal,
	}, nil
}

// RecordMerge records a completed merge pass.
func (m *MergeMetrics) RecordMerge(ctx context.Context, streamID, status string, sources, insertions int, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("stream_id", streamID),
		attribute.String("status", status),
	)
	m.mergeTotal.Add(ctx, 1, attrs)
	m.mergeDuration.Record(ctx, duration.Seconds(), attrs)
	m.elementTotal.Add(ctx, int64(sources), metric.WithAttributes(
		attribute.String("stream_id", streamID),
		attribute.String("kind", ElementKindSource),
	))
	m.elementTotal.Add(ctx, int64(insertions), metric.WithAttributes(
		attribute.String("stream_id", streamID),
		attribute.String("kind", ElementKindInsertion),
	))
}

// RecordBytes records bytes copied by a stream inserter.
func (m *MergeMetrics) RecordBytes(ctx context.Context, streamID string, n int64) {
	m.bytesCopied.Add(ctx, n, metric.WithAttributes(
		attribute.String("stream_id", streamID),
	))
}

// RecordError records an error by code and component.
func (m *MergeMetrics) RecordError(ctx context.Context, code, component string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("code", code),
		attribute.String("component", component),
	))
}
