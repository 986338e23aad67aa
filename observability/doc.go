// Package observability provides OpenTelemetry tracing and metrics
// integration for weave.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-service"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "insert.execute")
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-service"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMergeMetrics(observability.Meter("my-service"))
//	metrics.RecordMerge(ctx, streamID, "ok", sources, insertions, duration)
package observability
