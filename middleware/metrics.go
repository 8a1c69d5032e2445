package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/xraph/portal/call"
)

// meterName is the instrumentation scope name for portal metrics.
const meterName = "github.com/xraph/portal"

// Metrics returns middleware that records per-dispatch metrics using the
// global OTel MeterProvider. If no MeterProvider is configured, noop
// instruments are used and this middleware becomes a pass-through.
//
// Instruments:
//   - portal.dispatch.duration (Float64Histogram): invocation time in
//     seconds, with attributes: operation, factory, method, status
//   - portal.dispatch.calls (Int64Counter): total invocations, with
//     attributes: operation, factory, method, status
func Metrics() Middleware {
	meter := otel.Meter(meterName)
	return MetricsWithMeter(meter)
}

// MetricsWithMeter returns metrics middleware using the provided meter.
// This variant allows injecting a specific MeterProvider for testing.
func MetricsWithMeter(meter metric.Meter) Middleware {
	// Create instruments once at middleware construction time.
	// OTel instruments are safe for concurrent use. On error, the API
	// returns noop instruments so the middleware degrades gracefully.
	duration, dErr := meter.Float64Histogram(
		"portal.dispatch.duration",
		metric.WithDescription("Duration of target method invocation in seconds"),
		metric.WithUnit("s"),
	)
	_ = dErr // noop fallback guaranteed by OTel API contract

	calls, cErr := meter.Int64Counter(
		"portal.dispatch.calls",
		metric.WithDescription("Total number of target method invocations"),
		metric.WithUnit("{call}"),
	)
	_ = cErr // noop fallback guaranteed by OTel API contract

	return func(ctx context.Context, c *call.Call, next Handler) (any, error) {
		start := time.Now()
		result, err := next(ctx)
		elapsed := time.Since(start).Seconds()

		status := "ok"
		if err != nil {
			status = "error"
		}

		attrs := metric.WithAttributes(
			attribute.String("operation", c.Operation.String()),
			attribute.String("factory", c.Factory),
			attribute.String("method", c.Method),
			attribute.String("status", status),
		)

		duration.Record(ctx, elapsed, attrs)
		calls.Add(ctx, 1, attrs)

		return result, err
	}
}
