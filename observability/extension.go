// Package observability provides a Portal extension that records
// dispatch lifecycle metrics through OpenTelemetry. Register it to
// automatically track dispatch rates, outcomes, and durations per
// operation, factory, and object kind.
//
// For per-invocation metrics and spans around the target call itself,
// see the middleware package; this extension observes the whole
// dispatch including hooks and failure normalization.
package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/xraph/portal/call"
	"github.com/xraph/portal/ext"
)

// meterName is the instrumentation scope name for portal observability.
const meterName = "github.com/xraph/portal/observability"

// Compile-time interface checks.
var (
	_ ext.Extension         = (*MetricsExtension)(nil)
	_ ext.DispatchStarted   = (*MetricsExtension)(nil)
	_ ext.DispatchCompleted = (*MetricsExtension)(nil)
	_ ext.DispatchFailed    = (*MetricsExtension)(nil)
)

// MetricsExtension records dispatch lifecycle metrics.
//
// Instruments:
//   - portal.dispatch.started (Int64Counter)
//   - portal.dispatch.completed (Int64Counter)
//   - portal.dispatch.failed (Int64Counter)
//   - portal.dispatch.elapsed (Float64Histogram, seconds)
type MetricsExtension struct {
	started   metric.Int64Counter
	completed metric.Int64Counter
	failed    metric.Int64Counter
	elapsed   metric.Float64Histogram
}

// NewMetricsExtension creates a MetricsExtension using the global OTel
// MeterProvider. With no provider configured, noop instruments are used.
func NewMetricsExtension() *MetricsExtension {
	return NewMetricsExtensionWithMeter(otel.Meter(meterName))
}

// NewMetricsExtensionWithMeter creates a MetricsExtension with the
// provided meter. This variant allows injecting a specific MeterProvider
// for testing.
func NewMetricsExtensionWithMeter(meter metric.Meter) *MetricsExtension {
	// On error the OTel API returns noop instruments, so the extension
	// degrades gracefully.
	started, _ := meter.Int64Counter(
		"portal.dispatch.started",
		metric.WithDescription("Total number of dispatches started"),
		metric.WithUnit("{dispatch}"),
	)
	completed, _ := meter.Int64Counter(
		"portal.dispatch.completed",
		metric.WithDescription("Total number of dispatches completed successfully"),
		metric.WithUnit("{dispatch}"),
	)
	failed, _ := meter.Int64Counter(
		"portal.dispatch.failed",
		metric.WithDescription("Total number of dispatches that failed"),
		metric.WithUnit("{dispatch}"),
	)
	elapsed, _ := meter.Float64Histogram(
		"portal.dispatch.elapsed",
		metric.WithDescription("End-to-end dispatch duration in seconds"),
		metric.WithUnit("s"),
	)
	return &MetricsExtension{
		started:   started,
		completed: completed,
		failed:    failed,
		elapsed:   elapsed,
	}
}

// Name implements ext.Extension.
func (m *MetricsExtension) Name() string { return "observability-metrics" }

// OnDispatchStarted implements ext.DispatchStarted.
func (m *MetricsExtension) OnDispatchStarted(ctx context.Context, c *call.Call) error {
	m.started.Add(ctx, 1, attrs(c))
	return nil
}

// OnDispatchCompleted implements ext.DispatchCompleted.
func (m *MetricsExtension) OnDispatchCompleted(ctx context.Context, c *call.Call, elapsed time.Duration) error {
	m.completed.Add(ctx, 1, attrs(c))
	m.elapsed.Record(ctx, elapsed.Seconds(), attrs(c))
	return nil
}

// OnDispatchFailed implements ext.DispatchFailed.
func (m *MetricsExtension) OnDispatchFailed(ctx context.Context, c *call.Call, _ error) error {
	m.failed.Add(ctx, 1, attrs(c))
	return nil
}

func attrs(c *call.Call) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("operation", c.Operation.String()),
		attribute.String("object_kind", c.ObjectKind),
		attribute.String("factory", c.Factory),
		attribute.String("method", c.Method),
	)
}
