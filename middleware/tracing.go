package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/xraph/portal/call"
)

// tracerName is the instrumentation scope name for portal tracing.
const tracerName = "github.com/xraph/portal"

// Tracing returns middleware that wraps the target invocation in an
// OpenTelemetry span. If no TracerProvider is configured globally, the
// default noop tracer is used and this middleware becomes a pass-through
// with zero overhead.
//
// Span attributes include: portal.operation, portal.object_kind,
// portal.factory, portal.method. On error, the span status is set to
// codes.Error with the error message.
func Tracing() Middleware {
	tracer := otel.Tracer(tracerName)
	return TracingWithTracer(tracer)
}

// TracingWithTracer returns tracing middleware using the provided tracer.
// This variant allows injecting a specific TracerProvider for testing or
// when multiple providers are in use.
func TracingWithTracer(tracer trace.Tracer) Middleware {
	return func(ctx context.Context, c *call.Call, next Handler) (any, error) {
		ctx, span := tracer.Start(ctx, "portal.dispatch",
			trace.WithAttributes(
				attribute.String("portal.operation", c.Operation.String()),
				attribute.String("portal.object_kind", c.ObjectKind),
				attribute.String("portal.factory", c.Factory),
				attribute.String("portal.method", c.Method),
			),
			trace.WithSpanKind(trace.SpanKindInternal),
		)
		defer span.End()

		result, err := next(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}

		return result, err
	}
}
